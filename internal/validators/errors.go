package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyDomain           = errors.New("domain is required")
	ErrEmptyTokenEndpoint    = errors.New("token endpoint is required")
	ErrEmptyLogoutEndpoint   = errors.New("logout endpoint is required")
	ErrEmptyUserinfoEndpoint = errors.New("userinfo endpoint is required")
	ErrEmptyAuthorizeURL     = errors.New("authorize url is required")
	ErrInvalidNonceMaxAge    = errors.New("nonce max age must be -1 or greater")

	ErrEmptyApplicationName = errors.New("application name is required")
	ErrInvalidHTTPMethod    = errors.New("invalid restricted HTTP method")
)
