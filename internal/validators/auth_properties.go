package validators

import (
	"context"
	"fmt"
	"net/http"
	"slices"

	"github.com/MKhiriev/forward-auth-config/models"
)

// Field names accepted by [AuthPropertiesValidator].
const (
	FieldDomain           = "domain"
	FieldTokenEndpoint    = "token_endpoint"
	FieldLogoutEndpoint   = "logout_endpoint"
	FieldUserinfoEndpoint = "userinfo_endpoint"
	FieldAuthorizeURL     = "authorize_url"
	FieldNonceMaxAge      = "nonce_max_age"

	FieldApplicationName   = "name"
	FieldRestrictedMethods = "restricted_methods"
)

var knownMethods = []string{
	http.MethodConnect,
	http.MethodDelete,
	http.MethodGet,
	http.MethodHead,
	http.MethodOptions,
	http.MethodPatch,
	http.MethodPost,
	http.MethodPut,
	http.MethodTrace,
}

// AuthPropertiesValidator validates [models.AuthProperties] and
// [models.Application] values.
type AuthPropertiesValidator struct{}

func NewAuthPropertiesValidator() Validator {
	return &AuthPropertiesValidator{}
}

func (v *AuthPropertiesValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case *models.AuthProperties:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateAuthProperties(ctx, value, fields...)
	case *models.Application:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateApplication(ctx, value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *AuthPropertiesValidator) validateAuthProperties(_ context.Context, props *models.AuthProperties, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDomain, FieldTokenEndpoint, FieldLogoutEndpoint, FieldUserinfoEndpoint, FieldAuthorizeURL, FieldNonceMaxAge}
	}

	for _, f := range fields {
		switch f {
		case FieldDomain:
			if props.Domain == "" {
				return ErrEmptyDomain
			}
		case FieldTokenEndpoint:
			if props.TokenEndpoint == "" {
				return ErrEmptyTokenEndpoint
			}
		case FieldLogoutEndpoint:
			if props.LogoutEndpoint == "" {
				return ErrEmptyLogoutEndpoint
			}
		case FieldUserinfoEndpoint:
			if props.UserinfoEndpoint == "" {
				return ErrEmptyUserinfoEndpoint
			}
		case FieldAuthorizeURL:
			if props.AuthorizeURL == "" {
				return ErrEmptyAuthorizeURL
			}
		case FieldNonceMaxAge:
			if props.NonceMaxAge < -1 {
				return fmt.Errorf("%w: got %d", ErrInvalidNonceMaxAge, props.NonceMaxAge)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AuthPropertiesValidator) validateApplication(_ context.Context, app *models.Application, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldApplicationName, FieldRestrictedMethods}
	}

	for _, f := range fields {
		switch f {
		case FieldApplicationName:
			if app.Name == "" {
				return ErrEmptyApplicationName
			}
		case FieldRestrictedMethods:
			for _, m := range app.RestrictedMethods {
				if !slices.Contains(knownMethods, m) {
					return fmt.Errorf("%w: %q", ErrInvalidHTTPMethod, m)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
