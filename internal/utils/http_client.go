package utils

import (
	"github.com/go-resty/resty/v2"
)

// UserAgent identifies this process in requests to the configuration service.
const UserAgent = "forwardauth-config"

// HTTPClient is a wrapper around resty.Client. It embeds *resty.Client so
// all of its methods are available directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that sends [UserAgent] with
// every request.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New().SetHeader("User-Agent", UserAgent)}
}
