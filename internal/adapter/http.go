package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/forward-auth-config/internal/config"
	"github.com/MKhiriev/forward-auth-config/internal/logger"
	"github.com/MKhiriev/forward-auth-config/internal/rpc"
	"github.com/MKhiriev/forward-auth-config/internal/utils"
)

const (
	contextPath     = "/api/context"
	applicationPath = "/api/application"
)

type httpConfigAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPConfigAdapter constructs an HTTP/JSON implementation of
// [ConfigServiceAdapter]. It normalises and validates the base URL from
// remoteCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if remoteCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPConfigAdapter(remoteCfg config.Remote, logger *logger.Logger) (ConfigServiceAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(remoteCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(remoteCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpConfigAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrNoServiceAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetContext implements [ConfigServiceAdapter]. It issues GET /api/context
// and decodes the JSON body into [rpc.Context].
func (h *httpConfigAdapter) GetContext(ctx context.Context) (*rpc.Context, error) {
	var msg rpc.Context

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&msg).
		Get(contextPath)
	if err != nil {
		return nil, fmt.Errorf("get context request: %w", mapTransportError(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("get context: %w", err)
	}

	return &msg, nil
}

// GetApplication implements [ConfigServiceAdapter]. It issues
// GET /api/application, adding the name query parameter only when name is
// not empty.
func (h *httpConfigAdapter) GetApplication(ctx context.Context, name string) (*rpc.Application, error) {
	var msg rpc.Application

	req := h.client.R().
		SetContext(ctx).
		SetResult(&msg)
	if name != "" {
		req.SetQueryParam("name", name)
	}

	resp, err := req.Get(applicationPath)
	if err != nil {
		return nil, fmt.Errorf("get application %q request: %w", name, mapTransportError(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("get application %q: %w", name, err)
	}

	return &msg, nil
}

// Close implements [ConfigServiceAdapter]. It drops idle keep-alive
// connections.
func (h *httpConfigAdapter) Close() error {
	h.client.GetClient().CloseIdleConnections()
	h.logger.Debug().Str("base_url", h.client.BaseURL).Msg("http adapter closed")
	return nil
}

// mapTransportError marks failures that never reached the service as
// unavailability. Caller cancellation is returned unchanged.
func mapTransportError(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	return err
}
