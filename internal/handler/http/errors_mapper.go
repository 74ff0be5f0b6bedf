package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/forward-auth-config/internal/adapter"
	"github.com/MKhiriev/forward-auth-config/internal/bootstrap"
	"github.com/MKhiriev/forward-auth-config/models"
)

var errorStatusMap = map[error]int{
	adapter.ErrApplicationNotFound: http.StatusNotFound,
	adapter.ErrBadRequest:          http.StatusBadRequest,
	adapter.ErrServiceUnavailable:  http.StatusBadGateway,
	adapter.ErrInternalServerError: http.StatusBadGateway,
	bootstrap.ErrInvalidApplication: http.StatusBadGateway,

	models.ErrNoApplicationFinder: http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
