package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/forward-auth-config/internal/adapter"
	"github.com/MKhiriev/forward-auth-config/internal/mapping"
	"github.com/MKhiriev/forward-auth-config/internal/rpc"
	"github.com/MKhiriev/forward-auth-config/internal/validators"
	"github.com/MKhiriev/forward-auth-config/models"
)

// ApplicationLookup resolves applications with one remote call per request.
// It implements [models.ApplicationFinder] and is safe for concurrent use.
type ApplicationLookup struct {
	adapter   adapter.ConfigServiceAdapter
	mapper    *mapping.Mapper[rpc.Application, models.Application]
	validator validators.Validator
}

// NewApplicationLookup returns a lookup that calls a. It does not own a.
func NewApplicationLookup(a adapter.ConfigServiceAdapter) *ApplicationLookup {
	return &ApplicationLookup{
		adapter:   a,
		mapper:    mapping.For[rpc.Application, models.Application](),
		validator: validators.NewAuthPropertiesValidator(),
	}
}

// FindApplication fetches the application called name, or the service's
// default when name is empty, and maps it over [models.NewApplication]. A
// descriptor that fails validation is not returned. A failure is returned as
// [*ApplicationLookupError]; it is neither retried nor logged.
func (l *ApplicationLookup) FindApplication(ctx context.Context, name string) (*models.Application, error) {
	msg, err := l.adapter.GetApplication(ctx, name)
	if err == nil && msg == nil {
		err = errors.New("empty application response")
	}
	if err != nil {
		return nil, &ApplicationLookupError{Name: name, Err: err}
	}

	app := models.NewApplication()
	l.mapper.Map(msg, app)

	if err = l.validator.Validate(ctx, app); err != nil {
		return nil, &ApplicationLookupError{Name: name, Err: fmt.Errorf("%w: %w", ErrInvalidApplication, err)}
	}

	return app, nil
}
