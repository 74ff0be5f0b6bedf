package models

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type finderFunc func(ctx context.Context, name string) (*Application, error)

func (f finderFunc) FindApplication(ctx context.Context, name string) (*Application, error) {
	return f(ctx, name)
}

func TestNewAuthProperties_Defaults(t *testing.T) {
	p := NewAuthProperties(nil)

	assert.Equal(t, DefaultNonceMaxAge, p.NonceMaxAge)
	assert.Empty(t, p.Domain)
}

func TestAuthProperties_ApplicationByNameOrDefault(t *testing.T) {
	var gotNames []string
	finder := finderFunc(func(_ context.Context, name string) (*Application, error) {
		gotNames = append(gotNames, name)
		if name == "missing" {
			return nil, errors.New("not found")
		}
		app := NewApplication()
		app.Name = name
		return app, nil
	})
	p := NewAuthProperties(finder)

	app, err := p.ApplicationByNameOrDefault(context.Background(), "grafana")
	require.NoError(t, err)
	assert.Equal(t, "grafana", app.Name)

	_, err = p.ApplicationByNameOrDefault(context.Background(), "missing")
	require.Error(t, err)

	_, err = p.ApplicationByNameOrDefault(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, []string{"grafana", "missing", ""}, gotNames)
}

func TestAuthProperties_ApplicationByNameOrDefault_NoFinder(t *testing.T) {
	p := &AuthProperties{}

	app, err := p.ApplicationByNameOrDefault(context.Background(), "")

	assert.Nil(t, app)
	assert.ErrorIs(t, err, ErrNoApplicationFinder)
}

func TestAuthProperties_String(t *testing.T) {
	p := &AuthProperties{
		Domain:           "tenant.eu.auth0.com",
		TokenEndpoint:    "https://tenant.eu.auth0.com/oauth/token",
		LogoutEndpoint:   "https://tenant.eu.auth0.com/v2/logout",
		UserinfoEndpoint: "https://tenant.eu.auth0.com/userinfo",
		AuthorizeURL:     "https://tenant.eu.auth0.com/authorize",
		NonceMaxAge:      -1,
	}

	assert.Equal(t,
		"AuthProperties(domain='tenant.eu.auth0.com', "+
			"tokenEndpoint='https://tenant.eu.auth0.com/oauth/token', "+
			"logoutEndpoint='https://tenant.eu.auth0.com/v2/logout', "+
			"userinfoEndpoint='https://tenant.eu.auth0.com/userinfo', "+
			"authorizeUrl='https://tenant.eu.auth0.com/authorize', nonceMaxAge=-1)",
		p.String())
}

func TestAuthProperties_AttributesIgnoreReceiver(t *testing.T) {
	var nilProps *AuthProperties
	names := make([]string, 0)
	for _, a := range nilProps.Attributes() {
		names = append(names, a.Name())
	}

	assert.Equal(t, []string{
		"domain", "tokenEndpoint", "logoutEndpoint", "userinfoEndpoint", "authorizeUrl", "nonceMaxAge",
	}, names)
}
