package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/forward-auth-config/internal/mapping"
	"github.com/MKhiriev/forward-auth-config/internal/rpc"
	"github.com/MKhiriev/forward-auth-config/models"
)

func TestContextToAuthProperties(t *testing.T) {
	m := mapping.For[rpc.Context, models.AuthProperties]()

	var targets []string
	for _, e := range m.Set().Entries() {
		assert.Equal(t, e.Source.Name, e.Target.Name)
		targets = append(targets, e.Target.Name)
	}
	assert.Equal(t, []string{
		"domain", "tokenEndpoint", "logoutEndpoint", "userinfoEndpoint", "authorizeUrl", "nonceMaxAge",
	}, targets)

	_, ok := m.Set().Lookup("roleList")
	assert.False(t, ok)

	props := models.NewAuthProperties(nil)
	m.Map(&rpc.Context{
		Domain:           "tenant.eu.auth0.com",
		TokenEndpoint:    "https://tenant.eu.auth0.com/oauth/token",
		LogoutEndpoint:   "https://tenant.eu.auth0.com/v2/logout",
		UserinfoEndpoint: "https://tenant.eu.auth0.com/userinfo",
		AuthorizeURL:     "https://tenant.eu.auth0.com/authorize",
		NonceMaxAge:      120,
		RoleList:         []string{"admin"},
	}, props)

	assert.Equal(t, "tenant.eu.auth0.com", props.Domain)
	assert.Equal(t, "https://tenant.eu.auth0.com/authorize", props.AuthorizeURL)
	assert.Equal(t, int32(120), props.NonceMaxAge)
}

func TestContextToAuthProperties_OverwritesDefaults(t *testing.T) {
	props := models.NewAuthProperties(nil)
	require.Equal(t, models.DefaultNonceMaxAge, props.NonceMaxAge)

	mapping.For[rpc.Context, models.AuthProperties]().Map(&rpc.Context{Domain: "d"}, props)

	assert.Equal(t, "d", props.Domain)
	assert.Zero(t, props.NonceMaxAge)
}

func TestApplicationToApplication(t *testing.T) {
	m := mapping.For[rpc.Application, models.Application]()

	entry, ok := m.Set().Lookup("restrictedMethodsList")
	require.True(t, ok)
	assert.Equal(t, "restrictedMethods", entry.Target.Name)
	assert.True(t, entry.Collection())

	entry, ok = m.Set().Lookup("clientSecret")
	require.True(t, ok)
	assert.Equal(t, "clientSecret", entry.Target.Name)
	assert.Equal(t, 11, m.Set().Len())

	app := models.NewApplication()
	backing := app.RestrictedMethods
	m.Map(&rpc.Application{
		Name:                    "grafana",
		ClientID:                "id",
		ClientSecret:            "secret",
		Scope:                   "openid",
		RestrictedMethodsList:   []string{"POST", "PUT"},
		RequiredPermissionsList: []string{"read:dashboards"},
		ClaimsList:              []string{"email"},
	}, app)

	assert.Equal(t, "grafana", app.Name)
	assert.Equal(t, "id", app.ClientID)
	assert.Equal(t, "secret", app.ClientSecret)
	assert.Equal(t, "openid", app.Scope)
	assert.Equal(t, []string{"POST", "PUT"}, app.RestrictedMethods)
	assert.Same(t, &backing[0], &app.RestrictedMethods[0])
	assert.Equal(t, []string{"read:dashboards"}, app.RequiredPermissions)
	assert.Equal(t, []string{"email"}, app.Claims)
}
