// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/MKhiriev/forward-auth-config/internal/mapping"
)

// DefaultScope is the OAuth scope requested when an application sets none.
const DefaultScope = "profile openid email"

// DefaultRestrictedMethods lists the HTTP methods that require
// authentication unless an application narrows them.
var DefaultRestrictedMethods = []string{"DELETE", "GET", "HEAD", "OPTIONS", "PATCH", "POST", "PUT"}

// Application describes one application protected by forward-auth.
//
// Client credentials are never serialised and never printed.
type Application struct {
	Name              string `json:"name"`
	ClientID          string `json:"-"`
	ClientSecret      string `json:"-"`
	Audience          string `json:"audience"`
	Scope             string `json:"scope"`
	RedirectURI       string `json:"redirectUri"`
	TokenCookieDomain string `json:"tokenCookieDomain"`
	ReturnTo          string `json:"returnTo"`

	// RestrictedMethods are the HTTP methods that require authentication.
	RestrictedMethods []string `json:"restrictedMethods"`

	// RequiredPermissions must all be present in the access token.
	RequiredPermissions []string `json:"requiredPermissions"`

	// Claims are copied from the token into forwarded request headers.
	Claims []string `json:"claims"`
}

// NewApplication returns an application populated with defaults.
func NewApplication() *Application {
	methods := make([]string, len(DefaultRestrictedMethods))
	copy(methods, DefaultRestrictedMethods)

	return &Application{
		Scope:               DefaultScope,
		RestrictedMethods:   methods,
		RequiredPermissions: []string{},
		Claims:              []string{},
	}
}

// String implements fmt.Stringer. Client credentials are left out.
func (a *Application) String() string {
	return fmt.Sprintf(
		"Application(name='%s', audience='%s', scope='%s', redirectUri='%s', tokenCookieDomain='%s', returnTo='%s', restrictedMethods=%v, requiredPermissions=%v, claims=%v)",
		a.Name, a.Audience, a.Scope, a.RedirectURI, a.TokenCookieDomain, a.ReturnTo,
		a.RestrictedMethods, a.RequiredPermissions, a.Claims,
	)
}

// Attributes implements the mapping.Describable constraint. Collections are
// refilled in place and cannot be reassigned.
func (*Application) Attributes() []mapping.Attribute {
	return []mapping.Attribute{
		mapping.Scalar("name",
			func(a *Application) string { return a.Name },
			func(a *Application, v string) { a.Name = v }),
		mapping.Scalar("clientId",
			func(a *Application) string { return a.ClientID },
			func(a *Application, v string) { a.ClientID = v }),
		mapping.Scalar("clientSecret",
			func(a *Application) string { return a.ClientSecret },
			func(a *Application, v string) { a.ClientSecret = v }),
		mapping.Scalar("audience",
			func(a *Application) string { return a.Audience },
			func(a *Application, v string) { a.Audience = v }),
		mapping.Scalar("scope",
			func(a *Application) string { return a.Scope },
			func(a *Application, v string) { a.Scope = v }),
		mapping.Scalar("redirectUri",
			func(a *Application) string { return a.RedirectURI },
			func(a *Application, v string) { a.RedirectURI = v }),
		mapping.Scalar("tokenCookieDomain",
			func(a *Application) string { return a.TokenCookieDomain },
			func(a *Application, v string) { a.TokenCookieDomain = v }),
		mapping.Scalar("returnTo",
			func(a *Application) string { return a.ReturnTo },
			func(a *Application, v string) { a.ReturnTo = v }),
		mapping.Repeated("restrictedMethods",
			func(a *Application) *[]string { return &a.RestrictedMethods }, nil),
		mapping.Repeated("requiredPermissions",
			func(a *Application) *[]string { return &a.RequiredPermissions }, nil),
		mapping.Repeated("claims",
			func(a *Application) *[]string { return &a.Claims }, nil),
	}
}
