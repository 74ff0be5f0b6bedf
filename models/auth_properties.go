// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/forward-auth-config/internal/mapping"
)

// DefaultNonceMaxAge is the nonce lifetime in seconds set by
// [NewAuthProperties]. Mapping a remote context always overwrites it, with
// zero when the context carries no value.
const DefaultNonceMaxAge int32 = 60

// ErrNoApplicationFinder is returned by [AuthProperties.ApplicationByNameOrDefault]
// when the properties were built without a finder.
var ErrNoApplicationFinder = errors.New("no application finder configured")

// ApplicationFinder resolves an application descriptor by name. An empty name
// selects the default application.
type ApplicationFinder interface {
	FindApplication(ctx context.Context, name string) (*Application, error)
}

// AuthProperties is the tenant-wide forward-auth configuration.
//
// Values are filled from the remote context at startup; applications are
// resolved on demand through the finder given to [NewAuthProperties].
type AuthProperties struct {
	// Domain is the identity provider tenant domain.
	Domain string `json:"domain"`

	// TokenEndpoint is the OAuth token endpoint URL.
	TokenEndpoint string `json:"tokenEndpoint"`

	// LogoutEndpoint is the URL the user is sent to on sign-out.
	LogoutEndpoint string `json:"logoutEndpoint"`

	// UserinfoEndpoint is the OIDC userinfo endpoint URL.
	UserinfoEndpoint string `json:"userinfoEndpoint"`

	// AuthorizeURL is the OAuth authorize endpoint URL.
	AuthorizeURL string `json:"authorizeUrl"`

	// NonceMaxAge is the nonce lifetime in seconds; -1 disables the check.
	NonceMaxAge int32 `json:"nonceMaxAge"`

	finder ApplicationFinder
}

// NewAuthProperties returns properties with default values that resolve
// applications through finder.
func NewAuthProperties(finder ApplicationFinder) *AuthProperties {
	return &AuthProperties{
		NonceMaxAge: DefaultNonceMaxAge,
		finder:      finder,
	}
}

// ApplicationByNameOrDefault returns the application called name, or the
// default application when name is empty. Every call goes to the finder;
// results are not cached.
func (p *AuthProperties) ApplicationByNameOrDefault(ctx context.Context, name string) (*Application, error) {
	if p.finder == nil {
		return nil, ErrNoApplicationFinder
	}

	return p.finder.FindApplication(ctx, name)
}

// String implements fmt.Stringer.
func (p *AuthProperties) String() string {
	return fmt.Sprintf(
		"AuthProperties(domain='%s', tokenEndpoint='%s', logoutEndpoint='%s', userinfoEndpoint='%s', authorizeUrl='%s', nonceMaxAge=%d)",
		p.Domain, p.TokenEndpoint, p.LogoutEndpoint, p.UserinfoEndpoint, p.AuthorizeURL, p.NonceMaxAge,
	)
}

// Attributes implements the mapping.Describable constraint.
func (*AuthProperties) Attributes() []mapping.Attribute {
	return []mapping.Attribute{
		mapping.Scalar("domain",
			func(p *AuthProperties) string { return p.Domain },
			func(p *AuthProperties, v string) { p.Domain = v }),
		mapping.Scalar("tokenEndpoint",
			func(p *AuthProperties) string { return p.TokenEndpoint },
			func(p *AuthProperties, v string) { p.TokenEndpoint = v }),
		mapping.Scalar("logoutEndpoint",
			func(p *AuthProperties) string { return p.LogoutEndpoint },
			func(p *AuthProperties, v string) { p.LogoutEndpoint = v }),
		mapping.Scalar("userinfoEndpoint",
			func(p *AuthProperties) string { return p.UserinfoEndpoint },
			func(p *AuthProperties, v string) { p.UserinfoEndpoint = v }),
		mapping.Scalar("authorizeUrl",
			func(p *AuthProperties) string { return p.AuthorizeURL },
			func(p *AuthProperties, v string) { p.AuthorizeURL = v }),
		mapping.Scalar("nonceMaxAge",
			func(p *AuthProperties) int32 { return p.NonceMaxAge },
			func(p *AuthProperties, v int32) { p.NonceMaxAge = v }),
	}
}
