// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rpc

import "github.com/MKhiriev/forward-auth-config/internal/mapping"

// Empty is the request of GetContext.
type Empty struct{}

// ApplicationRequest selects an application by name. A nil Name asks the
// service for its default application.
type ApplicationRequest struct {
	Name *string `json:"name,omitempty"`
}

// GetName returns the requested name or "" when none is set.
func (r *ApplicationRequest) GetName() string {
	if r == nil || r.Name == nil {
		return ""
	}
	return *r.Name
}

// Context is the top-level configuration of the forward-auth tenant.
type Context struct {
	Domain           string `json:"domain,omitempty"`
	TokenEndpoint    string `json:"tokenEndpoint,omitempty"`
	LogoutEndpoint   string `json:"logoutEndpoint,omitempty"`
	UserinfoEndpoint string `json:"userinfoEndpoint,omitempty"`
	AuthorizeURL     string `json:"authorizeUrl,omitempty"`
	NonceMaxAge      int32  `json:"nonceMaxAge,omitempty"`
	// RoleList holds the roles known to the tenant.
	RoleList []string `json:"roleList,omitempty"`
}

// Attributes implements the mapping.Describable constraint.
func (*Context) Attributes() []mapping.Attribute {
	return []mapping.Attribute{
		mapping.Scalar("domain",
			func(c *Context) string { return c.Domain },
			func(c *Context, v string) { c.Domain = v }),
		mapping.Scalar("tokenEndpoint",
			func(c *Context) string { return c.TokenEndpoint },
			func(c *Context, v string) { c.TokenEndpoint = v }),
		mapping.Scalar("logoutEndpoint",
			func(c *Context) string { return c.LogoutEndpoint },
			func(c *Context, v string) { c.LogoutEndpoint = v }),
		mapping.Scalar("userinfoEndpoint",
			func(c *Context) string { return c.UserinfoEndpoint },
			func(c *Context, v string) { c.UserinfoEndpoint = v }),
		mapping.Scalar("authorizeUrl",
			func(c *Context) string { return c.AuthorizeURL },
			func(c *Context, v string) { c.AuthorizeURL = v }),
		mapping.Scalar("nonceMaxAge",
			func(c *Context) int32 { return c.NonceMaxAge },
			func(c *Context, v int32) { c.NonceMaxAge = v }),
		mapping.Repeated("roleList",
			func(c *Context) *[]string { return &c.RoleList },
			func(c *Context, v []string) { c.RoleList = v }),
	}
}

// Application is the per-application configuration served by the service.
type Application struct {
	Name                    string   `json:"name,omitempty"`
	ClientID                string   `json:"clientId,omitempty"`
	ClientSecret            string   `json:"clientSecret,omitempty"`
	Audience                string   `json:"audience,omitempty"`
	Scope                   string   `json:"scope,omitempty"`
	RedirectURI             string   `json:"redirectUri,omitempty"`
	TokenCookieDomain       string   `json:"tokenCookieDomain,omitempty"`
	ReturnTo                string   `json:"returnTo,omitempty"`
	RestrictedMethodsList   []string `json:"restrictedMethodsList,omitempty"`
	RequiredPermissionsList []string `json:"requiredPermissionsList,omitempty"`
	ClaimsList              []string `json:"claimsList,omitempty"`
}

// Attributes implements the mapping.Describable constraint.
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
		mapping.Repeated("restrictedMethodsList",
			func(a *Application) *[]string { return &a.RestrictedMethodsList },
			func(a *Application, v []string) { a.RestrictedMethodsList = v }),
		mapping.Repeated("requiredPermissionsList",
			func(a *Application) *[]string { return &a.RequiredPermissionsList },
			func(a *Application, v []string) { a.RequiredPermissionsList = v }),
		mapping.Repeated("claimsList",
			func(a *Application) *[]string { return &a.ClaimsList },
			func(a *Application, v []string) { a.ClaimsList = v }),
	}
}
