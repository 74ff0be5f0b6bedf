// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bootstrap fetches the forward-auth configuration from the remote
// configuration service at process start.
//
// [Fetch] requests the tenant context until it succeeds or the [Policy] is
// exhausted, logging one warning per failed attempt, and maps the result onto
// [models.AuthProperties]. The returned properties resolve applications on
// demand through an [ApplicationLookup], which performs a single remote call
// per request and never retries.
package bootstrap
