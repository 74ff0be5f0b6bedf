// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

// CheckHTTPMethod is installed as the router's MethodNotAllowed handler. chi
// calls it only for a known path requested with an unregistered method, and
// it always answers 404 so unsupported methods do not reveal which paths
// exist.
func CheckHTTPMethod(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNotFound)
}
