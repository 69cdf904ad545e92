// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the JSON API over the blog and auth
// stores. Handlers are grouped by surface: Public for the reading site,
// Auth for the account lifecycle, Admin for content management and Site
// for site-level settings.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"inkwell/internal/gateway"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("write json response failed", "error", err)
	}
}

// errResponse is the uniform error body.
type errResponse struct {
	Error string `json:"error"`
}

// writeError maps an error to a JSON error response. Gateway
// unavailability becomes 503 so clients can distinguish "backend off"
// from a real failure.
func writeError(w http.ResponseWriter, status int, err error) {
	if errors.Is(err, gateway.ErrNotConfigured) {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, errResponse{Error: err.Error()})
}

// decode parses a JSON request body into dst, limited to 1 MiB.
func decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
