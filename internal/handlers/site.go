// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"
	"sync"

	"inkwell/internal/models"
	"inkwell/internal/session"
)

// Site serves the site-level settings. The language choice is persisted
// through the session store so it survives restarts.
type Site struct {
	persist *session.Store

	mu     sync.RWMutex
	config models.SiteConfig
}

// NewSite creates a Site handler group, restoring a persisted language
// choice over the default.
func NewSite(persist *session.Store, config models.SiteConfig) *Site {
	if lang, err := persist.Get(session.KeyLanguage); err == nil && lang != "" {
		config.Language = lang
	}
	return &Site{persist: persist, config: config}
}

// GetConfig returns the site configuration.
func (s *Site) GetConfig(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	config := s.config
	s.mu.RUnlock()
	writeJSON(w, http.StatusOK, config)
}

type languageRequest struct {
	Language string `json:"language"`
}

// SetLanguage switches the site language and persists the choice.
func (s *Site) SetLanguage(w http.ResponseWriter, r *http.Request) {
	var req languageRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Language != "en" && req.Language != "zh" {
		writeError(w, http.StatusBadRequest, errors.New("language must be en or zh"))
		return
	}

	s.mu.Lock()
	s.config.Language = req.Language
	s.mu.Unlock()

	if err := s.persist.Set(session.KeyLanguage, req.Language); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
