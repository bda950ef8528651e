// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-config-resolver/internal/engine"
	"github.com/MKhiriev/go-config-resolver/internal/logger"
)

// Handler serves diagnostics routes over a sealed [engine.Config].
type Handler struct {
	cfg *engine.Config

	logger *logger.Logger
}

func NewHandler(cfg *engine.Config, logger *logger.Logger) *Handler {
	logger.Info().Msg("diagnostics handler created")
	return &Handler{
		cfg:    cfg,
		logger: logger,
	}
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	router.Group(func(r chi.Router) {
		r.Get("/api/config/", h.getConfig)
		r.Get("/api/config/*", h.getConfigPath)
		r.Get("/api/providers/", h.getProviders)
	})

	return router
}

// getConfig writes the whole merged configuration tree as JSON.
func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.cfg.Root())
}

// getConfigPath writes the subtree or leaf found at the dotted path taken
// from the URL tail, e.g. GET /api/config/server.port. Additional profiles
// may be activated for the lookup with ?profiles=a,b.
func (h *Handler) getConfigPath(w http.ResponseWriter, r *http.Request) {
	path := chi.URLParam(r, "*")
	profiles := splitProfiles(r.URL.Query().Get("profiles"))

	value, ok := h.cfg.Get(path, profiles...)
	if !ok {
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "no value at path " + path})
		return
	}

	h.writeJSON(w, http.StatusOK, value)
}

// getProviders writes the snapshot describing which providers contributed
// to the sealed configuration and from which locations.
func (h *Handler) getProviders(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.cfg.Snapshot())
}

func splitProfiles(raw string) []string {
	if raw == "" {
		return nil
	}

	var profiles []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			profiles = append(profiles, p)
		}
	}

	return profiles
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode diagnostics response")
	}
}
