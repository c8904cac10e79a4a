// Ordinal - Credit Card Rewards Recommendation Backend
// Copyright 2026 The Ordinal Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ordinal-app/ordinal

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/ordinal-app/ordinal/internal/auth"
	"github.com/ordinal-app/ordinal/internal/recommend"
	"github.com/ordinal-app/ordinal/internal/store"
	"github.com/ordinal-app/ordinal/internal/validation"
)

// Handler carries the dependencies shared by all HTTP handlers.
type Handler struct {
	store     *store.Store
	engine    *recommend.Engine
	jwt       *auth.JWTManager
	logger    zerolog.Logger
	version   string
	startTime time.Time

	// now is swappable for tests; defaults to time.Now.
	now func() time.Time
}

// NewHandler creates the handler set.
func NewHandler(st *store.Store, engine *recommend.Engine, jwt *auth.JWTManager, logger zerolog.Logger, version string) *Handler {
	return &Handler{
		store:     st,
		engine:    engine,
		jwt:       jwt,
		logger:    logger,
		version:   version,
		startTime: time.Now(),
		now:       time.Now,
	}
}

// userID extracts the authenticated user ID, writing a 401 when absent.
// The auth middleware guarantees presence on protected routes; this guards
// against handler wiring mistakes.
func (h *Handler) userID(rw *ResponseWriter, r *http.Request) (string, bool) {
	id := auth.UserIDFromContext(r.Context())
	if id == "" {
		rw.Unauthorized("Authentication required")
		return "", false
	}
	return id, true
}

// decodeValid decodes the request body into dst and validates it, writing
// the error response on failure.
func decodeValid(rw *ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := decodeJSON(r, dst); err != nil {
		rw.BadRequest("Invalid JSON body: " + err.Error())
		return false
	}
	if verr := validation.ValidateStruct(dst); verr != nil {
		rw.ValidationFailed(verr)
		return false
	}
	return true
}

// storeError maps store sentinel errors onto HTTP error responses.
func (rw *ResponseWriter) storeError(err error, notFoundMessage string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		rw.NotFound(notFoundMessage)
	case errors.Is(err, store.ErrEmailTaken):
		rw.Conflict("Email address is already registered")
	case errors.Is(err, store.ErrUsernameTaken):
		rw.Conflict("Username is already taken")
	default:
		rw.InternalError(err)
	}
}

func pathParam(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}
