// Ordinal - Credit Card Rewards Recommendation Backend
// Copyright 2026 The Ordinal Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ordinal-app/ordinal

package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ordinal-app/ordinal/internal/auth"
	"github.com/ordinal-app/ordinal/internal/metrics"
	"github.com/ordinal-app/ordinal/internal/models"
	"github.com/ordinal-app/ordinal/internal/store"
)

// authResponse is the payload returned by register and login.
type authResponse struct {
	Token string             `json:"token"`
	User  models.UserProfile `json:"user"`
}

// Register handles POST /api/v1/auth/register. New accounts start with
// AI-powered recommendations enabled.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req RegisterRequest
	if !decodeValid(rw, r, &req) {
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		rw.InternalError(err)
		return
	}

	user := &models.User{
		Username:     strings.TrimSpace(req.Username),
		Email:        req.Email,
		PasswordHash: hash,
		AIEnabled:    true,
	}
	if err := h.store.CreateUser(r.Context(), user); err != nil {
		rw.storeError(err, "User not found")
		return
	}
	metrics.RecordRegistration()

	token, err := h.jwt.GenerateToken(user.ID, user.Username)
	if err != nil {
		rw.InternalError(err)
		return
	}

	h.logger.Info().Str("user_id", user.ID).Msg("User registered")
	rw.Created(authResponse{Token: token, User: user.Profile()})
}

// Login handles POST /api/v1/auth/login. Unknown emails and wrong passwords
// produce the same response so the endpoint does not leak which emails exist.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req LoginRequest
	if !decodeValid(rw, r, &req) {
		return
	}

	user, err := h.store.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			metrics.RecordLogin(false)
			rw.Unauthorized("Invalid email or password")
			return
		}
		rw.InternalError(err)
		return
	}

	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		metrics.RecordLogin(false)
		rw.Unauthorized("Invalid email or password")
		return
	}

	token, err := h.jwt.GenerateToken(user.ID, user.Username)
	if err != nil {
		rw.InternalError(err)
		return
	}
	metrics.RecordLogin(true)

	h.logger.Info().Str("user_id", user.ID).Msg("User logged in")
	rw.Success(authResponse{Token: token, User: user.Profile()})
}
