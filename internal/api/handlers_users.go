// Ordinal - Credit Card Rewards Recommendation Backend
// Copyright 2026 The Ordinal Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ordinal-app/ordinal

package api

import (
	"net/http"
	"strings"
)

// Me handles GET /api/v1/users/me.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, ok := h.userID(rw, r)
	if !ok {
		return
	}

	user, err := h.store.GetUser(r.Context(), userID)
	if err != nil {
		rw.storeError(err, "User not found")
		return
	}
	rw.Success(user.Profile())
}

// UpdateMe handles PATCH /api/v1/users/me.
func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, ok := h.userID(rw, r)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if !decodeValid(rw, r, &req) {
		return
	}

	user, err := h.store.GetUser(r.Context(), userID)
	if err != nil {
		rw.storeError(err, "User not found")
		return
	}

	if req.Username != nil {
		user.Username = strings.TrimSpace(*req.Username)
	}
	if req.Email != nil {
		user.Email = *req.Email
	}

	if err := h.store.UpdateUser(r.Context(), user); err != nil {
		rw.storeError(err, "User not found")
		return
	}
	rw.Success(user.Profile())
}

// ToggleAI handles PATCH /api/v1/users/me/ai-toggle. The flag switches the
// ranked rewards endpoint between personalized scoring and the points-cost
// fallback.
func (h *Handler) ToggleAI(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, ok := h.userID(rw, r)
	if !ok {
		return
	}

	var req AIToggleRequest
	if !decodeValid(rw, r, &req) {
		return
	}

	user, err := h.store.SetAIEnabled(r.Context(), userID, *req.Enabled)
	if err != nil {
		rw.storeError(err, "User not found")
		return
	}

	h.logger.Info().Str("user_id", userID).Bool("ai_enabled", user.AIEnabled).Msg("AI flag toggled")
	rw.Success(user.Profile())
}
