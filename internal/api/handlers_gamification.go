// Ordinal - Credit Card Rewards Recommendation Backend
// Copyright 2026 The Ordinal Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ordinal-app/ordinal

package api

import (
	"net/http"

	"github.com/ordinal-app/ordinal/internal/recommend"
)

// Gamification handles GET /api/v1/cards/gamification: tier progress for
// every card the user owns, computed over the last 30 days of spend.
func (h *Handler) Gamification(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, ok := h.userID(rw, r)
	if !ok {
		return
	}

	cards, err := h.store.ListCards(r.Context(), userID)
	if err != nil {
		rw.InternalError(err)
		return
	}

	now := h.now()
	progress := make([]recommend.TierProgress, 0, len(cards))
	for _, card := range cards {
		txns, err := h.store.ListTransactions(r.Context(), card.ID, 0)
		if err != nil {
			rw.InternalError(err)
			return
		}
		progress = append(progress, recommend.TierProgressFor(card, txns, now))
	}
	rw.Success(progress)
}

// CardGamification handles GET /api/v1/cards/{cardID}/gamification: the tier
// progress summary for one card.
func (h *Handler) CardGamification(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, ok := h.userID(rw, r)
	if !ok {
		return
	}

	card, err := h.store.GetUserCard(r.Context(), userID, pathParam(r, "cardID"))
	if err != nil {
		rw.storeError(err, "Card not found")
		return
	}

	txns, err := h.store.ListTransactions(r.Context(), card.ID, 0)
	if err != nil {
		rw.InternalError(err)
		return
	}
	rw.Success(recommend.TierProgressFor(*card, txns, h.now()))
}
