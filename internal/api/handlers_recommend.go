// Ordinal - Credit Card Rewards Recommendation Backend
// Copyright 2026 The Ordinal Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ordinal-app/ordinal

package api

import (
	"net/http"
	"time"

	"github.com/ordinal-app/ordinal/internal/metrics"
	"github.com/ordinal-app/ordinal/internal/models"
	"github.com/ordinal-app/ordinal/internal/recommend"
)

// tierListingLimit caps the non-ranked tier listing.
const tierListingLimit = 6

// rankInputs fetches the snapshot a ranking pass needs: the ownership-checked
// card, its transactions, the active catalog, and the user's AI flag. All
// reads complete before scoring starts so the pass never races catalog or
// transaction mutation.
func (h *Handler) rankInputs(rw *ResponseWriter, r *http.Request, userID string) (*models.Card, []models.Transaction, []models.Reward, bool, bool) {
	card, err := h.store.GetUserCard(r.Context(), userID, pathParam(r, "cardID"))
	if err != nil {
		rw.storeError(err, "Card not found")
		return nil, nil, nil, false, false
	}

	txns, err := h.store.ListTransactions(r.Context(), card.ID, 0)
	if err != nil {
		rw.InternalError(err)
		return nil, nil, nil, false, false
	}

	catalog, err := h.store.ListRewards(r.Context(), true)
	if err != nil {
		rw.InternalError(err)
		return nil, nil, nil, false, false
	}

	user, err := h.store.GetUser(r.Context(), userID)
	if err != nil {
		rw.storeError(err, "User not found")
		return nil, nil, nil, false, false
	}

	return card, txns, catalog, user.AIEnabled, true
}

func rankingMode(aiEnabled bool, result recommend.RankResult) string {
	switch {
	case !aiEnabled:
		return "fallback"
	case len(result.Rewards) == 0:
		return "empty"
	default:
		return "personalized"
	}
}

// RankedRewards handles GET /api/v1/cards/{cardID}/rewards/ranked. With AI
// enabled the response is the personalized NBA ranking with per-reward
// reasons and the spending analysis; with AI disabled it is the active
// catalog ascending by points cost.
func (h *Handler) RankedRewards(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, ok := h.userID(rw, r)
	if !ok {
		return
	}

	card, txns, catalog, aiEnabled, ok := h.rankInputs(rw, r, userID)
	if !ok {
		return
	}

	start := time.Now()
	result := h.engine.Rank(txns, catalog, aiEnabled)
	metrics.RecordRankingPass(rankingMode(aiEnabled, result), time.Since(start), len(result.Rewards))

	h.logger.Debug().
		Str("card_id", card.ID).
		Int("transactions", len(txns)).
		Int("ranked", len(result.Rewards)).
		Bool("ai_enabled", aiEnabled).
		Msg("Ranked rewards served")
	rw.Success(result)
}

// CardRewards handles GET /api/v1/cards/{cardID}/rewards: the non-ranked
// listing of active rewards the card's tier can redeem, ascending by points
// cost, capped at six. No scoring applies.
func (h *Handler) CardRewards(w http.ResponseWriter, r *http.Request) {
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

	catalog, err := h.store.ListRewards(r.Context(), true)
	if err != nil {
		rw.InternalError(err)
		return
	}

	rw.Success(map[string]interface{}{
		"cardId":  card.ID,
		"tier":    card.RewardsTier,
		"rewards": recommend.TierEligible(catalog, card.RewardsTier, tierListingLimit),
	})
}

// Recommendations handles GET /api/v1/cards/{cardID}/recommendations: the
// tier-filtered catalog, NBA-ranked when the user's AI flag is on, otherwise
// ascending by points cost.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, ok := h.userID(rw, r)
	if !ok {
		return
	}

	card, txns, catalog, aiEnabled, ok := h.rankInputs(rw, r, userID)
	if !ok {
		return
	}

	tierCatalog := recommend.TierEligible(catalog, card.RewardsTier, 0)

	start := time.Now()
	result := h.engine.Rank(txns, tierCatalog, aiEnabled)
	metrics.RecordRankingPass(rankingMode(aiEnabled, result), time.Since(start), len(result.Rewards))

	rw.Success(map[string]interface{}{
		"cardId":          card.ID,
		"tier":            card.RewardsTier,
		"message":         result.Message,
		"recommendations": result.Rewards,
		"aiEnabled":       result.AIEnabled,
	})
}
