// Ordinal - Credit Card Rewards Recommendation Backend
// Copyright 2026 The Ordinal Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ordinal-app/ordinal

package api

import (
	"net/http"

	"github.com/ordinal-app/ordinal/internal/models"
)

// CreateCard handles POST /api/v1/cards.
func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, ok := h.userID(rw, r)
	if !ok {
		return
	}

	var req CreateCardRequest
	if !decodeValid(rw, r, &req) {
		return
	}

	tier, _ := models.ParseTier(req.RewardsTier)
	card := &models.Card{
		UserID:         userID,
		CardName:       req.CardName,
		Issuer:         req.Issuer,
		CardType:       req.CardType,
		RewardsTier:    tier,
		LastFourDigits: req.LastFourDigits,
		PointsBalance:  req.PointsBalance,
	}
	if err := h.store.CreateCard(r.Context(), card); err != nil {
		rw.storeError(err, "User not found")
		return
	}

	h.logger.Info().Str("card_id", card.ID).Str("user_id", userID).Msg("Card created")
	rw.Created(card)
}

// ListCards handles GET /api/v1/cards.
func (h *Handler) ListCards(w http.ResponseWriter, r *http.Request) {
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
	rw.Success(cards)
}

// GetCard handles GET /api/v1/cards/{cardID}.
func (h *Handler) GetCard(w http.ResponseWriter, r *http.Request) {
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
	rw.Success(card)
}

// UpdateCard handles PUT /api/v1/cards/{cardID}.
func (h *Handler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, ok := h.userID(rw, r)
	if !ok {
		return
	}

	var req UpdateCardRequest
	if !decodeValid(rw, r, &req) {
		return
	}

	card, err := h.store.GetUserCard(r.Context(), userID, pathParam(r, "cardID"))
	if err != nil {
		rw.storeError(err, "Card not found")
		return
	}

	if req.CardName != nil {
		card.CardName = *req.CardName
	}
	if req.Issuer != nil {
		card.Issuer = *req.Issuer
	}
	if req.CardType != nil {
		card.CardType = *req.CardType
	}
	if req.RewardsTier != nil {
		tier, _ := models.ParseTier(*req.RewardsTier)
		card.RewardsTier = tier
	}
	if req.LastFourDigits != nil {
		card.LastFourDigits = *req.LastFourDigits
	}
	if req.PointsBalance != nil {
		card.PointsBalance = *req.PointsBalance
	}

	if err := h.store.UpdateCard(r.Context(), card); err != nil {
		rw.storeError(err, "Card not found")
		return
	}
	rw.Success(card)
}

// DeleteCard handles DELETE /api/v1/cards/{cardID}. The card's transactions
// are removed with it.
func (h *Handler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, ok := h.userID(rw, r)
	if !ok {
		return
	}

	cardID := pathParam(r, "cardID")
	if err := h.store.DeleteCard(r.Context(), userID, cardID); err != nil {
		rw.storeError(err, "Card not found")
		return
	}

	h.logger.Info().Str("card_id", cardID).Str("user_id", userID).Msg("Card deleted")
	rw.NoContent()
}
