// Ordinal - Credit Card Rewards Recommendation Backend
// Copyright 2026 The Ordinal Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ordinal-app/ordinal

package api

import (
	"net/http"
	"strconv"

	"github.com/ordinal-app/ordinal/internal/models"
)

// CreateTransaction handles POST /api/v1/cards/{cardID}/transactions.
func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, ok := h.userID(rw, r)
	if !ok {
		return
	}

	var req CreateTransactionRequest
	if !decodeValid(rw, r, &req) {
		return
	}

	card, err := h.store.GetUserCard(r.Context(), userID, pathParam(r, "cardID"))
	if err != nil {
		rw.storeError(err, "Card not found")
		return
	}

	category, _ := models.ParseTransactionCategory(req.Category)
	txn := &models.Transaction{
		CardID:      card.ID,
		UserID:      userID,
		Amount:      req.Amount,
		Merchant:    req.Merchant,
		Category:    category,
		Description: req.Description,
		Date:        req.Date,
	}
	if err := h.store.CreateTransaction(r.Context(), txn); err != nil {
		rw.storeError(err, "Card not found")
		return
	}
	rw.Created(txn)
}

// ListTransactions handles GET /api/v1/cards/{cardID}/transactions. An
// optional ?limit= query caps the date-descending list.
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
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

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			rw.BadRequest("limit must be a non-negative integer")
			return
		}
	}

	txns, err := h.store.ListTransactions(r.Context(), card.ID, limit)
	if err != nil {
		rw.InternalError(err)
		return
	}
	rw.Success(txns)
}

// DeleteTransaction handles
// DELETE /api/v1/cards/{cardID}/transactions/{transactionID}.
func (h *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
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

	if err := h.store.DeleteTransaction(r.Context(), card.ID, pathParam(r, "transactionID")); err != nil {
		rw.storeError(err, "Transaction not found")
		return
	}
	rw.NoContent()
}
