// Ordinal - Credit Card Rewards Recommendation Backend
// Copyright 2026 The Ordinal Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ordinal-app/ordinal

package api

import (
	"net/http"

	"github.com/ordinal-app/ordinal/internal/models"
)

// ListRewards handles GET /api/v1/rewards. By default only active catalog
// entries are returned; ?all=true includes retired ones.
func (h *Handler) ListRewards(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	activeOnly := r.URL.Query().Get("all") != "true"
	rewards, err := h.store.ListRewards(r.Context(), activeOnly)
	if err != nil {
		rw.InternalError(err)
		return
	}
	rw.Success(rewards)
}

// GetReward handles GET /api/v1/rewards/{rewardID}.
func (h *Handler) GetReward(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	reward, err := h.store.GetReward(r.Context(), pathParam(r, "rewardID"))
	if err != nil {
		rw.storeError(err, "Reward not found")
		return
	}
	rw.Success(reward)
}

// CreateReward handles POST /api/v1/rewards.
func (h *Handler) CreateReward(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req CreateRewardRequest
	if !decodeValid(rw, r, &req) {
		return
	}

	category, _ := models.ParseRewardCategory(req.Category)
	tier, _ := models.ParseTier(req.Tier)
	reward := &models.Reward{
		Title:       req.Title,
		Description: req.Description,
		PointsCost:  req.PointsCost,
		Category:    category,
		Tier:        tier,
		Value:       req.Value,
		ImageURL:    req.ImageURL,
		IsActive:    req.IsActive,
	}
	if err := h.store.CreateReward(r.Context(), reward); err != nil {
		rw.InternalError(err)
		return
	}

	h.logger.Info().Str("reward_id", reward.ID).Str("title", reward.Title).Msg("Reward created")
	rw.Created(reward)
}

// UpdateReward handles PUT /api/v1/rewards/{rewardID}.
func (h *Handler) UpdateReward(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req UpdateRewardRequest
	if !decodeValid(rw, r, &req) {
		return
	}

	reward, err := h.store.GetReward(r.Context(), pathParam(r, "rewardID"))
	if err != nil {
		rw.storeError(err, "Reward not found")
		return
	}

	if req.Title != nil {
		reward.Title = *req.Title
	}
	if req.Description != nil {
		reward.Description = *req.Description
	}
	if req.PointsCost != nil {
		reward.PointsCost = *req.PointsCost
	}
	if req.Category != nil {
		category, _ := models.ParseRewardCategory(*req.Category)
		reward.Category = category
	}
	if req.Tier != nil {
		tier, _ := models.ParseTier(*req.Tier)
		reward.Tier = tier
	}
	if req.Value != nil {
		reward.Value = *req.Value
	}
	if req.ImageURL != nil {
		reward.ImageURL = *req.ImageURL
	}
	if req.IsActive != nil {
		reward.IsActive = *req.IsActive
	}

	if err := h.store.UpdateReward(r.Context(), reward); err != nil {
		rw.storeError(err, "Reward not found")
		return
	}
	rw.Success(reward)
}

// DeleteReward handles DELETE /api/v1/rewards/{rewardID}.
func (h *Handler) DeleteReward(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	if err := h.store.DeleteReward(r.Context(), pathParam(r, "rewardID")); err != nil {
		rw.storeError(err, "Reward not found")
		return
	}
	rw.NoContent()
}
