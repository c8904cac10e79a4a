// Ordinal - Credit Card Rewards Recommendation Backend
// Copyright 2026 The Ordinal Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ordinal-app/ordinal

package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

// maxRequestBody caps request body reads. All Ordinal payloads are small
// JSON documents.
const maxRequestBody = 1 << 20

var errEmptyBody = errors.New("empty request body")

// decodeJSON decodes a JSON request body into dst, rejecting unknown fields
// and oversized payloads.
func decodeJSON(r *http.Request, dst interface{}) error {
	defer func() { _, _ = io.Copy(io.Discard, r.Body) }()

	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		return err
	}
	return nil
}

// RegisterRequest is the payload for POST /api/v1/auth/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest is the payload for POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest is the payload for PATCH /api/v1/users/me. Absent fields
// are left unchanged.
type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=32"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

// AIToggleRequest is the payload for PATCH /api/v1/users/me/ai-toggle. The
// pointer distinguishes an explicit false from an absent field.
type AIToggleRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// CreateCardRequest is the payload for POST /api/v1/cards.
type CreateCardRequest struct {
	CardName       string  `json:"cardName" validate:"required,max=64"`
	Issuer         string  `json:"issuer" validate:"required,max=64"`
	CardType       string  `json:"cardType" validate:"required,oneof=Visa Mastercard 'American Express' Discover Other"`
	RewardsTier    string  `json:"rewardsTier" validate:"required,tier"`
	LastFourDigits string  `json:"lastFourDigits" validate:"required,lastfour"`
	PointsBalance  float64 `json:"pointsBalance" validate:"gte=0"`
}

// UpdateCardRequest is the payload for PUT /api/v1/cards/{cardID}. Absent
// fields are left unchanged.
type UpdateCardRequest struct {
	CardName       *string  `json:"cardName" validate:"omitempty,max=64"`
	Issuer         *string  `json:"issuer" validate:"omitempty,max=64"`
	CardType       *string  `json:"cardType" validate:"omitempty,oneof=Visa Mastercard 'American Express' Discover Other"`
	RewardsTier    *string  `json:"rewardsTier" validate:"omitempty,tier"`
	LastFourDigits *string  `json:"lastFourDigits" validate:"omitempty,lastfour"`
	PointsBalance  *float64 `json:"pointsBalance" validate:"omitempty,gte=0"`
}

// CreateTransactionRequest is the payload for
// POST /api/v1/cards/{cardID}/transactions. A zero Date defaults to now.
type CreateTransactionRequest struct {
	Merchant    string    `json:"merchant" validate:"required,max=128"`
	Amount      float64   `json:"amount" validate:"required,gt=0"`
	Category    string    `json:"category" validate:"required,txcategory"`
	Description string    `json:"description" validate:"omitempty,max=256"`
	Date        time.Time `json:"date"`
}

// CreateRewardRequest is the payload for POST /api/v1/rewards.
type CreateRewardRequest struct {
	Title       string  `json:"title" validate:"required,max=128"`
	Description string  `json:"description" validate:"omitempty,max=512"`
	PointsCost  int     `json:"pointsCost" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required,rewardcategory"`
	Tier        string  `json:"tier" validate:"required,tier"`
	Value       float64 `json:"value" validate:"gte=0"`
	ImageURL    string  `json:"imageUrl" validate:"omitempty,url"`
	IsActive    bool    `json:"isActive"`
}

// UpdateRewardRequest is the payload for PUT /api/v1/rewards/{rewardID}.
// Absent fields are left unchanged.
type UpdateRewardRequest struct {
	Title       *string  `json:"title" validate:"omitempty,max=128"`
	Description *string  `json:"description" validate:"omitempty,max=512"`
	PointsCost  *int     `json:"pointsCost" validate:"omitempty,gt=0"`
	Category    *string  `json:"category" validate:"omitempty,rewardcategory"`
	Tier        *string  `json:"tier" validate:"omitempty,tier"`
	Value       *float64 `json:"value" validate:"omitempty,gte=0"`
	ImageURL    *string  `json:"imageUrl" validate:"omitempty,url"`
	IsActive    *bool    `json:"isActive"`
}
