// Ordinal - Credit Card Rewards Recommendation Backend
// Copyright 2026 The Ordinal Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ordinal-app/ordinal

package models

import "time"

// User is an account holder. PasswordHash is the bcrypt hash of the login
// password; it is persisted but never returned by the API (see Profile).
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash,omitempty"`
	AIEnabled    bool      `json:"aiEnabled"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserProfile is the API-facing view of a User, without credentials.
type UserProfile struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	AIEnabled bool      `json:"aiEnabled"`
	CreatedAt time.Time `json:"createdAt"`
}

// Profile returns the credential-free view of the user.
func (u *User) Profile() UserProfile {
	return UserProfile{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		AIEnabled: u.AIEnabled,
		CreatedAt: u.CreatedAt,
	}
}

// CardTypes lists the accepted card network names.
var CardTypes = []string{"Visa", "Mastercard", "American Express", "Discover", "Other"}

// Card is a credit card owned by exactly one user. PointsBalance is the
// redeemable points balance; RewardsTier gates which catalog rewards the card
// can list.
type Card struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	CardName       string    `json:"cardName"`
	Issuer         string    `json:"issuer"`
	CardType       string    `json:"cardType"`
	RewardsTier    Tier      `json:"rewardsTier"`
	LastFourDigits string    `json:"lastFourDigits"`
	PointsBalance  float64   `json:"pointsBalance"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Transaction is an immutable spend fact on a card. The recommendation core
// only ever aggregates transactions; it never mutates them.
type Transaction struct {
	ID          string              `json:"id"`
	CardID      string              `json:"cardId"`
	UserID      string              `json:"userId"`
	Amount      float64             `json:"amount"`
	Merchant    string              `json:"merchant"`
	Category    TransactionCategory `json:"category"`
	Description string              `json:"description,omitempty"`
	Date        time.Time           `json:"date"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// Reward is a catalog entry users can redeem points against. Value is the
// dollar value of the reward; PointsCost is the redemption price in points.
type Reward struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	PointsCost  int            `json:"pointsCost"`
	Category    RewardCategory `json:"category"`
	Tier        Tier           `json:"tier"`
	Value       float64        `json:"value"`
	ImageURL    string         `json:"imageUrl,omitempty"`
	IsActive    bool           `json:"isActive"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
