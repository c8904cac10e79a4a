// Ordinal - Credit Card Rewards Recommendation Backend
// Copyright 2026 The Ordinal Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ordinal-app/ordinal

package recommend

import (
	"github.com/ordinal-app/ordinal/internal/models"
)

// SpendingProfile is an ephemeral summary of a card's recent spending. It is
// rebuilt per ranking request from the transaction window and never persisted.
//
// Invariant: Total equals the sum of Categories values and the sum of
// Merchants values, within floating rounding.
type SpendingProfile struct {
	// Total is the sum of all transaction amounts in the window.
	Total float64 `json:"total"`

	// Categories maps transaction category to total spend.
	Categories map[models.TransactionCategory]float64 `json:"categories"`

	// TransactionCounts maps transaction category to transaction count.
	TransactionCounts map[models.TransactionCategory]int `json:"transactionCounts"`

	// Merchants maps normalized merchant name to total spend.
	Merchants map[string]float64 `json:"merchants"`

	// merchantNames maps normalized merchant name to the first-seen display
	// name, used by the reason builder. Not serialized.
	merchantNames map[string]string
}

// MerchantDisplayName returns the original display name recorded for a
// normalized merchant key, or the key itself if none was recorded.
func (p *SpendingProfile) MerchantDisplayName(normalized string) string {
	if name, ok := p.merchantNames[normalized]; ok {
		return name
	}
	return normalized
}

// CategoryShare returns the fraction of total spend in a single transaction
// category. Zero-total profiles carry no spending signal and always share 0.
func (p *SpendingProfile) CategoryShare(cat models.TransactionCategory) float64 {
	if p.Total <= 0 {
		return 0
	}
	return p.Categories[cat] / p.Total
}

// ScoredReward is a catalog reward annotated with its NBA score and a
// human-readable justification. The reward's tier is deliberately absent: the
// ranked payload is personalized, not tier-gated.
type ScoredReward struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	PointsCost  int                   `json:"pointsCost"`
	Category    models.RewardCategory `json:"category"`
	Value       float64               `json:"value"`
	ImageURL    string                `json:"imageUrl,omitempty"`
	IsActive    bool                  `json:"isActive"`
	NBAScore    float64               `json:"nbaScore,omitempty"`
	Reason      string                `json:"reason,omitempty"`
}

// newScoredReward copies the API-facing reward fields into a ScoredReward.
func newScoredReward(r models.Reward) ScoredReward {
	return ScoredReward{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		PointsCost:  r.PointsCost,
		Category:    r.Category,
		Value:       r.Value,
		ImageURL:    r.ImageURL,
		IsActive:    r.IsActive,
	}
}

// RankResult is the outcome of one ranking pass.
type RankResult struct {
	// Message is a short human-facing summary of the outcome.
	Message string `json:"message"`

	// Rewards is the ordered recommendation list, capped per Config.
	Rewards []ScoredReward `json:"rewards"`

	// SpendingAnalysis is the profile the ranking was computed from. Nil when
	// the window was empty or scoring was bypassed.
	SpendingAnalysis *SpendingProfile `json:"spendingAnalysis,omitempty"`

	// AIEnabled reports whether personalized scoring was applied.
	AIEnabled bool `json:"aiEnabled"`
}
