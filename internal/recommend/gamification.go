// Ordinal - Credit Card Rewards Recommendation Backend
// Copyright 2026 The Ordinal Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ordinal-app/ordinal

package recommend

import (
	"fmt"
	"math"
	"time"

	"github.com/ordinal-app/ordinal/internal/models"
)

// tierThresholds is the 30-day spend required to qualify for each tier.
var tierThresholds = map[models.Tier]float64{
	models.TierBasic:    0,
	models.TierSilver:   1000,
	models.TierGold:     5000,
	models.TierPlatinum: 15000,
	models.TierPremium:  50000,
}

// TierThreshold returns the 30-day spend threshold for a tier.
func TierThreshold(t models.Tier) float64 {
	return tierThresholds[t]
}

// TierProgress summarizes a card's progress toward the next rewards tier.
type TierProgress struct {
	CardID             string       `json:"cardId"`
	CardName           string       `json:"cardName"`
	CurrentTier        models.Tier  `json:"currentTier"`
	NextTier           *models.Tier `json:"nextTier"`
	Message            string       `json:"message"`
	ProgressPercentage int          `json:"progressPercentage"`
	RecentSpending     float64      `json:"recentSpending"`
	PointsBalance      float64      `json:"pointsBalance"`
}

// recentSpendWindow is the lookback used for tier progress.
const recentSpendWindow = 30 * 24 * time.Hour

// TierProgressFor computes the gamification summary for one card from its
// transactions. The evaluation instant is passed in so the computation stays
// pure and testable; spend strictly older than 30 days before now is ignored.
func TierProgressFor(card models.Card, transactions []models.Transaction, now time.Time) TierProgress {
	cutoff := now.Add(-recentSpendWindow)

	var recent float64
	for _, txn := range transactions {
		if !txn.Date.Before(cutoff) {
			recent += txn.Amount
		}
	}

	progress := TierProgress{
		CardID:         card.ID,
		CardName:       card.CardName,
		CurrentTier:    card.RewardsTier,
		RecentSpending: math.Round(recent*100) / 100,
		PointsBalance:  card.PointsBalance,
	}

	next, ok := card.RewardsTier.Next()
	if !ok {
		progress.Message = fmt.Sprintf("You've reached %s tier - enjoy the best rewards available!", card.RewardsTier)
		progress.ProgressPercentage = 100
		return progress
	}

	progress.NextTier = &next
	threshold := TierThreshold(next)
	needed := threshold - recent

	if needed > 0 {
		pct := int(math.Round(recent / threshold * 100))
		if pct > 100 {
			pct = 100
		}
		progress.ProgressPercentage = pct
		progress.Message = fmt.Sprintf(
			"You're $%.2f away from %s tier - keep spending to unlock better redemptions!",
			needed, next)
		return progress
	}

	progress.ProgressPercentage = 100
	progress.Message = fmt.Sprintf("Congratulations! You qualify for %s tier. Contact support to upgrade.", next)
	return progress
}
