// Ordinal - Credit Card Rewards Recommendation Backend
// Copyright 2026 The Ordinal Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ordinal-app/ordinal

package recommend

import (
	"fmt"
	"strings"

	"github.com/ordinal-app/ordinal/internal/models"
)

// Explain produces the one-line human-facing justification for recommending
// a reward to this profile. It mirrors the gating and scoring reasoning:
// merchant evidence first, then category evidence, then category fallbacks.
func (e *Engine) Explain(reward models.Reward, profile *SpendingProfile) string {
	titleNorm := Normalize(reward.Title)

	if profile != nil && profile.Total > 0 {
		match := bestMerchantMatch(titleNorm, profile)
		if match.matched && (reward.Category == models.RewardGiftCards || reward.Category == models.RewardTravel) {
			return fmt.Sprintf("Because you spend at %s", match.displayName)
		}
	}

	switch reward.Category {
	case models.RewardCashBack:
		if sub, ok := cashBackSubcategory(titleNorm); ok {
			return fmt.Sprintf("Because you spend on %s", strings.ToLower(sub.String()))
		}
		return "Good all-around cash back"

	case models.RewardTravel:
		return "Because you spend on travel"

	case models.RewardStatementCredit:
		return "Good for bills you pay often"

	case models.RewardGiftCards:
		if isDiningAggregator(titleNorm) {
			return "Popular option for dining spend"
		}
		return "Gift card option that fits your spending"
	}

	return "Recommended for you"
}
