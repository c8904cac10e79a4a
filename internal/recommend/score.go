// Ordinal - Credit Card Rewards Recommendation Backend
// Copyright 2026 The Ordinal Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ordinal-app/ordinal

package recommend

import (
	"hash/fnv"
	"math"

	"github.com/ordinal-app/ordinal/internal/models"
)

// categoryMapping maps each transaction category to the reward category its
// spend argues for. Spend categories deliberately never map to Gift Cards
// (too broad); category-level fallbacks go through Cash Back, Travel and
// Statement Credit instead.
var categoryMapping = map[models.TransactionCategory]models.RewardCategory{
	models.CategoryDining:        models.RewardCashBack,
	models.CategoryTravel:        models.RewardTravel,
	models.CategoryGroceries:     models.RewardCashBack,
	models.CategoryGas:           models.RewardCashBack,
	models.CategoryEntertainment: models.RewardCashBack,
	models.CategoryShopping:      models.RewardCashBack,
	models.CategoryBills:         models.RewardStatementCredit,
	models.CategoryOther:         models.RewardCashBack,
}

// rankableCategories are the only reward categories the engine ever ranks.
// Merchandise and Experiences still appear in tier-based listings but score 0.
var rankableCategories = map[models.RewardCategory]bool{
	models.RewardGiftCards:       true,
	models.RewardCashBack:        true,
	models.RewardTravel:          true,
	models.RewardStatementCredit: true,
}

const saturateEpsilon = 1e-9

// saturate maps non-negative x onto [0,1) with diminishing returns: the
// result rises toward 1 as x grows relative to the scale k. Negative inputs
// clamp to 0; non-positive scales clamp to a small epsilon so the curve never
// divides by zero.
func saturate(x, k float64) float64 {
	if x < 0 {
		x = 0
	}
	if k < saturateEpsilon {
		k = saturateEpsilon
	}
	return x / (x + k)
}

// rewardCategoryShare sums the spend share of every transaction category that
// maps to the given reward category.
func rewardCategoryShare(cat models.RewardCategory, profile *SpendingProfile) float64 {
	if profile.Total <= 0 {
		return 0
	}
	var sum float64
	for txCat, mapped := range categoryMapping {
		if mapped == cat {
			sum += profile.Categories[txCat]
		}
	}
	return sum / profile.Total
}

// relevantTransactionCount sums transaction counts over every transaction
// category mapped to the given reward category.
func relevantTransactionCount(cat models.RewardCategory, profile *SpendingProfile) int {
	var count int
	for txCat, mapped := range categoryMapping {
		if mapped == cat {
			count += profile.TransactionCounts[txCat]
		}
	}
	return count
}

// stableJitter derives a deterministic pseudo-value in [0, 0.001) from the
// reward's identity, used purely to break exact score ties reproducibly.
func stableJitter(identity string) float64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(identity))
	return float64(h.Sum32()%1000) / 1_000_000
}

// rewardIdentity is the string the tie-breaking jitter hashes: the reward ID,
// or the title when no ID is set.
func rewardIdentity(r models.Reward) string {
	if r.ID != "" {
		return r.ID
	}
	return r.Title
}

// IsEligible reports whether a reward is a ranking candidate for the profile.
// Inactive rewards are assumed filtered upstream.
func (e *Engine) IsEligible(reward models.Reward, profile *SpendingProfile) bool {
	if profile == nil || profile.Total <= 0 {
		return false
	}
	titleNorm := Normalize(reward.Title)
	match := bestMerchantMatch(titleNorm, profile)
	return e.isEligible(reward, titleNorm, profile, match.matched)
}

// isEligible applies the gating rules with the merchant match precomputed.
func (e *Engine) isEligible(reward models.Reward, titleNorm string, profile *SpendingProfile, merchantMatched bool) bool {
	if !rankableCategories[reward.Category] {
		return false
	}

	switch reward.Category {
	case models.RewardGiftCards:
		if merchantMatched {
			return true
		}
		// Dining aggregators surface for dining-heavy cards even without a
		// direct merchant match.
		return isDiningAggregator(titleNorm) &&
			profile.CategoryShare(models.CategoryDining) >= e.cfg.AggregatorMinDiningShare

	case models.RewardStatementCredit:
		// Universal fallback.
		return true

	default:
		// Cash Back and Travel without a merchant match need meaningful
		// spend in their mapped categories.
		if merchantMatched {
			return true
		}
		return rewardCategoryShare(reward.Category, profile) >= e.cfg.MinCategoryShare
	}
}

// Score computes the NBA score for one reward against a spending profile.
// It is a pure, deterministic function of its inputs: re-derivable bit for
// bit from (reward, profile) alone, bounded below by 0, with a stable
// identity-derived jitter separating exact ties.
func (e *Engine) Score(reward models.Reward, profile *SpendingProfile) float64 {
	if profile == nil || profile.Total <= 0 {
		return 0
	}

	w := e.cfg.Weights
	titleNorm := Normalize(reward.Title)
	match := bestMerchantMatch(titleNorm, profile)

	if !e.isEligible(reward, titleNorm, profile, match.matched) {
		return 0
	}

	var merchantComponent float64
	if match.matched {
		merchantComponent = w.Merchant * saturate(match.share, w.MerchantScale)
	}

	catShare := rewardCategoryShare(reward.Category, profile)
	txCount := relevantTransactionCount(reward.Category, profile)
	categoryComponent := w.Category*saturate(catShare, w.CategoryScale) +
		w.TxCount*saturate(float64(txCount), w.TxCountScale)

	points := reward.PointsCost
	if points < 1 {
		points = 1
	}
	valuePerPoint := reward.Value / float64(points)
	valueComponent := w.Value * saturate(valuePerPoint, w.ValueScale)

	var boost float64
	switch reward.Category {
	case models.RewardStatementCredit:
		boost = w.StatementCreditBoost

	case models.RewardTravel:
		boost = w.TravelBoost * saturate(profile.CategoryShare(models.CategoryTravel), w.TravelScale)

	case models.RewardCashBack:
		if sub, ok := cashBackSubcategory(titleNorm); ok {
			boost = w.SubCategoryBoost * saturate(profile.CategoryShare(sub), w.SubCategoryScale)
		} else {
			// Generic cash back stays weaker so it never ties or beats
			// category-specific rewards.
			boost = w.GenericCashBackBoost * saturate(rewardCategoryShare(models.RewardCashBack, profile), w.GenericCashBackScale)
		}

	case models.RewardGiftCards:
		if isDiningAggregator(titleNorm) && !match.matched {
			boost = w.AggregatorBoost * saturate(profile.CategoryShare(models.CategoryDining), w.AggregatorScale)
		}
	}

	var penalty float64
	if reward.PointsCost > w.HighCostThreshold {
		penalty += w.HighCostPenalty
	}
	if !match.matched && reward.PointsCost > w.UnmatchedCostThreshold {
		penalty += w.UnmatchedCostPenalty
	}

	score := merchantComponent + categoryComponent + valueComponent + boost - penalty
	if score < 0 {
		score = 0
	}

	// Round the component sum to 2 decimals, then add the jitter. Rounding
	// after adding it would erase the sub-0.001 tie-break signal.
	return math.Round(score*100)/100 + stableJitter(rewardIdentity(reward))
}
