// Ordinal - Credit Card Rewards Recommendation Backend
// Copyright 2026 The Ordinal Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ordinal-app/ordinal

package recommend

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/ordinal-app/ordinal/internal/models"
)

// Messages returned with ranking results.
const (
	// MsgNoTransactions is returned when the card has no transaction history.
	MsgNoTransactions = "No transactions found for this card. Add transactions to see personalized rankings."

	// MsgNoRewards is returned when the active catalog is empty.
	MsgNoRewards = "No rewards available."

	// MsgRanked is returned with a successful personalized ranking.
	MsgRanked = "Rewards ranked successfully for this card"

	// MsgAIDisabled is returned with the non-personalized fallback ordering.
	MsgAIDisabled = "AI recommendations are disabled. Rewards sorted by points cost."
)

// Engine is the NBA ranking orchestrator. It is stateless apart from its
// immutable configuration and safe for concurrent use: every method is a pure
// function of its explicit arguments.
type Engine struct {
	cfg    *Config
	logger zerolog.Logger
}

// NewEngine creates a ranking engine. A nil config selects DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Engine{
		cfg:    cfg,
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() *Config {
	return e.cfg
}

// Rank produces the personalized reward ranking for one card.
//
// The inputs must be immutable snapshots fetched before the call; Rank never
// performs I/O. Transactions are reduced to the most recent WindowSize
// entries by date descending. With aiEnabled false, scoring is bypassed and
// active rewards come back sorted ascending by points cost with no score.
func (e *Engine) Rank(transactions []models.Transaction, catalog []models.Reward, aiEnabled bool) RankResult {
	window := e.window(transactions)

	if len(window) == 0 {
		return RankResult{
			Message:   MsgNoTransactions,
			Rewards:   []ScoredReward{},
			AIEnabled: aiEnabled,
		}
	}

	active := activeRewards(catalog)
	if len(active) == 0 {
		return RankResult{
			Message:   MsgNoRewards,
			Rewards:   []ScoredReward{},
			AIEnabled: aiEnabled,
		}
	}

	if !aiEnabled {
		return RankResult{
			Message:   MsgAIDisabled,
			Rewards:   SortByPointsCost(active),
			AIEnabled: false,
		}
	}

	profile := BuildProfile(window)
	limit := e.resultLimit(len(window))

	ranked := make([]ScoredReward, 0, len(active))
	for _, reward := range active {
		score := e.Score(reward, profile)
		if score <= 0 {
			continue
		}
		sr := newScoredReward(reward)
		sr.NBAScore = score
		sr.Reason = e.Explain(reward, profile)
		ranked = append(ranked, sr)
	}

	// Scores embed a per-reward jitter, so strict descending order is already
	// total; the ID comparison only guards against identical identities.
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].NBAScore != ranked[j].NBAScore {
			return ranked[i].NBAScore > ranked[j].NBAScore
		}
		return ranked[i].ID < ranked[j].ID
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	e.logger.Debug().
		Int("window", len(window)).
		Int("catalog", len(active)).
		Int("ranked", len(ranked)).
		Msg("ranking pass complete")

	return RankResult{
		Message:          MsgRanked,
		Rewards:          ranked,
		SpendingAnalysis: profile,
		AIEnabled:        true,
	}
}

// window returns the most recent WindowSize transactions, date descending.
// The input slice is not modified.
func (e *Engine) window(transactions []models.Transaction) []models.Transaction {
	window := make([]models.Transaction, len(transactions))
	copy(window, transactions)
	sort.SliceStable(window, func(i, j int) bool {
		return window[i].Date.After(window[j].Date)
	})
	if len(window) > e.cfg.WindowSize {
		window = window[:e.cfg.WindowSize]
	}
	return window
}

// resultLimit caps output size by data volume: sparse histories show a
// minimal low-confidence set, richer histories get the full top list.
func (e *Engine) resultLimit(windowSize int) int {
	if windowSize <= e.cfg.SparseThreshold {
		return windowSize
	}
	return e.cfg.ResultLimit
}

// activeRewards filters the catalog down to active entries.
func activeRewards(catalog []models.Reward) []models.Reward {
	active := make([]models.Reward, 0, len(catalog))
	for _, r := range catalog {
		if r.IsActive {
			active = append(active, r)
		}
	}
	return active
}

// SortByPointsCost returns the rewards as an unscored list sorted ascending
// by points cost, ties broken by title then ID for reproducibility. This is
// the deterministic fallback ordering used when personalization is disabled.
func SortByPointsCost(rewards []models.Reward) []ScoredReward {
	out := make([]ScoredReward, 0, len(rewards))
	for _, r := range rewards {
		out = append(out, newScoredReward(r))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PointsCost != out[j].PointsCost {
			return out[i].PointsCost < out[j].PointsCost
		}
		if out[i].Title != out[j].Title {
			return out[i].Title < out[j].Title
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// TierEligible returns the active rewards whose tier does not exceed the
// card's tier, sorted ascending by points cost and capped at limit (no cap
// when limit <= 0). This is the non-ranked tier listing; no scoring applies.
func TierEligible(catalog []models.Reward, cardTier models.Tier, limit int) []models.Reward {
	eligible := make([]models.Reward, 0, len(catalog))
	for _, r := range catalog {
		if r.IsActive && r.Tier <= cardTier {
			eligible = append(eligible, r)
		}
	}
	sort.Slice(eligible, func(i, j int) bool {
		if eligible[i].PointsCost != eligible[j].PointsCost {
			return eligible[i].PointsCost < eligible[j].PointsCost
		}
		return eligible[i].Title < eligible[j].Title
	})
	if limit > 0 && len(eligible) > limit {
		eligible = eligible[:limit]
	}
	return eligible
}
