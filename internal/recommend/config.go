// Ordinal - Credit Card Rewards Recommendation Backend
// Copyright 2026 The Ordinal Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ordinal-app/ordinal

package recommend

import "fmt"

// Config contains all tunable parameters of the NBA ranking engine.
type Config struct {
	// Weights defines the score components and their saturation scales.
	Weights Weights `json:"weights" koanf:"weights"`

	// WindowSize is the maximum number of recent transactions considered.
	WindowSize int `json:"window_size" koanf:"window_size"`

	// SparseThreshold is the window size at or below which the result cap
	// shrinks to the transaction count (sparse histories show a minimal,
	// low-confidence set).
	SparseThreshold int `json:"sparse_threshold" koanf:"sparse_threshold"`

	// ResultLimit caps the ranked output for non-sparse windows.
	ResultLimit int `json:"result_limit" koanf:"result_limit"`

	// MinCategoryShare is the minimum reward-category spend share for
	// unmatched Cash Back and Travel rewards to stay eligible.
	MinCategoryShare float64 `json:"min_category_share" koanf:"min_category_share"`

	// AggregatorMinDiningShare is the minimum Dining spend share for a
	// dining-aggregator gift card without a merchant match to stay eligible.
	AggregatorMinDiningShare float64 `json:"aggregator_min_dining_share" koanf:"aggregator_min_dining_share"`
}

// Weights holds the score component weights and the saturation scale paired
// with each. The values are design constants carried over from tuning, not a
// fitted model: consumers should depend on relative ordering, not absolutes.
type Weights struct {
	Merchant      float64 `json:"merchant" koanf:"merchant"`
	MerchantScale float64 `json:"merchant_scale" koanf:"merchant_scale"`

	Category      float64 `json:"category" koanf:"category"`
	CategoryScale float64 `json:"category_scale" koanf:"category_scale"`
	TxCount       float64 `json:"tx_count" koanf:"tx_count"`
	TxCountScale  float64 `json:"tx_count_scale" koanf:"tx_count_scale"`

	Value      float64 `json:"value" koanf:"value"`
	ValueScale float64 `json:"value_scale" koanf:"value_scale"`

	StatementCreditBoost float64 `json:"statement_credit_boost" koanf:"statement_credit_boost"`

	TravelBoost float64 `json:"travel_boost" koanf:"travel_boost"`
	TravelScale float64 `json:"travel_scale" koanf:"travel_scale"`

	// SubCategoryBoost applies to Cash Back rewards whose title names a
	// specific spend category; GenericCashBackBoost applies otherwise and is
	// deliberately weaker so specific rewards outrank generic ones.
	SubCategoryBoost     float64 `json:"sub_category_boost" koanf:"sub_category_boost"`
	SubCategoryScale     float64 `json:"sub_category_scale" koanf:"sub_category_scale"`
	GenericCashBackBoost float64 `json:"generic_cash_back_boost" koanf:"generic_cash_back_boost"`
	GenericCashBackScale float64 `json:"generic_cash_back_scale" koanf:"generic_cash_back_scale"`

	AggregatorBoost float64 `json:"aggregator_boost" koanf:"aggregator_boost"`
	AggregatorScale float64 `json:"aggregator_scale" koanf:"aggregator_scale"`

	HighCostPenalty        float64 `json:"high_cost_penalty" koanf:"high_cost_penalty"`
	HighCostThreshold      int     `json:"high_cost_threshold" koanf:"high_cost_threshold"`
	UnmatchedCostPenalty   float64 `json:"unmatched_cost_penalty" koanf:"unmatched_cost_penalty"`
	UnmatchedCostThreshold int     `json:"unmatched_cost_threshold" koanf:"unmatched_cost_threshold"`
}

// DefaultConfig returns the engine configuration with the tuned default
// weights.
func DefaultConfig() *Config {
	return &Config{
		Weights:                  DefaultWeights(),
		WindowSize:               100,
		SparseThreshold:          3,
		ResultLimit:              10,
		MinCategoryShare:         0.12,
		AggregatorMinDiningShare: 0.10,
	}
}

// DefaultWeights returns the tuned default score weights.
func DefaultWeights() Weights {
	return Weights{
		Merchant:      750,
		MerchantScale: 0.10,

		Category:      240,
		CategoryScale: 0.20,
		TxCount:       70,
		TxCountScale:  6,

		Value:      110,
		ValueScale: 0.008,

		StatementCreditBoost: 30,

		TravelBoost: 120,
		TravelScale: 0.12,

		SubCategoryBoost:     220,
		SubCategoryScale:     0.12,
		GenericCashBackBoost: 35,
		GenericCashBackScale: 0.25,

		AggregatorBoost: 120,
		AggregatorScale: 0.12,

		HighCostPenalty:        25,
		HighCostThreshold:      30000,
		UnmatchedCostPenalty:   15,
		UnmatchedCostThreshold: 20000,
	}
}

// Validate checks the configuration for values that would break scoring
// invariants (negative caps, non-positive saturation scales).
func (c *Config) Validate() error {
	if c.WindowSize <= 0 {
		return fmt.Errorf("window_size must be positive, got %d", c.WindowSize)
	}
	if c.SparseThreshold < 0 {
		return fmt.Errorf("sparse_threshold must be non-negative, got %d", c.SparseThreshold)
	}
	if c.ResultLimit <= 0 {
		return fmt.Errorf("result_limit must be positive, got %d", c.ResultLimit)
	}
	if c.MinCategoryShare < 0 || c.MinCategoryShare > 1 {
		return fmt.Errorf("min_category_share must be in [0,1], got %g", c.MinCategoryShare)
	}
	if c.AggregatorMinDiningShare < 0 || c.AggregatorMinDiningShare > 1 {
		return fmt.Errorf("aggregator_min_dining_share must be in [0,1], got %g", c.AggregatorMinDiningShare)
	}

	scales := []struct {
		name  string
		value float64
	}{
		{"merchant_scale", c.Weights.MerchantScale},
		{"category_scale", c.Weights.CategoryScale},
		{"tx_count_scale", c.Weights.TxCountScale},
		{"value_scale", c.Weights.ValueScale},
		{"travel_scale", c.Weights.TravelScale},
		{"sub_category_scale", c.Weights.SubCategoryScale},
		{"generic_cash_back_scale", c.Weights.GenericCashBackScale},
		{"aggregator_scale", c.Weights.AggregatorScale},
	}
	for _, s := range scales {
		if s.value <= 0 {
			return fmt.Errorf("%s must be positive, got %g", s.name, s.value)
		}
	}

	return nil
}
