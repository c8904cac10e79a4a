// Ordinal - Credit Card Rewards Recommendation Backend
// Copyright 2026 The Ordinal Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ordinal-app/ordinal

package recommend

import (
	"github.com/ordinal-app/ordinal/internal/models"
)

// BuildProfile aggregates a transaction window into a SpendingProfile.
// Merchant names are normalized with the same Normalize used at match time,
// so punctuation and casing variants of one merchant accumulate under one
// key. An empty window yields a zero-total profile, which every downstream
// share computation treats as "no spending signal".
func BuildProfile(transactions []models.Transaction) *SpendingProfile {
	profile := &SpendingProfile{
		Categories:        make(map[models.TransactionCategory]float64),
		TransactionCounts: make(map[models.TransactionCategory]int),
		Merchants:         make(map[string]float64),
		merchantNames:     make(map[string]string),
	}

	for _, txn := range transactions {
		profile.Total += txn.Amount
		profile.Categories[txn.Category] += txn.Amount
		profile.TransactionCounts[txn.Category]++

		key := Normalize(txn.Merchant)
		if key == "" {
			continue
		}
		profile.Merchants[key] += txn.Amount
		if _, seen := profile.merchantNames[key]; !seen {
			profile.merchantNames[key] = txn.Merchant
		}
	}

	return profile
}
