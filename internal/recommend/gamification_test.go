// Ordinal - Credit Card Rewards Recommendation Backend
// Copyright 2026 The Ordinal Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ordinal-app/ordinal

package recommend

import (
	"strings"
	"testing"
	"time"

	"github.com/ordinal-app/ordinal/internal/models"
)

var gamNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func txnAt(amount float64, daysAgo int) models.Transaction {
	return models.Transaction{
		Amount:   amount,
		Merchant: "Test",
		Category: models.CategoryOther,
		Date:     gamNow.Add(-time.Duration(daysAgo) * 24 * time.Hour),
	}
}

func TestTierProgressForBelowThreshold(t *testing.T) {
	card := models.Card{ID: "c1", CardName: "Everyday Card", RewardsTier: models.TierBasic, PointsBalance: 1200}
	progress := TierProgressFor(card, []models.Transaction{
		txnAt(250, 3),
		txnAt(350, 10),
	}, gamNow)

	if progress.CurrentTier != models.TierBasic {
		t.Errorf("CurrentTier = %v, want Basic", progress.CurrentTier)
	}
	if progress.NextTier == nil || *progress.NextTier != models.TierSilver {
		t.Fatalf("NextTier = %v, want Silver", progress.NextTier)
	}
	if progress.RecentSpending != 600 {
		t.Errorf("RecentSpending = %g, want 600", progress.RecentSpending)
	}
	if progress.ProgressPercentage != 60 {
		t.Errorf("ProgressPercentage = %d, want 60", progress.ProgressPercentage)
	}
	want := "You're $400.00 away from Silver tier - keep spending to unlock better redemptions!"
	if progress.Message != want {
		t.Errorf("Message = %q, want %q", progress.Message, want)
	}
}

func TestTierProgressForQualified(t *testing.T) {
	card := models.Card{ID: "c2", CardName: "Travel Card", RewardsTier: models.TierSilver}
	progress := TierProgressFor(card, []models.Transaction{
		txnAt(3000, 5),
		txnAt(2500, 20),
	}, gamNow)

	if progress.ProgressPercentage != 100 {
		t.Errorf("ProgressPercentage = %d, want 100", progress.ProgressPercentage)
	}
	want := "Congratulations! You qualify for Gold tier. Contact support to upgrade."
	if progress.Message != want {
		t.Errorf("Message = %q, want %q", progress.Message, want)
	}
}

func TestTierProgressForPremium(t *testing.T) {
	card := models.Card{ID: "c3", CardName: "Elite Card", RewardsTier: models.TierPremium}
	progress := TierProgressFor(card, nil, gamNow)

	if progress.NextTier != nil {
		t.Errorf("NextTier = %v, want nil at the top tier", *progress.NextTier)
	}
	if progress.ProgressPercentage != 100 {
		t.Errorf("ProgressPercentage = %d, want 100", progress.ProgressPercentage)
	}
	if !strings.Contains(progress.Message, "Premium") || !strings.Contains(progress.Message, "best rewards") {
		t.Errorf("unexpected top-tier message: %q", progress.Message)
	}
}

func TestTierProgressForIgnoresOldSpend(t *testing.T) {
	card := models.Card{ID: "c4", CardName: "Everyday Card", RewardsTier: models.TierBasic}
	progress := TierProgressFor(card, []models.Transaction{
		txnAt(200, 5),
		txnAt(5000, 31),
		txnAt(9000, 90),
	}, gamNow)

	if progress.RecentSpending != 200 {
		t.Errorf("RecentSpending = %g, want 200 (spend older than 30 days excluded)", progress.RecentSpending)
	}
}

func TestTierProgressForNoTransactions(t *testing.T) {
	card := models.Card{ID: "c5", CardName: "New Card", RewardsTier: models.TierBasic}
	progress := TierProgressFor(card, nil, gamNow)

	if progress.RecentSpending != 0 {
		t.Errorf("RecentSpending = %g, want 0", progress.RecentSpending)
	}
	if progress.ProgressPercentage != 0 {
		t.Errorf("ProgressPercentage = %d, want 0", progress.ProgressPercentage)
	}
	if progress.NextTier == nil || *progress.NextTier != models.TierSilver {
		t.Errorf("NextTier = %v, want Silver", progress.NextTier)
	}
}

func TestTierThresholds(t *testing.T) {
	tests := []struct {
		tier models.Tier
		want float64
	}{
		{models.TierBasic, 0},
		{models.TierSilver, 1000},
		{models.TierGold, 5000},
		{models.TierPlatinum, 15000},
		{models.TierPremium, 50000},
	}
	for _, tt := range tests {
		if got := TierThreshold(tt.tier); got != tt.want {
			t.Errorf("TierThreshold(%v) = %g, want %g", tt.tier, got, tt.want)
		}
	}
}
