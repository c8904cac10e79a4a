// Ordinal - Credit Card Rewards Recommendation Backend
// Copyright 2026 The Ordinal Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ordinal-app/ordinal

package recommend

import (
	"testing"

	"github.com/ordinal-app/ordinal/internal/models"
)

func TestExplain(t *testing.T) {
	e := newTestEngine(t)
	profile := diningHeavyProfile() // McDonald's dining, Target shopping

	tests := []struct {
		name   string
		reward models.Reward
		want   string
	}{
		{
			"matched gift card names the merchant",
			models.Reward{Title: "$25 McDonald's Gift Card", Category: models.RewardGiftCards},
			"Because you spend at McDonald's",
		},
		{
			"specific cash back names the category",
			models.Reward{Title: "5% Cash Back on Dining", Category: models.RewardCashBack},
			"Because you spend on dining",
		},
		{
			"generic cash back",
			models.Reward{Title: "2% Unlimited Cash Back", Category: models.RewardCashBack},
			"Good all-around cash back",
		},
		{
			"travel",
			models.Reward{Title: "$200 Flight Voucher", Category: models.RewardTravel},
			"Because you spend on travel",
		},
		{
			"statement credit",
			models.Reward{Title: "$50 Statement Credit", Category: models.RewardStatementCredit},
			"Good for bills you pay often",
		},
		{
			"dining aggregator gift card",
			models.Reward{Title: "$50 DoorDash Credit", Category: models.RewardGiftCards},
			"Popular option for dining spend",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Explain(tt.reward, profile); got != tt.want {
				t.Errorf("Explain(%q) = %q, want %q", tt.reward.Title, got, tt.want)
			}
		})
	}
}
