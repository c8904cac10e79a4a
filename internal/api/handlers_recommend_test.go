// Ordinal - Credit Card Rewards Recommendation Backend
// Copyright 2026 The Ordinal Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ordinal-app/ordinal

package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/ordinal-app/ordinal/internal/models"
	"github.com/ordinal-app/ordinal/internal/recommend"
)

// seedCatalog creates a small catalog spanning tiers and categories.
func (ts *testServer) seedCatalog(t *testing.T, token string) {
	t.Helper()

	rewards := []CreateRewardRequest{
		{Title: "5% Cash Back on Dining", PointsCost: 15000, Category: "Cash Back", Tier: "Gold", Value: 150, IsActive: true},
		{Title: "4% Cash Back on Gas", PointsCost: 12000, Category: "Cash Back", Tier: "Silver", Value: 120, IsActive: true},
		{Title: "2% Unlimited Cash Back", PointsCost: 8000, Category: "Cash Back", Tier: "Basic", Value: 80, IsActive: true},
		{Title: "$50 Statement Credit", PointsCost: 5000, Category: "Statement Credit", Tier: "Basic", Value: 50, IsActive: true},
		{Title: "Platinum Lounge Pass", PointsCost: 40000, Category: "Travel", Tier: "Platinum", Value: 400, IsActive: true},
		{Title: "Retired Reward", PointsCost: 100, Category: "Cash Back", Tier: "Basic", Value: 1, IsActive: false},
		{Title: "Wireless Headphones", PointsCost: 30000, Category: "Merchandise", Tier: "Basic", Value: 250, IsActive: true},
	}
	for _, r := range rewards {
		ts.createReward(t, token, r)
	}
}

func TestRankedRewardsNoTransactions(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.register(t, "alice", "alice@example.com")
	card := ts.createCard(t, token)
	ts.seedCatalog(t, token)

	rec := ts.do(t, http.MethodGet, "/api/v1/cards/"+card.ID+"/rewards/ranked", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", rec.Code, rec.Body.String())
	}

	var result recommend.RankResult
	decodeData(t, rec, &result)
	if result.Message != recommend.MsgNoTransactions {
		t.Errorf("message = %q, want %q", result.Message, recommend.MsgNoTransactions)
	}
	if len(result.Rewards) != 0 {
		t.Errorf("len(rewards) = %d, want 0", len(result.Rewards))
	}
	if result.SpendingAnalysis != nil {
		t.Error("spendingAnalysis must be absent for an empty window")
	}
}

func TestRankedRewardsPersonalized(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.register(t, "alice", "alice@example.com")
	card := ts.createCard(t, token)
	ts.seedCatalog(t, token)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 8; i++ {
		ts.addTransaction(t, token, card.ID, "Starbucks", "Dining", 18, base.AddDate(0, 0, i))
	}
	ts.addTransaction(t, token, card.ID, "Shell", "Gas", 6, base.AddDate(0, 0, 9))

	rec := ts.do(t, http.MethodGet, "/api/v1/cards/"+card.ID+"/rewards/ranked", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", rec.Code, rec.Body.String())
	}

	var result recommend.RankResult
	decodeData(t, rec, &result)
	if result.Message != recommend.MsgRanked {
		t.Errorf("message = %q, want %q", result.Message, recommend.MsgRanked)
	}
	if !result.AIEnabled {
		t.Error("AIEnabled = false, want true")
	}
	if result.SpendingAnalysis == nil {
		t.Fatal("expected spendingAnalysis")
	}
	if len(result.Rewards) == 0 {
		t.Fatal("expected ranked rewards")
	}
	for i := 1; i < len(result.Rewards); i++ {
		if result.Rewards[i].NBAScore > result.Rewards[i-1].NBAScore {
			t.Fatalf("scores not descending at %d", i)
		}
	}
	for _, r := range result.Rewards {
		if r.Reason == "" {
			t.Errorf("reward %q missing reason", r.Title)
		}
		if r.Title == "Retired Reward" || r.Title == "Wireless Headphones" {
			t.Errorf("ineligible reward %q leaked into ranking", r.Title)
		}
	}

	// The dining-heavy history must put the dining reward above the gas one.
	positions := map[string]int{}
	for i, r := range result.Rewards {
		positions[r.Title] = i
	}
	dining, okDining := positions["5% Cash Back on Dining"]
	gas, okGas := positions["4% Cash Back on Gas"]
	if okDining && okGas && dining > gas {
		t.Errorf("dining reward ranked below gas reward (%d vs %d)", dining, gas)
	}
}

func TestRankedRewardsAIDisabled(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.register(t, "alice", "alice@example.com")
	card := ts.createCard(t, token)
	ts.seedCatalog(t, token)
	ts.addTransaction(t, token, card.ID, "Starbucks", "Dining", 18, time.Now())

	off := false
	if rec := ts.do(t, http.MethodPatch, "/api/v1/users/me/ai-toggle", token, AIToggleRequest{Enabled: &off}); rec.Code != http.StatusOK {
		t.Fatalf("toggle: status = %d", rec.Code)
	}

	rec := ts.do(t, http.MethodGet, "/api/v1/cards/"+card.ID+"/rewards/ranked", token, nil)
	var result recommend.RankResult
	decodeData(t, rec, &result)

	if result.Message != recommend.MsgAIDisabled {
		t.Errorf("message = %q, want %q", result.Message, recommend.MsgAIDisabled)
	}
	if result.AIEnabled {
		t.Error("AIEnabled = true, want false")
	}
	for i := 1; i < len(result.Rewards); i++ {
		if result.Rewards[i].PointsCost < result.Rewards[i-1].PointsCost {
			t.Fatalf("fallback not ascending by pointsCost at %d", i)
		}
	}
	for _, r := range result.Rewards {
		if r.NBAScore != 0 {
			t.Errorf("reward %q carries a score in fallback mode", r.Title)
		}
	}
}

func TestCardRewardsTierListing(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.register(t, "alice", "alice@example.com")
	card := ts.createCard(t, token) // Gold tier
	ts.seedCatalog(t, token)

	rec := ts.do(t, http.MethodGet, "/api/v1/cards/"+card.ID+"/rewards", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", rec.Code, rec.Body.String())
	}

	var payload struct {
		CardID  string          `json:"cardId"`
		Rewards []models.Reward `json:"rewards"`
	}
	decodeData(t, rec, &payload)

	if payload.CardID != card.ID {
		t.Errorf("cardId = %q, want %q", payload.CardID, card.ID)
	}
	if len(payload.Rewards) == 0 || len(payload.Rewards) > 6 {
		t.Fatalf("len(rewards) = %d, want 1..6", len(payload.Rewards))
	}
	for i, r := range payload.Rewards {
		if r.Tier > models.TierGold {
			t.Errorf("reward %q exceeds the card tier", r.Title)
		}
		if !r.IsActive {
			t.Errorf("inactive reward %q listed", r.Title)
		}
		if i > 0 && r.PointsCost < payload.Rewards[i-1].PointsCost {
			t.Errorf("listing not ascending by pointsCost at %d", i)
		}
	}
}

func TestRecommendationsTierFiltered(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.register(t, "alice", "alice@example.com")
	card := ts.createCard(t, token) // Gold tier
	ts.seedCatalog(t, token)
	ts.addTransaction(t, token, card.ID, "Starbucks", "Dining", 18, time.Now())

	rec := ts.do(t, http.MethodGet, "/api/v1/cards/"+card.ID+"/recommendations", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", rec.Code, rec.Body.String())
	}

	var payload struct {
		CardID          string                   `json:"cardId"`
		Message         string                   `json:"message"`
		Recommendations []recommend.ScoredReward `json:"recommendations"`
		AIEnabled       bool                     `json:"aiEnabled"`
	}
	decodeData(t, rec, &payload)

	if !payload.AIEnabled {
		t.Error("AIEnabled = false, want true")
	}
	for _, r := range payload.Recommendations {
		if r.Title == "Platinum Lounge Pass" {
			t.Error("Platinum reward recommended to a Gold card")
		}
	}
}

func TestRankedRewardsPayloadOmitsTier(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.register(t, "alice", "alice@example.com")
	card := ts.createCard(t, token)
	ts.seedCatalog(t, token)
	ts.addTransaction(t, token, card.ID, "Starbucks", "Dining", 18, time.Now())

	rec := ts.do(t, http.MethodGet, "/api/v1/cards/"+card.ID+"/rewards/ranked", token, nil)
	env := decodeEnvelope(t, rec)

	var raw struct {
		Rewards []map[string]interface{} `json:"rewards"`
	}
	if err := json.Unmarshal(env.Data, &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, r := range raw.Rewards {
		if _, present := r["tier"]; present {
			t.Fatalf("ranked payload exposes tier: %v", r)
		}
	}
}
