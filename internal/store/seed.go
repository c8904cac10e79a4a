// Ordinal - Credit Card Rewards Recommendation Backend
// Copyright 2026 The Ordinal Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ordinal-app/ordinal

package store

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/ordinal-app/ordinal/internal/models"
)

// seedRewards is the built-in reward catalog, grouped by the spending it
// targets.
var seedRewards = []models.Reward{
	// Dining
	{Title: "$25 McDonald's Gift Card", Description: "Use at McDonald's locations.", PointsCost: 2500, Category: models.RewardGiftCards, Tier: models.TierBasic, Value: 25, IsActive: true},
	{Title: "$25 Chipotle Gift Card", Description: "Use at Chipotle restaurants.", PointsCost: 2500, Category: models.RewardGiftCards, Tier: models.TierBasic, Value: 25, IsActive: true},
	{Title: "$25 Starbucks Gift Card", Description: "Use at Starbucks locations.", PointsCost: 2500, Category: models.RewardGiftCards, Tier: models.TierBasic, Value: 25, IsActive: true},
	{Title: "$100 DoorDash Credit", Description: "Food delivery credit.", PointsCost: 10000, Category: models.RewardGiftCards, Tier: models.TierSilver, Value: 100, IsActive: true},
	{Title: "$50 Restaurant.com Gift Card", Description: "Dining experiences at thousands of restaurants.", PointsCost: 5000, Category: models.RewardGiftCards, Tier: models.TierBasic, Value: 50, IsActive: true},
	{Title: "5% Cash Back on Dining", Description: "Earn 5% cash back on restaurant and dining purchases.", PointsCost: 15000, Category: models.RewardCashBack, Tier: models.TierGold, Value: 150, IsActive: true},

	// Groceries
	{Title: "$50 Kroger Gift Card", Description: "Use at Kroger for groceries and household items.", PointsCost: 5000, Category: models.RewardGiftCards, Tier: models.TierBasic, Value: 50, IsActive: true},
	{Title: "$50 Whole Foods Gift Card", Description: "Shop for groceries at Whole Foods Market.", PointsCost: 5000, Category: models.RewardGiftCards, Tier: models.TierBasic, Value: 50, IsActive: true},
	{Title: "$100 Walmart Gift Card", Description: "Use at Walmart stores or online.", PointsCost: 10000, Category: models.RewardGiftCards, Tier: models.TierSilver, Value: 100, IsActive: true},
	{Title: "$50 Target Gift Card", Description: "Use at Target stores or online.", PointsCost: 5000, Category: models.RewardGiftCards, Tier: models.TierBasic, Value: 50, IsActive: true},
	{Title: "3% Cash Back on Groceries", Description: "Earn 3% cash back on grocery store purchases.", PointsCost: 10000, Category: models.RewardCashBack, Tier: models.TierSilver, Value: 100, IsActive: true},

	// Gas
	{Title: "$75 Shell Gas Card", Description: "Redeem for gas at Shell stations.", PointsCost: 7500, Category: models.RewardGiftCards, Tier: models.TierSilver, Value: 75, IsActive: true},
	{Title: "$50 Chevron Gas Card", Description: "Redeem for gas at Chevron stations.", PointsCost: 5000, Category: models.RewardGiftCards, Tier: models.TierBasic, Value: 50, IsActive: true},
	{Title: "4% Cash Back on Gas", Description: "Earn 4% cash back on gas station purchases.", PointsCost: 12000, Category: models.RewardCashBack, Tier: models.TierSilver, Value: 120, IsActive: true},

	// Entertainment
	{Title: "$50 Netflix Gift Card", Description: "Netflix credit.", PointsCost: 5000, Category: models.RewardGiftCards, Tier: models.TierBasic, Value: 50, IsActive: true},

	// Shopping
	{Title: "$100 Amazon Gift Card", Description: "Amazon gift card.", PointsCost: 10000, Category: models.RewardGiftCards, Tier: models.TierSilver, Value: 100, IsActive: true},
	{Title: "$200 Apple Gift Card", Description: "Use for Apple purchases in store or online.", PointsCost: 20000, Category: models.RewardGiftCards, Tier: models.TierGold, Value: 200, IsActive: true},
	{Title: "$100 Best Buy Gift Card", Description: "Best Buy gift card.", PointsCost: 10000, Category: models.RewardGiftCards, Tier: models.TierSilver, Value: 100, IsActive: true},
	{Title: "Apple AirPods Pro", Description: "Apple AirPods Pro.", PointsCost: 25000, Category: models.RewardMerchandise, Tier: models.TierGold, Value: 249, IsActive: true},

	// Travel
	{Title: "$50 Lyft Credit", Description: "Credit toward Lyft rides.", PointsCost: 5000, Category: models.RewardTravel, Tier: models.TierBasic, Value: 50, IsActive: true},
	{Title: "$100 Delta Airlines Credit", Description: "Credit toward Delta Airlines purchases.", PointsCost: 10000, Category: models.RewardTravel, Tier: models.TierSilver, Value: 100, IsActive: true},
	{Title: "$200 Airbnb Credit", Description: "Credit towards your next Airbnb booking.", PointsCost: 20000, Category: models.RewardTravel, Tier: models.TierGold, Value: 200, IsActive: true},
	{Title: "3% Travel Bonus", Description: "Earn 3% back on travel purchases for 6 months.", PointsCost: 25000, Category: models.RewardCashBack, Tier: models.TierGold, Value: 250, IsActive: true},

	// Bills and flat cash back
	{Title: "$50 Statement Credit", Description: "Apply $50 credit to your card statement.", PointsCost: 5000, Category: models.RewardStatementCredit, Tier: models.TierBasic, Value: 50, IsActive: true},
	{Title: "$100 Verizon Statement Credit", Description: "Statement credit for Verizon bill payments.", PointsCost: 10000, Category: models.RewardStatementCredit, Tier: models.TierSilver, Value: 100, IsActive: true},
	{Title: "$250 Cash Back", Description: "Receive $250 cash back deposited to your bank account.", PointsCost: 25000, Category: models.RewardCashBack, Tier: models.TierGold, Value: 250, IsActive: true},
	{Title: "2% Unlimited Cash Back", Description: "Earn 2% cash back on all purchases for 3 months.", PointsCost: 20000, Category: models.RewardCashBack, Tier: models.TierGold, Value: 200, IsActive: true},
}

// demoMerchants pairs each demo merchant with its spending category.
var demoMerchants = []struct {
	name     string
	category models.TransactionCategory
}{
	{"Whole Foods", models.CategoryGroceries},
	{"Kroger", models.CategoryGroceries},
	{"Walmart", models.CategoryGroceries},
	{"Target", models.CategoryGroceries},
	{"Chipotle", models.CategoryDining},
	{"Starbucks", models.CategoryDining},
	{"McDonald's", models.CategoryDining},
	{"Shell Gas", models.CategoryGas},
	{"BP", models.CategoryGas},
	{"Chevron", models.CategoryGas},
	{"Amazon", models.CategoryShopping},
	{"Best Buy", models.CategoryShopping},
	{"Apple Store", models.CategoryShopping},
	{"Netflix", models.CategoryEntertainment},
	{"Spotify", models.CategoryEntertainment},
	{"Delta Airlines", models.CategoryTravel},
	{"Uber", models.CategoryTravel},
	{"Lyft", models.CategoryTravel},
	{"AT&T", models.CategoryBills},
	{"Verizon", models.CategoryBills},
}

// SeedRewards inserts the built-in catalog if the store holds no rewards.
// Returns the number of rewards inserted (0 when already seeded).
func (s *Store) SeedRewards(ctx context.Context) (int, error) {
	count, err := s.CountRewards(ctx)
	if err != nil {
		return 0, fmt.Errorf("count rewards: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	for i := range seedRewards {
		reward := seedRewards[i]
		if err := s.CreateReward(ctx, &reward); err != nil {
			return 0, fmt.Errorf("seed reward %q: %w", reward.Title, err)
		}
	}

	s.logger.Info().Int("count", len(seedRewards)).Msg("reward catalog seeded")
	return len(seedRewards), nil
}

// SeedTransactions generates demo transactions for a card: between 10 and 20
// random merchant purchases dated within the past 60 days. The rng is passed
// in so callers control reproducibility.
func (s *Store) SeedTransactions(ctx context.Context, card *models.Card, rng *rand.Rand) (int, error) {
	n := 10 + rng.Intn(11)
	now := time.Now().UTC()

	for i := 0; i < n; i++ {
		m := demoMerchants[rng.Intn(len(demoMerchants))]
		txn := models.Transaction{
			CardID:      card.ID,
			UserID:      card.UserID,
			Merchant:    m.name,
			Category:    m.category,
			Amount:      float64(rng.Intn(40000)) / 100,
			Date:        now.Add(-time.Duration(rng.Intn(60)) * 24 * time.Hour),
			Description: fmt.Sprintf("Purchase at %s", m.name),
		}
		if err := s.CreateTransaction(ctx, &txn); err != nil {
			return i, fmt.Errorf("seed transaction: %w", err)
		}
	}

	s.logger.Debug().Str("card_id", card.ID).Int("count", n).Msg("demo transactions seeded")
	return n, nil
}

// SeedDemoTransactions seeds demo purchase history onto every card that has
// no transactions yet. Cards with history are left untouched, so repeated
// startups do not pile up duplicates. Returns the number of transactions
// created.
func (s *Store) SeedDemoTransactions(ctx context.Context, rng *rand.Rand) (int, error) {
	cards, err := s.listAllCards()
	if err != nil {
		return 0, err
	}

	total := 0
	for i := range cards {
		existing, err := s.ListTransactions(ctx, cards[i].ID, 1)
		if err != nil {
			return total, err
		}
		if len(existing) > 0 {
			continue
		}
		n, err := s.SeedTransactions(ctx, &cards[i], rng)
		total += n
		if err != nil {
			return total, err
		}
	}

	if total > 0 {
		s.logger.Info().Int("count", total).Msg("demo transactions seeded")
	}
	return total, nil
}

// listAllCards scans every card record regardless of owner.
func (s *Store) listAllCards() ([]models.Card, error) {
	cards := []models.Card{}
	err := s.view("list_all", "card", func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(cardKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var card models.Card
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &card)
			}); err != nil {
				return err
			}
			cards = append(cards, card)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cards, nil
}
