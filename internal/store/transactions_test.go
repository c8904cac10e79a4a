// Ordinal - Credit Card Rewards Recommendation Backend
// Copyright 2026 The Ordinal Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ordinal-app/ordinal

package store

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/ordinal-app/ordinal/internal/models"
)

func TestTransactionLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user := createTestUser(t, s)
	card := createTestCard(t, s, user.ID)

	txn := &models.Transaction{
		CardID:   card.ID,
		UserID:   user.ID,
		Merchant: "Starbucks",
		Category: models.CategoryDining,
		Amount:   8.75,
	}
	if err := s.CreateTransaction(ctx, txn); err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}
	if txn.ID == "" {
		t.Fatal("transaction ID not assigned")
	}
	if txn.Date.IsZero() {
		t.Fatal("zero date not defaulted")
	}

	got, err := s.GetTransaction(ctx, txn.ID)
	if err != nil {
		t.Fatalf("GetTransaction: %v", err)
	}
	if got.Merchant != "Starbucks" || got.Amount != 8.75 {
		t.Errorf("got %+v", got)
	}

	if err := s.DeleteTransaction(ctx, card.ID, txn.ID); err != nil {
		t.Fatalf("DeleteTransaction: %v", err)
	}
	if _, err := s.GetTransaction(ctx, txn.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted transaction error = %v, want ErrNotFound", err)
	}
}

func TestCreateTransactionUnknownCard(t *testing.T) {
	s := newTestStore(t)
	err := s.CreateTransaction(context.Background(), &models.Transaction{
		CardID: "no-such-card", Merchant: "X", Amount: 1,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestListTransactionsOrderAndLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user := createTestUser(t, s)
	card := createTestCard(t, s, user.ID)

	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		txn := &models.Transaction{
			CardID:   card.ID,
			UserID:   user.ID,
			Merchant: fmt.Sprintf("Merchant %d", i),
			Category: models.CategoryOther,
			Amount:   float64(i + 1),
			Date:     base.Add(time.Duration(i) * 24 * time.Hour),
		}
		if err := s.CreateTransaction(ctx, txn); err != nil {
			t.Fatalf("CreateTransaction: %v", err)
		}
	}

	all, err := s.ListTransactions(ctx, card.ID, 0)
	if err != nil {
		t.Fatalf("ListTransactions: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("got %d transactions, want 5", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].Date.After(all[i-1].Date) {
			t.Fatalf("not date-descending at index %d", i)
		}
	}
	if all[0].Merchant != "Merchant 4" {
		t.Errorf("newest first = %q, want Merchant 4", all[0].Merchant)
	}

	limited, err := s.ListTransactions(ctx, card.ID, 2)
	if err != nil {
		t.Fatalf("ListTransactions limited: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("got %d transactions, want 2", len(limited))
	}
}

func TestDeleteCardRemovesTransactions(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user := createTestUser(t, s)
	card := createTestCard(t, s, user.ID)

	txn := &models.Transaction{CardID: card.ID, UserID: user.ID, Merchant: "Shell", Category: models.CategoryGas, Amount: 40}
	if err := s.CreateTransaction(ctx, txn); err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}

	if err := s.DeleteCard(ctx, user.ID, card.ID); err != nil {
		t.Fatalf("DeleteCard: %v", err)
	}
	if _, err := s.GetTransaction(ctx, txn.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("orphan transaction error = %v, want ErrNotFound", err)
	}
}

func TestSeedTransactions(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user := createTestUser(t, s)
	card := createTestCard(t, s, user.ID)

	rng := rand.New(rand.NewSource(1))
	n, err := s.SeedTransactions(ctx, card, rng)
	if err != nil {
		t.Fatalf("SeedTransactions: %v", err)
	}
	if n < 10 || n > 20 {
		t.Errorf("seeded %d transactions, want 10..20", n)
	}

	txns, err := s.ListTransactions(ctx, card.ID, 0)
	if err != nil {
		t.Fatalf("ListTransactions: %v", err)
	}
	if len(txns) != n {
		t.Errorf("listed %d transactions, want %d", len(txns), n)
	}
}

func TestSeedDemoTransactionsSkipsCardsWithHistory(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user := createTestUser(t, s)
	seeded := createTestCard(t, s, user.ID)

	manual := &models.Card{UserID: user.ID, CardName: "Travel Card", Issuer: "Ordinal Bank", CardType: "Visa", RewardsTier: models.TierGold, LastFourDigits: "1111"}
	if err := s.CreateCard(ctx, manual); err != nil {
		t.Fatalf("CreateCard: %v", err)
	}
	existing := &models.Transaction{CardID: manual.ID, UserID: user.ID, Merchant: "Chipotle", Category: models.CategoryDining, Amount: 12.50}
	if err := s.CreateTransaction(ctx, existing); err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}

	rng := rand.New(rand.NewSource(1))
	n, err := s.SeedDemoTransactions(ctx, rng)
	if err != nil {
		t.Fatalf("SeedDemoTransactions: %v", err)
	}
	if n < 10 || n > 20 {
		t.Errorf("seeded %d transactions, want 10..20", n)
	}

	got, err := s.ListTransactions(ctx, seeded.ID, 0)
	if err != nil {
		t.Fatalf("ListTransactions: %v", err)
	}
	if len(got) != n {
		t.Errorf("empty card got %d transactions, want %d", len(got), n)
	}

	// The card that already had history is untouched.
	got, err = s.ListTransactions(ctx, manual.ID, 0)
	if err != nil {
		t.Fatalf("ListTransactions: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("card with history got %d transactions, want 1", len(got))
	}

	// A second pass is a no-op.
	again, err := s.SeedDemoTransactions(ctx, rng)
	if err != nil {
		t.Fatalf("SeedDemoTransactions again: %v", err)
	}
	if again != 0 {
		t.Errorf("second pass seeded %d transactions, want 0", again)
	}
}
