// Ordinal - Credit Card Rewards Recommendation Backend
// Copyright 2026 The Ordinal Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ordinal-app/ordinal

package models

import "fmt"

// Tier is an ordered rewards-access level attached to both cards and catalog
// rewards. The zero value is TierBasic. Comparison is by integer value:
// Basic < Silver < Gold < Platinum < Premium.
type Tier int

const (
	TierBasic Tier = iota
	TierSilver
	TierGold
	TierPlatinum
	TierPremium
)

// Tiers lists all tiers in ascending order.
var Tiers = []Tier{TierBasic, TierSilver, TierGold, TierPlatinum, TierPremium}

// String returns the display name for the tier.
func (t Tier) String() string {
	switch t {
	case TierBasic:
		return "Basic"
	case TierSilver:
		return "Silver"
	case TierGold:
		return "Gold"
	case TierPlatinum:
		return "Platinum"
	case TierPremium:
		return "Premium"
	default:
		return "Unknown"
	}
}

// Next returns the next tier up and true, or the same tier and false when the
// receiver is already the highest tier.
func (t Tier) Next() (Tier, bool) {
	if t >= TierPremium {
		return t, false
	}
	return t + 1, true
}

// ParseTier parses a display name into a Tier.
func ParseTier(s string) (Tier, bool) {
	for _, t := range Tiers {
		if t.String() == s {
			return t, true
		}
	}
	return TierBasic, false
}

// MarshalText implements encoding.TextMarshaler.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tier) UnmarshalText(b []byte) error {
	parsed, ok := ParseTier(string(b))
	if !ok {
		return fmt.Errorf("unknown tier %q", string(b))
	}
	*t = parsed
	return nil
}

// TransactionCategory classifies a spend transaction.
type TransactionCategory int

const (
	CategoryDining TransactionCategory = iota
	CategoryTravel
	CategoryGroceries
	CategoryGas
	CategoryEntertainment
	CategoryShopping
	CategoryBills
	CategoryOther
)

// TransactionCategories lists all transaction categories in a fixed order.
var TransactionCategories = []TransactionCategory{
	CategoryDining, CategoryTravel, CategoryGroceries, CategoryGas,
	CategoryEntertainment, CategoryShopping, CategoryBills, CategoryOther,
}

// String returns the display name for the category.
func (c TransactionCategory) String() string {
	switch c {
	case CategoryDining:
		return "Dining"
	case CategoryTravel:
		return "Travel"
	case CategoryGroceries:
		return "Groceries"
	case CategoryGas:
		return "Gas"
	case CategoryEntertainment:
		return "Entertainment"
	case CategoryShopping:
		return "Shopping"
	case CategoryBills:
		return "Bills"
	case CategoryOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// ParseTransactionCategory parses a display name into a TransactionCategory.
func ParseTransactionCategory(s string) (TransactionCategory, bool) {
	for _, c := range TransactionCategories {
		if c.String() == s {
			return c, true
		}
	}
	return CategoryOther, false
}

// MarshalText implements encoding.TextMarshaler.
func (c TransactionCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *TransactionCategory) UnmarshalText(b []byte) error {
	parsed, ok := ParseTransactionCategory(string(b))
	if !ok {
		return fmt.Errorf("unknown transaction category %q", string(b))
	}
	*c = parsed
	return nil
}

// RewardCategory classifies a catalog reward.
type RewardCategory int

const (
	RewardTravel RewardCategory = iota
	RewardCashBack
	RewardGiftCards
	RewardMerchandise
	RewardExperiences
	RewardStatementCredit
)

// RewardCategories lists all reward categories in a fixed order.
var RewardCategories = []RewardCategory{
	RewardTravel, RewardCashBack, RewardGiftCards,
	RewardMerchandise, RewardExperiences, RewardStatementCredit,
}

// String returns the display name for the reward category.
func (c RewardCategory) String() string {
	switch c {
	case RewardTravel:
		return "Travel"
	case RewardCashBack:
		return "Cash Back"
	case RewardGiftCards:
		return "Gift Cards"
	case RewardMerchandise:
		return "Merchandise"
	case RewardExperiences:
		return "Experiences"
	case RewardStatementCredit:
		return "Statement Credit"
	default:
		return "Unknown"
	}
}

// ParseRewardCategory parses a display name into a RewardCategory.
func ParseRewardCategory(s string) (RewardCategory, bool) {
	for _, c := range RewardCategories {
		if c.String() == s {
			return c, true
		}
	}
	return RewardCashBack, false
}

// MarshalText implements encoding.TextMarshaler.
func (c RewardCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *RewardCategory) UnmarshalText(b []byte) error {
	parsed, ok := ParseRewardCategory(string(b))
	if !ok {
		return fmt.Errorf("unknown reward category %q", string(b))
	}
	*c = parsed
	return nil
}
