// Ordinal - Credit Card Rewards Recommendation Backend
// Copyright 2026 The Ordinal Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ordinal-app/ordinal

package recommend

import (
	"sort"
	"strings"

	"github.com/ordinal-app/ordinal/internal/models"
)

// Normalize canonicalizes free text for merchant matching: lowercase, "&"
// replaced by "and", everything outside [a-z0-9 ] stripped, whitespace runs
// collapsed to one space, trimmed. Normalize is idempotent, so punctuation and
// casing variants of the same merchant always normalize to the same token
// ("McDonald's" and "mcdonalds" are identical after normalization).
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "&", " and ")

	var b strings.Builder
	b.Grow(len(s))
	lastSpace := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastSpace = false
		case r == ' ', r == '\t', r == '\n', r == '\r':
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// HasPhrase reports whether the normalized phrase occurs in the normalized
// haystack bounded by whitespace or string edges. Whole-phrase matching
// prevents false positives such as "gas" matching inside "vegas". Both
// arguments must already be normalized.
func HasPhrase(haystack, phrase string) bool {
	if phrase == "" {
		return false
	}
	from := 0
	for {
		i := strings.Index(haystack[from:], phrase)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(phrase)
		leftBound := start == 0 || haystack[start-1] == ' '
		rightBound := end == len(haystack) || haystack[end] == ' '
		if leftBound && rightBound {
			return true
		}
		from = start + 1
	}
}

// aliasBank maps canonical merchant identities to their normalized alias
// phrases. A merchant and a reward title referring to the same brand through
// different aliases still match. Built once at startup; deterministic and
// deliberately narrow to avoid overly broad matching.
var aliasBank = [][]string{
	{"walmart"},
	{"whole foods", "wholefoods"},
	{"kroger"},
	{"shell", "shell gas"},
	{"chevron"},
	{"mcdonalds", "mc donalds", "mcdonald"},
	{"chipotle"},
	{"starbucks"},
	{"netflix"},
	{"lyft"},
	{"uber"},
	{"amazon"},
	{"apple"},
	{"best buy", "bestbuy"},
	{"target"},
	{"verizon"},
	{"att", "at and t"},
	{"delta", "delta airlines"},
	{"bp"},
	{"airbnb"},
}

// titleAliases returns every alias phrase present in the normalized title.
func titleAliases(titleNorm string) []string {
	var out []string
	for _, group := range aliasBank {
		for _, alias := range group {
			if HasPhrase(titleNorm, alias) {
				out = append(out, alias)
			}
		}
	}
	return out
}

// diningAggregatorPhrases identifies food-delivery and restaurant-aggregator
// rewards that should surface for dining-heavy spending without a direct
// merchant match.
var diningAggregatorPhrases = []string{
	"doordash",
	"door dash",
	"ubereats",
	"uber eats",
	"grubhub",
	"restaurantcom",
	"restaurant com",
	"restaurant",
}

// isDiningAggregator reports whether a normalized reward title references a
// known dining aggregator brand.
func isDiningAggregator(titleNorm string) bool {
	for _, p := range diningAggregatorPhrases {
		if HasPhrase(titleNorm, p) {
			return true
		}
	}
	return false
}

// cashBackSubcategories maps normalized title phrases to the transaction
// category a Cash Back reward targets. Checked in order; first hit wins.
var cashBackSubcategories = []struct {
	phrase   string
	category models.TransactionCategory
}{
	{"dining", models.CategoryDining},
	{"gas", models.CategoryGas},
	{"grocery", models.CategoryGroceries},
	{"groceries", models.CategoryGroceries},
	{"travel", models.CategoryTravel},
	{"bill", models.CategoryBills},
	{"bills", models.CategoryBills},
}

// cashBackSubcategory detects the specific spend category a Cash Back reward
// title targets. The second return is false for generic cash back.
func cashBackSubcategory(titleNorm string) (models.TransactionCategory, bool) {
	for _, sub := range cashBackSubcategories {
		if HasPhrase(titleNorm, sub.phrase) {
			return sub.category, true
		}
	}
	return models.CategoryOther, false
}

// merchantMatch is the outcome of matching one reward title against a
// spending profile's merchants.
type merchantMatch struct {
	// key is the normalized merchant name of the best match.
	key string
	// displayName is the merchant's original display name.
	displayName string
	// share is the merchant's fraction of total spend.
	share float64
	// matched reports whether any merchant satisfied the match predicate.
	matched bool
}

// matchesMerchant reports whether a normalized reward title textually
// references a merchant, via direct phrase containment, individual merchant
// tokens of length >= 3, or a shared alias.
func matchesMerchant(titleNorm, merchantNorm string, aliases []string) bool {
	if merchantNorm != "" && HasPhrase(titleNorm, merchantNorm) {
		return true
	}
	for _, tok := range strings.Split(merchantNorm, " ") {
		if len(tok) >= 3 && HasPhrase(titleNorm, tok) {
			return true
		}
	}
	for _, alias := range aliases {
		if HasPhrase(merchantNorm, alias) {
			return true
		}
	}
	return false
}

// bestMerchantMatch finds the merchant with the highest spend share among all
// profile merchants the reward title references. Merchants are visited in
// sorted key order so ties resolve deterministically to the first encountered
// maximum.
func bestMerchantMatch(titleNorm string, profile *SpendingProfile) merchantMatch {
	if profile == nil || profile.Total <= 0 || len(profile.Merchants) == 0 {
		return merchantMatch{}
	}

	aliases := titleAliases(titleNorm)

	keys := make([]string, 0, len(profile.Merchants))
	for k := range profile.Merchants {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var best merchantMatch
	for _, key := range keys {
		if !matchesMerchant(titleNorm, key, aliases) {
			continue
		}
		share := profile.Merchants[key] / profile.Total
		if !best.matched || share > best.share {
			best = merchantMatch{
				key:         key,
				displayName: profile.MerchantDisplayName(key),
				share:       share,
				matched:     true,
			}
		}
	}
	return best
}
