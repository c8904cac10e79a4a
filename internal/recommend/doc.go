// Ordinal - Credit Card Rewards Recommendation Backend
// Copyright 2026 The Ordinal Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ordinal-app/ordinal

// Package recommend implements the Next-Best-Action (NBA) ranking engine: a
// pure, deterministic scoring pipeline that turns a card's transaction history
// and the active reward catalog into an explainable, stably ordered list of
// recommended rewards.
//
// # Pipeline
//
// The Engine drives six stages:
//
//  1. Spending aggregation: the transaction window is summarized into a
//     SpendingProfile (total spend, per-category totals and counts,
//     per-merchant totals keyed by normalized merchant name).
//  2. Merchant matching: reward titles and merchant names are normalized into
//     comparable tokens; an alias bank resolves brand variants ("at&t",
//     "att", "at and t").
//  3. Eligibility gating: only Gift Cards, Cash Back, Travel and Statement
//     Credit rewards are ever ranked, and each has its own entry conditions.
//  4. Scoring: a weighted sum of merchant-match strength, category share,
//     transaction volume and value efficiency, shaped by saturation curves,
//     plus category-specific boosts and cost penalties.
//  5. Reason building: a one-line human-readable justification consistent
//     with the gating and scoring path.
//  6. Ordering: scores descending, ties broken by a stable jitter derived
//     from the reward's identity, result size capped by data volume.
//
// # Purity
//
// Every function in this package is a pure function of its explicit
// arguments: no I/O, no clock reads, no shared mutable state. Concurrent
// calls from multiple goroutines are safe without locking. The numeric
// weights are tunable configuration (see Config), not load-bearing
// constants; callers should rely on relative ordering, not exact scores.
package recommend
