// Ordinal - Credit Card Rewards Recommendation Backend
// Copyright 2026 The Ordinal Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ordinal-app/ordinal

// Package models defines the persistent domain types shared across Ordinal:
// users, cards, transactions and catalog rewards, plus the ordered enumerations
// (transaction categories, reward categories, rewards tiers) and the standard
// API response envelope.
//
// The enumerations are typed integers with an explicit total order so tier
// comparisons are index comparisons, never string comparisons. All of them
// implement encoding.TextMarshaler/TextUnmarshaler and therefore serialize as
// their display strings both as struct fields and as JSON map keys.
package models
