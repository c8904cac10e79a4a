// Ordinal - Credit Card Rewards Recommendation Backend
// Copyright 2026 The Ordinal Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ordinal-app/ordinal

// Package store persists users, cards, transactions and the reward catalog in
// an embedded BadgerDB key-value database.
//
// Records are stored as JSON values under typed key prefixes, with secondary
// index keys for the lookups the API needs (user by email, cards by user,
// transactions by card). All writes go through Badger transactions so a record
// and its index entries stay consistent.
package store
