// Ordinal - Credit Card Rewards Recommendation Backend
// Copyright 2026 The Ordinal Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ordinal-app/ordinal

// Package api provides the HTTP surface of Ordinal: chi routing, request
// decoding and validation, the standardized response envelope, and handlers
// for auth, users, cards, transactions, the reward catalog, ranked
// recommendations, and gamification.
package api
