// Ordinal - Credit Card Rewards Recommendation Backend
// Copyright 2026 The Ordinal Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ordinal-app/ordinal

// Package auth provides password hashing and stateless JWT authentication.
// Tokens are signed with HMAC-SHA256 and carry the user's ID and username;
// the HTTP middleware extracts a validated identity into the request context.
package auth
