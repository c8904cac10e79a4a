// Ordinal - Credit Card Rewards Recommendation Backend
// Copyright 2026 The Ordinal Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ordinal-app/ordinal

// Package middleware provides the HTTP middleware shared by every route:
// request ID propagation for tracing and Prometheus instrumentation. Both are
// chi-compatible func(http.Handler) http.Handler wrappers; authentication
// middleware lives in the auth package.
package middleware
