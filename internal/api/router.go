// Ordinal - Credit Card Rewards Recommendation Backend
// Copyright 2026 The Ordinal Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ordinal-app/ordinal

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ordinal-app/ordinal/internal/auth"
	"github.com/ordinal-app/ordinal/internal/middleware"
)

// RouterConfig carries the HTTP-surface knobs the router needs.
type RouterConfig struct {
	// CORSAllowedOrigins lists origins allowed to call the API.
	CORSAllowedOrigins []string

	// RateLimitRequests/RateLimitWindow bound data-endpoint traffic per IP.
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// AuthRateLimitRequests/AuthRateLimitWindow bound register/login
	// attempts per IP. Kept much tighter than the data limit.
	AuthRateLimitRequests int
	AuthRateLimitWindow   time.Duration

	// RateLimitDisabled turns all rate limiting off. Tests set this.
	RateLimitDisabled bool
}

// DefaultRouterConfig returns the production defaults.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		CORSAllowedOrigins:    []string{"http://localhost:3000"},
		RateLimitRequests:     300,
		RateLimitWindow:       time.Minute,
		AuthRateLimitRequests: 10,
		AuthRateLimitWindow:   5 * time.Minute,
	}
}

// Router assembles the chi route tree.
type Router struct {
	handler *Handler
	jwt     *auth.JWTManager
	cfg     RouterConfig
}

// NewRouter creates a Router.
func NewRouter(handler *Handler, jwt *auth.JWTManager, cfg RouterConfig) *Router {
	return &Router{handler: handler, jwt: jwt, cfg: cfg}
}

// rateLimit returns an IP-keyed limiter, or a pass-through when disabled.
func (router *Router) rateLimit(requests int, window time.Duration) func(http.Handler) http.Handler {
	if router.cfg.RateLimitDisabled {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(requests, window, httprate.WithKeyFuncs(httprate.KeyByIP))
}

// Routes builds the complete HTTP handler.
func (router *Router) Routes() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every route in order.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   router.cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.Prometheus)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// Auth endpoints carry the strictest rate limit to slow brute force.
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Use(router.rateLimit(router.cfg.AuthRateLimitRequests, router.cfg.AuthRateLimitWindow))
		r.Post("/register", router.handler.Register)
		r.Post("/login", router.handler.Login)
	})

	// All data endpoints require a bearer token.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.rateLimit(router.cfg.RateLimitRequests, router.cfg.RateLimitWindow))
		r.Use(auth.Middleware(router.jwt))

		r.Route("/users/me", func(r chi.Router) {
			r.Get("/", router.handler.Me)
			r.Patch("/", router.handler.UpdateMe)
			r.Patch("/ai-toggle", router.handler.ToggleAI)
		})

		r.Route("/cards", func(r chi.Router) {
			r.Get("/", router.handler.ListCards)
			r.Post("/", router.handler.CreateCard)
			r.Get("/gamification", router.handler.Gamification)

			r.Route("/{cardID}", func(r chi.Router) {
				r.Get("/", router.handler.GetCard)
				r.Put("/", router.handler.UpdateCard)
				r.Delete("/", router.handler.DeleteCard)
				r.Get("/gamification", router.handler.CardGamification)
				r.Get("/recommendations", router.handler.Recommendations)
				r.Get("/rewards", router.handler.CardRewards)
				r.Get("/rewards/ranked", router.handler.RankedRewards)

				r.Route("/transactions", func(r chi.Router) {
					r.Get("/", router.handler.ListTransactions)
					r.Post("/", router.handler.CreateTransaction)
					r.Delete("/{transactionID}", router.handler.DeleteTransaction)
				})
			})
		})

		r.Route("/rewards", func(r chi.Router) {
			r.Get("/", router.handler.ListRewards)
			r.Post("/", router.handler.CreateReward)
			r.Get("/{rewardID}", router.handler.GetReward)
			r.Put("/{rewardID}", router.handler.UpdateReward)
			r.Delete("/{rewardID}", router.handler.DeleteReward)
		})
	})

	return r
}
