// Ordinal - Credit Card Rewards Recommendation Backend
// Copyright 2026 The Ordinal Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ordinal-app/ordinal

package api

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/ordinal-app/ordinal/internal/auth"
	"github.com/ordinal-app/ordinal/internal/models"
	"github.com/ordinal-app/ordinal/internal/recommend"
	"github.com/ordinal-app/ordinal/internal/store"
)

const testJWTSecret = "0123456789abcdef0123456789abcdef"

// testServer is a full in-memory API stack.
type testServer struct {
	handler *Handler
	srv     http.Handler
	store   *store.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	st, err := store.OpenInMemory(zerolog.Nop())
	if err != nil {
		t.Fatalf("OpenInMemory: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	engine, err := recommend.NewEngine(nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	jwt, err := auth.NewJWTManager(testJWTSecret, time.Hour)
	if err != nil {
		t.Fatalf("NewJWTManager: %v", err)
	}

	handler := NewHandler(st, engine, jwt, zerolog.Nop(), "test")

	cfg := DefaultRouterConfig()
	cfg.RateLimitDisabled = true
	router := NewRouter(handler, jwt, cfg)

	return &testServer{handler: handler, srv: router.Routes(), store: st}
}

// do performs one request against the route tree.
func (ts *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.srv.ServeHTTP(rec, req)
	return rec
}

// envelope mirrors models.APIResponse with raw data for per-test decoding.
type envelope struct {
	Status string           `json:"status"`
	Data   json.RawMessage  `json:"data"`
	Error  *models.APIError `json:"error"`
}

// decodeEnvelope parses the response envelope.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %q)", err, rec.Body.String())
	}
	return env
}

// decodeData parses the data payload of a success envelope into dst.
func decodeData(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	env := decodeEnvelope(t, rec)
	if env.Status != "success" {
		t.Fatalf("status = %q, want success (body %q)", env.Status, rec.Body.String())
	}
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}

// register creates an account through the API and returns its token and
// profile.
func (ts *testServer) register(t *testing.T, username, email string) (string, models.UserProfile) {
	t.Helper()

	rec := ts.do(t, http.MethodPost, "/api/v1/auth/register", "", RegisterRequest{
		Username: username,
		Email:    email,
		Password: "sup3rsecret",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: status = %d, body %q", rec.Code, rec.Body.String())
	}

	var resp authResponse
	decodeData(t, rec, &resp)
	return resp.Token, resp.User
}

// createCard creates a card through the API.
func (ts *testServer) createCard(t *testing.T, token string) models.Card {
	t.Helper()

	rec := ts.do(t, http.MethodPost, "/api/v1/cards", token, CreateCardRequest{
		CardName:       "Everyday Card",
		Issuer:         "Ordinal Bank",
		CardType:       "Visa",
		RewardsTier:    "Gold",
		LastFourDigits: "4242",
		PointsBalance:  20000,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create card: status = %d, body %q", rec.Code, rec.Body.String())
	}

	var card models.Card
	decodeData(t, rec, &card)
	return card
}

// addTransaction records a transaction through the API.
func (ts *testServer) addTransaction(t *testing.T, token, cardID, merchant, category string, amount float64, date time.Time) models.Transaction {
	t.Helper()

	rec := ts.do(t, http.MethodPost, "/api/v1/cards/"+cardID+"/transactions", token, CreateTransactionRequest{
		Merchant: merchant,
		Amount:   amount,
		Category: category,
		Date:     date,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create transaction: status = %d, body %q", rec.Code, rec.Body.String())
	}

	var txn models.Transaction
	decodeData(t, rec, &txn)
	return txn
}
