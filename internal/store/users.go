// Ordinal - Credit Card Rewards Recommendation Backend
// Copyright 2026 The Ordinal Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ordinal-app/ordinal

package store

import (
	"context"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/ordinal-app/ordinal/internal/models"
)

// normalizeEmail canonicalizes an email for index lookups.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser persists a new user, enforcing unique email and username. The
// user's ID and timestamps are assigned here.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.Email = normalizeEmail(user.Email)

	err := s.update("create", "user", func(txn *badger.Txn) error {
		if taken, err := keyExists(txn, userEmailKeyPrefix+user.Email); err != nil {
			return err
		} else if taken {
			return ErrEmailTaken
		}
		if taken, err := keyExists(txn, userNameKeyPrefix+user.Username); err != nil {
			return err
		} else if taken {
			return ErrUsernameTaken
		}

		if err := setJSON(txn, userKeyPrefix+user.ID, user); err != nil {
			return err
		}
		if err := txn.Set([]byte(userEmailKeyPrefix+user.Email), []byte(user.ID)); err != nil {
			return err
		}
		return txn.Set([]byte(userNameKeyPrefix+user.Username), []byte(user.ID))
	})
	if err != nil {
		return err
	}

	s.logger.Debug().Str("user_id", user.ID).Msg("user created")
	return nil
}

// GetUser fetches a user by ID.
func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.view("get", "user", func(txn *badger.Txn) error {
		return getJSON(txn, userKeyPrefix+id, &user)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail fetches a user through the email index.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.view("get_by_email", "user", func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(userEmailKeyPrefix + normalizeEmail(email)))
		if err != nil {
			return ErrNotFound
		}
		return item.Value(func(id []byte) error {
			return getJSON(txn, userKeyPrefix+string(id), &user)
		})
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser rewrites an existing user record. Email and username are
// immutable once created; callers mutate the fetched record and pass it back.
func (s *Store) UpdateUser(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now().UTC()
	return s.update("update", "user", func(txn *badger.Txn) error {
		if exists, err := keyExists(txn, userKeyPrefix+user.ID); err != nil {
			return err
		} else if !exists {
			return ErrNotFound
		}
		return setJSON(txn, userKeyPrefix+user.ID, user)
	})
}

// SetAIEnabled flips the user's personalization toggle and returns the
// updated record.
func (s *Store) SetAIEnabled(ctx context.Context, userID string, enabled bool) (*models.User, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.AIEnabled = enabled
	if err := s.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
