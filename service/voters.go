// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"context"
	"fmt"

	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/auth"
	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/db"
)

// VoterService provisions voter tokens. Voters are never modified once
// created.
type VoterService struct {
	store *db.Store
}

func NewVoterService(store *db.Store) *VoterService {
	return &VoterService{store: store}
}

// IssueTokens creates n voters in one transaction and returns their tokens.
func (s *VoterService) IssueTokens(ctx context.Context, n int) ([]string, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: token count must be positive", ErrBadRequest)
	}

	tokens := make([]string, 0, n)
	err := s.store.WithTx(ctx, func(tx *db.Conn) error {
		for range n {
			token, err := auth.GenerateVoterToken()
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, `INSERT INTO users (token) VALUES ($1)`, token); err != nil {
				return err
			}
			tokens = append(tokens, token)
		}
		return nil
	})
	if err != nil {
		return nil, translate("issue tokens", err)
	}
	return tokens, nil
}

// Register provisions a voter with a caller-chosen token. Registering an
// existing token is a no-op.
func (s *VoterService) Register(ctx context.Context, token string) error {
	if err := auth.ValidateTokenFormat(token); err != nil {
		return fmt.Errorf("register voter: %w: %w", ErrBadRequest, err)
	}
	_, err := s.store.Exec(ctx, `
		INSERT INTO users (token) VALUES ($1) ON CONFLICT (token) DO NOTHING
	`, token)
	return translate("register voter", err)
}
