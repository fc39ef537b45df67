// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/db"
)

type VotingService struct {
	store *db.Store

	// beforeRecord runs inside the transaction after the checks pass and
	// before the vote is inserted. Nil in production.
	beforeRecord func(ctx context.Context, tx *db.Conn) error
}

func NewVotingService(store *db.Store) *VotingService {
	return &VotingService{store: store}
}

// CastVote records a single vote for token. The checks run in order inside
// one transaction and the first failure ends the attempt:
//
//  1. the token must belong to a provisioned voter (ErrUnauthorized)
//  2. the token must not have voted on any poll (ErrAlreadyVoted)
//  3. the option must exist (ErrNotFound)
//
// Tokens are opaque; any provisioned string is accepted. The UNIQUE
// constraint on votes.user_token is the authoritative guard; a concurrent
// insert that loses the race also yields ErrAlreadyVoted.
func (s *VotingService) CastVote(ctx context.Context, token string, optionID int64) error {
	if token == "" {
		return fmt.Errorf("cast vote: %w", ErrUnauthorized)
	}

	err := s.store.WithTx(ctx, func(tx *db.Conn) error {
		var known bool
		err := tx.QueryRow(ctx, `
			SELECT EXISTS(SELECT 1 FROM users WHERE token = $1)
		`, token).Scan(&known)
		if err != nil {
			return err
		}
		if !known {
			return ErrUnauthorized
		}

		var voted bool
		err = tx.QueryRow(ctx, `
			SELECT EXISTS(SELECT 1 FROM votes WHERE user_token = $1)
		`, token).Scan(&voted)
		if err != nil {
			return err
		}
		if voted {
			return ErrAlreadyVoted
		}

		var optionExists bool
		err = tx.QueryRow(ctx, `
			SELECT EXISTS(SELECT 1 FROM options WHERE id = $1)
		`, optionID).Scan(&optionExists)
		if err != nil {
			return err
		}
		if !optionExists {
			return fmt.Errorf("option %d: %w", optionID, ErrNotFound)
		}

		if s.beforeRecord != nil {
			if err := s.beforeRecord(ctx, tx); err != nil {
				return err
			}
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO votes (user_token, option_id) VALUES ($1, $2)
		`, token, optionID)
		if errors.Is(err, db.ErrUniqueViolation) {
			return fmt.Errorf("%w: %w", ErrAlreadyVoted, err)
		}
		return err
	})
	if err != nil {
		return translate("cast vote", err)
	}
	return nil
}
