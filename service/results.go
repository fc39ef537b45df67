// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"cmp"
	"context"
	"database/sql"
	"fmt"
	"slices"

	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/auth"
	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/db"
	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/models"
)

// ResultsAggregator computes per-option tallies for the admin.
type ResultsAggregator struct {
	store         *db.Store
	adminPassword string
}

func NewResultsAggregator(store *db.Store, adminPassword string) *ResultsAggregator {
	return &ResultsAggregator{store: store, adminPassword: adminPassword}
}

// GetResults returns vote counts for every option of the poll, most votes
// first and insertion order among ties. The credential is checked before the
// store is touched.
func (a *ResultsAggregator) GetResults(ctx context.Context, pollID int64, credential string) (models.PollResults, error) {
	if err := auth.ValidateAdminPassword(credential, a.adminPassword); err != nil {
		return models.PollResults{}, fmt.Errorf("get results: %w", ErrUnauthorized)
	}

	var res models.PollResults
	err := a.store.WithTx(ctx, func(tx *db.Conn) error {
		question, err := pollQuestion(ctx, tx, pollID)
		if err != nil {
			return err
		}
		res.PollQuestion = question

		res.Results, err = tally(ctx, tx, pollID)
		return err
	})
	if err != nil {
		return models.PollResults{}, translate("get results", err)
	}

	res.Winner = Winner(res.Results)
	return res, nil
}

func tally(ctx context.Context, q *db.Conn, pollID int64) ([]models.OptionResult, error) {
	results := []models.OptionResult{}
	err := q.Each(ctx, func(rows *sql.Rows) error {
		var r models.OptionResult
		if err := rows.Scan(&r.OptionID, &r.OptionText, &r.VoteCount); err != nil {
			return err
		}
		results = append(results, r)
		return nil
	}, `
		SELECT o.id, o.option_text, COUNT(v.id) AS vote_count
		FROM options o
		LEFT JOIN votes v ON v.option_id = o.id
		WHERE o.poll_id = $1
		GROUP BY o.id, o.option_text
		ORDER BY vote_count DESC, o.id ASC
	`, pollID)
	if err != nil {
		return nil, err
	}

	SortResults(results)
	return results, nil
}

// SortResults orders by vote count descending, then option id ascending.
func SortResults(results []models.OptionResult) {
	slices.SortStableFunc(results, func(a, b models.OptionResult) int {
		if c := cmp.Compare(b.VoteCount, a.VoteCount); c != 0 {
			return c
		}
		return cmp.Compare(a.OptionID, b.OptionID)
	})
}

// Winner returns the option with the highest count, the earliest one on a
// tie. A zero count still wins; only an empty list yields NoVotesYet.
func Winner(results []models.OptionResult) string {
	if len(results) == 0 {
		return models.NoVotesYet
	}
	best := results[0]
	for _, r := range results[1:] {
		if r.VoteCount > best.VoteCount {
			best = r
		}
	}
	return best.OptionText
}
