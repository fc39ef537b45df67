// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/db"
	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/models"
)

type PollService struct {
	store *db.Store
}

func NewPollService(store *db.Store) *PollService {
	return &PollService{store: store}
}

// CreatePoll inserts a poll and returns its generated id.
func (s *PollService) CreatePoll(ctx context.Context, question string) (int64, error) {
	if strings.TrimSpace(question) == "" {
		return 0, fmt.Errorf("%w: question is required", ErrBadRequest)
	}

	id, err := s.store.InsertReturningID(ctx, `
		INSERT INTO polls (question) VALUES ($1) RETURNING id
	`, question)
	if err != nil {
		return 0, translate("create poll", err)
	}
	return id, nil
}

// AddOption attaches an option to an existing poll and returns the option id.
// A missing poll is reported as ErrNotFound rather than leaving an orphan.
func (s *PollService) AddOption(ctx context.Context, pollID int64, optionText string) (int64, error) {
	if strings.TrimSpace(optionText) == "" {
		return 0, fmt.Errorf("%w: option_text is required", ErrBadRequest)
	}

	var optionID int64
	err := s.store.WithTx(ctx, func(tx *db.Conn) error {
		if _, err := pollQuestion(ctx, tx, pollID); err != nil {
			return err
		}

		id, err := tx.InsertReturningID(ctx, `
			INSERT INTO options (poll_id, option_text) VALUES ($1, $2) RETURNING id
		`, pollID, optionText)
		if err != nil {
			return err
		}
		optionID = id
		return nil
	})
	if err != nil {
		return 0, translate("add option", err)
	}
	return optionID, nil
}

// GetPoll returns the poll question and its options in insertion order.
func (s *PollService) GetPoll(ctx context.Context, pollID int64) (models.PollWithOptions, error) {
	var poll models.PollWithOptions
	err := s.store.WithTx(ctx, func(tx *db.Conn) error {
		question, err := pollQuestion(ctx, tx, pollID)
		if err != nil {
			return err
		}
		poll.Question = question

		poll.Options, err = pollOptions(ctx, tx, pollID)
		return err
	})
	if err != nil {
		return models.PollWithOptions{}, translate("get poll", err)
	}
	return poll, nil
}

func pollQuestion(ctx context.Context, q *db.Conn, pollID int64) (string, error) {
	var question string
	err := q.QueryRow(ctx, `SELECT question FROM polls WHERE id = $1`, pollID).Scan(&question)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("poll %d: %w", pollID, ErrNotFound)
	}
	return question, err
}

func pollOptions(ctx context.Context, q *db.Conn, pollID int64) ([]models.Option, error) {
	options := []models.Option{}
	err := q.Each(ctx, func(rows *sql.Rows) error {
		opt := models.Option{PollID: pollID}
		if err := rows.Scan(&opt.ID, &opt.OptionText); err != nil {
			return err
		}
		options = append(options, opt)
		return nil
	}, `
		SELECT id, option_text
		FROM options
		WHERE poll_id = $1
		ORDER BY id
	`, pollID)
	return options, err
}
