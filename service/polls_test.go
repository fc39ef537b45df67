// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/models"
	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/testutil"
)

func TestCreatePoll_RoundTrip(t *testing.T) {
	store := testutil.SetupTestDB(t)
	polls := NewPollService(store)
	ctx := context.Background()

	id, err := polls.CreatePoll(ctx, "Favorite color?")
	require.NoError(t, err)
	assert.Positive(t, id)

	poll, err := polls.GetPoll(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Favorite color?", poll.Question)
	assert.NotNil(t, poll.Options)
	assert.Empty(t, poll.Options)
}

func TestCreatePoll_Validation(t *testing.T) {
	store := testutil.SetupTestDB(t)
	polls := NewPollService(store)

	for _, q := range []string{"", "   ", "\t\n"} {
		_, err := polls.CreatePoll(context.Background(), q)
		assert.ErrorIs(t, err, ErrBadRequest, "question %q", q)
	}
}

func TestCreatePoll_StoresTextVerbatim(t *testing.T) {
	store := testutil.SetupTestDB(t)
	polls := NewPollService(store)
	ctx := context.Background()

	question := "  Favorite color?\n"
	id, err := polls.CreatePoll(ctx, question)
	require.NoError(t, err)

	optID, err := polls.AddOption(ctx, id, " Red ")
	require.NoError(t, err)

	poll, err := polls.GetPoll(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, question, poll.Question)
	require.Len(t, poll.Options, 1)
	assert.Equal(t, optID, poll.Options[0].ID)
	assert.Equal(t, " Red ", poll.Options[0].OptionText)
}

func TestCreatePoll_DistinctIDs(t *testing.T) {
	store := testutil.SetupTestDB(t)
	polls := NewPollService(store)
	ctx := context.Background()

	first, err := polls.CreatePoll(ctx, "One")
	require.NoError(t, err)
	second, err := polls.CreatePoll(ctx, "Two")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestAddOption(t *testing.T) {
	store := testutil.SetupTestDB(t)
	polls := NewPollService(store)
	ctx := context.Background()

	pollID := testutil.CreateTestPoll(t, store, "X")

	a, err := polls.AddOption(ctx, pollID, "A")
	require.NoError(t, err)
	b, err := polls.AddOption(ctx, pollID, "B")
	require.NoError(t, err)
	c, err := polls.AddOption(ctx, pollID, "C")
	require.NoError(t, err)

	poll, err := polls.GetPoll(ctx, pollID)
	require.NoError(t, err)
	assert.Equal(t, []models.Option{
		{ID: a, PollID: pollID, OptionText: "A"},
		{ID: b, PollID: pollID, OptionText: "B"},
		{ID: c, PollID: pollID, OptionText: "C"},
	}, poll.Options)
}

func TestAddOption_MissingPoll(t *testing.T) {
	store := testutil.SetupTestDB(t)
	polls := NewPollService(store)

	_, err := polls.AddOption(context.Background(), 999, "Orphan")
	assert.ErrorIs(t, err, ErrNotFound)

	var count int
	require.NoError(t, store.QueryRow(context.Background(), `SELECT COUNT(*) FROM options`).Scan(&count))
	assert.Zero(t, count, "no orphan option should be inserted")
}

func TestAddOption_BlankText(t *testing.T) {
	store := testutil.SetupTestDB(t)
	polls := NewPollService(store)
	pollID := testutil.CreateTestPoll(t, store, "X")

	_, err := polls.AddOption(context.Background(), pollID, "  ")
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestAddOption_OptionsScopedToPoll(t *testing.T) {
	store := testutil.SetupTestDB(t)
	polls := NewPollService(store)
	ctx := context.Background()

	p1 := testutil.CreateTestPoll(t, store, "First")
	p2 := testutil.CreateTestPoll(t, store, "Second")
	testutil.AddTestOption(t, store, p1, "only in first")

	poll, err := polls.GetPoll(ctx, p2)
	require.NoError(t, err)
	assert.Empty(t, poll.Options)
}

func TestGetPoll_NotFound(t *testing.T) {
	store := testutil.SetupTestDB(t)
	polls := NewPollService(store)

	_, err := polls.GetPoll(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, ErrNotFound, Kind(err))
}

func TestPollService_StoreUnavailable(t *testing.T) {
	store := testutil.SetupTestDB(t)
	polls := NewPollService(store)
	pollID := testutil.CreateTestPoll(t, store, "X")
	require.NoError(t, store.Close())

	ctx := context.Background()

	_, err := polls.CreatePoll(ctx, "Y")
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = polls.AddOption(ctx, pollID, "A")
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = polls.GetPoll(ctx, pollID)
	assert.ErrorIs(t, err, ErrUnavailable)
}
