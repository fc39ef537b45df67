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

func TestGetResults_CountsAndWinner(t *testing.T) {
	store := testutil.SetupTestDB(t)
	polls := NewPollService(store)
	voting := NewVotingService(store)
	results := NewResultsAggregator(store, testutil.TestAdminPassword)
	ctx := context.Background()

	pollID, err := polls.CreatePoll(ctx, "X")
	require.NoError(t, err)
	optA, err := polls.AddOption(ctx, pollID, "A")
	require.NoError(t, err)
	optB, err := polls.AddOption(ctx, pollID, "B")
	require.NoError(t, err)

	for token, option := range map[string]int64{"t1": optA, "t2": optB, "t3": optA} {
		testutil.CreateTestVoter(t, store, token)
		require.NoError(t, voting.CastVote(ctx, token, option))
	}

	res, err := results.GetResults(ctx, pollID, testutil.TestAdminPassword)
	require.NoError(t, err)

	assert.Equal(t, "X", res.PollQuestion)
	assert.Equal(t, []models.OptionResult{
		{OptionID: optA, OptionText: "A", VoteCount: 2},
		{OptionID: optB, OptionText: "B", VoteCount: 1},
	}, res.Results)
	assert.Equal(t, "A", res.Winner)
}

func TestGetResults_NoOptions(t *testing.T) {
	store := testutil.SetupTestDB(t)
	results := NewResultsAggregator(store, testutil.TestAdminPassword)
	pollID := testutil.CreateTestPoll(t, store, "Y")

	res, err := results.GetResults(context.Background(), pollID, testutil.TestAdminPassword)
	require.NoError(t, err)

	assert.NotNil(t, res.Results)
	assert.Empty(t, res.Results)
	assert.Equal(t, models.NoVotesYet, res.Winner)
}

func TestGetResults_ZeroVotesStillHasWinner(t *testing.T) {
	store := testutil.SetupTestDB(t)
	results := NewResultsAggregator(store, testutil.TestAdminPassword)
	pollID := testutil.CreateTestPoll(t, store, "Z")
	only := testutil.AddTestOption(t, store, pollID, "Only")

	res, err := results.GetResults(context.Background(), pollID, testutil.TestAdminPassword)
	require.NoError(t, err)

	assert.Equal(t, []models.OptionResult{{OptionID: only, OptionText: "Only", VoteCount: 0}}, res.Results)
	assert.Equal(t, "Only", res.Winner)
}

func TestGetResults_TiesKeepInsertionOrder(t *testing.T) {
	store := testutil.SetupTestDB(t)
	results := NewResultsAggregator(store, testutil.TestAdminPassword)
	pollID := testutil.CreateTestPoll(t, store, "Ties")

	first := testutil.AddTestOption(t, store, pollID, "first")
	second := testutil.AddTestOption(t, store, pollID, "second")
	third := testutil.AddTestOption(t, store, pollID, "third")
	fourth := testutil.AddTestOption(t, store, pollID, "fourth")

	// third: 2, second: 1, fourth: 1, first: 0
	testutil.CastTestVote(t, store, testutil.CreateTestVoter(t, store, ""), third)
	testutil.CastTestVote(t, store, testutil.CreateTestVoter(t, store, ""), third)
	testutil.CastTestVote(t, store, testutil.CreateTestVoter(t, store, ""), fourth)
	testutil.CastTestVote(t, store, testutil.CreateTestVoter(t, store, ""), second)

	res, err := results.GetResults(context.Background(), pollID, testutil.TestAdminPassword)
	require.NoError(t, err)

	var order []int64
	for _, r := range res.Results {
		order = append(order, r.OptionID)
	}
	assert.Equal(t, []int64{third, second, fourth, first}, order)
	assert.Equal(t, "third", res.Winner)
}

func TestGetResults_ScopedToPoll(t *testing.T) {
	store := testutil.SetupTestDB(t)
	results := NewResultsAggregator(store, testutil.TestAdminPassword)

	p1 := testutil.CreateTestPoll(t, store, "One")
	a := testutil.AddTestOption(t, store, p1, "A")
	p2 := testutil.CreateTestPoll(t, store, "Two")
	b := testutil.AddTestOption(t, store, p2, "B")

	testutil.CastTestVote(t, store, testutil.CreateTestVoter(t, store, ""), a)
	testutil.CastTestVote(t, store, testutil.CreateTestVoter(t, store, ""), a)

	res, err := results.GetResults(context.Background(), p2, testutil.TestAdminPassword)
	require.NoError(t, err)
	assert.Equal(t, []models.OptionResult{{OptionID: b, OptionText: "B", VoteCount: 0}}, res.Results)
}

func TestGetResults_Idempotent(t *testing.T) {
	store := testutil.SetupTestDB(t)
	results := NewResultsAggregator(store, testutil.TestAdminPassword)
	pollID := testutil.CreateTestPoll(t, store, "Again")
	a := testutil.AddTestOption(t, store, pollID, "A")
	testutil.AddTestOption(t, store, pollID, "B")
	testutil.CastTestVote(t, store, testutil.CreateTestVoter(t, store, ""), a)

	ctx := context.Background()
	first, err := results.GetResults(ctx, pollID, testutil.TestAdminPassword)
	require.NoError(t, err)
	second, err := results.GetResults(ctx, pollID, testutil.TestAdminPassword)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGetResults_Unauthorized(t *testing.T) {
	store := testutil.SetupTestDB(t)
	results := NewResultsAggregator(store, testutil.TestAdminPassword)
	pollID := testutil.CreateTestPoll(t, store, "Secret")

	for _, cred := range []string{"", "wrong", testutil.TestAdminPassword + " "} {
		_, err := results.GetResults(context.Background(), pollID, cred)
		assert.ErrorIs(t, err, ErrUnauthorized, "credential %q", cred)
	}

	// Missing poll still reports the auth failure
	_, err := results.GetResults(context.Background(), 9999, "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGetResults_UnauthorizedNeverTouchesStore(t *testing.T) {
	store := testutil.SetupTestDB(t)
	results := NewResultsAggregator(store, testutil.TestAdminPassword)
	require.NoError(t, store.Close())

	// A closed store would yield ErrUnavailable if it were consulted
	_, err := results.GetResults(context.Background(), 1, "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.NotErrorIs(t, err, ErrUnavailable)

	_, err = results.GetResults(context.Background(), 1, testutil.TestAdminPassword)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGetResults_EmptyConfiguredPassword(t *testing.T) {
	store := testutil.SetupTestDB(t)
	results := NewResultsAggregator(store, "")
	pollID := testutil.CreateTestPoll(t, store, "X")

	_, err := results.GetResults(context.Background(), pollID, "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGetResults_NotFound(t *testing.T) {
	store := testutil.SetupTestDB(t)
	results := NewResultsAggregator(store, testutil.TestAdminPassword)

	_, err := results.GetResults(context.Background(), 404, testutil.TestAdminPassword)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWinner(t *testing.T) {
	tests := []struct {
		name    string
		results []models.OptionResult
		want    string
	}{
		{"empty", nil, models.NoVotesYet},
		{"single zero", []models.OptionResult{{OptionText: "Only"}}, "Only"},
		{"all zero picks first", []models.OptionResult{{OptionText: "a"}, {OptionText: "b"}}, "a"},
		{"max wins", []models.OptionResult{{OptionText: "a", VoteCount: 1}, {OptionText: "b", VoteCount: 3}}, "b"},
		{"tie picks earliest", []models.OptionResult{{OptionText: "a", VoteCount: 2}, {OptionText: "b", VoteCount: 2}}, "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Winner(tt.results))
		})
	}
}

func TestSortResults(t *testing.T) {
	results := []models.OptionResult{
		{OptionID: 4, VoteCount: 1},
		{OptionID: 1, VoteCount: 0},
		{OptionID: 3, VoteCount: 5},
		{OptionID: 2, VoteCount: 1},
	}

	SortResults(results)

	var ids []int64
	for _, r := range results {
		ids = append(ids, r.OptionID)
	}
	assert.Equal(t, []int64{3, 2, 4, 1}, ids)
}
