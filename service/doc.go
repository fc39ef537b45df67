// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package service holds the poll, voting and results logic.

Each service takes a *db.Store and runs its storage work inside
Store.WithTx when more than one statement is involved:

	polls := service.NewPollService(store)
	voting := service.NewVotingService(store)
	results := service.NewResultsAggregator(store, cfg.AdminPassword)

# Error Kinds

Every returned error wraps one of ErrBadRequest, ErrNotFound,
ErrUnauthorized, ErrAlreadyVoted, ErrUnavailable or ErrInternal. Use
errors.Is or Kind to branch on them. Store failures never leak as raw
driver errors.

# Single Vote

A token may vote once across all polls. CastVote checks this up front for
a clear error, and the UNIQUE constraint on votes.user_token settles
concurrent attempts.

# Results

Counts include options with no votes. Results are sorted by count
descending, ties in insertion order. The winner is the first maximal
entry; a poll with no options reports models.NoVotesYet.
*/
package service
