package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/service"
	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/testutil"
)

func TestProvision(t *testing.T) {
	ctx := context.Background()

	t.Run("no provisioning mode", func(t *testing.T) {
		store := testutil.SetupTestDB(t)
		var out bytes.Buffer

		done, err := provision(ctx, service.NewVoterService(store), testutil.GetTestConfig(), &out)
		if err != nil || done {
			t.Errorf("Expected server mode, got done=%v err=%v", done, err)
		}
		if out.Len() != 0 {
			t.Errorf("Expected no output, got %q", out.String())
		}
	})

	t.Run("issue tokens", func(t *testing.T) {
		store := testutil.SetupTestDB(t)
		cfg := testutil.GetTestConfig()
		cfg.IssueTokens = 4
		var out bytes.Buffer

		done, err := provision(ctx, service.NewVoterService(store), cfg, &out)
		if err != nil || !done {
			t.Fatalf("Expected tokens issued, got done=%v err=%v", done, err)
		}

		tokens := strings.Fields(out.String())
		if len(tokens) != 4 {
			t.Fatalf("Expected 4 printed tokens, got %d", len(tokens))
		}

		// Printed tokens can vote
		pollID := testutil.CreateTestPoll(t, store, "X")
		opt := testutil.AddTestOption(t, store, pollID, "A")
		if err := service.NewVotingService(store).CastVote(ctx, tokens[0], opt); err != nil {
			t.Errorf("Expected issued token to vote, got %v", err)
		}
	})

	t.Run("register token", func(t *testing.T) {
		store := testutil.SetupTestDB(t)
		cfg := testutil.GetTestConfig()
		cfg.RegisterToken = "alice-token"

		done, err := provision(ctx, service.NewVoterService(store), cfg, &bytes.Buffer{})
		if err != nil || !done {
			t.Fatalf("Expected token registered, got done=%v err=%v", done, err)
		}

		pollID := testutil.CreateTestPoll(t, store, "X")
		opt := testutil.AddTestOption(t, store, pollID, "A")
		if err := service.NewVotingService(store).CastVote(ctx, "alice-token", opt); err != nil {
			t.Errorf("Expected registered token to vote, got %v", err)
		}
	})

	t.Run("register malformed token", func(t *testing.T) {
		store := testutil.SetupTestDB(t)
		cfg := testutil.GetTestConfig()
		cfg.RegisterToken = "has space"

		done, err := provision(ctx, service.NewVoterService(store), cfg, &bytes.Buffer{})
		if !done || err == nil {
			t.Errorf("Expected registration error, got done=%v err=%v", done, err)
		}
	})
}
