// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/auth"
	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/cliparse"
	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/db"
)

// TestAdminPassword is the admin credential in GetTestConfig
const TestAdminPassword = "test-admin-password"

// SetupTestDB creates a fresh SQLite database with the full schema.
// The database lives in the test's temp dir and is closed on cleanup.
func SetupTestDB(t *testing.T) *db.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "polls.db")
	store, err := db.Open(context.Background(), db.DialectSQLite, path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := db.CreateSchema(context.Background(), store); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return store
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          5000,
		DatabaseType:  "sqlite",
		DatabaseURL:   ":memory:",
		AdminPassword: TestAdminPassword,
	}
}

// CreateTestPoll inserts a poll and returns its ID
func CreateTestPoll(t *testing.T, store *db.Store, question string) int64 {
	t.Helper()

	id, err := store.InsertReturningID(context.Background(), `
		INSERT INTO polls (question) VALUES ($1) RETURNING id
	`, question)
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}
	return id
}

// AddTestOption adds an option to a poll and returns the option ID
func AddTestOption(t *testing.T, store *db.Store, pollID int64, text string) int64 {
	t.Helper()

	id, err := store.InsertReturningID(context.Background(), `
		INSERT INTO options (poll_id, option_text) VALUES ($1, $2) RETURNING id
	`, pollID, text)
	if err != nil {
		t.Fatalf("Failed to create test option: %v", err)
	}
	return id
}

// CreateTestVoter provisions a voter. An empty token gets a random one.
func CreateTestVoter(t *testing.T, store *db.Store, token string) string {
	t.Helper()

	if token == "" {
		var err error
		token, err = auth.GenerateVoterToken()
		if err != nil {
			t.Fatalf("Failed to generate voter token: %v", err)
		}
	}

	_, err := store.Exec(context.Background(), `INSERT INTO users (token) VALUES ($1)`, token)
	if err != nil {
		t.Fatalf("Failed to create test voter: %v", err)
	}
	return token
}

// CastTestVote records a vote directly, bypassing the voting rules
func CastTestVote(t *testing.T, store *db.Store, token string, optionID int64) {
	t.Helper()

	_, err := store.Exec(context.Background(), `
		INSERT INTO votes (user_token, option_id) VALUES ($1, $2)
	`, token, optionID)
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}
}

// CountVotes returns the number of vote rows for a token
func CountVotes(t *testing.T, store *db.Store, token string) int {
	t.Helper()

	var n int
	err := store.QueryRow(context.Background(), `
		SELECT COUNT(*) FROM votes WHERE user_token = $1
	`, token).Scan(&n)
	if err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
