// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/evening-out/cliparse"
	"github.com/danielhkuo/evening-out/db"
	"github.com/danielhkuo/evening-out/ident"
	"github.com/danielhkuo/evening-out/reveal"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full
// schema. Each test gets its own database; nothing to clean up beyond
// Close.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// A second pool connection would see an empty :memory: database.
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8080,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		BaseURL:      "http://localhost:8080",
		RevealMode:   reveal.ModeTimed,
		RevealHours:  48,
	}
}

// CreateTestPoll creates a poll with the given candidate dates and
// returns its ID.
func CreateTestPoll(t *testing.T, conn *sql.DB, createdAt time.Time, dates []string) string {
	t.Helper()

	pollID := ident.NewPollID()
	_, err := conn.Exec(`
		INSERT INTO poll (id, title, location, organizer_name, organizer_email, created_at)
		VALUES ($1, 'Test Poll', 'Test Bar', 'TestUser', NULL, $2)
	`, pollID, createdAt)
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	for i, date := range dates {
		_, err := conn.Exec(`
			INSERT INTO poll_date (poll_id, date, position)
			VALUES ($1, $2, $3)
		`, pollID, date, i)
		if err != nil {
			t.Fatalf("Failed to create test poll date: %v", err)
		}
	}

	return pollID
}

// AddTestVote appends a vote with the given responses and returns the
// vote ID.
func AddTestVote(t *testing.T, conn *sql.DB, pollID, voterName string, responses map[string]string) string {
	t.Helper()

	voteID := ident.NewVoteID()
	_, err := conn.Exec(`
		INSERT INTO vote (id, poll_id, voter_name, voter_email, voter_phone, created_at)
		VALUES ($1, $2, $3, NULL, NULL, $4)
	`, voteID, pollID, voterName, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	for date, response := range responses {
		_, err := conn.Exec(`
			INSERT INTO vote_response (vote_id, date, response)
			VALUES ($1, $2, $3)
		`, voteID, date, response)
		if err != nil {
			t.Fatalf("Failed to create test response: %v", err)
		}
	}

	return voteID
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
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
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
