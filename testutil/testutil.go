// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/hackathons/cliparse"
	"github.com/danielhkuo/hackathons/db"
	"github.com/danielhkuo/hackathons/models"
)

// SetupTestDB creates a fresh SQLite database with the full schema.
// The file lives in the test's temp dir and is removed with it.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(context.Background(), db.TypeSQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3000,
		Env:           cliparse.EnvDevelopment,
		DatabaseURL:   "file:test.db",
		DatabaseType:  db.TypeSQLite,
		RecentLimit:   cliparse.DefaultRecentLimit,
		CacheTTL:      time.Minute,
		RenderTimeout: time.Second,
		FetchTimeout:  5 * time.Second,
	}
}

// HackathonFixture describes a hackathon row to seed
type HackathonFixture struct {
	Name        string
	URL         string
	Description *string
	Rules       *string
	Criteria    *string
	IsFinished  bool
	UpdatedAt   time.Time // zero means now
}

// CreateTestHackathon inserts a hackathon and returns its ID
func CreateTestHackathon(t *testing.T, conn *sql.DB, f HackathonFixture) string {
	t.Helper()

	id := uuid.NewString()
	updatedAt := f.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	updatedAt = updatedAt.UTC()

	_, err := conn.Exec(`
		INSERT INTO hackathon (id, name, url, description, rules, criteria, is_finished, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, id, f.Name, f.URL, f.Description, f.Rules, f.Criteria, f.IsFinished, updatedAt, updatedAt)
	if err != nil {
		t.Fatalf("Failed to create test hackathon: %v", err)
	}

	return id
}

// AddTestWinner inserts a winner for a hackathon and returns its ID.
// w.ID is ignored.
func AddTestWinner(t *testing.T, conn *sql.DB, hackathonID string, w models.Winner) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO winner (id, hackathon_id, rank, title, creator_name, description, project_url, average_score, total_scores)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, id, hackathonID, w.Rank, w.Title, w.CreatorName, w.Description, w.ProjectURL, w.AverageScore, w.TotalScores)
	if err != nil {
		t.Fatalf("Failed to create test winner: %v", err)
	}

	return id
}

// StrPtr returns a pointer to s, for optional fixture fields
func StrPtr(s string) *string {
	return &s
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
