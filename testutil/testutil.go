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
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/postcrossing/cliparse"
	"github.com/danielhkuo/postcrossing/db"
	"github.com/danielhkuo/postcrossing/models"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema.
// Each call gets its own database so tests can run in parallel.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_pragma=foreign_keys(1)"
	conn, err := db.Open(context.Background(), db.TypeSQLite, dsn, time.Second)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:               3000,
		DatabaseURL:        "file::memory:",
		DatabaseType:       db.TypeSQLite,
		PlaceholderAddress: models.PlaceholderAddress,
		LogLevel:           "info",
	}
}

// CreateTestUser inserts a user and returns its ID. joined is the
// date_joined timestamp; tie-break tests depend on it.
func CreateTestUser(t *testing.T, conn *sql.DB, username, country string, joined time.Time) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO app_user (id, username, email, country, date_joined)
		VALUES ($1, $2, $3, $4, $5)
	`, id, username, username+"@example.com", country, joined.UTC())
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return id
}

// CreateTestPostcard inserts a postcard in the given status and returns its ID.
// Received postcards get received_at one hour after sent_at.
func CreateTestPostcard(t *testing.T, conn *sql.DB, senderID, receiverID, status string) string {
	t.Helper()

	id := uuid.NewString()
	sentAt := time.Now().UTC()

	var receivedAt *time.Time
	if status == models.StatusReceived {
		r := sentAt.Add(time.Hour)
		receivedAt = &r
	}

	_, err := conn.Exec(`
		INSERT INTO postcard (id, code, sender_id, receiver_id, status, sent_at, received_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, id, "PC-TEST", senderID, receiverID, status, sentAt, receivedAt)
	if err != nil {
		t.Fatalf("Failed to create test postcard: %v", err)
	}

	return id
}

// CountPostcards returns how many postcards match the given sender
func CountPostcards(t *testing.T, conn *sql.DB, senderID string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM postcard WHERE sender_id = $1`, senderID).Scan(&n); err != nil {
		t.Fatalf("Failed to count postcards: %v", err)
	}
	return n
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
