// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/danielhkuo/postcrossing/db"
	"github.com/danielhkuo/postcrossing/exchange"
	"github.com/danielhkuo/postcrossing/ledger"
	"github.com/danielhkuo/postcrossing/metrics"
	"github.com/danielhkuo/postcrossing/models"
	"github.com/danielhkuo/postcrossing/testutil"
)

func setupRouter(t *testing.T) (http.Handler, *sql.DB) {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	t.Cleanup(func() { conn.Close() })

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	svc := exchange.NewService(ledger.NewSQLStore(conn, db.TypeSQLite), m)
	return NewRouter(svc, m, reg), conn
}

func TestHealthEndpoint(t *testing.T) {
	mux, _ := setupRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux, _ := setupRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "postcrossing API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	mux, _ := setupRouter(t)

	// Note: Some routes return 404 when data doesn't exist, which is valid handler behavior
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/hello"},
		{"GET", "/"},
		{"GET", "/metrics"},

		{"POST", "/api/users/register"},
		{"GET", "/api/users/test-id"},

		{"POST", "/api/postcards/request-address"},
		{"GET", "/api/postcards/test-id"},
		{"PUT", "/api/postcards/test-id/received"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux, _ := setupRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},                         // Only GET is defined
		{"PUT", "/api/users/register"},              // Only POST and GET {userId}
		{"POST", "/api/postcards/test-id/received"}, // Only PUT is defined
		{"DELETE", "/api/users/test-id"},            // Only GET is defined
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestPathParameterExtraction(t *testing.T) {
	mux, conn := setupRouter(t)
	now := time.Now().UTC()

	alice := testutil.CreateTestUser(t, conn, "alice", "FI", now)
	bob := testutil.CreateTestUser(t, conn, "bob", "DE", now)
	postcardID := testutil.CreateTestPostcard(t, conn, alice, bob, models.StatusTraveling)

	t.Run("user ID extraction", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/users/"+alice, nil)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d. Body: %s", w.Code, w.Body.String())
		}
	})

	t.Run("postcard ID extraction", func(t *testing.T) {
		req := httptest.NewRequest("PUT", "/api/postcards/"+postcardID+"/received", nil)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d. Body: %s", w.Code, w.Body.String())
		}
	})
}

func TestEndToEndExchange(t *testing.T) {
	mux, _ := setupRouter(t)

	register := func(name string) string {
		req := testutil.MakeRequest("POST", "/api/users/register", models.RegisterUserRequest{Username: name, Country: "NL"}, nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)
		testutil.AssertStatus(t, w, http.StatusCreated)

		var resp models.RegisterUserResponse
		testutil.AssertJSON(t, w, &resp)
		return resp.UserID
	}

	alice := register("alice")
	bob := register("bob")

	req := testutil.MakeRequest("POST", "/api/postcards/request-address", models.RequestAddressRequest{SenderID: alice}, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var assigned models.RequestAddressResponse
	testutil.AssertJSON(t, w, &assigned)
	if assigned.RecipientInfo.UserID != bob {
		t.Fatalf("Expected bob as recipient, got %s", assigned.RecipientInfo.UserID)
	}

	req = httptest.NewRequest("PUT", "/api/postcards/"+assigned.PostcardID+"/received", nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	req = httptest.NewRequest("GET", "/api/users/"+bob, nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var user models.User
	testutil.AssertJSON(t, w, &user)
	if user.ReceivedCount != 1 || len(user.ReceivedPostcards) != 1 {
		t.Errorf("Expected bob to have 1 received postcard, got %d", user.ReceivedCount)
	}

	// Metrics reflect the exchange
	req = httptest.NewRequest("GET", "/metrics", nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	body := w.Body.String()
	for _, name := range []string{
		"postcrossing_addresses_assigned_total 1",
		"postcrossing_postcards_received_total 1",
		"postcrossing_users_registered_total 2",
	} {
		if !strings.Contains(body, name) {
			t.Errorf("Expected metrics output to contain %q", name)
		}
	}
}

func TestCORSPreflight(t *testing.T) {
	mux, _ := setupRouter(t)

	req := httptest.NewRequest("OPTIONS", "/api/postcards/request-address", nil)
	req.Header.Set("Origin", "moz-extension://abc")
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for preflight, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "moz-extension://abc" {
		t.Error("Expected Access-Control-Allow-Origin to reflect request origin")
	}
}
