// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/postcrossing/exchange"
	"github.com/danielhkuo/postcrossing/handlers"
	"github.com/danielhkuo/postcrossing/metrics"
	"github.com/danielhkuo/postcrossing/middleware"
)

func NewRouter(svc *exchange.Service, m *metrics.Metrics, gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	userHandler := handlers.NewUserHandler(svc)
	postcardHandler := handlers.NewPostcardHandler(svc)

	handle := func(pattern string, h http.HandlerFunc) {
		_, route, _ := strings.Cut(pattern, " ")
		mux.HandleFunc(pattern, middleware.WithLogging(middleware.WithMetrics(route, m.RequestDuration, h)))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.HandleFunc("GET /hello", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Hello, the server is working!"))
	})

	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// Users
	handle("POST /api/users/register", userHandler.Register)
	handle("GET /api/users/{userId}", userHandler.GetUser)

	// Postcards
	handle("POST /api/postcards/request-address", postcardHandler.RequestAddress)
	handle("GET /api/postcards/{postcardId}", postcardHandler.GetPostcard)
	handle("PUT /api/postcards/{postcardId}/received", postcardHandler.ConfirmReceived)

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("postcrossing API v1"))
	})

	return middleware.CORS(mux)
}
