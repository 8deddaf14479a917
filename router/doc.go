// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the postcard exchange API.

# Route Registration

NewRouter returns the mux wrapped in CORS:

	handler := router.NewRouter(svc, m, registry)

# Endpoints

Health:

	GET /health
	GET /hello
	GET /metrics

Users:

	POST /api/users/register  - Register a user
	GET  /api/users/{userId}  - Profile with sent/received lists

Postcards:

	POST /api/postcards/request-address        - Assign the most due recipient
	GET  /api/postcards/{postcardId}            - Postcard details
	PUT  /api/postcards/{postcardId}/received   - Confirm receipt

# Middleware

Every API route is wrapped in WithLogging and WithMetrics. The metrics
route label is the registered pattern, so /api/users/{userId} is one series.
*/
package router
