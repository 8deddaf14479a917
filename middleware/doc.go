// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Request Wrappers

WithLogging logs the start and end of each request with log/slog:

	mux.HandleFunc("POST /api/users/register", middleware.WithLogging(h.Register))

WithMetrics records request duration in a Prometheus histogram labelled by
method, route pattern and status code.

CORS answers preflight requests and sets Access-Control-* headers for every
origin. It wraps the whole mux.

# Response Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "User not found")

Error bodies have the shape:

	{"error": "Not Found", "message": "User not found"}

# Request Helpers

ParseJSONBody decodes and closes the request body. GetClientIP reads
X-Forwarded-For, then X-Real-IP, then RemoteAddr.
*/
package middleware
