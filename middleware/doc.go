// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, client IP) and completion (status,
duration_ms). Every request gets an X-Request-ID, reused from the incoming
header when present.

# CORS Middleware

Enable cross-origin reads of the API:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows GET and OPTIONS with headers Content-Type and X-Request-ID.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse a procedure input passed as ?input=<json>:

	var input models.GetHackathonWithWinnersInput
	if err := middleware.ParseJSONInput(r, &input); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid input")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
