// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /api/nests", middleware.WithLogging(nestHandler.List))

Logs request start (method, path, remote) and completion (status,
duration_ms). Every request carries an X-Request-ID: the client's if it
sent one, a fresh UUID otherwise. The ID is echoed in the response.

# CORS Middleware

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows any origin, without credentials, for methods GET, POST, PUT, OPTIONS
with headers
Content-Type, Authorization, X-Request-ID.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Errors from the store and the handlers are written with WriteError, which
picks the status from the apperr kind and hides internal details:

	if err := h.store.CreateNest(ctx, &nest); err != nil {
		middleware.WriteError(w, r, "create nest", err)
		return
	}

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Handles X-Forwarded-For and X-Real-IP. Used in request logs.
*/
package middleware
