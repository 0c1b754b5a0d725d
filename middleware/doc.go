// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP plumbing shared by all handlers.

# Logging

WithLogging wraps a handler with structured request logs (method, path,
client IP, duration):

	mux.HandleFunc("POST /polls", middleware.WithLogging(h.CreatePoll))

# JSON Helpers

JSONResponse and ErrorResponse write JSON bodies with the right
Content-Type; ParseJSONBody decodes a request body. Errors use the
shared models.ErrorResponse shape.

# CORS

The poll pages are a separate client-side app, so the API answers
cross-origin requests. CORS wraps the whole mux and short-circuits
preflight OPTIONS.

# Client IP

GetClientIP resolves the originating address through X-Forwarded-For
and X-Real-IP before falling back to the socket address.
*/
package middleware
