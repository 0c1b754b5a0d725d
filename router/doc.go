// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires URL patterns to handlers.

Routes use Go 1.22+ method/pattern matching on the standard ServeMux:

	POST /polls
	GET  /polls/{id}
	POST /polls/{id}/votes
	GET  /polls/{id}/votes
	GET  /polls/{id}/results
	GET  /polls/{id}/share
	GET  /health
	GET  /

Every application route is wrapped in middleware.WithLogging. NewRouter
takes the open database handle and parsed config and returns a ready
*http.ServeMux.
*/
package router
