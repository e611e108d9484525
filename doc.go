// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the turtle records API server.

The server keeps field records for a sea turtle conservation project:
volunteer accounts, tagged turtles and their survey events, nests found on
the beach, and the events logged against each nest through incubation.

# Starting the Server

The server reads flags, then environment variables, then an optional .env
file in the working directory:

	DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 5001 -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 5001)
  - BASE_PATH (--base-path): Prefix for API routes (default: /api)
  - BCRYPT_COST (--bcrypt-cost): Password hash cost (default: bcrypt.DefaultCost)
  - DB_MAX_OPEN_CONNS (--max-open-conns): Connection pool size (default: 10)

The schema is created on startup if it does not exist.

# Architecture

  - handlers: HTTP request handlers (users, turtles, survey events, nests, nest events)
  - store: SQL queries and row scanning
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, request logging, JSON and error helpers
  - apperr: Client-safe error kinds and their status codes
  - models: Records and request/response types
  - auth: Password hashing
  - db: Schema creation and constraint error checks
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
