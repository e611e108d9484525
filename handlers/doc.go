// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the turtle records API.

# Handler Types

Each handler is a struct holding a store built over the shared *sql.DB:

  - UserHandler: Registration, login and the user list
  - TurtleHandler: Turtle records and their survey history
  - SurveyEventHandler: Survey events for a known turtle
  - NestHandler: Nest records, looked up by id or nest code
  - NestEventHandler: Events logged against a nest
  - HealthHandler: Liveness and database checks

Handlers are created via constructor functions that accept the pool; UserHandler
also takes the Config for its bcrypt cost:

	turtleHandler := handlers.NewTurtleHandler(db)
	userHandler := handlers.NewUserHandler(db, cfg)

# Validation

Request bodies are checked before any query runs. Required fields are
reported one at a time ("species is required"); turtle measurements are
reported together ("Missing required measurements: scl_max, ccw"). Sex and
nest status are lowercased and defaulted to "unknown" and "incubating".

# Errors

Handlers return *apperr.Error values from validation and the store, and
middleware.WriteError maps their kind to a status code. Conflicts such as a
duplicate email or nest code answer 400; anything unclassified answers 500
with a generic message.

# Nest Events

Creating a nest event resolves the nest code inside a transaction that
holds a share lock on the nest row, so the nest cannot vanish between the
lookup and the insert.
*/
package handlers
