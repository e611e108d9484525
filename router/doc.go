// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the turtle records API.

# Route Registration

NewRouter returns the configured handler, a ServeMux wrapped in CORS:

	handler := router.NewRouter(db, cfg)

Every API route sits under cfg.BasePath (default /api) and is wrapped in
middleware.WithLogging.

# Endpoints

Outside the base path:

	GET /health - Database ping
	GET /       - Banner

Users:

	POST /users/register
	POST /users/login
	GET  /users

Turtles and survey events:

	POST /turtles/create
	GET  /turtles
	GET  /turtles/{id}
	PUT  /turtles/{id}/update
	GET  /turtles/{turtle_id}/survey_events
	POST /turtle_survey_events/create

Nests:

	POST /nests/create
	GET  /nests
	GET  /nests/{nest_code}
	PUT  /nests/{id}/update

Nest events:

	POST /nest-events/create
	GET  /nest-events/{nest_code}
	PUT  /nest-events/{id}
*/
package router
