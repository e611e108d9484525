// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

One struct per table row:

  - User: account record; PasswordHash is never serialized
  - Turtle: an individual turtle with flipper tags and morphometrics
  - SurveyEvent: a sighting or nesting observation of one turtle
  - Nest: a nest site, identified externally by NestCode
  - NestEvent: an inspection or excavation of one nest

Shared field groups are embedded so they flatten into the JSON object:
FlipperTags, Morphometrics, NestingTimes, Triangulation,
NestSiteMeasurements and EggCounts.

# Request Types

Required numeric fields arrive as pointers so that a missing value can be
told apart from zero. MorphometricsInput.Missing lists the absent ones:

	if missing := req.MorphometricsInput.Missing(); len(missing) > 0 {
		// reject
	}

# Response Types

Every success body carries a message and the entity under its own key:

	{"message": "Turtle created successfully", "turtle": {...}}

Errors use ErrorResponse:

	{"error": "Turtle not found"}

# Enumerations

	SexMale, SexFemale, SexUnknown
	NestStatusIncubating, NestStatusHatching, NestStatusHatched
	RoleVolunteer (default role)
*/
package models
