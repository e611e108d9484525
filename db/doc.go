// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and driver error inspection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(ctx, conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
DropSchema is the inverse and is only used by integration tests.

# Tables

  - users: accounts; email is unique
  - turtles: individual turtles
  - turtle_survey_events: observations of a turtle
  - turtle_nests: nest sites; nest_code is unique
  - turtle_nest_events: inspections of a nest

# Relationships

	turtles 1──* turtle_survey_events
	turtle_nests 1──* turtle_nest_events

Constraints carry explicit names (UserEmailKey, NestCodeKey,
SurveyEventTurtleFK, NestEventNestFK) so callers can tell violations apart.

# Constraint Violations

IsUniqueViolation and IsForeignKeyViolation unwrap a *pq.Error and compare
its SQLSTATE code and constraint name:

	if db.IsUniqueViolation(err, db.UserEmailKey) {
		return apperr.Conflict("Email already registered")
	}
*/
package db
