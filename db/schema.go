// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Constraint names referenced by error translation.
const (
	UserEmailKey        = "users_email_key"
	NestCodeKey         = "turtle_nests_nest_code_key"
	SurveyEventTurtleFK = "turtle_survey_events_turtle_id_fkey"
	NestEventNestFK     = "turtle_nest_events_nest_id_fkey"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, Schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// DropSchema removes every table created by CreateSchema.
func DropSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		DROP TABLE IF EXISTS turtle_nest_events CASCADE;
		DROP TABLE IF EXISTS turtle_nests CASCADE;
		DROP TABLE IF EXISTS turtle_survey_events CASCADE;
		DROP TABLE IF EXISTS turtles CASCADE;
		DROP TABLE IF EXISTS users CASCADE;
	`)
	if err != nil {
		return fmt.Errorf("failed to drop schema: %w", err)
	}
	return nil
}

const Schema = `
-- Users
CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    email TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    role TEXT NOT NULL DEFAULT 'volunteer',
    is_email_verified BOOLEAN NOT NULL DEFAULT FALSE,
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    CONSTRAINT users_email_key UNIQUE (email)
);

-- Turtles
CREATE TABLE IF NOT EXISTS turtles (
    id SERIAL PRIMARY KEY,
    name TEXT,
    species TEXT NOT NULL,
    sex TEXT NOT NULL DEFAULT 'unknown' CHECK (sex IN ('male', 'female', 'unknown')),
    health_condition TEXT NOT NULL,
    front_left_tag TEXT,
    front_left_address TEXT,
    front_right_tag TEXT,
    front_right_address TEXT,
    rear_left_tag TEXT,
    rear_left_address TEXT,
    rear_right_tag TEXT,
    rear_right_address TEXT,
    scl_max DOUBLE PRECISION NOT NULL,
    scl_min DOUBLE PRECISION NOT NULL,
    scw DOUBLE PRECISION NOT NULL,
    ccl_max DOUBLE PRECISION NOT NULL,
    ccl_min DOUBLE PRECISION NOT NULL,
    ccw DOUBLE PRECISION NOT NULL,
    tail_extension DOUBLE PRECISION NOT NULL,
    vent_to_tail_tip DOUBLE PRECISION NOT NULL,
    total_tail_length DOUBLE PRECISION NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Turtle survey events
CREATE TABLE IF NOT EXISTS turtle_survey_events (
    id SERIAL PRIMARY KEY,
    event_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    event_type TEXT NOT NULL,
    location TEXT NOT NULL,
    turtle_id INTEGER NOT NULL,
    front_left_tag TEXT,
    front_left_address TEXT,
    front_right_tag TEXT,
    front_right_address TEXT,
    rear_left_tag TEXT,
    rear_left_address TEXT,
    rear_right_tag TEXT,
    rear_right_address TEXT,
    scl_max DOUBLE PRECISION NOT NULL,
    scl_min DOUBLE PRECISION NOT NULL,
    scw DOUBLE PRECISION NOT NULL,
    ccl_max DOUBLE PRECISION NOT NULL,
    ccl_min DOUBLE PRECISION NOT NULL,
    ccw DOUBLE PRECISION NOT NULL,
    tail_extension DOUBLE PRECISION NOT NULL,
    vent_to_tail_tip DOUBLE PRECISION NOT NULL,
    total_tail_length DOUBLE PRECISION NOT NULL,
    health_condition TEXT NOT NULL,
    observer TEXT NOT NULL,
    notes TEXT,
    time_first_seen TEXT,
    time_start_egg_laying TEXT,
    time_covering TEXT,
    time_end_camouflage TEXT,
    time_reach_sea TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    CONSTRAINT turtle_survey_events_turtle_id_fkey FOREIGN KEY (turtle_id) REFERENCES turtles(id)
);

CREATE INDEX IF NOT EXISTS idx_turtle_survey_events_turtle_id ON turtle_survey_events(turtle_id);

-- Nests
CREATE TABLE IF NOT EXISTS turtle_nests (
    id SERIAL PRIMARY KEY,
    nest_code TEXT NOT NULL,
    total_num_eggs INTEGER,
    current_num_eggs INTEGER,
    depth_top_egg_h DOUBLE PRECISION NOT NULL,
    depth_bottom_chamber_h DOUBLE PRECISION,
    distance_to_sea_s DOUBLE PRECISION NOT NULL,
    width_w DOUBLE PRECISION,
    gps_lat DOUBLE PRECISION NOT NULL,
    gps_long DOUBLE PRECISION NOT NULL,
    tri_tl_desc TEXT,
    tri_tl_lat DOUBLE PRECISION,
    tri_tl_long DOUBLE PRECISION,
    tri_tl_distance DOUBLE PRECISION,
    tri_tr_desc TEXT,
    tri_tr_lat DOUBLE PRECISION,
    tri_tr_long DOUBLE PRECISION,
    tri_tr_distance DOUBLE PRECISION,
    status TEXT NOT NULL DEFAULT 'incubating' CHECK (status IN ('incubating', 'hatching', 'hatched')),
    relocated BOOLEAN NOT NULL DEFAULT FALSE,
    date_found DATE NOT NULL,
    beach TEXT NOT NULL,
    notes TEXT,
    is_archived BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    CONSTRAINT turtle_nests_nest_code_key UNIQUE (nest_code)
);

CREATE INDEX IF NOT EXISTS idx_turtle_nests_date_found ON turtle_nests(date_found DESC, id DESC);

-- Nest events
CREATE TABLE IF NOT EXISTS turtle_nest_events (
    id SERIAL PRIMARY KEY,
    event_type TEXT NOT NULL,
    event_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    nest_id INTEGER NOT NULL,
    nest_code TEXT NOT NULL,
    original_depth_top_egg_h DOUBLE PRECISION,
    original_depth_bottom_chamber_h DOUBLE PRECISION,
    original_width_w DOUBLE PRECISION,
    original_distance_to_sea_s DOUBLE PRECISION,
    original_gps_lat DOUBLE PRECISION,
    original_gps_long DOUBLE PRECISION,
    reburied_depth_top_egg_h DOUBLE PRECISION,
    reburied_depth_bottom_chamber_h DOUBLE PRECISION,
    reburied_width_w DOUBLE PRECISION,
    reburied_distance_to_sea_s DOUBLE PRECISION,
    reburied_gps_lat DOUBLE PRECISION,
    reburied_gps_long DOUBLE PRECISION,
    hatched INTEGER NOT NULL DEFAULT 0,
    hatched_black_fungus INTEGER NOT NULL DEFAULT 0,
    hatched_pink_fungus INTEGER NOT NULL DEFAULT 0,
    hatched_green_fungus INTEGER NOT NULL DEFAULT 0,
    non_viable INTEGER NOT NULL DEFAULT 0,
    non_viable_black_fungus INTEGER NOT NULL DEFAULT 0,
    non_viable_pink_fungus INTEGER NOT NULL DEFAULT 0,
    non_viable_green_fungus INTEGER NOT NULL DEFAULT 0,
    eye_spot INTEGER NOT NULL DEFAULT 0,
    eye_spot_black_fungus INTEGER NOT NULL DEFAULT 0,
    eye_spot_pink_fungus INTEGER NOT NULL DEFAULT 0,
    eye_spot_green_fungus INTEGER NOT NULL DEFAULT 0,
    early INTEGER NOT NULL DEFAULT 0,
    early_black_fungus INTEGER NOT NULL DEFAULT 0,
    early_pink_fungus INTEGER NOT NULL DEFAULT 0,
    early_green_fungus INTEGER NOT NULL DEFAULT 0,
    middle INTEGER NOT NULL DEFAULT 0,
    middle_black_fungus INTEGER NOT NULL DEFAULT 0,
    middle_pink_fungus INTEGER NOT NULL DEFAULT 0,
    middle_green_fungus INTEGER NOT NULL DEFAULT 0,
    late INTEGER NOT NULL DEFAULT 0,
    late_black_fungus INTEGER NOT NULL DEFAULT 0,
    late_pink_fungus INTEGER NOT NULL DEFAULT 0,
    late_green_fungus INTEGER NOT NULL DEFAULT 0,
    piped INTEGER NOT NULL DEFAULT 0,
    piped_black_fungus INTEGER NOT NULL DEFAULT 0,
    piped_pink_fungus INTEGER NOT NULL DEFAULT 0,
    piped_green_fungus INTEGER NOT NULL DEFAULT 0,
    alive_within INTEGER NOT NULL DEFAULT 0,
    dead_within INTEGER NOT NULL DEFAULT 0,
    alive_above INTEGER NOT NULL DEFAULT 0,
    dead_above INTEGER NOT NULL DEFAULT 0,
    reburied_num_eggs INTEGER NOT NULL DEFAULT 0,
    tracks_to_sea INTEGER NOT NULL DEFAULT 0,
    tracks_lost INTEGER NOT NULL DEFAULT 0,
    start_time TEXT,
    end_time TEXT,
    observer TEXT,
    notes TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    CONSTRAINT turtle_nest_events_nest_id_fkey FOREIGN KEY (nest_id) REFERENCES turtle_nests(id)
);

CREATE INDEX IF NOT EXISTS idx_turtle_nest_events_nest_code ON turtle_nest_events(nest_code);
`
