// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/turtle-records/apperr"
	"github.com/danielhkuo/turtle-records/db"
	"github.com/danielhkuo/turtle-records/models"
)

func siteMeasurementFields(m *models.NestSiteMeasurements) []Field {
	return []Field{
		{"original_depth_top_egg_h", &m.OriginalDepthTopEggH},
		{"original_depth_bottom_chamber_h", &m.OriginalDepthBottomChamberH},
		{"original_width_w", &m.OriginalWidthW},
		{"original_distance_to_sea_s", &m.OriginalDistanceToSeaS},
		{"original_gps_lat", &m.OriginalGPSLat},
		{"original_gps_long", &m.OriginalGPSLong},
		{"reburied_depth_top_egg_h", &m.ReburiedDepthTopEggH},
		{"reburied_depth_bottom_chamber_h", &m.ReburiedDepthBottomChamberH},
		{"reburied_width_w", &m.ReburiedWidthW},
		{"reburied_distance_to_sea_s", &m.ReburiedDistanceToSeaS},
		{"reburied_gps_lat", &m.ReburiedGPSLat},
		{"reburied_gps_long", &m.ReburiedGPSLong},
	}
}

func eggCountFields(c *models.EggCounts) []Field {
	return []Field{
		{"hatched", &c.Hatched},
		{"hatched_black_fungus", &c.HatchedBlackFungus},
		{"hatched_pink_fungus", &c.HatchedPinkFungus},
		{"hatched_green_fungus", &c.HatchedGreenFungus},
		{"non_viable", &c.NonViable},
		{"non_viable_black_fungus", &c.NonViableBlackFungus},
		{"non_viable_pink_fungus", &c.NonViablePinkFungus},
		{"non_viable_green_fungus", &c.NonViableGreenFungus},
		{"eye_spot", &c.EyeSpot},
		{"eye_spot_black_fungus", &c.EyeSpotBlackFungus},
		{"eye_spot_pink_fungus", &c.EyeSpotPinkFungus},
		{"eye_spot_green_fungus", &c.EyeSpotGreenFungus},
		{"early", &c.Early},
		{"early_black_fungus", &c.EarlyBlackFungus},
		{"early_pink_fungus", &c.EarlyPinkFungus},
		{"early_green_fungus", &c.EarlyGreenFungus},
		{"middle", &c.Middle},
		{"middle_black_fungus", &c.MiddleBlackFungus},
		{"middle_pink_fungus", &c.MiddlePinkFungus},
		{"middle_green_fungus", &c.MiddleGreenFungus},
		{"late", &c.Late},
		{"late_black_fungus", &c.LateBlackFungus},
		{"late_pink_fungus", &c.LatePinkFungus},
		{"late_green_fungus", &c.LateGreenFungus},
		{"piped", &c.Piped},
		{"piped_black_fungus", &c.PipedBlackFungus},
		{"piped_pink_fungus", &c.PipedPinkFungus},
		{"piped_green_fungus", &c.PipedGreenFungus},
		{"alive_within", &c.AliveWithin},
		{"dead_within", &c.DeadWithin},
		{"alive_above", &c.AliveAbove},
		{"dead_above", &c.DeadAbove},
		{"reburied_num_eggs", &c.ReburiedNumEggs},
		{"tracks_to_sea", &c.TracksToSea},
		{"tracks_lost", &c.TracksLost},
	}
}

// nest_id and nest_code followed by everything the client may write
func nestEventDataFields(e *models.NestEvent) []Field {
	return concat(
		[]Field{
			{"nest_id", &e.NestID},
			{"nest_code", &e.NestCode},
			{"event_type", &e.EventType},
			{"event_date", &e.EventDate},
		},
		siteMeasurementFields(&e.NestSiteMeasurements),
		eggCountFields(&e.EggCounts),
		[]Field{
			{"start_time", &e.StartTime},
			{"end_time", &e.EndTime},
			{"observer", &e.Observer},
			{"notes", &e.Notes},
		},
	)
}

// NestEventFields lists every turtle_nest_events column in select order.
func NestEventFields(e *models.NestEvent) []Field {
	return concat(
		[]Field{{"id", &e.ID}},
		nestEventDataFields(e),
		[]Field{
			{"created_at", &e.CreatedAt},
			{"updated_at", &e.UpdatedAt},
		},
	)
}

// CreateNestEvent resolves e.NestCode to its nest and inserts e in one
// transaction. The nest row is share-locked until commit, so it cannot
// disappear between the lookup and the insert.
func (s *Store) CreateNestEvent(ctx context.Context, e *models.NestEvent) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		SELECT id FROM turtle_nests WHERE nest_code = $1 FOR SHARE
	`, e.NestCode).Scan(&e.NestID)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound("Nest not found")
	}
	if err != nil {
		return fmt.Errorf("failed to look up nest: %w", err)
	}

	ins := nestEventDataFields(e)
	query := fmt.Sprintf(`INSERT INTO turtle_nest_events (%s) VALUES (%s) RETURNING %s`,
		columns(ins), placeholders(1, len(ins)), columns(NestEventFields(e)))

	if err := tx.QueryRowContext(ctx, query, pointers(ins)...).Scan(pointers(NestEventFields(e))...); err != nil {
		return fmt.Errorf("failed to insert nest event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit nest event: %w", err)
	}
	return nil
}

// ListNestEvents returns the events of the nest with the given code, newest
// first. It fails with a not-found error when no such nest exists.
func (s *Store) ListNestEvents(ctx context.Context, nestCode string) ([]models.NestEvent, error) {
	var nestID int64
	err := s.db.QueryRowContext(ctx, `SELECT id FROM turtle_nests WHERE nest_code = $1`, nestCode).Scan(&nestID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("Nest not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up nest: %w", err)
	}

	var shape models.NestEvent
	query := fmt.Sprintf(`
		SELECT %s FROM turtle_nest_events
		WHERE nest_code = $1
		ORDER BY event_date DESC, id DESC
	`, columns(NestEventFields(&shape)))

	rows, err := s.db.QueryContext(ctx, query, nestCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query nest events: %w", err)
	}
	defer rows.Close()

	events := []models.NestEvent{}
	for rows.Next() {
		var ev models.NestEvent
		if err := rows.Scan(pointers(NestEventFields(&ev))...); err != nil {
			return nil, fmt.Errorf("failed to scan nest event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read nest events: %w", err)
	}
	return events, nil
}

// UpdateNestEvent overwrites every data column of nest event id, including
// the nest it belongs to. A zero e.EventDate keeps the stored event date.
func (s *Store) UpdateNestEvent(ctx context.Context, id int64, e *models.NestEvent) error {
	set := nestEventDataFields(e)
	if e.EventDate.IsZero() {
		set = without(set, "event_date")
	}
	query := fmt.Sprintf(`UPDATE turtle_nest_events SET %s, updated_at = NOW() WHERE id = $%d RETURNING %s`,
		assignments(1, set), len(set)+1, columns(NestEventFields(e)))

	args := append(pointers(set), id)
	err := s.db.QueryRowContext(ctx, query, args...).Scan(pointers(NestEventFields(e))...)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound("Nest event not found")
	}
	if db.IsForeignKeyViolation(err, db.NestEventNestFK) {
		return apperr.NotFound("Nest not found")
	}
	if err != nil {
		return fmt.Errorf("failed to update nest event: %w", err)
	}
	return nil
}
