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

func triangulationFields(t *models.Triangulation) []Field {
	return []Field{
		{"tri_tl_desc", &t.TriTLDesc},
		{"tri_tl_lat", &t.TriTLLat},
		{"tri_tl_long", &t.TriTLLong},
		{"tri_tl_distance", &t.TriTLDistance},
		{"tri_tr_desc", &t.TriTRDesc},
		{"tri_tr_lat", &t.TriTRLat},
		{"tri_tr_long", &t.TriTRLong},
		{"tri_tr_distance", &t.TriTRDistance},
	}
}

func nestDataFields(n *models.Nest) []Field {
	return concat(
		[]Field{
			{"nest_code", &n.NestCode},
			{"total_num_eggs", &n.TotalNumEggs},
			{"current_num_eggs", &n.CurrentNumEggs},
			{"depth_top_egg_h", &n.DepthTopEggH},
			{"depth_bottom_chamber_h", &n.DepthBottomChamberH},
			{"distance_to_sea_s", &n.DistanceToSeaS},
			{"width_w", &n.WidthW},
			{"gps_lat", &n.GPSLat},
			{"gps_long", &n.GPSLong},
		},
		triangulationFields(&n.Triangulation),
		[]Field{
			{"status", &n.Status},
			{"relocated", &n.Relocated},
			{"date_found", &n.DateFound},
			{"beach", &n.Beach},
			{"notes", &n.Notes},
			{"is_archived", &n.IsArchived},
		},
	)
}

// NestFields lists every turtle_nests column in table order.
func NestFields(n *models.Nest) []Field {
	return concat(
		[]Field{{"id", &n.ID}},
		nestDataFields(n),
		[]Field{
			{"created_at", &n.CreatedAt},
			{"updated_at", &n.UpdatedAt},
		},
	)
}

func (s *Store) CreateNest(ctx context.Context, n *models.Nest) error {
	ins := nestDataFields(n)
	query := fmt.Sprintf(`INSERT INTO turtle_nests (%s) VALUES (%s) RETURNING %s`,
		columns(ins), placeholders(1, len(ins)), columns(NestFields(n)))

	err := s.db.QueryRowContext(ctx, query, pointers(ins)...).Scan(pointers(NestFields(n))...)
	if db.IsUniqueViolation(err, db.NestCodeKey) {
		return apperr.Conflict("Nest code already exists")
	}
	if err != nil {
		return fmt.Errorf("failed to insert nest: %w", err)
	}
	return nil
}

// UpdateNest overwrites every data column of nest id.
func (s *Store) UpdateNest(ctx context.Context, id int64, n *models.Nest) error {
	set := nestDataFields(n)
	query := fmt.Sprintf(`UPDATE turtle_nests SET %s, updated_at = NOW() WHERE id = $%d RETURNING %s`,
		assignments(1, set), len(set)+1, columns(NestFields(n)))

	args := append(pointers(set), id)
	err := s.db.QueryRowContext(ctx, query, args...).Scan(pointers(NestFields(n))...)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound("Nest not found")
	}
	if db.IsUniqueViolation(err, db.NestCodeKey) {
		return apperr.Conflict("Nest code already exists")
	}
	if err != nil {
		return fmt.Errorf("failed to update nest: %w", err)
	}
	return nil
}

// ListNests returns all nests, most recently found first; ties go to the
// higher id.
func (s *Store) ListNests(ctx context.Context) ([]models.Nest, error) {
	var shape models.Nest
	query := fmt.Sprintf(`SELECT %s FROM turtle_nests ORDER BY date_found DESC, id DESC`,
		columns(NestFields(&shape)))

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query nests: %w", err)
	}
	defer rows.Close()

	nests := []models.Nest{}
	for rows.Next() {
		var n models.Nest
		if err := rows.Scan(pointers(NestFields(&n))...); err != nil {
			return nil, fmt.Errorf("failed to scan nest: %w", err)
		}
		nests = append(nests, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read nests: %w", err)
	}
	return nests, nil
}

func (s *Store) GetNestByCode(ctx context.Context, code string) (*models.Nest, error) {
	var n models.Nest
	query := fmt.Sprintf(`SELECT %s FROM turtle_nests WHERE nest_code = $1`, columns(NestFields(&n)))

	err := s.db.QueryRowContext(ctx, query, code).Scan(pointers(NestFields(&n))...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("Nest not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query nest: %w", err)
	}
	return &n, nil
}
