// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/turtle-records/apperr"
	"github.com/danielhkuo/turtle-records/models"
)

func tagFields(t *models.FlipperTags) []Field {
	return []Field{
		{"front_left_tag", &t.FrontLeftTag},
		{"front_left_address", &t.FrontLeftAddress},
		{"front_right_tag", &t.FrontRightTag},
		{"front_right_address", &t.FrontRightAddress},
		{"rear_left_tag", &t.RearLeftTag},
		{"rear_left_address", &t.RearLeftAddress},
		{"rear_right_tag", &t.RearRightTag},
		{"rear_right_address", &t.RearRightAddress},
	}
}

func morphometricFields(m *models.Morphometrics) []Field {
	return []Field{
		{"scl_max", &m.SCLMax},
		{"scl_min", &m.SCLMin},
		{"scw", &m.SCW},
		{"ccl_max", &m.CCLMax},
		{"ccl_min", &m.CCLMin},
		{"ccw", &m.CCW},
		{"tail_extension", &m.TailExtension},
		{"vent_to_tail_tip", &m.VentToTailTip},
		{"total_tail_length", &m.TotalTailLength},
	}
}

// mutable on update
func turtleConditionFields(t *models.Turtle) []Field {
	return concat(
		[]Field{{"health_condition", &t.HealthCondition}},
		tagFields(&t.FlipperTags),
		morphometricFields(&t.Morphometrics),
	)
}

func turtleDataFields(t *models.Turtle) []Field {
	return concat(
		[]Field{
			{"name", &t.Name},
			{"species", &t.Species},
			{"sex", &t.Sex},
		},
		turtleConditionFields(t),
	)
}

// TurtleFields lists every turtles column in table order.
func TurtleFields(t *models.Turtle) []Field {
	return concat(
		[]Field{{"id", &t.ID}},
		turtleDataFields(t),
		[]Field{
			{"created_at", &t.CreatedAt},
			{"updated_at", &t.UpdatedAt},
		},
	)
}

func (s *Store) CreateTurtle(ctx context.Context, t *models.Turtle) error {
	ins := turtleDataFields(t)
	query := fmt.Sprintf(`INSERT INTO turtles (%s) VALUES (%s) RETURNING %s`,
		columns(ins), placeholders(1, len(ins)), columns(TurtleFields(t)))

	if err := s.db.QueryRowContext(ctx, query, pointers(ins)...).Scan(pointers(TurtleFields(t))...); err != nil {
		return fmt.Errorf("failed to insert turtle: %w", err)
	}
	return nil
}

// UpdateTurtle overwrites the health condition, tags and measurements of
// turtle id. Name, species and sex are left alone.
func (s *Store) UpdateTurtle(ctx context.Context, id int64, t *models.Turtle) error {
	set := turtleConditionFields(t)
	query := fmt.Sprintf(`UPDATE turtles SET %s, updated_at = NOW() WHERE id = $%d RETURNING %s`,
		assignments(1, set), len(set)+1, columns(TurtleFields(t)))

	args := append(pointers(set), id)
	err := s.db.QueryRowContext(ctx, query, args...).Scan(pointers(TurtleFields(t))...)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound("Turtle not found")
	}
	if err != nil {
		return fmt.Errorf("failed to update turtle: %w", err)
	}
	return nil
}

// ListTurtles returns all turtles, newest first.
func (s *Store) ListTurtles(ctx context.Context) ([]models.Turtle, error) {
	var shape models.Turtle
	query := fmt.Sprintf(`SELECT %s FROM turtles ORDER BY created_at DESC, id DESC`,
		columns(TurtleFields(&shape)))

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query turtles: %w", err)
	}
	defer rows.Close()

	turtles := []models.Turtle{}
	for rows.Next() {
		var t models.Turtle
		if err := rows.Scan(pointers(TurtleFields(&t))...); err != nil {
			return nil, fmt.Errorf("failed to scan turtle: %w", err)
		}
		turtles = append(turtles, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read turtles: %w", err)
	}
	return turtles, nil
}

func (s *Store) GetTurtle(ctx context.Context, id int64) (*models.Turtle, error) {
	var t models.Turtle
	query := fmt.Sprintf(`SELECT %s FROM turtles WHERE id = $1`, columns(TurtleFields(&t)))

	err := s.db.QueryRowContext(ctx, query, id).Scan(pointers(TurtleFields(&t))...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("Turtle not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query turtle: %w", err)
	}
	return &t, nil
}
