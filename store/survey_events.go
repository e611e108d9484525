// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"github.com/danielhkuo/turtle-records/apperr"
	"github.com/danielhkuo/turtle-records/db"
	"github.com/danielhkuo/turtle-records/models"
)

func nestingTimeFields(n *models.NestingTimes) []Field {
	return []Field{
		{"time_first_seen", &n.TimeFirstSeen},
		{"time_start_egg_laying", &n.TimeStartEggLaying},
		{"time_covering", &n.TimeCovering},
		{"time_end_camouflage", &n.TimeEndCamouflage},
		{"time_reach_sea", &n.TimeReachSea},
	}
}

func surveyEventDataFields(e *models.SurveyEvent) []Field {
	return concat(
		[]Field{
			{"event_date", &e.EventDate},
			{"event_type", &e.EventType},
			{"location", &e.Location},
			{"turtle_id", &e.TurtleID},
		},
		tagFields(&e.FlipperTags),
		morphometricFields(&e.Morphometrics),
		[]Field{
			{"health_condition", &e.HealthCondition},
			{"observer", &e.Observer},
			{"notes", &e.Notes},
		},
		nestingTimeFields(&e.NestingTimes),
	)
}

// SurveyEventFields lists every turtle_survey_events column in table order.
func SurveyEventFields(e *models.SurveyEvent) []Field {
	return concat(
		[]Field{{"id", &e.ID}},
		surveyEventDataFields(e),
		[]Field{{"created_at", &e.CreatedAt}},
	)
}

// CreateSurveyEvent inserts e. The turtle is not looked up first: the
// foreign key rejects an unknown turtle_id.
func (s *Store) CreateSurveyEvent(ctx context.Context, e *models.SurveyEvent) error {
	ins := surveyEventDataFields(e)
	query := fmt.Sprintf(`INSERT INTO turtle_survey_events (%s) VALUES (%s) RETURNING %s`,
		columns(ins), placeholders(1, len(ins)), columns(SurveyEventFields(e)))

	err := s.db.QueryRowContext(ctx, query, pointers(ins)...).Scan(pointers(SurveyEventFields(e))...)
	if db.IsForeignKeyViolation(err, db.SurveyEventTurtleFK) {
		return apperr.NotFound("Turtle not found")
	}
	if err != nil {
		return fmt.Errorf("failed to insert survey event: %w", err)
	}
	return nil
}

// ListSurveyEvents returns the survey events of one turtle joined with the
// turtle's name and species, most recent event first.
func (s *Store) ListSurveyEvents(ctx context.Context, turtleID int64) ([]models.SurveyEventWithTurtle, error) {
	var shape models.SurveyEvent
	query := fmt.Sprintf(`
		SELECT %s, t.name, t.species
		FROM turtle_survey_events e
		JOIN turtles t ON t.id = e.turtle_id
		WHERE e.turtle_id = $1
		ORDER BY e.event_date DESC, e.id DESC
	`, qualified("e", SurveyEventFields(&shape)))

	rows, err := s.db.QueryContext(ctx, query, turtleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query survey events: %w", err)
	}
	defer rows.Close()

	events := []models.SurveyEventWithTurtle{}
	for rows.Next() {
		var ev models.SurveyEventWithTurtle
		dest := append(pointers(SurveyEventFields(&ev.SurveyEvent)), &ev.TurtleName, &ev.TurtleSpecies)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan survey event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read survey events: %w", err)
	}
	return events, nil
}
