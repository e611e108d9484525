// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/turtle-records/apperr"
	"github.com/danielhkuo/turtle-records/models"
)

var errInvalidJSON = apperr.Validation("Invalid JSON")

// parseID reads a positive integer path value.
func parseID(raw, name string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Validation(name + " must be a positive integer")
	}
	return id, nil
}

// normalizeSex lowercases sex, defaulting to unknown when empty.
func normalizeSex(sex string) (string, error) {
	sex = strings.ToLower(strings.TrimSpace(sex))
	if sex == "" {
		return models.SexUnknown, nil
	}
	switch sex {
	case models.SexMale, models.SexFemale, models.SexUnknown:
		return sex, nil
	}
	return "", apperr.Validation("sex must be one of male, female, unknown")
}

// normalizeNestStatus lowercases status, defaulting to incubating when empty.
func normalizeNestStatus(status string) (string, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if status == "" {
		return models.NestStatusIncubating, nil
	}
	switch status {
	case models.NestStatusIncubating, models.NestStatusHatching, models.NestStatusHatched:
		return status, nil
	}
	return "", apperr.Validation("status must be one of incubating, hatching, hatched")
}

// parseDate accepts a calendar date (2006-01-02) or a full RFC 3339 timestamp.
func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if d, err := time.Parse(time.DateOnly, raw); err == nil {
		return d, nil
	}
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts, nil
	}
	return time.Time{}, apperr.Validation("date_found must be a date (YYYY-MM-DD)")
}

// requireMeasurements fails when any of the nine morphometric values is absent.
func requireMeasurements(m models.MorphometricsInput) (models.Morphometrics, error) {
	if missing := m.Missing(); len(missing) > 0 {
		return models.Morphometrics{}, apperr.Validation("Missing required measurements: " + strings.Join(missing, ", "))
	}
	return m.Values(), nil
}

// required returns a validation error naming the first blank field.
// fields alternates name, value.
func required(fields ...string) error {
	for i := 0; i+1 < len(fields); i += 2 {
		if strings.TrimSpace(fields[i+1]) == "" {
			return apperr.Validation(fields[i] + " is required")
		}
	}
	return nil
}

// orNow returns *t, or the current time when t is nil.
func orNow(t *time.Time) time.Time {
	if t == nil {
		return time.Now()
	}
	return *t
}
