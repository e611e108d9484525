// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/turtle-records/apperr"
	"github.com/danielhkuo/turtle-records/middleware"
	"github.com/danielhkuo/turtle-records/models"
	"github.com/danielhkuo/turtle-records/store"
)

type SurveyEventHandler struct {
	store *store.Store
}

func NewSurveyEventHandler(db *sql.DB) *SurveyEventHandler {
	return &SurveyEventHandler{store: store.New(db)}
}

// Create handles POST /turtle_survey_events/create
func (h *SurveyEventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSurveyEventRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.WriteError(w, r, "create survey event", errInvalidJSON)
		return
	}

	if err := required(
		"event_type", req.EventType,
		"location", req.Location,
	); err != nil {
		middleware.WriteError(w, r, "create survey event", err)
		return
	}
	if req.TurtleID == nil {
		middleware.WriteError(w, r, "create survey event", apperr.Validation("turtle_id is required"))
		return
	}
	measurements, err := requireMeasurements(req.MorphometricsInput)
	if err != nil {
		middleware.WriteError(w, r, "create survey event", err)
		return
	}
	if err := required(
		"health_condition", req.HealthCondition,
		"observer", req.Observer,
	); err != nil {
		middleware.WriteError(w, r, "create survey event", err)
		return
	}

	event := models.SurveyEvent{
		EventDate:       orNow(req.EventDate),
		EventType:       req.EventType,
		Location:        req.Location,
		TurtleID:        *req.TurtleID,
		FlipperTags:     req.FlipperTags,
		Morphometrics:   measurements,
		HealthCondition: req.HealthCondition,
		Observer:        req.Observer,
		Notes:           req.Notes,
		NestingTimes:    req.NestingTimes,
	}
	if err := h.store.CreateSurveyEvent(r.Context(), &event); err != nil {
		middleware.WriteError(w, r, "create survey event", err)
		return
	}

	slog.Info("survey event created", "event_id", event.ID, "turtle_id", event.TurtleID)

	middleware.JSONResponse(w, http.StatusOK, models.SurveyEventResponse{
		Message:     "Survey event created successfully",
		SurveyEvent: event,
	})
}
