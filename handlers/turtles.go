// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/turtle-records/middleware"
	"github.com/danielhkuo/turtle-records/models"
	"github.com/danielhkuo/turtle-records/store"
)

type TurtleHandler struct {
	store *store.Store
}

func NewTurtleHandler(db *sql.DB) *TurtleHandler {
	return &TurtleHandler{store: store.New(db)}
}

// Create handles POST /turtles/create
func (h *TurtleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTurtleRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.WriteError(w, r, "create turtle", errInvalidJSON)
		return
	}

	sex, err := normalizeSex(req.Sex)
	if err != nil {
		middleware.WriteError(w, r, "create turtle", err)
		return
	}
	if err := required("species", req.Species, "health_condition", req.HealthCondition); err != nil {
		middleware.WriteError(w, r, "create turtle", err)
		return
	}
	measurements, err := requireMeasurements(req.MorphometricsInput)
	if err != nil {
		middleware.WriteError(w, r, "create turtle", err)
		return
	}

	turtle := models.Turtle{
		Name:            req.Name,
		Species:         req.Species,
		Sex:             sex,
		HealthCondition: req.HealthCondition,
		FlipperTags:     req.FlipperTags,
		Morphometrics:   measurements,
	}
	if err := h.store.CreateTurtle(r.Context(), &turtle); err != nil {
		middleware.WriteError(w, r, "create turtle", err)
		return
	}

	slog.Info("turtle created", "turtle_id", turtle.ID, "species", turtle.Species)

	middleware.JSONResponse(w, http.StatusOK, models.TurtleResponse{
		Message: "Turtle created successfully",
		Turtle:  turtle,
	})
}

// Update handles PUT /turtles/{id}/update.
// Name, species and sex are fixed once a turtle is registered.
func (h *TurtleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"), "id")
	if err != nil {
		middleware.WriteError(w, r, "update turtle", err)
		return
	}

	var req models.UpdateTurtleRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.WriteError(w, r, "update turtle", errInvalidJSON)
		return
	}

	if err := required("health_condition", req.HealthCondition); err != nil {
		middleware.WriteError(w, r, "update turtle", err)
		return
	}
	measurements, err := requireMeasurements(req.MorphometricsInput)
	if err != nil {
		middleware.WriteError(w, r, "update turtle", err)
		return
	}

	turtle := models.Turtle{
		HealthCondition: req.HealthCondition,
		FlipperTags:     req.FlipperTags,
		Morphometrics:   measurements,
	}
	if err := h.store.UpdateTurtle(r.Context(), id, &turtle); err != nil {
		middleware.WriteError(w, r, "update turtle", err)
		return
	}

	slog.Info("turtle updated", "turtle_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.TurtleResponse{
		Message: "Turtle updated successfully",
		Turtle:  turtle,
	})
}

// List handles GET /turtles
func (h *TurtleHandler) List(w http.ResponseWriter, r *http.Request) {
	turtles, err := h.store.ListTurtles(r.Context())
	if err != nil {
		middleware.WriteError(w, r, "list turtles", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.TurtlesResponse{
		Message: "Turtles retrieved successfully",
		Turtles: turtles,
	})
}

// Get handles GET /turtles/{id}
func (h *TurtleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"), "id")
	if err != nil {
		middleware.WriteError(w, r, "get turtle", err)
		return
	}

	turtle, err := h.store.GetTurtle(r.Context(), id)
	if err != nil {
		middleware.WriteError(w, r, "get turtle", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.TurtleResponse{
		Message: "Turtle retrieved successfully",
		Turtle:  *turtle,
	})
}

// ListSurveyEvents handles GET /turtles/{turtle_id}/survey_events
func (h *TurtleHandler) ListSurveyEvents(w http.ResponseWriter, r *http.Request) {
	turtleID, err := parseID(r.PathValue("turtle_id"), "turtle_id")
	if err != nil {
		middleware.WriteError(w, r, "list survey events", err)
		return
	}

	if _, err := h.store.GetTurtle(r.Context(), turtleID); err != nil {
		middleware.WriteError(w, r, "list survey events", err)
		return
	}

	events, err := h.store.ListSurveyEvents(r.Context(), turtleID)
	if err != nil {
		middleware.WriteError(w, r, "list survey events", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SurveyEventsResponse{
		Message:      "Survey events retrieved successfully",
		SurveyEvents: events,
	})
}
