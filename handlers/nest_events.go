// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/turtle-records/apperr"
	"github.com/danielhkuo/turtle-records/middleware"
	"github.com/danielhkuo/turtle-records/models"
	"github.com/danielhkuo/turtle-records/store"
)

type NestEventHandler struct {
	store *store.Store
}

func NewNestEventHandler(db *sql.DB) *NestEventHandler {
	return &NestEventHandler{store: store.New(db)}
}

// nestEventFromRequest leaves EventDate zero when the request omits it.
func nestEventFromRequest(req models.NestEventRequest) models.NestEvent {
	e := models.NestEvent{
		EventType:            req.EventType,
		NestCode:             strings.TrimSpace(req.NestCode),
		NestSiteMeasurements: req.NestSiteMeasurements,
		EggCounts:            req.EggCounts,
		StartTime:            req.StartTime,
		EndTime:              req.EndTime,
		Observer:             req.Observer,
		Notes:                req.Notes,
	}
	if req.EventDate != nil {
		e.EventDate = *req.EventDate
	}
	return e
}

// Create handles POST /nest-events/create.
// The nest is resolved from nest_code; an unknown code writes nothing.
func (h *NestEventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.NestEventRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.WriteError(w, r, "create nest event", errInvalidJSON)
		return
	}

	if err := required("event_type", req.EventType, "nest_code", req.NestCode); err != nil {
		middleware.WriteError(w, r, "create nest event", err)
		return
	}

	event := nestEventFromRequest(req)
	event.EventDate = orNow(req.EventDate)
	if err := h.store.CreateNestEvent(r.Context(), &event); err != nil {
		middleware.WriteError(w, r, "create nest event", err)
		return
	}

	slog.Info("nest event created",
		"event_id", event.ID,
		"nest_code", event.NestCode,
		"event_type", event.EventType,
	)

	middleware.JSONResponse(w, http.StatusOK, models.NestEventResponse{
		Message:   "Nest event created successfully",
		NestEvent: event,
	})
}

// ListByNest handles GET /nest-events/{nest_code}
func (h *NestEventHandler) ListByNest(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("nest_code")

	events, err := h.store.ListNestEvents(r.Context(), code)
	if err != nil {
		middleware.WriteError(w, r, "list nest events", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.NestEventsResponse{
		Message:    "Nest events retrieved successfully",
		Count:      len(events),
		NestEvents: events,
	})
}

// Update handles PUT /nest-events/{id}
func (h *NestEventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"), "id")
	if err != nil {
		middleware.WriteError(w, r, "update nest event", err)
		return
	}

	var req models.NestEventRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.WriteError(w, r, "update nest event", errInvalidJSON)
		return
	}

	if err := required("event_type", req.EventType); err != nil {
		middleware.WriteError(w, r, "update nest event", err)
		return
	}
	if req.NestID == nil {
		middleware.WriteError(w, r, "update nest event", apperr.Validation("nest_id is required"))
		return
	}
	if err := required("nest_code", req.NestCode); err != nil {
		middleware.WriteError(w, r, "update nest event", err)
		return
	}

	event := nestEventFromRequest(req)
	event.NestID = *req.NestID
	if err := h.store.UpdateNestEvent(r.Context(), id, &event); err != nil {
		middleware.WriteError(w, r, "update nest event", err)
		return
	}

	slog.Info("nest event updated", "event_id", id, "nest_id", event.NestID)

	middleware.JSONResponse(w, http.StatusOK, models.NestEventResponse{
		Message:   "Nest event updated successfully",
		NestEvent: event,
	})
}
