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

type NestHandler struct {
	store *store.Store
}

func NewNestHandler(db *sql.DB) *NestHandler {
	return &NestHandler{store: store.New(db)}
}

// nestFromRequest validates a create or update body and applies defaults.
func nestFromRequest(req models.NestRequest) (models.Nest, error) {
	if err := required("nest_code", req.NestCode); err != nil {
		return models.Nest{}, err
	}
	for _, f := range []struct {
		name string
		v    *float64
	}{
		{"depth_top_egg_h", req.DepthTopEggH},
		{"distance_to_sea_s", req.DistanceToSeaS},
		{"gps_lat", req.GPSLat},
		{"gps_long", req.GPSLong},
	} {
		if f.v == nil {
			return models.Nest{}, apperr.Validation(f.name + " is required")
		}
	}
	if err := required("date_found", req.DateFound, "beach", req.Beach); err != nil {
		return models.Nest{}, err
	}

	dateFound, err := parseDate(req.DateFound)
	if err != nil {
		return models.Nest{}, err
	}
	status, err := normalizeNestStatus(req.Status)
	if err != nil {
		return models.Nest{}, err
	}

	current := req.CurrentNumEggs
	if current == nil {
		current = req.TotalNumEggs
	}

	nest := models.Nest{
		NestCode:            strings.TrimSpace(req.NestCode),
		TotalNumEggs:        req.TotalNumEggs,
		CurrentNumEggs:      current,
		DepthTopEggH:        *req.DepthTopEggH,
		DepthBottomChamberH: req.DepthBottomChamberH,
		DistanceToSeaS:      *req.DistanceToSeaS,
		WidthW:              req.WidthW,
		GPSLat:              *req.GPSLat,
		GPSLong:             *req.GPSLong,
		Triangulation:       req.Triangulation,
		Status:              status,
		DateFound:           dateFound,
		Beach:               req.Beach,
		Notes:               req.Notes,
	}
	if req.Relocated != nil {
		nest.Relocated = *req.Relocated
	}
	if req.IsArchived != nil {
		nest.IsArchived = *req.IsArchived
	}
	return nest, nil
}

// Create handles POST /nests/create
func (h *NestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.NestRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.WriteError(w, r, "create nest", errInvalidJSON)
		return
	}

	nest, err := nestFromRequest(req)
	if err != nil {
		middleware.WriteError(w, r, "create nest", err)
		return
	}
	if err := h.store.CreateNest(r.Context(), &nest); err != nil {
		middleware.WriteError(w, r, "create nest", err)
		return
	}

	slog.Info("nest created", "nest_id", nest.ID, "nest_code", nest.NestCode, "beach", nest.Beach)

	middleware.JSONResponse(w, http.StatusOK, models.NestResponse{
		Message: "Nest created successfully",
		Nest:    nest,
	})
}

// Update handles PUT /nests/{id}/update
func (h *NestHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"), "id")
	if err != nil {
		middleware.WriteError(w, r, "update nest", err)
		return
	}

	var req models.NestRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.WriteError(w, r, "update nest", errInvalidJSON)
		return
	}

	nest, err := nestFromRequest(req)
	if err != nil {
		middleware.WriteError(w, r, "update nest", err)
		return
	}
	if err := h.store.UpdateNest(r.Context(), id, &nest); err != nil {
		middleware.WriteError(w, r, "update nest", err)
		return
	}

	slog.Info("nest updated", "nest_id", id, "status", nest.Status)

	middleware.JSONResponse(w, http.StatusOK, models.NestResponse{
		Message: "Nest updated successfully",
		Nest:    nest,
	})
}

// List handles GET /nests
func (h *NestHandler) List(w http.ResponseWriter, r *http.Request) {
	nests, err := h.store.ListNests(r.Context())
	if err != nil {
		middleware.WriteError(w, r, "list nests", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.NestsResponse{
		Message: "Nests retrieved successfully",
		Nests:   nests,
	})
}

// GetByCode handles GET /nests/{nest_code}
func (h *NestHandler) GetByCode(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("nest_code")

	nest, err := h.store.GetNestByCode(r.Context(), code)
	if err != nil {
		middleware.WriteError(w, r, "get nest", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.NestResponse{
		Message: "Nest retrieved successfully",
		Nest:    *nest,
	})
}
