// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/turtle-records/cliparse"
	"github.com/danielhkuo/turtle-records/handlers"
	"github.com/danielhkuo/turtle-records/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()
	base := cfg.BasePath

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(db, cfg)
	turtleHandler := handlers.NewTurtleHandler(db)
	surveyHandler := handlers.NewSurveyEventHandler(db)
	nestHandler := handlers.NewNestHandler(db)
	nestEventHandler := handlers.NewNestEventHandler(db)

	handle := func(method, path string, h http.HandlerFunc) {
		mux.HandleFunc(method+" "+base+path, middleware.WithLogging(h))
	}

	// Health check
	mux.HandleFunc("GET /health", healthHandler.Health)
	handle("GET", "/test", healthHandler.Test)

	// Users
	handle("POST", "/users/register", userHandler.Register)
	handle("POST", "/users/login", userHandler.Login)
	handle("GET", "/users", userHandler.List)

	// Turtles and their survey history
	handle("POST", "/turtles/create", turtleHandler.Create)
	handle("GET", "/turtles", turtleHandler.List)
	handle("GET", "/turtles/{id}", turtleHandler.Get)
	handle("PUT", "/turtles/{id}/update", turtleHandler.Update)
	handle("GET", "/turtles/{turtle_id}/survey_events", turtleHandler.ListSurveyEvents)
	handle("POST", "/turtle_survey_events/create", surveyHandler.Create)

	// Nests
	handle("POST", "/nests/create", nestHandler.Create)
	handle("GET", "/nests", nestHandler.List)
	handle("GET", "/nests/{nest_code}", nestHandler.GetByCode)
	handle("PUT", "/nests/{id}/update", nestHandler.Update)

	// Nest events
	handle("POST", "/nest-events/create", nestEventHandler.Create)
	handle("GET", "/nest-events/{nest_code}", nestEventHandler.ListByNest)
	handle("PUT", "/nest-events/{id}", nestEventHandler.Update)

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("turtle-records API v1"))
	})

	return middleware.CORS(mux)
}
