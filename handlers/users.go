// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/turtle-records/apperr"
	"github.com/danielhkuo/turtle-records/auth"
	"github.com/danielhkuo/turtle-records/cliparse"
	"github.com/danielhkuo/turtle-records/middleware"
	"github.com/danielhkuo/turtle-records/models"
	"github.com/danielhkuo/turtle-records/store"
)

var errBadCredentials = apperr.Auth("Invalid email or password")

type UserHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewUserHandler(db *sql.DB, cfg cliparse.Config) *UserHandler {
	return &UserHandler{store: store.New(db), cfg: cfg}
}

// Register handles POST /users/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.WriteError(w, r, "register", errInvalidJSON)
		return
	}

	if err := required(
		"first_name", req.FirstName,
		"last_name", req.LastName,
		"email", req.Email,
		"password", req.Password,
	); err != nil {
		middleware.WriteError(w, r, "register", err)
		return
	}

	role := strings.TrimSpace(req.Role)
	if role == "" {
		role = models.RoleVolunteer
	}

	hash, err := auth.HashPassword(req.Password, h.cfg.BcryptCost)
	if err != nil {
		middleware.WriteError(w, r, "register", err)
		return
	}

	user := models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: hash,
		Role:         role,
	}
	if err := h.store.CreateUser(r.Context(), &user); err != nil {
		middleware.WriteError(w, r, "register", err)
		return
	}

	slog.Info("user registered", "user_id", user.ID, "role", user.Role)

	middleware.JSONResponse(w, http.StatusOK, models.UserResponse{
		Message: "User registered successfully",
		User:    user,
	})
}

// Login handles POST /users/login.
// Unknown email and wrong password produce the same response.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.WriteError(w, r, "login", errInvalidJSON)
		return
	}

	if err := required("email", req.Email, "password", req.Password); err != nil {
		middleware.WriteError(w, r, "login", err)
		return
	}

	user, err := h.store.FindUserByEmail(r.Context(), strings.TrimSpace(req.Email))
	if apperr.KindOf(err) == apperr.KindNotFound {
		auth.SimulateCheck(req.Password, h.cfg.BcryptCost)
		middleware.WriteError(w, r, "login", errBadCredentials)
		return
	}
	if err != nil {
		middleware.WriteError(w, r, "login", err)
		return
	}

	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		if !errors.Is(err, auth.ErrInvalidPassword) {
			middleware.WriteError(w, r, "login", err)
			return
		}
		middleware.WriteError(w, r, "login", errBadCredentials)
		return
	}

	if !user.IsActive {
		middleware.WriteError(w, r, "login", apperr.Forbidden("Account is inactive"))
		return
	}

	slog.Info("user logged in", "user_id", user.ID)

	middleware.JSONResponse(w, http.StatusOK, models.UserResponse{
		Message: "Login successful",
		User:    *user,
	})
}

// List handles GET /users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		middleware.WriteError(w, r, "list users", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.UsersResponse{
		Message: "Users retrieved successfully",
		Users:   users,
	})
}
