// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/postcrossing/exchange"
	"github.com/danielhkuo/postcrossing/ledger"
	"github.com/danielhkuo/postcrossing/middleware"
	"github.com/danielhkuo/postcrossing/models"
)

type UserHandler struct {
	svc *exchange.Service
}

func NewUserHandler(svc *exchange.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

// Register handles POST /api/users/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterUserRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	user, err := h.svc.RegisterUser(r.Context(), req)
	if errors.Is(err, exchange.ErrInvalidUsername) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username is required")
		return
	}
	if err != nil {
		slog.Error("failed to register user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error registering user")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterUserResponse{
		Message: "User registered!",
		UserID:  user.ID,
	})
}

// GetUser handles GET /api/users/{userId}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "userId is required")
		return
	}

	user, err := h.svc.GetUser(r.Context(), userID)
	if errors.Is(err, ledger.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		// Malformed IDs land here too
		slog.Error("failed to fetch user", "error", err, "user_id", userID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error fetching user")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, user)
}
