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
	"github.com/danielhkuo/postcrossing/selector"
)

type PostcardHandler struct {
	svc *exchange.Service
}

func NewPostcardHandler(svc *exchange.Service) *PostcardHandler {
	return &PostcardHandler{svc: svc}
}

// RequestAddress handles POST /api/postcards/request-address
func (h *PostcardHandler) RequestAddress(w http.ResponseWriter, r *http.Request) {
	var req models.RequestAddressRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.SenderID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "senderId is required")
		return
	}

	assignment, err := h.svc.RequestAddress(r.Context(), req.SenderID)
	switch {
	case errors.Is(err, selector.ErrNoEligibleRecipient):
		middleware.ErrorResponse(w, http.StatusNotFound, "No eligible users available to send a card to.")
		return
	case errors.Is(err, ledger.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Sender not found")
		return
	case err != nil:
		slog.Error("failed to request address", "error", err, "sender_id", req.SenderID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error requesting address")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.RequestAddressResponse{
		Message: "Address assigned to the most 'due' user!",
		RecipientInfo: models.RecipientInfo{
			UserID:   assignment.Recipient.UserID,
			Username: assignment.Recipient.Username,
			Country:  assignment.Recipient.Country,
			Address:  assignment.Address,
		},
		PostcardID:   assignment.Postcard.ID,
		PostcardCode: assignment.Postcard.Code,
	})
}

// ConfirmReceived handles PUT /api/postcards/{postcardId}/received
func (h *PostcardHandler) ConfirmReceived(w http.ResponseWriter, r *http.Request) {
	postcardID := r.PathValue("postcardId")
	if postcardID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "postcardId is required")
		return
	}

	postcard, err := h.svc.ConfirmReceipt(r.Context(), postcardID)
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Postcard not found.")
		return
	case errors.Is(err, ledger.ErrAlreadyConfirmed):
		middleware.ErrorResponse(w, http.StatusBadRequest, "This postcard has already been registered.")
		return
	case err != nil:
		slog.Error("failed to register postcard", "error", err, "postcard_id", postcardID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error registering postcard")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ConfirmReceiptResponse{
		Message:    "Postcard successfully registered as received!",
		PostcardID: postcard.ID,
		ReceivedAt: *postcard.ReceivedAt,
	})
}

// GetPostcard handles GET /api/postcards/{postcardId}
func (h *PostcardHandler) GetPostcard(w http.ResponseWriter, r *http.Request) {
	postcardID := r.PathValue("postcardId")
	if postcardID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "postcardId is required")
		return
	}

	postcard, err := h.svc.GetPostcard(r.Context(), postcardID)
	if errors.Is(err, ledger.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Postcard not found.")
		return
	}
	if err != nil {
		slog.Error("failed to fetch postcard", "error", err, "postcard_id", postcardID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error fetching postcard")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, postcard)
}
