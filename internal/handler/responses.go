package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/osse101/PortalQuest_Go/internal/cooldown"
	"github.com/osse101/PortalQuest_Go/internal/domain"
	"github.com/osse101/PortalQuest_Go/internal/logger"
)

// Standard response types for consistent API responses

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
	// RetryAfter is set for cooldown rejections, in whole seconds
	RetryAfter int `json:"retry_after,omitempty"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent
		slog.Error(LogMsgEncodeFailed, "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and answers with the mapped status
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(fmt.Sprintf(LogMsgServiceErrorFmt, opName), "error", err)
	} else {
		log.Debug(fmt.Sprintf(LogMsgServiceErrorFmt, opName), "error", err)
	}

	resp := ErrorResponse{Error: msg}
	var cd cooldown.ErrOnCooldown
	if errors.As(err, &cd) {
		resp.Error = cd.Error()
		resp.RetryAfter = int(cd.Remaining.Seconds() + 0.999)
	}
	respondJSON(w, status, resp)
}

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Rejected triggers leave state untouched, so most map to 4xx.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, ErrMsgSessionNotFoundError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughMoneyError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrAlreadyPurchased):
		return http.StatusConflict, ErrMsgAlreadyPurchasedError
	case errors.Is(err, domain.ErrAlreadyClaimed):
		return http.StatusConflict, ErrMsgAlreadyClaimedError
	case errors.Is(err, domain.ErrOnCooldown):
		return http.StatusTooManyRequests, ErrMsgOnCooldownError
	case errors.Is(err, domain.ErrNotInCombat):
		return http.StatusConflict, ErrMsgNotInCombatError
	case errors.Is(err, domain.ErrAlreadyInCombat):
		return http.StatusConflict, ErrMsgAlreadyInCombatError
	case errors.Is(err, domain.ErrNoArena):
		return http.StatusConflict, ErrMsgNoArenaError
	case errors.Is(err, domain.ErrArenaBusy):
		return http.StatusConflict, ErrMsgArenaBusyError
	case errors.Is(err, domain.ErrHealUsed):
		return http.StatusConflict, ErrMsgHealUsedError
	case errors.Is(err, domain.ErrNotPlayerTurn):
		return http.StatusConflict, ErrMsgNotPlayerTurnError
	case errors.Is(err, domain.ErrExternalService):
		return http.StatusBadGateway, ErrMsgExternalServiceError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
