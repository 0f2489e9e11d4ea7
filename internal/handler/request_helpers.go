package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/PortalQuest_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req BuyRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Buy item"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Error(fmt.Sprintf(LogMsgDecodeFailedFmt, actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf(LogMsgDecodedFmt, actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// playerName reads the {name} URL parameter and validates it.
// If ok is false, the HTTP response has already been written.
func playerName(w http.ResponseWriter, r *http.Request) (string, bool) {
	name, err := pathName(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidPlayerName)
		return "", false
	}
	return name, true
}

func pathName(r *http.Request) (string, error) {
	name, err := url.PathUnescape(chi.URLParam(r, URLParamName))
	if err != nil {
		return "", err
	}
	if err := GetValidator().ValidateVar(name, "required,playername"); err != nil {
		return "", err
	}
	return name, nil
}

// LogRequestFields logs common request fields in a structured way
func LogRequestFields(log *slog.Logger, keyvals ...interface{}) {
	if len(keyvals)%2 != 0 {
		log.Warn(LogMsgOddLogFields)
		return
	}
	log.Debug(LogMsgRequestDetails, keyvals...)
}
