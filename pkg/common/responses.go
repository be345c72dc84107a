package common

import (
	"encoding/json"
	"net/http"

	apperrors "candyshop-backend/pkg/errors"
)

// ErrorResponse is the error body shape shared by every handler: a message
// plus, for validation failures, the itemized field violations.
type ErrorResponse struct {
	Message string                `json:"message"`
	Errors  []apperrors.Violation `json:"errors,omitempty"`
}

// RespondJSON sends a JSON response
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError maps an error onto the taxonomy and writes the JSON body.
// Errors outside the taxonomy are treated as store failures so that no
// internal detail reaches the client.
func RespondError(w http.ResponseWriter, err error) {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		RespondJSON(w, http.StatusInternalServerError, ErrorResponse{
			Message: "something went wrong",
		})
		return
	}

	body := ErrorResponse{Message: appErr.Message}
	if appErr.Type == apperrors.ErrorTypeValidation {
		body.Errors = appErr.Violations
	}
	if appErr.Type == apperrors.ErrorTypeStore {
		// Generic wording only; the cause stays in the logs.
		body.Message = "something went wrong"
	}
	RespondJSON(w, appErr.HTTPStatus, body)
}

// RespondMessage sends a plain {message} body
func RespondMessage(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, map[string]string{"message": message})
}
