package api

import (
	"net/http"

	"github.com/matzehuels/floorplan/pkg/errors"
)

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// clientCodes are rejected as bad requests alongside configuration errors.
var clientCodes = map[errors.Code]bool{
	errors.ErrCodeInvalidInput:   true,
	errors.ErrCodeInvalidFormat:  true,
	errors.ErrCodeInvalidStyle:   true,
	errors.ErrCodeInvalidVizType: true,
}

// statusFor maps an error to an HTTP status.
func statusFor(err error) int {
	code := errors.GetCode(err)
	switch {
	case errors.IsConfiguration(err), clientCodes[code]:
		return http.StatusBadRequest
	case code == errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error, status int) {
	code := errors.GetCode(err)
	msg := errors.UserMessage(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	if status >= http.StatusInternalServerError && code == errors.ErrCodeInternal {
		// Internal causes may carry paths or subprocess output.
		msg = "internal error"
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
