package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Response is the uniform envelope every endpoint returns. Success payloads
// embed it next to their data fields; failures carry a message and an
// optional machine-readable code.
type Response struct {
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func OK() Response {
	return Response{Success: true}
}

func Error(msg string) Response {
	return Response{Success: false, Error: msg}
}

func ErrorCode(msg, code string) Response {
	return Response{Success: false, Error: msg, Code: code}
}

// Internal hides the fault behind an opaque request id so operators can
// correlate logs without leaking detail to the caller.
func Internal() Response {
	return Response{
		Success:   false,
		Error:     "internal server error",
		RequestID: uuid.NewString(),
	}
}

func ValidationError(errs validator.ValidationErrors) Response {
	var errMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "datetime":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not a valid date or time", err.Field()))
		case "min":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is below the minimum", err.Field()))
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}

	return Error(strings.Join(errMsgs, ", "))
}
