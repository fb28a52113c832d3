package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"pkg.jsn.cam/recordgen/pkg/recordgen"
)

// InternalErrorMessage is the only message clients see for 5xx failures.
const InternalErrorMessage = "Internal Server Error"

// maxBodyBytes bounds request bodies decoded by DecodeJSON.
const maxBodyBytes = 1 << 20

var validate = validator.New()

// HandlerFunc is a function that handles HTTP requests and may return an error
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// StatusError is an error that carries the HTTP status it should be reported with.
type StatusError struct {
	Err    error
	Status int
}

func (e *StatusError) Error() string { return e.Err.Error() }

func (e *StatusError) Unwrap() error { return e.Err }

// NewStatusError wraps err with an HTTP status.
func NewStatusError(status int, err error) *StatusError {
	return &StatusError{Status: status, Err: err}
}

// BadRequest returns a 400 error with a formatted message.
func BadRequest(format string, args ...any) *StatusError {
	return NewStatusError(http.StatusBadRequest, fmt.Errorf(format, args...))
}

// NotFound returns a 404 error with a formatted message.
func NotFound(format string, args ...any) *StatusError {
	return NewStatusError(http.StatusNotFound, fmt.Errorf(format, args...))
}

// StatusFor classifies err into an HTTP status code.
func StatusFor(err error) int {
	var se *StatusError
	switch {
	case errors.As(err, &se):
		return se.Status
	case recordgen.IsValidation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Wrap converts a HandlerFunc to an http.HandlerFunc by handling errors.
// Client errors are reported with their message; server errors are logged
// and reported with InternalErrorMessage only.
func Wrap(logger *slog.Logger, fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		status := StatusFor(err)
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(r.Context(), "request failed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Any("error", err),
			)
			Error(w, status, InternalErrorMessage)
			return
		}

		logger.DebugContext(r.Context(), "request rejected",
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.Any("error", err),
		)
		Error(w, status, err.Error())
	}
}

// DecodeJSON decodes the request body into v and validates its struct tags.
// Failures are 400 StatusErrors.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return BadRequest("invalid request body: %v", err)
	}
	return Validate(v)
}

// Validate checks the validate struct tags of v. Failures are 400 StatusErrors.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fieldMessage(fe))
		}
		return BadRequest("%s", strings.Join(msgs, "; "))
	}
	return BadRequest("%v", err)
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}

// JSON writes a JSON response with the given status code
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// Error writes a JSON error response with the given status code and message
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"error": msg})
}
