package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/student-dashboard/internal/courses"
	"github.com/jonathan/student-dashboard/internal/resume"
)

// statusClientClosedRequest is nginx's non-standard code for a client that went away mid-request.
const statusClientClosedRequest = 499

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var verr *ErrValidation
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &verr),
		errors.Is(err, resume.ErrEmptyResume),
		errors.Is(err, resume.ErrNotPDF),
		errors.Is(err, courses.ErrUnknownFilter):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled):
		return statusClientClosedRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// clientGone reports whether err only means the caller stopped waiting.
func clientGone(err error) bool {
	return errors.Is(err, context.Canceled)
}
