package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/student-dashboard/internal/courses"
	"github.com/jonathan/student-dashboard/internal/resume"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "validation", err: &ErrValidation{Field: "text", Message: "required"}, want: http.StatusBadRequest},
		{name: "wrapped validation", err: fmt.Errorf("decode: %w", &ErrValidation{Field: "body"}), want: http.StatusBadRequest},
		{name: "empty resume", err: resume.ErrEmptyResume, want: http.StatusBadRequest},
		{name: "not pdf", err: resume.ErrNotPDF, want: http.StatusBadRequest},
		{name: "unknown filter", err: fmt.Errorf("%w: %q", courses.ErrUnknownFilter, "x"), want: http.StatusBadRequest},
		{name: "canceled", err: context.Canceled, want: statusClientClosedRequest},
		{name: "deadline", err: fmt.Errorf("failed to load student: %w", context.DeadlineExceeded), want: http.StatusGatewayTimeout},
		{name: "other", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrValidation_Error(t *testing.T) {
	err := &ErrValidation{Field: "filter", Message: "unknown value"}
	assert.Equal(t, "validation error: filter - unknown value", err.Error())
}
