//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// CourseStatus tags where a course sits in the student's timeline.
type CourseStatus string

// Course statuses.
const (
	StatusActive    CourseStatus = "active"
	StatusCompleted CourseStatus = "completed"
	StatusUpcoming  CourseStatus = "upcoming"
)

// Valid reports whether s is one of the known statuses.
func (s CourseStatus) Valid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusUpcoming:
		return true
	default:
		return false
	}
}

// Course represents a single enrolled course
type Course struct {
	ID               string       `json:"id" validate:"required"`
	Title            string       `json:"title" validate:"required"`
	Instructor       string       `json:"instructor"`
	Progress         int          `json:"progress" validate:"gte=0,lte=100"`
	TotalLessons     int          `json:"totalLessons" validate:"gte=0"`
	CompletedLessons int          `json:"completedLessons" validate:"gte=0,ltefield=TotalLessons"`
	Category         string       `json:"category"`
	Image            string       `json:"image"`
	Description      string       `json:"description"`
	StartDate        string       `json:"startDate"`
	EndDate          string       `json:"endDate"`
	Status           CourseStatus `json:"status" validate:"required,oneof=active completed upcoming"`
}

// validate is shared; validator.Validate caches struct metadata and is safe for concurrent use.
var validate = validator.New()

// Validate checks field ranges using the validator.
func (c *Course) Validate() error {
	return validate.Struct(c)
}

// CheckConsistency reports a mismatch between status and progress.
// A completed course must be at 100%, an upcoming course must not have started.
func (c *Course) CheckConsistency() error {
	switch c.Status {
	case StatusCompleted:
		if c.Progress != 100 {
			return fmt.Errorf("course %s: completed with progress %d%%", c.ID, c.Progress)
		}
	case StatusUpcoming:
		if c.Progress != 0 || c.CompletedLessons != 0 {
			return fmt.Errorf("course %s: upcoming with progress %d%% (%d lessons)", c.ID, c.Progress, c.CompletedLessons)
		}
	case StatusActive:
		if c.Progress >= 100 {
			return fmt.Errorf("course %s: active with progress %d%%", c.ID, c.Progress)
		}
	default:
		return fmt.Errorf("course %s: unknown status %q", c.ID, c.Status)
	}
	return nil
}
