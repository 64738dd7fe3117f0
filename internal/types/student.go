// Package types provides type definitions for structured data used throughout the student dashboard.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Student is the profile snapshot shown in the topbar and overview.
type Student struct {
	ID               string `json:"id" validate:"required"`
	Name             string `json:"name" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Avatar           string `json:"avatar"`
	TotalCourses     int    `json:"totalCourses" validate:"gte=0"`
	CompletedCourses int    `json:"completedCourses" validate:"gte=0,ltefield=TotalCourses"`
	CurrentCourses   int    `json:"currentCourses" validate:"gte=0,ltefield=TotalCourses"`
}

// Validate checks the aggregate counters using the validator.
func (s *Student) Validate() error {
	return validate.Struct(s)
}
