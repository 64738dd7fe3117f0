//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCourse() Course {
	return Course{
		ID:               "course-1",
		Title:            "Go Fundamentals",
		Instructor:       "Ada Lovelace",
		Progress:         40,
		TotalLessons:     10,
		CompletedLessons: 4,
		Status:           StatusActive,
	}
}

func TestCourseStatus_Valid(t *testing.T) {
	assert.True(t, StatusActive.Valid())
	assert.True(t, StatusCompleted.Valid())
	assert.True(t, StatusUpcoming.Valid())
	assert.False(t, CourseStatus("archived").Valid())
	assert.False(t, CourseStatus("").Valid())
}

func TestCourse_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Course)
		wantErr bool
	}{
		{name: "valid", mutate: func(_ *Course) {}},
		{name: "missing id", mutate: func(c *Course) { c.ID = "" }, wantErr: true},
		{name: "progress over 100", mutate: func(c *Course) { c.Progress = 101 }, wantErr: true},
		{name: "negative progress", mutate: func(c *Course) { c.Progress = -1 }, wantErr: true},
		{name: "more completed than total", mutate: func(c *Course) { c.CompletedLessons = 11 }, wantErr: true},
		{name: "unknown status", mutate: func(c *Course) { c.Status = "archived" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCourse()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCourse_CheckConsistency(t *testing.T) {
	tests := []struct {
		name    string
		course  Course
		wantErr bool
	}{
		{name: "active in progress", course: Course{ID: "a", Status: StatusActive, Progress: 50}},
		{name: "active at 100", course: Course{ID: "b", Status: StatusActive, Progress: 100}, wantErr: true},
		{name: "completed at 100", course: Course{ID: "c", Status: StatusCompleted, Progress: 100}},
		{name: "completed below 100", course: Course{ID: "d", Status: StatusCompleted, Progress: 90}, wantErr: true},
		{name: "upcoming untouched", course: Course{ID: "e", Status: StatusUpcoming}},
		{name: "upcoming with lessons", course: Course{ID: "f", Status: StatusUpcoming, CompletedLessons: 1}, wantErr: true},
		{name: "unknown status", course: Course{ID: "g", Status: "paused"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.course.CheckConsistency()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.course.ID)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCourse_JSONFieldNames(t *testing.T) {
	data := `{"id":"1","title":"T","instructor":"I","progress":75,"totalLessons":20,
		"completedLessons":15,"category":"Web","image":"img.png","description":"D",
		"startDate":"2024-01-15","endDate":"2024-04-15","status":"active"}`

	var c Course
	require.NoError(t, json.Unmarshal([]byte(data), &c))
	assert.Equal(t, 75, c.Progress)
	assert.Equal(t, 20, c.TotalLessons)
	assert.Equal(t, 15, c.CompletedLessons)
	assert.Equal(t, "2024-01-15", c.StartDate)
	assert.Equal(t, StatusActive, c.Status)
}
