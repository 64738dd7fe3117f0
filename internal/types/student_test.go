//nolint:revive // types is a standard Go package name pattern
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStudent_Validate(t *testing.T) {
	base := Student{
		ID:               "student-1",
		Name:             "Jordan Lee",
		Email:            "jordan@example.com",
		TotalCourses:     4,
		CompletedCourses: 1,
		CurrentCourses:   2,
	}

	assert.NoError(t, base.Validate())

	bad := base
	bad.Email = "not-an-email"
	assert.Error(t, bad.Validate())

	bad = base
	bad.CompletedCourses = 5
	assert.Error(t, bad.Validate(), "completed cannot exceed total")

	bad = base
	bad.Name = ""
	assert.Error(t, bad.Validate())
}

func TestResumeSuggestion_Validate(t *testing.T) {
	s := ResumeSuggestion{ID: "1", Type: SuggestionFormatting, Title: "Use bullets", Priority: PriorityMedium}
	assert.NoError(t, s.Validate())

	s.Type = "spelling"
	assert.Error(t, s.Validate())

	s.Type = SuggestionContent
	s.Priority = "urgent"
	assert.Error(t, s.Validate())
}

func TestAnalyzeResumeRequest_Validate(t *testing.T) {
	assert.NoError(t, (&AnalyzeResumeRequest{Text: "Developed things"}).Validate())
	assert.Error(t, (&AnalyzeResumeRequest{}).Validate())
}
