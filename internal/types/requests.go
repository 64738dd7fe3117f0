//nolint:revive // types is a standard Go package name pattern
package types

// AnalyzeResumeRequest is the body of POST /api/resume/analyze.
type AnalyzeResumeRequest struct {
	Text string `json:"text" validate:"required"`
}

// AnalyzeResumeResponse wraps the suggestions returned by analysis.
type AnalyzeResumeResponse struct {
	Suggestions []ResumeSuggestion `json:"suggestions"`
}

// UploadResponse describes an accepted resume upload.
type UploadResponse struct {
	FileName string `json:"file_name"`
	Text     string `json:"text"`
}

// Validate validates the AnalyzeResumeRequest using the validator.
// Whitespace-only text passes here; resume.ValidateText rejects it.
func (r *AnalyzeResumeRequest) Validate() error {
	return validate.Struct(r)
}
