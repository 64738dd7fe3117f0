// Package resume provides the keyword heuristic behind resume suggestions and the input checks run before it.
package resume

import "errors"

// Input validation failures. The messages are shown to the user as-is.
var (
	ErrEmptyResume = errors.New("Please enter resume text or upload a file") //nolint:staticcheck // user-facing message
	ErrNotPDF      = errors.New("Please upload a PDF file")                  //nolint:staticcheck // user-facing message
)

// IsInputError reports whether err is a caller-side validation failure.
func IsInputError(err error) bool {
	return errors.Is(err, ErrEmptyResume) || errors.Is(err, ErrNotPDF)
}
