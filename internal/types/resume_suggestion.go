//nolint:revive // types is a standard Go package name pattern
package types

// SuggestionType classifies a resume suggestion.
type SuggestionType string

// Suggestion types.
const (
	SuggestionAchievement SuggestionType = "achievement"
	SuggestionActionVerb  SuggestionType = "action-verb"
	SuggestionFormatting  SuggestionType = "formatting"
	SuggestionContent     SuggestionType = "content"
)

// Priority ranks how urgent a suggestion is.
type Priority string

// Priorities, highest first.
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ResumeSuggestion is one improvement hint produced by resume analysis
type ResumeSuggestion struct {
	ID          string         `json:"id" validate:"required"`
	Type        SuggestionType `json:"type" validate:"required,oneof=achievement action-verb formatting content"`
	Title       string         `json:"title" validate:"required"`
	Description string         `json:"description"`
	Priority    Priority       `json:"priority" validate:"required,oneof=high medium low"`
}

// Validate checks the tags using the validator.
func (s *ResumeSuggestion) Validate() error {
	return validate.Struct(s)
}
