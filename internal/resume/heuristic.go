package resume

import (
	"strings"

	"github.com/jonathan/student-dashboard/internal/types"
)

// Suggestions appended when the corresponding keyword check fails.
var (
	actionVerbSuggestion = types.ResumeSuggestion{
		ID:          "extra-1",
		Type:        types.SuggestionActionVerb,
		Title:       "Include More Action Verbs",
		Description: "Your resume could benefit from more dynamic action verbs like 'Developed', 'Implemented', or 'Led'.",
		Priority:    types.PriorityHigh,
	}

	achievementSuggestion = types.ResumeSuggestion{
		ID:          "extra-2",
		Type:        types.SuggestionAchievement,
		Title:       "Add Quantifiable Results",
		Description: "Include specific percentages or metrics to strengthen your achievements.",
		Priority:    types.PriorityHigh,
	}
)

// Suggest returns baseline followed by the suggestions triggered by text.
// The action-verb check is case-insensitive; the achievement check is case-sensitive.
// baseline is not modified.
func Suggest(baseline []types.ResumeSuggestion, text string) []types.ResumeSuggestion {
	out := make([]types.ResumeSuggestion, 0, len(baseline)+2)
	out = append(out, baseline...)

	if NeedsActionVerbs(text) {
		out = append(out, actionVerbSuggestion)
	}
	if NeedsQuantifiedResults(text) {
		out = append(out, achievementSuggestion)
	}

	return out
}

// NeedsActionVerbs reports whether text lacks both "developed" and "implemented", ignoring case.
func NeedsActionVerbs(text string) bool {
	lower := strings.ToLower(text)
	return !strings.Contains(lower, "developed") && !strings.Contains(lower, "implemented")
}

// NeedsQuantifiedResults reports whether text lacks both "%" and the exact word "increased".
func NeedsQuantifiedResults(text string) bool {
	return !strings.Contains(text, "%") && !strings.Contains(text, "increased")
}
