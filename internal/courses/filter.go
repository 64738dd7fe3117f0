// Package courses filters and summarises the student's course list.
package courses

import (
	"errors"
	"fmt"
	"math"

	"github.com/jonathan/student-dashboard/internal/types"
)

// Filter is the course-list view filter.
type Filter string

// View filters. FilterAll matches every status; the others match one status exactly.
const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
	FilterUpcoming  Filter = "upcoming"
)

// ErrUnknownFilter is returned by ParseFilter for values outside the known set.
var ErrUnknownFilter = errors.New("unknown course filter")

// FilterOption is a filter button on the courses page.
type FilterOption struct {
	Key   Filter
	Label string
}

// FilterOptions lists the filters in display order.
var FilterOptions = []FilterOption{
	{Key: FilterAll, Label: "All Courses"},
	{Key: FilterActive, Label: "In Progress"},
	{Key: FilterCompleted, Label: "Completed"},
	{Key: FilterUpcoming, Label: "Upcoming"},
}

// ParseFilter parses a query value. The empty string selects FilterAll.
func ParseFilter(s string) (Filter, error) {
	switch f := Filter(s); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterActive, FilterCompleted, FilterUpcoming:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFilter, s)
	}
}

// ByStatus returns the courses whose status equals status, in original order.
func ByStatus(courses []types.Course, status types.CourseStatus) []types.Course {
	out := make([]types.Course, 0, len(courses))
	for _, c := range courses {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out
}

// Apply returns the courses visible under f. FilterAll returns a copy of the full list.
func Apply(courses []types.Course, f Filter) []types.Course {
	if f == FilterAll || f == "" {
		return append([]types.Course{}, courses...)
	}
	return ByStatus(courses, types.CourseStatus(f))
}

// RecentlyCompleted returns at most n completed courses in original order.
func RecentlyCompleted(courses []types.Course, n int) []types.Course {
	completed := ByStatus(courses, types.StatusCompleted)
	if len(completed) > n {
		completed = completed[:n]
	}
	return completed
}

// Stat is one overview card.
type Stat struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Stats builds the overview cards from the student's counters.
func Stats(s types.Student) []Stat {
	return []Stat{
		{Name: "Total Courses", Value: fmt.Sprintf("%d", s.TotalCourses)},
		{Name: "Completed", Value: fmt.Sprintf("%d", s.CompletedCourses)},
		{Name: "In Progress", Value: fmt.Sprintf("%d", s.CurrentCourses)},
		{Name: "Completion", Value: fmt.Sprintf("%d%%", CompletionPercent(s))},
	}
}

// CompletionPercent is completed/total rounded to the nearest percent, or 0 with no courses.
func CompletionPercent(s types.Student) int {
	if s.TotalCourses <= 0 {
		return 0
	}
	return int(math.Round(float64(s.CompletedCourses) / float64(s.TotalCourses) * 100))
}
