package courses

import "github.com/jonathan/student-dashboard/internal/types"

// StatusLabel is the badge text for a course status.
func StatusLabel(status types.CourseStatus) string {
	switch status {
	case types.StatusActive:
		return "In Progress"
	case types.StatusCompleted:
		return "Completed"
	case types.StatusUpcoming:
		return "Upcoming"
	default:
		return "Unknown"
	}
}

// ActionLabel is the call-to-action on a course card.
func ActionLabel(status types.CourseStatus) string {
	switch status {
	case types.StatusActive:
		return "Continue Learning"
	case types.StatusCompleted:
		return "Review Course"
	default:
		return "View Details"
	}
}
