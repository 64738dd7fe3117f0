// Package observability provides formatted terminal output for the dashboard CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/student-dashboard/internal/courses"
	"github.com/jonathan/student-dashboard/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxCoursesToShow caps the courses listed in one box
	maxCoursesToShow = 10
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		line = truncate(line, boxWidth-4)
		pad := boxWidth - 4 - utf8.RuneCountInString(line)
		fmt.Fprintf(p.out, "│ %s%s │\n", line, strings.Repeat(" ", pad))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintStudent outputs the profile and the overview statistics.
func (p *Printer) PrintStudent(student *types.Student) {
	if student == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Name:   %s\n", student.Name)
	fmt.Fprintf(&sb, "Email:  %s\n", student.Email)
	sb.WriteString("\n")
	for _, stat := range courses.Stats(*student) {
		fmt.Fprintf(&sb, "%-14s %s\n", stat.Name+":", stat.Value)
	}

	p.printBox("STUDENT PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCourses outputs a course list under the given filter heading.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintCourses(filter courses.Filter, list []types.Course) {
	title := fmt.Sprintf("COURSES (%s)", strings.ToUpper(string(filter)))
	if len(list) == 0 {
		p.printBox(title, "No courses match your current filter.")
		return
	}

	var sb strings.Builder
	count := min(len(list), maxCoursesToShow)
	for i := 0; i < count; i++ {
		c := list[i]
		fmt.Fprintf(&sb, "%s  [%s]\n", c.Title, courses.StatusLabel(c.Status))
		fmt.Fprintf(&sb, "  %s · %s\n", c.Instructor, c.Category)
		switch c.Status {
		case types.StatusActive:
			fmt.Fprintf(&sb, "  %s %d%% (%d of %d lessons)\n",
				progressBar(c.Progress, 20), c.Progress, c.CompletedLessons, c.TotalLessons)
		case types.StatusCompleted:
			sb.WriteString("  ✓ Course completed successfully\n")
		case types.StatusUpcoming:
			fmt.Fprintf(&sb, "  Starts: %s\n", c.StartDate)
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(list) > maxCoursesToShow {
		fmt.Fprintf(&sb, "\n... and %d more courses", len(list)-maxCoursesToShow)
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs resume suggestions in the order given.
func (p *Printer) PrintSuggestions(suggestions []types.ResumeSuggestion) {
	if len(suggestions) == 0 {
		p.printBox("RESUME SUGGESTIONS", "No suggestions.")
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d suggestions:\n\n", len(suggestions))
	for i, s := range suggestions {
		fmt.Fprintf(&sb, "%s %s\n", priorityMarker(s.Priority), s.Title)
		fmt.Fprintf(&sb, "  %s priority · %s\n", s.Priority, s.Type)
		for _, line := range wrap(s.Description, boxWidth-8) {
			fmt.Fprintf(&sb, "  %s\n", line)
		}
		if i < len(suggestions)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RESUME SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

func priorityMarker(p types.Priority) string {
	switch p {
	case types.PriorityHigh:
		return "‼"
	case types.PriorityMedium:
		return "!"
	default:
		return "•"
	}
}

func progressBar(percent, width int) string {
	percent = max(0, min(percent, 100))
	filled := percent * width / 100
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

// wrap breaks text on spaces into lines of at most width runes.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if utf8.RuneCountInString(line)+1+utf8.RuneCountInString(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
