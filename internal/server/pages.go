package server

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/jonathan/student-dashboard/internal/courses"
	"github.com/jonathan/student-dashboard/internal/types"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page template names; each is parsed together with layout.html.
const (
	pageOverview    = "overview"
	pageCourses     = "courses"
	pageResume      = "resume"
	pagePlaceholder = "placeholder"
)

var pageNames = []string{pageOverview, pageCourses, pageResume, pagePlaceholder}

// Sidebar entries.
const (
	navDashboard = "dashboard"
	navCourses   = "courses"
	navResume    = "resume"
	navProfile   = "profile"
	navSettings  = "settings"
)

type navItem struct {
	Key   string
	Label string
	Path  string
}

var navigation = []navItem{
	{Key: navDashboard, Label: "Dashboard", Path: "/"},
	{Key: navCourses, Label: "My Courses", Path: "/courses"},
	{Key: navResume, Label: "Resume Tool", Path: "/resume"},
	{Key: navProfile, Label: "Profile", Path: "/profile"},
	{Key: navSettings, Label: "Settings", Path: "/settings"},
}

// navLink is a rendered sidebar entry.
type navLink struct {
	Label  string
	Href   string
	Active bool
}

// layoutData is the root value handed to every page template.
type layoutData struct {
	Title        string
	BasePath     string
	Nav          []navLink
	Student      *types.Student
	StudentError string
	Page         any
}

type pageRenderer struct {
	pages map[string]*template.Template
}

func newPageRenderer() (*pageRenderer, error) {
	funcs := template.FuncMap{
		"statusLabel":   courses.StatusLabel,
		"actionLabel":   courses.ActionLabel,
		"statusClass":   statusClass,
		"priorityClass": priorityClass,
		"displayDate":   displayDate,
	}

	p := &pageRenderer{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		p.pages[name] = t
	}
	return p, nil
}

// render executes a page into memory first so a template error never leaves a half-written response.
func (p *pageRenderer) render(name string, data layoutData) ([]byte, error) {
	t, ok := p.pages[name]
	if !ok {
		return nil, fmt.Errorf("unknown page %q", name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func buildNav(basePath, active string) []navLink {
	links := make([]navLink, len(navigation))
	for i, item := range navigation {
		links[i] = navLink{
			Label:  item.Label,
			Href:   basePath + item.Path,
			Active: item.Key == active,
		}
	}
	return links
}

func statusClass(status types.CourseStatus) string {
	switch status {
	case types.StatusActive:
		return "badge-active"
	case types.StatusCompleted:
		return "badge-completed"
	case types.StatusUpcoming:
		return "badge-upcoming"
	default:
		return "badge-unknown"
	}
}

func priorityClass(priority types.Priority) string {
	switch priority {
	case types.PriorityHigh, types.PriorityMedium, types.PriorityLow:
		return "priority-" + string(priority)
	default:
		return "priority-unknown"
	}
}

// displayDate renders an ISO date as M/D/YYYY, leaving anything unparseable untouched.
func displayDate(iso string) string {
	t, err := time.Parse(time.DateOnly, iso)
	if err != nil {
		return iso
	}
	return t.Format("1/2/2006")
}

// studentResult is the outcome of the topbar's profile fetch.
type studentResult struct {
	student *types.Student
	err     error
}

// fetchStudent starts the topbar's profile fetch so it overlaps with the page's own loads.
func (s *Server) fetchStudent(r *http.Request) <-chan studentResult {
	ch := make(chan studentResult, 1)
	go func() {
		student, err := s.service.GetStudent(r.Context())
		ch <- studentResult{student: student, err: err}
	}()
	return ch
}

// renderPage waits for the topbar profile and writes the page with status.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int, name, active, title string, pending <-chan studentResult, page any) {
	data := layoutData{
		Title:    title,
		BasePath: s.basePath,
		Nav:      buildNav(s.basePath, active),
		Page:     page,
	}

	res := <-pending
	if res.err != nil {
		s.logServiceError(r, res.err)
		data.StudentError = msgStudentFailed
	} else {
		data.Student = res.student
	}

	body, err := s.pages.render(name, data)
	if err != nil {
		s.logger.Error("failed to render page", "page", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		s.logger.Debug("failed to write page", "page", name, "error", err)
	}
}
