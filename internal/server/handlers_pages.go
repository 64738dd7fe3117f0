package server

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/jonathan/student-dashboard/internal/courses"
	"github.com/jonathan/student-dashboard/internal/dashboard"
	"github.com/jonathan/student-dashboard/internal/resume"
	"github.com/jonathan/student-dashboard/internal/types"
)

type overviewPage struct {
	Overview *dashboard.Overview
	Error    string
}

type filterButton struct {
	Label  string
	Href   string
	Active bool
}

type coursesPage struct {
	Filters []filterButton
	Courses []types.Course
	Error   string
}

type writingTip struct {
	Title string
	Body  string
}

var writingTips = []writingTip{
	{Title: "Use Action Verbs", Body: `Start bullet points with strong action verbs like "Developed", "Implemented", "Led", "Managed".`},
	{Title: "Quantify Achievements", Body: "Include specific numbers, percentages, and metrics to demonstrate your impact."},
	{Title: "Tailor to Job", Body: "Customize your resume for each position by highlighting relevant skills and experiences."},
	{Title: "Keep it Concise", Body: "Limit your resume to 1-2 pages and use clear, concise language throughout."},
}

type resumePage struct {
	Text        string
	FileName    string
	Warning     string
	Error       string
	Suggestions []types.ResumeSuggestion
	Tips        []writingTip
}

type placeholderPage struct {
	Heading string
	Message string
}

// handleOverviewPage renders the welcome, stats and course summaries.
func (s *Server) handleOverviewPage(w http.ResponseWriter, r *http.Request) {
	pending := s.fetchStudent(r)

	page := overviewPage{}
	overview, err := s.service.LoadOverview(r.Context())
	if err != nil {
		s.logServiceError(r, err)
		page.Error = msgDashboardFailed
	} else {
		page.Overview = overview
	}

	s.renderPage(w, r, http.StatusOK, pageOverview, navDashboard, "Dashboard", pending, page)
}

// handleCoursesPage renders the filtered course grid.
func (s *Server) handleCoursesPage(w http.ResponseWriter, r *http.Request) {
	pending := s.fetchStudent(r)

	filter, err := courses.ParseFilter(r.URL.Query().Get("filter"))
	if err != nil {
		page := coursesPage{Filters: s.filterButtons(courses.FilterAll), Error: "Unknown course filter."}
		s.renderPage(w, r, http.StatusBadRequest, pageCourses, navCourses, "My Courses", pending, page)
		return
	}

	page := coursesPage{Filters: s.filterButtons(filter)}
	all, err := s.service.GetCourses(r.Context())
	if err != nil {
		s.logServiceError(r, err)
		page.Error = msgCoursesFailed
	} else {
		page.Courses = courses.Apply(all, filter)
	}

	s.renderPage(w, r, http.StatusOK, pageCourses, navCourses, "My Courses", pending, page)
}

func (s *Server) filterButtons(active courses.Filter) []filterButton {
	buttons := make([]filterButton, len(courses.FilterOptions))
	for i, opt := range courses.FilterOptions {
		buttons[i] = filterButton{
			Label:  opt.Label,
			Href:   s.basePath + "/courses?filter=" + url.QueryEscape(string(opt.Key)),
			Active: opt.Key == active,
		}
	}
	return buttons
}

// handleResumePage renders the empty resume form.
func (s *Server) handleResumePage(w http.ResponseWriter, r *http.Request) {
	pending := s.fetchStudent(r)
	s.renderPage(w, r, http.StatusOK, pageResume, navResume, "Resume Tool", pending, resumePage{Tips: writingTips})
}

// handleResumeSubmit takes the form post: an optional PDF upload, then the analysis.
// A rejected upload or blank text re-renders the form unchanged with a warning.
func (s *Server) handleResumeSubmit(w http.ResponseWriter, r *http.Request) {
	pending := s.fetchStudent(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		page := resumePage{Warning: "Could not read the submitted form.", Tips: writingTips}
		s.renderPage(w, r, http.StatusBadRequest, pageResume, navResume, "Resume Tool", pending, page)
		return
	}

	page := resumePage{
		Text:     r.FormValue("text"),
		FileName: r.FormValue("file_name"),
		Tips:     writingTips,
	}

	upload, err := acceptFormFile(r, "file")
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	case err != nil:
		page.Warning = resume.ErrNotPDF.Error()
		s.renderPage(w, r, http.StatusBadRequest, pageResume, navResume, "Resume Tool", pending, page)
		return
	default:
		page.Text = upload.Text
		page.FileName = upload.FileName
	}

	if err := resume.ValidateText(page.Text); err != nil {
		page.Warning = err.Error()
		s.renderPage(w, r, http.StatusBadRequest, pageResume, navResume, "Resume Tool", pending, page)
		return
	}

	status := http.StatusOK
	suggestions, err := s.service.AnalyzeResume(r.Context(), page.Text)
	if err != nil {
		s.logServiceError(r, err)
		page.Error = msgAnalyzeFailed
		status = http.StatusInternalServerError
	} else {
		page.Suggestions = suggestions
	}

	s.renderPage(w, r, status, pageResume, navResume, "Resume Tool", pending, page)
}

func (s *Server) handlePlaceholderPage(active, heading, message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pending := s.fetchStudent(r)
		page := placeholderPage{Heading: heading, Message: message}
		s.renderPage(w, r, http.StatusOK, pagePlaceholder, active, heading, pending, page)
	}
}
