package server

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/jonathan/student-dashboard/internal/courses"
	"github.com/jonathan/student-dashboard/internal/resume"
	"github.com/jonathan/student-dashboard/internal/types"
)

const (
	maxJSONBodyBytes = 1 << 20
	maxUploadBytes   = 10 << 20
	// sniffBytes is how much of an upload is read for content detection.
	sniffBytes = 512
)

// Messages shown when a data fetch fails.
const (
	msgStudentFailed   = "Failed to load student profile."
	msgCoursesFailed   = "Failed to load courses."
	msgDashboardFailed = "Failed to load dashboard."
	msgAnalyzeFailed   = "Error analyzing resume. Please try again."
)

// handleGetStudent returns the student profile.
func (s *Server) handleGetStudent(w http.ResponseWriter, r *http.Request) {
	student, err := s.service.GetStudent(r.Context())
	if err != nil {
		s.serviceError(w, r, msgStudentFailed, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, student)
}

// handleListCourses returns the courses visible under ?filter=, defaulting to all.
func (s *Server) handleListCourses(w http.ResponseWriter, r *http.Request) {
	filter, err := courses.ParseFilter(r.URL.Query().Get("filter"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	all, err := s.service.GetCourses(r.Context())
	if err != nil {
		s.serviceError(w, r, msgCoursesFailed, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, courses.Apply(all, filter))
}

func (s *Server) handleListActiveCourses(w http.ResponseWriter, r *http.Request) {
	active, err := s.service.GetActiveCourses(r.Context())
	if err != nil {
		s.serviceError(w, r, msgCoursesFailed, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, active)
}

func (s *Server) handleListCompletedCourses(w http.ResponseWriter, r *http.Request) {
	completed, err := s.service.GetCompletedCourses(r.Context())
	if err != nil {
		s.serviceError(w, r, msgCoursesFailed, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, completed)
}

// handleGetOverview returns everything the overview page shows in one payload.
func (s *Server) handleGetOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := s.service.LoadOverview(r.Context())
	if err != nil {
		s.serviceError(w, r, msgDashboardFailed, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, overview)
}

// handleAnalyzeResume runs the analysis and returns all suggestions at once.
func (s *Server) handleAnalyzeResume(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeAnalyzeRequest(w, r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), errorMessage(err))
		return
	}

	suggestions, err := s.service.AnalyzeResume(r.Context(), req.Text)
	if err != nil {
		s.serviceError(w, r, msgAnalyzeFailed, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, types.AnalyzeResumeResponse{Suggestions: suggestions})
}

// handleAnalyzeResumeStream runs the analysis and reports progress via SSE.
// Input errors are returned as plain JSON before the stream opens.
func (s *Server) handleAnalyzeResumeStream(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeAnalyzeRequest(w, r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), errorMessage(err))
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := sse.WriteEvent("status", map[string]string{"status": "analyzing"}); err != nil {
		s.logger.Debug("failed to write SSE event", "error", err)
		return
	}

	suggestions, err := s.service.AnalyzeResume(r.Context(), req.Text)
	if err != nil {
		s.logServiceError(r, err)
		sse.WriteError(msgAnalyzeFailed)
		return
	}

	if err := sse.WriteEvent("suggestions", suggestions); err != nil {
		s.logger.Debug("failed to write SSE event", "error", err)
		return
	}
	sse.WriteComplete(len(suggestions))
}

// handleUploadResume accepts a PDF and returns the placeholder text that stands in for it.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	upload, err := acceptFormFile(r, "file")
	if errors.Is(err, http.ErrMissingFile) {
		err = resume.ErrNotPDF
	}
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), errorMessage(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, types.UploadResponse{FileName: upload.FileName, Text: upload.Text})
}

// decodeAnalyzeRequest reads and validates an analysis request body.
func (s *Server) decodeAnalyzeRequest(w http.ResponseWriter, r *http.Request) (*types.AnalyzeResumeRequest, error) {
	var req types.AnalyzeResumeRequest
	body := http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return nil, &ErrValidation{Field: "body", Message: "Invalid request body: " + err.Error()}
	}
	if err := req.Validate(); err != nil {
		return nil, resume.ErrEmptyResume
	}
	if err := resume.ValidateText(req.Text); err != nil {
		return nil, err
	}
	return &req, nil
}

// acceptFormFile runs the named multipart file through resume.AcceptUpload.
// It returns http.ErrMissingFile when the form has no such file.
func acceptFormFile(r *http.Request, field string) (resume.Upload, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return resume.Upload{}, err
	}
	defer file.Close()

	head, err := readHead(file)
	if err != nil {
		return resume.Upload{}, err
	}
	return resume.AcceptUpload(header.Filename, header.Header.Get("Content-Type"), head)
}

func readHead(file multipart.File) ([]byte, error) {
	head := make([]byte, sniffBytes)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, err
	}
	return head[:n], nil
}

// errorMessage picks the client-facing text for an input error.
func errorMessage(err error) string {
	var verr *ErrValidation
	if errors.As(err, &verr) {
		return verr.Message
	}
	return err.Error()
}
