package server

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/student-dashboard/internal/dashboard"
	"github.com/jonathan/student-dashboard/internal/types"
)

func courseIDs(list []types.Course) []string {
	ids := make([]string, len(list))
	for i, c := range list {
		ids[i] = c.ID
	}
	return ids
}

func suggestionIDs(list []types.ResumeSuggestion) []string {
	ids := make([]string, len(list))
	for i, s := range list {
		ids[i] = s.ID
	}
	return ids
}

func TestHandleGetStudent(t *testing.T) {
	s := newTestServer(t, testOptions{})

	rec := get(s, "/api/student")

	require.Equal(t, http.StatusOK, rec.Code)
	var student types.Student
	decodeJSON(t, rec, &student)
	assert.Equal(t, "Alex Johnson", student.Name)
	assert.Equal(t, 4, student.TotalCourses)
}

func TestHandleGetStudent_Failure(t *testing.T) {
	src := newFlakySource()
	src.studentErr = errors.New("backend down")
	s := newTestServer(t, testOptions{source: src})

	rec := get(s, "/api/student")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]string
	decodeJSON(t, rec, &body)
	assert.Equal(t, "Failed to load student profile.", body["error"])
}

func TestHandleListCourses(t *testing.T) {
	s := newTestServer(t, testOptions{})

	tests := []struct {
		name   string
		query  string
		status int
		want   []string
	}{
		{name: "default is all", query: "", status: http.StatusOK, want: []string{"course-001", "course-002", "course-003", "course-004"}},
		{name: "all", query: "?filter=all", status: http.StatusOK, want: []string{"course-001", "course-002", "course-003", "course-004"}},
		{name: "active", query: "?filter=active", status: http.StatusOK, want: []string{"course-001", "course-003"}},
		{name: "completed", query: "?filter=completed", status: http.StatusOK, want: []string{"course-002"}},
		{name: "upcoming", query: "?filter=upcoming", status: http.StatusOK, want: []string{"course-004"}},
		{name: "unknown", query: "?filter=archived", status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(s, "/api/courses"+tt.query)
			require.Equal(t, tt.status, rec.Code)
			if tt.status != http.StatusOK {
				var body map[string]string
				decodeJSON(t, rec, &body)
				assert.Contains(t, body["error"], "unknown course filter")
				return
			}
			var list []types.Course
			decodeJSON(t, rec, &list)
			assert.Equal(t, tt.want, courseIDs(list))
		})
	}
}

func TestHandleStatusCourseLists(t *testing.T) {
	s := newTestServer(t, testOptions{})

	var active, completed []types.Course
	decodeJSON(t, get(s, "/api/courses/active"), &active)
	decodeJSON(t, get(s, "/api/courses/completed"), &completed)

	assert.Equal(t, []string{"course-001", "course-003"}, courseIDs(active))
	assert.Equal(t, []string{"course-002"}, courseIDs(completed))
}

func TestHandleListCourses_Failure(t *testing.T) {
	src := newFlakySource()
	src.coursesErr = errors.New("backend down")
	s := newTestServer(t, testOptions{source: src})

	for _, path := range []string{"/api/courses", "/api/courses/active", "/api/courses/completed"} {
		rec := get(s, path)
		assert.Equal(t, http.StatusInternalServerError, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "Failed to load courses.", path)
	}
}

func TestHandleGetOverview(t *testing.T) {
	s := newTestServer(t, testOptions{})

	rec := get(s, "/api/overview")

	require.Equal(t, http.StatusOK, rec.Code)
	var overview dashboard.Overview
	decodeJSON(t, rec, &overview)
	assert.Equal(t, "Alex Johnson", overview.Student.Name)
	require.Len(t, overview.Stats, 4)
	assert.Equal(t, "25%", overview.Stats[3].Value)
	assert.Equal(t, []string{"course-001", "course-003"}, courseIDs(overview.ActiveCourses))
	assert.Equal(t, []string{"course-002"}, courseIDs(overview.RecentlyCompleted))
}

func TestHandleGetOverview_Failure(t *testing.T) {
	src := newFlakySource()
	src.coursesErr = errors.New("backend down")
	s := newTestServer(t, testOptions{source: src})

	rec := get(s, "/api/overview")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to load dashboard.")
}

func TestHandleAnalyzeResume(t *testing.T) {
	s := newTestServer(t, testOptions{})

	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "no keywords", text: "Worked on things", want: []string{"1", "2", "3", "4", "extra-1", "extra-2"}},
		{name: "action verb only", text: "Developed X", want: []string{"1", "2", "3", "4", "extra-2"}},
		{name: "metric only", text: "Increased revenue by 20%", want: []string{"1", "2", "3", "4", "extra-1"}},
		{name: "both", text: "Implemented caching, cut latency 40%", want: []string{"1", "2", "3", "4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(s, "/api/resume/analyze", `{"text":"`+tt.text+`"}`)
			require.Equal(t, http.StatusOK, rec.Code)

			var resp types.AnalyzeResumeResponse
			decodeJSON(t, rec, &resp)
			assert.Equal(t, tt.want, suggestionIDs(resp.Suggestions))
		})
	}
}

func TestHandleAnalyzeResume_BadInput(t *testing.T) {
	s := newTestServer(t, testOptions{})

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "blank", body: `{"text":"   \n\t"}`, wantErr: "Please enter resume text or upload a file"},
		{name: "missing", body: `{}`, wantErr: "Please enter resume text or upload a file"},
		{name: "malformed", body: `{"text":`, wantErr: "Invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(s, "/api/resume/analyze", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var body map[string]string
			decodeJSON(t, rec, &body)
			assert.Contains(t, body["error"], tt.wantErr)
		})
	}
}

func TestHandleAnalyzeResume_Failure(t *testing.T) {
	src := newFlakySource()
	src.suggestionsErr = errors.New("model offline")
	s := newTestServer(t, testOptions{source: src})

	rec := postJSON(s, "/api/resume/analyze", `{"text":"Developed X"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]string
	decodeJSON(t, rec, &body)
	assert.Equal(t, "Error analyzing resume. Please try again.", body["error"])
}

func TestHandleAnalyzeResumeStream(t *testing.T) {
	s := newTestServer(t, testOptions{})

	rec := postJSON(s, "/api/resume/analyze/stream", `{"text":"Developed X"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	statusAt := strings.Index(body, "event: status\ndata: {\"status\":\"analyzing\"}")
	suggestionsAt := strings.Index(body, "event: suggestions\n")
	completeAt := strings.Index(body, "event: complete\n")
	require.NotEqual(t, -1, statusAt)
	require.NotEqual(t, -1, suggestionsAt)
	require.NotEqual(t, -1, completeAt)
	assert.Less(t, statusAt, suggestionsAt)
	assert.Less(t, suggestionsAt, completeAt)
	assert.Contains(t, body, `"id":"extra-2"`)
	assert.NotContains(t, body, `"id":"extra-1"`)
	assert.Contains(t, body, `"count":5`)
}

func TestHandleAnalyzeResumeStream_Errors(t *testing.T) {
	t.Run("blank text is rejected before streaming", func(t *testing.T) {
		s := newTestServer(t, testOptions{})
		rec := postJSON(s, "/api/resume/analyze/stream", `{"text":" "}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	})

	t.Run("analysis failure becomes an error event", func(t *testing.T) {
		src := newFlakySource()
		src.suggestionsErr = errors.New("model offline")
		s := newTestServer(t, testOptions{source: src})

		rec := postJSON(s, "/api/resume/analyze/stream", `{"text":"Developed X"}`)

		body := rec.Body.String()
		assert.Contains(t, body, "event: status\n")
		assert.Contains(t, body, "event: error\ndata: {\"error\":\"Error analyzing resume. Please try again.\"}")
		assert.NotContains(t, body, "event: complete")
	})
}

func TestHandleUploadResume(t *testing.T) {
	tests := []struct {
		name     string
		file     *uploadFile
		wantCode int
		wantText string
	}{
		{
			name:     "declared pdf",
			file:     &uploadFile{field: "file", name: "cv.pdf", contentType: "application/pdf", content: pdfContent},
			wantCode: http.StatusOK,
			wantText: "PDF uploaded: cv.pdf",
		},
		{
			name:     "sniffed pdf",
			file:     &uploadFile{field: "file", name: "resume", contentType: "application/octet-stream", content: pdfContent},
			wantCode: http.StatusOK,
			wantText: "PDF uploaded: resume",
		},
		{
			name:     "plain text",
			file:     &uploadFile{field: "file", name: "cv.txt", contentType: "text/plain", content: []byte("hello")},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "pdf name but text content",
			file:     &uploadFile{field: "file", name: "cv.pdf", contentType: "application/octet-stream", content: []byte("hello")},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "no file",
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, testOptions{})
			rec := serve(s, multipartRequest(t, "/api/resume/upload", nil, tt.file))

			require.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusOK {
				var resp types.UploadResponse
				decodeJSON(t, rec, &resp)
				assert.Equal(t, tt.file.name, resp.FileName)
				assert.Equal(t, tt.wantText, resp.Text)
				return
			}
			var body map[string]string
			decodeJSON(t, rec, &body)
			assert.Equal(t, "Please upload a PDF file", body["error"])
		})
	}
}

func TestHandleUploadResume_NotMultipart(t *testing.T) {
	s := newTestServer(t, testOptions{})

	rec := postJSON(s, "/api/resume/upload", `{"file":"cv.pdf"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid multipart form")
}
