// Package fixtures provides the static student, course and suggestion datasets behind the dashboard.
// The default datasets are embedded at compile time; a directory can replace them for local demos.
package fixtures

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sync"

	"github.com/jonathan/student-dashboard/internal/schemas"
	"github.com/jonathan/student-dashboard/internal/types"
)

//go:embed data/*.json
var embedded embed.FS

// Fixture file names.
const (
	StudentFile     = "student.json"
	CoursesFile     = "courses.json"
	SuggestionsFile = "analyze-resume.json"
)

// Store reads fixture files from a filesystem and caches the parsed datasets.
// Returned slices are copies; the cache is never exposed to callers.
type Store struct {
	fsys fs.FS

	mu          sync.RWMutex
	student     *types.Student
	courses     []types.Course
	suggestions []types.ResumeSuggestion
}

// New creates a Store over fsys. Fixture files are expected at its root.
func New(fsys fs.FS) *Store {
	return &Store{fsys: fsys}
}

// Embedded returns a Store over the compiled-in datasets.
func Embedded() *Store {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		// data/ is part of the embed pattern, so this only fails on a broken build.
		panic(fmt.Sprintf("fixtures: embedded data missing: %v", err))
	}
	return New(sub)
}

// LoadStudent returns the fixture student.
func (s *Store) LoadStudent(_ context.Context) (*types.Student, error) {
	s.mu.RLock()
	cached := s.student
	s.mu.RUnlock()
	if cached != nil {
		student := *cached
		return &student, nil
	}

	var student types.Student
	if err := s.decode(StudentFile, schemas.Student, &student); err != nil {
		return nil, err
	}
	if err := student.Validate(); err != nil {
		return nil, fmt.Errorf("invalid student fixture: %w", err)
	}

	s.mu.Lock()
	s.student = &student
	s.mu.Unlock()

	out := student
	return &out, nil
}

// LoadCourses returns every fixture course in file order.
func (s *Store) LoadCourses(_ context.Context) ([]types.Course, error) {
	s.mu.RLock()
	cached := s.courses
	s.mu.RUnlock()
	if cached != nil {
		return append([]types.Course(nil), cached...), nil
	}

	var courses []types.Course
	if err := s.decode(CoursesFile, schemas.Courses, &courses); err != nil {
		return nil, err
	}
	for i := range courses {
		if err := courses[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid course fixture %d: %w", i, err)
		}
		if err := courses[i].CheckConsistency(); err != nil {
			return nil, fmt.Errorf("inconsistent course fixture: %w", err)
		}
	}
	if courses == nil {
		courses = []types.Course{}
	}

	s.mu.Lock()
	s.courses = courses
	s.mu.Unlock()

	return append([]types.Course(nil), courses...), nil
}

// LoadSuggestions returns the baseline resume suggestions in file order.
func (s *Store) LoadSuggestions(_ context.Context) ([]types.ResumeSuggestion, error) {
	s.mu.RLock()
	cached := s.suggestions
	s.mu.RUnlock()
	if cached != nil {
		return append([]types.ResumeSuggestion(nil), cached...), nil
	}

	var suggestions []types.ResumeSuggestion
	if err := s.decode(SuggestionsFile, schemas.Suggestions, &suggestions); err != nil {
		return nil, err
	}
	if suggestions == nil {
		suggestions = []types.ResumeSuggestion{}
	}

	s.mu.Lock()
	s.suggestions = suggestions
	s.mu.Unlock()

	return append([]types.ResumeSuggestion(nil), suggestions...), nil
}

// Preload parses all three datasets, returning the first failure.
func (s *Store) Preload(ctx context.Context) error {
	if _, err := s.LoadStudent(ctx); err != nil {
		return err
	}
	if _, err := s.LoadCourses(ctx); err != nil {
		return err
	}
	_, err := s.LoadSuggestions(ctx)
	return err
}

// ClearCache drops parsed datasets so the next load re-reads the files. Useful for testing.
func (s *Store) ClearCache() {
	s.mu.Lock()
	s.student = nil
	s.courses = nil
	s.suggestions = nil
	s.mu.Unlock()
}

// decode reads a fixture file, checks it against its schema and unmarshals it into v.
func (s *Store) decode(filename, schema string, v any) error {
	data, err := fs.ReadFile(s.fsys, filename)
	if err != nil {
		return fmt.Errorf("failed to read fixture file %s: %w", filename, err)
	}
	if err := schemas.Validate(schema, data); err != nil {
		return fmt.Errorf("fixture file %s: %w", filename, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse fixture file %s: %w", filename, err)
	}
	return nil
}
