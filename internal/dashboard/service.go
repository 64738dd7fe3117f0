// Package dashboard is the single access point through which pages, the API and the CLI obtain
// student data. Every operation waits a fixed artificial latency before answering.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/student-dashboard/internal/courses"
	"github.com/jonathan/student-dashboard/internal/resume"
	"github.com/jonathan/student-dashboard/internal/types"
)

// Default latencies.
const (
	DefaultReadLatency    = 500 * time.Millisecond
	DefaultAnalyzeLatency = 2 * time.Second
)

// Source supplies the raw datasets. fixtures.Store is the production implementation.
type Source interface {
	LoadStudent(ctx context.Context) (*types.Student, error)
	LoadCourses(ctx context.Context) ([]types.Course, error)
	LoadSuggestions(ctx context.Context) ([]types.ResumeSuggestion, error)
}

// Service is the data access facade. It is safe for concurrent use.
type Service struct {
	source         Source
	readLatency    time.Duration
	analyzeLatency time.Duration
}

// Option configures a Service.
type Option func(*Service)

// WithReadLatency sets the wait applied to profile and course reads. Zero disables it.
func WithReadLatency(d time.Duration) Option {
	return func(s *Service) { s.readLatency = d }
}

// WithAnalyzeLatency sets the wait applied to resume analysis. Zero disables it.
func WithAnalyzeLatency(d time.Duration) Option {
	return func(s *Service) { s.analyzeLatency = d }
}

// New creates a Service over source.
func New(source Source, opts ...Option) *Service {
	s := &Service{
		source:         source,
		readLatency:    DefaultReadLatency,
		analyzeLatency: DefaultAnalyzeLatency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetStudent returns the student profile.
func (s *Service) GetStudent(ctx context.Context) (*types.Student, error) {
	student, err := s.source.LoadStudent(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load student: %w", err)
	}
	if err := wait(ctx, s.readLatency); err != nil {
		return nil, err
	}
	return student, nil
}

// GetCourses returns every course.
func (s *Service) GetCourses(ctx context.Context) ([]types.Course, error) {
	all, err := s.source.LoadCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load courses: %w", err)
	}
	if err := wait(ctx, s.readLatency); err != nil {
		return nil, err
	}
	return all, nil
}

// GetActiveCourses returns the courses with status "active", in original order.
func (s *Service) GetActiveCourses(ctx context.Context) ([]types.Course, error) {
	return s.coursesWithStatus(ctx, types.StatusActive)
}

// GetCompletedCourses returns the courses with status "completed", in original order.
func (s *Service) GetCompletedCourses(ctx context.Context) ([]types.Course, error) {
	return s.coursesWithStatus(ctx, types.StatusCompleted)
}

func (s *Service) coursesWithStatus(ctx context.Context, status types.CourseStatus) ([]types.Course, error) {
	all, err := s.source.LoadCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s courses: %w", status, err)
	}
	if err := wait(ctx, s.readLatency); err != nil {
		return nil, err
	}
	return courses.ByStatus(all, status), nil
}

// AnalyzeResume returns the baseline suggestions plus those triggered by text.
// Blank text is not rejected here; callers run resume.ValidateText first.
func (s *Service) AnalyzeResume(ctx context.Context, text string) ([]types.ResumeSuggestion, error) {
	baseline, err := s.source.LoadSuggestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load baseline suggestions: %w", err)
	}
	suggestions := resume.Suggest(baseline, text)
	if err := wait(ctx, s.analyzeLatency); err != nil {
		return nil, err
	}
	return suggestions, nil
}

// wait blocks for d or until ctx is done, whichever comes first.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
