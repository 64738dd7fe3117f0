package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/student-dashboard/internal/courses"
	"github.com/jonathan/student-dashboard/internal/types"
)

// recentlyCompletedLimit caps the completed courses shown on the overview.
const recentlyCompletedLimit = 3

// Overview is everything the overview page renders.
type Overview struct {
	Student           types.Student  `json:"student"`
	Stats             []courses.Stat `json:"stats"`
	ActiveCourses     []types.Course `json:"activeCourses"`
	RecentlyCompleted []types.Course `json:"recentlyCompleted"`
}

// LoadOverview fetches the student, active courses and completed courses concurrently.
// The first failure cancels the remaining fetches and is returned.
func (s *Service) LoadOverview(ctx context.Context) (*Overview, error) {
	var (
		student   *types.Student
		active    []types.Course
		completed []types.Course
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		student, err = s.GetStudent(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		active, err = s.GetActiveCourses(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		completed, err = s.GetCompletedCourses(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Overview{
		Student:           *student,
		Stats:             courses.Stats(*student),
		ActiveCourses:     active,
		RecentlyCompleted: courses.RecentlyCompleted(completed, recentlyCompletedLimit),
	}, nil
}
