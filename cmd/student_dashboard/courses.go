package main

import (
	"github.com/jonathan/student-dashboard/internal/courses"
	"github.com/jonathan/student-dashboard/internal/observability"
	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List the student's courses",
	RunE:  runCourses,
}

var (
	coursesFilter string
	coursesJSON   bool
)

func init() {
	coursesCmd.Flags().StringVar(&coursesFilter, "filter", string(courses.FilterAll), "One of all, active, completed, upcoming")
	coursesCmd.Flags().BoolVar(&coursesJSON, "json", false, "Print courses as JSON")
	rootCmd.AddCommand(coursesCmd)
}

func runCourses(cmd *cobra.Command, _ []string) error {
	filter, err := courses.ParseFilter(coursesFilter)
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(configPath)
	if err != nil {
		return err
	}
	svc, err := newService(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	all, err := svc.GetCourses(cmd.Context())
	if err != nil {
		return err
	}
	visible := courses.Apply(all, filter)

	if coursesJSON {
		return writeJSON(cmd.OutOrStdout(), visible)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintCourses(filter, visible)
	return nil
}
