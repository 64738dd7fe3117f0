package main

import (
	"github.com/jonathan/student-dashboard/internal/observability"
	"github.com/spf13/cobra"
)

var studentCmd = &cobra.Command{
	Use:   "student",
	Short: "Show the student profile and course statistics",
	RunE:  runStudent,
}

var studentJSON bool

func init() {
	studentCmd.Flags().BoolVar(&studentJSON, "json", false, "Print the profile as JSON")
	rootCmd.AddCommand(studentCmd)
}

func runStudent(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(configPath)
	if err != nil {
		return err
	}
	svc, err := newService(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	student, err := svc.GetStudent(cmd.Context())
	if err != nil {
		return err
	}

	if studentJSON {
		return writeJSON(cmd.OutOrStdout(), student)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintStudent(student)
	return nil
}
