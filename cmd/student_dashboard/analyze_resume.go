package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"

	"github.com/jonathan/student-dashboard/internal/observability"
	"github.com/jonathan/student-dashboard/internal/resume"
	"github.com/jonathan/student-dashboard/internal/types"
	"github.com/spf13/cobra"
)

// sniffBytes is how much of a file is read for content detection.
const sniffBytes = 512

var analyzeResumeCmd = &cobra.Command{
	Use:   "analyze-resume",
	Short: "Suggest improvements for a resume",
	Long: "Runs the resume heuristic over pasted text or an uploaded PDF and prints the suggestions. " +
		"PDF content is not extracted; the file stands in as a placeholder, as on the web form.",
	RunE: runAnalyzeResume,
}

var (
	analyzeResumeText string
	analyzeResumeFile string
	analyzeResumeJSON bool
)

func init() {
	analyzeResumeCmd.Flags().StringVarP(&analyzeResumeText, "text", "t", "", "Resume text to analyze")
	analyzeResumeCmd.Flags().StringVarP(&analyzeResumeFile, "file", "f", "", "Path to a PDF resume")
	analyzeResumeCmd.Flags().BoolVar(&analyzeResumeJSON, "json", false, "Print suggestions as JSON")
	analyzeResumeCmd.MarkFlagsMutuallyExclusive("text", "file")

	rootCmd.AddCommand(analyzeResumeCmd)
}

func runAnalyzeResume(cmd *cobra.Command, _ []string) error {
	text := analyzeResumeText
	if analyzeResumeFile != "" {
		upload, err := readResumeFile(analyzeResumeFile)
		if err != nil {
			return err
		}
		text = upload.Text
	}

	if err := resume.ValidateText(text); err != nil {
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

	suggestions, err := svc.AnalyzeResume(cmd.Context(), text)
	if err != nil {
		return fmt.Errorf("error analyzing resume: %w", err)
	}

	if analyzeResumeJSON {
		return writeJSON(cmd.OutOrStdout(), types.AnalyzeResumeResponse{Suggestions: suggestions})
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintSuggestions(suggestions)
	return nil
}

// readResumeFile applies the web upload check to a local file.
func readResumeFile(path string) (resume.Upload, error) {
	f, err := os.Open(path)
	if err != nil {
		return resume.Upload{}, fmt.Errorf("failed to open resume file %s: %w", path, err)
	}
	defer f.Close()

	head := make([]byte, sniffBytes)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return resume.Upload{}, fmt.Errorf("failed to read resume file %s: %w", path, err)
	}

	declared := mime.TypeByExtension(filepath.Ext(path))
	return resume.AcceptUpload(filepath.Base(path), declared, head[:n])
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
