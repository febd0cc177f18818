package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/observability"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved resumes",
	Long:  `List the account's saved resumes. When the backend is unreachable the last fetched list is shown, marked as an offline copy.`,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	client, _, err := newClient(cfg, newLogger(cfg))
	if err != nil {
		return err
	}

	result, err := client.ListResumes(context.Background())
	if err != nil {
		return err
	}

	listed := make([]observability.ListedResume, 0, len(result.Resumes))
	for _, doc := range result.Resumes {
		listed = append(listed, observability.ListedResume{ID: doc.ID, Title: doc.Title})
	}

	observability.NewPrinter(os.Stdout).PrintResumeList(listed, result.Stale)
	return nil
}
