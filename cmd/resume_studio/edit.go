package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/model"
	"github.com/jonathan/resume-studio/internal/netclient"
	"github.com/jonathan/resume-studio/internal/tui"
)

var (
	editID    string
	editTitle string
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit a resume in the terminal wizard",
	Long: `Open the step-by-step editor. With --id an existing resume is fetched and
edited; with --title a new one is created on the backend first. Without either
a local scratch document is edited and written to a JSON file on exit.`,
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editID, "id", "", "Resume id to edit")
	editCmd.Flags().StringVar(&editTitle, "title", "", "Title for a new resume")
	rootCmd.AddCommand(editCmd)
}

func runEdit(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)
	client, _, err := newClient(cfg, logger)
	if err != nil {
		return err
	}
	ctx := context.Background()

	doc, err := openDocument(ctx, client)
	if err != nil {
		return err
	}

	final, err := tea.NewProgram(tui.NewEditor(doc), tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("editor failed: %w", err)
	}
	editor := final.(tui.Editor)
	edited := editor.Doc()

	// A failed save never discards the edits: the document is written to a
	// local file instead.
	if edited.ID != "" {
		if _, err := client.UpdateResume(ctx, edited); err != nil {
			logger.Error("save failed, keeping a local copy", "err", err)
			return writeLocalCopy(edited)
		}
		fmt.Printf("Saved %q (%s)\n", edited.Title, edited.ID)
	} else {
		if err := writeLocalCopy(edited); err != nil {
			return err
		}
	}

	if editor.ExportRequested {
		return exportPDF(cfg, edited, editor.Template(), "")
	}
	return nil
}

// openDocument resolves the document to edit: fetched, freshly created, or a
// local scratch copy.
func openDocument(ctx context.Context, client *netclient.Client) (model.Document, error) {
	if editID != "" {
		return client.GetResume(ctx, editID)
	}
	if editTitle != "" {
		return client.CreateResume(ctx, editTitle)
	}
	return model.New("Untitled Resume"), nil
}

func writeLocalCopy(doc model.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode resume: %w", err)
	}
	path := slugify(doc.Title) + ".json"
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write local copy: %w", err)
	}
	fmt.Printf("Wrote local copy to %s\n", path)
	return nil
}

func slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, s)
	s = strings.Trim(s, "-")
	if s == "" {
		return "resume"
	}
	return s
}
