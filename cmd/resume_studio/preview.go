package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/model"
	"github.com/jonathan/resume-studio/internal/render"
	"github.com/jonathan/resume-studio/internal/tui"
)

var (
	previewID       string
	previewTemplate int
	previewWidth    int
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print a resume preview to the terminal",
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&previewID, "id", "", "Resume id to preview")
	previewCmd.Flags().IntVar(&previewTemplate, "template", 0, "Template override (1-3)")
	previewCmd.Flags().IntVar(&previewWidth, "width", 100, "Preview width in columns")
	_ = previewCmd.MarkFlagRequired("id")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	client, _, err := newClient(cfg, newLogger(cfg))
	if err != nil {
		return err
	}

	doc, err := client.GetResume(context.Background(), previewID)
	if err != nil {
		return err
	}

	template := doc.Presentation.TemplateID
	if previewTemplate != 0 {
		template = model.TemplateID(previewTemplate)
	}

	tree, err := render.Render(doc, doc.Presentation.Theme, template, float64(previewWidth))
	if err != nil {
		return err
	}
	fmt.Println(tui.Preview(tree, previewWidth))
	return nil
}
