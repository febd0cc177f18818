package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/export"
	"github.com/jonathan/resume-studio/internal/model"
	"github.com/jonathan/resume-studio/internal/render"
)

var (
	exportID       string
	exportOut      string
	exportTemplate int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a resume to PDF",
	Long:  `Render a saved resume at natural size and print it to a paginated A4 PDF. Requires Chrome or Chromium.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportID, "id", "", "Resume id to export")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (defaults to <title>.pdf)")
	exportCmd.Flags().IntVar(&exportTemplate, "template", 0, "Template override (1-3)")
	_ = exportCmd.MarkFlagRequired("id")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	client, _, err := newClient(cfg, newLogger(cfg))
	if err != nil {
		return err
	}

	doc, err := client.GetResume(context.Background(), exportID)
	if err != nil {
		return err
	}

	template := doc.Presentation.TemplateID
	if exportTemplate != 0 {
		template = model.TemplateID(exportTemplate)
	}
	return exportPDF(cfg, doc, template, exportOut)
}

// exportPDF renders the document at natural size and prints it. An empty out
// path derives the file name from the title.
func exportPDF(cfg config.Config, doc model.Document, template model.TemplateID, out string) error {
	tree, err := render.Render(doc, doc.Presentation.Theme, template, 0)
	if err != nil {
		return err
	}

	opts := export.DefaultOptions()
	opts.ChromePath = cfg.ChromePath
	pdf, err := export.PDF(context.Background(), tree, opts)
	if err != nil {
		return err
	}

	if out == "" {
		out = slugify(doc.Title) + ".pdf"
	}
	if err := os.WriteFile(out, pdf, 0o644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	fmt.Printf("Exported %q to %s\n", doc.Title, out)
	return nil
}
