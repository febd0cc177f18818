package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/merge"
	"github.com/jonathan/resume-studio/internal/model"
	"github.com/jonathan/resume-studio/internal/netclient"
	"github.com/jonathan/resume-studio/internal/observability"
)

var (
	generateID     string
	generatePrompt string
	analyzeID      string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Draft resume content with AI",
	Long: `Send the resume's existing facts and an instruction to the AI backend, then
merge the drafted content into the document. Only the fields the draft
contains are replaced; everything else keeps its current value. A reply that
cannot be parsed is kept verbatim instead of being discarded.`,
	RunE: runGenerate,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Get an AI critique of a resume",
	RunE:  runAnalyze,
}

func init() {
	generateCmd.Flags().StringVar(&generateID, "id", "", "Resume id to draft content for")
	generateCmd.Flags().StringVar(&generatePrompt, "prompt", "", "Instruction for the draft")
	_ = generateCmd.MarkFlagRequired("id")
	_ = generateCmd.MarkFlagRequired("prompt")

	analyzeCmd.Flags().StringVar(&analyzeID, "id", "", "Resume id to analyze")
	_ = analyzeCmd.MarkFlagRequired("id")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(analyzeCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	client, _, err := newClient(cfg, newLogger(cfg))
	if err != nil {
		return err
	}
	ctx := context.Background()

	doc, err := client.GetResume(ctx, generateID)
	if err != nil {
		return err
	}

	resp, err := client.GenerateResume(ctx, doc.ID, draftRequest(doc, generatePrompt))
	if err != nil {
		return err
	}

	merged := merge.Generated(doc, string(resp.AIResume))
	saved, err := client.UpdateResume(ctx, merged)
	if err != nil {
		return err
	}

	if merged.AIRaw != "" {
		fmt.Println("The AI reply could not be parsed; it was kept verbatim on the resume.")
	} else {
		fmt.Printf("Merged AI draft into %q (%s)\n", saved.Title, saved.ID)
	}
	return nil
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	client, _, err := newClient(cfg, newLogger(cfg))
	if err != nil {
		return err
	}
	ctx := context.Background()

	doc, err := client.GetResume(ctx, analyzeID)
	if err != nil {
		return err
	}

	resp, err := client.AnalyzeResume(ctx, doc)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintAnalysis(&observability.AnalysisReport{
		Strengths:   resp.Analysis.Strengths,
		Weaknesses:  resp.Analysis.Weaknesses,
		Suggestions: resp.Analysis.Suggestions,
		ToneSummary: resp.Analysis.ToneSummary,
	})
	return nil
}

// draftRequest summarizes the document's existing facts for the draft
// endpoint, so the model works from what the user already entered.
func draftRequest(doc model.Document, prompt string) netclient.GenerateRequest {
	req := netclient.GenerateRequest{
		Prompt: prompt,
		Name:   doc.Profile.FullName,
		Role:   doc.Profile.Designation,
	}
	for _, s := range doc.Skills {
		if s.Name != "" {
			req.Skills = append(req.Skills, s.Name)
		}
	}
	for _, e := range doc.WorkExperience {
		if line := joinParts(" at ", e.Role, e.Company); line != "" {
			req.Experience = append(req.Experience, line)
		}
	}
	for _, e := range doc.Education {
		if line := joinParts(", ", e.Degree, e.Institution); line != "" {
			req.Education = append(req.Education, line)
		}
	}
	for _, p := range doc.Projects {
		if p.Title != "" {
			req.Projects = append(req.Projects, p.Title)
		}
	}
	return req
}

func joinParts(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
