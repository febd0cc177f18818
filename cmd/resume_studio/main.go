// Package main provides the entry point for the Resume Studio CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath string
	baseURL    string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "resume_studio",
	Short: "Resume authoring studio",
	Long:  "Resume Studio edits, renders and exports resumes through a step-by-step terminal wizard, with AI-assisted drafting and critique backed by a REST API.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON config file")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Backend base URL (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
