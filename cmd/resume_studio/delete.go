package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <resume-id>",
	Short: "Delete a saved resume",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(_ *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	client, _, err := newClient(cfg, newLogger(cfg))
	if err != nil {
		return err
	}

	if err := client.DeleteResume(context.Background(), args[0]); err != nil {
		return err
	}
	fmt.Println("Deleted.")
	return nil
}
