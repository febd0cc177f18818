package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	uploadID        string
	uploadThumbnail string
	uploadProfile   string
)

var uploadCmd = &cobra.Command{
	Use:   "upload-images",
	Short: "Upload a thumbnail and/or profile image for a resume",
	RunE:  runUpload,
}

func init() {
	uploadCmd.Flags().StringVar(&uploadID, "id", "", "Resume id")
	uploadCmd.Flags().StringVar(&uploadThumbnail, "thumbnail", "", "Thumbnail image file")
	uploadCmd.Flags().StringVar(&uploadProfile, "profile", "", "Profile image file")
	_ = uploadCmd.MarkFlagRequired("id")
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(_ *cobra.Command, _ []string) error {
	if uploadThumbnail == "" && uploadProfile == "" {
		return fmt.Errorf("at least one of --thumbnail or --profile is required")
	}

	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	client, _, err := newClient(cfg, newLogger(cfg))
	if err != nil {
		return err
	}
	ctx := context.Background()

	doc, err := client.GetResume(ctx, uploadID)
	if err != nil {
		return err
	}

	thumbnail, err := openOptional(uploadThumbnail)
	if err != nil {
		return err
	}
	profile, err := openOptional(uploadProfile)
	if err != nil {
		return err
	}

	updated, err := client.UploadImages(ctx, doc, thumbnail, profile)
	if err != nil {
		return err
	}

	if updated.Thumbnail != "" {
		fmt.Printf("Thumbnail: %s\n", updated.Thumbnail)
	}
	if updated.ProfileImage != "" {
		fmt.Printf("Profile image: %s\n", updated.ProfileImage)
	}
	return nil
}

// openOptional returns a reader for the path, or nil for an empty path. The
// file is left to process exit for cleanup; uploads are one-shot.
func openOptional(path string) (io.Reader, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return f, nil
}
