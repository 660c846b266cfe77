package main

import (
	"errors"
	"file-intake/internal/core/domain"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func uploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a local file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			service, closeFn, err := pipeline(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			result := service.Submit(cmd.Context(), domain.UploadRequest{
				Filename:    filepath.Base(args[0]),
				Content:     content,
				Destination: destinationFlag,
				Subfolder:   subfolderFlag,
			})
			if !result.Succeeded() {
				return errors.New(result.Message())
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Message())
			return nil
		},
	}
}
