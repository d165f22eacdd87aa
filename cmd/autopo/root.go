package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "autopo",
	Short:         "Purchase-order extraction and spreadsheet export",
	Long:          "autopo sends purchase-order documents to a multimodal extraction service,\nnormalizes the response into a fixed record, and exports it for spreadsheets.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// newLogger builds the process-wide JSON logger.
func newLogger() *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)
	return logger
}
