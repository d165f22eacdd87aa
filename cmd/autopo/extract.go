package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/autopo-labs/autopo/constants"
	"github.com/autopo-labs/autopo/internal/common"
	"github.com/autopo-labs/autopo/internal/entity"
	"github.com/autopo-labs/autopo/internal/export"
	"github.com/autopo-labs/autopo/internal/extract"
	"github.com/autopo-labs/autopo/internal/llm/gemini"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract a purchase order and print it tab-separated",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	rec, err := extractFile(cmd.Context(), args[0], logger)
	if err != nil {
		return err
	}
	fmt.Println(export.DelimitedText(rec, export.TabSeparator))
	return nil
}

// extractFile reads a local document and runs one extraction attempt
// against the configured endpoint.
func extractFile(ctx context.Context, path string, logger *slog.Logger) (*entity.PurchaseOrder, error) {
	cfg := common.LoadConfig()
	if cfg.Extractor.URL == "" {
		return nil, common.NewAppError("CONFIG_ERROR", "ANALYZE_URL is required", common.ErrInvalidConfig)
	}

	ext := filepath.Ext(path)
	if !constants.IsAllowedExt(ext) {
		return nil, common.InputError("unsupported file type "+strconv.Quote(ext), nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, common.InputError("read "+path, err)
	}

	client := gemini.NewClient(gemini.Config{
		URL:     cfg.Extractor.URL,
		APIKey:  cfg.Extractor.APIKey,
		Timeout: cfg.Extractor.Timeout,
	}, logger)
	svc := extract.NewService(client, logger)
	return svc.Extract(ctx, data, constants.MIMEForExt(ext))
}
