package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/autopo-labs/autopo/internal/common"
	"github.com/autopo-labs/autopo/internal/export"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Extract a purchase order and write a CSV or XLSX file",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output path; extension selects csv or xlsx (default PO_<poNumber>.csv)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	rec, err := extractFile(cmd.Context(), args[0], logger)
	if err != nil {
		return err
	}

	out := exportOut
	if out == "" {
		out = export.CSVFilename(rec)
	}

	switch strings.ToLower(filepath.Ext(out)) {
	case ".xlsx":
		data, err := export.Workbook(rec)
		if err != nil {
			return err
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return common.InputError("write "+out, err)
		}
	case ".csv", "":
		payload := export.DelimitedText(rec, export.CommaSeparator)
		if err := os.WriteFile(out, []byte(payload), 0o644); err != nil {
			return common.InputError("write "+out, err)
		}
	default:
		return common.InputError("unsupported output extension "+filepath.Ext(out), nil)
	}

	fmt.Println(out)
	return nil
}
