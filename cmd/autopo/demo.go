package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/autopo-labs/autopo/internal/demo"
	"github.com/autopo-labs/autopo/internal/export"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Print the sample purchase order tab-separated",
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Println(export.DelimitedText(demo.Record(time.Now()), export.TabSeparator))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
