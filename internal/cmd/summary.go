package cmd

import (
	"fmt"

	"github.com/matthieukhl/salesgen/internal/export"
	"github.com/matthieukhl/salesgen/internal/paths"
	"github.com/matthieukhl/salesgen/internal/summary"
	"github.com/spf13/cobra"
)

var summaryIn string

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the summary of a generated CSV",
	Long: `Read a CSV written by the generate command and print its record 
count, revenue, averages and revenue split by region and category.`,
	RunE: summarizeDataset,
}

func init() {
	rootCmd.AddCommand(summaryCmd)

	summaryCmd.Flags().StringVar(&summaryIn, "in", "", "CSV to summarize (default: ~/Downloads/sales_data_2022-2025.csv)")
}

func summarizeDataset(cmd *cobra.Command, args []string) error {
	path, err := paths.ExpandFile(summaryIn)
	if err != nil {
		return fmt.Errorf("failed to resolve input path: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "🔍 Reading %s...\n", path)
	records, err := export.ReadFile(path)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "📭 The file has no records")
		return nil
	}

	summary.Summarize(records).Print(cmd.OutOrStdout())
	return nil
}
