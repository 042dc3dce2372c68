package cmd

import (
	"fmt"

	"github.com/matthieukhl/salesgen/internal/database"
	"github.com/matthieukhl/salesgen/internal/export"
	"github.com/matthieukhl/salesgen/internal/logger"
	"github.com/matthieukhl/salesgen/internal/models"
	"github.com/matthieukhl/salesgen/internal/paths"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	loadIn    string
	loadSeed  uint64
	dropFirst bool
	loadQuiet bool
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load the sales dataset into a MySQL compatible database",
	Long: `Create the sales table (db.table, default sales_records) and load a 
dataset into it. With --in the rows come from an existing CSV; otherwise a
new dataset is generated first.

All rows are inserted in one transaction: the table receives the whole
dataset or nothing.`,
	RunE: loadDataset,
}

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().StringVar(&loadIn, "in", "", "Load rows from this CSV instead of generating")
	loadCmd.Flags().Uint64Var(&loadSeed, "seed", 0, "Random seed when generating (0 = random)")
	loadCmd.Flags().BoolVar(&dropFirst, "drop-first", false, "Drop the sales table before loading")
	loadCmd.Flags().BoolVar(&loadQuiet, "quiet", false, "Hide progress bars")
}

func loadDataset(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	cfg, closer, err := setup()
	if err != nil {
		return err
	}
	defer closer.Close()

	if cmd.Flags().Changed("seed") {
		cfg.Generator.Seed = loadSeed
	}

	var records []models.SalesRecord
	if loadIn != "" {
		path, err := paths.ExpandFile(loadIn)
		if err != nil {
			return fmt.Errorf("failed to resolve input path: %w", err)
		}
		fmt.Fprintf(out, "📂 Reading %s...\n", path)
		if records, err = export.ReadFile(path); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(out, "🚀 Generating sales data...")
		if records, err = generateRecords(cmd.ErrOrStderr(), cfg.Generator.Seed, loadQuiet); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, "🔌 Connecting to database...")
	db, err := database.NewConnection(ctx, &cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	table := cfg.DB.Table
	if dropFirst {
		fmt.Fprintf(out, "🗑️  Dropping table %s...\n", table)
		if err := db.DropSalesSchema(ctx, table); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "📋 Creating table %s...\n", table)
	if err := db.SetupSalesSchema(ctx, table); err != nil {
		return err
	}

	var onBatch func(int)
	if !loadQuiet {
		bar := progressbar.NewOptions(len(records),
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetDescription("📝 Inserting rows"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		defer bar.Finish()
		onBatch = func(written int) { _ = bar.Set(written) }
	}

	loader := database.NewSalesLoader(db, table, cfg.DB.BatchSize)
	if err := loader.Load(ctx, records, onBatch); err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	count, err := db.CountSales(ctx, table)
	if err != nil {
		return err
	}
	logger.Get().Info("dataset loaded", "table", table, "inserted", len(records), "rows", count)

	fmt.Fprintf(out, "✅ Inserted %d records, %s now holds %d rows\n", len(records), table, count)
	return nil
}
