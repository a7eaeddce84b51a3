package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/lancemnguyen/dataferry/analysis"
	"github.com/lancemnguyen/dataferry/errors"
)

var statsFile string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Run the shopping-statistics batch job",
	Long: `Stats loads a customer shopping CSV and reports population by gender,
total sales by gender, payment-method usage, and the day with the
highest total sales. This job is independent of the transfer pipeline.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsFile, "file", "", "path to the customer shopping CSV")
}

func runStats(cmd *cobra.Command, args []string) error {
	path := cfg.Stats.File
	if cmd.Flags().Changed("file") {
		path = statsFile
	}
	if path == "" {
		return errors.InvalidInput("no dataset: set --file or stats.file in the config")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	log.Info().Str("file", path).Msg("loading transactions")
	txs, err := analysis.LoadTransactions(path)
	if err != nil {
		return err
	}
	log.Info().Int("rows", len(txs)).Msg("dataset loaded")

	report, err := analysis.BuildReport(ctx, txs)
	if err != nil {
		return err
	}
	report.Render(os.Stdout)
	return nil
}
