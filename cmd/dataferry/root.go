package main

import (
	"github.com/spf13/cobra"

	"github.com/lancemnguyen/dataferry/config"
	"github.com/lancemnguyen/dataferry/logger"
)

var (
	// Global flags
	configFile string

	// Loaded in PersistentPreRunE, shared by subcommands.
	cfg *config.Config
	log *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "dataferry",
	Short: "Bounded-buffer producer-consumer pipeline",
	Long: `dataferry moves a fixed sequence of numeric values from a source to a
destination through a fixed-capacity blocking channel, preserving input
order and terminating on an explicit end-of-stream marker. It also
ships a standalone statistics batch job over customer shopping data.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return err
		}
		log = logger.New(cfg.Logging)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a YAML config file (default: ./dataferry.yaml if present)")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}
