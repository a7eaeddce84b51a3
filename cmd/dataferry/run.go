package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/lancemnguyen/dataferry/observe"
	"github.com/lancemnguyen/dataferry/transfer"
	"github.com/lancemnguyen/dataferry/version"
)

var (
	runSize     int
	runCapacity int
	runSeed     uint64
	runPolicy   string
	runShowData bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the transfer pipeline and validate the result",
	Long: `Run generates a source sequence, moves it through the bounded channel
with one producer and one consumer goroutine, waits for both to finish,
and verifies the destination matches the source elementwise. Exits
non-zero on a validation failure or a recorded fault.`,
	RunE: runPipeline,
}

func init() {
	runCmd.Flags().IntVar(&runSize, "size", 10, "source length N (0 is a legal, empty run)")
	runCmd.Flags().IntVar(&runCapacity, "capacity", 0, "channel capacity override (default max(1, N/2))")
	runCmd.Flags().Uint64Var(&runSeed, "seed", 0, "generation seed (0 derives one from the clock)")
	runCmd.Flags().StringVar(&runPolicy, "policy", "", "source generation policy: mixed, integers or reals")
	runCmd.Flags().BoolVar(&runShowData, "show-data", false, "print both sequences after the run")
}

func runPipeline(cmd *cobra.Command, args []string) error {
	// Flags override config only when explicitly set.
	if cmd.Flags().Changed("size") {
		cfg.Run.Size = runSize
	}
	if cmd.Flags().Changed("capacity") {
		cfg.Run.Capacity = runCapacity
	}
	if cmd.Flags().Changed("seed") {
		cfg.Run.Seed = runSeed
	}
	if cmd.Flags().Changed("policy") {
		cfg.Run.Policy = runPolicy
	}
	if cmd.Flags().Changed("show-data") {
		cfg.Run.ShowData = runShowData
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	observers := transfer.MultiObserver{transfer.NewLogObserver(log)}

	var metrics *transfer.Metrics
	if cfg.Telemetry.Enabled {
		shutdown, err := observe.Setup(ctx, observe.Config{
			ServiceName:    cfg.Telemetry.ServiceName,
			ServiceVersion: version.Get().Version,
			Endpoint:       cfg.Telemetry.Endpoint,
			Insecure:       cfg.Telemetry.Insecure,
		})
		if err != nil {
			return err
		}
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(flushCtx); err != nil {
				log.Warn().Err(err).Msg("telemetry shutdown failed")
			}
		}()

		metrics, err = transfer.NewMetrics(observe.Meter())
		if err != nil {
			return err
		}
		observers = append(observers, metrics)
	}

	runner, err := transfer.NewRunner(transfer.Config{
		Size:        cfg.Run.Size,
		Capacity:    cfg.Run.Capacity,
		Seed:        cfg.Run.Seed,
		Policy:      transfer.Policy(cfg.Run.Policy),
		IncludeData: cfg.Run.ShowData,
	}, transfer.WithLogger(log), transfer.WithObserver(observers))
	if err != nil {
		return err
	}

	ctx, span := observe.StartSpan(ctx, "transfer.run",
		attribute.Int("size", cfg.Run.Size))
	report, runErr := runner.Run()
	span.End()

	if metrics != nil {
		metrics.RecordRun(ctx, report)
	}

	printReport(report)
	return runErr
}

func printReport(r *transfer.Report) {
	status := "PASS"
	if !r.Passed {
		status = "FAIL"
	}
	fmt.Printf("%s run=%s size=%d capacity=%d elapsed=%s\n",
		status, r.RunID, r.Size, r.Capacity, r.Elapsed)

	if len(r.Mismatches) > 0 {
		fmt.Printf("mismatched slots: %v\n", r.Mismatches)
	}
	if r.Source != nil {
		fmt.Printf("source:      %v\n", r.Source)
		fmt.Printf("destination: %v\n", r.Destination)
	}
}
