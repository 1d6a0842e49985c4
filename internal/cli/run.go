package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/primebench/internal/benchmark/config"
	"github.com/wesleyorama2/primebench/internal/benchmark/engine"
	"github.com/wesleyorama2/primebench/internal/benchmark/strategy"
	"github.com/wesleyorama2/primebench/internal/output"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the benchmark",
	Long: `Run the configured strategies against the prime workload and report one
timing line per strategy.

With no flags, all five strategies run once against the bound 10,000,000,
reproducing the original experiment.

Config file mode:
  primebench run --config bench.yaml

Quick CLI mode:
  primebench run --bound 1000000 --strategies serial,parallel \
    --repetitions 5 --warmup 1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBenchmark(cmd)
	},
}

// runBenchmark loads or builds the configuration and drives the engine.
func runBenchmark(cmd *cobra.Command) error {
	configFile, _ := cmd.Flags().GetString("config")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	outputPath, _ := cmd.Flags().GetString("output")
	quiet, _ := cmd.Flags().GetBool("quiet")
	noColor, _ := cmd.Flags().GetBool("no-color")
	verbose, _ := cmd.Flags().GetBool("verbose")

	var cfg *config.BenchConfig
	if configFile != "" {
		loaded, err := config.LoadConfig(configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	} else {
		cfg = &config.BenchConfig{}
	}

	if err := overlayFlags(cmd, cfg); err != nil {
		return err
	}

	eng, err := engine.NewEngine(cfg)
	if err != nil {
		return err
	}

	console := output.NewConsole(output.Config{
		NoColor: noColor,
		Quiet:   quiet,
		Verbose: verbose,
	})
	console.PrintHeader(cfg.Name, os.Getpid(), parallelism(), cfg.Bound)

	eng.OnStrategyStart = func(t strategy.Type) {
		console.PrintStrategyStart(string(t))
	}

	// An interrupt cancels the whole run; the engine reports whatever
	// finished before it fired.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, runErr := eng.Run(ctx)

	console.PrintSummary(result)

	if result != nil {
		for _, sr := range result.Strategies {
			if sr.Error != "" {
				fmt.Fprintf(os.Stderr, "strategy %s failed: %s\n", sr.Strategy, sr.Error)
			}
		}

		if jsonOutput || outputPath != "" {
			if err := writeJSONResult(result, outputPath); err != nil {
				return err
			}
		}
	}

	// Strategy-local failures are reported above but do not change the
	// exit code; only interruption does.
	if runErr != nil {
		return fmt.Errorf("benchmark interrupted: %w", runErr)
	}
	return nil
}

// parallelism is the available parallelism reported in the run banner.
func parallelism() int {
	return runtime.GOMAXPROCS(0)
}

// overlayFlags applies explicitly set flags over the (possibly file-loaded)
// configuration.
func overlayFlags(cmd *cobra.Command, cfg *config.BenchConfig) error {
	flags := cmd.Flags()

	if flags.Changed("bound") {
		cfg.Bound, _ = flags.GetInt64("bound")
	}
	if flags.Changed("strategies") {
		cfg.Strategies, _ = flags.GetStringSlice("strategies")
	}
	if flags.Changed("repetitions") {
		cfg.Repetitions, _ = flags.GetInt("repetitions")
	}
	if flags.Changed("warmup") {
		cfg.Warmup, _ = flags.GetInt("warmup")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("max-in-flight") {
		cfg.MaxInFlight, _ = flags.GetInt("max-in-flight")
	}
	if flags.Changed("collect") {
		cfg.CollectResults, _ = flags.GetBool("collect")
	}
	if flags.Changed("timeout") {
		cfg.Timeout, _ = flags.GetString("timeout")
	}

	return cfg.Validate()
}

// writeJSONResult writes the result as indented JSON to a file, or to
// stdout when no path is given.
func writeJSONResult(result *engine.Result, outputPath string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if outputPath == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	fmt.Printf("Results written to: %s\n", outputPath)
	return nil
}

func init() {
	runCmd.Flags().StringP("config", "c", "", "Configuration file (YAML or JSON)")
	runCmd.Flags().Int64("bound", 0, "Exclusive upper bound of the candidate sequence (default 10000000)")
	runCmd.Flags().StringSlice("strategies", nil, "Strategies to run, comma separated (default all)")
	runCmd.Flags().Int("repetitions", 0, "Measured runs per strategy (default 1)")
	runCmd.Flags().Int("warmup", 0, "Unmeasured warm-up runs per strategy")
	runCmd.Flags().Int("workers", 0, "Worker pool size for the parallel strategies (default GOMAXPROCS)")
	runCmd.Flags().Int("max-in-flight", 0, "Cap on concurrently running per-candidate tasks")
	runCmd.Flags().Bool("collect", false, "Retain the primes each strategy finds")
	runCmd.Flags().StringP("timeout", "t", "", "Per-strategy run timeout (e.g. 2m)")
	runCmd.Flags().Bool("json", false, "Output results as JSON")
	runCmd.Flags().String("output", "", "Write JSON results to a file")
	runCmd.Flags().BoolP("quiet", "q", false, "Show only the final per-strategy lines")
	runCmd.Flags().Bool("no-color", false, "Disable colored output")
	runCmd.Flags().BoolP("verbose", "v", false, "Show timing distributions and task counts")
}
