package cli

import (
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "primebench",
	Short:   "Benchmark concurrency strategies on a prime-counting workload",
	Version: version,
	Long: `Primebench times five concurrency strategies - serial, data-parallel,
single-task, batch-invoke and batch-submit - against the same CPU-bound
workload: trial-division primality testing over the odd numbers below a
configurable bound. All strategies must find the same primes; what differs
is how the work is scheduled, and what that scheduling costs.`,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print help
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	// Add subcommands to root command
	RootCmd.AddCommand(runCmd)
	RootCmd.AddCommand(strategiesCmd)
	RootCmd.AddCommand(queryCmd)
}
