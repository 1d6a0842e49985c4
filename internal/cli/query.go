package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/primebench/pkg/jsonpath"
)

var queryCmd = &cobra.Command{
	Use:   "query <results.json> <path>",
	Short: "Extract a value from a saved benchmark result",
	Long: `Extract a single value from a JSON results file written by
'primebench run --output', using a JSONPath expression.

Examples:
  primebench query results.json '$.strategies[0].elapsed'
  primebench query results.json '$.strategies[1].timing.p95'
  primebench query results.json 'strategies.#(strategy=="serial").primes'`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading results file: %w", err)
		}
		value, err := jsonpath.Extract(string(data), args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}
