package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/primebench/internal/benchmark/strategy"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List the available concurrency strategies",
	Long: `List every concurrency strategy the benchmark can run, in the
order they execute by default, along with a short description of each.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, t := range strategy.All() {
			desc := strategy.Describe(t)
			if desc == nil {
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s\n", desc.Type, desc.Description)
		}
		return nil
	},
}
