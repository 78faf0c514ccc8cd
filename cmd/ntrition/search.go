package ntrition

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nitheesb/personal-calorie-tracker/internal/lookup"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the bundled food table and Open Food Facts",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		return withRuntime(cmd, func(rt *runtime) error {
			search := rt.lookup.Search(commandContext(cmd), query)
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), search.Latest().Results)
			}
			out := cmd.OutOrStdout()
			shown := 0
			for batch := range search.Batches() {
				fresh := batch.Results[shown:]
				switch batch.Phase {
				case lookup.PhaseLocal:
					if len(fresh) > 0 {
						fmt.Fprintln(out, "Bundled foods:")
					}
				case lookup.PhaseMerged:
					if len(fresh) > 0 {
						fmt.Fprintln(out, "Open Food Facts:")
					}
				}
				printRecords(out, shown, fresh)
				shown = len(batch.Results)
			}
			if shown == 0 {
				fmt.Fprintf(out, "No foods match %q. Try: %s\n", query, strings.Join(rt.lookup.Suggestions(), ", "))
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
