package ntrition

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nitheesb/personal-calorie-tracker/internal/aggregate"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's intake and goal progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd, func(rt *runtime) error {
			day := rt.session.Today()
			totals := rt.session.Totals()
			goals := rt.session.Goals()
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), rt.session.Snapshot())
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Date: %s\n", day.Date)
			fmt.Fprintf(out, "Eaten: %.0f kcal | Goal: %.0f kcal | Remaining: %.0f kcal (%.0f%%)\n",
				totals.Calories, goals.Calories,
				aggregate.Remaining(goals.Calories, totals.Calories),
				aggregate.PercentOfGoal(totals.Calories, goals.Calories),
			)
			for _, p := range rt.session.Progress()[1:] {
				fmt.Fprintf(out, "%-8s %6.1f / %.0f%s  %s %.0f%%\n", p.Label, p.Current, p.Goal, p.Unit, bar(p.Fill), p.Percent)
			}
			if len(day.Items) == 0 {
				fmt.Fprintln(out, "Nothing logged yet today.")
				return nil
			}
			fmt.Fprintln(out, "MEAL\tNAME\tSERVING\tKCAL\tP\tC\tF\tFIB")
			for _, it := range day.Items {
				fmt.Fprintf(out, "%s\t%s\t%s\t%.0f\t%.1f\t%.1f\t%.1f\t%.1f\n", it.Meal, it.Name, it.ServingSize, it.Calories, it.Protein, it.Carbs, it.Fat, it.Fiber)
			}
			return nil
		})
	},
}

// bar renders a ring fill (0-100) as a fixed-width text bar.
func bar(fill float64) string {
	const width = 20
	n := int(fill / 100 * width)
	if n < 0 {
		n = 0
	}
	out := make([]byte, width)
	for i := range out {
		if i < n {
			out[i] = '#'
		} else {
			out[i] = '.'
		}
	}
	return "[" + string(out) + "]"
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
