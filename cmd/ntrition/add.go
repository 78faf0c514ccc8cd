package ntrition

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nitheesb/personal-calorie-tracker/internal/model"
)

var (
	addQty  string
	addMeal string
	addPick int
)

var addCmd = &cobra.Command{
	Use:   "add <food>",
	Short: "Search for a food and log it",
	Long:  "Search for a food and log the chosen result. Use --pick with the number shown by `ntrition search` to choose a result other than the first.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		meal, err := model.ParseMealSlot(addMeal)
		if err != nil {
			return err
		}
		if addPick < 1 {
			return fmt.Errorf("--pick must be >= 1")
		}
		return withRuntime(cmd, func(rt *runtime) error {
			results := rt.lookup.Search(commandContext(cmd), query).Latest().Results
			if len(results) == 0 {
				return fmt.Errorf("no foods match %q; try: %s", query, strings.Join(rt.lookup.Suggestions(), ", "))
			}
			if addPick > len(results) {
				return fmt.Errorf("--pick %d out of range (%d results)", addPick, len(results))
			}
			item, err := rt.session.LogFood(commandContext(cmd), results[addPick-1], addQty, meal)
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), item)
			}
			printLogged(cmd.OutOrStdout(), item)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addQty, "qty", "1", "Serving multiplier (e.g. 0.5, 1.5, 2)")
	addCmd.Flags().StringVar(&addMeal, "meal", "snack", "Meal: breakfast, lunch, dinner, or snack")
	addCmd.Flags().IntVar(&addPick, "pick", 1, "Result number to log")
}
