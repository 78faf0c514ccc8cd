package ntrition

import (
	"github.com/spf13/cobra"

	"github.com/nitheesb/personal-calorie-tracker/internal/model"
	"github.com/nitheesb/personal-calorie-tracker/internal/session"
)

var (
	customName     string
	customBrand    string
	customServing  string
	customCalories float64
	customProtein  float64
	customCarbs    float64
	customFat      float64
	customFiber    float64
	customMeal     string
	customQty      string
)

var customCmd = &cobra.Command{
	Use:   "custom",
	Short: "Log a food that is not in any database",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := session.CustomFoodInput{
			Name:        customName,
			Brand:       customBrand,
			ServingSize: customServing,
			Calories:    changedFloat(cmd, "calories", customCalories),
			Protein:     changedFloat(cmd, "protein", customProtein),
			Carbs:       changedFloat(cmd, "carbs", customCarbs),
			Fat:         changedFloat(cmd, "fat", customFat),
			Fiber:       changedFloat(cmd, "fiber", customFiber),
			Meal:        model.MealSlot(customMeal),
			Quantity:    customQty,
		}
		return withRuntime(cmd, func(rt *runtime) error {
			item, err := rt.session.LogCustomFood(commandContext(cmd), in)
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

// changedFloat returns nil for flags the user did not set.
func changedFloat(cmd *cobra.Command, name string, v float64) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}

func init() {
	rootCmd.AddCommand(customCmd)
	customCmd.Flags().StringVar(&customName, "name", "", "Food name (required)")
	customCmd.Flags().StringVar(&customBrand, "brand", "", "Brand")
	customCmd.Flags().StringVar(&customServing, "serving", "", "Serving description (default \"1 serving\")")
	customCmd.Flags().Float64Var(&customCalories, "calories", 0, "Calories per serving (required)")
	customCmd.Flags().Float64Var(&customProtein, "protein", 0, "Protein grams per serving")
	customCmd.Flags().Float64Var(&customCarbs, "carbs", 0, "Carbohydrate grams per serving")
	customCmd.Flags().Float64Var(&customFat, "fat", 0, "Fat grams per serving")
	customCmd.Flags().Float64Var(&customFiber, "fiber", 0, "Fiber grams per serving")
	customCmd.Flags().StringVar(&customMeal, "meal", "snack", "Meal: breakfast, lunch, dinner, or snack")
	customCmd.Flags().StringVar(&customQty, "qty", "", "Serving multiplier (default: log one serving as entered)")
}
