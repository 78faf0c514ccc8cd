package ntrition

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nitheesb/personal-calorie-tracker/internal/session"
)

var bodyCmd = &cobra.Command{
	Use:   "body",
	Short: "Track body measurements",
}

var (
	bodyDate     string
	bodyWeight   float64
	bodyFat      float64
	bodyMuscle   float64
	bodyVisceral float64
)

var bodyAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a body measurement",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := session.BodyMetricInput{
			Date:           bodyDate,
			Weight:         bodyWeight,
			BodyFatPercent: changedFloat(cmd, "body-fat", bodyFat),
			MuscleMass:     changedFloat(cmd, "muscle", bodyMuscle),
			VisceralFat:    changedFloat(cmd, "visceral", bodyVisceral),
		}
		return withRuntime(cmd, func(rt *runtime) error {
			entry, err := rt.session.AddBodyMetric(commandContext(cmd), in)
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), entry)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %.1f kg on %s\n", entry.Weight, entry.Date)
			return nil
		})
	},
}

var bodyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List body measurements with the weight trend",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd, func(rt *runtime) error {
			trend := rt.session.BodyTrend()
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), trend)
			}
			out := cmd.OutOrStdout()
			if len(trend.Entries) == 0 {
				fmt.Fprintln(out, "No body measurements recorded.")
				return nil
			}
			fmt.Fprintln(out, "DATE\tWEIGHT\tBODY FAT\tMUSCLE\tVISCERAL")
			for _, e := range trend.Entries {
				fmt.Fprintf(out, "%s\t%.1f\t%s\t%s\t%s\n", e.Date, e.Weight,
					optional(e.BodyFatPercent, "%"), optional(e.MuscleMass, ""), optional(e.VisceralFat, ""))
			}
			fmt.Fprintf(out, "Start %.1f kg | Current %.1f kg | Change %+.1f kg", trend.Start, trend.Current, trend.Change)
			if target := rt.session.Goals().TargetWeight; target > 0 {
				fmt.Fprintf(out, " | %.1f kg to target %.1f kg", trend.ToTarget, target)
			}
			fmt.Fprintln(out)
			return nil
		})
	},
}

func optional(v *float64, suffix string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f%s", *v, suffix)
}

func init() {
	rootCmd.AddCommand(bodyCmd)
	bodyCmd.AddCommand(bodyAddCmd, bodyListCmd)

	bodyAddCmd.Flags().StringVar(&bodyDate, "date", "", "Measurement date YYYY-MM-DD (default today)")
	bodyAddCmd.Flags().Float64Var(&bodyWeight, "weight", 0, "Weight in kg")
	bodyAddCmd.Flags().Float64Var(&bodyFat, "body-fat", 0, "Body fat percent")
	bodyAddCmd.Flags().Float64Var(&bodyMuscle, "muscle", 0, "Muscle mass in kg")
	bodyAddCmd.Flags().Float64Var(&bodyVisceral, "visceral", 0, "Visceral fat rating")
	_ = bodyAddCmd.MarkFlagRequired("weight")
}
