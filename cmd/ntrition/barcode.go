package ntrition

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nitheesb/personal-calorie-tracker/internal/model"
	"github.com/nitheesb/personal-calorie-tracker/internal/scan"
)

var (
	barcodeAdd  bool
	barcodeQty  string
	barcodeMeal string
)

var barcodeCmd = &cobra.Command{
	Use:   "barcode <code>",
	Short: "Look up a product by barcode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code := strings.TrimSpace(args[0])
		meal, err := model.ParseMealSlot(barcodeMeal)
		if err != nil {
			return err
		}
		return withRuntime(cmd, func(rt *runtime) error {
			rec, err := rt.lookup.LookupBarcode(commandContext(cmd), code)
			if err != nil {
				return barcodeErrorMessage(code, err)
			}
			return showOrLog(cmd, rt, rec, barcodeAdd, barcodeQty, meal)
		})
	},
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Read barcodes from a scanner or stdin, one per line (q to stop)",
	RunE: func(cmd *cobra.Command, args []string) error {
		meal, err := model.ParseMealSlot(barcodeMeal)
		if err != nil {
			return err
		}
		return withRuntime(cmd, func(rt *runtime) error {
			ctx := commandContext(cmd)
			dec := scan.NewLineDecoder(cmd.InOrStdin())
			out := cmd.OutOrStdout()
			for {
				code, err := dec.Decode(ctx)
				if errors.Is(err, scan.ErrCancelled) {
					return nil
				}
				if err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
					continue
				}
				rec, ok := rt.lookup.ResolveBarcode(ctx, code)
				if !ok {
					fmt.Fprintf(out, "Product not found for barcode: %s. Try searching by name.\n", code)
					continue
				}
				if err := showOrLog(cmd, rt, rec, barcodeAdd, barcodeQty, meal); err != nil {
					return err
				}
			}
		})
	},
}

func showOrLog(cmd *cobra.Command, rt *runtime, rec model.NutrientRecord, add bool, qty string, meal model.MealSlot) error {
	out := cmd.OutOrStdout()
	if !add {
		if jsonOutput {
			return printJSON(out, rec)
		}
		printRecords(out, 0, []model.NutrientRecord{rec})
		return nil
	}
	item, err := rt.session.LogFood(commandContext(cmd), rec, qty, meal)
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(out, item)
	}
	printLogged(out, item)
	return nil
}

func init() {
	rootCmd.AddCommand(barcodeCmd)
	rootCmd.AddCommand(scanCmd)
	for _, c := range []*cobra.Command{barcodeCmd, scanCmd} {
		c.Flags().BoolVar(&barcodeAdd, "add", false, "Log the product instead of only showing it")
		c.Flags().StringVar(&barcodeQty, "qty", "1", "Serving multiplier when logging")
		c.Flags().StringVar(&barcodeMeal, "meal", "snack", "Meal when logging: breakfast, lunch, dinner, or snack")
	}
}
