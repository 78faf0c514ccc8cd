// Package aggregate rolls logged items up into totals and progress against goals.
package aggregate

import (
	"math"

	"github.com/nitheesb/personal-calorie-tracker/internal/model"
)

// Totals sums the five nutrient fields over items.
func Totals(items []model.LoggedFoodItem) model.MacroTotals {
	var out model.MacroTotals
	for _, it := range items {
		out = out.Add(it.Macros())
	}
	return out
}

// PercentOfGoal returns total as a percentage of goal. A non-positive goal yields 0.
func PercentOfGoal(total, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return total / goal * 100
}

// Remaining is how much of goal is left, never negative.
func Remaining(goal, total float64) float64 {
	return math.Max(0, goal-total)
}

// RingFill is the visual fill of a progress ring, capped at 100.
func RingFill(total, goal float64) float64 {
	return math.Min(100, PercentOfGoal(total, goal))
}

type NutrientProgress struct {
	Key       string  `json:"key" yaml:"key"`
	Label     string  `json:"label" yaml:"label"`
	Unit      string  `json:"unit" yaml:"unit"`
	Current   float64 `json:"current" yaml:"current"`
	Goal      float64 `json:"goal" yaml:"goal"`
	Remaining float64 `json:"remaining" yaml:"remaining"`
	Percent   float64 `json:"percent" yaml:"percent"`
	Fill      float64 `json:"fill" yaml:"fill"`
}

// Progress builds one row per nutrient. Percent is rounded for display and
// left unclamped; Fill is clamped.
func Progress(totals, goals model.MacroTotals) []NutrientProgress {
	rows := []struct {
		key, label, unit string
		cur, goal        float64
	}{
		{"calories", "Calories", "kcal", totals.Calories, goals.Calories},
		{"protein", "Protein", "g", totals.Protein, goals.Protein},
		{"carbs", "Carbs", "g", totals.Carbs, goals.Carbs},
		{"fat", "Fat", "g", totals.Fat, goals.Fat},
		{"fiber", "Fiber", "g", totals.Fiber, goals.Fiber},
	}
	out := make([]NutrientProgress, 0, len(rows))
	for _, r := range rows {
		out = append(out, NutrientProgress{
			Key:       r.key,
			Label:     r.label,
			Unit:      r.unit,
			Current:   r.cur,
			Goal:      r.goal,
			Remaining: Remaining(r.goal, r.cur),
			Percent:   math.Round(PercentOfGoal(r.cur, r.goal)),
			Fill:      RingFill(r.cur, r.goal),
		})
	}
	return out
}
