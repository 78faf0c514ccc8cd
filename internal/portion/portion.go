// Package portion scales nutrient records by a serving multiplier.
package portion

import (
	"math"
	"strconv"
	"strings"

	"github.com/nitheesb/personal-calorie-tracker/internal/model"
)

const (
	// MinQuantity and QuantityStep bound the quantity stepper offered to users.
	// Scale itself accepts any non-negative quantity.
	MinQuantity  = 0.5
	QuantityStep = 0.5
)

// Scaled is a record after multiplication, ready to be logged.
type Scaled struct {
	Name        string
	Brand       string
	Calories    float64
	Protein     float64
	Carbs       float64
	Fat         float64
	Fiber       float64
	ServingSize string
	Quantity    float64
	Source      model.Source
}

func (s Scaled) Macros() model.MacroTotals {
	return model.MacroTotals{Calories: s.Calories, Protein: s.Protein, Carbs: s.Carbs, Fat: s.Fat, Fiber: s.Fiber}
}

// Scale multiplies every nutrient by quantity. Calories are rounded to the
// nearest integer and the other macros to one decimal place.
func Scale(rec model.NutrientRecord, quantity float64) Scaled {
	return Scaled{
		Name:        rec.Name,
		Brand:       rec.Brand,
		Calories:    math.Round(rec.Calories * quantity),
		Protein:     round1(rec.Protein * quantity),
		Carbs:       round1(rec.Carbs * quantity),
		Fat:         round1(rec.Fat * quantity),
		Fiber:       round1(rec.Fiber * quantity),
		ServingSize: FormatQuantity(quantity) + " x " + rec.ServingSize,
		Quantity:    quantity,
		Source:      rec.Source,
	}
}

// ScaleInput scales by the quantity parsed from raw user input.
func ScaleInput(rec model.NutrientRecord, raw string) Scaled {
	return Scale(rec, ParseQuantity(raw))
}

// ParseQuantity parses a user-entered multiplier. Empty, non-numeric,
// non-finite or negative input yields 1.
func ParseQuantity(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1
	}
	q, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(q) || math.IsInf(q, 0) || q < 0 {
		return 1
	}
	return q
}

// Step moves q by delta stepper increments without dropping below MinQuantity.
func Step(q float64, delta int) float64 {
	next := q + float64(delta)*QuantityStep
	if next < MinQuantity {
		return MinQuantity
	}
	return next
}

// FormatQuantity renders q with the fewest digits that round-trip.
func FormatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
