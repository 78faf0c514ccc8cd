package portion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nitheesb/personal-calorie-tracker/internal/model"
)

var egg = model.NutrientRecord{
	Name: "Boiled Egg", Calories: 72, Protein: 6.3, Carbs: 0.6, Fat: 5, Fiber: 0,
	ServingSize: "1 large", Source: model.SourceLocal,
}

func TestScaleRoundsPerField(t *testing.T) {
	t.Parallel()

	dosa := model.NutrientRecord{Name: "Plain Dosa", Calories: 133, Protein: 3.8, Carbs: 23, Fat: 3.5, Fiber: 0.8, ServingSize: "1 medium"}
	got := Scale(dosa, 1.5)
	assert.Equal(t, 200.0, got.Calories)
	assert.Equal(t, 5.7, got.Protein)
	assert.Equal(t, 34.5, got.Carbs)
	assert.Equal(t, 5.3, got.Fat)
	assert.Equal(t, 1.2, got.Fiber)
	assert.Equal(t, "1.5 x 1 medium", got.ServingSize)
}

func TestScaleByTwo(t *testing.T) {
	t.Parallel()

	got := Scale(egg, 2)
	assert.Equal(t, math.Round(egg.Calories*2), got.Calories)
	assert.Equal(t, 12.6, got.Protein)
	assert.Equal(t, "2 x 1 large", got.ServingSize)
	assert.Equal(t, "Boiled Egg", got.Name)
}

func TestScaleZeroQuantity(t *testing.T) {
	t.Parallel()

	got := Scale(egg, 0)
	assert.Equal(t, model.MacroTotals{}, got.Macros())
	assert.Equal(t, "0 x 1 large", got.ServingSize)
}

func TestParseQuantity(t *testing.T) {
	t.Parallel()

	cases := map[string]float64{
		"":      1,
		"  ":    1,
		"abc":   1,
		"-2":    1,
		"NaN":   1,
		"+Inf":  1,
		"0":     0,
		"2":     2,
		" 1.5 ": 1.5,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseQuantity(in), "input %q", in)
	}
}

func TestScaleInputEmptyEqualsOne(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Scale(egg, 1), ScaleInput(egg, ""))
	assert.Equal(t, Scale(egg, 1), ScaleInput(egg, "lots"))
}

func TestStepClampsAtMinimum(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.5, Step(1, 1))
	assert.Equal(t, 0.5, Step(1, -1))
	assert.Equal(t, MinQuantity, Step(0.5, -1))
}
