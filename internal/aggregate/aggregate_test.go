package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nitheesb/personal-calorie-tracker/internal/model"
)

func item(cal, p, c, f, fib float64) model.LoggedFoodItem {
	return model.LoggedFoodItem{Calories: cal, Protein: p, Carbs: c, Fat: f, Fiber: fib}
}

func TestTotalsEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, model.MacroTotals{}, Totals(nil))
	assert.Equal(t, model.MacroTotals{}, Totals([]model.LoggedFoodItem{}))
}

func TestTotalsOrderIndependent(t *testing.T) {
	t.Parallel()

	a := item(72, 6.3, 0.6, 5, 0)
	b := item(133, 3.8, 23, 3.5, 0.8)
	c := item(2, 0.3, 0, 0, 0)

	want := Totals([]model.LoggedFoodItem{a, b, c})
	assert.Equal(t, 207.0, want.Calories)
	for _, perm := range [][]model.LoggedFoodItem{{c, b, a}, {b, a, c}, {a, c, b}} {
		got := Totals(perm)
		assert.InDelta(t, want.Calories, got.Calories, 1e-9)
		assert.InDelta(t, want.Protein, got.Protein, 1e-9)
		assert.InDelta(t, want.Carbs, got.Carbs, 1e-9)
		assert.InDelta(t, want.Fat, got.Fat, 1e-9)
		assert.InDelta(t, want.Fiber, got.Fiber, 1e-9)
	}
}

func TestPercentAndClamps(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 50.0, PercentOfGoal(925, 1850))
	assert.Equal(t, 0.0, PercentOfGoal(100, 0))
	assert.Equal(t, 0.0, PercentOfGoal(100, -5))

	assert.Equal(t, 120.0, PercentOfGoal(120, 100))
	assert.Equal(t, 100.0, RingFill(120, 100))
	assert.Equal(t, 0.0, Remaining(100, 120))
	assert.Equal(t, 30.0, Remaining(100, 70))
}

func TestProgressRows(t *testing.T) {
	t.Parallel()

	rows := Progress(
		model.MacroTotals{Calories: 2000, Protein: 80, Carbs: 0, Fat: 30, Fiber: 10},
		model.MacroTotals{Calories: 1850, Protein: 160, Carbs: 165, Fat: 60, Fiber: 0},
	)
	require.Len(t, rows, 5)
	assert.Equal(t, "calories", rows[0].Key)
	assert.Equal(t, 108.0, rows[0].Percent)
	assert.Equal(t, 100.0, rows[0].Fill)
	assert.Equal(t, 0.0, rows[0].Remaining)
	assert.Equal(t, 50.0, rows[1].Percent)
	assert.Equal(t, 80.0, rows[1].Remaining)
	assert.Equal(t, 0.0, rows[4].Percent)
}

func TestBodyTrend(t *testing.T) {
	t.Parallel()

	entries := []model.BodyMetricEntry{
		{ID: "3", Date: "2023-10-25", Weight: 70.2},
		{ID: "1", Date: "2023-10-01", Weight: 72.5},
		{ID: "2", Date: "2023-10-15", Weight: 71.8},
	}
	tr := BodyTrend(entries, 64)
	require.Len(t, tr.Entries, 3)
	assert.Equal(t, "1", tr.Entries[0].ID)
	assert.Equal(t, 72.5, tr.Start)
	assert.Equal(t, 70.2, tr.Current)
	assert.Equal(t, -2.3, tr.Change)
	assert.Equal(t, 6.2, tr.ToTarget)
	assert.Equal(t, "3", entries[0].ID, "input must not be reordered")

	empty := BodyTrend(nil, 64)
	assert.Empty(t, empty.Entries)
	assert.Equal(t, 0.0, empty.Change)
}
