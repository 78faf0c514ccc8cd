package aggregate

import (
	"math"
	"sort"

	"github.com/nitheesb/personal-calorie-tracker/internal/model"
)

type Trend struct {
	Entries  []model.BodyMetricEntry `json:"entries" yaml:"entries"`
	Start    float64                 `json:"start" yaml:"start"`
	Current  float64                 `json:"current" yaml:"current"`
	Change   float64                 `json:"change" yaml:"change"`
	ToTarget float64                 `json:"to_target" yaml:"to_target"`
}

// SortByDate returns a copy of entries ordered oldest first. Entries sharing a
// date keep their insertion order.
func SortByDate(entries []model.BodyMetricEntry) []model.BodyMetricEntry {
	out := make([]model.BodyMetricEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// BodyTrend summarizes weight movement across entries relative to target.
func BodyTrend(entries []model.BodyMetricEntry, target float64) Trend {
	sorted := SortByDate(entries)
	t := Trend{Entries: sorted}
	if len(sorted) == 0 {
		return t
	}
	t.Start = sorted[0].Weight
	t.Current = sorted[len(sorted)-1].Weight
	t.Change = round1(t.Current - t.Start)
	if target > 0 {
		t.ToTarget = round1(t.Current - target)
	}
	return t
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
