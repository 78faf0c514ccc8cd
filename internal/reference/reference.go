// Package reference holds the bundled offline food table.
package reference

import (
	"strings"

	"github.com/nitheesb/personal-calorie-tracker/internal/model"
)

// Entry pairs a normalized lookup key with its record.
type Entry struct {
	Key    string
	Record model.NutrientRecord
}

func rec(name string, calories, protein, carbs, fat, fiber float64, serving string) model.NutrientRecord {
	return model.NutrientRecord{
		Name:        name,
		Calories:    calories,
		Protein:     protein,
		Carbs:       carbs,
		Fat:         fat,
		Fiber:       fiber,
		ServingSize: serving,
		Source:      model.SourceLocal,
	}
}

func branded(name string, calories, protein, carbs, fat, fiber float64, serving, brand string) model.NutrientRecord {
	r := rec(name, calories, protein, carbs, fat, fiber, serving)
	r.Brand = brand
	return r
}

// Entries returns a copy of the table in display order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

func Len() int { return len(entries) }

// Match returns every record whose key contains the query or is contained in it.
// The query is trimmed and lowercased; a blank query matches nothing.
func Match(query string) []model.NutrientRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []model.NutrientRecord{}
	}
	out := make([]model.NutrientRecord, 0, 8)
	for _, e := range entries {
		if strings.Contains(e.Key, q) || strings.Contains(q, e.Key) {
			out = append(out, e.Record)
		}
	}
	return out
}

// ByName finds a record by its display name, case-insensitively.
func ByName(name string) (model.NutrientRecord, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, e := range entries {
		if strings.ToLower(e.Record.Name) == n {
			return e.Record, true
		}
	}
	return model.NutrientRecord{}, false
}

// QuickAdds are suggestions offered before the user has typed anything useful.
var QuickAdds = []string{"Wheat Bread", "Sambar", "Corn Flakes", "Quinoa Bread", "Vatha Kuzhambu", "Pad Thai", "Egg", "Salad", "Ranch"}
