package session

import "github.com/nitheesb/personal-calorie-tracker/internal/model"

// SeedBodyHistory is the starting history shown before anything is recorded.
func SeedBodyHistory() []model.BodyMetricEntry {
	pct := func(v float64) *float64 { return &v }
	return []model.BodyMetricEntry{
		{ID: "1", Date: "2023-10-01", Weight: 72.5, BodyFatPercent: pct(22.0)},
		{ID: "2", Date: "2023-10-15", Weight: 71.8, BodyFatPercent: pct(21.5)},
		{ID: "3", Date: "2023-10-25", Weight: 70.2, BodyFatPercent: pct(20.8), MuscleMass: pct(52.5)},
	}
}

// DefaultGoals are the targets used when nothing is configured.
func DefaultGoals() model.Goals {
	return model.Goals{
		Calories:      1850,
		Protein:       160,
		Carbs:         165,
		Fat:           60,
		Fiber:         30,
		WeightGoal:    model.WeightGoalLose,
		StartWeight:   70.2,
		CurrentWeight: 70.2,
		TargetWeight:  64.0,
	}
}
