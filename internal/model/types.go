package model

import (
	"fmt"
	"strings"
)

type Source string

const (
	SourceLocal  Source = "local"
	SourceRemote Source = "remote"
	SourceCustom Source = "custom"
)

// NutrientRecord describes one food per its stated serving.
type NutrientRecord struct {
	Name        string  `json:"name" yaml:"name"`
	Calories    float64 `json:"calories" yaml:"calories"`
	Protein     float64 `json:"protein" yaml:"protein"`
	Carbs       float64 `json:"carbs" yaml:"carbs"`
	Fat         float64 `json:"fat" yaml:"fat"`
	Fiber       float64 `json:"fiber" yaml:"fiber"`
	ServingSize string  `json:"servingSize" yaml:"serving_size"`
	Source      Source  `json:"source" yaml:"source"`
	Brand       string  `json:"brand,omitempty" yaml:"brand,omitempty"`
}

// DedupKey is the identity used when merging result lists.
func (r NutrientRecord) DedupKey() string {
	return strings.ToLower(strings.TrimSpace(r.Name))
}

func (r NutrientRecord) Macros() MacroTotals {
	return MacroTotals{Calories: r.Calories, Protein: r.Protein, Carbs: r.Carbs, Fat: r.Fat, Fiber: r.Fiber}
}

type MealSlot string

const (
	MealBreakfast MealSlot = "breakfast"
	MealLunch     MealSlot = "lunch"
	MealDinner    MealSlot = "dinner"
	MealSnack     MealSlot = "snack"
)

var MealSlots = []MealSlot{MealBreakfast, MealLunch, MealDinner, MealSnack}

func ParseMealSlot(raw string) (MealSlot, error) {
	v := MealSlot(strings.ToLower(strings.TrimSpace(raw)))
	if v == "" {
		return MealSnack, nil
	}
	for _, m := range MealSlots {
		if m == v {
			return v, nil
		}
	}
	return "", fmt.Errorf("invalid meal %q (expected breakfast, lunch, dinner, or snack)", raw)
}

type LoggedFoodItem struct {
	ID          string   `json:"id" yaml:"id"`
	Timestamp   int64    `json:"timestamp" yaml:"timestamp"`
	Name        string   `json:"name" yaml:"name"`
	Brand       string   `json:"brand,omitempty" yaml:"brand,omitempty"`
	Calories    float64  `json:"calories" yaml:"calories"`
	Protein     float64  `json:"protein" yaml:"protein"`
	Carbs       float64  `json:"carbs" yaml:"carbs"`
	Fat         float64  `json:"fat" yaml:"fat"`
	Fiber       float64  `json:"fiber" yaml:"fiber"`
	ServingSize string   `json:"servingSize" yaml:"serving_size"`
	Meal        MealSlot `json:"type" yaml:"meal"`
	Source      Source   `json:"source,omitempty" yaml:"source,omitempty"`
}

func (i LoggedFoodItem) Macros() MacroTotals {
	return MacroTotals{Calories: i.Calories, Protein: i.Protein, Carbs: i.Carbs, Fat: i.Fat, Fiber: i.Fiber}
}

// DailyLog holds one calendar day of items, most recent first.
type DailyLog struct {
	Date  string           `json:"date" yaml:"date"`
	Items []LoggedFoodItem `json:"items" yaml:"items"`
}

type BodyMetricEntry struct {
	ID             string   `json:"id" yaml:"id"`
	Date           string   `json:"date" yaml:"date"`
	Weight         float64  `json:"weight" yaml:"weight"`
	BodyFatPercent *float64 `json:"bodyFatPercent,omitempty" yaml:"body_fat_percent,omitempty"`
	MuscleMass     *float64 `json:"muscleMass,omitempty" yaml:"muscle_mass,omitempty"`
	VisceralFat    *float64 `json:"visceralFat,omitempty" yaml:"visceral_fat,omitempty"`
}

type WeightGoal string

const (
	WeightGoalLose     WeightGoal = "lose"
	WeightGoalMaintain WeightGoal = "maintain"
	WeightGoalGain     WeightGoal = "gain"
)

type Goals struct {
	Calories      float64    `json:"calories" yaml:"calories" koanf:"calories" validate:"gte=0"`
	Protein       float64    `json:"protein" yaml:"protein" koanf:"protein" validate:"gte=0"`
	Carbs         float64    `json:"carbs" yaml:"carbs" koanf:"carbs" validate:"gte=0"`
	Fat           float64    `json:"fat" yaml:"fat" koanf:"fat" validate:"gte=0"`
	Fiber         float64    `json:"fiber" yaml:"fiber" koanf:"fiber" validate:"gte=0"`
	WeightGoal    WeightGoal `json:"weightGoal" yaml:"weight_goal" koanf:"weight_goal" validate:"oneof=lose maintain gain"`
	StartWeight   float64    `json:"startWeight" yaml:"start_weight" koanf:"start_weight" validate:"gte=0"`
	CurrentWeight float64    `json:"currentWeight" yaml:"current_weight" koanf:"current_weight" validate:"gte=0"`
	TargetWeight  float64    `json:"targetWeight" yaml:"target_weight" koanf:"target_weight" validate:"gte=0"`
}

func (g Goals) Macros() MacroTotals {
	return MacroTotals{Calories: g.Calories, Protein: g.Protein, Carbs: g.Carbs, Fat: g.Fat, Fiber: g.Fiber}
}

type MacroTotals struct {
	Calories float64 `json:"calories" yaml:"calories"`
	Protein  float64 `json:"protein" yaml:"protein"`
	Carbs    float64 `json:"carbs" yaml:"carbs"`
	Fat      float64 `json:"fat" yaml:"fat"`
	Fiber    float64 `json:"fiber" yaml:"fiber"`
}

func (m MacroTotals) Add(o MacroTotals) MacroTotals {
	return MacroTotals{
		Calories: m.Calories + o.Calories,
		Protein:  m.Protein + o.Protein,
		Carbs:    m.Carbs + o.Carbs,
		Fat:      m.Fat + o.Fat,
		Fiber:    m.Fiber + o.Fiber,
	}
}
