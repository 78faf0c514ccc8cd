package openfoodfacts

import (
	"math"

	"github.com/nitheesb/personal-calorie-tracker/internal/model"
)

const (
	defaultServingSize = "100g"
	unknownProductName = "Unknown Product"
)

// Product is a remote product as reported by the service. Nutrient fields are
// nil when the service omitted them; values are per 100g.
type Product struct {
	Code        string   `json:"code,omitempty"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand,omitempty"`
	ServingSize string   `json:"serving_size,omitempty"`
	Calories    *float64 `json:"calories,omitempty"`
	Protein     *float64 `json:"protein,omitempty"`
	Carbs       *float64 `json:"carbs,omitempty"`
	Fat         *float64 `json:"fat,omitempty"`
	Fiber       *float64 `json:"fiber,omitempty"`
}

// Record converts p into a canonical record: absent nutrients become 0, every
// nutrient is rounded to the nearest integer and the serving defaults to 100g.
func (p Product) Record() model.NutrientRecord {
	name := p.Name
	if name == "" {
		name = unknownProductName
	}
	serving := p.ServingSize
	if serving == "" {
		serving = defaultServingSize
	}
	return model.NutrientRecord{
		Name:        name,
		Calories:    roundOrZero(p.Calories),
		Protein:     roundOrZero(p.Protein),
		Carbs:       roundOrZero(p.Carbs),
		Fat:         roundOrZero(p.Fat),
		Fiber:       roundOrZero(p.Fiber),
		ServingSize: serving,
		Source:      model.SourceRemote,
		Brand:       p.Brand,
	}
}

func roundOrZero(v *float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) || *v < 0 {
		return 0
	}
	return math.Round(*v)
}
