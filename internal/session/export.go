package session

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nitheesb/personal-calorie-tracker/internal/aggregate"
	"github.com/nitheesb/personal-calorie-tracker/internal/model"
)

type Snapshot struct {
	Today    model.DailyLog               `json:"today" yaml:"today"`
	Totals   model.MacroTotals            `json:"totals" yaml:"totals"`
	Progress []aggregate.NutrientProgress `json:"progress" yaml:"progress"`
	Body     []model.BodyMetricEntry      `json:"body" yaml:"body"`
	Goals    model.Goals                  `json:"goals" yaml:"goals"`
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Today:    s.Today(),
		Totals:   s.Totals(),
		Progress: s.Progress(),
		Body:     s.BodyHistory(),
		Goals:    s.goals,
	}
}

// Export writes a snapshot as "json" or "yaml".
func (s *Session) Export(w io.Writer, format string) error {
	snap := s.Snapshot()
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snap); err != nil {
			return fmt.Errorf("encode json export: %w", err)
		}
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return fmt.Errorf("encode yaml export: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("flush yaml export: %w", err)
		}
	default:
		return fmt.Errorf("unsupported export format %q (expected json or yaml)", format)
	}
	return nil
}
