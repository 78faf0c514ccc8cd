// Package session owns the day's food log and the body-metric history and
// persists both after every change.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nitheesb/personal-calorie-tracker/internal/aggregate"
	"github.com/nitheesb/personal-calorie-tracker/internal/apperror"
	"github.com/nitheesb/personal-calorie-tracker/internal/model"
	"github.com/nitheesb/personal-calorie-tracker/internal/portion"
)

const (
	KeyDailyLog = "ntrition_daily_log"
	KeyBodyLogs = "ntrition_body_logs"

	dateLayout = "2006-01-02"
)

// Store is the key-value persistence the session writes through.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, value []byte) error
}

type Options struct {
	// Goals defaults to DefaultGoals when left zero.
	Goals model.Goals
	Now   func() time.Time
	NewID func() string
	Log   *zap.Logger
	// SeedBody is used when no body history has been stored yet.
	SeedBody []model.BodyMetricEntry
}

// Session is a single-actor owner of mutable log state. It is not safe for
// concurrent mutation.
type Session struct {
	store    Store
	goals    model.Goals
	now      func() time.Time
	newID    func() string
	log      *zap.Logger
	validate *validator.Validate

	today model.DailyLog
	body  []model.BodyMetricEntry
}

// Load reads persisted state. A missing or unreadable daily log, or one from a
// previous day, becomes an empty log for today. A missing or unreadable body
// history becomes the seed history. Only store failures are returned.
func Load(ctx context.Context, store Store, opts Options) (*Session, error) {
	if store == nil {
		return nil, errors.New("session store is required")
	}
	s := &Session{
		store:    store,
		goals:    opts.Goals,
		now:      opts.Now,
		newID:    opts.NewID,
		log:      opts.Log,
		validate: validator.New(),
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = func() string { return uuid.NewString() }
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.goals == (model.Goals{}) {
		s.goals = DefaultGoals()
	}
	seed := opts.SeedBody
	if seed == nil {
		seed = SeedBodyHistory()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log, err := s.loadDailyLog(gctx)
		if err != nil {
			return err
		}
		s.today = log
		return nil
	})
	g.Go(func() error {
		body, err := s.loadBody(gctx, seed)
		if err != nil {
			return err
		}
		s.body = body
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) dateKey() string {
	return s.now().Format(dateLayout)
}

func (s *Session) loadDailyLog(ctx context.Context) (model.DailyLog, error) {
	today := s.dateKey()
	empty := model.DailyLog{Date: today, Items: []model.LoggedFoodItem{}}
	raw, found, err := s.store.Load(ctx, KeyDailyLog)
	if err != nil {
		return model.DailyLog{}, fmt.Errorf("load daily log: %w", err)
	}
	if !found {
		return empty, nil
	}
	var stored model.DailyLog
	if err := json.Unmarshal(raw, &stored); err != nil {
		s.log.Warn("discarding unreadable daily log", zap.Error(err))
		return empty, nil
	}
	if stored.Date != today {
		s.log.Info("starting a new day", zap.String("previous", stored.Date), zap.String("today", today))
		return empty, nil
	}
	if stored.Items == nil {
		stored.Items = []model.LoggedFoodItem{}
	}
	return stored, nil
}

func (s *Session) loadBody(ctx context.Context, seed []model.BodyMetricEntry) ([]model.BodyMetricEntry, error) {
	raw, found, err := s.store.Load(ctx, KeyBodyLogs)
	if err != nil {
		return nil, fmt.Errorf("load body history: %w", err)
	}
	if !found {
		return cloneBody(seed), nil
	}
	var stored []model.BodyMetricEntry
	if err := json.Unmarshal(raw, &stored); err != nil || stored == nil {
		s.log.Warn("discarding unreadable body history", zap.Error(err))
		return cloneBody(seed), nil
	}
	return stored, nil
}

// rollover empties the log when the calendar day has changed since it was loaded.
func (s *Session) rollover() {
	today := s.dateKey()
	if s.today.Date == today {
		return
	}
	s.log.Info("starting a new day", zap.String("previous", s.today.Date), zap.String("today", today))
	s.today = model.DailyLog{Date: today, Items: []model.LoggedFoodItem{}}
}

// LogFood scales rec by the user-entered quantity and records it as the most
// recent item. An empty meal defaults to snack.
func (s *Session) LogFood(ctx context.Context, rec model.NutrientRecord, quantity string, meal model.MealSlot) (model.LoggedFoodItem, error) {
	return s.logScaled(ctx, rec, portion.ScaleInput(rec, quantity), meal)
}

func (s *Session) logScaled(ctx context.Context, rec model.NutrientRecord, scaled portion.Scaled, meal model.MealSlot) (model.LoggedFoodItem, error) {
	if meal == "" {
		meal = model.MealSnack
	}
	if _, err := model.ParseMealSlot(string(meal)); err != nil {
		return model.LoggedFoodItem{}, err
	}
	if strings.TrimSpace(rec.Name) == "" {
		return model.LoggedFoodItem{}, errors.New("food name is required")
	}
	item := model.LoggedFoodItem{
		ID:          s.newID(),
		Timestamp:   s.now().UnixMilli(),
		Name:        scaled.Name,
		Brand:       scaled.Brand,
		Calories:    scaled.Calories,
		Protein:     scaled.Protein,
		Carbs:       scaled.Carbs,
		Fat:         scaled.Fat,
		Fiber:       scaled.Fiber,
		ServingSize: scaled.ServingSize,
		Meal:        meal,
		Source:      scaled.Source,
	}
	s.rollover()
	s.today.Items = append([]model.LoggedFoodItem{item}, s.today.Items...)
	s.persist(ctx, KeyDailyLog, s.today)
	return item, nil
}

type CustomFoodInput struct {
	Name        string         `validate:"required"`
	Brand       string         `validate:"-"`
	ServingSize string         `validate:"-"`
	Calories    *float64       `validate:"required,gte=0"`
	Protein     *float64       `validate:"omitempty,gte=0"`
	Carbs       *float64       `validate:"omitempty,gte=0"`
	Fat         *float64       `validate:"omitempty,gte=0"`
	Fiber       *float64       `validate:"omitempty,gte=0"`
	Meal        model.MealSlot `validate:"omitempty,oneof=breakfast lunch dinner snack"`
	Quantity    string         `validate:"-"`
}

// CustomRecord validates in and converts it to a record. Absent macros are 0
// and the serving defaults to "1 serving".
func (s *Session) CustomRecord(in CustomFoodInput) (model.NutrientRecord, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Meal = model.MealSlot(strings.ToLower(strings.TrimSpace(string(in.Meal))))
	if err := apperror.Validate(s.validate, in); err != nil {
		return model.NutrientRecord{}, err
	}
	serving := strings.TrimSpace(in.ServingSize)
	if serving == "" {
		serving = "1 serving"
	}
	return model.NutrientRecord{
		Name:        in.Name,
		Calories:    *in.Calories,
		Protein:     valueOrZero(in.Protein),
		Carbs:       valueOrZero(in.Carbs),
		Fat:         valueOrZero(in.Fat),
		Fiber:       valueOrZero(in.Fiber),
		ServingSize: serving,
		Source:      model.SourceCustom,
		Brand:       strings.TrimSpace(in.Brand),
	}, nil
}

// LogCustomFood validates a manually entered food and logs it. Without a
// quantity the entry is logged once with its serving text as entered.
// Rejected input leaves the log unchanged.
func (s *Session) LogCustomFood(ctx context.Context, in CustomFoodInput) (model.LoggedFoodItem, error) {
	rec, err := s.CustomRecord(in)
	if err != nil {
		return model.LoggedFoodItem{}, err
	}
	meal := model.MealSlot(strings.ToLower(strings.TrimSpace(string(in.Meal))))
	if strings.TrimSpace(in.Quantity) != "" {
		return s.LogFood(ctx, rec, in.Quantity, meal)
	}
	scaled := portion.Scale(rec, 1)
	scaled.ServingSize = rec.ServingSize
	return s.logScaled(ctx, rec, scaled, meal)
}

type BodyMetricInput struct {
	Date           string   `validate:"omitempty,datetime=2006-01-02"`
	Weight         float64  `validate:"gt=0"`
	BodyFatPercent *float64 `validate:"omitempty,gte=0,lte=100"`
	MuscleMass     *float64 `validate:"omitempty,gte=0"`
	VisceralFat    *float64 `validate:"omitempty,gte=0"`
}

// AddBodyMetric validates and appends a measurement. The date defaults to today.
func (s *Session) AddBodyMetric(ctx context.Context, in BodyMetricInput) (model.BodyMetricEntry, error) {
	in.Date = strings.TrimSpace(in.Date)
	if err := apperror.Validate(s.validate, in); err != nil {
		return model.BodyMetricEntry{}, err
	}
	if in.Date == "" {
		in.Date = s.dateKey()
	}
	entry := model.BodyMetricEntry{
		ID:             s.newID(),
		Date:           in.Date,
		Weight:         in.Weight,
		BodyFatPercent: in.BodyFatPercent,
		MuscleMass:     in.MuscleMass,
		VisceralFat:    in.VisceralFat,
	}
	s.body = append(s.body, entry)
	s.persist(ctx, KeyBodyLogs, s.body)
	return entry, nil
}

// persist writes v under key. Failures are logged and never undo the change.
func (s *Session) persist(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.log.Error("encode session state", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.store.Save(ctx, key, raw); err != nil {
		s.log.Error("save session state", zap.String("key", key), zap.Error(err))
	}
}

// Today returns a copy of the current day's log.
func (s *Session) Today() model.DailyLog {
	s.rollover()
	items := make([]model.LoggedFoodItem, len(s.today.Items))
	copy(items, s.today.Items)
	return model.DailyLog{Date: s.today.Date, Items: items}
}

// BodyHistory returns the measurements ordered oldest first.
func (s *Session) BodyHistory() []model.BodyMetricEntry {
	return aggregate.SortByDate(s.body)
}

func (s *Session) Goals() model.Goals {
	return s.goals
}

func (s *Session) Totals() model.MacroTotals {
	return aggregate.Totals(s.Today().Items)
}

func (s *Session) Progress() []aggregate.NutrientProgress {
	return aggregate.Progress(s.Totals(), s.goals.Macros())
}

func (s *Session) BodyTrend() aggregate.Trend {
	return aggregate.BodyTrend(s.body, s.goals.TargetWeight)
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func cloneBody(in []model.BodyMetricEntry) []model.BodyMetricEntry {
	out := make([]model.BodyMetricEntry, len(in))
	copy(out, in)
	return out
}
