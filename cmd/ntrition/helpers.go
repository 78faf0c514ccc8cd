package ntrition

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nitheesb/personal-calorie-tracker/internal/app"
	"github.com/nitheesb/personal-calorie-tracker/internal/config"
	"github.com/nitheesb/personal-calorie-tracker/internal/db"
	"github.com/nitheesb/personal-calorie-tracker/internal/logger"
	"github.com/nitheesb/personal-calorie-tracker/internal/lookup"
	"github.com/nitheesb/personal-calorie-tracker/internal/model"
	"github.com/nitheesb/personal-calorie-tracker/internal/provider/openfoodfacts"
	"github.com/nitheesb/personal-calorie-tracker/internal/session"
)

// runtime bundles everything a command needs for one invocation.
type runtime struct {
	cfg     *config.Config
	log     *zap.Logger
	db      *sql.DB
	lookup  *lookup.Service
	session *session.Session
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func loadConfig() (*config.Config, error) {
	path := configPath
	required := path != ""
	if path == "" {
		p, err := app.DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return config.Load(config.LoadOptions{ConfigPath: path, Required: required, DotEnvPath: ".env"})
}

func resolveDBPath(cfg *config.Config) (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if cfg != nil && strings.TrimSpace(cfg.DBPath) != "" {
		return cfg.DBPath, nil
	}
	return app.DefaultDBPath()
}

func openDB(cfg *config.Config) (*sql.DB, string, error) {
	path, err := resolveDBPath(cfg)
	if err != nil {
		return nil, "", err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return nil, "", err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return nil, "", err
	}
	return sqldb, path, nil
}

func withRuntime(cmd *cobra.Command, run func(*runtime) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Env)
	defer func() { _ = log.Sync() }()

	sqldb, _, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	opts := lookup.Options{
		PageSize:   cfg.Remote.PageSize,
		SearchTTL:  cfg.Cache.SearchTTL,
		BarcodeTTL: cfg.Cache.BarcodeTTL,
		Log:        log.Named("lookup"),
	}
	if cfg.Cache.Enabled {
		opts.Cache = db.NewCache(sqldb)
	}
	var remote lookup.Remote
	if !offline && !cfg.Remote.Offline {
		remote = &openfoodfacts.Client{
			BaseURL:       cfg.Remote.BaseURL,
			HTTPClient:    &http.Client{Timeout: cfg.Remote.Timeout},
			UserAgent:     cfg.Remote.UserAgent,
			PageSize:      cfg.Remote.PageSize,
			MaxTries:      cfg.Remote.MaxTries,
			RetryInterval: cfg.Remote.RetryInterval,
			Log:           log.Named("openfoodfacts"),
		}
	}

	sess, err := session.Load(commandContext(cmd), db.NewStore(sqldb), session.Options{
		Goals: cfg.Goals,
		Log:   log.Named("session"),
	})
	if err != nil {
		return err
	}
	return run(&runtime{
		cfg:     cfg,
		log:     log,
		db:      sqldb,
		lookup:  lookup.New(remote, opts),
		session: sess,
	})
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(w, string(b))
	return nil
}

func printRecords(w io.Writer, start int, recs []model.NutrientRecord) {
	for i, r := range recs {
		brand := ""
		if r.Brand != "" {
			brand = " [" + r.Brand + "]"
		}
		fmt.Fprintf(w, "%d\t%s%s\t%s\t%.0f kcal\tP %.1fg | C %.1fg | F %.1fg | Fib %.1fg\t%s\n",
			start+i+1, r.Name, brand, r.ServingSize, r.Calories, r.Protein, r.Carbs, r.Fat, r.Fiber, r.Source)
	}
}

func printLogged(w io.Writer, item model.LoggedFoodItem) {
	fmt.Fprintf(w, "Logged %s (%s) to %s: %.0f kcal | P %.1fg | C %.1fg | F %.1fg | Fib %.1fg\n",
		item.Name, item.ServingSize, item.Meal, item.Calories, item.Protein, item.Carbs, item.Fat, item.Fiber)
}

func barcodeErrorMessage(code string, err error) error {
	switch {
	case errors.Is(err, lookup.ErrProductNotFound):
		return fmt.Errorf("product not found for barcode %s; try searching by name", code)
	case errors.Is(err, lookup.ErrLookupUnavailable):
		return fmt.Errorf("could not reach Open Food Facts for barcode %s; check your connection or search by name", code)
	default:
		return err
	}
}
