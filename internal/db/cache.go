package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nitheesb/personal-calorie-tracker/internal/model"
)

// CanonicalQuery folds case and whitespace so equivalent queries share a cache
// row. Punctuation and non-Latin text are kept as typed.
func CanonicalQuery(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), " ")
}

// Cache stores remote lookup results with an expiry.
type Cache struct {
	db  *sql.DB
	now func() time.Time
}

func NewCache(db *sql.DB) *Cache {
	return &Cache{db: db, now: time.Now}
}

// WithClock replaces the time source used for expiry checks.
func (c *Cache) WithClock(now func() time.Time) *Cache {
	c.now = now
	return c
}

// SearchResults returns a fresh cached page for query. A blank query never hits.
func (c *Cache) SearchResults(ctx context.Context, query string, pageSize int) ([]model.NutrientRecord, bool, error) {
	key := CanonicalQuery(query)
	if key == "" {
		return nil, false, nil
	}
	var raw, expiresAtRaw string
	err := c.db.QueryRowContext(ctx, `
SELECT results_json, expires_at
FROM remote_search_cache
WHERE query_key = ? AND page_size = ?
`, key, pageSize).Scan(&raw, &expiresAtRaw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("lookup remote search cache: %w", err)
	}
	expiresAt, err := time.Parse(time.RFC3339, expiresAtRaw)
	if err != nil {
		return nil, false, fmt.Errorf("parse remote search cache expiry: %w", err)
	}
	if c.now().After(expiresAt) {
		return nil, false, nil
	}
	var items []model.NutrientRecord
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, false, fmt.Errorf("decode remote search cache: %w", err)
	}
	return items, true, nil
}

// PutSearchResults stores a page for query. Blank queries are not cached.
func (c *Cache) PutSearchResults(ctx context.Context, query string, pageSize int, items []model.NutrientRecord, ttl time.Duration) error {
	key := CanonicalQuery(query)
	if key == "" {
		return nil
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal remote search cache payload: %w", err)
	}
	now := c.now()
	_, err = c.db.ExecContext(ctx, `
INSERT INTO remote_search_cache(query_key, page_size, results_json, fetched_at, expires_at)
VALUES(?, ?, ?, ?, ?)
ON CONFLICT(query_key, page_size) DO UPDATE SET
  results_json=excluded.results_json,
  fetched_at=excluded.fetched_at,
  expires_at=excluded.expires_at
`, key, pageSize, string(payload), now.UTC().Format(time.RFC3339), now.Add(ttl).UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("upsert remote search cache: %w", err)
	}
	return nil
}

func (c *Cache) Barcode(ctx context.Context, barcode string) (model.NutrientRecord, bool, error) {
	var rec model.NutrientRecord
	var expiresAtRaw string
	err := c.db.QueryRowContext(ctx, `
SELECT name, brand, serving_size, calories, protein, carbs, fat, fiber, expires_at
FROM barcode_cache
WHERE barcode = ?
`, strings.TrimSpace(barcode)).Scan(&rec.Name, &rec.Brand, &rec.ServingSize, &rec.Calories, &rec.Protein, &rec.Carbs, &rec.Fat, &rec.Fiber, &expiresAtRaw)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NutrientRecord{}, false, nil
	}
	if err != nil {
		return model.NutrientRecord{}, false, fmt.Errorf("lookup barcode cache: %w", err)
	}
	expiresAt, err := time.Parse(time.RFC3339, expiresAtRaw)
	if err != nil {
		return model.NutrientRecord{}, false, fmt.Errorf("parse barcode cache expiry: %w", err)
	}
	if c.now().After(expiresAt) {
		return model.NutrientRecord{}, false, nil
	}
	rec.Source = model.SourceRemote
	return rec, true, nil
}

func (c *Cache) PutBarcode(ctx context.Context, barcode string, rec model.NutrientRecord, ttl time.Duration) error {
	now := c.now()
	_, err := c.db.ExecContext(ctx, `
INSERT INTO barcode_cache(barcode, name, brand, serving_size, calories, protein, carbs, fat, fiber, fetched_at, expires_at)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(barcode) DO UPDATE SET
  name=excluded.name,
  brand=excluded.brand,
  serving_size=excluded.serving_size,
  calories=excluded.calories,
  protein=excluded.protein,
  carbs=excluded.carbs,
  fat=excluded.fat,
  fiber=excluded.fiber,
  fetched_at=excluded.fetched_at,
  expires_at=excluded.expires_at
`, strings.TrimSpace(barcode), rec.Name, rec.Brand, rec.ServingSize, rec.Calories, rec.Protein, rec.Carbs, rec.Fat, rec.Fiber,
		now.UTC().Format(time.RFC3339), now.Add(ttl).UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("upsert barcode cache: %w", err)
	}
	return nil
}

// Purge removes cached rows; expiredOnly keeps rows that are still fresh.
func (c *Cache) Purge(ctx context.Context, expiredOnly bool) (int64, error) {
	var total int64
	for _, table := range []string{"remote_search_cache", "barcode_cache"} {
		q := `DELETE FROM ` + table
		args := []any{}
		if expiredOnly {
			q += ` WHERE expires_at < ?`
			args = append(args, c.now().UTC().Format(time.RFC3339))
		}
		res, err := c.db.ExecContext(ctx, q, args...)
		if err != nil {
			return total, fmt.Errorf("purge %s: %w", table, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return total, fmt.Errorf("purge %s rows affected: %w", table, err)
		}
		total += n
	}
	return total, nil
}
