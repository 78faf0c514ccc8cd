// Package lookup merges the bundled reference table with remote product search.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/nitheesb/personal-calorie-tracker/internal/model"
	"github.com/nitheesb/personal-calorie-tracker/internal/provider/openfoodfacts"
	"github.com/nitheesb/personal-calorie-tracker/internal/reference"
)

const (
	DefaultSearchTTL  = 7 * 24 * time.Hour
	DefaultBarcodeTTL = 30 * 24 * time.Hour
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrLookupUnavailable = errors.New("product lookup unavailable")
)

// Remote is the product service the lookup talks to.
type Remote interface {
	Search(ctx context.Context, query string) ([]openfoodfacts.Product, error)
	Product(ctx context.Context, barcode string) (openfoodfacts.Product, error)
}

// Cache keeps successful remote answers. Failures are never cached.
type Cache interface {
	SearchResults(ctx context.Context, query string, pageSize int) ([]model.NutrientRecord, bool, error)
	PutSearchResults(ctx context.Context, query string, pageSize int, items []model.NutrientRecord, ttl time.Duration) error
	Barcode(ctx context.Context, barcode string) (model.NutrientRecord, bool, error)
	PutBarcode(ctx context.Context, barcode string, rec model.NutrientRecord, ttl time.Duration) error
}

type Options struct {
	Cache      Cache
	PageSize   int
	SearchTTL  time.Duration
	BarcodeTTL time.Duration
	Log        *zap.Logger
}

type Service struct {
	remote     Remote
	cache      Cache
	pageSize   int
	searchTTL  time.Duration
	barcodeTTL time.Duration
	log        *zap.Logger

	generation atomic.Uint64
	// deliverMu orders generation issuance against merged-batch delivery.
	deliverMu  sync.Mutex
}

func New(remote Remote, opts Options) *Service {
	s := &Service{
		remote:     remote,
		cache:      opts.Cache,
		pageSize:   opts.PageSize,
		searchTTL:  opts.SearchTTL,
		barcodeTTL: opts.BarcodeTTL,
		log:        opts.Log,
	}
	if s.pageSize <= 0 {
		s.pageSize = openfoodfacts.DefaultPageSize
	}
	if s.searchTTL <= 0 {
		s.searchTTL = DefaultSearchTTL
	}
	if s.barcodeTTL <= 0 {
		s.barcodeTTL = DefaultBarcodeTTL
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s
}

// SearchLocal matches the query against the reference table. It never fails.
func (s *Service) SearchLocal(query string) []model.NutrientRecord {
	return reference.Match(query)
}

// SearchRemote queries the remote product service. Any failure yields an empty result.
func (s *Service) SearchRemote(ctx context.Context, query string) []model.NutrientRecord {
	items, err := s.searchRemote(ctx, query)
	if err != nil {
		s.log.Warn("remote search failed", zap.String("query", query), zap.Error(err))
		return []model.NutrientRecord{}
	}
	return items
}

func (s *Service) searchRemote(ctx context.Context, query string) ([]model.NutrientRecord, error) {
	query = strings.TrimSpace(query)
	if query == "" || s.remote == nil {
		return []model.NutrientRecord{}, nil
	}
	if s.cache != nil {
		cached, found, err := s.cache.SearchResults(ctx, query, s.pageSize)
		if err != nil {
			s.log.Warn("read remote search cache", zap.Error(err))
		} else if found {
			s.log.Debug("remote search cache hit", zap.String("query", query))
			return cached, nil
		}
	}
	products, err := s.remote.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search remote products: %w", err)
	}
	out := make([]model.NutrientRecord, 0, len(products))
	for _, p := range products {
		out = append(out, p.Record())
		if len(out) == s.pageSize {
			break
		}
	}
	if s.cache != nil {
		if err := s.cache.PutSearchResults(ctx, query, s.pageSize, out, s.searchTTL); err != nil {
			s.log.Warn("write remote search cache", zap.Error(err))
		}
	}
	return out, nil
}

// Merge appends remote records to local ones, dropping any remote record whose
// name is already present among the results before it.
func Merge(local, remote []model.NutrientRecord) []model.NutrientRecord {
	out := make([]model.NutrientRecord, 0, len(local)+len(remote))
	seen := make(map[string]struct{}, len(local)+len(remote))
	for _, r := range local {
		out = append(out, r)
		seen[r.DedupKey()] = struct{}{}
	}
	for _, r := range remote {
		key := r.DedupKey()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}

// Suggestions lists quick-add queries for an empty search screen.
func (s *Service) Suggestions() []string {
	out := make([]string, len(reference.QuickAdds))
	copy(out, reference.QuickAdds)
	return out
}

// ResolveBarcode fetches a product by barcode. ok is false when the product is
// unknown or the service could not be reached.
func (s *Service) ResolveBarcode(ctx context.Context, barcode string) (model.NutrientRecord, bool) {
	rec, err := s.LookupBarcode(ctx, barcode)
	if err != nil {
		if errors.Is(err, ErrLookupUnavailable) {
			s.log.Warn("barcode lookup failed", zap.String("barcode", barcode), zap.Error(err))
		}
		return model.NutrientRecord{}, false
	}
	return rec, true
}

// LookupBarcode is ResolveBarcode with the failure reason kept: errors wrap
// either ErrProductNotFound or ErrLookupUnavailable.
func (s *Service) LookupBarcode(ctx context.Context, barcode string) (model.NutrientRecord, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return model.NutrientRecord{}, fmt.Errorf("empty barcode: %w", ErrProductNotFound)
	}
	if s.cache != nil {
		rec, found, err := s.cache.Barcode(ctx, barcode)
		if err != nil {
			s.log.Warn("read barcode cache", zap.Error(err))
		} else if found {
			return rec, nil
		}
	}
	if s.remote == nil {
		return model.NutrientRecord{}, fmt.Errorf("barcode %s: %w", barcode, ErrLookupUnavailable)
	}
	p, err := s.remote.Product(ctx, barcode)
	if errors.Is(err, openfoodfacts.ErrNotFound) {
		return model.NutrientRecord{}, fmt.Errorf("barcode %s: %w", barcode, ErrProductNotFound)
	}
	if err != nil {
		return model.NutrientRecord{}, fmt.Errorf("barcode %s: %w: %w", barcode, ErrLookupUnavailable, err)
	}
	rec := p.Record()
	if s.cache != nil {
		if err := s.cache.PutBarcode(ctx, barcode, rec, s.barcodeTTL); err != nil {
			s.log.Warn("write barcode cache", zap.Error(err))
		}
	}
	return rec, nil
}
