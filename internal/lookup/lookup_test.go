package lookup

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/nitheesb/personal-calorie-tracker/internal/db"
	"github.com/nitheesb/personal-calorie-tracker/internal/model"
	"github.com/nitheesb/personal-calorie-tracker/internal/provider/openfoodfacts"
)

func ptr(v float64) *float64 { return &v }

type fakeRemote struct {
	mu       sync.Mutex
	products map[string][]openfoodfacts.Product
	barcodes map[string]openfoodfacts.Product
	err      error
	gates    map[string]chan struct{}
	calls    int
}

func (f *fakeRemote) Search(ctx context.Context, query string) ([]openfoodfacts.Product, error) {
	f.mu.Lock()
	f.calls++
	gate := f.gates[query]
	f.mu.Unlock()
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.products[query], nil
}

func (f *fakeRemote) Product(ctx context.Context, barcode string) (openfoodfacts.Product, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return openfoodfacts.Product{}, f.err
	}
	p, ok := f.barcodes[barcode]
	if !ok {
		return openfoodfacts.Product{}, fmt.Errorf("barcode %q: %w", barcode, openfoodfacts.ErrNotFound)
	}
	return p, nil
}

func names(recs []model.NutrientRecord) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Name)
	}
	return out
}

func TestSearchLocal(t *testing.T) {
	t.Parallel()
	svc := New(nil, Options{})

	assert.Subset(t, names(svc.SearchLocal("dosa")), []string{"Plain Dosa", "Masala Dosa"})
	assert.Empty(t, svc.SearchLocal("xyz-nonexistent"))
}

func TestSearchRemoteNormalizesAndFailsClosed(t *testing.T) {
	t.Parallel()

	remote := &fakeRemote{products: map[string][]openfoodfacts.Product{
		"cola": {{Name: "Cola", Calories: ptr(42.4), Protein: ptr(0.4)}},
	}}
	svc := New(remote, Options{})
	got := svc.SearchRemote(context.Background(), "cola")
	require.Len(t, got, 1)
	assert.Equal(t, 42.0, got[0].Calories)
	assert.Equal(t, 0.0, got[0].Protein)
	assert.Equal(t, "100g", got[0].ServingSize)
	assert.Equal(t, model.SourceRemote, got[0].Source)

	core, logs := observer.New(zapcore.WarnLevel)
	broken := New(&fakeRemote{err: errors.New("connection refused")}, Options{Log: zap.New(core)})
	assert.Empty(t, broken.SearchRemote(context.Background(), "cola"))
	assert.Equal(t, 1, logs.FilterMessage("remote search failed").Len())
}

func TestMergeDropsCaseInsensitiveDuplicates(t *testing.T) {
	t.Parallel()

	local := []model.NutrientRecord{{Name: "Pad Thai"}, {Name: "Thai Green Curry (Chicken)"}}
	remote := []model.NutrientRecord{{Name: "pad thai "}, {Name: "Pad Thai Noodles"}, {Name: "PAD THAI NOODLES"}}

	got := Merge(local, remote)
	require.Len(t, got, len(local)+len(remote)-2)
	assert.Equal(t, local, got[:len(local)])
	assert.Equal(t, []string{"Pad Thai", "Thai Green Curry (Chicken)", "Pad Thai Noodles"}, names(got))
}

func TestMergeOneDuplicate(t *testing.T) {
	t.Parallel()

	local := []model.NutrientRecord{{Name: "Black Coffee"}, {Name: "Cafe Latte"}}
	remote := []model.NutrientRecord{{Name: "cafe latte"}, {Name: "Iced Coffee"}, {Name: "Cold Brew"}}
	got := Merge(local, remote)
	assert.Len(t, got, len(local)+len(remote)-1)
	assert.Equal(t, local, got[:2])
}

func TestSearchDeliversLocalThenMerged(t *testing.T) {
	t.Parallel()

	gate := make(chan struct{})
	remote := &fakeRemote{
		products: map[string][]openfoodfacts.Product{
			"dosa": {
				{Name: "masala dosa", Calories: ptr(300)},
				{Name: "Dosa Batter", Calories: ptr(150), Brand: "iD"},
			},
		},
		gates: map[string]chan struct{}{"dosa": gate},
	}
	svc := New(remote, Options{})
	search := svc.Search(context.Background(), "dosa")

	first := <-search.Batches()
	assert.Equal(t, PhaseLocal, first.Phase)
	assert.Equal(t, []string{"Plain Dosa", "Masala Dosa"}, names(first.Results))
	assert.Equal(t, first.Results, search.Local)

	close(gate)
	second, ok := <-search.Batches()
	require.True(t, ok)
	assert.Equal(t, PhaseMerged, second.Phase)
	assert.Equal(t, []string{"Plain Dosa", "Masala Dosa", "Dosa Batter"}, names(second.Results))
	assert.Equal(t, first.Results, second.Results[:len(first.Results)])

	_, ok = <-search.Batches()
	assert.False(t, ok)
}

func TestSupersededSearchIsDiscarded(t *testing.T) {
	t.Parallel()

	slow := make(chan struct{})
	remote := &fakeRemote{
		products: map[string][]openfoodfacts.Product{
			"rice":  {{Name: "Jasmine Rice Pack", Calories: ptr(350)}},
			"sushi": {{Name: "Sushi Roll", Calories: ptr(200)}},
		},
		gates: map[string]chan struct{}{"rice": slow},
	}
	core, logs := observer.New(zapcore.DebugLevel)
	svc := New(remote, Options{Log: zap.New(core)})

	older := svc.Search(context.Background(), "rice")
	newer := svc.Search(context.Background(), "sushi")
	assert.False(t, svc.IsCurrent(older.Generation))
	assert.True(t, svc.IsCurrent(newer.Generation))

	latest := newer.Latest()
	assert.Equal(t, PhaseMerged, latest.Phase)
	assert.Contains(t, names(latest.Results), "Sushi Roll")

	close(slow)
	var got []Batch
	for b := range older.Batches() {
		got = append(got, b)
	}
	require.Len(t, got, 1)
	assert.Equal(t, PhaseLocal, got[0].Phase)
	assert.Equal(t, 1, logs.FilterMessage("discarding superseded search").Len())
}

func TestDeliverRechecksGenerationUnderLock(t *testing.T) {
	t.Parallel()
	svc := New(nil, Options{})

	first := svc.Search(context.Background(), "")
	ch := make(chan Batch, 1)
	assert.True(t, svc.deliver(ch, Batch{Generation: first.Generation, Phase: PhaseMerged}))
	assert.Len(t, ch, 1)
	<-ch

	svc.Search(context.Background(), "")
	assert.False(t, svc.deliver(ch, Batch{Generation: first.Generation, Phase: PhaseMerged}),
		"a batch is dropped once a newer search has been issued")
	assert.Empty(t, ch)
}

func TestSearchBlankQuery(t *testing.T) {
	t.Parallel()

	remote := &fakeRemote{}
	svc := New(remote, Options{})
	latest := svc.Search(context.Background(), "   ").Latest()
	assert.Equal(t, PhaseLocal, latest.Phase)
	assert.Empty(t, latest.Results)
	assert.Equal(t, 0, remote.calls)
}

func TestResolveBarcodeFailsClosed(t *testing.T) {
	t.Parallel()

	remote := &fakeRemote{barcodes: map[string]openfoodfacts.Product{
		"8850999320014": {Name: "Green Tea", Calories: ptr(35.6)},
	}}
	svc := New(remote, Options{})

	rec, ok := svc.ResolveBarcode(context.Background(), "8850999320014")
	require.True(t, ok)
	assert.Equal(t, "Green Tea", rec.Name)
	assert.Equal(t, 36.0, rec.Calories)

	_, ok = svc.ResolveBarcode(context.Background(), "0000000000000")
	assert.False(t, ok)

	offline := New(&fakeRemote{err: errors.New("dial tcp: no route to host")}, Options{})
	_, ok = offline.ResolveBarcode(context.Background(), "8850999320014")
	assert.False(t, ok)
}

func TestLookupBarcodeDistinguishesFailures(t *testing.T) {
	t.Parallel()

	svc := New(&fakeRemote{}, Options{})
	_, err := svc.LookupBarcode(context.Background(), "0000")
	assert.ErrorIs(t, err, ErrProductNotFound)

	offline := New(&fakeRemote{err: errors.New("timeout")}, Options{})
	_, err = offline.LookupBarcode(context.Background(), "0000")
	assert.ErrorIs(t, err, ErrLookupUnavailable)
	assert.NotErrorIs(t, err, ErrProductNotFound)
}

func TestCacheServesRepeatLookups(t *testing.T) {
	t.Parallel()

	sqldb, err := db.Open(filepath.Join(t.TempDir(), "ntrition.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqldb.Close() })

	remote := &fakeRemote{
		products: map[string][]openfoodfacts.Product{"cola": {{Name: "Cola", Calories: ptr(42)}}},
		barcodes: map[string]openfoodfacts.Product{"5449000000996": {Name: "Cola", Calories: ptr(42)}},
	}
	svc := New(remote, Options{Cache: db.NewCache(sqldb), SearchTTL: time.Hour, BarcodeTTL: time.Hour})
	ctx := context.Background()

	for _, q := range []string{"cola", " COLA "} {
		assert.Len(t, svc.SearchRemote(ctx, q), 1)
		_, ok := svc.ResolveBarcode(ctx, "5449000000996")
		assert.True(t, ok)
	}
	assert.Equal(t, 2, remote.calls)
}

func TestCacheKeepsNonLatinQueriesApart(t *testing.T) {
	t.Parallel()

	sqldb, err := db.Open(filepath.Join(t.TempDir(), "ntrition.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqldb.Close() })

	remote := &fakeRemote{products: map[string][]openfoodfacts.Product{
		"寿司":    {{Name: "Salmon Nigiri", Calories: ptr(180)}},
		"ラーメン":  {{Name: "Tonkotsu Ramen", Calories: ptr(450)}},
		"இட்லி": {{Name: "Rice Idli", Calories: ptr(58)}},
	}}
	svc := New(remote, Options{Cache: db.NewCache(sqldb), SearchTTL: time.Hour})
	ctx := context.Background()

	assert.Equal(t, []string{"Salmon Nigiri"}, names(svc.SearchRemote(ctx, "寿司")))
	assert.Equal(t, []string{"Tonkotsu Ramen"}, names(svc.SearchRemote(ctx, "ラーメン")))
	assert.Equal(t, []string{"Rice Idli"}, names(svc.SearchRemote(ctx, "இட்லி")))
	assert.Equal(t, 3, remote.calls, "each distinct query reaches the remote")

	assert.Equal(t, []string{"Tonkotsu Ramen"}, names(svc.SearchRemote(ctx, "ラーメン")))
	assert.Equal(t, 3, remote.calls, "a repeated query is served from the cache")
}

func TestSearchRemoteCapsAtPageSize(t *testing.T) {
	t.Parallel()

	products := make([]openfoodfacts.Product, 0, 12)
	want := make([]string, 0, 10)
	for i := 1; i <= 12; i++ {
		name := fmt.Sprintf("Granola %02d", i)
		products = append(products, openfoodfacts.Product{Name: name, Calories: ptr(float64(400 + i))})
		if i <= 10 {
			want = append(want, name)
		}
	}
	remote := &fakeRemote{products: map[string][]openfoodfacts.Product{"granola": products}}
	svc := New(remote, Options{})

	got := svc.SearchRemote(context.Background(), "granola")
	require.Len(t, got, 10)
	assert.Equal(t, want, names(got))
}

func TestSuggestionsAreCopies(t *testing.T) {
	t.Parallel()

	svc := New(nil, Options{})
	s := svc.Suggestions()
	require.NotEmpty(t, s)
	s[0] = "changed"
	assert.NotEqual(t, "changed", svc.Suggestions()[0])
}
