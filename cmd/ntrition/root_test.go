package ntrition

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nitheesb/personal-calorie-tracker/internal/model"
)

// isolate keeps commands away from the developer's real config and database.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("NTRITION_CACHE__ENABLED", "false")
	return filepath.Join(t.TempDir(), "ntrition.db")
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootHelp(t *testing.T) {
	out, err := run(t, "", "--help")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestInitCommandIdempotent(t *testing.T) {
	path := isolate(t)
	for i := 0; i < 2; i++ {
		out, err := run(t, "", "--db", path, "init")
		require.NoError(t, err, "init run %d", i+1)
		assert.Contains(t, out, path)
	}
}

func TestOfflineAddThenToday(t *testing.T) {
	path := isolate(t)

	out, err := run(t, "", "--db", path, "--offline", "add", "dosa", "--qty", "2", "--meal", "breakfast")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged Plain Dosa (2 x 1 medium) to breakfast: 266 kcal")

	out, err = run(t, "", "--db", path, "--offline", "--json", "today")
	require.NoError(t, err)
	var snap struct {
		Today  model.DailyLog    `json:"today"`
		Totals model.MacroTotals `json:"totals"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	require.Len(t, snap.Today.Items, 1)
	assert.Equal(t, model.MealBreakfast, snap.Today.Items[0].Meal)
	assert.Equal(t, 266.0, snap.Totals.Calories)
}

func TestAddUnknownFoodSuggestsQuickAdds(t *testing.T) {
	path := isolate(t)
	_, err := run(t, "", "--db", path, "--offline", "add", "zzqx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no foods match")
}

func TestAddRejectsUnknownMeal(t *testing.T) {
	path := isolate(t)
	_, err := run(t, "", "--db", path, "--offline", "add", "dosa", "--meal", "brunch")
	require.Error(t, err)
}

func TestCustomFoodValidation(t *testing.T) {
	path := isolate(t)

	_, err := run(t, "", "--db", path, "--offline", "custom", "--name", "Shake")
	require.Error(t, err, "calories are required")

	out, err := run(t, "", "--db", path, "--offline", "custom", "--name", "Shake", "--calories", "210", "--protein", "30", "--meal", "lunch")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged Shake (1 serving) to lunch: 210 kcal")

	out, err = run(t, "", "--db", path, "--offline", "custom", "--name", "Shake", "--calories", "210", "--qty", "1.5")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged Shake (1.5 x 1 serving) to snack: 315 kcal")
}

func TestBodyAddAndList(t *testing.T) {
	path := isolate(t)

	_, err := run(t, "", "--db", path, "body", "add", "--weight", "68.4", "--date", "2030-01-01", "--body-fat", "18")
	require.NoError(t, err)

	out, err := run(t, "", "--db", path, "body", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "2030-01-01\t68.4\t18.0%")
	assert.Contains(t, out, "Current 68.4 kg")

	_, err = run(t, "", "--db", path, "body", "add", "--weight", "0")
	require.Error(t, err)
}

func TestExportYAML(t *testing.T) {
	path := isolate(t)
	out, err := run(t, "", "--db", path, "export", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "goals:")

	_, err = run(t, "", "--db", path, "export", "--format", "csv")
	require.Error(t, err)
}

func TestSearchMergesRemoteResults(t *testing.T) {
	path := isolate(t)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"products":[
  {"code":"1","product_name":"Plain Dosa","nutriments":{"energy-kcal_100g":150}},
  {"code":"2","product_name":"Dosa Batter","brands":"iD","nutriments":{"energy-kcal_100g":140}}
]}`))
	}))
	defer ts.Close()
	t.Setenv("NTRITION_REMOTE__BASE_URL", ts.URL)

	out, err := run(t, "", "--db", path, "search", "dosa")
	require.NoError(t, err)
	assert.Contains(t, out, "Bundled foods:")
	assert.Contains(t, out, "Open Food Facts:")
	assert.Contains(t, out, "Dosa Batter [iD]")
	assert.Equal(t, 1, strings.Count(out, "Plain Dosa"), "remote duplicate is dropped")
}

func TestScanLogsEachBarcode(t *testing.T) {
	path := isolate(t)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "8850999320014") {
			_, _ = w.Write([]byte(`{"status":1,"product":{"product_name":"Green Tea","nutriments":{"energy-kcal_100g":40}}}`))
			return
		}
		_, _ = w.Write([]byte(`{"status":0}`))
	}))
	defer ts.Close()
	t.Setenv("NTRITION_REMOTE__BASE_URL", ts.URL)

	out, err := run(t, "8850999320014\n00000000\n0123456\nq\n", "--db", path, "scan", "--add")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged Green Tea")
	assert.Contains(t, out, "Product not found for barcode: 00000000")
	assert.Contains(t, out, "Product not found for barcode: 0123456", "short codes still reach the lookup")

	_, err = run(t, "", "--db", path, "barcode", "00000000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "product not found")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "ntrition dev")
}

func TestBackupCreateListRestore(t *testing.T) {
	path := isolate(t)
	_, err := run(t, "", "--db", path, "--offline", "add", "banana")
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "snap.db")
	_, err = run(t, "", "--db", path, "backup", "create", "--out", out)
	require.NoError(t, err)

	listing, err := run(t, "", "--db", path, "backup", "list", "--dir", filepath.Dir(out))
	require.NoError(t, err)
	assert.Contains(t, listing, out)

	restored := filepath.Join(t.TempDir(), "restored.db")
	_, err = run(t, "", "--db", restored, "backup", "restore", "--file", out)
	require.NoError(t, err)

	today, err := run(t, "", "--db", restored, "--offline", "today")
	require.NoError(t, err)
	assert.Contains(t, today, "Banana")
}

func TestDoctorHealthyDatabase(t *testing.T) {
	path := isolate(t)
	out, err := run(t, "", "--db", path, "doctor")
	require.NoError(t, err)
	assert.Contains(t, out, "Corrupt stored values: 0")
}
