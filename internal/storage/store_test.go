package storage

import (
	"encoding/csv"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/taylab/internal/expand"
	"github.com/san-kum/taylab/internal/sweep"
)

func sampleResult() *sweep.Result {
	return &sweep.Result{
		Xs:         []float64{-0.5, 0.0, 0.5},
		Values:     []float64{-0.479425538604203, 0.0, 0.479425538604203},
		Flags:      []expand.Flags{0, 0, expand.MaxIterationsReached | expand.DivergenceSuspected},
		Precisions: []float64{1e-12, 0, 1e-9},
		Terms:      []int{8, 1, 10},
		Stats:      map[string]float64{"clean_rate": 2.0 / 3.0},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save("sin", "convergence", 1e-9, 0, sampleResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.Series != "sin" {
		t.Errorf("expected series 'sin', got '%s'", meta.Series)
	}

	if meta.Policy != "convergence" {
		t.Errorf("expected policy 'convergence', got '%s'", meta.Policy)
	}

	if meta.From != -0.5 || meta.To != 0.5 {
		t.Errorf("expected range [-0.5, 0.5], got [%g, %g]", meta.From, meta.To)
	}

	if meta.Points != 3 {
		t.Errorf("expected 3 points, got %d", meta.Points)
	}

	if meta.Stats["clean_rate"] != 2.0/3.0 {
		t.Errorf("expected clean_rate %g, got %g", 2.0/3.0, meta.Stats["clean_rate"])
	}

	xs, values, err := st.LoadPoints(runID)
	if err != nil {
		t.Fatalf("load points failed: %v", err)
	}

	if len(xs) != 3 || len(values) != 3 {
		t.Fatalf("expected 3 points, got %d xs and %d values", len(xs), len(values))
	}

	if xs[0] != -0.5 {
		t.Errorf("expected first x -0.5, got %g", xs[0])
	}

	if values[2] != 0.479425538604203 {
		t.Errorf("expected last value 0.479425538604203, got %g", values[2])
	}
}

func TestStoreList(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	_, err = st.Save("cos", "fixed", 0, 12, sampleResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}

	if runs[0].Order != 12 {
		t.Errorf("expected order 12, got %d", runs[0].Order)
	}
}

func TestStoreListMissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "nothing-here"))

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save("exp", "convergence", 1e-9, 0, sampleResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runDir := filepath.Join(tmpDir, runID)
	metaPath := filepath.Join(runDir, "metadata.json")
	csvPath := filepath.Join(runDir, "points.csv")

	if _, err := os.Stat(metaPath); os.IsNotExist(err) {
		t.Error("metadata.json not created")
	}

	if _, err := os.Stat(csvPath); os.IsNotExist(err) {
		t.Error("points.csv not created")
	}
}

func TestStorePointsNonFiniteRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	result := &sweep.Result{
		Xs:         []float64{1.0, 2.0, 3.0},
		Values:     []float64{math.Inf(1), math.NaN(), 1e300},
		Flags:      []expand.Flags{expand.InfinityEncountered, expand.NaNEncountered, 0},
		Precisions: []float64{0, 0, 1e-6},
		Terms:      []int{4, 3, 20},
		Stats:      map[string]float64{},
	}

	runID, err := st.Save("geometric", "guaranteed", 1e-2, 0, result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	_, values, err := st.LoadPoints(runID)
	if err != nil {
		t.Fatalf("load points failed: %v", err)
	}

	if len(values) != 3 {
		t.Fatalf("expected 3 values, got %d", len(values))
	}

	if !math.IsInf(values[0], 1) {
		t.Errorf("expected +Inf, got %g", values[0])
	}

	if !math.IsNaN(values[1]) {
		t.Errorf("expected NaN, got %g", values[1])
	}

	if values[2] != 1e300 {
		t.Errorf("expected 1e300, got %g", values[2])
	}
}

func TestExportJSONNonFinite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")

	result := &sweep.Result{
		Xs:         []float64{0.5, 1.0},
		Values:     []float64{2.0, math.Inf(1)},
		Flags:      []expand.Flags{0, expand.InfinityEncountered},
		Precisions: []float64{1e-12, 0},
		Terms:      []int{30, 4},
		Stats:      map[string]float64{"clean_rate": 0.5},
	}

	if err := ExportJSON(path, "geometric", "guaranteed", 1e-10, 0, result); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export failed: %v", err)
	}

	var decoded struct {
		Series string     `json:"series"`
		Values []*float64 `json:"values"`
		Flags  []string   `json:"flags"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("export is not valid json: %v", err)
	}

	if decoded.Series != "geometric" {
		t.Errorf("expected series 'geometric', got '%s'", decoded.Series)
	}

	if decoded.Values[0] == nil || *decoded.Values[0] != 2.0 {
		t.Error("expected first value 2.0")
	}

	if decoded.Values[1] != nil {
		t.Error("expected infinite value to export as null")
	}

	if decoded.Flags[1] != "infinity-encountered" {
		t.Errorf("expected flag 'infinity-encountered', got '%s'", decoded.Flags[1])
	}
}

func TestExportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.csv")

	if err := ExportCSV(path, sampleResult()); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open export failed: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("read export failed: %v", err)
	}

	if len(records) != 4 {
		t.Fatalf("expected 4 records, got %d", len(records))
	}

	if records[0][0] != "x" || records[0][1] != "value" {
		t.Errorf("unexpected header: %v", records[0])
	}

	if records[1][2] != "clean" {
		t.Errorf("expected flags 'clean', got '%s'", records[1][2])
	}

	if records[3][2] != "max-iterations-reached,divergence-suspected" {
		t.Errorf("unexpected flags column: '%s'", records[3][2])
	}

	if records[3][4] != "10" {
		t.Errorf("expected terms '10', got '%s'", records[3][4])
	}
}
