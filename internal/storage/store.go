// Package storage persists sweep runs as directories holding run
// metadata and per-point data.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/taylab/internal/sweep"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Series    string             `json:"series"`
	Policy    string             `json:"policy"`
	Timestamp time.Time          `json:"timestamp"`
	Precision float64            `json:"precision"`
	Order     int                `json:"order"`
	From      float64            `json:"from"`
	To        float64            `json:"to"`
	Points    int                `json:"points"`
	Stats     map[string]float64 `json:"stats"`
}

func (s *Store) Save(series string, policy string, precision float64, order int, result *sweep.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", series, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Series:    series,
		Policy:    policy,
		Timestamp: time.Now(),
		Precision: precision,
		Order:     order,
		Points:    len(result.Xs),
		Stats:     result.Stats,
	}
	if len(result.Xs) > 0 {
		meta.From = result.Xs[0]
		meta.To = result.Xs[len(result.Xs)-1]
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "points.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := writePoints(csvFile, result); err != nil {
		return "", err
	}

	return runID, nil
}

// writePoints emits one CSV row per sweep point. Values are written in
// 'g' format: sums can range from subnormal to overflowed, and NaN and
// the infinities must survive a round trip.
func writePoints(out io.Writer, result *sweep.Result) error {
	w := csv.NewWriter(out)
	defer w.Flush()

	header := []string{"x", "value", "flags", "reached_precision", "terms"}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range result.Xs {
		row := []string{
			strconv.FormatFloat(result.Xs[i], 'g', -1, 64),
			strconv.FormatFloat(result.Values[i], 'g', -1, 64),
			result.Flags[i].String(),
			strconv.FormatFloat(result.Precisions[i], 'g', -1, 64),
			strconv.Itoa(result.Terms[i]),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadPoints(runID string) ([]float64, []float64, error) {
	csvPath := filepath.Join(s.baseDir, runID, "points.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 2 {
		return []float64{}, []float64{}, nil
	}

	xs := make([]float64, 0, len(records)-1)
	values := make([]float64, 0, len(records)-1)

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 2 {
			continue
		}

		x, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		v, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}

		xs = append(xs, x)
		values = append(values, v)
	}

	return xs, values, nil
}
