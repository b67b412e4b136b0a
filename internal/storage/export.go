package storage

import (
	"encoding/json"
	"math"
	"os"

	"github.com/san-kum/taylab/internal/sweep"
)

// jsonValue marshals non-finite floats as null. JSON has no encoding
// for NaN or the infinities, and pathological points carry them.
type jsonValue float64

func (v jsonValue) MarshalJSON() ([]byte, error) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// ExportData is the JSON export shape. Diagnostic slices are omitted
// when the source result does not carry them (runs reloaded from disk
// keep only the numeric columns).
type ExportData struct {
	Series     string             `json:"series"`
	Policy     string             `json:"policy"`
	Precision  float64            `json:"precision"`
	Order      int                `json:"order"`
	Points     int                `json:"points"`
	Xs         []float64          `json:"xs"`
	Values     []jsonValue        `json:"values"`
	Flags      []string           `json:"flags,omitempty"`
	Precisions []jsonValue        `json:"reached_precisions,omitempty"`
	Terms      []int              `json:"terms,omitempty"`
	Stats      map[string]float64 `json:"stats,omitempty"`
}

func newExportData(series, policy string, precision float64, order int, result *sweep.Result) ExportData {
	data := ExportData{
		Series:    series,
		Policy:    policy,
		Precision: precision,
		Order:     order,
		Points:    len(result.Xs),
		Xs:        result.Xs,
		Values:    make([]jsonValue, len(result.Values)),
		Terms:     result.Terms,
		Stats:     result.Stats,
	}

	for i, v := range result.Values {
		data.Values[i] = jsonValue(v)
	}

	if result.Flags != nil {
		data.Flags = make([]string, len(result.Flags))
		for i, f := range result.Flags {
			data.Flags[i] = f.String()
		}
	}

	if result.Precisions != nil {
		data.Precisions = make([]jsonValue, len(result.Precisions))
		for i, p := range result.Precisions {
			data.Precisions[i] = jsonValue(p)
		}
	}

	return data
}

func ExportJSON(path string, series, policy string, precision float64, order int, result *sweep.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newExportData(series, policy, precision, order, result))
}

func ExportJSONStdout(series, policy string, precision float64, order int, result *sweep.Result) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newExportData(series, policy, precision, order, result))
}

func ExportCSV(path string, result *sweep.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return writePoints(file, result)
}
