package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
)

type ExportData struct {
	Problem string    `json:"problem"`
	Method  string    `json:"method"`
	Steps   int       `json:"steps"`
	Xi      float64   `json:"xi"`
	Ti      float64   `json:"ti"`
	Tf      float64   `json:"tf"`
	H       float64   `json:"h"`
	Times   []float64 `json:"times"`
	Xs      []float64 `json:"xs"`
}

// ExportJSON writes the full run, trajectory included, as indented
// JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, times, xs []float64) error {
	data := ExportData{
		Problem: meta.Problem,
		Method:  meta.Method,
		Steps:   meta.Steps,
		Xi:      meta.Xi,
		Ti:      meta.Ti,
		Tf:      meta.Tf,
		H:       meta.H,
		Times:   times,
		Xs:      xs,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportCSV writes the trajectory as index,time,x rows with a header.
func ExportCSV(w io.Writer, times, xs []float64) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"index", "time", "x"}); err != nil {
		return err
	}
	for i := range xs {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(times[i], 'g', -1, 64),
			strconv.FormatFloat(xs[i], 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
