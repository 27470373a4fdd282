package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Store keeps one directory per run under a base directory:
// metadata.json describing the solve and trajectory.csv with the
// sampled values.
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
	ID        string    `json:"id"`
	Problem   string    `json:"problem"`
	Method    string    `json:"method"`
	Timestamp time.Time `json:"timestamp"`
	Steps     int       `json:"steps"`
	Xi        float64   `json:"xi"`
	Ti        float64   `json:"ti"`
	Tf        float64   `json:"tf"`
	H         float64   `json:"h"`
	FinalX    float64   `json:"final_x"`
}

func (s *Store) Save(meta RunMetadata, times, xs []float64) (string, error) {
	if len(times) != len(xs) {
		return "", fmt.Errorf("storage: %d times for %d samples", len(times), len(xs))
	}

	runID := fmt.Sprintf("%s_%d", meta.Problem, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()

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

	csvPath := filepath.Join(runDir, "trajectory.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"index", "time", "x"}); err != nil {
		return "", err
	}

	for i := range xs {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(times[i], 'g', -1, 64),
			strconv.FormatFloat(xs[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
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

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
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

func (s *Store) LoadTrajectory(runID string) (times, xs []float64, err error) {
	csvPath := filepath.Join(s.baseDir, runID, "trajectory.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 2 {
		return []float64{}, []float64{}, nil
	}

	times = make([]float64, 0, len(records)-1)
	xs = make([]float64, 0, len(records)-1)

	for _, record := range records[1:] {
		if len(record) < 3 {
			continue
		}

		t, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		x, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			continue
		}

		times = append(times, t)
		xs = append(xs, x)
	}

	return times, xs, nil
}
