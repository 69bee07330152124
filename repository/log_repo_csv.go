package repository

import (
	"encoding/csv"
	"fmt"
	"os"
	"sync"
	"time"

	"geetafreight/models"
)

const logTimeLayout = "2006-01-02 15:04:05"

var logHeader = []string{"Job No", "BE No", "Vehicle No", "Processed Date"}

// CSVLogRepo is the flat-file log store: one append-only CSV, header
// written only when the file is created. Appends are serialised with a
// mutex; this guards a single process only, not concurrent writers.
type CSVLogRepo struct {
	Path string
	mu   sync.Mutex
}

func NewCSVLogRepo(path string) *CSVLogRepo {
	return &CSVLogRepo{Path: path}
}

func (r *CSVLogRepo) Append(entries []models.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, statErr := os.Stat(r.Path)
	writeHeader := os.IsNotExist(statErr)

	f, err := os.OpenFile(r.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(logHeader); err != nil {
			return err
		}
	}
	for _, e := range entries {
		record := []string{e.JobNo, e.BENo, e.VehicleNo, e.ProcessedAt.Format(logTimeLayout)}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func (r *CSVLogRepo) QueryByDate(date time.Time) ([]models.LogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.Open(r.Path)
	if os.IsNotExist(err) {
		return []models.LogEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}

	y, m, d := date.Date()
	out := []models.LogEntry{}
	for i, rec := range records {
		if i == 0 || len(rec) < 4 {
			continue
		}
		processedAt, err := time.ParseInLocation(logTimeLayout, rec[3], time.Local)
		if err != nil {
			continue
		}
		py, pm, pd := processedAt.Date()
		if py == y && pm == m && pd == d {
			out = append(out, models.LogEntry{
				JobNo:       rec[0],
				BENo:        rec[1],
				VehicleNo:   rec[2],
				ProcessedAt: processedAt,
			})
		}
	}
	return out, nil
}
