package repository

import (
	"database/sql"
	"time"

	"geetafreight/models"
)

type PostgresLogRepo struct {
	DB *sql.DB
}

func NewPostgresLogRepo(db *sql.DB) *PostgresLogRepo {
	return &PostgresLogRepo{DB: db}
}

// Append inserts a batch of log entries in one transaction.
func (r *PostgresLogRepo) Append(entries []models.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i := range entries {
		e := &entries[i]
		if e.ProcessedAt.IsZero() {
			e.ProcessedAt = time.Now().UTC()
		}
		err := tx.QueryRow(`
			INSERT INTO processing_log(job_no, be_no, vehicle_no, processed_at)
			VALUES($1,$2,$3,$4)
			RETURNING id
		`, e.JobNo, e.BENo, e.VehicleNo, e.ProcessedAt).Scan(&e.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresLogRepo) QueryByDate(date time.Time) ([]models.LogEntry, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	rows, err := r.DB.Query(`
		SELECT id, job_no, be_no, vehicle_no, processed_at
		FROM processing_log
		WHERE processed_at >= $1 AND processed_at < $2
		ORDER BY processed_at, id
	`, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.LogEntry{}
	for rows.Next() {
		var e models.LogEntry
		if err := rows.Scan(&e.ID, &e.JobNo, &e.BENo, &e.VehicleNo, &e.ProcessedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
