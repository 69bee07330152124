package repository

import (
	"time"

	"geetafreight/models"
)

// LogRepository is the append-only processing log. A batch is appended in
// one call; QueryByDate matches on the calendar date of the processed
// timestamp and an empty result is not an error.
type LogRepository interface {
	Append(entries []models.LogEntry) error
	QueryByDate(date time.Time) ([]models.LogEntry, error)
}
