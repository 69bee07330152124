package models

import "time"

// LogEntry records one processed (Job No, BE No) pair. All entries of a
// batch share the vehicle number and the timestamp captured for that run.
type LogEntry struct {
	ID          int64     `json:"id,omitempty" bson:"_id,omitempty" db:"id"`
	JobNo       string    `json:"job_no" bson:"job_no" db:"job_no"`
	BENo        string    `json:"be_no" bson:"be_no" db:"be_no"`
	VehicleNo   string    `json:"vehicle_no" bson:"vehicle_no" db:"vehicle_no"`
	ProcessedAt time.Time `json:"processed_at" bson:"processed_at" db:"processed_at"`
}
