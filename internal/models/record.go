package models

import (
	"time"
)

// MaintenanceRecord is a logged maintenance event for a vehicle. Records are
// historical facts: they are created and deleted, never edited in place.
type MaintenanceRecord struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	VehicleID   string    `bson:"vehicle_id" json:"vehicle_id"`
	TaskID      string    `bson:"task_id,omitempty" json:"task_id,omitempty"` // set when the record came from completing a task
	Title       string    `bson:"title" json:"title"`
	ServiceType string    `bson:"service_type" json:"service_type"`
	Date        time.Time `bson:"date" json:"date"`
	Mileage     float64   `bson:"mileage" json:"mileage"` // odometer at service time, kilometers
	Cost        float64   `bson:"cost" json:"cost"`
	Notes       string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// Clone returns a copy of the record.
func (r MaintenanceRecord) Clone() MaintenanceRecord {
	return r
}

// CloneRecords deep-copies a record slice.
func CloneRecords(in []MaintenanceRecord) []MaintenanceRecord {
	out := make([]MaintenanceRecord, len(in))
	copy(out, in)
	return out
}
