package models

import (
	"time"
)

// IntervalType says whether a task recurs by calendar days or by driven distance.
type IntervalType string

const (
	IntervalDate    IntervalType = "date"
	IntervalMileage IntervalType = "mileage"
)

// IsValidIntervalType checks if an interval type is one of the known values.
func IsValidIntervalType(t IntervalType) bool {
	return t == IntervalDate || t == IntervalMileage
}

// MaintenanceTask is a scheduled piece of maintenance for one vehicle.
// Exactly one of NextDueDate/NextDueMileage is set, matching IntervalType.
type MaintenanceTask struct {
	ID                   string       `bson:"_id,omitempty" json:"id"`
	VehicleID            string       `bson:"vehicle_id" json:"vehicle_id"`
	Name                 string       `bson:"name" json:"name"`
	ServiceType          string       `bson:"service_type" json:"service_type"` // "oil_change", "tire_rotation", "brake_service", "inspection", "other"
	Notes                string       `bson:"notes,omitempty" json:"notes,omitempty"`
	IntervalType         IntervalType `bson:"interval_type" json:"interval_type"`
	IntervalValue        float64      `bson:"interval_value" json:"interval_value"` // days or kilometers
	LastCompletedDate    *time.Time   `bson:"last_completed_date,omitempty" json:"last_completed_date,omitempty"`
	LastCompletedMileage *float64     `bson:"last_completed_mileage,omitempty" json:"last_completed_mileage,omitempty"`
	NextDueDate          *time.Time   `bson:"next_due_date,omitempty" json:"next_due_date,omitempty"`
	NextDueMileage       *float64     `bson:"next_due_mileage,omitempty" json:"next_due_mileage,omitempty"`
	IsRecurring          bool         `bson:"is_recurring" json:"is_recurring"`
	IsCompleted          bool         `bson:"is_completed" json:"is_completed"`
	CreatedAt            time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt            time.Time    `bson:"updated_at" json:"updated_at"`
}

// Clone returns a deep copy of the task, including pointer fields.
func (t MaintenanceTask) Clone() MaintenanceTask {
	c := t
	c.LastCompletedDate = cloneTime(t.LastCompletedDate)
	c.LastCompletedMileage = cloneFloat(t.LastCompletedMileage)
	c.NextDueDate = cloneTime(t.NextDueDate)
	c.NextDueMileage = cloneFloat(t.NextDueMileage)
	return c
}

// CloneTasks deep-copies a task slice.
func CloneTasks(in []MaintenanceTask) []MaintenanceTask {
	out := make([]MaintenanceTask, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	c := *f
	return &c
}
