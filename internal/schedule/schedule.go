// Package schedule holds the due-date and due-mileage arithmetic for
// maintenance tasks. Everything here is a pure function of its inputs so the
// same due/overdue classification is used by list views, detail views and the
// reminder engine.
package schedule

import (
	"math"
	"time"

	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/models"
)

// DateStatus is the due classification of a date-interval task.
type DateStatus struct {
	IsDue        bool
	DaysUntilDue int
}

// MileageStatus is the due classification of a mileage-interval task.
type MileageStatus struct {
	IsDue      bool
	KmUntilDue float64
}

// DateDue classifies a date task against the current time.
// DaysUntilDue is the ceiling of the remaining interval in days, so a task
// due later today reports 0 days and counts as due.
func DateDue(nextDue time.Time, now time.Time) DateStatus {
	days := int(math.Ceil(nextDue.Sub(now).Hours() / 24))
	return DateStatus{
		IsDue:        days <= 0,
		DaysUntilDue: days,
	}
}

// MileageDue classifies a mileage task against the vehicle's odometer.
// A task exactly at its threshold counts as due.
func MileageDue(nextDue float64, currentMileage float64) MileageStatus {
	remaining := nextDue - currentMileage
	return MileageStatus{
		IsDue:      remaining <= 0,
		KmUntilDue: remaining,
	}
}

// NextDue computes the next due point for a task from its completion values.
// Exactly one of the returned pointers is non-nil, matching the task's
// interval type.
func NextDue(task models.MaintenanceTask, completionDate time.Time, completionMileage float64) (*time.Time, *float64) {
	switch task.IntervalType {
	case models.IntervalDate:
		next := completionDate.AddDate(0, 0, int(task.IntervalValue))
		return &next, nil
	case models.IntervalMileage:
		next := completionMileage + task.IntervalValue
		return nil, &next
	default:
		return nil, nil
	}
}
