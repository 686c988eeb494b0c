package store

import (
	"sort"

	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/models"
	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/schedule"
)

// UpcomingTask is a read view pairing a task with its due classification.
// It is recomputed from stored facts on every call and never persisted, so
// a mileage update can't leave a stale "is due" behind.
type UpcomingTask struct {
	Task         models.MaintenanceTask `json:"task"`
	IsDue        bool                   `json:"is_due"`
	DaysUntilDue *int                   `json:"days_until_due,omitempty"`
	KmUntilDue   *float64               `json:"km_until_due,omitempty"`
}

// UpcomingTasks classifies every non-completed task of a vehicle against the
// current time and odometer, ordered most urgent first: overdue/due tasks,
// then soonest due. Date tasks order by days remaining and mileage tasks by
// kilometers remaining; across the two interval types the raw numbers are
// compared.
func (s *Store) UpcomingTasks(vehicleID string) ([]UpcomingTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vIdx := s.vehicleIndex(vehicleID)
	if vIdx < 0 {
		return nil, notFound("vehicle", vehicleID)
	}
	currentMileage := s.vehicles[vIdx].CurrentMileage
	now := s.now()

	out := []UpcomingTask{}
	for i := range s.tasks {
		t := s.tasks[i]
		if t.VehicleID != vehicleID || t.IsCompleted {
			continue
		}
		view := UpcomingTask{Task: t.Clone()}
		switch {
		case t.IntervalType == models.IntervalDate && t.NextDueDate != nil:
			st := schedule.DateDue(*t.NextDueDate, now)
			days := st.DaysUntilDue
			view.IsDue = st.IsDue
			view.DaysUntilDue = &days
		case t.IntervalType == models.IntervalMileage && t.NextDueMileage != nil:
			st := schedule.MileageDue(*t.NextDueMileage, currentMileage)
			km := st.KmUntilDue
			view.IsDue = st.IsDue
			view.KmUntilDue = &km
		default:
			// No due point on file: listed last, never due.
		}
		out = append(out, view)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsDue != out[j].IsDue {
			return out[i].IsDue
		}
		return urgency(out[i]) < urgency(out[j])
	})
	return out, nil
}

// urgency is the remaining headroom of a view in its own unit; views with no
// due point sort last.
func urgency(v UpcomingTask) float64 {
	switch {
	case v.DaysUntilDue != nil:
		return float64(*v.DaysUntilDue)
	case v.KmUntilDue != nil:
		return *v.KmUntilDue
	default:
		return 1 << 30
	}
}

// DueTasks returns the due subset of every active (non-archived) vehicle's
// upcoming views. The reminder engine polls this.
func (s *Store) DueTasks() []UpcomingTask {
	s.mu.Lock()
	ids := make([]string, 0, len(s.vehicles))
	for _, v := range s.vehicles {
		if !v.IsArchived {
			ids = append(ids, v.ID)
		}
	}
	s.mu.Unlock()

	var due []UpcomingTask
	for _, id := range ids {
		views, err := s.UpcomingTasks(id)
		if err != nil {
			continue
		}
		for _, view := range views {
			if view.IsDue {
				due = append(due, view)
			}
		}
	}
	return due
}
