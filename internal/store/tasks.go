package store

import (
	"context"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/models"
	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/schedule"
	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/storage"
)

// TaskInput carries the fields needed to create a maintenance task.
type TaskInput struct {
	VehicleID     string              `json:"vehicle_id"`
	Name          string              `json:"name"`
	ServiceType   string              `json:"service_type"`
	Notes         string              `json:"notes"`
	IntervalType  models.IntervalType `json:"interval_type"`
	IntervalValue float64             `json:"interval_value"`
	IsRecurring   bool                `json:"is_recurring"`

	// Optional baseline for the first due point. When absent, the due point
	// is counted from "now" (date tasks) or the vehicle's odometer (mileage
	// tasks).
	LastCompletedDate    *time.Time `json:"last_completed_date"`
	LastCompletedMileage *float64   `json:"last_completed_mileage"`
}

func (in TaskInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return invalid("task name is required")
	}
	if !models.IsValidIntervalType(in.IntervalType) {
		return invalid("interval type %q is invalid", in.IntervalType)
	}
	if in.IntervalValue <= 0 {
		return invalid("interval value must be positive")
	}
	if in.LastCompletedMileage != nil && *in.LastCompletedMileage < 0 {
		return invalid("last completed mileage must not be negative")
	}
	return nil
}

// AddTask validates input, computes the first due point and appends the
// task.
func (s *Store) AddTask(ctx context.Context, in TaskInput) (models.MaintenanceTask, error) {
	if err := in.validate(); err != nil {
		return models.MaintenanceTask{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	vIdx := s.vehicleIndex(in.VehicleID)
	if vIdx < 0 {
		return models.MaintenanceTask{}, notFound("vehicle", in.VehicleID)
	}

	now := s.now()
	t := models.MaintenanceTask{
		ID:                   newID(),
		VehicleID:            in.VehicleID,
		Name:                 strings.TrimSpace(in.Name),
		ServiceType:          in.ServiceType,
		Notes:                in.Notes,
		IntervalType:         in.IntervalType,
		IntervalValue:        in.IntervalValue,
		IsRecurring:          in.IsRecurring,
		LastCompletedDate:    in.LastCompletedDate,
		LastCompletedMileage: in.LastCompletedMileage,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if t.ServiceType == "" {
		t.ServiceType = "other"
	}

	baseDate := now
	if in.LastCompletedDate != nil {
		baseDate = *in.LastCompletedDate
	}
	baseMileage := s.vehicles[vIdx].CurrentMileage
	if in.LastCompletedMileage != nil {
		baseMileage = *in.LastCompletedMileage
	}
	t.NextDueDate, t.NextDueMileage = schedule.NextDue(t, baseDate, baseMileage)

	prev := s.tasks
	s.tasks = append(s.tasks, t)
	if err := s.persist(ctx, storage.KeyTasks); err != nil {
		s.tasks = prev
		return models.MaintenanceTask{}, err
	}

	log.WithFields(log.Fields{"task_id": t.ID, "vehicle_id": t.VehicleID, "name": t.Name}).Info("task added")
	return t.Clone(), nil
}

// TaskPatch carries optional task updates; nil fields are untouched.
type TaskPatch struct {
	Name          *string              `json:"name"`
	ServiceType   *string              `json:"service_type"`
	Notes         *string              `json:"notes"`
	IntervalType  *models.IntervalType `json:"interval_type"`
	IntervalValue *float64             `json:"interval_value"`
	IsRecurring   *bool                `json:"is_recurring"`
}

// UpdateTask merges the patch into an existing task. Changing the interval
// recomputes the next due point from the task's last completion, or from
// "now"/the vehicle odometer when it has never been completed.
func (s *Store) UpdateTask(ctx context.Context, id string, patch TaskPatch) (models.MaintenanceTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.taskIndex(id)
	if idx < 0 {
		return models.MaintenanceTask{}, notFound("task", id)
	}

	updated := s.tasks[idx].Clone()
	intervalChanged := false
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return models.MaintenanceTask{}, invalid("task name must not be empty")
		}
		updated.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.ServiceType != nil {
		updated.ServiceType = *patch.ServiceType
	}
	if patch.Notes != nil {
		updated.Notes = *patch.Notes
	}
	if patch.IntervalType != nil {
		if !models.IsValidIntervalType(*patch.IntervalType) {
			return models.MaintenanceTask{}, invalid("interval type %q is invalid", *patch.IntervalType)
		}
		if *patch.IntervalType != updated.IntervalType {
			updated.IntervalType = *patch.IntervalType
			intervalChanged = true
		}
	}
	if patch.IntervalValue != nil {
		if *patch.IntervalValue <= 0 {
			return models.MaintenanceTask{}, invalid("interval value must be positive")
		}
		if *patch.IntervalValue != updated.IntervalValue {
			updated.IntervalValue = *patch.IntervalValue
			intervalChanged = true
		}
	}
	if patch.IsRecurring != nil {
		updated.IsRecurring = *patch.IsRecurring
	}

	if intervalChanged && !updated.IsCompleted {
		baseDate := s.now()
		if updated.LastCompletedDate != nil {
			baseDate = *updated.LastCompletedDate
		}
		baseMileage := 0.0
		if vIdx := s.vehicleIndex(updated.VehicleID); vIdx >= 0 {
			baseMileage = s.vehicles[vIdx].CurrentMileage
		}
		if updated.LastCompletedMileage != nil {
			baseMileage = *updated.LastCompletedMileage
		}
		updated.NextDueDate, updated.NextDueMileage = schedule.NextDue(updated, baseDate, baseMileage)
	}
	updated.UpdatedAt = s.now()

	prev := s.tasks[idx]
	s.tasks[idx] = updated
	if err := s.persist(ctx, storage.KeyTasks); err != nil {
		s.tasks[idx] = prev
		return models.MaintenanceTask{}, err
	}
	return updated.Clone(), nil
}

// CompletionInput carries the facts of a task completion.
type CompletionInput struct {
	Date    time.Time `json:"date"`
	Mileage float64   `json:"mileage"`
	Cost    float64   `json:"cost"`
	Notes   string    `json:"notes"`
}

// CompleteTask records a completion: it stamps the task's last-completed
// facts, recomputes the next due point (or marks a non-recurring task
// completed and clears it), appends a maintenance record linked to the task,
// and advances the vehicle odometer when the completion mileage is ahead of
// it.
func (s *Store) CompleteTask(ctx context.Context, id string, in CompletionInput) (models.MaintenanceTask, error) {
	if in.Mileage < 0 {
		return models.MaintenanceTask{}, invalid("completion mileage must not be negative")
	}
	if in.Cost < 0 {
		return models.MaintenanceTask{}, invalid("cost must not be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.taskIndex(id)
	if idx < 0 {
		return models.MaintenanceTask{}, notFound("task", id)
	}

	prev := s.captureState()

	completionDate := in.Date
	if completionDate.IsZero() {
		completionDate = s.now()
	}

	updated := s.tasks[idx].Clone()
	date := completionDate
	mileage := in.Mileage
	updated.LastCompletedDate = &date
	updated.LastCompletedMileage = &mileage
	if updated.IsRecurring {
		updated.NextDueDate, updated.NextDueMileage = schedule.NextDue(updated, completionDate, in.Mileage)
		updated.IsCompleted = false
	} else {
		updated.IsCompleted = true
		updated.NextDueDate = nil
		updated.NextDueMileage = nil
	}
	updated.UpdatedAt = s.now()
	s.tasks[idx] = updated

	rec := models.MaintenanceRecord{
		ID:          newID(),
		VehicleID:   updated.VehicleID,
		TaskID:      updated.ID,
		Title:       updated.Name,
		ServiceType: updated.ServiceType,
		Date:        completionDate,
		Mileage:     in.Mileage,
		Cost:        in.Cost,
		Notes:       in.Notes,
		CreatedAt:   s.now(),
	}
	s.records = append(s.records, rec)

	keys := []string{storage.KeyTasks, storage.KeyRecords}
	if vIdx := s.vehicleIndex(updated.VehicleID); vIdx >= 0 && in.Mileage > s.vehicles[vIdx].CurrentMileage {
		v := s.vehicles[vIdx].Clone()
		v.CurrentMileage = in.Mileage
		v.UpdatedAt = s.now()
		s.vehicles[vIdx] = v
		keys = append(keys, storage.KeyVehicles)
	}

	if err := s.persist(ctx, keys...); err != nil {
		s.restoreState(prev)
		return models.MaintenanceTask{}, err
	}

	log.WithFields(log.Fields{"task_id": id, "record_id": rec.ID}).Info("task completed")
	return updated.Clone(), nil
}

// DeleteTask removes a task. Undoable.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.taskIndex(id)
	if idx < 0 {
		return notFound("task", id)
	}

	s.takeSnapshot()
	prev := s.tasks
	s.tasks = append(s.tasks[:idx:idx], s.tasks[idx+1:]...)
	if err := s.persist(ctx, storage.KeyTasks); err != nil {
		s.tasks = prev
		s.undo = nil
		return err
	}
	log.WithField("task_id", id).Info("task deleted")
	return nil
}

// TaskByID returns a copy of one task.
func (s *Store) TaskByID(id string) (models.MaintenanceTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.taskIndex(id)
	if idx < 0 {
		return models.MaintenanceTask{}, notFound("task", id)
	}
	return s.tasks[idx].Clone(), nil
}

// TasksForVehicle returns copies of every task belonging to the vehicle.
func (s *Store) TasksForVehicle(vehicleID string) []models.MaintenanceTask {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.MaintenanceTask{}
	for i := range s.tasks {
		if s.tasks[i].VehicleID == vehicleID {
			out = append(out, s.tasks[i].Clone())
		}
	}
	return out
}

func (s *Store) taskIndex(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
