package store

import (
	"context"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/models"
	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/storage"
)

// ReminderInput carries the fields needed to create a quick reminder.
type ReminderInput struct {
	VehicleID string     `json:"vehicle_id"`
	Text      string     `json:"text"`
	DueDate   *time.Time `json:"due_date"`
}

// AddReminder appends a quick reminder. Reminders sit outside the undo
// snapshot unit, so their operations never touch the slot.
func (s *Store) AddReminder(ctx context.Context, in ReminderInput) (models.QuickReminder, error) {
	if strings.TrimSpace(in.Text) == "" {
		return models.QuickReminder{}, invalid("reminder text is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if in.VehicleID != "" && s.vehicleIndex(in.VehicleID) < 0 {
		return models.QuickReminder{}, notFound("vehicle", in.VehicleID)
	}

	q := models.QuickReminder{
		ID:        newID(),
		VehicleID: in.VehicleID,
		Text:      strings.TrimSpace(in.Text),
		DueDate:   in.DueDate,
		CreatedAt: s.now(),
	}

	prev := s.reminders
	s.reminders = append(s.reminders, q)
	if err := s.persist(ctx, storage.KeyReminders); err != nil {
		s.reminders = prev
		return models.QuickReminder{}, err
	}

	log.WithField("reminder_id", q.ID).Info("reminder added")
	return q.Clone(), nil
}

// SetReminderDone flips a reminder's done flag.
func (s *Store) SetReminderDone(ctx context.Context, id string, done bool) (models.QuickReminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.reminderIndex(id)
	if idx < 0 {
		return models.QuickReminder{}, notFound("reminder", id)
	}

	prev := s.reminders[idx]
	updated := prev.Clone()
	updated.IsDone = done
	s.reminders[idx] = updated
	if err := s.persist(ctx, storage.KeyReminders); err != nil {
		s.reminders[idx] = prev
		return models.QuickReminder{}, err
	}
	return updated.Clone(), nil
}

// DeleteReminder removes a quick reminder.
func (s *Store) DeleteReminder(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.reminderIndex(id)
	if idx < 0 {
		return notFound("reminder", id)
	}

	prev := s.reminders
	s.reminders = append(s.reminders[:idx:idx], s.reminders[idx+1:]...)
	if err := s.persist(ctx, storage.KeyReminders); err != nil {
		s.reminders = prev
		return err
	}
	return nil
}

// Reminders returns copies of all quick reminders.
func (s *Store) Reminders() []models.QuickReminder {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.QuickReminder, 0, len(s.reminders))
	for i := range s.reminders {
		out = append(out, s.reminders[i].Clone())
	}
	return out
}

// DueReminders returns undone reminders whose due date has been reached by
// now.
func (s *Store) DueReminders(now time.Time) []models.QuickReminder {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.QuickReminder
	for i := range s.reminders {
		q := s.reminders[i]
		if q.IsDone || q.DueDate == nil {
			continue
		}
		if !q.DueDate.After(now) {
			out = append(out, q.Clone())
		}
	}
	return out
}

func (s *Store) reminderIndex(id string) int {
	for i := range s.reminders {
		if s.reminders[i].ID == id {
			return i
		}
	}
	return -1
}
