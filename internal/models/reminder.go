package models

import (
	"time"
)

// QuickReminder is a free-text reminder, optionally tied to a vehicle and a
// due date. Reminders live outside the undo snapshot unit.
type QuickReminder struct {
	ID        string     `bson:"_id,omitempty" json:"id"`
	VehicleID string     `bson:"vehicle_id,omitempty" json:"vehicle_id,omitempty"`
	Text      string     `bson:"text" json:"text"`
	DueDate   *time.Time `bson:"due_date,omitempty" json:"due_date,omitempty"`
	IsDone    bool       `bson:"is_done" json:"is_done"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
}

// Clone returns a deep copy of the reminder.
func (q QuickReminder) Clone() QuickReminder {
	c := q
	c.DueDate = cloneTime(q.DueDate)
	return c
}

// CloneReminders deep-copies a reminder slice.
func CloneReminders(in []QuickReminder) []QuickReminder {
	out := make([]QuickReminder, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}
