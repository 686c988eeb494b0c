// Package notify scans the store for due maintenance and publishes notices.
// The engine decides nothing about delivery: it hands DueNotice values to a
// Publisher and lets the collaborator behind it (MQTT topic, log line)
// handle presentation and snoozing.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/store"
)

// DueNotice describes one due task or reminder.
type DueNotice struct {
	Kind         string   `json:"kind"` // "task" or "reminder"
	VehicleID    string   `json:"vehicle_id,omitempty"`
	RefID        string   `json:"ref_id"`
	Title        string   `json:"title"`
	DaysUntilDue *int     `json:"days_until_due,omitempty"`
	KmUntilDue   *float64 `json:"km_until_due,omitempty"`
}

// Publisher delivers due notices to the outside world.
type Publisher interface {
	Publish(ctx context.Context, notice DueNotice) error
}

// Engine runs a daily scan over the store.
type Engine struct {
	store *store.Store
	pub   Publisher
	cron  *cron.Cron
	now   func() time.Time
}

// NewEngine creates a reminder engine over the store.
func NewEngine(s *store.Store, pub Publisher) *Engine {
	return &Engine{
		store: s,
		pub:   pub,
		cron:  cron.New(),
		now:   time.Now,
	}
}

// Start registers the daily scan at the given HH:MM local time and starts
// the schedule.
func (e *Engine) Start(timeStr string) error {
	spec, err := dailySpec(timeStr)
	if err != nil {
		return err
	}
	if _, err := e.cron.AddFunc(spec, func() {
		if err := e.Scan(context.Background()); err != nil {
			log.WithError(err).Error("reminder scan failed")
		}
	}); err != nil {
		return fmt.Errorf("schedule reminder scan: %w", err)
	}
	e.cron.Start()
	log.WithField("at", timeStr).Info("reminder engine started")
	return nil
}

// Stop halts the schedule and waits for a running scan to finish.
func (e *Engine) Stop() {
	ctx := e.cron.Stop()
	<-ctx.Done()
}

// Scan publishes a notice for every due task of every active vehicle and
// every due quick reminder. The first publish error aborts the scan.
func (e *Engine) Scan(ctx context.Context) error {
	published := 0
	for _, view := range e.store.DueTasks() {
		notice := DueNotice{
			Kind:         "task",
			VehicleID:    view.Task.VehicleID,
			RefID:        view.Task.ID,
			Title:        view.Task.Name,
			DaysUntilDue: view.DaysUntilDue,
			KmUntilDue:   view.KmUntilDue,
		}
		if err := e.pub.Publish(ctx, notice); err != nil {
			return fmt.Errorf("publish task notice: %w", err)
		}
		published++
	}
	for _, q := range e.store.DueReminders(e.now()) {
		notice := DueNotice{
			Kind:      "reminder",
			VehicleID: q.VehicleID,
			RefID:     q.ID,
			Title:     q.Text,
		}
		if err := e.pub.Publish(ctx, notice); err != nil {
			return fmt.Errorf("publish reminder notice: %w", err)
		}
		published++
	}
	log.WithField("notices", published).Debug("reminder scan complete")
	return nil
}

// dailySpec turns an HH:MM string into a cron spec.
func dailySpec(timeStr string) (string, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(timeStr, "%d:%d", &hour, &minute); err != nil {
		return "", fmt.Errorf("invalid time %q, expected HH:MM", timeStr)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", fmt.Errorf("invalid time %q, expected HH:MM", timeStr)
	}
	return fmt.Sprintf("%d %d * * *", minute, hour), nil
}
