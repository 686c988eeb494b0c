package store

import (
	"context"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/models"
	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/storage"
)

// RecordInput carries the fields needed to log a maintenance event.
type RecordInput struct {
	VehicleID   string    `json:"vehicle_id"`
	TaskID      string    `json:"task_id"`
	Title       string    `json:"title"`
	ServiceType string    `json:"service_type"`
	Date        time.Time `json:"date"`
	Mileage     float64   `json:"mileage"`
	Cost        float64   `json:"cost"`
	Notes       string    `json:"notes"`
}

func (in RecordInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return invalid("record title is required")
	}
	if in.Mileage < 0 {
		return invalid("mileage must not be negative")
	}
	if in.Cost < 0 {
		return invalid("cost must not be negative")
	}
	return nil
}

// AddRecord appends a maintenance record. Records are append-only; they are
// never edited afterwards, only deleted.
func (s *Store) AddRecord(ctx context.Context, in RecordInput) (models.MaintenanceRecord, error) {
	if err := in.validate(); err != nil {
		return models.MaintenanceRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.vehicleIndex(in.VehicleID) < 0 {
		return models.MaintenanceRecord{}, notFound("vehicle", in.VehicleID)
	}
	if in.TaskID != "" && s.taskIndex(in.TaskID) < 0 {
		return models.MaintenanceRecord{}, notFound("task", in.TaskID)
	}

	date := in.Date
	if date.IsZero() {
		date = s.now()
	}
	r := models.MaintenanceRecord{
		ID:          newID(),
		VehicleID:   in.VehicleID,
		TaskID:      in.TaskID,
		Title:       strings.TrimSpace(in.Title),
		ServiceType: in.ServiceType,
		Date:        date,
		Mileage:     in.Mileage,
		Cost:        in.Cost,
		Notes:       in.Notes,
		CreatedAt:   s.now(),
	}
	if r.ServiceType == "" {
		r.ServiceType = "other"
	}

	prev := s.records
	s.records = append(s.records, r)
	if err := s.persist(ctx, storage.KeyRecords); err != nil {
		s.records = prev
		return models.MaintenanceRecord{}, err
	}

	log.WithFields(log.Fields{"record_id": r.ID, "vehicle_id": r.VehicleID}).Info("record added")
	return r.Clone(), nil
}

// DeleteRecord removes a record. Undoable.
func (s *Store) DeleteRecord(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.recordIndex(id)
	if idx < 0 {
		return notFound("record", id)
	}

	s.takeSnapshot()
	prev := s.records
	s.records = append(s.records[:idx:idx], s.records[idx+1:]...)
	if err := s.persist(ctx, storage.KeyRecords); err != nil {
		s.records = prev
		s.undo = nil
		return err
	}
	log.WithField("record_id", id).Info("record deleted")
	return nil
}

// RecordByID returns a copy of one record.
func (s *Store) RecordByID(id string) (models.MaintenanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.recordIndex(id)
	if idx < 0 {
		return models.MaintenanceRecord{}, notFound("record", id)
	}
	return s.records[idx].Clone(), nil
}

// RecordsForVehicle returns copies of every record belonging to the vehicle,
// newest first.
func (s *Store) RecordsForVehicle(vehicleID string) []models.MaintenanceRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.MaintenanceRecord{}
	for i := len(s.records) - 1; i >= 0; i-- {
		if s.records[i].VehicleID == vehicleID {
			out = append(out, s.records[i].Clone())
		}
	}
	return out
}

func (s *Store) recordIndex(id string) int {
	for i := range s.records {
		if s.records[i].ID == id {
			return i
		}
	}
	return -1
}
