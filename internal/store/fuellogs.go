package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/models"
	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/storage"
)

// FuelLogInput carries the fields needed to log a refuel or charge.
type FuelLogInput struct {
	VehicleID string    `json:"vehicle_id"`
	Date      time.Time `json:"date"`
	FuelType  string    `json:"fuel_type"`
	Volume    float64   `json:"volume"`
	TotalCost float64   `json:"total_cost"`
	UnitPrice float64   `json:"unit_price"`
	Mileage   *float64  `json:"mileage"`
}

func (in FuelLogInput) validate() error {
	if in.Volume <= 0 {
		return invalid("volume must be positive")
	}
	if in.TotalCost < 0 {
		return invalid("total cost must not be negative")
	}
	if in.Mileage != nil && *in.Mileage < 0 {
		return invalid("mileage must not be negative")
	}
	return nil
}

// AddFuelLog appends a fuel log. A zero unit price is derived from total
// cost and volume.
func (s *Store) AddFuelLog(ctx context.Context, in FuelLogInput) (models.FuelLog, error) {
	if err := in.validate(); err != nil {
		return models.FuelLog{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.vehicleIndex(in.VehicleID) < 0 {
		return models.FuelLog{}, notFound("vehicle", in.VehicleID)
	}

	date := in.Date
	if date.IsZero() {
		date = s.now()
	}
	f := models.FuelLog{
		ID:        newID(),
		VehicleID: in.VehicleID,
		Date:      date,
		FuelType:  in.FuelType,
		Volume:    in.Volume,
		TotalCost: in.TotalCost,
		UnitPrice: in.UnitPrice,
		Mileage:   in.Mileage,
		CreatedAt: s.now(),
	}
	if f.FuelType == "" {
		f.FuelType = "petrol"
	}
	if f.UnitPrice == 0 && f.Volume > 0 {
		f.UnitPrice = f.TotalCost / f.Volume
	}

	prev := s.fuelLogs
	s.fuelLogs = append(s.fuelLogs, f)
	if err := s.persist(ctx, storage.KeyFuelLogs); err != nil {
		s.fuelLogs = prev
		return models.FuelLog{}, err
	}

	log.WithFields(log.Fields{"fuel_log_id": f.ID, "vehicle_id": f.VehicleID}).Info("fuel log added")
	return f.Clone(), nil
}

// DeleteFuelLog removes a fuel log. Undoable.
func (s *Store) DeleteFuelLog(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.fuelLogIndex(id)
	if idx < 0 {
		return notFound("fuel log", id)
	}

	s.takeSnapshot()
	prev := s.fuelLogs
	s.fuelLogs = append(s.fuelLogs[:idx:idx], s.fuelLogs[idx+1:]...)
	if err := s.persist(ctx, storage.KeyFuelLogs); err != nil {
		s.fuelLogs = prev
		s.undo = nil
		return err
	}
	log.WithField("fuel_log_id", id).Info("fuel log deleted")
	return nil
}

// FuelLogsForVehicle returns copies of every fuel log belonging to the
// vehicle, newest first.
func (s *Store) FuelLogsForVehicle(vehicleID string) []models.FuelLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.FuelLog{}
	for i := len(s.fuelLogs) - 1; i >= 0; i-- {
		if s.fuelLogs[i].VehicleID == vehicleID {
			out = append(out, s.fuelLogs[i].Clone())
		}
	}
	return out
}

func (s *Store) fuelLogIndex(id string) int {
	for i := range s.fuelLogs {
		if s.fuelLogs[i].ID == id {
			return i
		}
	}
	return -1
}
