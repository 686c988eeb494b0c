// Package store holds the authoritative in-memory state for the domain
// collections and every operation that mutates them. Mutations apply in
// memory first, then persist the affected collections through the gateway;
// a failed persist rolls the in-memory state back before the error reaches
// the caller. Destructive operations take a single-slot snapshot first so
// the most recent one can be undone.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/models"
	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/storage"
)

// Store owns the domain collections. All reads and writes go through it.
// Commands are serialized by an internal mutex; the snapshot slot still only
// remembers the latest destructive operation.
type Store struct {
	mu  sync.Mutex
	gw  storage.Gateway
	now func() time.Time

	vehicles  []models.Vehicle
	tasks     []models.MaintenanceTask
	records   []models.MaintenanceRecord
	fuelLogs  []models.FuelLog
	reminders []models.QuickReminder

	undo *snapshot
}

// New returns an empty store backed by the given gateway.
func New(gw storage.Gateway) *Store {
	return &Store{
		gw:  gw,
		now: time.Now,
	}
}

// SetClock overrides the store's clock. Tests use it to pin "now".
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Load replaces in-memory state with what the gateway holds. Keys that were
// never written load as empty collections.
func (s *Store) Load(ctx context.Context) error {
	payloads, err := storage.LoadAll(ctx, s.gw)
	if err != nil {
		return fmt.Errorf("load collections: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := unmarshalInto(payloads[storage.KeyVehicles], &s.vehicles); err != nil {
		return fmt.Errorf("decode %s: %w", storage.KeyVehicles, err)
	}
	if err := unmarshalInto(payloads[storage.KeyTasks], &s.tasks); err != nil {
		return fmt.Errorf("decode %s: %w", storage.KeyTasks, err)
	}
	if err := unmarshalInto(payloads[storage.KeyRecords], &s.records); err != nil {
		return fmt.Errorf("decode %s: %w", storage.KeyRecords, err)
	}
	if err := unmarshalInto(payloads[storage.KeyFuelLogs], &s.fuelLogs); err != nil {
		return fmt.Errorf("decode %s: %w", storage.KeyFuelLogs, err)
	}
	if err := unmarshalInto(payloads[storage.KeyReminders], &s.reminders); err != nil {
		return fmt.Errorf("decode %s: %w", storage.KeyReminders, err)
	}

	log.WithFields(log.Fields{
		"vehicles":  len(s.vehicles),
		"tasks":     len(s.tasks),
		"records":   len(s.records),
		"fuel_logs": len(s.fuelLogs),
		"reminders": len(s.reminders),
	}).Info("store loaded")
	return nil
}

func unmarshalInto[T any](data []byte, out *[]T) error {
	if data == nil {
		*out = []T{}
		return nil
	}
	return json.Unmarshal(data, out)
}

// persist writes the named collections through the gateway. The first
// failure aborts the remaining writes; the caller is responsible for rolling
// in-memory state back.
func (s *Store) persist(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		var (
			data []byte
			err  error
		)
		switch key {
		case storage.KeyVehicles:
			data, err = json.Marshal(s.vehicles)
		case storage.KeyTasks:
			data, err = json.Marshal(s.tasks)
		case storage.KeyRecords:
			data, err = json.Marshal(s.records)
		case storage.KeyFuelLogs:
			data, err = json.Marshal(s.fuelLogs)
		case storage.KeyReminders:
			data, err = json.Marshal(s.reminders)
		default:
			err = fmt.Errorf("unknown collection key %q", key)
		}
		if err != nil {
			return &PersistenceError{Key: key, Err: err}
		}
		if err := s.gw.Save(ctx, key, data); err != nil {
			return &PersistenceError{Key: key, Err: err}
		}
	}
	return nil
}

func newID() string {
	return uuid.NewString()
}

// VehicleInput carries the fields needed to create a vehicle.
type VehicleInput struct {
	Make           string  `json:"make"`
	Model          string  `json:"model"`
	Year           int     `json:"year"`
	Nickname       string  `json:"nickname"`
	Category       string  `json:"category"`
	CurrentMileage float64 `json:"current_mileage"`
	PhotoURI       string  `json:"photo_uri"`
}

func (in VehicleInput) validate() error {
	if strings.TrimSpace(in.Make) == "" {
		return invalid("make is required")
	}
	if strings.TrimSpace(in.Model) == "" {
		return invalid("model is required")
	}
	if in.Year < 1900 || in.Year > 2100 {
		return invalid("year %d is out of range", in.Year)
	}
	if in.CurrentMileage < 0 {
		return invalid("current mileage must not be negative")
	}
	return nil
}

// AddVehicle validates the input, assigns identity and timestamps and
// appends the vehicle.
func (s *Store) AddVehicle(ctx context.Context, in VehicleInput) (models.Vehicle, error) {
	if err := in.validate(); err != nil {
		return models.Vehicle{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	v := models.Vehicle{
		ID:             newID(),
		Make:           strings.TrimSpace(in.Make),
		Model:          strings.TrimSpace(in.Model),
		Year:           in.Year,
		Nickname:       strings.TrimSpace(in.Nickname),
		Category:       in.Category,
		CurrentMileage: in.CurrentMileage,
		PhotoURI:       in.PhotoURI,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if v.Category == "" {
		v.Category = "car"
	}

	prev := s.vehicles
	s.vehicles = append(s.vehicles, v)
	if err := s.persist(ctx, storage.KeyVehicles); err != nil {
		s.vehicles = prev
		return models.Vehicle{}, err
	}

	log.WithFields(log.Fields{"vehicle_id": v.ID, "make": v.Make, "model": v.Model}).Info("vehicle added")
	return v.Clone(), nil
}

// VehiclePatch carries optional vehicle updates; nil fields are untouched.
type VehiclePatch struct {
	Make     *string `json:"make"`
	Model    *string `json:"model"`
	Year     *int    `json:"year"`
	Nickname *string `json:"nickname"`
	Category *string `json:"category"`
	PhotoURI *string `json:"photo_uri"`
}

// UpdateVehicle merges the patch into an existing vehicle and bumps its
// UpdatedAt.
func (s *Store) UpdateVehicle(ctx context.Context, id string, patch VehiclePatch) (models.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.vehicleIndex(id)
	if idx < 0 {
		return models.Vehicle{}, notFound("vehicle", id)
	}

	updated := s.vehicles[idx].Clone()
	if patch.Make != nil {
		if strings.TrimSpace(*patch.Make) == "" {
			return models.Vehicle{}, invalid("make must not be empty")
		}
		updated.Make = strings.TrimSpace(*patch.Make)
	}
	if patch.Model != nil {
		if strings.TrimSpace(*patch.Model) == "" {
			return models.Vehicle{}, invalid("model must not be empty")
		}
		updated.Model = strings.TrimSpace(*patch.Model)
	}
	if patch.Year != nil {
		if *patch.Year < 1900 || *patch.Year > 2100 {
			return models.Vehicle{}, invalid("year %d is out of range", *patch.Year)
		}
		updated.Year = *patch.Year
	}
	if patch.Nickname != nil {
		updated.Nickname = strings.TrimSpace(*patch.Nickname)
	}
	if patch.Category != nil {
		updated.Category = *patch.Category
	}
	if patch.PhotoURI != nil {
		updated.PhotoURI = *patch.PhotoURI
	}
	updated.UpdatedAt = s.now()

	prev := s.vehicles[idx]
	s.vehicles[idx] = updated
	if err := s.persist(ctx, storage.KeyVehicles); err != nil {
		s.vehicles[idx] = prev
		return models.Vehicle{}, err
	}
	return updated.Clone(), nil
}

// SetVehicleMileage advances a vehicle's odometer. Mileage is treated as
// monotonically non-decreasing; corrections downward are rejected.
func (s *Store) SetVehicleMileage(ctx context.Context, id string, mileage float64) (models.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.vehicleIndex(id)
	if idx < 0 {
		return models.Vehicle{}, notFound("vehicle", id)
	}
	if mileage < s.vehicles[idx].CurrentMileage {
		return models.Vehicle{}, invalid("mileage %.0f is below current odometer %.0f", mileage, s.vehicles[idx].CurrentMileage)
	}

	prev := s.vehicles[idx]
	updated := prev.Clone()
	updated.CurrentMileage = mileage
	updated.UpdatedAt = s.now()
	s.vehicles[idx] = updated
	if err := s.persist(ctx, storage.KeyVehicles); err != nil {
		s.vehicles[idx] = prev
		return models.Vehicle{}, err
	}
	return updated.Clone(), nil
}

// SetVehicleArchived flips the archived flag. The operation is undoable and
// does not cascade: an archived vehicle keeps its full history.
func (s *Store) SetVehicleArchived(ctx context.Context, id string, archived bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.vehicleIndex(id)
	if idx < 0 {
		return notFound("vehicle", id)
	}

	s.takeSnapshot()
	prev := s.vehicles[idx]
	updated := prev.Clone()
	updated.IsArchived = archived
	updated.UpdatedAt = s.now()
	s.vehicles[idx] = updated
	if err := s.persist(ctx, storage.KeyVehicles); err != nil {
		s.vehicles[idx] = prev
		s.undo = nil
		return err
	}
	log.WithFields(log.Fields{"vehicle_id": id, "archived": archived}).Info("vehicle archive flag set")
	return nil
}

// DeleteVehicle removes the vehicle and cascades to every task, record and
// fuel log that references it. The whole cascade is one snapshot unit: undo
// brings everything back.
func (s *Store) DeleteVehicle(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.vehicleIndex(id)
	if idx < 0 {
		return notFound("vehicle", id)
	}

	s.takeSnapshot()
	prev := s.captureState()

	s.vehicles = append(s.vehicles[:idx:idx], s.vehicles[idx+1:]...)
	s.tasks = filterTasks(s.tasks, func(t models.MaintenanceTask) bool { return t.VehicleID != id })
	s.records = filterRecords(s.records, func(r models.MaintenanceRecord) bool { return r.VehicleID != id })
	s.fuelLogs = filterFuelLogs(s.fuelLogs, func(f models.FuelLog) bool { return f.VehicleID != id })

	if err := s.persist(ctx, storage.KeyVehicles, storage.KeyTasks, storage.KeyRecords, storage.KeyFuelLogs); err != nil {
		s.restoreState(prev)
		s.undo = nil
		return err
	}
	log.WithField("vehicle_id", id).Info("vehicle deleted with dependents")
	return nil
}

// Vehicles returns a copy of the vehicle collection, optionally including
// archived ones.
func (s *Store) Vehicles(includeArchived bool) []models.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Vehicle, 0, len(s.vehicles))
	for _, v := range s.vehicles {
		if !includeArchived && v.IsArchived {
			continue
		}
		out = append(out, v.Clone())
	}
	return out
}

// VehicleByID returns a copy of one vehicle.
func (s *Store) VehicleByID(id string) (models.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.vehicleIndex(id)
	if idx < 0 {
		return models.Vehicle{}, notFound("vehicle", id)
	}
	return s.vehicles[idx].Clone(), nil
}

func (s *Store) vehicleIndex(id string) int {
	for i := range s.vehicles {
		if s.vehicles[i].ID == id {
			return i
		}
	}
	return -1
}

func filterTasks(in []models.MaintenanceTask, keep func(models.MaintenanceTask) bool) []models.MaintenanceTask {
	out := in[:0:0]
	for _, t := range in {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

func filterRecords(in []models.MaintenanceRecord, keep func(models.MaintenanceRecord) bool) []models.MaintenanceRecord {
	out := in[:0:0]
	for _, r := range in {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func filterFuelLogs(in []models.FuelLog, keep func(models.FuelLog) bool) []models.FuelLog {
	out := in[:0:0]
	for _, f := range in {
		if keep(f) {
			out = append(out, f)
		}
	}
	return out
}
