package store

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/models"
	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/storage"
)

// snapshot is a deep copy of the four domain collections. Quick reminders
// are outside the undo unit.
type snapshot struct {
	vehicles []models.Vehicle
	tasks    []models.MaintenanceTask
	records  []models.MaintenanceRecord
	fuelLogs []models.FuelLog
}

// takeSnapshot fills the single undo slot, discarding whatever was there.
// Callers hold s.mu.
func (s *Store) takeSnapshot() {
	s.undo = s.captureState()
}

// captureState deep-copies the current domain collections. Callers hold s.mu.
func (s *Store) captureState() *snapshot {
	return &snapshot{
		vehicles: models.CloneVehicles(s.vehicles),
		tasks:    models.CloneTasks(s.tasks),
		records:  models.CloneRecords(s.records),
		fuelLogs: models.CloneFuelLogs(s.fuelLogs),
	}
}

// restoreState replaces the domain collections with the snapshot's contents.
// Callers hold s.mu.
func (s *Store) restoreState(sn *snapshot) {
	s.vehicles = sn.vehicles
	s.tasks = sn.tasks
	s.records = sn.records
	s.fuelLogs = sn.fuelLogs
}

// CanUndo reports whether an undo snapshot is available.
func (s *Store) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.undo != nil
}

// Undo restores the most recent snapshot, persists all four collections and
// consumes the slot. With no snapshot available it reports false and no
// error: undo affordances in the UI are transient and a double press must be
// harmless. If persisting the restored state fails, the restore is backed
// out and the snapshot kept so the caller can retry.
func (s *Store) Undo(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.undo == nil {
		return false, nil
	}

	current := s.captureState()
	s.restoreState(s.undo)
	if err := s.persist(ctx, storage.KeyVehicles, storage.KeyTasks, storage.KeyRecords, storage.KeyFuelLogs); err != nil {
		s.restoreState(current)
		return false, err
	}
	s.undo = nil
	log.Info("last destructive operation undone")
	return true, nil
}
