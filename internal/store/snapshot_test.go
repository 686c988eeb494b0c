package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/models"
)

func TestUndo_ReversesDelete(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	v := seedVehicle(t, s, 45000)
	rec, err := s.AddRecord(ctx, RecordInput{VehicleID: v.ID, Title: "Brake pads", Mileage: 40000, Cost: 120})
	require.NoError(t, err)

	require.NoError(t, s.DeleteRecord(ctx, rec.ID))
	_, err = s.RecordByID(rec.ID)
	assert.True(t, IsNotFound(err))

	restored, err := s.Undo(ctx)
	require.NoError(t, err)
	assert.True(t, restored)

	got, err := s.RecordByID(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestUndo_ReversesVehicleCascade(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	v := seedVehicle(t, s, 45000)
	_, err := s.AddTask(ctx, TaskInput{
		VehicleID:     v.ID,
		Name:          "Oil change",
		IntervalType:  models.IntervalMileage,
		IntervalValue: 10000,
		IsRecurring:   true,
	})
	require.NoError(t, err)
	_, err = s.AddFuelLog(ctx, FuelLogInput{VehicleID: v.ID, Volume: 40, TotalCost: 70})
	require.NoError(t, err)

	require.NoError(t, s.DeleteVehicle(ctx, v.ID))

	restored, err := s.Undo(ctx)
	require.NoError(t, err)
	assert.True(t, restored)

	_, err = s.VehicleByID(v.ID)
	assert.NoError(t, err)
	assert.Len(t, s.TasksForVehicle(v.ID), 1)
	assert.Len(t, s.FuelLogsForVehicle(v.ID), 1)
}

func TestUndo_SingleSlotKeepsOnlyLatest(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	v := seedVehicle(t, s, 45000)
	r1, err := s.AddRecord(ctx, RecordInput{VehicleID: v.ID, Title: "First", Mileage: 100, Cost: 10})
	require.NoError(t, err)
	r2, err := s.AddRecord(ctx, RecordInput{VehicleID: v.ID, Title: "Second", Mileage: 200, Cost: 20})
	require.NoError(t, err)

	require.NoError(t, s.DeleteRecord(ctx, r1.ID))
	require.NoError(t, s.DeleteRecord(ctx, r2.ID))

	// Undo reverses only the second delete; the first stays deleted.
	restored, err := s.Undo(ctx)
	require.NoError(t, err)
	assert.True(t, restored)

	_, err = s.RecordByID(r2.ID)
	assert.NoError(t, err)
	_, err = s.RecordByID(r1.ID)
	assert.True(t, IsNotFound(err))
}

func TestUndo_DoublePressIsHarmless(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	v := seedVehicle(t, s, 45000)
	rec, err := s.AddRecord(ctx, RecordInput{VehicleID: v.ID, Title: "Brake pads", Mileage: 40000, Cost: 120})
	require.NoError(t, err)
	require.NoError(t, s.DeleteRecord(ctx, rec.ID))

	restored, err := s.Undo(ctx)
	require.NoError(t, err)
	assert.True(t, restored)

	before := s.RecordsForVehicle(v.ID)
	restored, err = s.Undo(ctx)
	require.NoError(t, err)
	assert.False(t, restored)
	assert.Equal(t, before, s.RecordsForVehicle(v.ID))
}

func TestUndo_NoSnapshotIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)
	restored, err := s.Undo(context.Background())
	assert.NoError(t, err)
	assert.False(t, restored)
}

func TestUndo_ArchiveToggle(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	v := seedVehicle(t, s, 45000)

	require.NoError(t, s.SetVehicleArchived(ctx, v.ID, true))
	got, err := s.VehicleByID(v.ID)
	require.NoError(t, err)
	assert.True(t, got.IsArchived)

	restored, err := s.Undo(ctx)
	require.NoError(t, err)
	assert.True(t, restored)

	got, err = s.VehicleByID(v.ID)
	require.NoError(t, err)
	assert.False(t, got.IsArchived)
}

func TestUndo_KeepsSnapshotWhenPersistFails(t *testing.T) {
	s, gw := newTestStore(t)
	ctx := context.Background()
	v := seedVehicle(t, s, 45000)
	rec, err := s.AddRecord(ctx, RecordInput{VehicleID: v.ID, Title: "Brake pads", Mileage: 40000, Cost: 120})
	require.NoError(t, err)
	require.NoError(t, s.DeleteRecord(ctx, rec.ID))

	gw.FailSave = errors.New("disk full")
	restored, err := s.Undo(ctx)
	assert.Error(t, err)
	assert.False(t, restored)

	// The record is still deleted and the undo can be retried.
	_, err = s.RecordByID(rec.ID)
	assert.True(t, IsNotFound(err))
	assert.True(t, s.CanUndo())

	gw.FailSave = nil
	restored, err = s.Undo(ctx)
	require.NoError(t, err)
	assert.True(t, restored)
	_, err = s.RecordByID(rec.ID)
	assert.NoError(t, err)
}

func TestSnapshot_IsDeepCopy(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	v := seedVehicle(t, s, 45000)
	task, err := s.AddTask(ctx, TaskInput{
		VehicleID:     v.ID,
		Name:          "Oil change",
		IntervalType:  models.IntervalMileage,
		IntervalValue: 10000,
		IsRecurring:   true,
	})
	require.NoError(t, err)
	require.NotNil(t, task.NextDueMileage)
	wantNextDue := *task.NextDueMileage

	// Delete the vehicle, then mutate unrelated state; undo must still
	// restore the original task including its pointer fields.
	require.NoError(t, s.DeleteVehicle(ctx, v.ID))
	_ = seedVehicle(t, s, 100)

	restored, err := s.Undo(ctx)
	require.NoError(t, err)
	assert.True(t, restored)

	got, err := s.TaskByID(task.ID)
	require.NoError(t, err)
	require.NotNil(t, got.NextDueMileage)
	assert.Equal(t, wantNextDue, *got.NextDueMileage)
}
