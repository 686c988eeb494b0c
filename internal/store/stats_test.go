package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicleStatsFor(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	v := seedVehicle(t, s, 45000)
	other := seedVehicle(t, s, 10000)

	_, err := s.AddRecord(ctx, RecordInput{VehicleID: v.ID, Title: "Oil change", ServiceType: "oil_change", Mileage: 40000, Cost: 80})
	require.NoError(t, err)
	_, err = s.AddRecord(ctx, RecordInput{VehicleID: v.ID, Title: "Brake pads", ServiceType: "brake_service", Mileage: 42000, Cost: 220})
	require.NoError(t, err)
	_, err = s.AddRecord(ctx, RecordInput{VehicleID: other.ID, Title: "Other car", ServiceType: "oil_change", Mileage: 9000, Cost: 999})
	require.NoError(t, err)

	jan := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	_, err = s.AddFuelLog(ctx, FuelLogInput{VehicleID: v.ID, Date: jan, Volume: 40, TotalCost: 70})
	require.NoError(t, err)
	_, err = s.AddFuelLog(ctx, FuelLogInput{VehicleID: v.ID, Date: mar, Volume: 35, TotalCost: 65})
	require.NoError(t, err)

	stats, err := s.VehicleStatsFor(v.ID)
	require.NoError(t, err)
	assert.Equal(t, 300.0, stats.MaintenanceCost)
	assert.Equal(t, 135.0, stats.FuelCost)
	assert.Equal(t, 75.0, stats.FuelVolume)
	assert.Equal(t, 435.0, stats.TotalCost)
	assert.Equal(t, 2, stats.RecordCount)
	assert.Equal(t, 2, stats.FuelLogCount)
	assert.Equal(t, 80.0, stats.CostByServiceType["oil_change"])
	assert.Equal(t, 220.0, stats.CostByServiceType["brake_service"])
	// January through March spans three months.
	assert.InDelta(t, 45.0, stats.MonthlyFuelAverage, 0.001)
}

func TestVehicleStatsFor_UnknownVehicle(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.VehicleStatsFor("missing")
	assert.True(t, IsNotFound(err))
}

func TestOverallStatsFor(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	a := seedVehicle(t, s, 45000)
	b := seedVehicle(t, s, 10000)

	_, err := s.AddRecord(ctx, RecordInput{VehicleID: a.ID, Title: "Oil change", Mileage: 40000, Cost: 100})
	require.NoError(t, err)
	_, err = s.AddFuelLog(ctx, FuelLogInput{VehicleID: a.ID, Volume: 40, TotalCost: 60})
	require.NoError(t, err)
	_, err = s.AddFuelLog(ctx, FuelLogInput{VehicleID: b.ID, Volume: 30, TotalCost: 50})
	require.NoError(t, err)

	stats := s.OverallStatsFor()
	assert.Equal(t, 210.0, stats.TotalCost)
	assert.Equal(t, 160.0, stats.CostByVehicle[a.ID])
	assert.Equal(t, 50.0, stats.CostByVehicle[b.ID])
}
