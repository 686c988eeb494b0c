package store

import (
	"time"
)

// VehicleStats aggregates spend for one vehicle. Pure folds over records and
// fuel logs; nothing here is persisted.
type VehicleStats struct {
	VehicleID          string             `json:"vehicle_id"`
	MaintenanceCost    float64            `json:"maintenance_cost"`
	FuelCost           float64            `json:"fuel_cost"`
	FuelVolume         float64            `json:"fuel_volume"`
	TotalCost          float64            `json:"total_cost"`
	CostByServiceType  map[string]float64 `json:"cost_by_service_type"`
	MonthlyFuelAverage float64            `json:"monthly_fuel_average"`
	RecordCount        int                `json:"record_count"`
	FuelLogCount       int                `json:"fuel_log_count"`
}

// VehicleStatsFor folds the vehicle's records and fuel logs into totals.
func (s *Store) VehicleStatsFor(vehicleID string) (VehicleStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.vehicleIndex(vehicleID) < 0 {
		return VehicleStats{}, notFound("vehicle", vehicleID)
	}

	stats := VehicleStats{
		VehicleID:         vehicleID,
		CostByServiceType: make(map[string]float64),
	}
	for i := range s.records {
		r := s.records[i]
		if r.VehicleID != vehicleID {
			continue
		}
		stats.MaintenanceCost += r.Cost
		stats.CostByServiceType[r.ServiceType] += r.Cost
		stats.RecordCount++
	}

	var first, last time.Time
	for i := range s.fuelLogs {
		f := s.fuelLogs[i]
		if f.VehicleID != vehicleID {
			continue
		}
		stats.FuelCost += f.TotalCost
		stats.FuelVolume += f.Volume
		stats.FuelLogCount++
		if first.IsZero() || f.Date.Before(first) {
			first = f.Date
		}
		if last.IsZero() || f.Date.After(last) {
			last = f.Date
		}
	}
	stats.TotalCost = stats.MaintenanceCost + stats.FuelCost
	if stats.FuelLogCount > 0 {
		stats.MonthlyFuelAverage = stats.FuelCost / float64(monthsSpanned(first, last))
	}
	return stats, nil
}

// OverallStats aggregates spend across the whole garage.
type OverallStats struct {
	TotalCost     float64            `json:"total_cost"`
	CostByVehicle map[string]float64 `json:"cost_by_vehicle"`
}

// OverallStatsFor folds every record and fuel log into per-vehicle totals.
func (s *Store) OverallStatsFor() OverallStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := OverallStats{CostByVehicle: make(map[string]float64)}
	for i := range s.records {
		stats.CostByVehicle[s.records[i].VehicleID] += s.records[i].Cost
		stats.TotalCost += s.records[i].Cost
	}
	for i := range s.fuelLogs {
		stats.CostByVehicle[s.fuelLogs[i].VehicleID] += s.fuelLogs[i].TotalCost
		stats.TotalCost += s.fuelLogs[i].TotalCost
	}
	return stats
}

// monthsSpanned counts calendar months between two dates, inclusive. Equal
// months count as one.
func monthsSpanned(first, last time.Time) int {
	months := (last.Year()-first.Year())*12 + int(last.Month()) - int(first.Month()) + 1
	if months < 1 {
		return 1
	}
	return months
}
