package models

import (
	"time"
)

// FuelLog records a refuel or charge event for a vehicle.
type FuelLog struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	VehicleID string    `bson:"vehicle_id" json:"vehicle_id"`
	Date      time.Time `bson:"date" json:"date"`
	FuelType  string    `bson:"fuel_type" json:"fuel_type"` // "petrol", "diesel", "lpg", "electric"
	Volume    float64   `bson:"volume" json:"volume"`       // liters or kWh
	TotalCost float64   `bson:"total_cost" json:"total_cost"`
	UnitPrice float64   `bson:"unit_price" json:"unit_price"`
	Mileage   *float64  `bson:"mileage,omitempty" json:"mileage,omitempty"` // odometer at fill-up, if noted
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Clone returns a deep copy of the fuel log.
func (f FuelLog) Clone() FuelLog {
	c := f
	c.Mileage = cloneFloat(f.Mileage)
	return c
}

// CloneFuelLogs deep-copies a fuel log slice.
func CloneFuelLogs(in []FuelLog) []FuelLog {
	out := make([]FuelLog, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}
