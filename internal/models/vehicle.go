package models

import (
	"time"
)

// Vehicle represents a tracked vehicle.
type Vehicle struct {
	ID             string    `bson:"_id,omitempty" json:"id"`
	Make           string    `bson:"make" json:"make"`
	Model          string    `bson:"model" json:"model"`
	Year           int       `bson:"year" json:"year"`
	Nickname       string    `bson:"nickname,omitempty" json:"nickname,omitempty"`
	Category       string    `bson:"category" json:"category"` // "car", "motorcycle", "truck", "other"
	CurrentMileage float64   `bson:"current_mileage" json:"current_mileage"` // in kilometers
	PhotoURI       string    `bson:"photo_uri,omitempty" json:"photo_uri,omitempty"`
	IsArchived     bool      `bson:"is_archived" json:"is_archived"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}

// Clone returns a deep copy of the vehicle.
func (v Vehicle) Clone() Vehicle {
	return v
}

// CloneVehicles deep-copies a vehicle slice.
func CloneVehicles(in []Vehicle) []Vehicle {
	out := make([]Vehicle, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}
