package entity

import "time"

// Aircraft status values.
const (
	AircraftStatusActive      = "active"
	AircraftStatusMaintenance = "maintenance"
	AircraftStatusStorage     = "storage"
)

// Aircraft is the document-store profile of an airframe, keyed by its
// registration number.
type Aircraft struct {
	ID              string    `bson:"_id,omitempty" json:"-"`
	RegNumber       string    `bson:"reg_number" json:"reg_number"`
	Model           string    `bson:"model" json:"model"`
	Manufacturer    string    `bson:"manufacturer" json:"manufacturer"`
	Capacity        int       `bson:"capacity" json:"capacity"`
	LastMaintenance time.Time `bson:"last_maintenance" json:"last_maintenance"`
	Status          string    `bson:"status" json:"status"`
}

// AircraftCreate is the payload for creating an aircraft.
type AircraftCreate struct {
	Model        string `json:"model" validate:"required"`
	Manufacturer string `json:"manufacturer" validate:"required"`
	Capacity     int    `json:"capacity" validate:"required,gt=0"`
	Status       string `json:"status" validate:"required,oneof=active maintenance storage"`
}

// AircraftUpdate is a partial update; nil fields are left untouched.
type AircraftUpdate struct {
	Model           *string    `json:"model,omitempty"`
	Manufacturer    *string    `json:"manufacturer,omitempty"`
	Capacity        *int       `json:"capacity,omitempty" validate:"omitempty,gt=0"`
	Status          *string    `json:"status,omitempty" validate:"omitempty,oneof=active maintenance storage"`
	LastMaintenance *time.Time `json:"last_maintenance,omitempty"`
}

// IsEmpty reports whether the update carries no fields.
func (u AircraftUpdate) IsEmpty() bool {
	return u.Model == nil && u.Manufacturer == nil && u.Capacity == nil &&
		u.Status == nil && u.LastMaintenance == nil
}

// AircraftFilter narrows an aircraft listing.
type AircraftFilter struct {
	Status      string
	MinCapacity int
	Limit       int
	Offset      int
}

// ManufacturerStats is one row of the by-manufacturer aggregate.
type ManufacturerStats struct {
	Manufacturer  string `bson:"manufacturer" json:"manufacturer"`
	Count         int64  `bson:"count" json:"count"`
	TotalCapacity int64  `bson:"total_capacity" json:"total_capacity"`
}
