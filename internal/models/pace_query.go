package models

import "time"

// PaceQuery is one row of the query ledger. Tracks are never stored, only the
// outcome of each computation.
type PaceQuery struct {
	ID               string    `json:"id" db:"id"`
	StorageKey       string    `json:"storageKey" db:"storage_key"`
	OriginalName     string    `json:"originalName" db:"original_name"`
	Method           string    `json:"method" db:"method"`
	StartParam       string    `json:"startParam" db:"start_param"`
	EndParam         string    `json:"endParam" db:"end_param"`
	PointCount       int       `json:"pointCount" db:"point_count"`
	DistanceMeters   float64   `json:"distanceMeters" db:"distance_m"`
	DurationSeconds  float64   `json:"durationSeconds" db:"duration_s"`
	PaceSecondsPerKm *float64  `json:"paceSecondsPerKm,omitempty" db:"pace_s_per_km"`
	ErrorKind        *string   `json:"errorKind,omitempty" db:"error_kind"`
	ErrorMessage     *string   `json:"errorMessage,omitempty" db:"error_message"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
}
