package models

import "time"

// TrackPoint is one GPX point annotated with the distance covered since the
// first point of the track
type TrackPoint struct {
	Time      time.Time `json:"time"`
	HasTime   bool      `json:"hasTime"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`

	// CumulativeDistance is in meters, non-decreasing, 0 at the first point
	CumulativeDistance float64 `json:"cumulativeDistance"`
}
