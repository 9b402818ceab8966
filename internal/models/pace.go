package models

import "time"

// Selection methods accepted from the form
const (
	MethodDistance = "distance"
	MethodTime     = "time"
)

// SelectionCriterion picks a contiguous sub-range of a track. It is either a
// DistanceRange or a TimeRange.
type SelectionCriterion interface {
	Method() string
}

// DistanceRange selects points by cumulative distance, bounds inclusive
type DistanceRange struct {
	StartMeters float64
	EndMeters   float64
}

func (DistanceRange) Method() string { return MethodDistance }

// TimeRange selects points by elapsed time since the first point, bounds inclusive
type TimeRange struct {
	StartOffset time.Duration
	EndOffset   time.Duration
}

func (TimeRange) Method() string { return MethodTime }

// PaceResult holds the raw statistics of a selection
type PaceResult struct {
	PaceSecondsPerKm *float64 `json:"paceSecondsPerKm,omitempty"`
	DistanceMeters   float64  `json:"distanceMeters"`
	DurationSeconds  float64  `json:"durationSeconds"`
	PointCount       int      `json:"pointCount"`
}

// Summary is the rendered form of a PaceResult
type Summary struct {
	Pace     *string    `json:"pace"`
	Distance string     `json:"distance"`
	Duration string     `json:"duration"`
	Stats    PaceResult `json:"stats"`
}

// PaceRequest is the raw selection input as it arrives from a form or flags
type PaceRequest struct {
	Method string `json:"method"`
	// Start and End are kilometers for the distance method and H:M:S offsets
	// for the time method
	Start string `json:"start"`
	End   string `json:"end"`
}
