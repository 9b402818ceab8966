package pace

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jengzang/gpx-pace-backend/internal/models"
)

// ParseOffset parses an elapsed-time offset of up to three colon-separated
// integers, read right to left as seconds, minutes and hours:
// "45" is 45s, "5:30" is 5m30s, "1:05:30" is 1h5m30s.
func ParseOffset(s string) (time.Duration, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, models.NewError(models.KindInvalidInput, nil, "empty time offset")
	}

	parts := strings.Split(trimmed, ":")
	if len(parts) > 3 {
		return 0, models.NewError(models.KindInvalidInput, nil,
			"invalid time offset %q: expected at most H:M:S", s)
	}

	var total time.Duration
	units := []time.Duration{time.Second, time.Minute, time.Hour}
	for i := 0; i < len(parts); i++ {
		part := strings.TrimSpace(parts[len(parts)-1-i])
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, models.NewError(models.KindInvalidInput, err, "invalid time offset %q", s)
		}
		if n < 0 {
			return 0, models.NewError(models.KindInvalidInput, nil,
				"invalid time offset %q: components must not be negative", s)
		}
		if time.Duration(n) > (math.MaxInt64-total)/units[i] {
			return 0, models.NewError(models.KindInvalidInput, nil,
				"invalid time offset %q: too large", s)
		}
		total += time.Duration(n) * units[i]
	}

	return total, nil
}

// ParseKilometers parses a decimal kilometer bound and returns meters
func ParseKilometers(s string) (float64, error) {
	km, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, models.NewError(models.KindInvalidInput, err, "invalid distance %q", s)
	}
	if math.IsNaN(km) || math.IsInf(km, 0) {
		return 0, models.NewError(models.KindInvalidInput, nil, "invalid distance %q", s)
	}
	if km < 0 {
		return 0, models.NewError(models.KindInvalidInput, nil,
			"invalid distance %q: must not be negative", s)
	}
	return km * 1000, nil
}

// NewCriterion builds a selection criterion from raw form values. Inverted
// bounds are rejected.
func NewCriterion(method, start, end string) (models.SelectionCriterion, error) {
	switch method {
	case models.MethodDistance:
		startMeters, err := ParseKilometers(start)
		if err != nil {
			return nil, err
		}
		endMeters, err := ParseKilometers(end)
		if err != nil {
			return nil, err
		}
		r := models.DistanceRange{StartMeters: startMeters, EndMeters: endMeters}
		if err := Validate(r); err != nil {
			return nil, err
		}
		return r, nil

	case models.MethodTime:
		startOffset, err := ParseOffset(start)
		if err != nil {
			return nil, err
		}
		endOffset, err := ParseOffset(end)
		if err != nil {
			return nil, err
		}
		r := models.TimeRange{StartOffset: startOffset, EndOffset: endOffset}
		if err := Validate(r); err != nil {
			return nil, err
		}
		return r, nil

	default:
		return nil, models.NewError(models.KindInvalidInput, nil,
			"unknown selection method %q", method)
	}
}

// Validate rejects criteria whose start lies after their end
func Validate(criterion models.SelectionCriterion) error {
	switch c := criterion.(type) {
	case models.DistanceRange:
		if c.StartMeters < 0 || c.EndMeters < 0 {
			return models.NewError(models.KindInvalidInput, nil, "distance bounds must not be negative")
		}
		if c.StartMeters > c.EndMeters {
			return models.NewError(models.KindInvalidRange, nil,
				"start distance %.3f km is after end distance %.3f km",
				c.StartMeters/1000, c.EndMeters/1000)
		}
	case models.TimeRange:
		if c.StartOffset < 0 || c.EndOffset < 0 {
			return models.NewError(models.KindInvalidInput, nil, "time offsets must not be negative")
		}
		if c.StartOffset > c.EndOffset {
			return models.NewError(models.KindInvalidRange, nil,
				"start offset %s is after end offset %s", c.StartOffset, c.EndOffset)
		}
	case nil:
		return models.NewError(models.KindInvalidInput, nil, "missing selection criterion")
	default:
		return models.NewError(models.KindInvalidInput, nil, "unsupported criterion %T", c)
	}
	return nil
}
