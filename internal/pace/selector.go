package pace

import (
	"github.com/jengzang/gpx-pace-backend/internal/models"
)

// Select dispatches to the selector matching the criterion
func Select(points []models.TrackPoint, criterion models.SelectionCriterion) ([]models.TrackPoint, error) {
	if err := Validate(criterion); err != nil {
		return nil, err
	}

	switch c := criterion.(type) {
	case models.DistanceRange:
		return SelectByDistance(points, c), nil
	case models.TimeRange:
		return SelectByTime(points, c)
	}
	return nil, models.NewError(models.KindInvalidInput, nil, "unsupported criterion %T", criterion)
}

// SelectByDistance keeps the points whose cumulative distance lies within the
// inclusive range. Boundaries are not interpolated.
func SelectByDistance(points []models.TrackPoint, r models.DistanceRange) []models.TrackPoint {
	selected := make([]models.TrackPoint, 0)
	for _, p := range points {
		if r.StartMeters <= p.CumulativeDistance && p.CumulativeDistance <= r.EndMeters {
			selected = append(selected, p)
		}
	}
	return selected
}

// SelectByTime keeps the points whose timestamp lies within the inclusive
// range, with offsets measured from the first point of the track. Every point
// must carry a timestamp.
func SelectByTime(points []models.TrackPoint, r models.TimeRange) ([]models.TrackPoint, error) {
	if len(points) == 0 {
		return nil, models.NewError(models.KindEmptyTrack, nil, "track has no points")
	}
	for i, p := range points {
		if !p.HasTime {
			return nil, models.NewError(models.KindMissingTimestamp, nil,
				"point %d has no timestamp", i)
		}
	}

	base := points[0].Time
	startTime := base.Add(r.StartOffset)
	endTime := base.Add(r.EndOffset)

	selected := make([]models.TrackPoint, 0)
	for _, p := range points {
		if !p.Time.Before(startTime) && !p.Time.After(endTime) {
			selected = append(selected, p)
		}
	}
	return selected, nil
}
