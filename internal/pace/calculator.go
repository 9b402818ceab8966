package pace

import (
	"fmt"
	"math"

	"github.com/jengzang/gpx-pace-backend/internal/models"
)

// Calculate derives distance, elapsed time and average pace from the first and
// last point of a selection. Fewer than two points yield an empty result;
// zero net distance yields no pace.
func Calculate(selected []models.TrackPoint) (models.PaceResult, error) {
	result := models.PaceResult{PointCount: len(selected)}
	if len(selected) < 2 {
		return result, nil
	}

	first, last := selected[0], selected[len(selected)-1]
	if !first.HasTime || !last.HasTime {
		return result, models.NewError(models.KindMissingTimestamp, nil,
			"selection endpoints must have timestamps")
	}

	result.DistanceMeters = last.CumulativeDistance - first.CumulativeDistance
	result.DurationSeconds = last.Time.Sub(first.Time).Seconds()

	if result.DistanceMeters == 0 {
		return result, nil
	}

	pace := result.DurationSeconds / (result.DistanceMeters / 1000)
	result.PaceSecondsPerKm = &pace
	return result, nil
}

// Summarize renders a result for display
func Summarize(result models.PaceResult) models.Summary {
	summary := models.Summary{
		Distance: FormatDistance(result.DistanceMeters),
		Duration: FormatDuration(result.DurationSeconds),
		Stats:    result,
	}
	if result.PaceSecondsPerKm != nil {
		p := FormatPace(*result.PaceSecondsPerKm)
		summary.Pace = &p
	}
	return summary
}

// FormatPace renders seconds per kilometer as "M:SS min/km"
func FormatPace(secondsPerKm float64) string {
	sign, v := splitSign(secondsPerKm)
	minutes := math.Floor(v / 60)
	seconds := math.Floor(math.Mod(v, 60))
	return fmt.Sprintf("%s%d:%02d min/km", sign, int64(minutes), int64(seconds))
}

// FormatDistance renders meters as kilometers with two decimals
func FormatDistance(meters float64) string {
	return fmt.Sprintf("%.2f km", meters/1000)
}

// FormatDuration renders seconds as "Xm Ys"
func FormatDuration(seconds float64) string {
	sign, v := splitSign(seconds)
	minutes := math.Floor(v / 60)
	rest := math.Floor(math.Mod(v, 60))
	return fmt.Sprintf("%s%dm %ds", sign, int64(minutes), int64(rest))
}

func splitSign(v float64) (string, float64) {
	if v < 0 {
		return "-", -v
	}
	return "", v
}
