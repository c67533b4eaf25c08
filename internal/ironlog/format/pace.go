package format

import (
	"fmt"
	"math"
)

// Pace returns minutes per kilometer for the given distance (km) and duration (minutes).
// Nil is returned when either value is missing or the distance is not positive.
func Pace(distanceKm, durationMin *float64) *float64 {
	if distanceKm == nil || durationMin == nil || *distanceKm <= 0 {
		return nil
	}
	p := *durationMin / *distanceKm
	return &p
}

// PaceString converts a decimal pace (minutes per km) into "M:SS".
// Seconds that round up to 60 carry into the minute, so 4.9999 reads "5:00".
func PaceString(pace float64) string {
	minutes := math.Floor(pace)
	seconds := math.Round((pace - minutes) * 60)
	if seconds >= 60 {
		minutes++
		seconds -= 60
	}
	return fmt.Sprintf("%d:%02d", int(minutes), int(seconds))
}

// PaceLabel is PaceString with the unit appended, e.g. "4:18 min/km".
func PaceLabel(pace float64) string {
	return PaceString(pace) + " min/km"
}

// OptionalPaceLabel returns an empty string for a missing pace.
func OptionalPaceLabel(pace *float64) string {
	if pace == nil {
		return ""
	}
	return PaceLabel(*pace)
}
