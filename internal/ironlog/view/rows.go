package view

import (
	"fmt"
	"strings"

	"github.com/2beens/ironlog/internal/ironlog/api"
	"github.com/2beens/ironlog/internal/ironlog/format"
)

const emptyMainLine = "—"

type SetRow struct {
	ID        int64
	SetNumber int
	Main      string
	Sub       string
}

type CardioRow struct {
	ID   int64
	Main string
	Sub  string
}

// NewSetRow renders e.g. "10 reps @ 60 kg" / "RPE 8 · 90s rest · felt easy".
// Explicit zero values are shown; only absent values are left out.
func NewSetRow(s api.LoggedSet) SetRow {
	var main []string
	if s.Reps != nil {
		main = append(main, format.Number(*s.Reps)+" reps")
	}
	if s.WeightKg != nil {
		main = append(main, fmt.Sprintf("@ %s kg", format.Number(*s.WeightKg)))
	}

	var sub []string
	if s.RPE != nil {
		sub = append(sub, "RPE "+format.Number(*s.RPE))
	}
	if s.RestSeconds != nil {
		sub = append(sub, format.Number(*s.RestSeconds)+"s rest")
	}
	if s.Notes != nil && strings.TrimSpace(*s.Notes) != "" {
		sub = append(sub, *s.Notes)
	}

	row := SetRow{
		ID:        s.ID,
		SetNumber: s.SetNumber.Int(),
		Main:      strings.Join(main, " "),
		Sub:       strings.Join(sub, " · "),
	}
	if row.Main == "" {
		row.Main = emptyMainLine
	}
	return row
}

// NewCardioRow renders e.g. "5 km · 25 min · 5:00 min/km" / "152 bpm · 40 m elev".
// The backend pace wins; otherwise it is derived from distance and duration.
func NewCardioRow(c api.CardioEntry) CardioRow {
	var main []string
	if c.DistanceKm != nil {
		main = append(main, format.Number(*c.DistanceKm)+" km")
	}
	if c.DurationMin != nil {
		main = append(main, format.Number(*c.DurationMin)+" min")
	}
	pace := c.AvgPaceMinKm
	if pace == nil {
		pace = format.Pace(c.DistanceKm, c.DurationMin)
	}
	if pace != nil {
		main = append(main, format.PaceLabel(*pace))
	}

	var sub []string
	if c.AvgHeartRate != nil {
		sub = append(sub, format.Number(*c.AvgHeartRate)+" bpm")
	}
	if c.ElevationM != nil {
		sub = append(sub, format.Number(*c.ElevationM)+" m elev")
	}
	if c.Notes != nil && strings.TrimSpace(*c.Notes) != "" {
		sub = append(sub, *c.Notes)
	}

	row := CardioRow{
		ID:   c.ID,
		Main: strings.Join(main, " · "),
		Sub:  strings.Join(sub, " · "),
	}
	if row.Main == "" {
		row.Main = emptyMainLine
	}
	return row
}
