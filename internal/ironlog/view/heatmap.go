package view

import (
	"fmt"
	"math"
	"time"

	"github.com/2beens/ironlog/internal/ironlog/api"
	"github.com/2beens/ironlog/internal/ironlog/format"
)

const (
	heatmapMonths   = 6
	heatmapMaxLevel = 4
	daysInWeek      = 7
)

type HeatmapCell struct {
	Date  string
	Level int
	Count int
	Title string
}

type Heatmap struct {
	// Weeks holds the cells row-major, one row per week starting on Sunday.
	// The last week ends today and may be partial.
	Weeks [][]HeatmapCell
	// Empty is set when the payload had no rows at all.
	Empty bool
}

func (h Heatmap) Cells() []HeatmapCell {
	cells := make([]HeatmapCell, 0, len(h.Weeks)*daysInWeek)
	for _, w := range h.Weeks {
		cells = append(cells, w...)
	}
	return cells
}

// HeatmapStart is six months before today, moved back to the preceding Sunday.
func HeatmapStart(today time.Time) time.Time {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	start := day.AddDate(0, -heatmapMonths, 0)
	return start.AddDate(0, 0, -int(start.Weekday()))
}

// HeatmapLevel buckets count into 0..4 relative to maxCount.
func HeatmapLevel(count, maxCount int) int {
	if count <= 0 || maxCount <= 0 {
		return 0
	}
	level := int(math.Ceil(float64(count) / float64(maxCount) * heatmapMaxLevel))
	if level < 1 {
		return 1
	}
	if level > heatmapMaxLevel {
		return heatmapMaxLevel
	}
	return level
}

// BuildHeatmap lays the sparse counts over a dense day-by-day window
// from HeatmapStart(today) through today.
func BuildHeatmap(rows []api.HeatmapCount, today time.Time) Heatmap {
	start := HeatmapStart(today)
	end := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	startKey := start.Format(format.DateLayout)
	endKey := end.Format(format.DateLayout)

	counts := make(map[string]int, len(rows))
	maxCount := 0
	for _, r := range rows {
		counts[r.Date] += r.Count.Int()
	}
	for date, count := range counts {
		if date >= startKey && date <= endKey && count > maxCount {
			maxCount = count
		}
	}

	heatmap := Heatmap{
		Weeks: make([][]HeatmapCell, 0, 27),
		Empty: len(rows) == 0,
	}
	var week []HeatmapCell
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		date := day.Format(format.DateLayout)
		count := counts[date]
		week = append(week, HeatmapCell{
			Date:  date,
			Count: count,
			Level: HeatmapLevel(count, maxCount),
			Title: heatmapTitle(date, count),
		})
		if len(week) == daysInWeek {
			heatmap.Weeks = append(heatmap.Weeks, week)
			week = nil
		}
	}
	if len(week) > 0 {
		heatmap.Weeks = append(heatmap.Weeks, week)
	}
	return heatmap
}

func heatmapTitle(date string, count int) string {
	switch {
	case count <= 0:
		return date
	case count == 1:
		return date + " · 1 session"
	default:
		return fmt.Sprintf("%s · %d sessions", date, count)
	}
}
