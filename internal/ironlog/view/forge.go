package view

import (
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/2beens/ironlog/internal/ironlog/api"
	"github.com/2beens/ironlog/internal/ironlog/format"
)

const (
	ChartIDVolume     = "chart-volume"
	ChartIDCalories   = "chart-calories"
	ChartIDBodyWeight = "chart-bw"
	ChartIDExercise   = "chart-exercise"
	chartIDCardio     = "chart-cardio-"
)

type StatPill struct {
	Value string
	Label string
	Class string
}

type Forge struct {
	Pills            []StatPill
	Heatmap          Heatmap
	Volume           Chart
	Calories         Chart
	BodyWeight       Chart
	ExerciseNames    []string
	SelectedExercise string
	Exercise         Chart
	Cardio           []Chart
}

// BuildForge reshapes the analytics overview for the dashboard.
// Nothing is aggregated here, the backend owns all statistics.
func BuildForge(o *api.AnalyticsOverview, today time.Time) Forge {
	if o == nil {
		o = &api.AnalyticsOverview{}
	}

	f := Forge{
		Pills:         StatPills(o.Totals, o.CardioTotals),
		Heatmap:       BuildHeatmap(o.Heatmap, today),
		Volume:        VolumeChart(o.WeeklyVolume),
		Calories:      CaloriesChart(o.CaloriesTimeline),
		BodyWeight:    BodyWeightChart(o.BWTrend),
		ExerciseNames: ExerciseNames(o.ExerciseProgress),
		Cardio:        CardioCharts(o.CardioByActivity),
	}
	if len(f.ExerciseNames) > 0 {
		f.SelectedExercise = f.ExerciseNames[0]
	}
	f.Exercise = ExerciseChart(o.ExerciseProgress, f.SelectedExercise)
	return f
}

func StatPills(t api.Totals, ct api.CardioTotals) []StatPill {
	volume := "0"
	if t.TotalVolume != nil && *t.TotalVolume > 0 {
		volume = format.Fixed(math.Round(*t.TotalVolume/100)/10, 1) + "t"
	}
	distance := "0"
	if ct.TotalDistance != nil && *ct.TotalDistance > 0 {
		distance = format.Fixed(math.Round(*ct.TotalDistance), 0) + "km"
	}
	kcal := "—"
	if t.TotalCalories != nil && *t.TotalCalories > 0 {
		kcal = format.Thousands(*t.TotalCalories)
	}

	return []StatPill{
		{Value: strconv.Itoa(t.TotalSessions.Int()), Label: "Sessions"},
		{Value: volume, Label: "Total Volume"},
		{Value: distance, Label: "Distance Run", Class: "blue"},
		{Value: kcal, Label: "Kcal Burned", Class: "red"},
	}
}

func VolumeChart(rows []api.WeeklyVolume) Chart {
	const title = "Weekly Volume"
	if len(rows) == 0 {
		return noDataChart(ChartIDVolume, title)
	}

	labels := make([]string, 0, len(rows))
	data := make([]*float64, 0, len(rows))
	for _, r := range rows {
		labels = append(labels, format.WeekLabel(r.Week))
		data = append(data, floatPtr(roundedOrZero(r.Volume)))
	}

	return Chart{
		ID:    ChartIDVolume,
		Title: title,
		Config: &ChartConfig{
			Type: "bar",
			Data: ChartData{
				Labels: labels,
				Datasets: []Dataset{{
					Label:           "Volume (kg)",
					Data:            data,
					BackgroundColor: hexAlpha(colorGreen, 0.1),
					BorderColor:     colorGreen,
					BorderWidth:     2,
					BorderRadius:    6,
					BorderSkipped:   boolPtr(false),
				}},
			},
			Options: baseOptions("kg"),
		},
	}
}

func CaloriesChart(rows []api.CaloriesPoint) Chart {
	const title = "Calories per Session"
	if len(rows) == 0 {
		return noDataChart(ChartIDCalories, title)
	}

	labels := make([]string, 0, len(rows))
	data := make([]*float64, 0, len(rows))
	for _, r := range rows {
		labels = append(labels, format.MonthDay(r.Date))
		data = append(data, floatPtr(roundedOrZero(r.Calories)))
	}

	return Chart{
		ID:    ChartIDCalories,
		Title: title,
		Config: &ChartConfig{
			Type: "bar",
			Data: ChartData{
				Labels: labels,
				Datasets: []Dataset{{
					Label:           "Calories Burned",
					Data:            data,
					BackgroundColor: hexAlpha(colorOrange, 0.15),
					BorderColor:     colorOrange,
					BorderWidth:     2,
					BorderRadius:    4,
					BorderSkipped:   boolPtr(false),
				}},
			},
			Options: baseOptions("kcal"),
		},
	}
}

func BodyWeightChart(rows []api.BodyWeightPoint) Chart {
	const title = "Body Weight"
	if len(rows) == 0 {
		return noDataChart(ChartIDBodyWeight, title)
	}

	labels := make([]string, 0, len(rows))
	data := make([]*float64, 0, len(rows))
	for _, r := range rows {
		labels = append(labels, format.MonthDay(r.Date))
		data = append(data, r.WeightKg)
	}

	return Chart{
		ID:    ChartIDBodyWeight,
		Title: title,
		Config: &ChartConfig{
			Type: "line",
			Data: ChartData{
				Labels: labels,
				Datasets: []Dataset{{
					Label:                "Body Weight (kg)",
					Data:                 data,
					BorderColor:          colorGreen,
					BackgroundColor:      hexAlpha(colorGreen, 0.2),
					BorderWidth:          2.5,
					PointBackgroundColor: colorGreen,
					PointRadius:          4,
					Fill:                 true,
					Tension:              0.3,
				}},
			},
			Options: baseOptions("kg"),
		},
	}
}

// ExerciseNames returns the progression picker entries, sorted by name.
func ExerciseNames(progress map[string]api.ExerciseProgress) []string {
	names := make([]string, 0, len(progress))
	for name := range progress {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func ExerciseChart(progress map[string]api.ExerciseProgress, name string) Chart {
	title := "Exercise Progression"
	ex, ok := progress[name]
	if name == "" || !ok || len(ex.Data) == 0 {
		return noDataChart(ChartIDExercise, title)
	}
	title = name
	if ex.Muscle != nil && *ex.Muscle != "" {
		title += " (" + *ex.Muscle + ")"
	}

	labels := make([]string, 0, len(ex.Data))
	weights := make([]*float64, 0, len(ex.Data))
	reps := make([]*float64, 0, len(ex.Data))
	for _, d := range ex.Data {
		labels = append(labels, format.MonthDay(d.Date))
		weights = append(weights, d.MaxWeight)
		reps = append(reps, d.MaxReps)
	}

	return Chart{
		ID:    ChartIDExercise,
		Title: title,
		Config: &ChartConfig{
			Type: "line",
			Data: ChartData{
				Labels: labels,
				Datasets: []Dataset{
					{
						Label:                "Max Weight (kg)",
						Data:                 weights,
						BorderColor:          colorTeal,
						BackgroundColor:      hexAlpha(colorTeal, 0.1),
						BorderWidth:          2.5,
						PointBackgroundColor: colorTeal,
						PointRadius:          5,
						Fill:                 true,
						Tension:              0.3,
						YAxisID:              "y",
					},
					{
						Label:           "Max Reps",
						Data:            reps,
						BorderColor:     colorYellow,
						BackgroundColor: "transparent",
						BorderWidth:     1.5,
						PointRadius:     3,
						BorderDash:      []int{4, 4},
						Tension:         0.3,
						YAxisID:         "y2",
					},
				},
			},
			Options: dualAxisOptions("kg", secondaryAxis("reps")),
		},
	}
}

// CardioActivities orders the activities of the payload: known activity
// types first in their declared order, unknown keys after them sorted.
func CardioActivities(byActivity map[string][]api.CardioPoint) []string {
	activities := make([]string, 0, len(byActivity))
	known := make(map[string]bool, len(api.ActivityTypes))
	for _, at := range api.ActivityTypes {
		known[at.String()] = true
		if _, ok := byActivity[at.String()]; ok {
			activities = append(activities, at.String())
		}
	}

	var unknown []string
	for activity := range byActivity {
		if !known[activity] {
			unknown = append(unknown, activity)
		}
	}
	sort.Strings(unknown)
	return append(activities, unknown...)
}

// CardioCharts builds one distance/pace chart per activity with entries.
// When there is none, a single placeholder chart is returned.
func CardioCharts(byActivity map[string][]api.CardioPoint) []Chart {
	charts := make([]Chart, 0, len(byActivity))
	for _, activity := range CardioActivities(byActivity) {
		entries := byActivity[activity]
		if len(entries) == 0 {
			continue
		}
		charts = append(charts, cardioChart(api.ActivityType(activity), entries))
	}
	if len(charts) == 0 {
		return []Chart{noDataChart(chartIDCardio+"none", "🏃 Cardio Progress")}
	}
	return charts
}

func cardioChart(activity api.ActivityType, entries []api.CardioPoint) Chart {
	color := ActivityColor(activity)

	labels := make([]string, 0, len(entries))
	distances := make([]*float64, 0, len(entries))
	paces := make([]*float64, 0, len(entries))
	distanceTooltips := make([]string, 0, len(entries))
	paceTooltips := make([]string, 0, len(entries))
	for _, e := range entries {
		labels = append(labels, format.MonthDay(e.Date))
		distances = append(distances, e.DistanceKm)

		pace := e.AvgPaceMinKm
		if pace == nil {
			pace = format.Pace(e.DistanceKm, e.DurationMin)
		}
		paces = append(paces, pace)

		if e.DistanceKm != nil {
			distanceTooltips = append(distanceTooltips, " "+format.Number(*e.DistanceKm)+" km")
		} else {
			distanceTooltips = append(distanceTooltips, "")
		}
		if pace != nil {
			paceTooltips = append(paceTooltips, " Pace: "+format.PaceLabel(*pace))
		} else {
			paceTooltips = append(paceTooltips, "")
		}
	}

	paceAxis := secondaryAxis("pace")
	paceAxis["reverse"] = true
	minPace, maxPace, tickLabels, ok := PaceTicks(paces)
	if ok {
		paceAxis["min"] = minPace
		paceAxis["max"] = maxPace
		paceAxis["ticks"] = map[string]any{
			"font":     map[string]any{"size": 10},
			"stepSize": paceTickStep,
		}
	}

	return Chart{
		ID:    chartIDCardio + activity.String(),
		Title: ActivityIcon(activity) + " " + ActivityTitle(activity) + " — Distance & Pace",
		Config: &ChartConfig{
			Type: "line",
			Data: ChartData{
				Labels: labels,
				Datasets: []Dataset{
					{
						Label:                "Distance (km)",
						Data:                 distances,
						BorderColor:          color,
						BackgroundColor:      hexAlpha(color, 0.1),
						BorderWidth:          2.5,
						PointRadius:          5,
						PointBackgroundColor: color,
						Fill:                 true,
						Tension:              0.3,
						YAxisID:              "y",
					},
					{
						Label:           "Pace (min/km)",
						Data:            paces,
						BorderColor:     colorOrange,
						BackgroundColor: "transparent",
						BorderWidth:     1.5,
						BorderDash:      []int{4, 4},
						PointRadius:     3,
						Tension:         0.3,
						YAxisID:         "y2",
					},
				},
			},
			Options: dualAxisOptions("km", paceAxis),
		},
		Tooltips:   [][]string{distanceTooltips, paceTooltips},
		TickLabels: tickLabels,
	}
}

func roundedOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return math.Round(*v)
}
