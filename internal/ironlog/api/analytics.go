package api

// AnalyticsOverview is computed by the backend (/api/analytics/overview).
// The client only reshapes it for charting, never aggregates.
type AnalyticsOverview struct {
	Totals           Totals                      `json:"totals"`
	CardioTotals     CardioTotals                `json:"cardio_totals"`
	Heatmap          []HeatmapCount              `json:"heatmap"`
	WeeklyVolume     []WeeklyVolume              `json:"weekly_volume"`
	CaloriesTimeline []CaloriesPoint             `json:"calories_timeline"`
	BWTrend          []BodyWeightPoint           `json:"bw_trend"`
	ExerciseProgress map[string]ExerciseProgress `json:"exercise_progress"`
	CardioByActivity map[string][]CardioPoint    `json:"cardio_by_activity"`
}

type Totals struct {
	TotalSessions Count    `json:"total_sessions"`
	TotalSets     Count    `json:"total_sets"`
	TotalVolume   *float64 `json:"total_volume"`
	TotalCalories *float64 `json:"total_calories"`
}

type CardioTotals struct {
	TotalDistance *float64 `json:"total_distance"`
	TotalDuration *float64 `json:"total_duration"`
	TotalCardio   Count    `json:"total_cardio"`
}

type HeatmapCount struct {
	Date  string `json:"date"`
	Count Count  `json:"count"`
}

type WeeklyVolume struct {
	Week   string   `json:"week"`
	Volume *float64 `json:"volume"`
}

type CaloriesPoint struct {
	Date     string   `json:"date"`
	Calories *float64 `json:"calories"`
}

type BodyWeightPoint struct {
	Date     string   `json:"date"`
	WeightKg *float64 `json:"weight_kg"`
}

type ExerciseProgress struct {
	Muscle *string                 `json:"muscle"`
	Data   []ExerciseProgressPoint `json:"data"`
}

type ExerciseProgressPoint struct {
	Date      string   `json:"date"`
	MaxWeight *float64 `json:"max_weight"`
	MaxReps   *float64 `json:"max_reps"`
}

type CardioPoint struct {
	Date         string   `json:"date"`
	DistanceKm   *float64 `json:"distance_km"`
	DurationMin  *float64 `json:"duration_min"`
	AvgPaceMinKm *float64 `json:"avg_pace_min_km"`
	AvgHeartRate *float64 `json:"avg_heart_rate"`
}
