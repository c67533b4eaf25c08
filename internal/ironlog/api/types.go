package api

type Exercise struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	MuscleGroup *string `json:"muscle_group"`
	Equipment   *string `json:"equipment"`
}

type NewExercise struct {
	Name        string `json:"name"`
	MuscleGroup string `json:"muscle_group"`
	Equipment   string `json:"equipment"`
}

type NewSession struct {
	Date  string `json:"date"`
	Notes string `json:"notes"`
}

type EndSession struct {
	CaloriesBurned *float64 `json:"calories_burned"`
}

type SessionSummary struct {
	ID             int64    `json:"id"`
	SessionDate    string   `json:"session_date"`
	Notes          *string  `json:"notes"`
	TotalSets      Count    `json:"total_sets"`
	TotalVolume    *float64 `json:"total_volume"`
	TotalCardio    *float64 `json:"total_cardio"`
	CaloriesBurned *float64 `json:"calories_burned"`
}

type SessionDetail struct {
	ID             int64         `json:"id"`
	SessionDate    string        `json:"session_date"`
	Notes          *string       `json:"notes"`
	CaloriesBurned *float64      `json:"calories_burned"`
	Sets           []LoggedSet   `json:"sets"`
	Cardio         []CardioEntry `json:"cardio"`
}

type LoggedSet struct {
	ID           int64    `json:"id"`
	SessionID    int64    `json:"session_id"`
	ExerciseID   int64    `json:"exercise_id"`
	ExerciseName string   `json:"exercise_name"`
	MuscleGroup  *string  `json:"muscle_group"`
	SetNumber    Count    `json:"set_number"`
	Reps         *float64 `json:"reps"`
	WeightKg     *float64 `json:"weight_kg"`
	RestSeconds  *float64 `json:"rest_seconds"`
	RPE          *float64 `json:"rpe"`
	Notes        *string  `json:"notes"`
}

// NewSet is sent with every optional field present; missing values go out as null.
type NewSet struct {
	SessionID   int64    `json:"session_id"`
	ExerciseID  int64    `json:"exercise_id"`
	SetNumber   int      `json:"set_number"`
	Reps        *int     `json:"reps"`
	WeightKg    *float64 `json:"weight_kg"`
	RestSeconds *int     `json:"rest_seconds"`
	RPE         *float64 `json:"rpe"`
	Notes       string   `json:"notes"`
}

type CardioEntry struct {
	ID           int64        `json:"id"`
	SessionID    int64        `json:"session_id"`
	ActivityType ActivityType `json:"activity_type"`
	DistanceKm   *float64     `json:"distance_km"`
	DurationMin  *float64     `json:"duration_min"`
	AvgPaceMinKm *float64     `json:"avg_pace_min_km"`
	AvgHeartRate *float64     `json:"avg_heart_rate"`
	ElevationM   *float64     `json:"elevation_m"`
	Notes        *string      `json:"notes"`
}

type NewCardio struct {
	SessionID    int64        `json:"session_id"`
	ActivityType ActivityType `json:"activity_type"`
	DistanceKm   *float64     `json:"distance_km"`
	DurationMin  *float64     `json:"duration_min"`
	AvgHeartRate *int         `json:"avg_heart_rate"`
	ElevationM   *float64     `json:"elevation_m"`
	Notes        string       `json:"notes"`
}

type BodyWeightEntry struct {
	ID       int64   `json:"id"`
	WeightKg float64 `json:"weight_kg"`
	LoggedAt string  `json:"logged_at"`
	Notes    *string `json:"notes"`
}

type NewBodyWeight struct {
	WeightKg float64 `json:"weight_kg"`
	Date     string  `json:"date"`
	Notes    string  `json:"notes"`
}

// ActivityType can be one of:
//   - running
//   - walking
//   - cycling
//   - rowing
//   - swimming
//   - other
type ActivityType string

const (
	ActivityRunning  ActivityType = "running"
	ActivityWalking  ActivityType = "walking"
	ActivityCycling  ActivityType = "cycling"
	ActivityRowing   ActivityType = "rowing"
	ActivitySwimming ActivityType = "swimming"
	ActivityOther    ActivityType = "other"
)

// ActivityTypes lists all activity types in display order.
var ActivityTypes = []ActivityType{
	ActivityRunning,
	ActivityWalking,
	ActivityCycling,
	ActivityRowing,
	ActivitySwimming,
	ActivityOther,
}

func (at ActivityType) String() string {
	return string(at)
}

func (at ActivityType) IsValid() bool {
	switch at {
	case ActivityRunning,
		ActivityWalking,
		ActivityCycling,
		ActivityRowing,
		ActivitySwimming,
		ActivityOther:
		return true
	default:
		return false
	}
}
