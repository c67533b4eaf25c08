package cache_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/2beens/ironlog/internal/ironlog/api"
	"github.com/2beens/ironlog/internal/ironlog/cache"
	"github.com/2beens/ironlog/internal/telemetry/metrics"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeExercises(n int) []api.Exercise {
	exercises := make([]api.Exercise, 0, n)
	for i := 0; i < n; i++ {
		muscle := gofakeit.RandomString([]string{"Chest", "Back", "Legs", "Shoulders"})
		exercises = append(exercises, api.Exercise{
			ID:          int64(i + 1),
			Name:        gofakeit.Word(),
			MuscleGroup: &muscle,
		})
	}
	return exercises
}

func TestUserCache_Exercises(t *testing.T) {
	for name, c := range map[string]cache.Cache{
		"test-cache": cache.NewTestCache(),
		"free-cache": cache.NewFreeCache(1),
	} {
		t.Run(name, func(t *testing.T) {
			m := metrics.NewTestManager()
			uc := cache.NewUserCache(c, 60, 60, m)

			_, ok := uc.Exercises("serj")
			assert.False(t, ok)

			exercises := fakeExercises(5)
			uc.SetExercises("serj", exercises)

			got, ok := uc.Exercises("serj")
			require.True(t, ok)
			assert.Equal(t, exercises, got)

			// per user
			_, ok = uc.Exercises("other")
			assert.False(t, ok)

			uc.InvalidateExercises("serj")
			_, ok = uc.Exercises("serj")
			assert.False(t, ok)

			assert.Equal(t, float64(1), testutil.ToFloat64(m.CounterCacheLookups.WithLabelValues("exercises", "hit")))
			assert.Equal(t, float64(3), testutil.ToFloat64(m.CounterCacheLookups.WithLabelValues("exercises", "miss")))
		})
	}
}

func TestUserCache_Overview(t *testing.T) {
	uc := cache.NewUserCache(cache.NewTestCache(), 60, 30, nil)

	volume := 12345.0
	overview := &api.AnalyticsOverview{
		Totals: api.Totals{TotalSessions: 3, TotalVolume: &volume},
		ExerciseProgress: map[string]api.ExerciseProgress{
			"Squat": {Data: []api.ExerciseProgressPoint{{Date: "2024-01-15"}}},
		},
	}
	uc.SetOverview("serj", overview)

	got, ok := uc.Overview("serj")
	require.True(t, ok)
	assert.Equal(t, api.Count(3), got.Totals.TotalSessions)
	assert.Equal(t, 12345.0, *got.Totals.TotalVolume)
	assert.Contains(t, got.ExerciseProgress, "Squat")

	uc.InvalidateOverview("serj")
	_, ok = uc.Overview("serj")
	assert.False(t, ok)
}

func fakeOverview(exercises, points int) *api.AnalyticsOverview {
	overview := &api.AnalyticsOverview{
		Totals:           api.Totals{TotalSessions: api.Count(points), TotalSets: api.Count(exercises * points * 4)},
		ExerciseProgress: map[string]api.ExerciseProgress{},
	}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for e := 0; e < exercises; e++ {
		muscle := gofakeit.RandomString([]string{"Chest", "Back", "Legs", "Shoulders"})
		data := make([]api.ExerciseProgressPoint, 0, points)
		for p := 0; p < points; p++ {
			weight := gofakeit.Float64Range(20, 200)
			reps := float64(gofakeit.Number(1, 15))
			data = append(data, api.ExerciseProgressPoint{
				Date:      start.AddDate(0, 0, 3*p).Format(time.DateOnly),
				MaxWeight: &weight,
				MaxReps:   &reps,
			})
		}
		name := fmt.Sprintf("%s %d", gofakeit.Word(), e)
		overview.ExerciseProgress[name] = api.ExerciseProgress{Muscle: &muscle, Data: data}
	}
	return overview
}

func TestUserCache_Overview_RealisticPayload(t *testing.T) {
	overview := fakeOverview(15, 40)
	payload, err := json.Marshal(overview)
	require.NoError(t, err)
	// larger than a single freecache entry allows at 16 MB
	require.Greater(t, len(payload), 16*1024)

	m := metrics.NewTestManager()
	uc := cache.NewUserCache(cache.NewFreeCache(16), 60, 30, m)
	uc.SetOverview("serj", overview)

	got, ok := uc.Overview("serj")
	require.True(t, ok)
	assert.Equal(t, overview, got)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CounterCacheLookups.WithLabelValues("overview", "hit")))

	uc.InvalidateOverview("serj")
	_, ok = uc.Overview("serj")
	assert.False(t, ok)
}

func TestUserCache_CorruptEntryDropped(t *testing.T) {
	c := cache.NewTestCache()
	require.NoError(t, c.Set([]byte("exercises::serj"), []byte("{not json"), 0))

	uc := cache.NewUserCache(c, 60, 60, nil)
	_, ok := uc.Exercises("serj")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestFreeCache(t *testing.T) {
	fc := cache.NewFreeCache(0)
	_, err := fc.Get([]byte("missing"))
	assert.ErrorIs(t, err, cache.ErrNotFound)

	require.NoError(t, fc.Set([]byte("k"), []byte("v"), 0))
	val, err := fc.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), val)

	assert.True(t, fc.Del([]byte("k")))
	assert.False(t, fc.Del([]byte("k")))

	require.NoError(t, fc.Set([]byte("k2"), []byte("v2"), 0))
	fc.Clear()
	_, err = fc.Get([]byte("k2"))
	assert.ErrorIs(t, err, cache.ErrNotFound)
}

func TestFreeCache_LargeValues(t *testing.T) {
	fc := cache.NewFreeCache(1)

	large := bytes.Repeat([]byte("0123456789"), 2000)
	require.NoError(t, fc.Set([]byte("large"), large, 0))
	assert.Greater(t, fc.EntryCount(), int64(2))

	val, err := fc.Get([]byte("large"))
	require.NoError(t, err)
	assert.Equal(t, large, val)

	// overwrite with a small value drops the old chunks
	require.NoError(t, fc.Set([]byte("large"), []byte("small"), 0))
	assert.Equal(t, int64(1), fc.EntryCount())
	val, err = fc.Get([]byte("large"))
	require.NoError(t, err)
	assert.Equal(t, []byte("small"), val)

	require.NoError(t, fc.Set([]byte("large"), large, 0))
	assert.True(t, fc.Del([]byte("large")))
	assert.Equal(t, int64(0), fc.EntryCount())
	_, err = fc.Get([]byte("large"))
	assert.ErrorIs(t, err, cache.ErrNotFound)

	tooLarge := make([]byte, 1024*1024/32+1)
	assert.ErrorIs(t, fc.Set([]byte("huge"), tooLarge, 0), cache.ErrEntryTooLarge)
	_, err = fc.Get([]byte("huge"))
	assert.ErrorIs(t, err, cache.ErrNotFound)
}
