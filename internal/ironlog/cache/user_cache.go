package cache

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/2beens/ironlog/internal/ironlog/api"
	"github.com/2beens/ironlog/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

const (
	exercisesCacheName = "exercises"
	overviewCacheName  = "overview"
)

// UserCache keeps the exercise list and the last analytics overview per user.
// Both are read-mostly: the exercise list changes only on exercise creation,
// the overview is kept briefly so the Forge picker can redraw a single chart.
type UserCache struct {
	cache          Cache
	exercisesTTL   int // seconds
	overviewTTL    int // seconds
	metricsManager *metrics.Manager
}

func NewUserCache(c Cache, exercisesTTL, overviewTTL int, metricsManager *metrics.Manager) *UserCache {
	return &UserCache{
		cache:          c,
		exercisesTTL:   exercisesTTL,
		overviewTTL:    overviewTTL,
		metricsManager: metricsManager,
	}
}

func key(name, username string) []byte {
	return []byte(fmt.Sprintf("%s::%s", name, username))
}

func (uc *UserCache) Exercises(username string) ([]api.Exercise, bool) {
	var exercises []api.Exercise
	if !uc.get(exercisesCacheName, username, &exercises) {
		return nil, false
	}
	return exercises, true
}

func (uc *UserCache) SetExercises(username string, exercises []api.Exercise) {
	uc.set(exercisesCacheName, username, exercises, uc.exercisesTTL)
}

func (uc *UserCache) InvalidateExercises(username string) {
	uc.cache.Del(key(exercisesCacheName, username))
}

func (uc *UserCache) Overview(username string) (*api.AnalyticsOverview, bool) {
	overview := &api.AnalyticsOverview{}
	if !uc.get(overviewCacheName, username, overview) {
		return nil, false
	}
	return overview, true
}

func (uc *UserCache) SetOverview(username string, overview *api.AnalyticsOverview) {
	uc.set(overviewCacheName, username, overview, uc.overviewTTL)
}

func (uc *UserCache) InvalidateOverview(username string) {
	uc.cache.Del(key(overviewCacheName, username))
}

func (uc *UserCache) get(name, username string, out any) bool {
	result := "miss"
	defer func() {
		if uc.metricsManager != nil {
			uc.metricsManager.CounterCacheLookups.WithLabelValues(name, result).Inc()
		}
	}()

	val, err := uc.cache.Get(key(name, username))
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Warnf("cache get %s for %s: %s", name, username, err)
		}
		return false
	}

	if err := json.Unmarshal(val, out); err != nil {
		log.Errorf("failed to unmarshal cached %s for %s: %s", name, username, err)
		uc.cache.Del(key(name, username))
		return false
	}

	result = "hit"
	return true
}

func (uc *UserCache) set(name, username string, v any, ttl int) {
	valJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("failed to marshal %s for cache: %s", name, err)
		return
	}
	if err := uc.cache.Set(key(name, username), valJson, ttl); err != nil {
		log.Warnf("cache set %s for %s: %s", name, username, err)
	}
}
