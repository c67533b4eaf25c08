package cache

import "sync"

var _ Cache = (*TestCache)(nil)

// TestCache is a map backed Cache without expiry, used in tests.
type TestCache struct {
	cache map[string][]byte
	mutex sync.Mutex
}

func NewTestCache() *TestCache {
	return &TestCache{
		cache: make(map[string][]byte),
	}
}

func (tc *TestCache) Get(key []byte) ([]byte, error) {
	tc.mutex.Lock()
	defer tc.mutex.Unlock()

	if val, ok := tc.cache[string(key)]; ok {
		return val, nil
	}
	return nil, ErrNotFound
}

func (tc *TestCache) Set(key, value []byte, _ int) error {
	tc.mutex.Lock()
	defer tc.mutex.Unlock()

	tc.cache[string(key)] = value
	return nil
}

func (tc *TestCache) Del(key []byte) bool {
	tc.mutex.Lock()
	defer tc.mutex.Unlock()

	_, ok := tc.cache[string(key)]
	delete(tc.cache, string(key))
	return ok
}

func (tc *TestCache) Clear() {
	tc.mutex.Lock()
	defer tc.mutex.Unlock()

	tc.cache = make(map[string][]byte)
}

func (tc *TestCache) Len() int {
	tc.mutex.Lock()
	defer tc.mutex.Unlock()

	return len(tc.cache)
}
