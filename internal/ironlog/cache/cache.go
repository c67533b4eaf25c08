package cache

import "errors"

var ErrNotFound = errors.New("cache entry not found")

type Cache interface {
	Get(key []byte) ([]byte, error)
	Set(key, value []byte, expireSeconds int) error
	Del(key []byte) bool
	Clear()
}
