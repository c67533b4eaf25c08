package cache

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/coocood/freecache"
)

var _ Cache = (*FreeCache)(nil)

var ErrEntryTooLarge = errors.New("cache entry too large")

const (
	megabyte = 1024 * 1024

	// freecache refuses key+value+header above 1/1024 of its size;
	// this leaves room for the chunk key and the entry header.
	chunkOverhead = 512

	directMarker  = 'v'
	chunkedMarker = 'c'
)

// FreeCache stores values that fit one freecache entry directly and splits
// larger ones into chunks referenced by a small header under the original key.
type FreeCache struct {
	mainCache *freecache.Cache
	chunkSize int
	maxValue  int
	gen       atomic.Uint64
}

// NewFreeCache creates an in-memory cache of the given size in megabytes.
func NewFreeCache(sizeMB int) *FreeCache {
	if sizeMB <= 0 {
		sizeMB = 10
	}
	size := sizeMB * megabyte
	return &FreeCache{
		mainCache: freecache.NewCache(size),
		chunkSize: size/1024 - chunkOverhead,
		maxValue:  size / 32,
	}
}

func (fc *FreeCache) Get(key []byte) ([]byte, error) {
	raw, err := fc.mainCache.Get(key)
	if errors.Is(err, freecache.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, ErrNotFound
	}

	switch raw[0] {
	case directMarker:
		return raw[1:], nil
	case chunkedMarker:
		gen, count, err := parseChunkHeader(raw[1:])
		if err != nil {
			return nil, ErrNotFound
		}
		val := make([]byte, 0, count*fc.chunkSize)
		for i := 0; i < count; i++ {
			part, err := fc.mainCache.Get(chunkKey(key, gen, i))
			if err != nil {
				// evicted independently of the header
				return nil, ErrNotFound
			}
			val = append(val, part...)
		}
		return val, nil
	default:
		return nil, ErrNotFound
	}
}

func (fc *FreeCache) Set(key, value []byte, expireSeconds int) error {
	if len(value) > fc.maxValue {
		return fmt.Errorf("%w: %d bytes", ErrEntryTooLarge, len(value))
	}

	previous, _ := fc.mainCache.Get(key)

	if len(value)+1 <= fc.chunkSize {
		entry := make([]byte, 0, len(value)+1)
		entry = append(entry, directMarker)
		entry = append(entry, value...)
		if err := fc.mainCache.Set(key, entry, expireSeconds); err != nil {
			return err
		}
		fc.delChunks(key, previous)
		return nil
	}

	gen := fc.gen.Add(1)
	count := (len(value) + fc.chunkSize - 1) / fc.chunkSize
	for i := 0; i < count; i++ {
		end := min((i+1)*fc.chunkSize, len(value))
		if err := fc.mainCache.Set(chunkKey(key, gen, i), value[i*fc.chunkSize:end], expireSeconds); err != nil {
			fc.delChunks(key, chunkHeader(gen, i))
			return fmt.Errorf("set chunk %d of %d: %w", i, count, err)
		}
	}
	if err := fc.mainCache.Set(key, chunkHeader(gen, count), expireSeconds); err != nil {
		fc.delChunks(key, chunkHeader(gen, count))
		return err
	}
	fc.delChunks(key, previous)
	return nil
}

func (fc *FreeCache) Del(key []byte) bool {
	raw, err := fc.mainCache.Get(key)
	if err != nil {
		return false
	}
	fc.delChunks(key, raw)
	return fc.mainCache.Del(key)
}

func (fc *FreeCache) Clear() {
	fc.mainCache.Clear()
}

// EntryCount counts stored freecache entries, chunks included.
func (fc *FreeCache) EntryCount() int64 {
	return fc.mainCache.EntryCount()
}

// delChunks removes the chunks referenced by raw, if it is a chunk header.
func (fc *FreeCache) delChunks(key, raw []byte) {
	if len(raw) == 0 || raw[0] != chunkedMarker {
		return
	}
	gen, count, err := parseChunkHeader(raw[1:])
	if err != nil {
		return
	}
	for i := 0; i < count; i++ {
		fc.mainCache.Del(chunkKey(key, gen, i))
	}
}

func chunkKey(key []byte, gen uint64, i int) []byte {
	k := make([]byte, 0, len(key)+24)
	k = append(k, key...)
	k = append(k, '#')
	k = strconv.AppendUint(k, gen, 10)
	k = append(k, '#')
	return strconv.AppendInt(k, int64(i), 10)
}

func chunkHeader(gen uint64, count int) []byte {
	return []byte(fmt.Sprintf("%c%d:%d", chunkedMarker, gen, count))
}

func parseChunkHeader(b []byte) (uint64, int, error) {
	genStr, countStr, ok := strings.Cut(string(b), ":")
	if !ok {
		return 0, 0, fmt.Errorf("malformed chunk header %q", b)
	}
	gen, err := strconv.ParseUint(genStr, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("chunk header generation: %w", err)
	}
	count, err := strconv.Atoi(countStr)
	if err != nil || count < 0 {
		return 0, 0, fmt.Errorf("chunk header count %q", countStr)
	}
	return gen, count, nil
}
