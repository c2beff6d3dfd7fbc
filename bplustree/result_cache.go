package bplus

import (
	"fmt"
	"slices"

	"github.com/dgraph-io/ristretto/v2"
)

// maxResultCacheEntries caps WithResultCache; ristretto allocates ten
// counters per entry up front.
const maxResultCacheEntries = 1 << 20

// cacheEntry keeps the query key next to its result. The ristretto key is a
// printed form of the query, which two distinct keys can share.
type cacheEntry[K, V any] struct {
	key  K
	vals []V
}

// resultCache memoises range search results keyed by comparator and query
// key. It holds no references into the tree; every Insert clears it.
// All methods are no-ops on a nil *resultCache.
type resultCache[K, V any] struct {
	c     *ristretto.Cache[string, cacheEntry[K, V]]
	cmp   func(a, b K) int
	dirty bool // set since the last clear
}

func newResultCache[K, V any](maxEntries int64, compare func(a, b K) int) (*resultCache[K, V], error) {
	maxEntries = min(maxEntries, maxResultCacheEntries)
	c, err := ristretto.NewCache(&ristretto.Config[string, cacheEntry[K, V]]{
		NumCounters:        maxEntries * 10,
		MaxCost:            maxEntries,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}
	return &resultCache[K, V]{c: c, cmp: compare}, nil
}

func cacheKey[K any](key K, op Comparator) string {
	return fmt.Sprintf("%s\x00%v", op, key)
}

// get returns a copy so callers may modify the result freely. An entry
// stored for a different key with the same printed form is a miss.
func (rc *resultCache[K, V]) get(key K, op Comparator) ([]V, bool) {
	if rc == nil {
		return nil, false
	}
	e, ok := rc.c.Get(cacheKey(key, op))
	if !ok || rc.cmp(e.key, key) != 0 {
		return nil, false
	}
	return slices.Clone(e.vals), true
}

func (rc *resultCache[K, V]) set(key K, op Comparator, vals []V) {
	if rc == nil {
		return
	}
	rc.c.Set(cacheKey(key, op), cacheEntry[K, V]{key: key, vals: slices.Clone(vals)}, 1)
	rc.c.Wait()
	rc.dirty = true
}

// clear drops every entry. Ristretto restarts its worker on Clear, so an
// untouched cache is left alone.
func (rc *resultCache[K, V]) clear() {
	if rc == nil || !rc.dirty {
		return
	}
	rc.c.Clear()
	rc.dirty = false
}

func (rc *resultCache[K, V]) close() {
	if rc == nil {
		return
	}
	rc.c.Close()
}
