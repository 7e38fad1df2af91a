package nfpcache

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/shapenest/nestcore/nfp"
)

// shardCount is the number of independently-locked shards the cache is
// split across. A power of two keeps the shard-selection mask cheap; 32
// shards is enough to keep lock contention negligible relative to NFP
// computation cost while still letting unrelated keys proceed
// concurrently.
const shardCount = 32

// Key identifies one memoized NFP computation: the identity and
// rotation bucket of each polygon plus whether the NFP is an inner or
// outer fit region. GetOrCompute stores whatever key it is given; the
// placement worker caches only outer NFPs (Inside false), and Inside
// keeps an inner-NFP entry from aliasing an outer one.
type Key struct {
	IDA, IDB   uuid.UUID
	RotA, RotB int
	Inside     bool
}

// shard is one lock-guarded partition of the cache's key space.
type shard struct {
	mu sync.RWMutex
	m  map[Key]nfp.Result
}

// Cache is a concurrent, content-addressed memoization map from Key to
// nfp.Result. Readers and writers may proceed concurrently against
// distinct keys. GetOrCompute runs compute while holding the shard's
// write lock, so goroutines racing to fill the same key run compute
// only once.
type Cache struct {
	shards [shardCount]*shard

	hits   atomic.Int64
	misses atomic.Int64
}

// New returns an empty Cache.
func New() *Cache {
	c := &Cache{}
	for i := range c.shards {
		c.shards[i] = &shard{m: make(map[Key]nfp.Result)}
	}
	return c
}

func (c *Cache) shardFor(k Key) *shard {
	return c.shards[hashKey(k)%shardCount]
}

// hashKey combines Key's fields into a shard index using the UUIDs'
// embedded bytes, avoiding a dependency on a general-purpose hash
// library for 32 bytes of already-random input.
func hashKey(k Key) uint64 {
	var h uint64 = 1469598103934665603 // FNV-1a offset basis
	mix := func(b byte) {
		h ^= uint64(b)
		h *= 1099511628211 // FNV-1a prime
	}
	for _, b := range k.IDA {
		mix(b)
	}
	for _, b := range k.IDB {
		mix(b)
	}
	mix(byte(k.RotA))
	mix(byte(k.RotB))
	if k.Inside {
		mix(1)
	}
	return h
}

// Get returns the cached result for key, if present.
//
// Complexity: O(1).
func (c *Cache) Get(key Key) (nfp.Result, bool) {
	sh := c.shardFor(key)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	v, ok := sh.m[key]
	return v, ok
}

// GetOrCompute returns the cached result for key, computing and storing
// it via compute if absent. Concurrent callers racing on the same key
// are serialized by the owning shard's lock, so compute runs at most
// once per key even under contention; concurrent calls on distinct keys
// proceed in parallel across shards.
//
// Complexity: O(1) plus the cost of compute on a miss.
func (c *Cache) GetOrCompute(key Key, compute func() (nfp.Result, error)) (nfp.Result, error) {
	sh := c.shardFor(key)

	sh.mu.RLock()
	if v, ok := sh.m[key]; ok {
		sh.mu.RUnlock()
		c.hits.Add(1)
		return v, nil
	}
	sh.mu.RUnlock()

	sh.mu.Lock()
	defer sh.mu.Unlock()
	if v, ok := sh.m[key]; ok {
		// Another goroutine filled it while we waited for the write lock.
		c.hits.Add(1)
		return v, nil
	}
	c.misses.Add(1)
	v, err := compute()
	if err != nil {
		return nfp.Result{}, err
	}
	sh.m[key] = v
	return v, nil
}

// Hits returns the number of GetOrCompute calls satisfied from the
// cache so far.
func (c *Cache) Hits() int64 { return c.hits.Load() }

// Misses returns the number of GetOrCompute calls that invoked compute
// so far.
func (c *Cache) Misses() int64 { return c.misses.Load() }

// Len returns the total number of entries currently stored, summed
// across all shards. Intended for diagnostics and tests, not hot paths.
func (c *Cache) Len() int {
	n := 0
	for _, sh := range c.shards {
		sh.mu.RLock()
		n += len(sh.m)
		sh.mu.RUnlock()
	}
	return n
}
