package cache

import "hash/fnv"

// ShardCount is the number of shards in a Sharded cache.
// Must be a power of 2 for fast modulo via bitwise AND.
const ShardCount = 16

const shardMask = ShardCount - 1

// Hasher computes a hash for a key. Used by Sharded for shard selection.
type Hasher[K any] func(K) uint64

// StringHasher computes the FNV-1a hash of a string key.
func StringHasher(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s)) // fnv.Write never returns an error
	return h.Sum64()
}

// Sharded spreads keys over ShardCount independent LRU caches so that
// goroutines normalizing different attributes rarely wait on the same
// mutex. Eviction is per shard.
type Sharded[K comparable, V any] struct {
	shards [ShardCount]*Cache[K, V]
	hasher Hasher[K]
}

// NewSharded creates a sharded cache holding at most capacity entries per
// shard. A capacity of 0 or less means unlimited.
func NewSharded[K comparable, V any](capacity int, hasher Hasher[K]) *Sharded[K, V] {
	s := &Sharded[K, V]{hasher: hasher}
	for i := range s.shards {
		s.shards[i] = New[K, V](capacity)
	}
	return s
}

func (s *Sharded[K, V]) shard(key K) *Cache[K, V] {
	return s.shards[s.hasher(key)&shardMask]
}

// Get retrieves a value from the cache.
func (s *Sharded[K, V]) Get(key K) (V, bool) {
	return s.shard(key).Get(key)
}

// Set stores a value in the cache.
func (s *Sharded[K, V]) Set(key K, value V) {
	s.shard(key).Set(key, value)
}

// GetOrCreate returns the cached value or creates and stores it.
// Only the key's shard is locked while create runs.
func (s *Sharded[K, V]) GetOrCreate(key K, create func() V) V {
	return s.shard(key).GetOrCreate(key, create)
}

// Clear removes all entries from every shard.
func (s *Sharded[K, V]) Clear() {
	for _, c := range s.shards {
		c.Clear()
	}
}

// Len returns the total number of entries across all shards.
func (s *Sharded[K, V]) Len() int {
	total := 0
	for _, c := range s.shards {
		total += c.Len()
	}
	return total
}

// Stats sums the statistics of all shards. Capacity is the total capacity.
func (s *Sharded[K, V]) Stats() Stats {
	var total Stats
	for _, c := range s.shards {
		st := c.Stats()
		total.Len += st.Len
		total.Capacity += st.Capacity
		total.Hits += st.Hits
		total.Misses += st.Misses
	}
	return total
}

// ShardLen returns the number of entries in each shard.
// Useful for debugging load distribution.
func (s *Sharded[K, V]) ShardLen() [ShardCount]int {
	var lens [ShardCount]int
	for i, c := range s.shards {
		lens[i] = c.Len()
	}
	return lens
}
