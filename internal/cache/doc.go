// Package cache memoizes conversion results.
//
// Transform attributes repeat heavily within a document (every glyph of a
// text run, every instance of a pattern), so the result of normalizing one
// attribute string is kept in a bounded LRU keyed by the input and the
// options it was normalized with.
//
//	c := cache.New[string, string](1024)
//	s := c.GetOrCreate(key, func() string { return normalize(key) })
//
// Sharded spreads keys over several such caches to keep lock contention
// low when many goroutines normalize at once.
//
// Cache and Sharded are safe for concurrent use and must not be copied
// after creation.
package cache
