// Package cache holds computed dashboard views between mutations. Every
// ledger mutation clears the whole cache: recomputation is cheap at this
// data scale and a stale view is worse than a recomputed one.
package cache

// Cache defines a generic cache interface
type Cache[T any] interface {
	// Get retrieves a value from the cache
	Get(key string) (T, bool)

	// Set stores a value in the cache
	Set(key string, data T)

	// Delete removes a key from the cache
	Delete(key string)

	// Clear drops every entry
	Clear()

	// Size returns the current number of items in the cache
	Size() int
}
