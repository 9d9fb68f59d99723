// Package cache provides a generic, fixed-size LRU cache safe for concurrent
// use.
//
// Once the cache holds its capacity, adding a new key evicts the least
// recently used entry. Get, Add, Remove and GetOrAdd run in constant time.
//
// # Usage
//
//	results := cache.New[string, osinfo.OperatingSystem](1024)
//
//	info, hit := results.GetOrAdd(key, func() osinfo.OperatingSystem {
//		return osinfo.Classify(name, version, arch)
//	})
//
// OnEvict registers a callback for entries leaving the cache, and Stats
// reports hit, miss and eviction counters for diagnostics.
package cache
