package domain

// RouterStats is a point-in-time view of the router counters.
type RouterStats struct {
	Searches          uint64
	Stitches          uint64
	CacheHits         uint64
	CacheMisses       uint64
	UnreachableCached uint64
	Rejected          uint64
	CacheSize         int
}
