package app

import (
	"fmt"
	"io"
)

// Dump writes the cache listing of the current epoch followed by the router counters.
func (a *App) Dump(w io.Writer) error {
	if err := a.router.Dump(w); err != nil {
		return err
	}
	s := a.router.Stats()
	_, err := fmt.Fprintf(w, "searches %d, stitches %d, hits %d, misses %d, rejected %d\n",
		s.Searches, s.Stitches, s.CacheHits, s.CacheMisses, s.Rejected)
	return err
}
