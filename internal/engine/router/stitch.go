package router

import "go.trai.ch/rescheduler/internal/core/domain"

// TryStitch concatenates a and b through their junction, the last node of a
// and the first node of b. It returns nil unless the junction matches and no
// other node appears twice in the combined route.
func TryStitch(a, b domain.Path) domain.Path {
	if len(a) == 0 || len(b) == 0 || a.Last() != b.First() {
		return nil
	}

	seen := make(map[domain.Node]struct{}, len(a)+len(b))
	for _, n := range a {
		if _, dup := seen[n]; dup {
			return nil
		}
		seen[n] = struct{}{}
	}
	for _, n := range b[1:] {
		if _, dup := seen[n]; dup {
			return nil
		}
		seen[n] = struct{}{}
	}

	out := make(domain.Path, 0, len(a)+len(b)-1)
	out = append(out, a...)
	return append(out, b[1:]...)
}
