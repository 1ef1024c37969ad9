package forge

import (
	"fmt"

	"worldforge/internal/domain/rng"
)

// pickUnique draws n distinct items from pool using seeded draws keyed
// off label. It retries duplicate draws up to 6x the pool size, then
// fills remaining slots positionally from the pool. Duplicates appear
// only when the caller asks for more unique items than the pool holds,
// so exhaustion is a fallback, never an error.
func pickUnique[T comparable](seed int64, label string, pool []T, n int) []T {
	if n <= 0 || len(pool) == 0 {
		return nil
	}
	out := make([]T, 0, n)
	seen := make(map[T]struct{}, n)
	maxAttempts := 6 * len(pool)
	for attempt := 0; attempt < maxAttempts && len(out) < n; attempt++ {
		item := rng.Pick(seed, fmt.Sprintf("%s.%d", label, attempt), pool)
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	for i := 0; len(out) < n; i++ {
		item := pool[i%len(pool)]
		if _, dup := seen[item]; dup && len(seen) < len(pool) {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
