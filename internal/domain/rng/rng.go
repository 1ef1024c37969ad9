// Package rng provides the deterministic keyed random source the forge
// engine draws from. Every function is a pure function of (seed, label):
// the same pair always produces the same value, and distinct labels act
// as independent streams. This is what makes campaign generation
// reproducible and cacheable.
package rng

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math/rand"
)

// Weighted pairs an item with a non-negative sampling weight.
type Weighted[T any] struct {
	Item   T
	Weight float64
}

// stream derives an independent rand source for one (seed, label) pair.
func stream(seed int64, label string) *rand.Rand {
	h := fnv.New64a()
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(seed))
	h.Write(b[:])
	h.Write([]byte(label))
	return rand.New(rand.NewSource(int64(h.Sum64())))
}

// Int returns an integer in [lo, hi], inclusive on both ends.
func Int(seed int64, label string, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	if lo == hi {
		return lo
	}
	return lo + stream(seed, label).Intn(hi-lo+1)
}

// Float01 returns a float64 in [0, 1).
func Float01(seed int64, label string) float64 {
	return stream(seed, label).Float64()
}

// Pick returns a uniformly chosen element of pool. An empty pool yields
// the zero value.
func Pick[T any](seed int64, label string, pool []T) T {
	var zero T
	if len(pool) == 0 {
		return zero
	}
	return pool[stream(seed, label).Intn(len(pool))]
}

// WeightedPick returns an item chosen proportionally to its weight.
// Weights must be >= 0 with at least one > 0; otherwise it degrades to
// a uniform pick over the items.
func WeightedPick[T any](seed int64, label string, items []Weighted[T]) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	total := 0.0
	for _, w := range items {
		if w.Weight > 0 {
			total += w.Weight
		}
	}
	if total <= 0 {
		return items[stream(seed, label).Intn(len(items))].Item
	}
	roll := stream(seed, label).Float64() * total
	acc := 0.0
	for _, w := range items {
		if w.Weight <= 0 {
			continue
		}
		acc += w.Weight
		if roll < acc {
			return w.Item
		}
	}
	return items[len(items)-1].Item
}

// StableHash returns a fixed-length hex digest of text. Used only for
// seed derivation, never for per-draw randomness.
func StableHash(text string) string {
	h := fnv.New64a()
	h.Write([]byte(text))
	return fmt.Sprintf("%016x", h.Sum64())
}
