// Package detrand provides deterministic pseudo-random streams keyed by
// strings built from stable identifiers (agent id, tick, skill or intent
// name). The same key always reproduces the same sequence, which is what
// makes tick replay and fairness audits exact. Nothing in the scheduling or
// outcome-computation path may use system entropy.
package detrand

import (
	"hash/fnv"
	"math/rand"
	"strconv"
)

// Key joins identifier parts into an RNG key with an unambiguous separator.
func Key(parts ...string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += "|"
		}
		out += p
	}
	return out
}

// TickKey builds the canonical agent+tick+scope key.
func TickKey(agentID string, tick int64, scope string) string {
	return Key(agentID, strconv.FormatInt(tick, 10), scope)
}

// New returns a rand.Rand seeded from the FNV-1a hash of key.
func New(key string) *rand.Rand {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	return rand.New(rand.NewSource(int64(h.Sum64())))
}

// IntN returns a value in [0, n) from the stream keyed by key.
func IntN(key string, n int) int {
	if n <= 0 {
		return 0
	}
	return New(key).Intn(n)
}

// Float returns a value in [0, 1) from the stream keyed by key.
func Float(key string) float64 {
	return New(key).Float64()
}

// Chance reports whether the keyed stream's first draw lands under p.
func Chance(key string, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return Float(key) < p
}
