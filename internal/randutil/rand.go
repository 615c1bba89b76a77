// Package randutil derives reproducible rand/v2 sources from a single
// int64 seed, so a generation run can be replayed from the seed the CLI
// logged.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed. It
// centralises how the two 64-bit PCG seeds are derived so every call
// site gets the same sequence for the same seed.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// FromTime returns a wall-clock seed alongside its source, for callers
// that log the seed they ran with.
func FromTime() (*rand.Rand, int64) {
	seed := time.Now().UnixNano()
	return New(seed), seed
}

// mix is the splitmix64 finalizer, spreading nearby seeds across the
// whole state space.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
