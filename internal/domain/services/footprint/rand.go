package footprint

import (
	"math/rand"
	"sync/atomic"
	"time"
)

// Rand is the stream of uniform draws consumed by the simulation
// heuristics. *rand.Rand satisfies it; tests substitute a fixed stream.
type Rand interface {
	// Float64 returns a draw in [0, 1)
	Float64() float64
	// Intn returns a draw in [0, n)
	Intn(n int) int
}

var seedCounter atomic.Int64

// newSeededRand returns an independent rand stream. Each sub-analysis
// gets its own stream so concurrent draws never share state.
func newSeededRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano() + seedCounter.Add(1)))
}

// clampProbability keeps heuristic adjustments from producing a
// probability outside [0, 1].
func clampProbability(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
