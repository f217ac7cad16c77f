package md2site

import (
	"runtime"
)

// Worker sizing constants.
const (
	// MinWorkers ensures at least one item renders at a time.
	MinWorkers = 1

	// MaxWorkers caps concurrent renders; a site build is mostly disk bound.
	MaxWorkers = 8

	// cpuDivisor leaves headroom for the rest of the system.
	cpuDivisor = 2
)

// ResolveWorkers determines how many items render concurrently.
// Priority: explicit workers > GOMAXPROCS-based calculation.
// Exported for use by CLIs.
func ResolveWorkers(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs in containers.
	n := runtime.GOMAXPROCS(0) / cpuDivisor

	if n < MinWorkers {
		return MinWorkers
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}
