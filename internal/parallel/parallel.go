// Package parallel provides chunked parallel execution for CPU tensor kernels.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum elements per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
//
// The chunk floor is sized for element-wise gradient kernels: below a few
// thousand elements goroutine dispatch costs more than the arithmetic.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 4096,
	}
}

// ForRange executes f(start, end) over disjoint sub-ranges of [0, n).
// Each worker receives a contiguous range so inner loops stay vectorizable.
// Falls back to a single sequential call if parallelism is disabled or n is
// too small.
func ForRange(n int, f func(start, end int), cfg Config) {
	if !cfg.Enabled || n < cfg.MinChunkSize {
		f(0, n)
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			f(s, e)
		}(start, end)
	}
	wg.Wait()
}
