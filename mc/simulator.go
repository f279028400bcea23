// Package mc estimates option prices by Monte Carlo simulation of
// geometric Brownian motion paths under the risk-neutral measure.
package mc

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"runtime"
	"sync"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/rustyeddy/pricer/pricing"
)

// PathSet holds simulated price trajectories, one row per path. Column
// 0 of every row equals the spot price; the remaining columns follow
// the exact GBM step transition. A PathSet is never mutated after
// Simulate returns it.
type PathSet struct {
	Params pricing.Params

	paths  int
	steps  int
	prices []float64 // row-major, paths x steps
}

// Paths returns the number of simulated trajectories.
func (ps *PathSet) Paths() int { return ps.paths }

// Steps returns the number of columns per trajectory, including the
// initial spot column.
func (ps *PathSet) Steps() int { return ps.steps }

// At returns the simulated price of path i at step j.
func (ps *PathSet) At(i, j int) float64 { return ps.prices[i*ps.steps+j] }

// Path returns row i as a slice backed by the set's storage. Callers
// must not modify it.
func (ps *PathSet) Path(i int) []float64 {
	return ps.prices[i*ps.steps : (i+1)*ps.steps]
}

// Terminal returns the final price of every path.
func (ps *PathSet) Terminal() []float64 {
	out := make([]float64, ps.paths)
	for i := 0; i < ps.paths; i++ {
		out[i] = ps.prices[(i+1)*ps.steps-1]
	}
	return out
}

// Averages returns the per-path arithmetic mean over the whole
// trajectory, the quantity the Asian payoff is written on.
func (ps *PathSet) Averages() []float64 {
	out := make([]float64, ps.paths)
	for i := 0; i < ps.paths; i++ {
		row := ps.Path(i)
		sum := 0.0
		for _, v := range row {
			sum += v
		}
		out[i] = sum / float64(len(row))
	}
	return out
}

// Simulator generates GBM price paths. The zero value is not usable:
// Paths and Steps must both be at least 1.
//
// Seed == 0 draws a fresh seed from the OS entropy pool on every call,
// so repeated runs differ. A fixed non-zero Seed together with a fixed
// Workers count makes Simulate fully reproducible; path blocks are
// assigned to workers deterministically and each worker owns an
// independent source derived from the seed.
type Simulator struct {
	Paths   int
	Steps   int
	Seed    uint64
	Workers int // 0 means GOMAXPROCS
}

// Simulate produces a Paths x Steps PathSet for p. Each path starts at
// p.S and advances by
//
//	S_j = S_{j-1} * exp((r - sigma^2/2) dt + sigma Z sqrt(dt))
//
// with dt = T/Steps and Z a fresh standard normal draw. This is the
// closed-form step transition of geometric Brownian motion, exact in
// distribution at every step.
func (s Simulator) Simulate(p pricing.Params) (*PathSet, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if s.Paths < 1 {
		return nil, fmt.Errorf("%w: path count must be at least 1, got %d", pricing.ErrInvalidParams, s.Paths)
	}
	if s.Steps < 1 {
		return nil, fmt.Errorf("%w: step count must be at least 1, got %d", pricing.ErrInvalidParams, s.Steps)
	}

	dt := p.T / float64(s.Steps)
	drift := (p.R - 0.5*p.Sigma*p.Sigma) * dt
	vol := p.Sigma * math.Sqrt(dt)

	ps := &PathSet{
		Params: p,
		paths:  s.Paths,
		steps:  s.Steps,
		prices: make([]float64, s.Paths*s.Steps),
	}

	seed := s.Seed
	if seed == 0 {
		seed = entropySeed()
	}

	workers := s.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > s.Paths {
		workers = s.Paths
	}

	// Paths are independent, so they split into contiguous blocks, one
	// worker and one random source per block.
	block := (s.Paths + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * block
		hi := lo + block
		if hi > s.Paths {
			hi = s.Paths
		}
		if lo >= hi {
			break
		}

		wg.Add(1)
		go func(lo, hi int, src rand.Source) {
			defer wg.Done()
			norm := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
			for i := lo; i < hi; i++ {
				row := ps.prices[i*s.Steps : (i+1)*s.Steps]
				row[0] = p.S
				for j := 1; j < s.Steps; j++ {
					row[j] = row[j-1] * math.Exp(drift+vol*norm.Rand())
				}
			}
		}(lo, hi, rand.NewSource(seed+uint64(w)))
	}
	wg.Wait()

	return ps, nil
}

// entropySeed draws a seed from crypto/rand, falling back to the clock
// if the entropy pool is unavailable.
func entropySeed() uint64 {
	var b [8]byte
	if _, err := cryptoRand.Read(b[:]); err == nil {
		if seed := binary.LittleEndian.Uint64(b[:]); seed != 0 {
			return seed
		}
	}
	return uint64(time.Now().UnixNano())
}
