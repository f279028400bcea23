package pricing

import "fmt"

// Grid is a cartesian grid of pricing parameters: one axis per field,
// every combination evaluated. Index order is row-major over
// (S, K, T, R, Sigma), Sigma fastest.
type Grid struct {
	S     []float64
	K     []float64
	T     []float64
	R     []float64
	Sigma []float64
}

// Shape returns the axis lengths in (S, K, T, R, Sigma) order.
func (g Grid) Shape() [5]int {
	return [5]int{len(g.S), len(g.K), len(g.T), len(g.R), len(g.Sigma)}
}

// Len returns the total number of grid points.
func (g Grid) Len() int {
	return len(g.S) * len(g.K) * len(g.T) * len(g.R) * len(g.Sigma)
}

// At decodes flat index i into the Params at that grid point.
// It panics if i is out of range, matching slice indexing semantics.
func (g Grid) At(i int) Params {
	if i < 0 || i >= g.Len() {
		panic(fmt.Sprintf("pricing: grid index %d out of range [0,%d)", i, g.Len()))
	}
	si := i % len(g.Sigma)
	i /= len(g.Sigma)
	ri := i % len(g.R)
	i /= len(g.R)
	ti := i % len(g.T)
	i /= len(g.T)
	ki := i % len(g.K)
	i /= len(g.K)
	return Params{
		S:     g.S[i],
		K:     g.K[ki],
		T:     g.T[ti],
		R:     g.R[ri],
		Sigma: g.Sigma[si],
	}
}

// Validate checks every axis value with Params.Validate semantics:
// all axes non-empty, S/K/T/Sigma entries positive.
func (g Grid) Validate() error {
	if g.Len() == 0 {
		return fmt.Errorf("%w: every grid axis needs at least one value", ErrInvalidParams)
	}
	for i := 0; i < g.Len(); i++ {
		if err := g.At(i).Validate(); err != nil {
			return fmt.Errorf("grid point %d: %w", i, err)
		}
	}
	return nil
}

// PriceGrid evaluates the closed form over every grid point. Element i
// of each result equals the scalar Price at g.At(i), so results share
// the grid's shape under the same row-major flattening.
func PriceGrid(g Grid) (calls, puts []float64) {
	n := g.Len()
	calls = make([]float64, n)
	puts = make([]float64, n)
	for i := 0; i < n; i++ {
		calls[i], puts[i] = Price(g.At(i))
	}
	return calls, puts
}
