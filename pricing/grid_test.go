package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testGrid() Grid {
	return Grid{
		S:     []float64{80, 100, 120},
		K:     []float64{90, 100},
		T:     []float64{0.25, 1},
		R:     []float64{0.01, 0.05},
		Sigma: []float64{0.1, 0.2, 0.3},
	}
}

func TestGridShapeLen(t *testing.T) {
	t.Parallel()

	g := testGrid()
	assert.Equal(t, [5]int{3, 2, 2, 2, 3}, g.Shape())
	assert.Equal(t, 72, g.Len())
}

func TestPriceGridMatchesScalar(t *testing.T) {
	t.Parallel()

	g := testGrid()

	calls, puts := PriceGrid(g)
	assert.Len(t, calls, g.Len())
	assert.Len(t, puts, g.Len())

	for i := 0; i < g.Len(); i++ {
		call, put := Price(g.At(i))
		assert.Equal(t, call, calls[i], "call at grid point %d", i)
		assert.Equal(t, put, puts[i], "put at grid point %d", i)
	}
}

func TestGridAtCoversAllCombinations(t *testing.T) {
	t.Parallel()

	g := testGrid()

	seen := map[Params]bool{}
	for i := 0; i < g.Len(); i++ {
		seen[g.At(i)] = true
	}
	assert.Len(t, seen, g.Len(), "grid points must be distinct")

	// First index varies Sigma fastest, last varies S slowest.
	assert.Equal(t, Params{S: 80, K: 90, T: 0.25, R: 0.01, Sigma: 0.1}, g.At(0))
	assert.Equal(t, Params{S: 80, K: 90, T: 0.25, R: 0.01, Sigma: 0.2}, g.At(1))
	assert.Equal(t, Params{S: 120, K: 100, T: 1, R: 0.05, Sigma: 0.3}, g.At(g.Len()-1))
}

func TestGridValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, testGrid().Validate())

	empty := testGrid()
	empty.R = nil
	assert.ErrorIs(t, empty.Validate(), ErrInvalidParams)

	bad := testGrid()
	bad.Sigma = []float64{0.1, 0}
	assert.ErrorIs(t, bad.Validate(), ErrInvalidParams)
}

func TestGridAtOutOfRangePanics(t *testing.T) {
	t.Parallel()

	g := testGrid()
	assert.Panics(t, func() { g.At(g.Len()) })
	assert.Panics(t, func() { g.At(-1) })
}
