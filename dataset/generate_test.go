package dataset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/pricer/pricing"
)

// memWriter collects records in memory for generation tests.
type memWriter struct {
	recs []Record
	fail bool
}

func (m *memWriter) Record(r Record) error {
	if m.fail {
		return errors.New("writer failed")
	}
	m.recs = append(m.recs, r)
	return nil
}

func (m *memWriter) Close() error { return nil }

func TestGenerateCoversGrid(t *testing.T) {
	t.Parallel()

	g := pricing.Grid{
		S:     []float64{90, 100, 110},
		K:     []float64{100},
		T:     []float64{0.5, 1},
		R:     []float64{0.05},
		Sigma: []float64{0.1, 0.2},
	}

	w := &memWriter{}
	n, err := Generate(g, w)
	require.NoError(t, err)
	assert.Equal(t, g.Len(), n)
	require.Len(t, w.recs, g.Len())

	for i, rec := range w.recs {
		p := g.At(i)
		call, put := pricing.Price(p)
		assert.Equal(t, p.S, rec.S)
		assert.Equal(t, p.Sigma, rec.Sigma)
		assert.Equal(t, call, rec.Call, "grid point %d", i)
		assert.Equal(t, put, rec.Put, "grid point %d", i)
	}
}

func TestGenerateRejectsInvalidGrid(t *testing.T) {
	t.Parallel()

	g := pricing.Grid{S: []float64{100}} // remaining axes empty
	n, err := Generate(g, &memWriter{})
	assert.Zero(t, n)
	assert.ErrorIs(t, err, pricing.ErrInvalidParams)
}

func TestGenerateStopsOnWriterError(t *testing.T) {
	t.Parallel()

	g := pricing.Grid{
		S:     []float64{100},
		K:     []float64{100},
		T:     []float64{1},
		R:     []float64{0.05},
		Sigma: []float64{0.12},
	}

	_, err := Generate(g, &memWriter{fail: true})
	assert.Error(t, err)
}
