package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/pricer/mc"
	"github.com/rustyeddy/pricer/pricing"
)

func TestPathsWritesImage(t *testing.T) {
	t.Parallel()

	sim := mc.Simulator{Paths: 10, Steps: 20, Seed: 1}
	ps, err := sim.Simulate(pricing.Params{S: 100, K: 100, T: 1, R: 0.05, Sigma: 0.2})
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "paths.png")
	require.NoError(t, Paths(ps, 5, out))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestPriceCurveWritesImage(t *testing.T) {
	t.Parallel()

	base := pricing.Params{S: 100, K: 100, T: 1, R: 0.05, Sigma: 0.12}
	spots := []float64{80, 90, 100, 110, 120}

	out := filepath.Join(t.TempDir(), "curve.png")
	require.NoError(t, PriceCurve(base, spots, out))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestPriceCurveRejectsEmptySpots(t *testing.T) {
	t.Parallel()

	base := pricing.Params{S: 100, K: 100, T: 1, R: 0.05, Sigma: 0.12}
	err := PriceCurve(base, nil, filepath.Join(t.TempDir(), "x.png"))
	assert.ErrorIs(t, err, pricing.ErrInvalidParams)
}
