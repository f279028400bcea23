package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// bump sizes for the finite-difference checks below
const (
	fdSpot  = 1e-4
	fdSigma = 1e-5
	fdTime  = 1e-6
	fdRate  = 1e-6
)

func TestGreeksMatchFiniteDifferences(t *testing.T) {
	t.Parallel()

	cases := []Params{
		{S: 100, K: 100, T: 1, R: 0.05, Sigma: 0.12},
		{S: 90, K: 110, T: 0.5, R: 0.02, Sigma: 0.3},
		{S: 120, K: 100, T: 2, R: 0.07, Sigma: 0.18},
	}

	for _, p := range cases {
		cg, pg := Greeks(p)

		// Delta: dV/dS
		up, dn := p, p
		up.S += fdSpot
		dn.S -= fdSpot
		cUp, pUp := Price(up)
		cDn, pDn := Price(dn)
		assert.InDelta(t, (cUp-cDn)/(2*fdSpot), cg.Delta, 1e-5)
		assert.InDelta(t, (pUp-pDn)/(2*fdSpot), pg.Delta, 1e-5)

		// Gamma: second difference in S
		cMid, _ := Price(p)
		assert.InDelta(t, (cUp-2*cMid+cDn)/(fdSpot*fdSpot), cg.Gamma, 1e-3)

		// Vega: dV/dSigma, shared between sides
		up, dn = p, p
		up.Sigma += fdSigma
		dn.Sigma -= fdSigma
		cUp, _ = Price(up)
		cDn, _ = Price(dn)
		assert.InDelta(t, (cUp-cDn)/(2*fdSigma), cg.Vega, 1e-4)
		assert.Equal(t, cg.Vega, pg.Vega)
		assert.Equal(t, cg.Gamma, pg.Gamma)

		// Theta: -dV/dT
		up, dn = p, p
		up.T += fdTime
		dn.T -= fdTime
		cUp, pUp = Price(up)
		cDn, pDn = Price(dn)
		assert.InDelta(t, -(cUp-cDn)/(2*fdTime), cg.Theta, 1e-3)
		assert.InDelta(t, -(pUp-pDn)/(2*fdTime), pg.Theta, 1e-3)

		// Rho: dV/dr
		up, dn = p, p
		up.R += fdRate
		dn.R -= fdRate
		cUp, pUp = Price(up)
		cDn, pDn = Price(dn)
		assert.InDelta(t, (cUp-cDn)/(2*fdRate), cg.Rho, 1e-3)
		assert.InDelta(t, (pUp-pDn)/(2*fdRate), pg.Rho, 1e-3)
	}
}

func TestGreeksBasicShape(t *testing.T) {
	t.Parallel()

	p := Params{S: 100, K: 100, T: 1, R: 0.05, Sigma: 0.12}

	cg, pg := Greeks(p)
	assert.Greater(t, cg.Delta, 0.0)
	assert.Less(t, cg.Delta, 1.0)
	assert.InDelta(t, cg.Delta-1, pg.Delta, 1e-12)
	assert.Greater(t, cg.Gamma, 0.0)
	assert.Greater(t, cg.Vega, 0.0)
	assert.Less(t, cg.Theta, 0.0)
	assert.Greater(t, cg.Rho, 0.0)
	assert.Less(t, pg.Rho, 0.0)
}
