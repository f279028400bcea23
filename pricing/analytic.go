package pricing

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

var stdNormal = distuv.UnitNormal

// D1D2 returns the two risk-adjusted quantities that feed the
// probability terms of the Black-Scholes formula:
//
//	d1 = (ln(S/K) + (r + sigma^2/2) T) / (sigma sqrt(T))
//	d2 = d1 - sigma sqrt(T)
func D1D2(p Params) (d1, d2 float64) {
	volT := p.Sigma * math.Sqrt(p.T)
	d1 = (math.Log(p.S/p.K) + (p.R+0.5*p.Sigma*p.Sigma)*p.T) / volT
	d2 = d1 - volT
	return d1, d2
}

// Price computes the closed-form Black-Scholes call and put values.
//
// No validation happens here: degenerate inputs (sigma*sqrt(T) == 0,
// non-positive spot or strike) yield NaN or Inf. Callers that accept
// untrusted parameters should run Params.Validate first.
func Price(p Params) (call, put float64) {
	d1, d2 := D1D2(p)
	disc := math.Exp(-p.R * p.T)
	call = p.S*stdNormal.CDF(d1) - p.K*disc*stdNormal.CDF(d2)
	put = p.K*disc*stdNormal.CDF(-d2) - p.S*stdNormal.CDF(-d1)
	return call, put
}

// ParityGap returns call - put - (S - K e^{-rT}). Put-call parity says
// this is zero for any arbitrage-free pair; for Price output it is zero
// up to floating-point noise.
func ParityGap(p Params, call, put float64) float64 {
	return call - put - (p.S - p.K*math.Exp(-p.R*p.T))
}
