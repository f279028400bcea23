package mc

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Estimate is a discounted Monte Carlo price pair with the standard
// error of each estimator. The error shrinks as O(1/sqrt(N)); more
// paths buy accuracy.
type Estimate struct {
	Call       float64
	Put        float64
	CallStdErr float64
	PutStdErr  float64
	N          int
}

// European reduces the terminal price of every path to the discounted
// risk-neutral expectation of the European call and put payoffs:
//
//	call = mean(max(ST - K, 0)) e^{-rT}
//	put  = mean(max(K - ST, 0)) e^{-rT}
func European(ps *PathSet) Estimate {
	return reduce(ps, ps.Terminal())
}

// Asian reduces the per-path arithmetic mean of the whole trajectory
// instead of the terminal price, pricing the fixed-strike arithmetic
// Asian payoff. Averaging lowers the payoff variance, so the Asian
// call always comes in below its European counterpart.
func Asian(ps *PathSet) Estimate {
	return reduce(ps, ps.Averages())
}

// reduce turns one selected price per path into discounted call/put
// estimates. Payoffs are clipped at zero, so the estimates are
// non-negative by construction.
func reduce(ps *PathSet, selected []float64) Estimate {
	k := ps.Params.K
	disc := math.Exp(-ps.Params.R * ps.Params.T)

	calls := make([]float64, len(selected))
	puts := make([]float64, len(selected))
	for i, s := range selected {
		calls[i] = math.Max(s-k, 0)
		puts[i] = math.Max(k-s, 0)
	}

	n := math.Sqrt(float64(len(selected)))
	return Estimate{
		Call:       disc * stat.Mean(calls, nil),
		Put:        disc * stat.Mean(puts, nil),
		CallStdErr: disc * stat.StdDev(calls, nil) / n,
		PutStdErr:  disc * stat.StdDev(puts, nil) / n,
		N:          len(selected),
	}
}
