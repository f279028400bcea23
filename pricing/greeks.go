package pricing

import "math"

// GreekSet holds the first-order sensitivities of one option side.
// All values are in natural units: Theta per year, Vega and Rho per
// unit change in sigma and r.
type GreekSet struct {
	Delta float64
	Gamma float64
	Vega  float64
	Theta float64
	Rho   float64
}

// Greeks returns the Black-Scholes sensitivities for the call and put
// at p. Gamma and Vega are shared between the two sides.
func Greeks(p Params) (call, put GreekSet) {
	d1, d2 := D1D2(p)
	sqT := math.Sqrt(p.T)
	disc := math.Exp(-p.R * p.T)
	pdf := stdNormal.Prob(d1)

	gamma := pdf / (p.S * p.Sigma * sqT)
	vega := p.S * pdf * sqT
	decay := -p.S * pdf * p.Sigma / (2 * sqT)

	call = GreekSet{
		Delta: stdNormal.CDF(d1),
		Gamma: gamma,
		Vega:  vega,
		Theta: decay - p.R*p.K*disc*stdNormal.CDF(d2),
		Rho:   p.K * p.T * disc * stdNormal.CDF(d2),
	}
	put = GreekSet{
		Delta: stdNormal.CDF(d1) - 1,
		Gamma: gamma,
		Vega:  vega,
		Theta: decay + p.R*p.K*disc*stdNormal.CDF(-d2),
		Rho:   -p.K * p.T * disc * stdNormal.CDF(-d2),
	}
	return call, put
}
