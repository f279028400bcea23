// Package pricing implements closed-form Black-Scholes valuation of
// European options, the associated Greeks, and implied volatility.
package pricing

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParams is wrapped by all parameter validation failures.
var ErrInvalidParams = errors.New("invalid pricing parameters")

// Params describes one European option contract under Black-Scholes
// assumptions. A Params value has no identity beyond its fields and is
// never mutated by this package.
type Params struct {
	S     float64 // spot price of the underlying
	K     float64 // strike price
	T     float64 // time to maturity, in years
	R     float64 // risk-free rate, annualized
	Sigma float64 // volatility, annualized
}

// Validate rejects parameters the pricing formulas are undefined for.
// Price and Greeks do not validate; call this at the boundary instead
// of letting NaN propagate.
func (p Params) Validate() error {
	if p.S <= 0 {
		return fmt.Errorf("%w: spot must be positive, got %g", ErrInvalidParams, p.S)
	}
	if p.K <= 0 {
		return fmt.Errorf("%w: strike must be positive, got %g", ErrInvalidParams, p.K)
	}
	if p.T <= 0 {
		return fmt.Errorf("%w: maturity must be positive, got %g", ErrInvalidParams, p.T)
	}
	if p.Sigma <= 0 {
		return fmt.Errorf("%w: volatility must be positive, got %g", ErrInvalidParams, p.Sigma)
	}
	// sigma*sqrt(T) divides d1; it can still underflow to zero even when
	// both factors pass the checks above.
	if p.Sigma*math.Sqrt(p.T) == 0 {
		return fmt.Errorf("%w: sigma*sqrt(T) is zero", ErrInvalidParams)
	}
	return nil
}
