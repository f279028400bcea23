package pricing

import (
	"errors"
	"fmt"
	"math"
)

// Right selects which side of an option pair an operation refers to.
type Right int

const (
	Call Right = iota
	Put
)

func (r Right) String() string {
	if r == Put {
		return "put"
	}
	return "call"
}

// ErrNoConvergence is returned when the implied volatility search does
// not reach the requested tolerance within its iteration budget.
var ErrNoConvergence = errors.New("implied volatility did not converge")

const (
	ivMaxIterations = 200
	ivTolerance     = 1e-7
	ivLowerBound    = 1e-6
	ivUpperBound    = 5.0
)

// ImpliedVol finds the volatility at which the Black-Scholes value of
// the given side matches premium, by bisection on [1e-6, 5]. The Sigma
// field of p is ignored.
func ImpliedVol(p Params, premium float64, right Right) (float64, error) {
	if premium <= 0 {
		return 0, fmt.Errorf("%w: premium must be positive, got %g", ErrInvalidParams, premium)
	}
	p.Sigma = 1 // placeholder so Validate checks the remaining fields
	if err := p.Validate(); err != nil {
		return 0, err
	}

	lo, hi := ivLowerBound, ivUpperBound
	for i := 0; i < ivMaxIterations; i++ {
		iv := (lo + hi) / 2
		p.Sigma = iv

		call, put := Price(p)
		value := call
		if right == Put {
			value = put
		}

		if math.Abs(value-premium) < ivTolerance {
			return iv, nil
		}
		if value < premium {
			lo = iv
		} else {
			hi = iv
		}
	}
	return 0, fmt.Errorf("%w: %s premium %g not matched within %d iterations",
		ErrNoConvergence, right, premium, ivMaxIterations)
}
