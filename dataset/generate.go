package dataset

import (
	"fmt"

	"github.com/rustyeddy/pricer/pricing"
)

// Generate evaluates the closed form at every point of g and streams
// the records to w. It returns the number of records written. The
// writer is not closed; that stays with the caller.
func Generate(g pricing.Grid, w Writer) (int, error) {
	if err := g.Validate(); err != nil {
		return 0, err
	}

	n := g.Len()
	for i := 0; i < n; i++ {
		p := g.At(i)
		call, put := pricing.Price(p)
		rec := Record{
			S: p.S, K: p.K, T: p.T, R: p.R, Sigma: p.Sigma,
			Call: call, Put: put,
		}
		if err := w.Record(rec); err != nil {
			return i, fmt.Errorf("record grid point %d: %w", i, err)
		}
	}
	return n, nil
}
