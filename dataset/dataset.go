// Package dataset evaluates the closed-form pricer over a parameter
// grid and persists the result as a delimited table or a SQLite store.
package dataset

// Record is one evaluated grid point: the five pricing parameters and
// the closed-form call/put values at that point.
type Record struct {
	S     float64
	K     float64
	T     float64
	R     float64
	Sigma float64
	Call  float64
	Put   float64
}

// Writer receives generated records one at a time.
type Writer interface {
	Record(Record) error
	Close() error
}
