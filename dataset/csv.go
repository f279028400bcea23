package dataset

import (
	"encoding/csv"
	"os"
	"strconv"
)

// CSVWriter streams records to a delimited table with a header row.
type CSVWriter struct {
	w    *csv.Writer
	file *os.File
}

var csvHeader = []string{"spot", "strike", "maturity", "rate", "sigma", "call", "put"}

func NewCSV(path string) (*CSVWriter, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(file)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return &CSVWriter{w: w, file: file}, nil
}

func (c *CSVWriter) Record(r Record) error {
	err := c.w.Write([]string{
		f(r.S), f(r.K), f(r.T), f(r.R), f(r.Sigma),
		f(r.Call), f(r.Put),
	})
	if err != nil {
		return err
	}
	c.w.Flush()
	return c.w.Error()
}

func (c *CSVWriter) Close() error {
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		return err
	}
	return c.file.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
