package dataset

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// LabelColumn names the label column written by WriteLabeled.
const LabelColumn = "label"

// WriteLabeled writes every point followed by its label as a CSV row.
// labels are zero-based cluster indices; they are written 1-based and any
// negative label is written as 0 (unassigned). labels may be nil, in which
// case every row is written as unassigned.
//
// Values are written with gota's fixed six-decimal float format.
func WriteLabeled(w io.Writer, data [][]float64, labels []int, opts ...Option) error {
	o := resolve(opts)
	df, err := labeledFrame(data, labels)
	if err != nil {
		return fmt.Errorf("WriteLabeled: %w", err)
	}
	if err = df.WriteCSV(w, dataframe.WriteHeader(o.Header)); err != nil {
		return fmt.Errorf("WriteLabeled: %w", err)
	}
	return nil
}

// SaveFile creates (or truncates) path and calls WriteLabeled.
func SaveFile(path string, data [][]float64, labels []int, opts ...Option) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("SaveFile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("SaveFile: %w", cerr)
		}
	}()

	return WriteLabeled(f, data, labels, opts...)
}

// Project returns a two-column copy of data made of columns x and y.
func Project(data [][]float64, x, y int) ([][]float64, error) {
	out := make([][]float64, len(data))
	for i, p := range data {
		if x < 0 || y < 0 || x >= len(p) || y >= len(p) {
			return nil, fmt.Errorf("Project: columns (%d,%d) of point %d with %d values: %w",
				x, y, i, len(p), ErrColumnOutOfRange)
		}
		out[i] = []float64{p[x], p[y]}
	}
	return out, nil
}

// labeledFrame builds the x1..xD + label frame.
func labeledFrame(data [][]float64, labels []int) (dataframe.DataFrame, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return dataframe.DataFrame{}, ErrEmpty
	}
	if labels != nil && len(labels) != len(data) {
		return dataframe.DataFrame{}, fmt.Errorf("%d labels for %d points: %w", len(labels), len(data), ErrLengthMismatch)
	}
	dim := len(data[0])
	cols := make([][]float64, dim)
	for j := range cols {
		cols[j] = make([]float64, len(data))
	}
	for i, p := range data {
		if len(p) != dim {
			return dataframe.DataFrame{}, fmt.Errorf("point %d has %d values, want %d: %w", i, len(p), dim, ErrLengthMismatch)
		}
		for j, v := range p {
			cols[j][i] = v
		}
	}

	out := make([]int, len(data))
	for i := range labels {
		if labels[i] >= 0 {
			out[i] = labels[i] + 1
		}
	}

	ss := make([]series.Series, 0, dim+1)
	for j := range cols {
		ss = append(ss, series.New(cols[j], series.Float, "x"+strconv.Itoa(j+1)))
	}
	ss = append(ss, series.New(out, series.Int, LabelColumn))

	df := dataframe.New(ss...)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %v", ErrParse, df.Err)
	}
	return df, nil
}
