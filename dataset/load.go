package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Load parses numeric rows from r.
//
// Errors: ErrParse, ErrEmpty, ErrTooFewColumns, ErrNonNumeric.
func Load(r io.Reader, opts ...Option) ([][]float64, error) {
	o := resolve(opts)

	cr := csv.NewReader(r)
	cr.Comma = o.Comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("Load: %w: %v", ErrParse, err)
	}
	first := 0
	if o.Header && len(records) > 0 {
		first = 1
	}
	records = records[first:]
	if len(records) == 0 {
		return nil, fmt.Errorf("Load: %w", ErrEmpty)
	}

	width := len(records[0])
	for _, rec := range records[1:] {
		width = min(width, len(rec))
	}
	if width < 2 {
		return nil, fmt.Errorf("Load: width %d: %w", width, ErrTooFewColumns)
	}
	for i, rec := range records {
		rec = rec[:width]
		for j := range rec {
			rec[j] = strings.TrimSpace(rec[j])
		}
		records[i] = rec
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(false),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.Float),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("Load: %w: %v", ErrParse, df.Err)
	}

	return frameToRows(df, o.ZeroFill, first)
}

// LoadFile opens path and calls Load.
func LoadFile(path string, opts ...Option) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile: %w", err)
	}
	defer f.Close()

	data, err := Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("LoadFile %s: %w", path, err)
	}
	return data, nil
}

// frameToRows copies a float frame out row by row. lineOffset shifts reported
// row numbers so they match the source file (1-based).
func frameToRows(df dataframe.DataFrame, zeroFill bool, lineOffset int) ([][]float64, error) {
	rows, cols := df.Nrow(), df.Ncol()
	out := make([][]float64, rows)
	var errs []error
	for i := 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			e := df.Elem(i, j)
			v := e.Float()
			if e.IsNA() || math.IsNaN(v) || math.IsInf(v, 0) {
				if zeroFill {
					continue
				}
				errs = append(errs, fmt.Errorf("line %d column %d %q: %w",
					i+1+lineOffset, j+1, e.String(), ErrNonNumeric))
				continue
			}
			out[i][j] = v
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("Load: %w", errors.Join(errs...))
	}
	return out, nil
}
