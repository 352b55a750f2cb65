// Package dataset moves numeric point sets between CSV files and the
// [][]float64 form the fcm package consumes.
//
// Load reads headerless CSV by default: every row is cut to the width of the
// narrowest row, at least two columns must remain, and every cell must parse
// as a finite number (WithZeroFill turns unparsable cells into 0 instead).
// Parsing goes through a gota DataFrame with all columns typed as floats.
//
// WriteLabeled writes the data columns followed by a 1-based "label" column;
// 0 marks a point without a cluster. Project selects the two columns shown on
// a scatter plot.
package dataset
