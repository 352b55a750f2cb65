// Package matrix provides the dense numeric storage used by the fuzzy
// clustering packages.
//
// What:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set and an
//     optional finite-only numeric policy (NaN/±Inf rejected on write).
//   - Column-stochastic helpers: ColumnSums, NormalizeColumnsL1,
//     ValidateColumnStochastic and ArgMaxColumn. A membership matrix is
//     clusters×points and every column (one point) must sum to 1.
//   - Validators shared by callers: ValidateNotNil, ValidateSameShape,
//     ValidateFinite, ValidateVecLen.
//
// Why:
//
//	Membership and center tables are mutated in place every iteration of an
//	optimization loop. A flat row-major buffer keeps the hot loops cache
//	friendly, and RowView exposes a row without copying for kernels that
//	own the matrix exclusively.
//
// Determinism:
//
//	All helpers iterate in fixed row→column order; no maps, no randomness.
//
// Complexity:
//
//   - NewDense O(r*c); At/Set O(1); Clone O(r*c); column helpers O(r*c).
//
// Errors:
//
//	Every function returns the sentinels from errors.go (use errors.Is).
//	Nothing panics on user input.
package matrix
