package fcm

import "errors"

// Sentinel errors returned by the fcm package. Callers match with errors.Is;
// context (method, indices, values) is attached with %w at the detection site.
var (
	// ErrEmptyDataset indicates that the dataset has no points or zero-length vectors.
	ErrEmptyDataset = errors.New("fcm: dataset is empty")

	// ErrRaggedDataset indicates that data points differ in dimensionality.
	ErrRaggedDataset = errors.New("fcm: data points differ in length")

	// ErrNaNInf indicates a NaN or ±Inf coordinate in the dataset or centers.
	ErrNaNInf = errors.New("fcm: NaN or Inf encountered")

	// ErrTooFewClusters indicates clusterCount < 1.
	ErrTooFewClusters = errors.New("fcm: cluster count must be >= 1")

	// ErrTooFewIterations indicates iterationLimit < 1.
	ErrTooFewIterations = errors.New("fcm: iteration limit must be >= 1")

	// ErrBadFuzziness indicates a fuzziness exponent that is not a finite value > 1.
	ErrBadFuzziness = errors.New("fcm: fuzziness exponent must be > 1")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("fcm: invalid option supplied")

	// ErrDegenerate indicates that a point coincides with a center, so the
	// membership ratio rule divides by zero.
	ErrDegenerate = errors.New("fcm: point coincides with a cluster center")

	// ErrZeroWeight indicates that a cluster's total weight Σ u^m is zero or
	// not finite, so its center is undefined.
	ErrZeroWeight = errors.New("fcm: cluster has zero total membership weight")

	// ErrDimensionMismatch indicates incompatible shapes between helper arguments
	// (e.g. centers width vs. point length, membership columns vs. points).
	ErrDimensionMismatch = errors.New("fcm: dimension mismatch")
)
