// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - A single source of truth for tolerances shared by validators.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks
	// such as ValidateColumnStochastic.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true
)
