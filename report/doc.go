// Package report serializes an fcm run to a self-describing JSON document,
// optionally zstd- or gzip-compressed, and reads it back.
//
// A Report carries the run id, terminal state, objective history, final
// centers, center trajectories, hard labels and the partition coefficient /
// entropy of the final memberships. Full memberships are included only with
// WithMemberships, since they grow with clusters×points.
//
// WriteFile and ReadFile pick the compression from the file suffix:
// ".zst" → zstd, ".gz" → gzip, anything else → plain JSON.
package report
