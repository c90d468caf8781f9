// Package roster holds legislature member reference data and the per-session
// lookup indexes used by the matching engine.
//
// Members are immutable reference rows (one per member per legislature).
// BuildIndex filters the full roster to one legislature and derives a
// SessionIndex with four lookup structures: exact full-name, exact
// alternate-name, last-name buckets, and district buckets. Full-name and
// alternate-name keys silently overwrite on collision for compatibility with
// the upstream dataset; collisions are recorded on the index so callers can
// surface them as diagnostics.
package roster
