// Package match implements the multi-level speaker matching engine and the
// two-phase corpus orchestrator.
//
// A single name is resolved through a cascade: district-hint override, exact
// full-name lookup, exact alternate-name lookup, exact last-name lookup with
// ambiguity detection, then weighted fuzzy scoring against the whole session
// roster. Two or more equally plausible members produce an ambiguous outcome
// carrying the full candidate set and any consensus fields (shared party or
// gender).
//
// The corpus orchestrator runs the cascade over every transcript row (phase
// one), then groups rows by calendar date and re-resolves ambiguous outcomes
// whose candidate set intersects the day's confirmed roster in exactly one
// member (phase two, the contextual tier). Session indexes and per-name
// outcomes are cached for the duration of one run.
package match
