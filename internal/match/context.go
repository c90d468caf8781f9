package match

import "hansard/internal/roster"

// unknownDateKey buckets rows without an event date. They never contribute
// evidence to, or borrow evidence from, dated groups.
const unknownDateKey = "unknown"

// disambiguateByDate is the second pass: for each calendar date it builds the
// confirmed roster (display names matched deterministically or fuzzily that
// day) and rewrites ambiguous outcomes whose candidate set intersects it in
// exactly one member. The roster is computed once from the phase-one outcomes
// only; a contextual resolution never feeds back into the same pass.
func disambiguateByDate(results []Result, candidates [][]*roster.NormalizedMember) {
	groups := make(map[string][]int)
	order := make([]string, 0)
	for i, r := range results {
		key := r.EventDate
		if key == "" {
			key = unknownDateKey
		}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], i)
	}

	for _, key := range order {
		indices := groups[key]

		confirmed := make(map[string]struct{})
		for _, i := range indices {
			out := results[i].Outcome
			if out.Level == LevelDeterministic || out.Level == LevelFuzzy {
				confirmed[out.MatchedName] = struct{}{}
			}
		}
		if len(confirmed) == 0 {
			continue
		}

		for _, i := range indices {
			if results[i].Outcome.Level != LevelAmbiguous || len(candidates[i]) == 0 {
				continue
			}

			var hit *roster.NormalizedMember
			hits := 0
			seen := make(map[string]struct{})
			for _, c := range candidates[i] {
				if _, dup := seen[c.FullName]; dup {
					continue
				}
				seen[c.FullName] = struct{}{}
				if _, ok := confirmed[c.FullName]; ok {
					hit = c
					hits++
				}
			}
			if hits == 1 {
				results[i].Outcome = resolved(hit, LevelContextual, contextualScore)
			}
		}
	}
}
