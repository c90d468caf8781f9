package match

import (
	"strings"

	"hansard/internal/roster"
	"hansard/internal/textmetric"
)

const (
	// exactScore is assigned to deterministic (exact-key) matches.
	exactScore = 100
	// substringScore is assigned when a multi-token speaker name is a
	// literal substring of a member's full normalized name.
	substringScore = 95
	// contextualScore signals high-but-inferred confidence: strictly below a
	// direct match, above any sane fuzzy threshold.
	contextualScore = 99
)

// Engine resolves one normalized speaker name against a session index.
// Returns the outcome and, for ambiguous outcomes, the candidate set.
//
// The cascade stops at the first matching tier: district override, exact full
// name, exact alternate name, exact last name (single-token names only, with
// ambiguity detection), then weighted fuzzy scoring. Ties at equal fuzzy
// score keep the first-encountered member, so roster iteration order is part
// of the contract.
func Engine(name string, idx *roster.SessionIndex, threshold float64, districtHint string) (Outcome, []*roster.NormalizedMember) {
	if name == "" {
		return unmatched(), nil
	}

	if districtHint != "" {
		if out, ok := matchDistrict(name, idx, districtHint); ok {
			return out, nil
		}
	}

	if m, ok := idx.FullName(name); ok {
		return resolved(m, LevelDeterministic, exactScore), nil
	}
	if m, ok := idx.AltName(name); ok {
		return resolved(m, LevelDeterministic, exactScore), nil
	}

	singleToken := !strings.Contains(name, " ")
	if singleToken {
		if bucket := idx.LastName(name); len(bucket) > 0 {
			if len(bucket) == 1 {
				return resolved(bucket[0], LevelDeterministic, exactScore), nil
			}
			return ambiguous(bucket, exactScore), bucket
		}
	}

	return matchFuzzy(name, idx, threshold, singleToken)
}

// matchDistrict applies the district-hint override. A lone member for the
// district is accepted outright; with several members the speaker name has to
// pin one down by last name or substring.
func matchDistrict(name string, idx *roster.SessionIndex, districtHint string) (Outcome, bool) {
	bucket := idx.District(districtHint)
	switch {
	case len(bucket) == 1:
		return resolved(bucket[0], LevelDeterministic, exactScore), true
	case len(bucket) > 1:
		for _, m := range bucket {
			if m.LastNameNorm == name || strings.Contains(m.FullNameNorm, name) {
				return resolved(m, LevelDeterministic, exactScore), true
			}
		}
	}
	return Outcome{}, false
}

func matchFuzzy(name string, idx *roster.SessionIndex, threshold float64, singleToken bool) (Outcome, []*roster.NormalizedMember) {
	best := 0.0
	var bestMember *roster.NormalizedMember
	for _, m := range idx.Members {
		var score float64
		if singleToken {
			score = fuzzyLastScore(name, m.LastNameNorm)
		} else {
			score = fuzzyFullScore(name, m.FullNameNorm)
		}
		if score > best {
			best = score
			bestMember = m
		}
	}

	if bestMember == nil || best < threshold {
		return unmatched(), nil
	}

	if singleToken {
		// Collect every member whose last name also clears the threshold;
		// a near-tied set is ambiguity, not a win for the top scorer.
		var nearTied []*roster.NormalizedMember
		seen := make(map[string]struct{})
		for _, m := range idx.Members {
			if fuzzyLastScore(name, m.LastNameNorm) < threshold {
				continue
			}
			if _, dup := seen[m.FullName]; dup {
				continue
			}
			seen[m.FullName] = struct{}{}
			nearTied = append(nearTied, m)
		}
		if len(nearTied) > 1 {
			return ambiguous(nearTied, best), nearTied
		}
	}

	return resolved(bestMember, LevelFuzzy, best), nil
}

// fuzzyFullScore compares a multi-token speaker name against a member's full
// normalized name. A literal substring is pinned at 95; otherwise the score
// is a 60/40 blend of token-sort and plain similarity.
func fuzzyFullScore(name, fullNorm string) float64 {
	if name == fullNorm {
		return 100
	}
	if strings.Contains(fullNorm, name) {
		return substringScore
	}
	return 0.6*textmetric.TokenSortRatio(name, fullNorm) + 0.4*textmetric.Ratio(name, fullNorm)
}

// fuzzyLastScore compares a single-token speaker name against a member's
// normalized last name with a 50/30/20 blend favoring partial matches.
func fuzzyLastScore(name, lastNorm string) float64 {
	return 0.5*textmetric.PartialRatio(name, lastNorm) +
		0.3*textmetric.TokenSortRatio(name, lastNorm) +
		0.2*textmetric.Ratio(name, lastNorm)
}
