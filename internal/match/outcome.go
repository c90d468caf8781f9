package match

import (
	"sort"
	"strings"

	"hansard/internal/roster"
)

// Level is the tier that produced a match outcome.
type Level string

const (
	// LevelDeterministic is an exact-key hit: full name, alternate name,
	// unambiguous last name, or district override.
	LevelDeterministic Level = "deterministic"
	// LevelFuzzy is a similarity score clearing the configured threshold.
	LevelFuzzy Level = "fuzzy"
	// LevelContextual is an ambiguous outcome resolved by same-day evidence.
	LevelContextual Level = "contextual"
	// LevelAmbiguous means two or more members are equally plausible.
	LevelAmbiguous Level = "ambiguous"
	// LevelRole and LevelCrowd mirror the speaker category for rows that
	// never reach the cascade.
	LevelRole  Level = "role"
	LevelCrowd Level = "crowd"
	// LevelUnmatched means no roster entry could be established. Empty
	// speaker labels land here too.
	LevelUnmatched Level = "unmatched"
)

// Scored reports whether outcomes at this level carry a meaningful score.
func (l Level) Scored() bool {
	switch l {
	case LevelDeterministic, LevelFuzzy, LevelContextual, LevelAmbiguous:
		return true
	}
	return false
}

// Outcome is the result of matching one speaker name. For ambiguous outcomes
// MatchedName is the sorted, semicolon-joined candidate display names — a
// deliberate signal that the row needs manual or contextual resolution — and
// PartyID/Gender are present only when all candidates agree. Score is
// meaningful only when Level.Scored() reports true.
type Outcome struct {
	MatchedName string
	PartyID     string
	Gender      string
	DistrictID  string
	Level       Level
	Score       float64
}

func unmatched() Outcome {
	return Outcome{Level: LevelUnmatched}
}

func resolved(m *roster.NormalizedMember, level Level, score float64) Outcome {
	return Outcome{
		MatchedName: m.FullName,
		PartyID:     m.PartyID,
		Gender:      m.Gender,
		DistrictID:  m.DistrictID,
		Level:       level,
		Score:       score,
	}
}

// ambiguous builds a consensus outcome over a candidate set: party and gender
// are populated only when every candidate shares a single non-empty value.
// District is always left absent; it is rarely shared meaningfully.
func ambiguous(candidates []*roster.NormalizedMember, score float64) Outcome {
	parties := make(map[string]struct{})
	genders := make(map[string]struct{})
	seen := make(map[string]struct{}, len(candidates))
	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c.PartyID != "" {
			parties[c.PartyID] = struct{}{}
		}
		if c.Gender != "" {
			genders[c.Gender] = struct{}{}
		}
		if _, dup := seen[c.FullName]; !dup {
			seen[c.FullName] = struct{}{}
			names = append(names, c.FullName)
		}
	}
	sort.Strings(names)

	out := Outcome{
		MatchedName: strings.Join(names, "; "),
		Level:       LevelAmbiguous,
		Score:       score,
	}
	if len(parties) == 1 {
		for p := range parties {
			out.PartyID = p
		}
	}
	if len(genders) == 1 {
		for g := range genders {
			out.Gender = g
		}
	}
	return out
}
