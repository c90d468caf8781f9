package match

import (
	"log/slog"

	"hansard/internal/legislature"
	"hansard/internal/roster"
	"hansard/internal/speaker"
)

// Row is one transcript input row: the raw speaker label, the sitting date
// (ISO YYYY-MM-DD, possibly empty or malformed), and any passthrough columns
// preserved verbatim in the output.
type Row struct {
	Speaker   string
	EventDate string
	Extra     map[string]string
}

// Result augments a Row with the classification, normalization and matching
// outcome for that row.
type Result struct {
	Row
	Category    speaker.Category
	Normalized  string
	Legislature string
	Outcome     Outcome
}

// Matcher drives the two-phase pipeline over an ordered row sequence. It owns
// two run-scoped caches: session indexes per legislature, and outcomes per
// (normalized name, district hint, legislature). Not safe for concurrent use;
// processing is strictly sequential.
type Matcher struct {
	members   []roster.Member
	sessions  *legislature.Service
	threshold float64
	logger    *slog.Logger

	indexes map[string]*roster.SessionIndex
	cache   map[cacheKey]cachedOutcome
}

// cacheKey includes the district hint: two raw labels can normalize to the
// same name yet carry different hints, and the hint changes the cascade.
type cacheKey struct {
	name         string
	districtHint string
	legislature  string
}

type cachedOutcome struct {
	outcome    Outcome
	candidates []*roster.NormalizedMember
}

// NewMatcher builds a corpus matcher over the full roster. threshold is the
// minimum fuzzy score (0-100) to accept a match.
func NewMatcher(members []roster.Member, sessions *legislature.Service, threshold float64, logger *slog.Logger) *Matcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Matcher{
		members:   members,
		sessions:  sessions,
		threshold: threshold,
		logger:    logger.With("component", "matcher"),
		indexes:   make(map[string]*roster.SessionIndex),
		cache:     make(map[cacheKey]cachedOutcome),
	}
}

// Process matches every row and returns results in original row order.
func (m *Matcher) Process(rows []Row) []Result {
	results := make([]Result, len(rows))
	candidates := make([][]*roster.NormalizedMember, len(rows))

	for i, row := range rows {
		category, normalized, districtHint := speaker.Normalize(row.Speaker)
		result := Result{Row: row, Category: category, Normalized: normalized}

		leg, known := m.sessions.ForDateString(row.EventDate)
		if known {
			result.Legislature = leg
		}

		if category != speaker.CategoryPerson {
			if category == speaker.CategoryEmpty {
				result.Outcome = unmatched()
			} else {
				result.Outcome = Outcome{Level: Level(category)}
			}
			results[i] = result
			continue
		}
		if !known {
			result.Outcome = unmatched()
			results[i] = result
			continue
		}

		key := cacheKey{name: normalized, districtHint: districtHint, legislature: leg}
		cached, hit := m.cache[key]
		if !hit {
			outcome, cands := Engine(normalized, m.index(leg), m.threshold, districtHint)
			cached = cachedOutcome{outcome: outcome, candidates: cands}
			m.cache[key] = cached
		}
		result.Outcome = cached.outcome
		candidates[i] = cached.candidates
		results[i] = result
	}

	disambiguateByDate(results, candidates)

	m.logSummary(results)
	return results
}

// index returns the session index for a legislature, building it on first
// encounter. Indexes live for the whole run; the number of legislatures is
// small and bounded.
func (m *Matcher) index(legislatureID string) *roster.SessionIndex {
	if idx, ok := m.indexes[legislatureID]; ok {
		return idx
	}
	idx := roster.BuildIndex(m.members, legislatureID)
	for _, collision := range idx.Collisions {
		m.logger.Debug("roster key overwritten", "legislature", legislatureID, "key", collision)
	}
	m.logger.Debug("session index built", "legislature", legislatureID, "members", len(idx.Members))
	m.indexes[legislatureID] = idx
	return idx
}

func (m *Matcher) logSummary(results []Result) {
	counts := make(map[Level]int)
	for _, r := range results {
		counts[r.Outcome.Level]++
	}
	m.logger.Info("corpus matched",
		"rows", len(results),
		"deterministic", counts[LevelDeterministic],
		"fuzzy", counts[LevelFuzzy],
		"contextual", counts[LevelContextual],
		"ambiguous", counts[LevelAmbiguous],
		"roles", counts[LevelRole],
		"crowds", counts[LevelCrowd],
		"unmatched", counts[LevelUnmatched],
	)
}
