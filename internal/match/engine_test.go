package match

import (
	"strings"
	"testing"

	"hansard/internal/roster"
)

const testThreshold = 85

func index42(t *testing.T, members ...roster.Member) *roster.SessionIndex {
	t.Helper()
	return roster.BuildIndex(members, "42")
}

func member(fullName, party, gender, district string) roster.Member {
	return roster.Member{
		FullName:      fullName,
		PartyID:       party,
		Gender:        gender,
		DistrictID:    district,
		LegislatureID: "42",
	}
}

func TestEngineEmptyName(t *testing.T) {
	idx := index42(t, member("Pierre Arcand", "PLQ", "M", "Mont-Royal"))
	out, cands := Engine("", idx, testThreshold, "")
	if out.Level != LevelUnmatched {
		t.Errorf("level = %q, want unmatched", out.Level)
	}
	if cands != nil {
		t.Error("expected no candidates")
	}
}

func TestEngineExactFullName(t *testing.T) {
	idx := index42(t, member("Pierre Arcand", "PLQ", "M", "Mont-Royal"))
	out, _ := Engine("pierre arcand", idx, testThreshold, "")
	if out.Level != LevelDeterministic || out.Score != 100 {
		t.Fatalf("got level %q score %v", out.Level, out.Score)
	}
	if out.MatchedName != "Pierre Arcand" || out.DistrictID != "Mont-Royal" {
		t.Errorf("unexpected outcome: %+v", out)
	}
}

func TestEngineExactAlternateName(t *testing.T) {
	m := member("Pierre Arcand", "PLQ", "M", "Mont-Royal")
	m.OtherNames = "P. Arcand; Arcand, Pierre"
	idx := index42(t, m)
	out, _ := Engine("p arcand", idx, testThreshold, "")
	if out.Level != LevelDeterministic || out.MatchedName != "Pierre Arcand" {
		t.Fatalf("got %+v", out)
	}
}

func TestEngineUniqueLastName(t *testing.T) {
	// A single Arcand in the roster resolves a bare last name deterministically.
	idx := index42(t,
		member("Pierre Arcand", "PLQ", "M", "Mont-Royal"),
		member("Pierre Paradis", "PLQ", "M", "Brome-Missisquoi"),
	)
	out, cands := Engine("arcand", idx, testThreshold, "")
	if out.Level != LevelDeterministic || out.Score != 100 {
		t.Fatalf("got level %q score %v", out.Level, out.Score)
	}
	if out.MatchedName != "Pierre Arcand" {
		t.Errorf("matched %q", out.MatchedName)
	}
	if cands != nil {
		t.Error("unique last name must not produce candidates")
	}
}

func TestEngineAmbiguousLastName(t *testing.T) {
	// Two Lévesques, same party, different gender: party is consensus,
	// gender is not.
	idx := index42(t,
		member("Sylvain Lévesque", "CAQ", "M", "Chauveau"),
		member("Mathieu Lévesque", "CAQ", "F", "Chapleau"),
	)
	out, cands := Engine("levesque", idx, testThreshold, "")
	if out.Level != LevelAmbiguous || out.Score != 100 {
		t.Fatalf("got level %q score %v", out.Level, out.Score)
	}
	if out.MatchedName != "Mathieu Lévesque; Sylvain Lévesque" {
		t.Errorf("matched_name = %q, want alphabetically sorted join", out.MatchedName)
	}
	if out.PartyID != "CAQ" {
		t.Errorf("party = %q, want consensus CAQ", out.PartyID)
	}
	if out.Gender != "" {
		t.Errorf("gender = %q, want absent", out.Gender)
	}
	if out.DistrictID != "" {
		t.Error("district must always be absent on ambiguous outcomes")
	}
	if len(cands) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(cands))
	}
}

func TestEngineDistrictOverrideSingle(t *testing.T) {
	idx := index42(t,
		member("Éric Girard", "CAQ", "M", "Groulx"),
		member("Éric Girard", "CAQ", "M", "Lac-Saint-Jean"),
	)
	out, _ := Engine("girard", idx, testThreshold, "lacsaintjean")
	if out.Level != LevelDeterministic || out.Score != 100 {
		t.Fatalf("got level %q score %v", out.Level, out.Score)
	}
	if out.DistrictID != "Lac-Saint-Jean" {
		t.Errorf("district = %q, want Lac-Saint-Jean", out.DistrictID)
	}
}

func TestEngineDistrictOverrideMultiMember(t *testing.T) {
	// Two members sharing a district key: the speaker name must pin one down.
	idx := index42(t,
		member("Jean Tremblay", "CAQ", "M", "Dubuc"),
		member("Luc Fortin", "PLQ", "M", "Dubuc"),
	)
	out, _ := Engine("fortin", idx, testThreshold, "dubuc")
	if out.Level != LevelDeterministic || out.MatchedName != "Luc Fortin" {
		t.Fatalf("got %+v", out)
	}
}

func TestEngineDistrictOverrideFallsThrough(t *testing.T) {
	// Hint resolves nothing: the cascade continues to the exact tiers.
	idx := index42(t, member("Pierre Arcand", "PLQ", "M", "Mont-Royal"))
	out, _ := Engine("pierre arcand", idx, testThreshold, "nowhere")
	if out.Level != LevelDeterministic || out.MatchedName != "Pierre Arcand" {
		t.Fatalf("got %+v", out)
	}
}

func TestEngineHyphenatedNameExact(t *testing.T) {
	// Hyphens vanish during normalization, so the hyphenated display form
	// still resolves through the exact full-name tier.
	idx := index42(t, member("Jean-François Roberge", "CAQ", "M", "Chambly"))
	out, _ := Engine("jeanfrancois roberge", idx, testThreshold, "")
	if out.Level != LevelDeterministic {
		t.Fatalf("expected exact full-name hit, got %+v", out)
	}
}

func TestEngineFuzzyMultiToken(t *testing.T) {
	idx := index42(t,
		member("Pierre Arcand", "PLQ", "M", "Mont-Royal"),
		member("Véronique Hivon", "PQ", "F", "Joliette"),
	)
	// OCR-damaged but recoverable.
	out, _ := Engine("pierre arcan", idx, testThreshold, "")
	if out.Level != LevelFuzzy {
		t.Fatalf("got level %q (score %v), want fuzzy", out.Level, out.Score)
	}
	if out.MatchedName != "Pierre Arcand" {
		t.Errorf("matched %q", out.MatchedName)
	}
	if out.Score < testThreshold || out.Score > 100 {
		t.Errorf("score %v outside [threshold, 100]", out.Score)
	}
}

func TestEngineFuzzySingleToken(t *testing.T) {
	idx := index42(t,
		member("Vincent Marissal", "QS", "M", "Rosemont"),
		member("Véronique Hivon", "PQ", "F", "Joliette"),
	)
	out, _ := Engine("marisal", idx, testThreshold, "")
	if out.Level != LevelFuzzy || out.MatchedName != "Vincent Marissal" {
		t.Fatalf("got %+v", out)
	}
}

func TestEngineFuzzyNearTieAmbiguity(t *testing.T) {
	// Two distinct members whose last names both clear the threshold for the
	// damaged input.
	idx := index42(t,
		member("Mathieu Lévesque", "CAQ", "M", "Chapleau"),
		member("Sylvain Lévesque", "CAQ", "M", "Chauveau"),
	)
	out, cands := Engine("levesqu", idx, testThreshold, "")
	if out.Level != LevelAmbiguous {
		t.Fatalf("got level %q (score %v), want ambiguous", out.Level, out.Score)
	}
	if len(cands) != 2 {
		t.Errorf("expected 2 near-tied candidates, got %d", len(cands))
	}
	if !strings.Contains(out.MatchedName, "; ") {
		t.Errorf("matched_name = %q, want semicolon-joined list", out.MatchedName)
	}
}

func TestEngineBelowThreshold(t *testing.T) {
	idx := index42(t, member("Pierre Arcand", "PLQ", "M", "Mont-Royal"))
	out, cands := Engine("zzyzx", idx, testThreshold, "")
	if out.Level != LevelUnmatched {
		t.Fatalf("got level %q, want unmatched", out.Level)
	}
	if cands != nil {
		t.Error("unmatched outcome must not carry candidates")
	}
}

func TestEngineTieKeepsFirstEncountered(t *testing.T) {
	// Identical normalized last names at identical score: insertion order
	// decides. Distinct display names keep both out of the dedup path.
	idx := index42(t,
		member("Anne Côté", "PLQ", "F", ""),
		member("Jean Côté", "PQ", "M", ""),
	)
	out, _ := Engine("cote", idx, 101, "")
	// Threshold above 100 forces unmatched; the scan itself must not panic
	// and must keep strict-greater semantics.
	if out.Level != LevelUnmatched {
		t.Fatalf("got %+v", out)
	}
}

func TestFuzzyScoreIdentical(t *testing.T) {
	if got := fuzzyFullScore("pierre arcand", "pierre arcand"); got != 100 {
		t.Errorf("fuzzyFullScore(identical) = %v, want 100", got)
	}
	if got := fuzzyLastScore("arcand", "arcand"); got != 100 {
		t.Errorf("fuzzyLastScore(identical) = %v, want 100", got)
	}
}

func TestFuzzyScoreSubstringPinned(t *testing.T) {
	if got := fuzzyFullScore("pierre arc", "pierre arcand"); got != 95 {
		t.Errorf("fuzzyFullScore(substring) = %v, want 95", got)
	}
}

func TestFuzzyScoreBounds(t *testing.T) {
	pairs := [][2]string{
		{"arcand", "paradis"},
		{"a", "bbbbbbbb"},
		{"", "arcand"},
		{"jean francois", "roberge"},
	}
	for _, p := range pairs {
		if got := fuzzyFullScore(p[0], p[1]); got < 0 || got > 100 {
			t.Errorf("fuzzyFullScore(%q, %q) = %v out of range", p[0], p[1], got)
		}
		if got := fuzzyLastScore(p[0], p[1]); got < 0 || got > 100 {
			t.Errorf("fuzzyLastScore(%q, %q) = %v out of range", p[0], p[1], got)
		}
	}
}
