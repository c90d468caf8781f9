package match_test

import (
	"testing"

	"hansard/internal/legislature"
	"hansard/internal/match"
	"hansard/internal/roster"
	"hansard/internal/speaker"
)

func testMembers() []roster.Member {
	return []roster.Member{
		{FullName: "Pierre Arcand", PartyID: "PLQ", Gender: "M", DistrictID: "Mont-Royal", LegislatureID: "42"},
		{FullName: "Mathieu Lévesque", PartyID: "CAQ", Gender: "M", DistrictID: "Chapleau", LegislatureID: "42"},
		{FullName: "Sylvain Lévesque", PartyID: "CAQ", Gender: "M", DistrictID: "Chauveau", LegislatureID: "42"},
		{FullName: "Véronique Hivon", PartyID: "PQ", Gender: "F", DistrictID: "Joliette", LegislatureID: "41"},
	}
}

func newTestMatcher(t *testing.T) *match.Matcher {
	t.Helper()
	sessions, err := legislature.Default()
	if err != nil {
		t.Fatalf("legislature.Default failed: %v", err)
	}
	return match.NewMatcher(testMembers(), sessions, 85, nil)
}

func TestProcessPreservesRowOrder(t *testing.T) {
	m := newTestMatcher(t)
	rows := []match.Row{
		{Speaker: "Des voix", EventDate: "2019-05-07"},
		{Speaker: "M. Arcand", EventDate: "2019-05-07"},
		{Speaker: "Le Président", EventDate: "2019-05-07"},
	}
	results := m.Process(rows)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Speaker != rows[i].Speaker {
			t.Errorf("row %d: speaker %q, want %q", i, r.Speaker, rows[i].Speaker)
		}
	}
}

func TestProcessDeterministicLastName(t *testing.T) {
	m := newTestMatcher(t)
	results := m.Process([]match.Row{{Speaker: "M. Arcand", EventDate: "2019-05-07"}})
	r := results[0]
	if r.Category != speaker.CategoryPerson || r.Normalized != "arcand" {
		t.Fatalf("category %q normalized %q", r.Category, r.Normalized)
	}
	if r.Legislature != "42" {
		t.Errorf("legislature = %q, want 42", r.Legislature)
	}
	if r.Outcome.Level != match.LevelDeterministic || r.Outcome.MatchedName != "Pierre Arcand" || r.Outcome.Score != 100 {
		t.Errorf("unexpected outcome: %+v", r.Outcome)
	}
}

func TestProcessAmbiguousConsensus(t *testing.T) {
	m := newTestMatcher(t)
	results := m.Process([]match.Row{{Speaker: "M. Lévesque", EventDate: "2019-05-07"}})
	out := results[0].Outcome
	if out.Level != match.LevelAmbiguous {
		t.Fatalf("level = %q, want ambiguous", out.Level)
	}
	if out.MatchedName != "Mathieu Lévesque; Sylvain Lévesque" {
		t.Errorf("matched_name = %q", out.MatchedName)
	}
	if out.PartyID != "CAQ" {
		t.Errorf("party = %q, want shared CAQ", out.PartyID)
	}
}

func TestProcessContextualResolution(t *testing.T) {
	m := newTestMatcher(t)
	rows := []match.Row{
		{Speaker: "M. Sylvain Lévesque", EventDate: "2019-05-07"},
		{Speaker: "M. Lévesque", EventDate: "2019-05-07"},
	}
	results := m.Process(rows)

	if results[0].Outcome.Level != match.LevelDeterministic {
		t.Fatalf("anchor row: %+v", results[0].Outcome)
	}
	out := results[1].Outcome
	if out.Level != match.LevelContextual {
		t.Fatalf("level = %q, want contextual", out.Level)
	}
	if out.MatchedName != "Sylvain Lévesque" || out.Score != 99 {
		t.Errorf("unexpected contextual outcome: %+v", out)
	}
	if out.DistrictID != "Chauveau" {
		t.Errorf("district = %q, want Chauveau", out.DistrictID)
	}
}

func TestProcessContextualNeedsSameDate(t *testing.T) {
	m := newTestMatcher(t)
	rows := []match.Row{
		{Speaker: "M. Sylvain Lévesque", EventDate: "2019-05-06"},
		{Speaker: "M. Lévesque", EventDate: "2019-05-07"},
	}
	results := m.Process(rows)
	if results[1].Outcome.Level != match.LevelAmbiguous {
		t.Errorf("cross-date evidence must not resolve: %+v", results[1].Outcome)
	}
}

func TestProcessContextualAmbiguousEvidenceIgnored(t *testing.T) {
	// Two ambiguous rows on the same date: neither contributes evidence, so
	// both stay ambiguous.
	m := newTestMatcher(t)
	rows := []match.Row{
		{Speaker: "M. Lévesque", EventDate: "2019-05-07"},
		{Speaker: "Mme Lévesque", EventDate: "2019-05-07"},
	}
	results := m.Process(rows)
	for i, r := range results {
		if r.Outcome.Level != match.LevelAmbiguous {
			t.Errorf("row %d: level = %q, want ambiguous", i, r.Outcome.Level)
		}
	}
}

func TestProcessContextualIntersectionOfTwo(t *testing.T) {
	// Both candidates confirmed on the same day: intersection of two leaves
	// the row ambiguous.
	m := newTestMatcher(t)
	rows := []match.Row{
		{Speaker: "M. Sylvain Lévesque", EventDate: "2019-05-07"},
		{Speaker: "M. Mathieu Lévesque", EventDate: "2019-05-07"},
		{Speaker: "M. Lévesque", EventDate: "2019-05-07"},
	}
	results := m.Process(rows)
	if results[2].Outcome.Level != match.LevelAmbiguous {
		t.Errorf("intersection of size 2 must stay ambiguous: %+v", results[2].Outcome)
	}
}

func TestProcessNonPersonCategories(t *testing.T) {
	m := newTestMatcher(t)
	tests := []struct {
		speakerLabel string
		wantCategory speaker.Category
		wantLevel    match.Level
	}{
		{"Des voix", speaker.CategoryCrowd, match.LevelCrowd},
		{"Le Président", speaker.CategoryRole, match.LevelRole},
		{"15 725 La Présidente", speaker.CategoryRole, match.LevelRole},
		{"", speaker.CategoryEmpty, match.LevelUnmatched},
	}
	for _, tt := range tests {
		results := m.Process([]match.Row{{Speaker: tt.speakerLabel, EventDate: "2019-05-07"}})
		r := results[0]
		if r.Category != tt.wantCategory || r.Outcome.Level != tt.wantLevel {
			t.Errorf("Process(%q) = category %q level %q, want %q/%q",
				tt.speakerLabel, r.Category, r.Outcome.Level, tt.wantCategory, tt.wantLevel)
		}
		if r.Outcome.MatchedName != "" || r.Outcome.PartyID != "" {
			t.Errorf("Process(%q): match fields must be absent", tt.speakerLabel)
		}
	}
}

func TestProcessUnknownDate(t *testing.T) {
	m := newTestMatcher(t)
	tests := []string{"", "not-a-date", "1850-01-01"}
	for _, date := range tests {
		results := m.Process([]match.Row{{Speaker: "M. Arcand", EventDate: date}})
		r := results[0]
		if r.Legislature != "" {
			t.Errorf("date %q: legislature = %q, want absent", date, r.Legislature)
		}
		if r.Outcome.Level != match.LevelUnmatched {
			t.Errorf("date %q: level = %q, want unmatched", date, r.Outcome.Level)
		}
	}
}

func TestProcessWrongLegislature(t *testing.T) {
	// Hivon sits in legislature 41; a 42nd-legislature date must not find her.
	m := newTestMatcher(t)
	results := m.Process([]match.Row{{Speaker: "Mme Hivon", EventDate: "2019-05-07"}})
	if results[0].Outcome.Level != match.LevelUnmatched {
		t.Errorf("got %+v, want unmatched", results[0].Outcome)
	}
}

func TestProcessRepeatedSpeakerCached(t *testing.T) {
	m := newTestMatcher(t)
	rows := []match.Row{
		{Speaker: "M. Arcand", EventDate: "2019-05-07"},
		{Speaker: "M. Arcand", EventDate: "2019-05-08"},
		{Speaker: "M. Arcand", EventDate: "2019-05-07"},
	}
	results := m.Process(rows)
	for i, r := range results {
		if r.Outcome.MatchedName != "Pierre Arcand" {
			t.Errorf("row %d: matched %q", i, r.Outcome.MatchedName)
		}
	}
}
