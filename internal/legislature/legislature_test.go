package legislature

import "testing"

func TestDefaultDataset(t *testing.T) {
	svc, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}
	if len(svc.All()) == 0 {
		t.Fatal("embedded dataset is empty")
	}
}

func TestForDateString(t *testing.T) {
	svc, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}

	tests := []struct {
		name   string
		date   string
		wantID string
		wantOK bool
	}{
		{"inside 42nd", "2019-05-07", "42", true},
		{"start boundary inclusive", "2018-10-01", "42", true},
		{"end boundary inclusive", "2022-10-02", "42", true},
		{"inside 41st", "2015-01-15", "41", true},
		{"before all ranges", "1850-01-01", "", false},
		{"unparseable", "not-a-date", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := svc.ForDateString(tt.date)
			if ok != tt.wantOK || got != tt.wantID {
				t.Errorf("ForDateString(%q) = (%q, %v), want (%q, %v)", tt.date, got, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestParseRejectsBadDates(t *testing.T) {
	if _, err := parse([]byte(`[{"legislature": 1, "start_date": "bogus", "end_date": "2000-01-01"}]`)); err == nil {
		t.Fatal("expected error for bogus start date")
	}
}
