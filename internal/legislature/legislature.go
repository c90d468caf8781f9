package legislature

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	_ "embed"
)

//go:embed legislatures_qc.json
var defaultDataset []byte

const dateLayout = "2006-01-02"

// Legislature is one bounded period with a fixed membership roster.
type Legislature struct {
	ID    int
	Start time.Time
	End   time.Time
}

// Service resolves calendar dates to legislature identifiers.
type Service struct {
	legislatures []Legislature
}

type datasetEntry struct {
	Legislature int    `json:"legislature"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// Default returns a service backed by the embedded Quebec dataset.
func Default() (*Service, error) {
	return parse(defaultDataset)
}

// LoadFile returns a service backed by a JSON dataset on disk.
func LoadFile(path string) (*Service, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read legislatures: %w", err)
	}
	svc, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse legislatures %s: %w", path, err)
	}
	return svc, nil
}

func parse(data []byte) (*Service, error) {
	var entries []datasetEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode legislatures: %w", err)
	}
	legislatures := make([]Legislature, 0, len(entries))
	for _, e := range entries {
		start, err := time.Parse(dateLayout, e.StartDate)
		if err != nil {
			return nil, fmt.Errorf("legislature %d start date: %w", e.Legislature, err)
		}
		end, err := time.Parse(dateLayout, e.EndDate)
		if err != nil {
			return nil, fmt.Errorf("legislature %d end date: %w", e.Legislature, err)
		}
		legislatures = append(legislatures, Legislature{ID: e.Legislature, Start: start, End: end})
	}
	return &Service{legislatures: legislatures}, nil
}

// All returns the configured legislatures in dataset order.
func (s *Service) All() []Legislature {
	out := make([]Legislature, len(s.legislatures))
	copy(out, s.legislatures)
	return out
}

// ForDate returns the identifier of the first legislature whose inclusive
// date range contains the given date.
func (s *Service) ForDate(date time.Time) (string, bool) {
	day := date.Truncate(24 * time.Hour)
	for _, leg := range s.legislatures {
		if !day.Before(leg.Start) && !day.After(leg.End) {
			return strconv.Itoa(leg.ID), true
		}
	}
	return "", false
}

// ForDateString parses an ISO date (YYYY-MM-DD) and resolves it. Unparseable
// or out-of-range dates return no legislature rather than an error; absence
// is a valid, reportable outcome.
func (s *Service) ForDateString(date string) (string, bool) {
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return "", false
	}
	return s.ForDate(parsed)
}
