package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrMissingColumn indicates the roster CSV lacks a required column.
var ErrMissingColumn = errors.New("missing roster column")

// LoadCSV reads roster members from a CSV file with a header row. Required
// columns: full_name, legislature_id. Optional columns (other_names, party_id,
// gender, district_id) default to empty when absent.
func LoadCSV(path string) ([]Member, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer file.Close()

	members, err := ReadCSV(file)
	if err != nil {
		return nil, fmt.Errorf("read roster %s: %w", path, err)
	}
	return members, nil
}

// ReadCSV reads roster members from CSV data with a header row.
func ReadCSV(r io.Reader) ([]Member, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty roster file")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"full_name", "legislature_id"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}

	field := func(record []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var members []Member
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		fullName := field(record, "full_name")
		if fullName == "" {
			continue
		}
		members = append(members, Member{
			FullName:      fullName,
			OtherNames:    field(record, "other_names"),
			PartyID:       field(record, "party_id"),
			Gender:        field(record, "gender"),
			DistrictID:    field(record, "district_id"),
			LegislatureID: field(record, "legislature_id"),
		})
	}
	return members, nil
}
