package corpus

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"hansard/internal/match"
)

// ErrMissingColumn indicates the transcript CSV lacks the speaker column.
var ErrMissingColumn = errors.New("missing transcript column")

// LoadCSV reads transcript rows from a CSV file with a header row. Besides the
// rows it returns the names of the passthrough columns in header order, for
// the writer to reproduce.
func LoadCSV(path string) ([]match.Row, []string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open transcript: %w", err)
	}
	defer file.Close()

	rows, extras, err := ReadCSV(file)
	if err != nil {
		return nil, nil, fmt.Errorf("read transcript %s: %w", path, err)
	}
	return rows, extras, nil
}

// ReadCSV reads transcript rows from CSV data with a header row. The speaker
// column is required; event_date is optional and defaults to empty. Every
// other column is preserved verbatim as a passthrough field.
func ReadCSV(r io.Reader) ([]match.Row, []string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, errors.New("empty transcript file")
		}
		return nil, nil, fmt.Errorf("read header: %w", err)
	}

	speakerCol, dateCol := -1, -1
	var extras []string
	extraCols := make([]int, 0, len(header))
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "speaker":
			if speakerCol == -1 {
				speakerCol = i
			}
		case "event_date":
			if dateCol == -1 {
				dateCol = i
			}
		default:
			extras = append(extras, strings.TrimSpace(name))
			extraCols = append(extraCols, i)
		}
	}
	if speakerCol == -1 {
		return nil, nil, fmt.Errorf("%w: speaker", ErrMissingColumn)
	}

	field := func(record []string, i int) string {
		if i < 0 || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var rows []match.Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read record: %w", err)
		}
		row := match.Row{
			Speaker:   strings.TrimSpace(field(record, speakerCol)),
			EventDate: strings.TrimSpace(field(record, dateCol)),
		}
		if len(extras) > 0 {
			row.Extra = make(map[string]string, len(extras))
			for j, name := range extras {
				row.Extra[name] = field(record, extraCols[j])
			}
		}
		rows = append(rows, row)
	}
	return rows, extras, nil
}
