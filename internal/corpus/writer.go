package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"hansard/internal/match"
)

// matchColumns are appended after the input columns, in this order.
var matchColumns = []string{
	"speaker_category",
	"speaker_normalized",
	"legislature",
	"matched_name",
	"party_id",
	"gender",
	"district_id",
	"match_level",
	"match_score",
}

// SaveCSV writes matched results to a CSV file. extras is the passthrough
// column list returned by the reader.
func SaveCSV(path string, results []match.Result, extras []string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := WriteCSV(file, results, extras); err != nil {
		file.Close()
		return fmt.Errorf("write output %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}

// WriteCSV writes matched results as CSV: speaker, event_date, the passthrough
// columns, then the match columns. match_score is left empty for levels that
// carry no meaningful score.
func WriteCSV(w io.Writer, results []match.Result, extras []string) error {
	writer := csv.NewWriter(w)

	header := make([]string, 0, 2+len(extras)+len(matchColumns))
	header = append(header, "speaker", "event_date")
	header = append(header, extras...)
	header = append(header, matchColumns...)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	record := make([]string, len(header))
	for _, result := range results {
		record = record[:0]
		record = append(record, result.Speaker, result.EventDate)
		for _, name := range extras {
			record = append(record, result.Extra[name])
		}
		out := result.Outcome
		score := ""
		if out.Level.Scored() {
			score = strconv.FormatFloat(out.Score, 'f', -1, 64)
		}
		record = append(record,
			string(result.Category),
			result.Normalized,
			result.Legislature,
			out.MatchedName,
			out.PartyID,
			out.Gender,
			out.DistrictID,
			string(out.Level),
			score,
		)
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
