// Package evaluate scores matcher output against a gold standard keyed by
// speaker and event date.
package evaluate

import "strings"

// Class is the judgment for one scored row.
type Class string

const (
	// ClassTruePositive means the predicted name equals the gold name.
	ClassTruePositive Class = "true_positive"
	// ClassTrueNegative means neither side names a member.
	ClassTrueNegative Class = "true_negative"
	// ClassWrongMatch means a member was named but it is the wrong one.
	ClassWrongMatch Class = "wrong_match"
	// ClassFalsePositive means a member was named where gold has none.
	ClassFalsePositive Class = "false_positive"
	// ClassMissed means gold names a member but the prediction does not.
	ClassMissed Class = "missed"
)

// Row is one labelled row: the raw speaker, the sitting date, and the matched
// display name. An empty MatchedName means no member was established.
type Row struct {
	Speaker     string
	EventDate   string
	MatchedName string
}

// Report aggregates judgments over a prediction set. Skipped counts prediction
// rows with no gold entry for their (speaker, event_date) key.
type Report struct {
	Counts  map[Class]int
	Skipped int
	Scored  int

	Precision float64
	Recall    float64
	F1        float64
}

type rowKey struct {
	speaker   string
	eventDate string
}

func keyOf(r Row) rowKey {
	return rowKey{
		speaker:   strings.ToLower(strings.TrimSpace(r.Speaker)),
		eventDate: strings.TrimSpace(r.EventDate),
	}
}

// Evaluate judges every prediction against the gold standard and computes
// precision, recall and F1 over the member-naming rows. Name comparison is
// case-insensitive. When the same key appears twice in gold, the last entry
// wins.
func Evaluate(predictions, gold []Row) Report {
	truth := make(map[rowKey]string, len(gold))
	for _, g := range gold {
		truth[keyOf(g)] = strings.TrimSpace(g.MatchedName)
	}

	report := Report{Counts: make(map[Class]int)}
	for _, p := range predictions {
		want, ok := truth[keyOf(p)]
		if !ok {
			report.Skipped++
			continue
		}
		report.Scored++
		report.Counts[judge(strings.TrimSpace(p.MatchedName), want)]++
	}

	tp := report.Counts[ClassTruePositive]
	wrong := report.Counts[ClassWrongMatch]
	spurious := report.Counts[ClassFalsePositive]
	missed := report.Counts[ClassMissed]

	if predicted := tp + wrong + spurious; predicted > 0 {
		report.Precision = float64(tp) / float64(predicted)
	}
	if actual := tp + wrong + missed; actual > 0 {
		report.Recall = float64(tp) / float64(actual)
	}
	if report.Precision+report.Recall > 0 {
		report.F1 = 2 * report.Precision * report.Recall / (report.Precision + report.Recall)
	}
	return report
}

func judge(got, want string) Class {
	switch {
	case got == "" && want == "":
		return ClassTrueNegative
	case got == "":
		return ClassMissed
	case want == "":
		return ClassFalsePositive
	case strings.EqualFold(got, want):
		return ClassTruePositive
	default:
		return ClassWrongMatch
	}
}
