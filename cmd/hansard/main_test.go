package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hansard/internal/match"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("command %v failed: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestMatchCommandEndToEnd(t *testing.T) {
	dir := t.TempDir()
	rosterPath := writeFile(t, dir, "members.csv",
		"full_name,other_names,party_id,gender,district_id,legislature_id\n"+
			"Pierre Arcand,,PLQ,M,Mont-Royal,42\n"+
			"Mathieu Lévesque,,CAQ,M,Chapleau,42\n"+
			"Sylvain Lévesque,,CAQ,M,Chauveau,42\n")
	transcriptPath := writeFile(t, dir, "debates.csv",
		"speaker,event_date,text\n"+
			"M. Arcand,2019-05-07,Merci.\n"+
			"M. Sylvain Lévesque,2019-05-07,Oui.\n"+
			"M. Lévesque,2019-05-07,En effet.\n"+
			"Des voix,2019-05-07,Bravo!\n")
	outputPath := filepath.Join(dir, "matched.csv")
	configPath := filepath.Join(dir, "absent.toml")

	output := runCommand(t,
		"match", transcriptPath,
		"--roster", rosterPath,
		"--output", outputPath,
		"-c", configPath,
	)
	if !strings.Contains(output, "Wrote 4 rows") {
		t.Errorf("unexpected command output: %q", output)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	csv := string(data)
	if !strings.Contains(csv, "matched_name") {
		t.Errorf("output missing match columns: %q", csv)
	}
	if !strings.Contains(csv, "Pierre Arcand") {
		t.Errorf("deterministic match missing: %q", csv)
	}
	if !strings.Contains(csv, "contextual,99") {
		t.Errorf("ambiguous row should resolve contextually: %q", csv)
	}
	if !strings.Contains(csv, ",crowd,") {
		t.Errorf("crowd row missing: %q", csv)
	}
}

func TestEvaluateCommandEndToEnd(t *testing.T) {
	dir := t.TempDir()
	predictionsPath := writeFile(t, dir, "predictions.csv",
		"speaker,event_date,matched_name\n"+
			"M. Arcand,2019-05-07,Pierre Arcand\n"+
			"M. Paradis,2019-05-07,\n")
	goldPath := writeFile(t, dir, "gold.csv",
		"speaker,event_date,matched_name\n"+
			"M. Arcand,2019-05-07,Pierre Arcand\n"+
			"M. Paradis,2019-05-07,Pierre Paradis\n")

	output := runCommand(t,
		"evaluate",
		"--predictions", predictionsPath,
		"--gold", goldPath,
		"-c", filepath.Join(dir, "absent.toml"),
	)
	if !strings.Contains(output, "precision") || !strings.Contains(output, "missed") {
		t.Errorf("unexpected report: %q", output)
	}
}

func TestLegislaturesDateLookup(t *testing.T) {
	output := runCommand(t, "legislatures", "--date", "2019-05-07",
		"-c", filepath.Join(t.TempDir(), "absent.toml"))
	if strings.TrimSpace(output) != "42" {
		t.Errorf("legislature for 2019-05-07 = %q, want 42", output)
	}
}

func TestRenderLevelSummary(t *testing.T) {
	results := []match.Result{
		{Outcome: match.Outcome{Level: match.LevelDeterministic}},
		{Outcome: match.Outcome{Level: match.LevelDeterministic}},
		{Outcome: match.Outcome{Level: match.LevelCrowd}},
	}
	summary := renderLevelSummary(results)
	if !strings.Contains(summary, "deterministic") || !strings.Contains(summary, "2") {
		t.Errorf("unexpected summary:\n%s", summary)
	}
	if strings.Contains(summary, "fuzzy") {
		t.Errorf("zero-count levels must be omitted:\n%s", summary)
	}
}

func TestRenderTableNumericColumns(t *testing.T) {
	out := renderTable(
		[]string{"Level", "Rows"},
		[][]string{{"deterministic", "2"}, {"total", "1234"}},
		1,
	)
	for _, want := range []string{"deterministic", "1234"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered table missing %q:\n%s", want, out)
		}
	}
	// The short count pads out to the width of the widest value.
	if !strings.Contains(out, "   2") {
		t.Errorf("numeric column is not right aligned:\n%s", out)
	}
	if renderTable(nil, nil) != "" {
		t.Error("expected empty output for a table without headers")
	}
}
