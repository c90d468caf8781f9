package runstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"hansard/internal/match"
	"hansard/internal/speaker"
)

// ErrLocked indicates another process holds the store lock.
var ErrLocked = errors.New("run store is locked by another process")

// Run describes one persisted match run.
type Run struct {
	ID             string
	CreatedAt      time.Time
	TranscriptPath string
	RosterPath     string
	Threshold      float64
	RowCount       int
}

// Store manages run persistence backed by SQLite. A sidecar file lock
// serializes writers across processes.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open initializes or connects to the run database at path and verifies the
// schema. The parent directory is created when missing.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure store directory: %w", err)
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire store lock: %w", err)
	}
	if !locked {
		return nil, ErrLocked
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path, lock: lock}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}

	return store, nil
}

// Close releases the file lock and closes the database connection.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var errs []error
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if s.lock != nil {
		if err := s.lock.Unlock(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SaveRun persists a run and all its result rows in one transaction and
// returns the stored run record.
func (s *Store) SaveRun(ctx context.Context, transcriptPath, rosterPath string, threshold float64, results []match.Result) (*Run, error) {
	run := &Run{
		ID:             uuid.NewString(),
		CreatedAt:      time.Now().UTC(),
		TranscriptPath: transcriptPath,
		RosterPath:     rosterPath,
		Threshold:      threshold,
		RowCount:       len(results),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin run tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO runs (id, created_at, transcript_path, roster_path, threshold, row_count)
         VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.CreatedAt.Format(time.RFC3339Nano),
		nullableString(run.TranscriptPath),
		nullableString(run.RosterPath),
		run.Threshold,
		run.RowCount,
	)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}

	insert, err := tx.PrepareContext(
		ctx,
		`INSERT INTO run_rows (
            run_id, seq, speaker, event_date, extra_json,
            speaker_category, speaker_normalized, legislature,
            matched_name, party_id, gender, district_id, match_level, match_score
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return nil, fmt.Errorf("prepare row insert: %w", err)
	}
	defer insert.Close()

	for seq, result := range results {
		extraJSON, err := marshalExtra(result.Extra)
		if err != nil {
			return nil, fmt.Errorf("marshal row %d extras: %w", seq, err)
		}
		out := result.Outcome
		var score any
		if out.Level.Scored() {
			score = out.Score
		}
		if _, err := insert.ExecContext(
			ctx,
			run.ID,
			seq,
			result.Speaker,
			nullableString(result.EventDate),
			extraJSON,
			string(result.Category),
			nullableString(result.Normalized),
			nullableString(result.Legislature),
			nullableString(out.MatchedName),
			nullableString(out.PartyID),
			nullableString(out.Gender),
			nullableString(out.DistrictID),
			string(out.Level),
			score,
		); err != nil {
			return nil, fmt.Errorf("insert row %d: %w", seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit run: %w", err)
	}
	return run, nil
}

// ListRuns returns all stored runs, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]*Run, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+runColumns+` FROM runs ORDER BY created_at DESC, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetRun fetches a run by identifier. It returns nil when no run matches.
func (s *Store) GetRun(ctx context.Context, id string) (*Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	return run, nil
}

// RunResults reconstructs the stored result rows of a run in original order.
func (s *Store) RunResults(ctx context.Context, id string) ([]match.Result, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT speaker, event_date, extra_json,
                speaker_category, speaker_normalized, legislature,
                matched_name, party_id, gender, district_id, match_level, match_score
         FROM run_rows WHERE run_id = ? ORDER BY seq`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("query run rows: %w", err)
	}
	defer rows.Close()

	var results []match.Result
	for rows.Next() {
		var (
			speakerLabel string
			eventDate    sql.NullString
			extraJSON    sql.NullString
			category     string
			normalized   sql.NullString
			legislature  sql.NullString
			matchedName  sql.NullString
			partyID      sql.NullString
			gender       sql.NullString
			districtID   sql.NullString
			level        string
			score        sql.NullFloat64
		)
		if err := rows.Scan(
			&speakerLabel,
			&eventDate,
			&extraJSON,
			&category,
			&normalized,
			&legislature,
			&matchedName,
			&partyID,
			&gender,
			&districtID,
			&level,
			&score,
		); err != nil {
			return nil, fmt.Errorf("scan run row: %w", err)
		}

		extra, err := unmarshalExtra(extraJSON)
		if err != nil {
			return nil, fmt.Errorf("unmarshal row extras: %w", err)
		}
		results = append(results, match.Result{
			Row: match.Row{
				Speaker:   speakerLabel,
				EventDate: eventDate.String,
				Extra:     extra,
			},
			Category:    speaker.Category(category),
			Normalized:  normalized.String,
			Legislature: legislature.String,
			Outcome: match.Outcome{
				MatchedName: matchedName.String,
				PartyID:     partyID.String,
				Gender:      gender.String,
				DistrictID:  districtID.String,
				Level:       match.Level(level),
				Score:       score.Float64,
			},
		})
	}
	return results, rows.Err()
}

// DeleteRun removes a run and its rows. It reports whether a run was deleted.
func (s *Store) DeleteRun(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete run: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

const runColumns = "id, created_at, transcript_path, roster_path, threshold, row_count"

func scanRun(scanner interface{ Scan(dest ...any) error }) (*Run, error) {
	var (
		id         string
		createdRaw string
		transcript sql.NullString
		roster     sql.NullString
		threshold  float64
		rowCount   int
	)
	if err := scanner.Scan(&id, &createdRaw, &transcript, &roster, &threshold, &rowCount); err != nil {
		return nil, err
	}

	run := &Run{
		ID:             id,
		TranscriptPath: transcript.String,
		RosterPath:     roster.String,
		Threshold:      threshold,
		RowCount:       rowCount,
	}
	if created, err := time.Parse(time.RFC3339Nano, createdRaw); err == nil {
		run.CreatedAt = created
	}
	return run, nil
}

func marshalExtra(extra map[string]string) (any, error) {
	if len(extra) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(extra)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func unmarshalExtra(raw sql.NullString) (map[string]string, error) {
	if !raw.Valid || raw.String == "" {
		return nil, nil
	}
	extra := make(map[string]string)
	if err := json.Unmarshal([]byte(raw.String), &extra); err != nil {
		return nil, err
	}
	return extra, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
