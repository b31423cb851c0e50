package progress

import (
	"database/sql"
	"strings"
	"time"

	"github.com/petrijr/guidepost/pkg/api"
)

// SQLiteStore is an api.ProgressStore backed by SQLite.
//
// It expects an *sql.DB that uses a SQLite driver (for example,
// "modernc.org/sqlite"). The caller is responsible for importing the
// driver, e.g.:
//
//	import _ "modernc.org/sqlite"
type SQLiteStore struct {
	db *sql.DB
}

// Ensure SQLiteStore implements the interface.
var _ api.ProgressStore = (*SQLiteStore)(nil)

// NewSQLiteStore initializes the required schema in the given database and
// returns a new SQLiteStore.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS tour_progress (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			tour TEXT NOT NULL,
			run TEXT NOT NULL,
			step_id TEXT NOT NULL,
			completed INTEGER NOT NULL,
			at TIMESTAMP NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_tour_progress_tour_step
			ON tour_progress (tour, step_id);`,
	)
	return err
}

func (s *SQLiteStore) MarkShown(tour, run, stepID string) error {
	return s.insert(tour, run, stepID, false)
}

func (s *SQLiteStore) MarkCompleted(tour, run, stepID string) error {
	return s.insert(tour, run, stepID, true)
}

func (s *SQLiteStore) insert(tour, run, stepID string, completed bool) error {
	_, err := s.db.Exec(
		`INSERT INTO tour_progress (tour, run, step_id, completed, at)
		 VALUES (?, ?, ?, ?, ?)`,
		tour, run, stepID, boolToInt(completed), time.Now().UTC(),
	)
	return err
}

func (s *SQLiteStore) Seen(tour, stepID string) (bool, error) {
	var n int
	err := s.db.QueryRow(
		`SELECT COUNT(1) FROM tour_progress WHERE tour = ? AND step_id = ?`,
		tour, stepID,
	).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SQLiteStore) List(f api.ProgressFilter) ([]api.ProgressRecord, error) {
	query := `SELECT tour, run, step_id, completed, at FROM tour_progress`
	var (
		conds []string
		args  []any
	)
	if f.Tour != "" {
		conds = append(conds, "tour = ?")
		args = append(args, f.Tour)
	}
	if f.Run != "" {
		conds = append(conds, "run = ?")
		args = append(args, f.Run)
	}
	if f.Completed != nil {
		conds = append(conds, "completed = ?")
		args = append(args, boolToInt(*f.Completed))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []api.ProgressRecord
	for rows.Next() {
		var (
			r         api.ProgressRecord
			completed int
		)
		if err := rows.Scan(&r.Tour, &r.Run, &r.StepID, &completed, &r.At); err != nil {
			return nil, err
		}
		r.Completed = completed != 0
		out = append(out, r)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
