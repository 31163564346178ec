package localstate

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"gitlab.com/algoarena-2025.net/internal/core/ports/primary"
	"gitlab.com/algoarena-2025.net/internal/core/ports/secondary"
	"gitlab.com/algoarena-2025.net/internal/domain"
	querybuilder "gitlab.com/algoarena-2025.net/internal/utils"
)

var _ secondary.LocalStateStore = &localStateStore{}

const (
	keyCredentialToken  = "credential_token"
	keyIdentitySnapshot = "identity_snapshot"
)

const schema = `
CREATE TABLE IF NOT EXISTS session_entries (
	key   TEXT PRIMARY KEY,
	value BLOB NOT NULL
);
CREATE TABLE IF NOT EXISTS submission_cache (
	id            TEXT PRIMARY KEY,
	problem_id    TEXT NOT NULL,
	problem_title TEXT NOT NULL,
	status        TEXT NOT NULL,
	passed        INTEGER NOT NULL,
	total         INTEGER NOT NULL,
	created_at    INTEGER NOT NULL
);
`

// Sealer protects the credential token before it is written to disk.
type Sealer interface {
	Seal(plain []byte) ([]byte, error)
	Open(sealed []byte) ([]byte, error)
}

type localStateStore struct {
	db     *sqlx.DB
	sealer Sealer
	logger primary.Logger
}

// Open opens (or creates) the local state database at path.
func Open(path string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func New(db *sqlx.DB, sealer Sealer, logger primary.Logger) secondary.LocalStateStore {
	return &localStateStore{
		db:     db,
		sealer: sealer,
		logger: logger,
	}
}

func (s *localStateStore) SaveSession(ctx context.Context, token string, identity []byte) error {
	sealed, err := s.sealer.Seal([]byte(token))
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query, args := querybuilder.NewQueryBuilder().
		Insert("key", "value").
		Into("session_entries").
		Values(keyCredentialToken, sealed).
		Values(keyIdentitySnapshot, identity).
		OnConflict("key").
		SetExclude("value").
		Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *localStateStore) LoadSession(ctx context.Context) (string, []byte, error) {
	query, args := querybuilder.NewQueryBuilder().
		Select("key", "value").
		From("session_entries").
		Build()

	var rows []struct {
		Key   string `db:"key"`
		Value []byte `db:"value"`
	}
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil, nil
		}
		return "", nil, err
	}

	var token string
	var identity []byte
	for _, row := range rows {
		switch row.Key {
		case keyCredentialToken:
			plain, err := s.sealer.Open(row.Value)
			if err != nil {
				// Unreadable token: report the entry as absent so the
				// session layer treats the pair as corrupt and wipes it.
				s.logger.Warn("Stored credential token unreadable", "error", err)
				continue
			}
			token = string(plain)
		case keyIdentitySnapshot:
			identity = row.Value
		}
	}
	return token, identity, nil
}

func (s *localStateStore) ClearSession(ctx context.Context) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query, args := querybuilder.NewQueryBuilder().
		Delete("session_entries").
		Where("key IN (?, ?)", keyCredentialToken, keyIdentitySnapshot).
		Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *localStateStore) SaveSubmissions(ctx context.Context, subs []domain.Submission) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query, args := querybuilder.NewQueryBuilder().
		Delete("submission_cache").
		Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	if len(subs) > 0 {
		builder := querybuilder.NewQueryBuilder().
			Insert("id", "problem_id", "problem_title", "status", "passed", "total", "created_at").
			Into("submission_cache")
		for _, sub := range subs {
			// Unix nanoseconds keep the ORDER BY chronological; a
			// textual timestamp does not sort stably across differing
			// fractional-second widths.
			builder = builder.Values(
				sub.ID, sub.Problem.ID, sub.Problem.Title,
				string(sub.Status), sub.TestCasesPassed, sub.TotalTestCases,
				sub.CreatedAt.UnixNano(),
			)
		}
		query, args = builder.OnConflict("id").SetExclude("status", "passed", "total").Build()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *localStateStore) CachedSubmissions(ctx context.Context) ([]domain.Submission, error) {
	query, args := querybuilder.NewQueryBuilder().
		Select("id", "problem_id", "problem_title", "status", "passed", "total", "created_at").
		From("submission_cache").
		OrderBy("created_at", false).
		Build()

	var rows []struct {
		ID           string `db:"id"`
		ProblemID    string `db:"problem_id"`
		ProblemTitle string `db:"problem_title"`
		Status       string `db:"status"`
		Passed       int    `db:"passed"`
		Total        int    `db:"total"`
		CreatedAt    int64  `db:"created_at"`
	}
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	subs := make([]domain.Submission, 0, len(rows))
	for _, row := range rows {
		subs = append(subs, domain.Submission{
			ID:              row.ID,
			Problem:         domain.SubmissionProblem{ID: row.ProblemID, Title: row.ProblemTitle},
			Status:          domain.SubmissionStatus(row.Status),
			TestCasesPassed: row.Passed,
			TotalTestCases:  row.Total,
			CreatedAt:       time.Unix(0, row.CreatedAt).UTC(),
		})
	}
	return subs, nil
}

func (s *localStateStore) Close() error {
	return s.db.Close()
}
