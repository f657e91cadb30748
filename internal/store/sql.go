package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/go-sql-driver/mysql"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

const (
	resultsTable  = "results"
	progressTable = "progress"
)

var resultColumns = []string{"user_id", "subject", "score", "total_questions", "created_at", "breakdown"}

// SQL is a Store over database/sql, built with ent's dialect-aware query
// builders so the same code serves SQLite and MySQL.
type SQL struct {
	db  *sql.DB
	drv *entsql.Driver
}

// OpenSQLite opens (or creates) the SQLite database at dsn and ensures the
// schema exists.
func OpenSQLite(ctx context.Context, dsn string) (*SQL, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	for _, p := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	} {
		if _, err := db.ExecContext(ctx, p); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}
	return newSQL(ctx, dialect.SQLite, db)
}

// OpenMySQL connects to MySQL. The DSN uses the go-sql-driver format,
// e.g. "user:pass@tcp(localhost:3306)/cortex".
func OpenMySQL(ctx context.Context, dsn string) (*SQL, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse mysql dsn: %w", err)
	}
	if cfg.Params == nil {
		cfg.Params = map[string]string{}
	}
	if _, ok := cfg.Params["charset"]; !ok {
		cfg.Params["charset"] = "utf8mb4"
	}

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("mysql connector: %w", err)
	}
	db := sql.OpenDB(connector)
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}
	return newSQL(ctx, dialect.MySQL, db)
}

func newSQL(ctx context.Context, name string, db *sql.DB) (*SQL, error) {
	s := &SQL{db: db, drv: entsql.OpenDB(name, db)}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *SQL) migrate(ctx context.Context) error {
	var stmts []string
	switch s.drv.Dialect() {
	case dialect.MySQL:
		stmts = []string{
			`CREATE TABLE IF NOT EXISTS results (
				id BIGINT AUTO_INCREMENT PRIMARY KEY,
				user_id VARCHAR(191) NOT NULL,
				subject VARCHAR(64) NOT NULL,
				score INT NOT NULL,
				total_questions INT NOT NULL,
				created_at BIGINT NOT NULL,
				breakdown TEXT NULL,
				INDEX idx_results_user (user_id)
			)`,
			`CREATE TABLE IF NOT EXISTS progress (
				user_id VARCHAR(191) PRIMARY KEY,
				course_id VARCHAR(191) NOT NULL,
				video_id VARCHAR(191) NOT NULL,
				updated_at BIGINT NOT NULL
			)`,
		}
	default:
		stmts = []string{
			`CREATE TABLE IF NOT EXISTS results (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				user_id TEXT NOT NULL,
				subject TEXT NOT NULL,
				score INTEGER NOT NULL,
				total_questions INTEGER NOT NULL,
				created_at INTEGER NOT NULL,
				breakdown TEXT
			)`,
			`CREATE INDEX IF NOT EXISTS idx_results_user ON results (user_id)`,
			`CREATE TABLE IF NOT EXISTS progress (
				user_id TEXT PRIMARY KEY,
				course_id TEXT NOT NULL,
				video_id TEXT NOT NULL,
				updated_at INTEGER NOT NULL
			)`,
		}
	}
	for _, stmt := range stmts {
		if err := s.drv.Exec(ctx, stmt, []any{}, nil); err != nil {
			return err
		}
	}
	return nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *SQL) DB() *sql.DB { return s.db }

func (s *SQL) Close() error { return s.drv.Close() }

func (s *SQL) builder() *entsql.DialectBuilder {
	return entsql.Dialect(s.drv.Dialect())
}

func (s *SQL) AppendResult(ctx context.Context, r TestResult) error {
	var breakdown any
	if len(r.CategoryBreakdown) > 0 {
		b, err := json.Marshal(r.CategoryBreakdown)
		if err != nil {
			return fmt.Errorf("encode breakdown: %w", err)
		}
		breakdown = string(b)
	}

	query, args := s.builder().Insert(resultsTable).
		Columns(resultColumns...).
		Values(r.UserID, r.Subject, r.Score, r.TotalQuestions, r.Timestamp.UnixMilli(), breakdown).
		Query()
	if err := s.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("insert result: %w", err)
	}
	return nil
}

func (s *SQL) ResultsForUser(ctx context.Context, userID string) ([]TestResult, error) {
	t := s.builder().Table(resultsTable)
	sel := s.builder().Select(resultColumns...).
		From(t).
		Where(entsql.EQ("user_id", userID)).
		OrderBy("id")
	return s.queryResults(ctx, sel)
}

func (s *SQL) AllResults(ctx context.Context) ([]TestResult, error) {
	sel := s.builder().Select(resultColumns...).
		From(s.builder().Table(resultsTable)).
		OrderBy("id")
	return s.queryResults(ctx, sel)
}

func (s *SQL) queryResults(ctx context.Context, sel *entsql.Selector) ([]TestResult, error) {
	query, args := sel.Query()
	rows := &entsql.Rows{}
	if err := s.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	out := []TestResult{}
	for rows.Next() {
		var (
			r         TestResult
			createdAt int64
			breakdown sql.NullString
		)
		if err := rows.Scan(&r.UserID, &r.Subject, &r.Score, &r.TotalQuestions, &createdAt, &breakdown); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		r.Timestamp = time.UnixMilli(createdAt).UTC()
		if breakdown.Valid && breakdown.String != "" {
			if err := json.Unmarshal([]byte(breakdown.String), &r.CategoryBreakdown); err != nil {
				return nil, fmt.Errorf("decode breakdown: %w", err)
			}
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQL) SaveProgress(ctx context.Context, p Progress) error {
	query, args := s.builder().Insert(progressTable).
		Columns("user_id", "course_id", "video_id", "updated_at").
		Values(p.UserID, p.CourseID, p.VideoID, p.Timestamp.UnixMilli()).
		OnConflict(entsql.ConflictColumns("user_id"), entsql.ResolveWithNewValues()).
		Query()
	if err := s.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("upsert progress: %w", err)
	}
	return nil
}

func (s *SQL) GetProgress(ctx context.Context, userID string) (*Progress, error) {
	query, args := s.builder().Select("user_id", "course_id", "video_id", "updated_at").
		From(s.builder().Table(progressTable)).
		Where(entsql.EQ("user_id", userID)).
		Limit(1).
		Query()
	rows := &entsql.Rows{}
	if err := s.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	var (
		p         Progress
		updatedAt int64
	)
	if err := rows.Scan(&p.UserID, &p.CourseID, &p.VideoID, &updatedAt); err != nil {
		return nil, fmt.Errorf("scan progress: %w", err)
	}
	p.Timestamp = time.UnixMilli(updatedAt).UTC()
	return &p, nil
}

// DefaultDBPath resolves the SQLite file path in priority order:
// 1. CORTEX_DB environment variable
// 2. $XDG_DATA_HOME/cortex/cortex.db
// 3. ~/.local/share/cortex/cortex.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("CORTEX_DB"); p != "" {
		return p, ensureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "cortex", "cortex.db")
	return p, ensureDir(p)
}

func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
