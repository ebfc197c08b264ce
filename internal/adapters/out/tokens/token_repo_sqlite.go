package tokens

import (
	"bearer-auth-api/internal/app/config"
	"bearer-auth-api/internal/app/ports"
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Ensure compile-time conformance
var _ ports.TokenRepository = (*SQLiteTokenRepository)(nil)

// SQLiteTokenRepository is a SQLite backed implementation (WAL mode).
type SQLiteTokenRepository struct {
	cfg          config.TokenRepositorySqliteConfig
	db           *sql.DB
	queryTimeout time.Duration
	writeTimeout time.Duration
}

// NewSQLiteTokenRepository opens (and initializes) SQLite database file.
func NewSQLiteTokenRepository(cfg config.TokenRepositorySqliteConfig, bootstrap bool) (*SQLiteTokenRepository, error) {
	if cfg.DbFilePath == "" {
		return nil, fmt.Errorf("%w: sqlite db_file_path is required", ports.ErrInvalidInput)
	}
	if bootstrap && cfg.CreateDbDir {
		dir := filepath.Dir(cfg.DbFilePath)
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("cannot create sqlite dir %s: %w", dir, err)
		}
	}
	writersWait := fmt.Sprintf("%d", cfg.WriteTimeout.Milliseconds())
	dsn := cfg.DbFilePath +
		"?_pragma=journal_mode(WAL)" + // many readers, one writer
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=busy_timeout(" + writersWait + ")" // writers wait instead of erroring

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}

	repo := &SQLiteTokenRepository{
		cfg:          cfg,
		db:           db,
		queryTimeout: cfg.QueryTimeout,
		writeTimeout: cfg.WriteTimeout,
	}

	if bootstrap {
		if err := repo.initSchema(); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	if err := repo.HealthCheck(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return repo, nil
}

func (s *SQLiteTokenRepository) initSchema() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS token_info (
			digest      TEXT PRIMARY KEY,
			id          TEXT NOT NULL,
			principal   TEXT NOT NULL,
			description TEXT,
			scopes      TEXT,    -- JSON array or NULL
			entities    TEXT,    -- JSON array or NULL
			expiration  TEXT,    -- RFC3339 or NULL
			disabled    INTEGER NOT NULL DEFAULT 0 CHECK (disabled IN (0,1))
		);`,

		`CREATE UNIQUE INDEX IF NOT EXISTS idx_token_info_id ON token_info(id);`,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	for _, q := range stmts {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLiteTokenRepository) Close() error {
	return s.db.Close()
}

func (s *SQLiteTokenRepository) HealthCheck() error {
	return pingWithTimeout(s.db, time.Second)
}

func (s *SQLiteTokenRepository) GetInfo() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.queryTimeout)
	defer cancel()

	const q = `SELECT sqlite_version(), datetime('now')`
	row := s.db.QueryRowContext(ctx, q)
	var ver, now string
	if err := row.Scan(&ver, &now); err != nil {
		return "", err
	}
	return fmt.Sprintf("Connected to SQLite (%s) version: '%s', database time: '%s'", s.cfg.DbFilePath, ver, now), nil
}

func (s *SQLiteTokenRepository) ListTokens(ctx context.Context) ([]ports.TokenInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	const q = `SELECT ` + tokenColumns + ` FROM token_info ORDER BY id;`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ports.TokenInfo
	for rows.Next() {
		t, err := scanTokenInfo(rows.Scan, SQLDialectSQLite)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *SQLiteTokenRepository) GetTokenByDigest(ctx context.Context, digest string) (ports.TokenInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	const q = `SELECT ` + tokenColumns + ` FROM token_info WHERE digest = ?;`
	row := s.db.QueryRowContext(ctx, q, normalizeDigest(digest))
	return scanTokenInfo(row.Scan, SQLDialectSQLite)
}

func (s *SQLiteTokenRepository) AddToken(ctx context.Context, token ports.TokenInfo) (ports.TokenInfo, error) {
	if err := validateToken(token); err != nil {
		return ports.TokenInfo{}, err
	}
	token.Digest = normalizeDigest(token.Digest)

	wctx, cancel := context.WithTimeout(ctx, s.writeTimeout)
	defer cancel()

	const q = `INSERT INTO token_info (` + tokenColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?);`
	_, err := s.db.ExecContext(wctx, q,
		token.Digest, token.ID, token.Principal, stringOrNil(token.Description),
		listToColumn(token.Scopes), listToColumn(token.Entities),
		timeToTimeStringOrNil(token.Expiration), boolToInt(token.Disabled),
	)
	if err != nil {
		if isDuplicateSQLite(err) {
			return ports.TokenInfo{}, ports.ErrAlreadyExists
		}
		return ports.TokenInfo{}, err
	}
	return s.GetTokenByDigest(ctx, token.Digest)
}

func (s *SQLiteTokenRepository) UpdateToken(ctx context.Context, token ports.TokenInfo) (ports.TokenInfo, error) {
	if err := validateToken(token); err != nil {
		return ports.TokenInfo{}, err
	}
	token.Digest = normalizeDigest(token.Digest)

	wctx, cancel := context.WithTimeout(ctx, s.writeTimeout)
	defer cancel()

	const q = `UPDATE token_info
	           SET id = ?, principal = ?, description = ?, scopes = ?, entities = ?, expiration = ?, disabled = ?
	           WHERE digest = ?;`
	res, err := s.db.ExecContext(wctx, q,
		token.ID, token.Principal, stringOrNil(token.Description),
		listToColumn(token.Scopes), listToColumn(token.Entities),
		timeToTimeStringOrNil(token.Expiration), boolToInt(token.Disabled),
		token.Digest,
	)
	if err != nil {
		if isDuplicateSQLite(err) {
			return ports.TokenInfo{}, ports.ErrAlreadyExists
		}
		return ports.TokenInfo{}, err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return ports.TokenInfo{}, ports.ErrNotFound
	}
	return s.GetTokenByDigest(ctx, token.Digest)
}

func (s *SQLiteTokenRepository) DeleteToken(ctx context.Context, digest string) error {
	ctx, cancel := context.WithTimeout(ctx, s.writeTimeout)
	defer cancel()

	const q = `DELETE FROM token_info WHERE digest = ?;`
	res, err := s.db.ExecContext(ctx, q, normalizeDigest(digest))
	if err != nil {
		return err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return ports.ErrNotFound
	}
	return nil
}
