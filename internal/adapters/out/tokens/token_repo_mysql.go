package tokens

import (
	"bearer-auth-api/internal/app/config"
	"bearer-auth-api/internal/app/ports"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
)

// MySQLTokenRepository is a MySQL-backed implementation of ports.TokenRepository.
type MySQLTokenRepository struct {
	db           *sql.DB
	queryTimeout time.Duration
}

// Enforce compile-time conformance to the interface
var _ ports.TokenRepository = (*MySQLTokenRepository)(nil)

// NewMySQLTokenRepository creates the repository and opens a connection pool.
func NewMySQLTokenRepository(cfg config.TokenRepositoryMySqlConfig, bootstrap bool) (*MySQLTokenRepository, error) {
	if cfg.Host == "" || cfg.Port == 0 || cfg.Database == "" || cfg.User == "" {
		return nil, errors.New("invalid MySQL config: host/port/database/user are required")
	}

	dsnExtra := "parseTime=true&charset=utf8mb4,utf8&collation=utf8mb4_unicode_ci"
	if !cfg.IgnoreSSL {
		tlsName, err := registerMySQLTLSFromCA(cfg.SSLCaPath)
		if err != nil {
			return nil, fmt.Errorf("failed to register TLS config: %w", err)
		}
		dsnExtra += "&tls=" + tlsName
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database, dsnExtra)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	repo := &MySQLTokenRepository{
		db:           db,
		queryTimeout: cfg.QueryTimeout,
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

func (s *MySQLTokenRepository) initSchema() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	const q = `CREATE TABLE IF NOT EXISTS token_info (
			digest      VARCHAR(128)  NOT NULL,
			id          VARCHAR(128)  NOT NULL,
			principal   VARCHAR(255)  NOT NULL,
			description VARCHAR(255)  NULL,
			scopes      TEXT          NULL,
			entities    TEXT          NULL,
			expiration  DATETIME      NULL,
			disabled    TINYINT(1)    NOT NULL DEFAULT 0,
			PRIMARY KEY (digest),
			UNIQUE KEY token_info_id_uq (id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`

	_, err := s.db.ExecContext(ctx, q)
	return err
}

func (s *MySQLTokenRepository) Close() error {
	return s.db.Close()
}

func (s *MySQLTokenRepository) HealthCheck() error {
	if err := pingWithTimeout(s.db, time.Second); err != nil {
		return fmt.Errorf("database unhealthy: %w", err)
	}
	return nil
}

func (s *MySQLTokenRepository) GetInfo() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.queryTimeout)
	defer cancel()

	const q = `SELECT version() ver, now() AS now;`
	row := s.db.QueryRowContext(ctx, q)

	var ver, now string
	if err := row.Scan(&ver, &now); err != nil {
		return "", err
	}
	return fmt.Sprintf("Connected to MySQL version: '%s', database time: '%s'", ver, now), nil
}

func (s *MySQLTokenRepository) ListTokens(ctx context.Context) ([]ports.TokenInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	const q = `SELECT ` + tokenColumns + ` FROM token_info ORDER BY id;`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	var out []ports.TokenInfo
	for rows.Next() {
		t, err := scanTokenInfo(rows.Scan, SQLDialectMySQL)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *MySQLTokenRepository) GetTokenByDigest(ctx context.Context, digest string) (ports.TokenInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	const q = `SELECT ` + tokenColumns + ` FROM token_info WHERE digest = ?;`
	row := s.db.QueryRowContext(ctx, q, normalizeDigest(digest))
	return scanTokenInfo(row.Scan, SQLDialectMySQL)
}

func (s *MySQLTokenRepository) AddToken(ctx context.Context, token ports.TokenInfo) (ports.TokenInfo, error) {
	if err := validateToken(token); err != nil {
		return ports.TokenInfo{}, err
	}
	token.Digest = normalizeDigest(token.Digest)

	wctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	const q = `INSERT INTO token_info (` + tokenColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?);`
	_, err := s.db.ExecContext(wctx, q,
		token.Digest, token.ID, token.Principal, stringOrNil(token.Description),
		listToColumn(token.Scopes), listToColumn(token.Entities),
		timeOrNil(token.Expiration), boolToInt(token.Disabled),
	)
	if err != nil {
		if isDuplicateMySQL(err) {
			return ports.TokenInfo{}, ports.ErrAlreadyExists
		}
		return ports.TokenInfo{}, err
	}
	return s.GetTokenByDigest(ctx, token.Digest)
}

func (s *MySQLTokenRepository) UpdateToken(ctx context.Context, token ports.TokenInfo) (ports.TokenInfo, error) {
	if err := validateToken(token); err != nil {
		return ports.TokenInfo{}, err
	}
	token.Digest = normalizeDigest(token.Digest)
	if _, err := s.GetTokenByDigest(ctx, token.Digest); err != nil {
		return ports.TokenInfo{}, err
	}

	wctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	// MySQL reports zero affected rows for no-op updates, so existence is checked above.
	const q = `UPDATE token_info
	           SET id = ?, principal = ?, description = ?, scopes = ?, entities = ?, expiration = ?, disabled = ?
	           WHERE digest = ?;`
	_, err := s.db.ExecContext(wctx, q,
		token.ID, token.Principal, stringOrNil(token.Description),
		listToColumn(token.Scopes), listToColumn(token.Entities),
		timeOrNil(token.Expiration), boolToInt(token.Disabled),
		token.Digest,
	)
	if err != nil {
		if isDuplicateMySQL(err) {
			return ports.TokenInfo{}, ports.ErrAlreadyExists
		}
		return ports.TokenInfo{}, err
	}
	return s.GetTokenByDigest(ctx, token.Digest)
}

func (s *MySQLTokenRepository) DeleteToken(ctx context.Context, digest string) error {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
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
