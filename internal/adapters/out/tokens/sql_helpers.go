package tokens

import (
	"bearer-auth-api/internal/app/ports"
	"context"
	"crypto/tls"
	"crypto/x509"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
)

const tokenColumns = `digest, id, principal, description, scopes, entities, expiration, disabled`

func stringOrNil(s *string) any {
	if s == nil {
		return nil
	}
	if strings.TrimSpace(*s) == "" {
		return nil
	}
	return *s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullStringToPtr(ns sql.NullString) *string {
	if ns.Valid {
		return &ns.String
	}
	return nil
}

func nullTimeToPtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		return &nt.Time
	}
	return nil
}

func nullTimeStringToPtr(ts sql.NullString) *time.Time {
	var expPtr *time.Time
	if ts.Valid && ts.String != "" {
		if t, err := time.Parse(time.RFC3339, strings.TrimSpace(ts.String)); err == nil {
			expPtr = &t
		}
	}
	return expPtr
}

func timeToTimeStringOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

func timeOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}

// listToColumn stores string lists as a JSON array; empty lists as NULL.
func listToColumn(list []string) any {
	if len(list) == 0 {
		return nil
	}
	b, _ := json.Marshal(list)
	return string(b)
}

func columnToList(ns sql.NullString) ([]string, error) {
	if !ns.Valid || ns.String == "" {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(ns.String), &out); err != nil {
		return nil, fmt.Errorf("decode list column: %w", err)
	}
	return out, nil
}

// pingWithTimeout verifies the DB is reachable.
func pingWithTimeout(db *sql.DB, d time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	return db.PingContext(ctx)
}

type SQLDialect string

const (
	SQLDialectMySQL  SQLDialect = "mysql"
	SQLDialectSQLite SQLDialect = "sqlite"
)

// scanTokenInfo maps a single row into ports.TokenInfo for different DB types.
func scanTokenInfo(scan func(dest ...any) error, dialect SQLDialect) (ports.TokenInfo, error) {
	res := ports.TokenInfo{}
	var (
		description sql.NullString
		scopes      sql.NullString
		entities    sql.NullString
		expiration  any
		disabled    int
	)

	if dialect == SQLDialectMySQL {
		expiration = new(sql.NullTime)
	} else {
		expiration = new(sql.NullString)
	}

	if err := scan(&res.Digest, &res.ID, &res.Principal, &description, &scopes, &entities, expiration, &disabled); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return res, ports.ErrNotFound
		}
		return res, err
	}
	res.Description = nullStringToPtr(description)

	var err error
	if res.Scopes, err = columnToList(scopes); err != nil {
		return res, err
	}
	if res.Entities, err = columnToList(entities); err != nil {
		return res, err
	}

	if dialect == SQLDialectMySQL {
		res.Expiration = nullTimeToPtr(*expiration.(*sql.NullTime))
	} else {
		res.Expiration = nullTimeStringToPtr(*expiration.(*sql.NullString))
	}
	res.Disabled = disabled != 0
	return res, nil
}

// validateToken checks a record before it is stored.
func validateToken(t ports.TokenInfo) error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("%w: token id is required", ports.ErrInvalidInput)
	}
	if _, err := ports.DetectHashAlgo(t.Digest); err != nil {
		return fmt.Errorf("%w: token digest must be a hex sha-2 digest", ports.ErrInvalidInput)
	}
	return nil
}

func normalizeDigest(d string) string {
	return strings.ToLower(strings.TrimSpace(d))
}

func isDuplicateSQLite(err error) bool {
	if err == nil {
		return false
	}
	// modernc.org/sqlite returns messages like: "UNIQUE constraint failed: token_info.id"
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint failed")
}

func isDuplicateMySQL(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}

// registerMySQLTLSFromCA registers a custom TLS config using a CA file or directory (PEM).
// Returns the registered TLS profile name to be used via `tls=<name>` in DSN.
func registerMySQLTLSFromCA(caPath string) (string, error) {
	certPool := x509.NewCertPool()

	fi, err := os.Stat(caPath)
	if err != nil {
		return "", fmt.Errorf("stat CA path: %w", err)
	}

	loadFile := func(p string) error {
		pemBytes, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("read CA file %s: %w", p, err)
		}
		if ok := certPool.AppendCertsFromPEM(pemBytes); !ok {
			return fmt.Errorf("no valid certs in %s", p)
		}
		return nil
	}

	if fi.IsDir() {
		entries, err := os.ReadDir(caPath)
		if err != nil {
			return "", fmt.Errorf("read CA dir: %w", err)
		}
		found := false
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			name := e.Name()
			if strings.HasSuffix(name, ".pem") || strings.HasSuffix(name, ".crt") || strings.HasSuffix(name, ".cert") {
				if err := loadFile(filepath.Join(caPath, name)); err != nil {
					return "", err
				}
				found = true
			}
		}
		if !found {
			return "", fmt.Errorf("no PEM files found in %s", caPath)
		}
	} else {
		if err := loadFile(caPath); err != nil {
			return "", err
		}
	}

	const tlsName = "bearer-tokens-mysql"
	if err := mysql.RegisterTLSConfig(tlsName, &tls.Config{
		RootCAs:    certPool,
		MinVersion: tls.VersionTLS12,
	}); err != nil {
		return "", fmt.Errorf("register TLS config: %w", err)
	}
	return tlsName, nil
}
