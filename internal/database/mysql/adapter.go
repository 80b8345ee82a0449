package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/seedgen/internal/database/common"
	"github.com/Rana718/seedgen/internal/model"
	"github.com/Rana718/seedgen/internal/schema"
	"github.com/Rana718/seedgen/internal/types"
	"github.com/go-sql-driver/mysql"
)

type Adapter struct {
	db *sql.DB
	qb squirrel.StatementBuilderType
}

func New() *Adapter {
	return &Adapter{
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

var tlsModes = map[string]string{
	"REQUIRED":        "skip-verify",
	"DISABLED":        "false",
	"VERIFY_CA":       "true",
	"VERIFY_IDENTITY": "true",
	"require":         "skip-verify",
	"disable":         "false",
	"verify-ca":       "true",
	"verify-full":     "true",
}

// DSN converts a mysql:// URL into a driver DSN. Anything else is parsed as a
// DSN already.
func DSN(rawURL string) (string, error) {
	if !strings.HasPrefix(rawURL, "mysql://") {
		cfg, err := mysql.ParseDSN(rawURL)
		if err != nil {
			return "", fmt.Errorf("failed to parse MySQL DSN: %w", err)
		}
		cfg.ParseTime = true
		return cfg.FormatDSN(), nil
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse connection URL: %w", err)
	}

	cfg := mysql.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = u.Host
	cfg.DBName = strings.TrimPrefix(u.Path, "/")
	cfg.ParseTime = true
	if u.User != nil {
		cfg.User = u.User.Username()
		cfg.Passwd, _ = u.User.Password()
	}

	query := u.Query()
	for _, key := range []string{"ssl-mode", "sslmode"} {
		if mode := query.Get(key); mode != "" {
			if tls, ok := tlsModes[mode]; ok {
				cfg.TLSConfig = tls
			}
		}
	}
	return cfg.FormatDSN(), nil
}

func (m *Adapter) Connect(ctx context.Context, rawURL string) error {
	dsn, err := DSN(rawURL)
	if err != nil {
		return err
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return fmt.Errorf("failed to open MySQL connection: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(15 * time.Minute)
	db.SetConnMaxIdleTime(3 * time.Minute)

	m.db = db
	return nil
}

func (m *Adapter) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}

func (m *Adapter) Ping(ctx context.Context) error {
	return m.db.PingContext(ctx)
}

func (m *Adapter) CreateTables(ctx context.Context, variant model.Variant) error {
	for _, stmt := range common.ParseSQLStatements(schema.Script(variant, schema.MySQL)) {
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute statement '%s': %w", stmt, err)
		}
	}
	return nil
}

// Truncate disables foreign key checks on a single connection, since the
// setting is session scoped.
func (m *Adapter) Truncate(ctx context.Context, tables []string) error {
	conn, err := m.db.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, "SET FOREIGN_KEY_CHECKS = 0"); err != nil {
		return err
	}
	defer conn.ExecContext(context.WithoutCancel(ctx), "SET FOREIGN_KEY_CHECKS = 1")

	for _, name := range tables {
		if _, err := conn.ExecContext(ctx, "TRUNCATE TABLE "+schema.MySQL.QuoteIdentifier(name)); err != nil {
			return fmt.Errorf("failed to truncate %s: %w", name, err)
		}
	}
	return nil
}

func (m *Adapter) Load(ctx context.Context, table *types.Table, batchSize int) (int, error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	n, err := common.InsertBatches(ctx, m.qb, schema.MySQL, table, batchSize, common.DBValue,
		func(ctx context.Context, query string, args ...interface{}) error {
			_, err := tx.ExecContext(ctx, query, args...)
			return err
		})
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit %s: %w", table.Name(), err)
	}
	return n, nil
}
