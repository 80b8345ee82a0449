package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/seedgen/internal/database/common"
	"github.com/Rana718/seedgen/internal/model"
	"github.com/Rana718/seedgen/internal/schema"
	"github.com/Rana718/seedgen/internal/types"
	_ "github.com/mattn/go-sqlite3"
)

const DefaultBatchSize = common.DefaultBatchSize

type Adapter struct {
	db *sql.DB
	qb squirrel.StatementBuilderType
}

func New() *Adapter {
	return &Adapter{
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

func (s *Adapter) Connect(ctx context.Context, url string) error {
	dbPath := strings.TrimPrefix(url, "sqlite://")
	if !strings.Contains(dbPath, "?") {
		dbPath += "?_foreign_keys=on"
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open SQLite connection: %w", err)
	}

	// A single connection keeps ":memory:" databases alive across calls.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(5 * time.Minute)

	s.db = db
	return nil
}

func (s *Adapter) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Adapter) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Adapter) CreateTables(ctx context.Context, variant model.Variant) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range common.ParseSQLStatements(schema.Script(variant, schema.SQLite)) {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute statement '%s': %w", stmt, err)
		}
	}
	return tx.Commit()
}

// Truncate deletes all rows; SQLite has no TRUNCATE statement.
func (s *Adapter) Truncate(ctx context.Context, tables []string) error {
	for _, name := range tables {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+schema.SQLite.QuoteIdentifier(name)); err != nil {
			return fmt.Errorf("failed to truncate %s: %w", name, err)
		}
	}
	return nil
}

func (s *Adapter) Load(ctx context.Context, table *types.Table, batchSize int) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	n, err := common.InsertBatches(ctx, s.qb, schema.SQLite, table, batchSize, common.TextValue,
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

// Count returns the number of rows in a table.
func (s *Adapter) Count(ctx context.Context, table string) (int, error) {
	query, args, err := s.qb.Select("COUNT(*)").From(schema.SQLite.QuoteIdentifier(table)).ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return n, nil
}
