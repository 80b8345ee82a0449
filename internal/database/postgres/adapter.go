package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Rana718/seedgen/internal/database/common"
	"github.com/Rana718/seedgen/internal/model"
	"github.com/Rana718/seedgen/internal/schema"
	"github.com/Rana718/seedgen/internal/types"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type Adapter struct {
	pool *pgxpool.Pool
}

func New() *Adapter {
	return &Adapter{}
}

func (p *Adapter) Connect(ctx context.Context, url string) error {
	config, err := pgxpool.ParseConfig(url)
	if err != nil {
		return fmt.Errorf("failed to parse connection URL: %w", err)
	}

	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeExec

	config.MaxConns = 2
	config.MinConns = 0
	config.MaxConnLifetime = 15 * time.Minute
	config.MaxConnIdleTime = 3 * time.Minute
	config.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}

	p.pool = pool
	return nil
}

func (p *Adapter) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}

func (p *Adapter) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (p *Adapter) CreateTables(ctx context.Context, variant model.Variant) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, stmt := range common.ParseSQLStatements(schema.Script(variant, schema.PostgreSQL)) {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute statement '%s': %w", stmt, err)
		}
	}

	return tx.Commit(ctx)
}

func (p *Adapter) Truncate(ctx context.Context, tables []string) error {
	if len(tables) == 0 {
		return nil
	}
	quoted := make([]string, len(tables))
	for i, name := range tables {
		quoted[i] = pq.QuoteIdentifier(name)
	}
	query := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", strings.Join(quoted, ", "))
	_, err := p.pool.Exec(ctx, query)
	return err
}

// Load streams the table through COPY; batchSize is unused since COPY has no
// statement parameter limit.
func (p *Adapter) Load(ctx context.Context, table *types.Table, batchSize int) (int, error) {
	rows := make([][]interface{}, len(table.Rows))
	for i, row := range table.Rows {
		values := make([]interface{}, len(row))
		for j, value := range row {
			values[j] = copyValue(value)
		}
		rows[i] = values
	}

	n, err := p.pool.CopyFrom(ctx, pgx.Identifier{table.Name()}, table.Columns(), pgx.CopyFromRows(rows))
	if err != nil {
		return int(n), fmt.Errorf("failed to copy %s: %w", table.Name(), err)
	}
	return int(n), nil
}

func copyValue(v any) any {
	if d, ok := v.(decimal.Decimal); ok {
		return numeric(d)
	}
	return common.DBValue(v)
}

func numeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}
