package common

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/seedgen/internal/schema"
	"github.com/Rana718/seedgen/internal/types"
	"github.com/shopspring/decimal"
)

const DefaultBatchSize = 500

var (
	commentRegex = regexp.MustCompile(`(?m)^\s*--.*$`)
	stringRegex  = regexp.MustCompile(`'(?:[^']|'')*'|"(?:[^"]|"")*"|` + "`(?:[^`]|``)*`")
)

// ParseSQLStatements splits a DDL script on semicolons outside of quoted text.
func ParseSQLStatements(sql string) []string {
	sql = commentRegex.ReplaceAllString(sql, "")

	quoted := make(map[int]bool)
	for _, match := range stringRegex.FindAllStringIndex(sql, -1) {
		for i := match[0]; i < match[1]; i++ {
			quoted[i] = true
		}
	}

	statements := make([]string, 0, strings.Count(sql, ";")+1)
	var current strings.Builder
	flush := func() {
		stmt := strings.TrimSpace(current.String())
		if stmt != "" && !strings.HasPrefix(stmt, "/*") {
			statements = append(statements, stmt)
		}
		current.Reset()
	}

	for i, char := range sql {
		if char == ';' && !quoted[i] {
			flush()
			continue
		}
		current.WriteRune(char)
	}
	flush()

	return statements
}

// DBValue converts a generated value into a driver argument. Absent optional
// strings become NULL and decimals keep two fractional digits.
func DBValue(v any) any {
	switch val := v.(type) {
	case *string:
		if val == nil {
			return nil
		}
		return *val
	case []byte:
		if val == nil {
			return nil
		}
		return val
	case decimal.Decimal:
		return val.StringFixed(2)
	default:
		return v
	}
}

// TextValue is DBValue for drivers without a native timestamp type; times are
// written in the same layout as the CSV files.
func TextValue(v any) any {
	if t, ok := v.(time.Time); ok {
		return types.FormatValue(t)
	}
	return DBValue(v)
}

type ExecFunc func(ctx context.Context, query string, args ...interface{}) error

// InsertBatches renders multi-row INSERT statements of at most batchSize rows
// and hands each one to exec. It returns the number of rows written.
func InsertBatches(ctx context.Context, qb squirrel.StatementBuilderType, d schema.Dialect, table *types.Table, batchSize int, convert func(any) any, exec ExecFunc) (int, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	columns := make([]string, len(table.Columns()))
	for i, name := range table.Columns() {
		columns[i] = d.QuoteIdentifier(name)
	}

	written := 0
	for start := 0; start < len(table.Rows); start += batchSize {
		end := min(start+batchSize, len(table.Rows))

		insert := qb.Insert(d.QuoteIdentifier(table.Name())).Columns(columns...)
		for _, row := range table.Rows[start:end] {
			args := make([]interface{}, len(row))
			for i, value := range row {
				args[i] = convert(value)
			}
			insert = insert.Values(args...)
		}

		query, args, err := insert.ToSql()
		if err != nil {
			return written, fmt.Errorf("failed to build insert for %s: %w", table.Name(), err)
		}
		if err := exec(ctx, query, args...); err != nil {
			return written, fmt.Errorf("failed to insert %s rows %d-%d: %w", table.Name(), start+1, end, err)
		}
		written = end
	}
	return written, nil
}
