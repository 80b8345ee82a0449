package schema

import (
	"fmt"
	"strings"

	"github.com/Rana718/seedgen/internal/model"
	"github.com/Rana718/seedgen/internal/types"
)

type Dialect string

const (
	PostgreSQL Dialect = "postgresql"
	MySQL      Dialect = "mysql"
	SQLite     Dialect = "sqlite"
)

func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(name) {
	case "postgresql", "postgres", "pg":
		return PostgreSQL, nil
	case "mysql":
		return MySQL, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	default:
		return "", fmt.Errorf("unsupported dialect: %s", name)
	}
}

// QuoteIdentifier quotes a table or column name for the dialect.
func (d Dialect) QuoteIdentifier(name string) string {
	if d == MySQL {
		return "`" + strings.ReplaceAll(name, "`", "``") + "`"
	}
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (d Dialect) ColumnType(col types.SchemaColumn) string {
	switch col.Kind {
	case types.KindInt:
		if d == MySQL {
			return "INT"
		}
		return "INTEGER"
	case types.KindString:
		if d == SQLite {
			return "TEXT"
		}
		return fmt.Sprintf("VARCHAR(%d)", col.Size)
	case types.KindText:
		return "TEXT"
	case types.KindBool:
		return "BOOLEAN"
	case types.KindTime:
		switch d {
		case MySQL:
			return "DATETIME"
		case SQLite:
			return "TEXT"
		default:
			return "TIMESTAMP"
		}
	case types.KindDecimal:
		switch d {
		case MySQL:
			return "DECIMAL(10,2)"
		case SQLite:
			return "NUMERIC"
		default:
			return "NUMERIC(10,2)"
		}
	case types.KindBytes:
		if d == PostgreSQL {
			return "BYTEA"
		}
		return "BLOB"
	default:
		return "TEXT"
	}
}

func CreateTableSQL(table types.SchemaTable, d Dialect) string {
	var defs []string
	for _, col := range table.Columns {
		def := fmt.Sprintf("    %s %s", d.QuoteIdentifier(col.Name), d.ColumnType(col))
		if !col.Nullable {
			def += " NOT NULL"
		}
		if col.IsPrimary {
			def += " PRIMARY KEY"
		}
		if col.IsUnique {
			def += " UNIQUE"
		}
		defs = append(defs, def)
	}
	for _, col := range table.Columns {
		if !col.IsForeignKey() {
			continue
		}
		defs = append(defs, fmt.Sprintf("    FOREIGN KEY (%s) REFERENCES %s (%s)",
			d.QuoteIdentifier(col.Name),
			d.QuoteIdentifier(col.ForeignKeyTable),
			d.QuoteIdentifier(col.ForeignKeyColumn)))
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n);", d.QuoteIdentifier(table.Name), strings.Join(defs, ",\n"))
}

// Script returns the DDL of every table in the variant, referenced tables first.
func Script(variant model.Variant, d Dialect) string {
	var b strings.Builder
	fmt.Fprintf(&b, "-- %s schema (%s)\n\n", variant.Name, d)
	for i, table := range variant.Tables {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(CreateTableSQL(table, d))
	}
	b.WriteString("\n")
	return b.String()
}
