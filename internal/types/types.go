package types

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// TimeLayout is the textual form of every timestamp written to disk.
const TimeLayout = "2006-01-02T15:04:05"

type ColumnKind int

const (
	KindInt ColumnKind = iota
	KindString
	KindText
	KindBool
	KindTime
	KindDecimal
	KindBytes
)

func (k ColumnKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	case KindTime:
		return "time"
	case KindDecimal:
		return "decimal"
	case KindBytes:
		return "bytes"
	default:
		return "unknown"
	}
}

type SchemaColumn struct {
	Name             string
	Kind             ColumnKind
	Size             int // max length for KindString, 0 otherwise
	Nullable         bool
	IsPrimary        bool
	IsUnique         bool
	ForeignKeyTable  string
	ForeignKeyColumn string
}

func (c SchemaColumn) IsForeignKey() bool {
	return c.ForeignKeyTable != ""
}

type SchemaTable struct {
	Name    string
	Columns []SchemaColumn
}

func (t SchemaTable) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

func (t SchemaTable) PrimaryKey() string {
	for _, col := range t.Columns {
		if col.IsPrimary {
			return col.Name
		}
	}
	return ""
}

// Dependencies lists the tables referenced by foreign keys, self references excluded.
func (t SchemaTable) Dependencies() []string {
	var deps []string
	seen := make(map[string]bool)
	for _, col := range t.Columns {
		if !col.IsForeignKey() || col.ForeignKeyTable == t.Name || seen[col.ForeignKeyTable] {
			continue
		}
		seen[col.ForeignKeyTable] = true
		deps = append(deps, col.ForeignKeyTable)
	}
	return deps
}

func (t SchemaTable) FileName() string {
	return t.Name + ".csv"
}

// Record is a generated row whose values line up with its table's columns.
type Record interface {
	Values() []any
}

// Table is a finished batch of rows ready for a writer or loader.
type Table struct {
	Schema SchemaTable
	Rows   [][]any
}

func (t *Table) Name() string {
	return t.Schema.Name
}

func (t *Table) Columns() []string {
	return t.Schema.ColumnNames()
}

func (t *Table) Len() int {
	return len(t.Rows)
}

// BuildTable converts typed records into a Table, rejecting records whose
// value count disagrees with the schema.
func BuildTable[R Record](schema SchemaTable, records []R) (*Table, error) {
	rows := make([][]any, len(records))
	for i, rec := range records {
		values := rec.Values()
		if len(values) != len(schema.Columns) {
			return nil, fmt.Errorf("table %s: record %d has %d values, schema has %d columns",
				schema.Name, i, len(values), len(schema.Columns))
		}
		rows[i] = values
	}
	return &Table{Schema: schema, Rows: rows}, nil
}

// FormatValue renders a value the way it appears in delimited output.
// NULL becomes an empty field and booleans are lowercase.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case *string:
		if val == nil {
			return ""
		}
		return *val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case time.Time:
		return val.UTC().Format(TimeLayout)
	case decimal.Decimal:
		return val.StringFixed(2)
	case []byte:
		return string(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// ParseTime reads a timestamp written by FormatValue.
func ParseTime(s string) (time.Time, error) {
	return time.ParseInLocation(TimeLayout, s, time.UTC)
}
