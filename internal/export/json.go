package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Rana718/seedgen/internal/types"
	"github.com/shopspring/decimal"
)

// WriteJSONFile writes the table as an array of objects to <dir>/<table>.json.
// Object keys follow the table's column order.
func WriteJSONFile(dir string, table *types.Table) (string, error) {
	columns := table.Columns()
	records := make([]jsonRecord, len(table.Rows))
	for i, row := range table.Rows {
		records[i] = jsonRecord{columns: columns, values: row}
	}

	jsonData, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s: %w", table.Name(), err)
	}

	filePath := filepath.Join(dir, table.Name()+".json")
	if err := os.WriteFile(filePath, jsonData, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return filePath, nil
}

type jsonRecord struct {
	columns []string
	values  []interface{}
}

func (r jsonRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range r.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		value, err := json.Marshal(jsonValue(r.values[i]))
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", col, err)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func jsonValue(v interface{}) interface{} {
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
	case time.Time:
		return types.FormatValue(val)
	case decimal.Decimal:
		return json.Number(val.StringFixed(2))
	default:
		return val
	}
}
