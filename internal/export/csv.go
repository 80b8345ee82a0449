package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Rana718/seedgen/internal/types"
)

// WriteCSV writes a header row followed by one row per record, in order.
func WriteCSV(w io.Writer, table *types.Table) error {
	writer := csv.NewWriter(w)

	columns := table.Columns()
	if err := writer.Write(columns); err != nil {
		return fmt.Errorf("failed to write header for %s: %w", table.Name(), err)
	}

	record := make([]string, len(columns))
	for i, row := range table.Rows {
		for j, value := range row {
			record[j] = types.FormatValue(value)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", table.Name(), i+1, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteCSVFile writes the table to <dir>/<table>.csv and returns the path.
func WriteCSVFile(dir string, table *types.Table) (string, error) {
	filePath := filepath.Join(dir, table.Schema.FileName())
	file, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create CSV file for %s: %w", table.Name(), err)
	}

	if err := WriteCSV(file, table); err != nil {
		file.Close()
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", filePath, err)
	}
	return filePath, nil
}
