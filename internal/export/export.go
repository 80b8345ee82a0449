package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Rana718/seedgen/internal/database/sqlite"
	"github.com/Rana718/seedgen/internal/model"
	"github.com/Rana718/seedgen/internal/types"
)

const (
	FormatCSV    = "csv"
	FormatJSON   = "json"
	FormatSQLite = "sqlite"

	SQLiteFile = "dataset.db"
)

var Formats = []string{FormatCSV, FormatJSON, FormatSQLite}

// PerformExport writes every table to exportPath in the given format, then the
// manifest. The first failure aborts the export.
func PerformExport(ctx context.Context, exportPath, format string, variant model.Variant, tables []*types.Table, manifest *Manifest) (string, error) {
	if err := os.MkdirAll(exportPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	switch format {
	case FormatCSV:
		if err := exportFiles(exportPath, tables, manifest, WriteCSVFile); err != nil {
			return "", err
		}
	case FormatJSON:
		if err := exportFiles(exportPath, tables, manifest, WriteJSONFile); err != nil {
			return "", err
		}
	case FormatSQLite:
		if err := exportToSQLite(ctx, exportPath, variant, tables, manifest); err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("unsupported export format: %s", format)
	}

	if manifest != nil {
		if _, err := manifest.Write(exportPath); err != nil {
			return "", err
		}
	}
	return exportPath, nil
}

func exportFiles(dir string, tables []*types.Table, manifest *Manifest, write func(string, *types.Table) (string, error)) error {
	for _, table := range tables {
		filePath, err := write(dir, table)
		if err != nil {
			return err
		}
		if manifest != nil {
			if err := manifest.AddTable(table, filePath); err != nil {
				return err
			}
		}
	}
	return nil
}

func exportToSQLite(ctx context.Context, dir string, variant model.Variant, tables []*types.Table, manifest *Manifest) error {
	filePath := filepath.Join(dir, SQLiteFile)
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to replace %s: %w", filePath, err)
	}

	loader := sqlite.New()
	if err := loader.Connect(ctx, "sqlite://"+filePath); err != nil {
		return err
	}
	defer loader.Close()

	if err := loader.CreateTables(ctx, variant); err != nil {
		return err
	}
	for _, table := range tables {
		if _, err := loader.Load(ctx, table, sqlite.DefaultBatchSize); err != nil {
			return err
		}
		if manifest != nil {
			if err := manifest.AddTable(table, filePath); err != nil {
				return err
			}
		}
	}
	return nil
}
