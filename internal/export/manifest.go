package export

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Rana718/seedgen/internal/types"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const ManifestFile = "manifest.yaml"

// Manifest describes one generated dataset. It carries no wall-clock data so
// that reruns with the same inputs reproduce it byte for byte.
type Manifest struct {
	RunID         string          `yaml:"run_id"`
	Variant       string          `yaml:"variant"`
	Seed          uint64          `yaml:"seed"`
	ReferenceTime string          `yaml:"reference_time"`
	Format        string          `yaml:"format"`
	Tables        []ManifestTable `yaml:"tables"`
}

type ManifestTable struct {
	Name   string `yaml:"name"`
	File   string `yaml:"file"`
	Rows   int    `yaml:"rows"`
	SHA256 string `yaml:"sha256,omitempty"`
}

func NewManifest(variant string, seed uint64, referenceTime time.Time, format string) *Manifest {
	ref := referenceTime.UTC().Format(time.RFC3339)
	name := fmt.Sprintf("seedgen:%s:%d:%s", variant, seed, ref)
	return &Manifest{
		RunID:         uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String(),
		Variant:       variant,
		Seed:          seed,
		ReferenceTime: ref,
		Format:        format,
	}
}

func (m *Manifest) AddTable(table *types.Table, filePath string) error {
	entry := ManifestTable{
		Name: table.Name(),
		File: filepath.Base(filePath),
		Rows: table.Len(),
	}
	if m.Format != FormatSQLite {
		sum, err := fileSHA256(filePath)
		if err != nil {
			return err
		}
		entry.SHA256 = sum
	}
	m.Tables = append(m.Tables, entry)
	return nil
}

func (m *Manifest) Write(dir string) (string, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal manifest: %w", err)
	}
	filePath := filepath.Join(dir, ManifestFile)
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write manifest: %w", err)
	}
	return filePath, nil
}

func ReadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &m, nil
}

func fileSHA256(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	h := sha256.New()
	if _, err := io.Copy(h, file); err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Check compares the files in dir against the recorded checksums and returns
// one message per mismatch.
func (m *Manifest) Check(dir string) []string {
	var problems []string
	for _, table := range m.Tables {
		if table.SHA256 == "" {
			continue
		}
		sum, err := fileSHA256(filepath.Join(dir, table.File))
		if err != nil {
			problems = append(problems, err.Error())
			continue
		}
		if sum != table.SHA256 {
			problems = append(problems, fmt.Sprintf("%s: checksum mismatch", table.File))
		}
	}
	return problems
}
