package imports

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"xyzdb/store"
)

// Manifest describes a batch of trajectory files to import.
type Manifest struct {
	// BaseEnergy is the fallback energy for blocks without an energy
	// marker, overridable per entry.
	BaseEnergy float64 `yaml:"base_energy"`
	Entries    []Entry `yaml:"molecules"`
}

// Entry is one molecule to import. File paths are resolved relative to the
// manifest location.
type Entry struct {
	File             string   `yaml:"file"`
	Name             string   `yaml:"name"`
	ID               string   `yaml:"id"`
	FunctionalGroups string   `yaml:"functional_groups"`
	BaseEnergy       *float64 `yaml:"base_energy"`
}

// Result accounts for a manifest import.
type Result struct {
	// Imported lists the molecule ids added, in manifest order.
	Imported []string
	// Failed records entries that could not be imported.
	Failed []Failure
}

// Failure records one entry that could not be imported.
type Failure struct {
	File string
	Err  error
}

// LoadManifest reads and validates a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if len(m.Entries) == 0 {
		return nil, fmt.Errorf("manifest %s lists no molecules", path)
	}
	return &m, nil
}

// Batch imports every entry of the manifest at manifestPath, continuing past
// per-entry failures. Entries without an id get a generated one.
func Batch(s store.Store, manifestPath string) (*Result, error) {
	m, err := LoadManifest(manifestPath)
	if err != nil {
		return nil, err
	}

	baseDir := filepath.Dir(manifestPath)
	result := &Result{}

	for _, entry := range m.Entries {
		id := entry.ID
		if id == "" {
			id = uuid.New().String()
		}

		baseEnergy := m.BaseEnergy
		if entry.BaseEnergy != nil {
			baseEnergy = *entry.BaseEnergy
		}

		path := entry.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}

		if err := File(s, path, entry.Name, id, entry.FunctionalGroups, baseEnergy); err != nil {
			result.Failed = append(result.Failed, Failure{File: entry.File, Err: err})
			continue
		}
		result.Imported = append(result.Imported, id)
	}

	return result, nil
}
