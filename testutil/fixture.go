// Package testutil provides shared fixtures for xyzdb tests.
package testutil

import (
	"fmt"
	"path/filepath"
	"testing"

	"xyzdb/store"
)

// Geometry blocks used across the test suite. Each is a complete block:
// atom count line, comment line, coordinate lines, trailing newline.
const (
	WaterBlock = "3\nwater energy=-76.4\nO 0.000 0.000 0.117\nH 0.000 0.757 -0.471\nH 0.000 -0.757 -0.471\n"

	WaterBlockShifted = "3\nwater shifted\nO 0.000 0.000 1.117\nH 0.000 0.757 0.529\nH 0.000 -0.757 0.529\n"

	MethaneBlock = "5\nmethane energy=-40.5\nC 0.000 0.000 0.000\nH 0.629 0.629 0.629\nH -0.629 -0.629 0.629\nH -0.629 0.629 -0.629\nH 0.629 -0.629 -0.629\n"
)

// NewStore returns a store backed by a file in a per-test temp dir.
func NewStore(t *testing.T) store.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "xyzdb.json")
	s, err := store.New(path)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// NewStoreAt returns a store backed by the given file.
func NewStoreAt(t *testing.T, path string) store.Store {
	t.Helper()

	s, err := store.New(path)
	if err != nil {
		t.Fatalf("failed to create store at %s: %v", path, err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// PopulateUniverse fills a store with the standard test molecules:
// water (alcohol-adjacent tags), ethanol and ethylamine.
func PopulateUniverse(t *testing.T, s store.Store) {
	t.Helper()

	add := func(name, id, groups string, blocks ...string) {
		if err := s.AddMolecule(name, id, groups); err != nil {
			t.Fatalf("failed to add molecule %s: %v", id, err)
		}
		for n, block := range blocks {
			confID := fmt.Sprintf("conf%d", n+1)
			if err := s.AddConformer(id, confID, 0.0, block); err != nil {
				t.Fatalf("failed to add conformer to %s: %v", id, err)
			}
		}
	}

	add("water", "O", "oxide", WaterBlock, WaterBlockShifted)
	add("ethanol", "CCO", "alcohol", MethaneBlock)
	add("ethylamine", "CCN", "amine")

	if err := s.Save(); err != nil {
		t.Fatalf("failed to save universe: %v", err)
	}
}
