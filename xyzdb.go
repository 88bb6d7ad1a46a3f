// Package xyzdb provides a flat-file record store for chemical structure
// data: molecules, their conformer geometries and functional-group tags,
// persisted as a single JSON document that is rewritten wholesale on every
// mutation.
//
// The store owns the in-memory document and all mutation and query
// operations; the xyz codec converts between stored conformers and the
// concatenated geometry-block trajectory format.
package xyzdb

import (
	"xyzdb/export"
	"xyzdb/imports"
	"xyzdb/store"
	"xyzdb/storage"
)

// Store is the main interface for the molecule store
type Store = store.Store

// Molecule is an alias for storage.Molecule
type Molecule = storage.Molecule

// Conformer is an alias for storage.Conformer
type Conformer = storage.Conformer

// Error taxonomy re-exports

// ErrDuplicateKey indicates a molecule or conformer id collision.
var ErrDuplicateKey = store.ErrDuplicateKey

// ErrNotFound indicates a referenced molecule or conformer is absent.
var ErrNotFound = store.ErrNotFound

// New creates a Store backed by the JSON document at filePath.
// The document is loaded once here and held in memory for the process
// lifetime; a missing file starts an empty store.
func New(filePath string) (Store, error) {
	return store.New(filePath)
}

// Import functions

// ImportResult is an alias for imports.Result
type ImportResult = imports.Result

// ImportFile loads a trajectory file into s as one new molecule, one
// conformer per geometry block.
func ImportFile(s Store, path, name, id, functionalGroups string, baseEnergy float64) error {
	return imports.File(s, path, name, id, functionalGroups, baseEnergy)
}

// ImportManifest imports every entry of a YAML manifest, continuing past
// per-entry failures.
func ImportManifest(s Store, manifestPath string) (*ImportResult, error) {
	return imports.Batch(s, manifestPath)
}

// Archive writes a zip archive of the whole store: the backing document plus
// one trajectory file per molecule.
func Archive(s Store, outputPath string) error {
	return export.Archive(s.AllMolecules(), outputPath)
}
