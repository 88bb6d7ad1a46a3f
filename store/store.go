// Package store implements the molecule record store backed by a single JSON
// document that is rewritten wholesale on every persist.
package store

import (
	"xyzdb/storage"
)

// Store is the authoritative owner of the in-memory molecule document and of
// every mutation and query operation over it. Operations that take a persist
// flag rewrite the backing file unless suppressed; the update operations
// persist unconditionally.
type Store interface {
	// MoleculeExists reports whether a molecule with the given id is stored.
	MoleculeExists(id string) bool

	// ConformerExists reports whether the molecule exists and holds the
	// given conformer.
	ConformerExists(molID, confID string) bool

	// AddMolecule appends a new molecule record. The functional-group
	// string is canonicalized (split, sorted, rejoined). It does not
	// persist by itself; the caller decides when to Save.
	// Fails with ErrDuplicateKey when the id is already present.
	AddMolecule(name, id, functionalGroups string) error

	// GetMolecule returns a reference to the live record; mutation through
	// it affects the document until the next persist.
	// Fails with ErrNotFound when the id is absent.
	GetMolecule(id string) (*storage.Molecule, error)

	// DeleteMolecule removes the molecule with the given id, silently
	// dropping its conformers. A missing id is a soft condition: a notice
	// is logged and nothing changes. Persists unless suppressed.
	DeleteMolecule(id string, persist bool) error

	// UpdateMoleculeName renames a molecule and persists immediately.
	// Fails with ErrNotFound when the id is absent.
	UpdateMoleculeName(id, newName string) error

	// UpdateMoleculeID rekeys a molecule and persists immediately.
	// Fails with ErrNotFound when oldID is absent and with ErrDuplicateKey
	// when newID is already taken.
	UpdateMoleculeID(oldID, newID string) error

	// AddConformer appends a conformer to the molecule's sequence. It does
	// not persist by itself. Fails with ErrNotFound when the molecule is
	// absent and ErrDuplicateKey when the conformer id is already present.
	AddConformer(molID, confID string, energy float64, xyzBlock string) error

	// DeleteConformer filters out the matching conformer. A missing
	// conformer id is silently a no-op; a missing molecule fails with
	// ErrNotFound. Persists unless suppressed.
	DeleteConformer(molID, confID string, persist bool) error

	// SearchByFunctionalGroup returns every molecule whose functional-group
	// string contains tag as a substring (not an exact-token match).
	SearchByFunctionalGroup(tag string) []storage.Molecule

	// UpdateFunctionalGroups replaces the tag string, canonicalizes it and
	// persists immediately. Fails with ErrNotFound when the id is absent.
	UpdateFunctionalGroups(id, newTags string) error

	// AddFunctionalGroups appends tags to the existing string, then
	// canonicalizes and persists. Fails with ErrNotFound when absent.
	AddFunctionalGroups(id, newTags string) error

	// DeleteFunctionalGroup removes one tag. An unassociated tag is a soft
	// condition: a notice is logged and nothing changes. A missing molecule
	// fails with ErrNotFound. Persists unless suppressed.
	DeleteFunctionalGroup(id, tag string, persist bool) error

	// AllMolecules returns the molecules ordered by display name
	// (stable, case-sensitive lexicographic).
	AllMolecules() []storage.Molecule

	// AllFunctionalGroups returns the deduplicated, sorted union of every
	// molecule's tag set.
	AllFunctionalGroups() []string

	// CreateTrajectory writes every conformer geometry of the molecule,
	// concatenated verbatim, to outputPath. An empty outputPath derives the
	// filename from the sanitized display name. Fails with ErrNotFound when
	// the molecule is absent.
	CreateTrajectory(molID, outputPath string) error

	// CreateTrajectoryForFunctionalGroup writes the geometry of every
	// conformer of every molecule whose tag string contains tag, with each
	// block's comment line replaced by a "Molecule: <name>" line. An empty
	// outputPath derives the filename from the tag.
	CreateTrajectoryForFunctionalGroup(tag, outputPath string) error

	// Path returns the backing document location.
	Path() string

	// Save serializes the entire document to the backing file, overwriting
	// it completely.
	Save() error

	// Close releases the store's lock file.
	Close() error
}

// New creates a Store backed by the JSON document at filePath. The document
// is loaded once here and held in memory; a missing file starts an empty
// store.
func New(filePath string) (Store, error) {
	return newJSONFileStore(filePath)
}
