// Package storage defines the persisted data structures for the molecule
// store and the lock management used by store implementations.
package storage

import "time"

// Conformer is one geometric arrangement of a molecule's atoms.
type Conformer struct {
	// ID is unique within the parent molecule, typically "conf<N>".
	ID string `json:"id"`
	// Energy is the conformer energy as taken from the geometry comment
	// line, or the importer's base energy when no marker was present.
	Energy float64 `json:"energy"`
	// XYZ holds the verbatim geometry block: atom count line, comment
	// line, then one coordinate line per atom.
	XYZ string `json:"xyz"`
}

// Molecule is a named structure with its conformers and functional-group tags.
type Molecule struct {
	// Name is the free-text display name.
	Name string `json:"name"`
	// ID is the unique record key, often a structural notation string.
	ID string `json:"id"`
	// FunctionalGroups is the canonical comma-separated tag string. It is
	// sorted on every write; duplicates are collapsed only on the
	// cross-document aggregation read path.
	FunctionalGroups string `json:"functional_groups"`
	// Conformers is the ordered conformer sequence. No two conformers
	// share an ID.
	Conformers []Conformer `json:"conformers"`
}

// Conformer returns the conformer with the given id, or nil.
func (m *Molecule) Conformer(id string) *Conformer {
	for i := range m.Conformers {
		if m.Conformers[i].ID == id {
			return &m.Conformers[i]
		}
	}
	return nil
}

// StoreData is the root aggregate persisted to the backing file.
// No two molecules share an ID.
type StoreData struct {
	Molecules []Molecule `json:"molecules"`
	Metadata  Metadata   `json:"metadata"`
}

// Metadata contains store metadata.
type Metadata struct {
	Version   string    `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
