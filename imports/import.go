// Package imports loads geometry trajectory files into a store.
package imports

import (
	"fmt"
	"io"
	"os"

	"xyzdb/store"
	"xyzdb/xyz"
)

// File imports a trajectory file as one molecule with one conformer per
// geometry block, then persists. All blocks are decoded before the store is
// touched, so a malformed block leaves the document unchanged. Conformer ids
// are synthesized sequentially ("conf1", "conf2", ...) in encounter order;
// ids inside the file, if any, are not consulted. baseEnergy applies to
// blocks whose comment line carries no energy marker.
func File(s store.Store, path, name, id, functionalGroups string, baseEnergy float64) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open geometry file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Reader(s, f, name, id, functionalGroups, baseEnergy)
}

// Reader is File for an arbitrary reader.
func Reader(s store.Store, r io.Reader, name, id, functionalGroups string, baseEnergy float64) error {
	blocks, err := xyz.Decode(r, baseEnergy)
	if err != nil {
		return err
	}

	if err := s.AddMolecule(name, id, functionalGroups); err != nil {
		return err
	}
	for n, block := range blocks {
		if err := s.AddConformer(id, conformerID(n+1), block.Energy, block.Text); err != nil {
			return err
		}
	}

	return s.Save()
}

// conformerID synthesizes the id for the n-th imported block.
func conformerID(n int) string {
	return fmt.Sprintf("conf%d", n)
}
