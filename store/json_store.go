package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"xyzdb/export"
	"xyzdb/storage"
	"xyzdb/xyz"
)

// jsonFileStore implements the Store interface using a JSON file backend.
type jsonFileStore struct {
	filePath    string
	lockManager *storage.LockManager
	fileLock    *flock.Flock // Cross-process file locking
	data        *storage.StoreData
	// timeFunc is used to get the current time, defaults to time.Now
	// Can be overridden for testing
	timeFunc func() time.Time
}

// newJSONFileStore creates a new JSON file store
func newJSONFileStore(filePath string) (*jsonFileStore, error) {
	// Use a separate lock file to avoid issues with file replacement
	// during save
	lockPath := filePath + ".lock"

	s := &jsonFileStore{
		filePath:    filePath,
		lockManager: storage.NewLockManager(),
		fileLock:    flock.New(lockPath),
		timeFunc:    time.Now,
		data: &storage.StoreData{
			Molecules: []storage.Molecule{},
			Metadata: storage.Metadata{
				Version:   "1.0",
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
		},
	}

	// Try to load existing data with lock
	if err := s.loadWithLock(); err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}

	return s, nil
}

// SetTimeFunc sets a custom time function for testing
func (s *jsonFileStore) SetTimeFunc(fn func() time.Time) {
	_ = s.lockManager.Execute(storage.WriteOperation, func() error {
		s.timeFunc = fn
		return nil
	})
}

// Constants for file locking
const (
	lockTimeout    = 3 * time.Second
	lockMaxRetries = 3
	lockRetryDelay = 100 * time.Millisecond
)

// acquireLock attempts to acquire an exclusive file lock with retry logic
func (s *jsonFileStore) acquireLock(ctx context.Context) error {
	for i := 0; i < lockMaxRetries; i++ {
		locked, err := s.fileLock.TryLockContext(ctx, lockRetryDelay)
		if err != nil {
			return fmt.Errorf("failed to acquire lock: %w", err)
		}
		if locked {
			return nil
		}

		// Wait before retrying
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(lockRetryDelay):
			// Continue to next retry
		}
	}

	return fmt.Errorf("failed to acquire lock after %d attempts", lockMaxRetries)
}

// releaseLock releases the file lock
func (s *jsonFileStore) releaseLock() error {
	return s.fileLock.Unlock()
}

// loadWithLock loads the data file with proper locking
func (s *jsonFileStore) loadWithLock() error {
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	if err := s.acquireLock(ctx); err != nil {
		return err
	}
	defer func() { _ = s.releaseLock() }()

	return s.load()
}

// load reads the JSON file into memory
func (s *jsonFileStore) load() error {
	// No locking here - caller must handle locking

	// Check if file exists
	if _, err := os.Stat(s.filePath); errors.Is(err, os.ErrNotExist) {
		// File doesn't exist yet, that's OK
		return nil
	}

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	// Empty file is OK
	if len(data) == 0 {
		return nil
	}

	var storeData storage.StoreData
	if err := json.Unmarshal(data, &storeData); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	s.data = &storeData
	return nil
}

// saveWithLock saves the data with proper locking
func (s *jsonFileStore) saveWithLock() error {
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	if err := s.acquireLock(ctx); err != nil {
		return err
	}
	defer func() { _ = s.releaseLock() }()

	return s.save()
}

// save writes the in-memory data to the JSON file
func (s *jsonFileStore) save() error {
	// No locking here - caller must handle locking

	s.data.Metadata.UpdatedAt = s.timeFunc()

	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	// Write to file atomically (write to temp file, then rename)
	tmpFile := s.filePath + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	// Rename temp file to actual file (atomic on most filesystems)
	if err := os.Rename(tmpFile, s.filePath); err != nil {
		_ = os.Remove(tmpFile) // Clean up temp file
		return fmt.Errorf("failed to rename file: %w", err)
	}

	return nil
}

// findMolecule returns the index of the molecule with the given id, or -1.
// Linear scan; expected dataset sizes are small.
func (s *jsonFileStore) findMolecule(id string) int {
	for i := range s.data.Molecules {
		if s.data.Molecules[i].ID == id {
			return i
		}
	}
	return -1
}

// MoleculeExists reports whether a molecule with the given id is stored
func (s *jsonFileStore) MoleculeExists(id string) bool {
	var exists bool
	_ = s.lockManager.Execute(storage.ReadOperation, func() error {
		exists = s.findMolecule(id) >= 0
		return nil
	})
	return exists
}

// ConformerExists reports whether the molecule holds the given conformer
func (s *jsonFileStore) ConformerExists(molID, confID string) bool {
	var exists bool
	_ = s.lockManager.Execute(storage.ReadOperation, func() error {
		i := s.findMolecule(molID)
		if i < 0 {
			return nil
		}
		exists = s.data.Molecules[i].Conformer(confID) != nil
		return nil
	})
	return exists
}

// AddMolecule appends a new molecule record without persisting
func (s *jsonFileStore) AddMolecule(name, id, functionalGroups string) error {
	return s.lockManager.Execute(storage.WriteOperation, func() error {
		if s.findMolecule(id) >= 0 {
			return fmt.Errorf("molecule %q: %w", id, ErrDuplicateKey)
		}

		s.data.Molecules = append(s.data.Molecules, storage.Molecule{
			Name:             name,
			ID:               id,
			FunctionalGroups: canonicalTags(functionalGroups),
			Conformers:       []storage.Conformer{},
		})
		return nil
	})
}

// GetMolecule returns a reference to the live record
func (s *jsonFileStore) GetMolecule(id string) (*storage.Molecule, error) {
	var mol *storage.Molecule
	err := s.lockManager.Execute(storage.ReadOperation, func() error {
		i := s.findMolecule(id)
		if i < 0 {
			return fmt.Errorf("molecule %q: %w", id, ErrNotFound)
		}
		mol = &s.data.Molecules[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return mol, nil
}

// DeleteMolecule removes the molecule with the given id. A missing id is a
// soft condition: logged, nothing changes, nil returned.
func (s *jsonFileStore) DeleteMolecule(id string, persist bool) error {
	return s.lockManager.Execute(storage.WriteOperation, func() error {
		i := s.findMolecule(id)
		if i < 0 {
			slog.Warn("molecule not found in store, nothing deleted", "id", id)
			return nil
		}

		// Conformers go with the molecule; there is no cascade check.
		s.data.Molecules = append(s.data.Molecules[:i], s.data.Molecules[i+1:]...)

		if persist {
			return s.saveWithLock()
		}
		return nil
	})
}

// UpdateMoleculeName renames a molecule and persists immediately
func (s *jsonFileStore) UpdateMoleculeName(id, newName string) error {
	return s.lockManager.Execute(storage.WriteOperation, func() error {
		i := s.findMolecule(id)
		if i < 0 {
			return fmt.Errorf("molecule %q: %w", id, ErrNotFound)
		}
		s.data.Molecules[i].Name = newName
		return s.saveWithLock()
	})
}

// UpdateMoleculeID rekeys a molecule and persists immediately
func (s *jsonFileStore) UpdateMoleculeID(oldID, newID string) error {
	return s.lockManager.Execute(storage.WriteOperation, func() error {
		if oldID != newID && s.findMolecule(newID) >= 0 {
			return fmt.Errorf("molecule %q: %w", newID, ErrDuplicateKey)
		}
		i := s.findMolecule(oldID)
		if i < 0 {
			return fmt.Errorf("molecule %q: %w", oldID, ErrNotFound)
		}
		s.data.Molecules[i].ID = newID
		return s.saveWithLock()
	})
}

// AddConformer appends a conformer to the molecule's sequence without
// persisting
func (s *jsonFileStore) AddConformer(molID, confID string, energy float64, xyzBlock string) error {
	return s.lockManager.Execute(storage.WriteOperation, func() error {
		i := s.findMolecule(molID)
		if i < 0 {
			return fmt.Errorf("molecule %q: %w", molID, ErrNotFound)
		}
		mol := &s.data.Molecules[i]
		if mol.Conformer(confID) != nil {
			return fmt.Errorf("conformer %q of molecule %q: %w", confID, molID, ErrDuplicateKey)
		}

		mol.Conformers = append(mol.Conformers, storage.Conformer{
			ID:     confID,
			Energy: energy,
			XYZ:    xyzBlock,
		})
		return nil
	})
}

// DeleteConformer filters out the matching conformer. A missing conformer id
// is silently a no-op, but the operation still persists when asked to.
func (s *jsonFileStore) DeleteConformer(molID, confID string, persist bool) error {
	return s.lockManager.Execute(storage.WriteOperation, func() error {
		i := s.findMolecule(molID)
		if i < 0 {
			return fmt.Errorf("molecule %q: %w", molID, ErrNotFound)
		}

		mol := &s.data.Molecules[i]
		kept := mol.Conformers[:0]
		for _, c := range mol.Conformers {
			if c.ID != confID {
				kept = append(kept, c)
			}
		}
		mol.Conformers = kept

		if persist {
			return s.saveWithLock()
		}
		return nil
	})
}

// SearchByFunctionalGroup returns every molecule whose tag string contains
// tag as a substring
func (s *jsonFileStore) SearchByFunctionalGroup(tag string) []storage.Molecule {
	var result []storage.Molecule
	_ = s.lockManager.Execute(storage.ReadOperation, func() error {
		for _, mol := range s.data.Molecules {
			if strings.Contains(mol.FunctionalGroups, tag) {
				result = append(result, mol)
			}
		}
		return nil
	})
	return result
}

// UpdateFunctionalGroups replaces the tag string and persists immediately
func (s *jsonFileStore) UpdateFunctionalGroups(id, newTags string) error {
	return s.lockManager.Execute(storage.WriteOperation, func() error {
		i := s.findMolecule(id)
		if i < 0 {
			return fmt.Errorf("molecule %q: %w", id, ErrNotFound)
		}
		s.data.Molecules[i].FunctionalGroups = canonicalTags(newTags)
		return s.saveWithLock()
	})
}

// AddFunctionalGroups appends tags to the existing string, canonicalizes and
// persists
func (s *jsonFileStore) AddFunctionalGroups(id, newTags string) error {
	return s.lockManager.Execute(storage.WriteOperation, func() error {
		i := s.findMolecule(id)
		if i < 0 {
			return fmt.Errorf("molecule %q: %w", id, ErrNotFound)
		}
		mol := &s.data.Molecules[i]
		mol.FunctionalGroups = canonicalTags(mol.FunctionalGroups + tagSeparator + newTags)
		return s.saveWithLock()
	})
}

// DeleteFunctionalGroup removes one tag. An unassociated tag is a soft
// condition: logged, nothing changes, nil returned.
func (s *jsonFileStore) DeleteFunctionalGroup(id, tag string, persist bool) error {
	return s.lockManager.Execute(storage.WriteOperation, func() error {
		i := s.findMolecule(id)
		if i < 0 {
			return fmt.Errorf("molecule %q: %w", id, ErrNotFound)
		}

		mol := &s.data.Molecules[i]
		remaining, found := removeTag(mol.FunctionalGroups, tag)
		if !found {
			slog.Warn("functional group not associated with molecule",
				"id", id, "functional_group", tag)
			return nil
		}
		mol.FunctionalGroups = remaining

		if persist {
			return s.saveWithLock()
		}
		return nil
	})
}

// AllMolecules returns the molecules ordered by display name
func (s *jsonFileStore) AllMolecules() []storage.Molecule {
	var result []storage.Molecule
	_ = s.lockManager.Execute(storage.ReadOperation, func() error {
		result = make([]storage.Molecule, len(s.data.Molecules))
		copy(result, s.data.Molecules)
		return nil
	})
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// AllFunctionalGroups returns the deduplicated, sorted union of every
// molecule's tag set
func (s *jsonFileStore) AllFunctionalGroups() []string {
	seen := make(map[string]struct{})
	_ = s.lockManager.Execute(storage.ReadOperation, func() error {
		for _, mol := range s.data.Molecules {
			for _, tag := range splitTags(mol.FunctionalGroups) {
				seen[tag] = struct{}{}
			}
		}
		return nil
	})

	groups := make([]string, 0, len(seen))
	for tag := range seen {
		groups = append(groups, tag)
	}
	sort.Strings(groups)
	return groups
}

// CreateTrajectory writes the molecule's conformer geometries, concatenated
// verbatim, to outputPath. An empty outputPath derives the filename from the
// sanitized display name.
func (s *jsonFileStore) CreateTrajectory(molID, outputPath string) error {
	var path, content string
	err := s.lockManager.Execute(storage.ReadOperation, func() error {
		i := s.findMolecule(molID)
		if i < 0 {
			return fmt.Errorf("molecule %q: %w", molID, ErrNotFound)
		}
		mol := &s.data.Molecules[i]

		path = outputPath
		if path == "" {
			path = export.TrajectoryFilename(mol.Name)
		}
		content = xyz.EncodeTrajectory(mol.Conformers)
		return nil
	})
	if err != nil {
		return err
	}
	return export.WriteTrajectory(path, content)
}

// CreateTrajectoryForFunctionalGroup writes the conformer geometries of every
// molecule whose tag string contains tag, each block retitled with the
// molecule's name. The file is written even when nothing matches.
func (s *jsonFileStore) CreateTrajectoryForFunctionalGroup(tag, outputPath string) error {
	var content strings.Builder
	_ = s.lockManager.Execute(storage.ReadOperation, func() error {
		for _, mol := range s.data.Molecules {
			if !strings.Contains(mol.FunctionalGroups, tag) {
				continue
			}
			for _, c := range mol.Conformers {
				content.WriteString(xyz.EncodeRetitled(mol.Name, c.XYZ))
			}
		}
		return nil
	})

	path := outputPath
	if path == "" {
		path = export.GroupFilename(tag)
	}
	return export.WriteTrajectory(path, content.String())
}

// Path returns the backing document location
func (s *jsonFileStore) Path() string {
	return s.filePath
}

// Save serializes the entire document to the backing file
func (s *jsonFileStore) Save() error {
	return s.lockManager.Execute(storage.WriteOperation, func() error {
		return s.saveWithLock()
	})
}

// Close releases any resources
func (s *jsonFileStore) Close() error {
	return s.lockManager.Execute(storage.WriteOperation, func() error {
		// Data is saved on each persisting operation; just ensure the
		// lock file is cleaned up.
		lockPath := s.filePath + ".lock"
		_ = os.Remove(lockPath)

		return nil
	})
}
