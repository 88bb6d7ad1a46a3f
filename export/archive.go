package export

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"xyzdb/storage"
	"xyzdb/xyz"
)

// databaseFilename is the name of the backing-document entry in an archive.
const databaseFilename = "db.json"

// Archive writes a zip archive containing the backing document plus one
// trajectory file per molecule. Trajectory entries are prefixed with the
// molecule id so two molecules with colliding sanitized names stay distinct.
func Archive(molecules []storage.Molecule, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create archive file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close archive file: %v\n", err)
		}
	}()

	zipWriter := zip.NewWriter(file)
	defer func() {
		if err := zipWriter.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close zip writer: %v\n", err)
		}
	}()

	now := time.Now()

	if err := addDatabaseToZip(zipWriter, molecules, now); err != nil {
		return fmt.Errorf("failed to add database to zip: %w", err)
	}

	for _, mol := range molecules {
		if err := addTrajectoryToZip(zipWriter, mol, now); err != nil {
			return fmt.Errorf("failed to add molecule %s to zip: %w", mol.ID, err)
		}
	}

	return nil
}

// addDatabaseToZip adds the backing document to the zip archive
func addDatabaseToZip(zipWriter *zip.Writer, molecules []storage.Molecule, now time.Time) error {
	header := &zip.FileHeader{
		Name:     databaseFilename,
		Method:   zip.Deflate,
		Modified: now,
	}

	writer, err := zipWriter.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("failed to create database file in zip: %w", err)
	}

	data := storage.StoreData{
		Molecules: molecules,
		Metadata: storage.Metadata{
			Version:   "1.0",
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal database contents: %w", err)
	}

	if _, err := writer.Write(payload); err != nil {
		return fmt.Errorf("failed to write database contents: %w", err)
	}

	return nil
}

// addTrajectoryToZip adds one molecule's trajectory to the zip archive
func addTrajectoryToZip(zipWriter *zip.Writer, mol storage.Molecule, now time.Time) error {
	header := &zip.FileHeader{
		Name:     mol.ID + "-" + TrajectoryFilename(mol.Name),
		Method:   zip.Deflate,
		Modified: now,
	}

	writer, err := zipWriter.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("failed to create trajectory file in zip: %w", err)
	}

	if _, err := writer.Write([]byte(xyz.EncodeTrajectory(mol.Conformers))); err != nil {
		return fmt.Errorf("failed to write trajectory content: %w", err)
	}

	return nil
}
