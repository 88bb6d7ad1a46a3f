package export_test

import (
	"archive/zip"
	"encoding/json"
	"io"
	"path/filepath"
	"testing"

	"xyzdb/export"
	"xyzdb/storage"
)

func TestArchive(t *testing.T) {
	molecules := []storage.Molecule{
		{
			Name:             "acetic acid",
			ID:               "CC(=O)O",
			FunctionalGroups: "acid",
			Conformers: []storage.Conformer{
				{ID: "conf1", Energy: -1.5, XYZ: "2\nfirst\nA 1 1 1\nB 2 2 2\n"},
				{ID: "conf2", Energy: 0.0, XYZ: "2\nsecond\nA 3 3 3\nB 4 4 4\n"},
			},
		},
		{
			Name:             "water",
			ID:               "O",
			FunctionalGroups: "oxide",
		},
	}

	out := filepath.Join(t.TempDir(), "backup.zip")
	if err := export.Archive(molecules, out); err != nil {
		t.Fatalf("archive failed: %v", err)
	}

	reader, err := zip.OpenReader(out)
	if err != nil {
		t.Fatalf("failed to open archive: %v", err)
	}
	defer func() { _ = reader.Close() }()

	entries := make(map[string]string, len(reader.File))
	for _, f := range reader.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open entry %s: %v", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			t.Fatalf("failed to read entry %s: %v", f.Name, err)
		}
		entries[f.Name] = string(content)
	}

	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d: %v", len(entries), keys(entries))
	}

	t.Run("Database", func(t *testing.T) {
		payload, ok := entries["db.json"]
		if !ok {
			t.Fatal("archive missing db.json")
		}
		var data storage.StoreData
		if err := json.Unmarshal([]byte(payload), &data); err != nil {
			t.Fatalf("db.json is not valid JSON: %v", err)
		}
		if len(data.Molecules) != 2 {
			t.Errorf("expected 2 molecules in db.json, got %d", len(data.Molecules))
		}
		if data.Metadata.Version != "1.0" {
			t.Errorf("unexpected metadata version %q", data.Metadata.Version)
		}
	})

	t.Run("Trajectories", func(t *testing.T) {
		// Entry names are id-prefixed sanitized display names.
		got, ok := entries["CC(=O)O-aceticacid.xyz"]
		if !ok {
			t.Fatalf("archive missing trajectory entry, have %v", keys(entries))
		}
		want := "2\nfirst\nA 1 1 1\nB 2 2 2\n2\nsecond\nA 3 3 3\nB 4 4 4\n"
		if got != want {
			t.Errorf("trajectory entry mismatch:\ngot:\n%s\nwant:\n%s", got, want)
		}

		// A molecule without conformers still gets an (empty) entry.
		if empty, ok := entries["O-water.xyz"]; !ok {
			t.Error("archive missing conformer-less trajectory entry")
		} else if empty != "" {
			t.Errorf("expected empty trajectory, got %q", empty)
		}
	})
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
