package store_test

import (
	"errors"
	"reflect"
	"testing"

	"xyzdb/store"
	"xyzdb/testutil"
)

func TestFunctionalGroupCanonicalization(t *testing.T) {
	s := testutil.NewStore(t)

	t.Run("SortedOnAdd", func(t *testing.T) {
		if err := s.AddMolecule("m1", "id1", "ketone, amine"); err != nil {
			t.Fatal(err)
		}
		mol, err := s.GetMolecule("id1")
		if err != nil {
			t.Fatal(err)
		}
		if mol.FunctionalGroups != "amine, ketone" {
			t.Errorf("expected sorted tags, got %q", mol.FunctionalGroups)
		}
	})

	t.Run("DuplicatesSurviveWrite", func(t *testing.T) {
		// The write path sorts but does not deduplicate.
		if err := s.AddMolecule("m2", "id2", "amine, amine"); err != nil {
			t.Fatal(err)
		}
		mol, err := s.GetMolecule("id2")
		if err != nil {
			t.Fatal(err)
		}
		if mol.FunctionalGroups != "amine, amine" {
			t.Errorf("expected duplicates preserved, got %q", mol.FunctionalGroups)
		}
	})

	t.Run("UpdateFunctionalGroups", func(t *testing.T) {
		if err := s.UpdateFunctionalGroups("id1", "ether, alcohol"); err != nil {
			t.Fatal(err)
		}
		mol, err := s.GetMolecule("id1")
		if err != nil {
			t.Fatal(err)
		}
		if mol.FunctionalGroups != "alcohol, ether" {
			t.Errorf("expected replaced sorted tags, got %q", mol.FunctionalGroups)
		}

		err = s.UpdateFunctionalGroups("nope", "x")
		if !errors.Is(err, store.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("AddFunctionalGroups", func(t *testing.T) {
		if err := s.AddFunctionalGroups("id1", "amide"); err != nil {
			t.Fatal(err)
		}
		mol, err := s.GetMolecule("id1")
		if err != nil {
			t.Fatal(err)
		}
		if mol.FunctionalGroups != "alcohol, amide, ether" {
			t.Errorf("expected merged sorted tags, got %q", mol.FunctionalGroups)
		}
	})

	t.Run("DeleteFunctionalGroup", func(t *testing.T) {
		if err := s.DeleteFunctionalGroup("id1", "amide", true); err != nil {
			t.Fatal(err)
		}
		mol, err := s.GetMolecule("id1")
		if err != nil {
			t.Fatal(err)
		}
		if mol.FunctionalGroups != "alcohol, ether" {
			t.Errorf("expected tag removed, got %q", mol.FunctionalGroups)
		}
	})

	t.Run("DeleteUnassociatedGroupIsSoft", func(t *testing.T) {
		if err := s.DeleteFunctionalGroup("id1", "halide", true); err != nil {
			t.Fatalf("expected soft no-op, got %v", err)
		}
		mol, err := s.GetMolecule("id1")
		if err != nil {
			t.Fatal(err)
		}
		if mol.FunctionalGroups != "alcohol, ether" {
			t.Errorf("tags changed on soft no-op: %q", mol.FunctionalGroups)
		}
	})

	t.Run("DeleteGroupOfMissingMolecule", func(t *testing.T) {
		err := s.DeleteFunctionalGroup("nope", "amine", true)
		if !errors.Is(err, store.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestAllFunctionalGroups(t *testing.T) {
	s := testutil.NewStore(t)

	if err := s.AddMolecule("m1", "id1", "a, b"); err != nil {
		t.Fatal(err)
	}
	if err := s.AddMolecule("m2", "id2", "b, c"); err != nil {
		t.Fatal(err)
	}

	// Deduplicated, sorted union across the whole document.
	got := s.AllFunctionalGroups()
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
