// Part of the xyzdb CLI - this file implements the 'xyzdb molecule <command>' subcommands.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	moleculeName   string
	moleculeGroups string
)

var moleculeCmd = &cobra.Command{
	Use:   "molecule",
	Short: "Molecule record operations",
}

var moleculeAddCmd = &cobra.Command{
	Use:   "add <id>",
	Short: "Add a molecule record",
	Args:  cobra.ExactArgs(1),
	RunE:  runMoleculeAdd,
}

var moleculeDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a molecule and its conformers",
	Args:  cobra.ExactArgs(1),
	RunE:  runMoleculeDelete,
}

var moleculeRenameCmd = &cobra.Command{
	Use:   "rename <id> <new-name>",
	Short: "Change a molecule's display name",
	Args:  cobra.ExactArgs(2),
	RunE:  runMoleculeRename,
}

var moleculeSetIDCmd = &cobra.Command{
	Use:   "set-id <old-id> <new-id>",
	Short: "Change a molecule's identifier",
	Args:  cobra.ExactArgs(2),
	RunE:  runMoleculeSetID,
}

var moleculeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all molecules ordered by name",
	Args:  cobra.NoArgs,
	RunE:  runMoleculeList,
}

func init() {
	moleculeAddCmd.Flags().StringVarP(&moleculeName, "name", "n", "", "display name (required)")
	moleculeAddCmd.Flags().StringVarP(&moleculeGroups, "groups", "g", "", "comma-separated functional groups")
	_ = moleculeAddCmd.MarkFlagRequired("name")

	moleculeCmd.AddCommand(moleculeAddCmd)
	moleculeCmd.AddCommand(moleculeDeleteCmd)
	moleculeCmd.AddCommand(moleculeRenameCmd)
	moleculeCmd.AddCommand(moleculeSetIDCmd)
	moleculeCmd.AddCommand(moleculeListCmd)
}

func runMoleculeAdd(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}
	defer func() { _ = s.Close() }()

	if err := s.AddMolecule(moleculeName, args[0], moleculeGroups); err != nil {
		return err
	}
	return s.Save()
}

func runMoleculeDelete(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}
	defer func() { _ = s.Close() }()

	return s.DeleteMolecule(args[0], true)
}

func runMoleculeRename(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}
	defer func() { _ = s.Close() }()

	return s.UpdateMoleculeName(args[0], args[1])
}

func runMoleculeSetID(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}
	defer func() { _ = s.Close() }()

	return s.UpdateMoleculeID(args[0], args[1])
}

func runMoleculeList(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}
	defer func() { _ = s.Close() }()

	for _, mol := range s.AllMolecules() {
		fmt.Printf("Name: %s, ID: %s, Functional Groups: %s\n",
			mol.Name, mol.ID, mol.FunctionalGroups)
	}
	return nil
}
