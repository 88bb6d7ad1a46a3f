// Part of the xyzdb CLI - this file implements the 'xyzdb import <command>' subcommands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"xyzdb"
)

var (
	importName       string
	importID         string
	importGroups     string
	importBaseEnergy float64
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Bulk import trajectory files",
}

var importFileCmd = &cobra.Command{
	Use:   "file <path>",
	Short: "Import one trajectory file as a new molecule",
	Long:  "Import a concatenated geometry-block file as one molecule with one conformer per block. Conformer ids are synthesized sequentially.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImportFile,
}

var importManifestCmd = &cobra.Command{
	Use:   "manifest <path>",
	Short: "Import every trajectory file listed in a YAML manifest",
	Args:  cobra.ExactArgs(1),
	RunE:  runImportManifest,
}

func init() {
	importFileCmd.Flags().StringVarP(&importName, "name", "n", "", "display name (required)")
	importFileCmd.Flags().StringVarP(&importID, "id", "i", "", "molecule id (required)")
	importFileCmd.Flags().StringVarP(&importGroups, "groups", "g", "", "comma-separated functional groups")
	importFileCmd.Flags().Float64VarP(&importBaseEnergy, "base-energy", "e", 0.0, "energy for blocks without an energy marker")
	_ = importFileCmd.MarkFlagRequired("name")
	_ = importFileCmd.MarkFlagRequired("id")

	importCmd.AddCommand(importFileCmd)
	importCmd.AddCommand(importManifestCmd)
}

func runImportFile(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}
	defer func() { _ = s.Close() }()

	return xyzdb.ImportFile(s, args[0], importName, importID, importGroups, importBaseEnergy)
}

func runImportManifest(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}
	defer func() { _ = s.Close() }()

	result, err := xyzdb.ImportManifest(s, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d molecule(s)\n", len(result.Imported))
	for _, failure := range result.Failed {
		fmt.Fprintf(os.Stderr, "failed to import %s: %v\n", failure.File, failure.Err)
	}
	if len(result.Failed) > 0 {
		return fmt.Errorf("%d manifest entries failed", len(result.Failed))
	}
	return nil
}
