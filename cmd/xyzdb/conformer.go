// Part of the xyzdb CLI - this file implements the 'xyzdb conformer <command>' subcommands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	conformerEnergy float64
	conformerFile   string
)

var conformerCmd = &cobra.Command{
	Use:   "conformer",
	Short: "Conformer record operations",
}

var conformerAddCmd = &cobra.Command{
	Use:   "add <molecule-id> <conformer-id>",
	Short: "Add a conformer geometry to a molecule",
	Long:  "Add a single geometry block, read from the file given with --file, as a new conformer of the molecule.",
	Args:  cobra.ExactArgs(2),
	RunE:  runConformerAdd,
}

var conformerDeleteCmd = &cobra.Command{
	Use:   "delete <molecule-id> <conformer-id>",
	Short: "Delete a conformer from a molecule",
	Args:  cobra.ExactArgs(2),
	RunE:  runConformerDelete,
}

func init() {
	conformerAddCmd.Flags().Float64VarP(&conformerEnergy, "energy", "e", 0.0, "conformer energy")
	conformerAddCmd.Flags().StringVarP(&conformerFile, "file", "f", "", "geometry block file (required)")
	_ = conformerAddCmd.MarkFlagRequired("file")

	conformerCmd.AddCommand(conformerAddCmd)
	conformerCmd.AddCommand(conformerDeleteCmd)
}

func runConformerAdd(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(conformerFile)
	if err != nil {
		return fmt.Errorf("failed to read geometry file: %w", err)
	}

	s, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}
	defer func() { _ = s.Close() }()

	if err := s.AddConformer(args[0], args[1], conformerEnergy, string(content)); err != nil {
		return err
	}
	return s.Save()
}

func runConformerDelete(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}
	defer func() { _ = s.Close() }()

	return s.DeleteConformer(args[0], args[1], true)
}
