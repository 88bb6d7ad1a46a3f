// Part of the xyzdb CLI - this file implements the trajectory and archive subcommands.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"xyzdb"
)

var trajectoryOutput string

var trajectoryCmd = &cobra.Command{
	Use:   "trajectory",
	Short: "Export stored conformers as trajectory files",
}

var trajectoryMoleculeCmd = &cobra.Command{
	Use:   "molecule <id>",
	Short: "Write one molecule's conformers to a trajectory file",
	Long:  "Concatenate the molecule's conformer geometries verbatim into one trajectory file. Without --output the filename is derived from the display name.",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrajectoryMolecule,
}

var trajectoryGroupCmd = &cobra.Command{
	Use:   "group <tag>",
	Short: "Write every tagged molecule's conformers to a trajectory file",
	Long:  "Concatenate the conformers of every molecule whose functional-group string contains the tag, retitling each block with the molecule name. Without --output the filename is derived from the tag.",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrajectoryGroup,
}

var archiveCmd = &cobra.Command{
	Use:   "archive <output.zip>",
	Short: "Write a zip archive of the store and all trajectories",
	Args:  cobra.ExactArgs(1),
	RunE:  runArchive,
}

func init() {
	trajectoryCmd.PersistentFlags().StringVarP(&trajectoryOutput, "output", "o", "", "output file path")

	trajectoryCmd.AddCommand(trajectoryMoleculeCmd)
	trajectoryCmd.AddCommand(trajectoryGroupCmd)
}

func runTrajectoryMolecule(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}
	defer func() { _ = s.Close() }()

	return s.CreateTrajectory(args[0], trajectoryOutput)
}

func runTrajectoryGroup(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}
	defer func() { _ = s.Close() }()

	return s.CreateTrajectoryForFunctionalGroup(args[0], trajectoryOutput)
}

func runArchive(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}
	defer func() { _ = s.Close() }()

	return xyzdb.Archive(s, args[0])
}
