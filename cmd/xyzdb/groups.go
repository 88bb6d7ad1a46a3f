// Part of the xyzdb CLI - this file implements the 'xyzdb groups <command>' subcommands.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Functional-group tag operations",
}

var groupsSetCmd = &cobra.Command{
	Use:   "set <molecule-id> <groups>",
	Short: "Replace a molecule's functional groups",
	Args:  cobra.ExactArgs(2),
	RunE:  runGroupsSet,
}

var groupsAddCmd = &cobra.Command{
	Use:   "add <molecule-id> <groups>",
	Short: "Add functional groups to a molecule",
	Args:  cobra.ExactArgs(2),
	RunE:  runGroupsAdd,
}

var groupsDeleteCmd = &cobra.Command{
	Use:   "delete <molecule-id> <group>",
	Short: "Remove one functional group from a molecule",
	Args:  cobra.ExactArgs(2),
	RunE:  runGroupsDelete,
}

var groupsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every functional group in the store",
	Args:  cobra.NoArgs,
	RunE:  runGroupsList,
}

var groupsSearchCmd = &cobra.Command{
	Use:   "search <tag>",
	Short: "List molecules whose groups contain the tag",
	Long:  "List every molecule whose functional-group string contains the tag as a substring.",
	Args:  cobra.ExactArgs(1),
	RunE:  runGroupsSearch,
}

func init() {
	groupsCmd.AddCommand(groupsSetCmd)
	groupsCmd.AddCommand(groupsAddCmd)
	groupsCmd.AddCommand(groupsDeleteCmd)
	groupsCmd.AddCommand(groupsListCmd)
	groupsCmd.AddCommand(groupsSearchCmd)
}

func runGroupsSet(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}
	defer func() { _ = s.Close() }()

	return s.UpdateFunctionalGroups(args[0], args[1])
}

func runGroupsAdd(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}
	defer func() { _ = s.Close() }()

	return s.AddFunctionalGroups(args[0], args[1])
}

func runGroupsDelete(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}
	defer func() { _ = s.Close() }()

	return s.DeleteFunctionalGroup(args[0], args[1], true)
}

func runGroupsList(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}
	defer func() { _ = s.Close() }()

	for _, tag := range s.AllFunctionalGroups() {
		fmt.Println(tag)
	}
	return nil
}

func runGroupsSearch(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}
	defer func() { _ = s.Close() }()

	for _, mol := range s.SearchByFunctionalGroup(args[0]) {
		fmt.Printf("Name: %s, ID: %s, Functional Groups: %s\n",
			mol.Name, mol.ID, mol.FunctionalGroups)
	}
	return nil
}
