// Part of the xyzdb CLI - root command, configuration and store loading.
package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"xyzdb"
)

var rootCmd = &cobra.Command{
	Use:   "xyzdb",
	Short: "Molecule conformer store",
	Long:  "xyzdb manages a flat-file store of molecules, their conformer geometries and functional-group tags.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging(viper.GetString("log-level"))
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringP("store", "s", "xyzdb.json", "path to store file")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: debug|info|warn|error")
	_ = viper.BindPFlag("store", rootCmd.PersistentFlags().Lookup("store"))
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))

	// XYZDB_STORE / XYZDB_LOG_LEVEL override the flag defaults
	viper.SetEnvPrefix("XYZDB")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(moleculeCmd)
	rootCmd.AddCommand(conformerCmd)
	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(trajectoryCmd)
	rootCmd.AddCommand(archiveCmd)
}

// openStore loads the store from the configured path
func openStore() (xyzdb.Store, error) {
	path := viper.GetString("store")
	if path == "" {
		return nil, fmt.Errorf("store path is required")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid store path: %w", err)
	}

	return xyzdb.New(absPath)
}
