// Package cli implements the vectrace command-line interface: a tool that
// replays operation scripts against a vector and reports how its size,
// capacity and buffer reallocations evolve.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	Version = "0.1.0"
)

var (
	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "vectrace",
		Short: "replay and inspect vector growth",
		Long: fmt.Sprintf(`vectrace (v%s)

Replays operation scripts against a growable vector and prints the
elements, size and capacity after every step, together with the buffer
reallocations and element moves the operations caused.`, Version),
		SilenceUsage: true,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of vectrace",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "vectrace v%s\n", Version)
		},
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	// Add Commands
	RootCmd.AddCommand(runCmd)
	RootCmd.AddCommand(growthCmd)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	key := "verbose"
	RootCmd.PersistentFlags().BoolP(key, "v", false, "log every replayed operation to stderr")
}

// Main runs the root command and returns the process exit code.
func Main() int {
	if err := RootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	os.Exit(Main())
}
