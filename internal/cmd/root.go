// Package cmd implements the mingle command line.
package cmd

import (
	"github.com/spf13/cobra"
)

var version = "dev"

// NewRootCmd creates the root cobra command for mingle.
func NewRootCmd(v string) *cobra.Command {
	version = v

	root := &cobra.Command{
		Use:           "mingle",
		Short:         "Mingle from the terminal",
		Long:          "mingle pins, mingles and messages people, and offers an upgrade when a daily limit is reached.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newPinCmd())
	root.AddCommand(newMingleCmd())
	root.AddCommand(newMessageCmd())
	root.AddCommand(newUpgradeCmd())
	root.AddCommand(newPlansCmd())
	root.AddCommand(newVersionCmd())

	root.PersistentFlags().StringP("config", "c", "", "path to config file")
	root.PersistentFlags().Bool("plain", false, "use the line-based prompt instead of the TUI")

	return root
}
