// Package cmd wires the husk interpreter into a command-line interface.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd represents the bare husk command, which starts an interactive
// session.
var rootCmd = &cobra.Command{
	Use:   "husk",
	Short: "A small lisp interpreter with a managed value heap",
	Long: `husk is an interpreter for a small lisp-family language.  Run it
without arguments for an interactive session, or use the run subcommand to
evaluate files.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default husk.yaml in the working directory)")
}
