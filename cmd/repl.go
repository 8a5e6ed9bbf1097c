package cmd

import (
	"github.com/bkendall/husk/repl"
	"github.com/spf13/cobra"
)

// replCmd represents the repl command.
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Run an interactive session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl()
	},
}

func runRepl() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	rt := newRuntime(cfg)
	repl.LoadRuntime(rt)
	return repl.Run(rt, cfg.Prompt, cfg.History)
}

func init() {
	rootCmd.AddCommand(replCmd)
}
