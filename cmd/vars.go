package cmd

import (
	"github.com/itsmostafa/spidershell/internal/config"
	"github.com/itsmostafa/spidershell/internal/shell"
	"github.com/spf13/cobra"
)

var varsCmd = &cobra.Command{
	Use:   "vars",
	Short: "List the variables a new session starts with",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		session, err := shell.NewSession(sessionOptions(cmd, cfg))
		if err != nil {
			return err
		}
		shell.FormatVariables(cmd.OutOrStdout(), session.Store().List())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(varsCmd)
}
