package cmd

import (
	"github.com/itsmostafa/spidershell/internal/config"
	"github.com/itsmostafa/spidershell/internal/shell"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval <line>...",
	Short: "Evaluate lines without starting the interactive shell",
	Long: `Evaluate each argument as if it were typed at the shell prompt.
Arguments share one session, so an assignment is visible to later arguments.
Processing stops early at exit or quit.`,
	Example: `  spidershell eval "Math.pow(2, 8)"
  spidershell eval "x = 42" "x" vars`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		session, err := shell.NewSession(sessionOptions(cmd, cfg))
		if err != nil {
			return err
		}

		for _, line := range args {
			session.Execute(line)
			if session.State() == shell.StateTerminated {
				break
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
