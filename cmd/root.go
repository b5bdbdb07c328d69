package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/itsmostafa/spidershell/internal/config"
	"github.com/itsmostafa/spidershell/internal/shell"
	"github.com/itsmostafa/spidershell/internal/version"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// EnvHistory names the environment variable used when --history is unset.
const EnvHistory = "SPIDERSHELL_HISTORY"

var configPath string
var historyFile string
var noBanner bool
var noColor bool
var debug bool

var rootCmd = &cobra.Command{
	Use:   "spidershell",
	Short: "Interactive JavaScript demo shell",
	Long: `spidershell is the interactive demonstration shell of the SpiderMonkey
build integration. It recognises a fixed set of expressions, Math.sqrt and
Math.pow calls, numbers and variable assignments. Type 'help' at the prompt
for the list of commands.`,
	Args: cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// DEBUG in the environment works like --debug
		if _, ok := os.LookupEnv("DEBUG"); ok || debug {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		opts := sessionOptions(cmd, cfg)
		opts.Banner = cfg.Banner && !noBanner

		if isTerminal(cmd.InOrStdin()) && isTerminal(cmd.OutOrStdout()) {
			history := historyFile
			if history == "" {
				history = cfg.HistoryFile
			}
			reader, err := shell.NewReadlineReader(config.ExpandHome(history))
			if err != nil {
				return err
			}
			defer reader.Close()
			opts.Reader = reader
		}

		session, err := shell.NewSession(opts)
		if err != nil {
			return err
		}
		session.Run()
		return nil
	},
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("spidershell %s\n", version.String()))

	// Config and history flags with env var fallback
	rootCmd.PersistentFlags().StringVar(&configPath, "config", os.Getenv(config.EnvConfig), "Path to a YAML config file")
	rootCmd.Flags().StringVar(&historyFile, "history", os.Getenv(EnvHistory), "Line editor history file")

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable styled output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log evaluation traces to stderr")
	rootCmd.Flags().BoolVar(&noBanner, "no-banner", false, "Skip the startup banner")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// sessionOptions builds options shared by every subcommand
func sessionOptions(cmd *cobra.Command, cfg config.Config) shell.Options {
	opts := shell.DefaultOptions()
	opts.Output = cmd.OutOrStdout()
	opts.Input = cmd.InOrStdin()
	opts.NoColor = noColor
	opts.Variables = cfg.Variables
	opts.Logger = slog.Default()
	return opts
}

// isTerminal reports whether stream is an *os.File attached to a terminal
func isTerminal(stream any) bool {
	f, ok := stream.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
