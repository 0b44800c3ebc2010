// Package cli provides the command-line interface for the guessing game.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/robalobadob/guess/internal/config"
	"github.com/robalobadob/guess/internal/game"
	"github.com/robalobadob/guess/internal/session"
)

// Version information (set at build time).
var Version = "0.1.0"

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	return newRootCmd(nil)
}

// newRootCmd builds the root command. A nil picker draws secrets at random.
func newRootCmd(picker game.Picker) *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "guess",
		Short: "Guess the secret number",
		Long: `guess is a terminal number-guessing game.

Pick the largest number you want to play with, then guess the secret
number between 1 and that value. Each guess is answered with "Too small."
or "Too big." until you find it. Type "quit" at any prompt to leave.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromEnv()
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}

			opts := []session.Option{session.WithLogger(cfg.Logger(cmd.ErrOrStderr()))}
			if picker != nil {
				opts = append(opts, session.WithPicker(picker))
			}
			return session.New(cmd.InOrStdin(), cmd.OutOrStdout(), opts...).Run(cmd.Context())
		},
	}

	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Diagnostic log level written to stderr (overrides LOG_LEVEL)")

	return rootCmd
}
