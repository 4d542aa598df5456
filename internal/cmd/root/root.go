// Package root provides the root command for the bibstr CLI.
package root

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bibstr/internal/cmd/completion"
	"github.com/open-cli-collective/bibstr/internal/cmd/configcmd"
	initcmd "github.com/open-cli-collective/bibstr/internal/cmd/init"
	"github.com/open-cli-collective/bibstr/internal/cmd/literal"
	"github.com/open-cli-collective/bibstr/internal/cmd/macro"
	"github.com/open-cli-collective/bibstr/internal/version"
)

// NewCmdRoot creates the root command for bibstr.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bibstr",
		Short: "Work with BibTeX field values that use @string macros",
		Long: `bibstr parses, expands, compares, and rewrites BibTeX field values
built from quoted text, numbers, and @string macro references joined
with #, such as:

  {Proc. of } # jcdl # { 2006}

Macros are kept in the configuration file and managed with the macro
commands.

Get started by running: bibstr init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			configureLogging(cmd.ErrOrStderr(), verbose)
		},
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/bibstr/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "", "output format: table, json, plain (default: from config, else table)")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "log macro resolution details to stderr")

	// Set version template
	cmd.SetVersionTemplate("bibstr version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(literal.Commands()...)
	cmd.AddCommand(macro.NewCmdMacro())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}

// configureLogging installs the default slog handler. Library debug output,
// such as macros left unexpanded, is only shown with --verbose.
func configureLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
