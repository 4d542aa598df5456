// Package configcmd provides config management commands.
package configcmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bibstr/internal/config"
)

// NewCmdConfig creates the config command.
func NewCmdConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage bibstr configuration",
		Long:  `Commands for viewing and clearing bibstr configuration.`,
	}

	cmd.AddCommand(NewCmdShow())
	cmd.AddCommand(NewCmdClear())

	return cmd
}

type configOptions struct {
	configPath string
	noColor    bool
	out        io.Writer
}

func (o *configOptions) bind(cmd *cobra.Command) {
	o.configPath, _ = cmd.Flags().GetString("config")
	o.noColor, _ = cmd.Flags().GetBool("no-color")
	o.out = cmd.OutOrStdout()
}

func (o *configOptions) path() string {
	return config.ResolvePath(o.configPath)
}

func (o *configOptions) writer() io.Writer {
	if o.out != nil {
		return o.out
	}
	return os.Stdout
}

// envVars are the environment variables that override the config file.
var envVars = []string{
	"BIBSTR_CASE_INSENSITIVE",
	"BIBSTR_DIACRITIC_INSENSITIVE",
	"BIBSTR_STRICT",
	"BIBSTR_OUTPUT",
}
