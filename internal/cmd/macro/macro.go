// Package macro provides commands for managing the macro definitions
// stored in the configuration file.
package macro

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bibstr/internal/config"
	"github.com/open-cli-collective/bibstr/internal/view"
)

// NewCmdMacro creates the macro command.
func NewCmdMacro() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "macro",
		Aliases: []string{"macros"},
		Short:   "Manage macro definitions",
		Long: `Commands for listing, adding, removing, and renaming the @string macros
that bibstr uses to expand BibTeX values.

Definitions are stored in BibTeX syntax in the configuration file.`,
	}

	cmd.AddCommand(NewCmdList())
	cmd.AddCommand(NewCmdAdd())
	cmd.AddCommand(NewCmdRemove())
	cmd.AddCommand(NewCmdRename())

	return cmd
}

type baseOptions struct {
	configPath string
	output     string
	noColor    bool
	out        io.Writer
}

func (o *baseOptions) bind(cmd *cobra.Command) {
	o.configPath, _ = cmd.Flags().GetString("config")
	o.output, _ = cmd.Flags().GetString("output")
	o.noColor, _ = cmd.Flags().GetBool("no-color")
	o.out = cmd.OutOrStdout()
}

func (o *baseOptions) path() string {
	return config.ResolvePath(o.configPath)
}

// loadFile reads the configuration file without environment overrides so
// that it can be written back unchanged.
func (o *baseOptions) loadFile() (*config.Config, error) {
	cfg, err := config.LoadOrEmpty(o.path())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func (o *baseOptions) save(cfg *config.Config) error {
	if err := cfg.Save(o.path()); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

func (o *baseOptions) renderer() (*view.Renderer, error) {
	if err := view.ValidateFormat(o.output); err != nil {
		return nil, err
	}
	r := view.NewRenderer(view.Format(o.output), o.noColor)
	if o.out != nil {
		r.SetWriter(o.out)
	}
	return r, nil
}

// completeKeys offers the defined macro keys for shell completion.
func completeKeys(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadOrEmpty(config.ResolvePath(configPath))
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var keys []string
	for _, key := range cfg.MacroTable().Keys() {
		if strings.HasPrefix(strings.ToLower(key), strings.ToLower(toComplete)) {
			keys = append(keys, key)
		}
	}
	return keys, cobra.ShellCompDirectiveNoFileComp
}
