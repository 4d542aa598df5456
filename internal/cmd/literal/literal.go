// Package literal provides the commands that work on a single BibTeX field
// value: expand, format, nodes, compare, search and replace.
package literal

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bibstr/internal/config"
	"github.com/open-cli-collective/bibstr/internal/view"
	"github.com/open-cli-collective/bibstr/pkg/bibstr"
)

// commonOptions carries the root persistent flags.
type commonOptions struct {
	configPath string
	output     string
	noColor    bool
	out        io.Writer
}

func (o *commonOptions) bind(cmd *cobra.Command) {
	o.configPath, _ = cmd.Flags().GetString("config")
	o.output, _ = cmd.Flags().GetString("output")
	o.noColor, _ = cmd.Flags().GetBool("no-color")
	o.out = cmd.OutOrStdout()
}

// load returns cfg, or the configuration on disk when cfg is nil, and
// settles the output format.
func (o *commonOptions) load(cfg *config.Config) (*config.Config, error) {
	if cfg == nil {
		loaded, err := config.LoadWithEnv(config.ResolvePath(o.configPath))
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if o.output == "" {
		o.output = cfg.OutputFormat
	}
	if err := view.ValidateFormat(o.output); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (o *commonOptions) renderer() *view.Renderer {
	r := view.NewRenderer(view.Format(o.output), o.noColor)
	if o.out != nil {
		r.SetWriter(o.out)
	}
	return r
}

// matchOptions are the comparison flags shared by compare, search and replace.
type matchOptions struct {
	ignoreCase       bool
	ignoreDiacritics bool
}

func (m *matchOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&m.ignoreCase, "ignore-case", "i", false, "Ignore letter case")
	cmd.Flags().BoolVar(&m.ignoreDiacritics, "ignore-diacritics", false, "Ignore accents and other combining marks")
}

// options adds the flags to the configured defaults.
func (m matchOptions) options(cfg *config.Config) bibstr.Options {
	opts := cfg.Options()
	if m.ignoreCase {
		opts |= bibstr.CaseInsensitive
	}
	if m.ignoreDiacritics {
		opts |= bibstr.DiacriticInsensitive
	}
	return opts
}

// parse reads a BibTeX literal, resolving macros through the configured table.
func parse(literal string, cfg *config.Config) (bibstr.String, error) {
	s, err := bibstr.Parse(literal, cfg.MacroTable())
	if err != nil {
		return bibstr.String{}, fmt.Errorf("invalid literal %q: %w", literal, err)
	}
	return s, nil
}

// Commands returns the literal commands for registration on the root command.
func Commands() []*cobra.Command {
	return []*cobra.Command{
		NewCmdExpand(),
		NewCmdFormat(),
		NewCmdNodes(),
		NewCmdCompare(),
		NewCmdSearch(),
		NewCmdReplace(),
	}
}
