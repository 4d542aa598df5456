package macro

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bibstr/internal/config"
	"github.com/open-cli-collective/bibstr/internal/view"
)

type listOptions struct {
	baseOptions
}

type macroRow struct {
	Key        string `json:"key"`
	Definition string `json:"definition"`
	Expanded   string `json:"expanded"`
}

// NewCmdList creates the macro list command.
func NewCmdList() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List macro definitions",
		Long:    `List every macro with its BibTeX definition and expanded value.`,
		Example: `  # List macros
  bibstr macro list

  # Output as JSON
  bibstr macro list -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.bind(cmd)
			return runList(opts, nil)
		},
	}

	return cmd
}

func runList(opts *listOptions, cfg *config.Config) error {
	if cfg == nil {
		loaded, err := config.LoadWithEnv(opts.path())
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if opts.output == "" {
		opts.output = cfg.OutputFormat
	}

	renderer, err := opts.renderer()
	if err != nil {
		return err
	}

	table := cfg.MacroTable()
	defs := table.Definitions()
	keys := table.Keys()

	if renderer.Format() == view.FormatJSON {
		rows := make([]macroRow, 0, len(keys))
		for _, key := range keys {
			def := defs[key]
			rows = append(rows, macroRow{Key: key, Definition: def.BibTeXString(), Expanded: def.String()})
		}
		return renderer.RenderJSON(rows)
	}

	if len(keys) == 0 {
		renderer.RenderText("No macros defined.")
		return nil
	}

	rows := make([][]string, 0, len(keys))
	for _, key := range keys {
		def := defs[key]
		rows = append(rows, []string{key, def.BibTeXString(), view.Truncate(def.String(), 60)})
	}
	renderer.RenderTable([]string{"KEY", "DEFINITION", "EXPANDED"}, rows)
	return nil
}
