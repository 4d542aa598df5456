package literal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bibstr/internal/config"
	"github.com/open-cli-collective/bibstr/internal/view"
)

type expandOptions struct {
	commonOptions
	literal string
	strict  bool
}

type expandResult struct {
	Literal    string `json:"literal"`
	Expanded   string `json:"expanded"`
	Complex    bool   `json:"complex"`
	Unresolved string `json:"unresolved,omitempty"`
}

// NewCmdExpand creates the expand command.
func NewCmdExpand() *cobra.Command {
	opts := &expandOptions{}

	cmd := &cobra.Command{
		Use:   "expand <literal>",
		Short: "Expand the macros in a BibTeX value",
		Long: `Expand a BibTeX field value such as {Proc. of } # conf # { 2006}
into plain text using the macros in your configuration.

Macros that cannot be resolved are shown as their key. Use --strict
to fail instead.`,
		Example: `  # Expand a value
  bibstr expand '{Proc. of } # jcdl # { 2006}'

  # Fail on unknown or cyclic macros
  bibstr expand --strict 'conf # { 2006}'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.literal = args[0]
			opts.bind(cmd)
			return runExpand(opts, nil)
		},
	}

	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail when a macro cannot be resolved")

	return cmd
}

func runExpand(opts *expandOptions, cfg *config.Config) error {
	cfg, err := opts.load(cfg)
	if err != nil {
		return err
	}

	s, err := parse(opts.literal, cfg)
	if err != nil {
		return err
	}

	value, expandErr := s.Expand()
	if expandErr != nil {
		if opts.strict || cfg.Strict {
			return fmt.Errorf("expansion failed: %w", expandErr)
		}
		value = s.String()
	}

	renderer := opts.renderer()
	if renderer.Format() == view.FormatJSON {
		result := expandResult{
			Literal:  s.BibTeXString(),
			Expanded: value,
			Complex:  s.IsComplex(),
		}
		if expandErr != nil {
			result.Unresolved = expandErr.Error()
		}
		return renderer.RenderJSON(result)
	}

	renderer.RenderText(value)
	if expandErr != nil && renderer.Format() == view.FormatTable {
		renderer.Warning(fmt.Sprintf("%v (shown as key)", expandErr))
	}
	return nil
}
