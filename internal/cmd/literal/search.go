package literal

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bibstr/internal/config"
	"github.com/open-cli-collective/bibstr/internal/view"
)

type searchOptions struct {
	commonOptions
	matchOptions
	literal  string
	target   string
	expanded bool
}

// NewCmdSearch creates the search command.
func NewCmdSearch() *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search <literal> <target>",
		Short: "Check whether a BibTeX value contains another",
		Long: `Search a BibTeX field value for a target value.

A macro target only matches the same macro, so searching for jcdl does
not match the text JCDL. Text matches inside the value's text nodes.
With --expanded both values are expanded and searched as plain text.

A simple target does not match inside a compound value unless
--expanded is given.`,
		Example: `  # Find a macro reference
  bibstr search '{Proc. of } # jcdl # { 2006}' jcdl

  # Find text across macro boundaries
  bibstr search --expanded '{Proc. of } # jcdl' '{of JCDL}'

  # Power user: case-insensitive, JSON output
  bibstr search -i -o json '{Proc. of } # jcdl' '{proc. of } # jcdl'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.literal, opts.target = args[0], args[1]
			opts.bind(cmd)
			return runSearch(opts, nil)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().BoolVar(&opts.expanded, "expanded", false, "Search the expanded text")

	return cmd
}

func runSearch(opts *searchOptions, cfg *config.Config) error {
	cfg, err := opts.load(cfg)
	if err != nil {
		return err
	}

	s, err := parse(opts.literal, cfg)
	if err != nil {
		return err
	}
	target, err := parse(opts.target, cfg)
	if err != nil {
		return err
	}

	matchOpts := opts.options(cfg)
	var match bool
	if opts.expanded {
		match = s.Contains(target.String(), matchOpts)
	} else {
		match = s.HasSubstring(target, matchOpts)
	}

	renderer := opts.renderer()
	switch {
	case renderer.Format() == view.FormatJSON:
		return renderer.RenderJSON(map[string]bool{"match": match})
	case renderer.Format() == view.FormatPlain:
		if match {
			renderer.RenderText("true")
		} else {
			renderer.RenderText("false")
		}
	case match:
		renderer.Success("match")
	default:
		renderer.RenderText("no match")
	}
	return nil
}
