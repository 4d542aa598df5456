package literal

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bibstr/internal/config"
	"github.com/open-cli-collective/bibstr/internal/view"
)

type formatOptions struct {
	commonOptions
	literal  string
	expanded bool
}

// NewCmdFormat creates the format command.
func NewCmdFormat() *cobra.Command {
	opts := &formatOptions{}

	cmd := &cobra.Command{
		Use:   "format <literal>",
		Short: "Print a BibTeX value in canonical syntax",
		Long: `Parse a BibTeX field value and print it back in canonical form:
text in braces, numbers and macro keys bare, joined by " # ".

With --expanded the value is expanded first and written as one
braced text.`,
		Example: `  # Normalize quoting and spacing
  bibstr format '"Proc. of "#jcdl  #  2006'

  # Flatten to a single braced value
  bibstr format --expanded '{Proc. of } # jcdl'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.literal = args[0]
			opts.bind(cmd)
			return runFormat(opts, nil)
		},
	}

	cmd.Flags().BoolVar(&opts.expanded, "expanded", false, "Expand macros before formatting")

	return cmd
}

func runFormat(opts *formatOptions, cfg *config.Config) error {
	cfg, err := opts.load(cfg)
	if err != nil {
		return err
	}

	s, err := parse(opts.literal, cfg)
	if err != nil {
		return err
	}

	out := s.BibTeXString()
	if opts.expanded {
		out = s.ExpandedBibTeXString()
	}

	renderer := opts.renderer()
	if renderer.Format() == view.FormatJSON {
		renderer.RenderKeyValue("bibtex", out)
		return nil
	}
	renderer.RenderText(out)
	return nil
}
