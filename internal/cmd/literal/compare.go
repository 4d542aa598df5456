package literal

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bibstr/internal/config"
	"github.com/open-cli-collective/bibstr/internal/view"
)

type compareOptions struct {
	commonOptions
	matchOptions
	left, right string
	complex     bool
}

type compareResult struct {
	Compare  int    `json:"compare"`
	Relation string `json:"relation"`
}

// NewCmdCompare creates the compare command.
func NewCmdCompare() *cobra.Command {
	opts := &compareOptions{}

	cmd := &cobra.Command{
		Use:   "compare <literal> <literal>",
		Short: "Compare two BibTeX values",
		Long: `Compare two BibTeX field values.

By default the expanded text is compared, so jcdl and {JCDL} are equal
when jcdl is defined as {JCDL}. With --complex the values are compared
node by node: a macro only equals the same macro.`,
		Example: `  # Compare expanded values
  bibstr compare jcdl '{JCDL}'

  # Compare structure
  bibstr compare --complex jcdl '{JCDL}'

  # Ignore case and accents
  bibstr compare -i --ignore-diacritics '{Gödel}' '{godel}'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.left, opts.right = args[0], args[1]
			opts.bind(cmd)
			return runCompare(opts, nil)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().BoolVar(&opts.complex, "complex", false, "Compare node by node instead of by expanded text")

	return cmd
}

func runCompare(opts *compareOptions, cfg *config.Config) error {
	cfg, err := opts.load(cfg)
	if err != nil {
		return err
	}

	left, err := parse(opts.left, cfg)
	if err != nil {
		return err
	}
	right, err := parse(opts.right, cfg)
	if err != nil {
		return err
	}

	matchOpts := opts.options(cfg)
	var cmp int
	if opts.complex {
		cmp = left.CompareAsComplex(right, matchOpts)
	} else {
		cmp = left.Compare(right, matchOpts)
	}

	result := compareResult{Compare: cmp, Relation: relation(cmp)}
	renderer := opts.renderer()
	switch renderer.Format() {
	case view.FormatJSON:
		return renderer.RenderJSON(result)
	case view.FormatPlain:
		renderer.RenderText(strconv.Itoa(cmp))
	default:
		renderer.RenderText(result.Relation)
	}
	return nil
}

func relation(cmp int) string {
	switch {
	case cmp < 0:
		return "less"
	case cmp > 0:
		return "greater"
	default:
		return "equal"
	}
}
