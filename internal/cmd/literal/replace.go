package literal

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bibstr/internal/config"
	"github.com/open-cli-collective/bibstr/internal/view"
)

type replaceOptions struct {
	commonOptions
	matchOptions
	literal     string
	target      string
	replacement string
}

type replaceResult struct {
	Result   string `json:"result"`
	Expanded string `json:"expanded"`
	Count    int    `json:"count"`
}

// NewCmdReplace creates the replace command.
func NewCmdReplace() *cobra.Command {
	opts := &replaceOptions{}

	cmd := &cobra.Command{
		Use:   "replace <literal> <target> <replacement>",
		Short: "Replace part of a BibTeX value",
		Long: `Replace every occurrence of target in a BibTeX field value.

Simple values are replaced as text. Compound values are replaced a whole
run of nodes at a time, so a macro can be swapped for another macro
without touching the surrounding text. Mixing a simple value with a
compound one replaces nothing.`,
		Example: `  # Swap a macro
  bibstr replace '{Proc. of } # jcdl # { 2006}' jcdl ecdl

  # Replace text in a simple value
  bibstr replace '{Proc. of JCDL}' '{Proc.}' '{Proceedings}'`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.literal, opts.target, opts.replacement = args[0], args[1], args[2]
			opts.bind(cmd)
			return runReplace(opts, nil)
		},
	}

	opts.addFlags(cmd)

	return cmd
}

func runReplace(opts *replaceOptions, cfg *config.Config) error {
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
	replacement, err := parse(opts.replacement, cfg)
	if err != nil {
		return err
	}

	result, count := s.Replace(target, replacement, opts.options(cfg))

	renderer := opts.renderer()
	switch renderer.Format() {
	case view.FormatJSON:
		return renderer.RenderJSON(replaceResult{
			Result:   result.BibTeXString(),
			Expanded: result.String(),
			Count:    count,
		})
	case view.FormatPlain:
		renderer.RenderText(result.BibTeXString())
	default:
		renderer.RenderText(result.BibTeXString())
		renderer.RenderKeyValue("replaced", strconv.Itoa(count))
	}
	return nil
}
