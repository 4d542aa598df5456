package literal

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bibstr/internal/config"
)

type nodesOptions struct {
	commonOptions
	literal string
}

// NewCmdNodes creates the nodes command.
func NewCmdNodes() *cobra.Command {
	opts := &nodesOptions{}

	cmd := &cobra.Command{
		Use:   "nodes <literal>",
		Short: "List the nodes of a BibTeX value",
		Long:  `Show how a BibTeX field value splits into text, number and macro nodes.`,
		Example: `  # Inspect a compound value
  bibstr nodes '{Proc. of } # jcdl # 2006'

  # As JSON
  bibstr nodes -o json 'jcdl'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.literal = args[0]
			opts.bind(cmd)
			return runNodes(opts, nil)
		},
	}

	return cmd
}

func runNodes(opts *nodesOptions, cfg *config.Config) error {
	cfg, err := opts.load(cfg)
	if err != nil {
		return err
	}

	s, err := parse(opts.literal, cfg)
	if err != nil {
		return err
	}

	return opts.renderer().RenderNodes(s.Nodes())
}
