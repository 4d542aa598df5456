package macro

import (
	"fmt"

	"github.com/spf13/cobra"
)

type removeOptions struct {
	baseOptions
	key string
}

// NewCmdRemove creates the macro remove command.
func NewCmdRemove() *cobra.Command {
	opts := &removeOptions{}

	cmd := &cobra.Command{
		Use:     "remove <key>",
		Aliases: []string{"rm", "delete"},
		Short:   "Remove a macro",
		Long:    `Remove a macro definition. Values that reference it will show the bare key.`,
		Example: `  # Remove a macro
  bibstr macro remove jcdl`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.key = args[0]
			opts.bind(cmd)
			return runRemove(opts)
		},
	}

	return cmd
}

func runRemove(opts *removeOptions) error {
	cfg, err := opts.loadFile()
	if err != nil {
		return err
	}

	table := cfg.MacroTable()
	if _, exists := table.Lookup(opts.key); !exists {
		return fmt.Errorf("macro %q is not defined", opts.key)
	}
	table.Remove(opts.key)

	if err := opts.save(cfg); err != nil {
		return err
	}

	renderer, err := opts.renderer()
	if err != nil {
		return err
	}
	renderer.Success(fmt.Sprintf("Removed %s", opts.key))
	return nil
}
