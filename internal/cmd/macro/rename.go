package macro

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bibstr/pkg/bibstr"
)

type renameOptions struct {
	baseOptions
	oldKey string
	newKey string
}

// NewCmdRename creates the macro rename command.
func NewCmdRename() *cobra.Command {
	opts := &renameOptions{}

	cmd := &cobra.Command{
		Use:     "rename <old-key> <new-key>",
		Aliases: []string{"mv"},
		Short:   "Rename a macro",
		Long: `Rename a macro. Other definitions that reference the old key are not
rewritten and will no longer resolve.`,
		Example: `  # Rename a macro
  bibstr macro rename jcdl JCDL06`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.oldKey, opts.newKey = args[0], args[1]
			opts.bind(cmd)
			return runRename(opts)
		},
	}

	return cmd
}

func runRename(opts *renameOptions) error {
	if !bibstr.ValidMacroKey(opts.newKey) {
		return fmt.Errorf("invalid macro key %q", opts.newKey)
	}

	cfg, err := opts.loadFile()
	if err != nil {
		return err
	}

	if err := cfg.MacroTable().Rename(opts.oldKey, opts.newKey); err != nil {
		return fmt.Errorf("failed to rename macro: %w", err)
	}

	if err := opts.save(cfg); err != nil {
		return err
	}

	renderer, err := opts.renderer()
	if err != nil {
		return err
	}
	renderer.Success(fmt.Sprintf("Renamed %s to %s", opts.oldKey, opts.newKey))
	return nil
}
