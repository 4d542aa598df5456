package macro

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bibstr/pkg/bibstr"
)

type addOptions struct {
	baseOptions
	key     string
	literal string
	force   bool
}

// NewCmdAdd creates the macro add command.
func NewCmdAdd() *cobra.Command {
	opts := &addOptions{}

	cmd := &cobra.Command{
		Use:     "add <key> <literal>",
		Aliases: []string{"define", "set"},
		Short:   "Define a macro",
		Long: `Define a macro from a BibTeX value, as in @string{key = literal}.

The definition may reference other macros. Definitions that would make
a macro expand into itself are rejected.`,
		Example: `  # Define a simple macro
  bibstr macro add jcdl '{Joint Conference on Digital Libraries}'

  # Define a macro in terms of another
  bibstr macro add jcdl06 'jcdl # { 2006}'

  # Replace an existing definition
  bibstr macro add --force jcdl '{JCDL}'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.key, opts.literal = args[0], args[1]
			opts.bind(cmd)
			return runAdd(opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite an existing definition")

	return cmd
}

func runAdd(opts *addOptions) error {
	cfg, err := opts.loadFile()
	if err != nil {
		return err
	}

	table := cfg.MacroTable()
	if _, exists := table.Lookup(opts.key); exists && !opts.force {
		return fmt.Errorf("macro %q is already defined (use --force to overwrite)", opts.key)
	}

	if err := table.DefineBibTeX(opts.key, opts.literal); err != nil {
		return err
	}
	if _, err := bibstr.ExpandMacro(table, opts.key, nil); errors.Is(err, bibstr.ErrCyclicMacro) {
		return fmt.Errorf("macro %q not saved: %w", opts.key, err)
	}

	if err := opts.save(cfg); err != nil {
		return err
	}

	renderer, err := opts.renderer()
	if err != nil {
		return err
	}
	renderer.Success(fmt.Sprintf("Defined %s = %s", opts.key, opts.literal))
	return nil
}
