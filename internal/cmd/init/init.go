// Package init provides the init command for bibstr.
package init

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bibstr/internal/config"
	"github.com/open-cli-collective/bibstr/internal/view"
	"github.com/open-cli-collective/bibstr/pkg/bibstr"
)

type initOptions struct {
	configPath string
	defaults   bool
	force      bool
	out        io.Writer
}

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize bibstr configuration",
		Long: `Initialize bibstr with your default comparison options and macros.

This command will guide you through choosing how values are compared,
whether unknown macros are errors, the default output format, and an
optional set of @string macros. The configuration will be saved to
~/.config/bibstr/config.yml.

Macros are entered one per line, either as key = value or as
@string{key = value}, where value uses BibTeX syntax.`,
		Example: `  # Interactive setup
  bibstr init

  # Write a default configuration without prompting
  bibstr init --defaults`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.out = cmd.OutOrStdout()
			return runInit(opts)
		},
	}

	cmd.Flags().BoolVar(&opts.defaults, "defaults", false, "Write the default configuration without prompting")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite an existing configuration")

	return cmd
}

func runInit(opts *initOptions) error {
	configPath := config.ResolvePath(opts.configPath)
	out := opts.out
	if out == nil {
		out = os.Stdout
	}

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil && !opts.force {
		if opts.defaults {
			return fmt.Errorf("configuration already exists at %s (use --force to overwrite)", configPath)
		}
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Fprintln(out, "Initialization cancelled.")
			return nil
		}
	}

	cfg := &config.Config{OutputFormat: string(view.FormatTable)}
	if !opts.defaults {
		if err := runForm(cfg); err != nil {
			return err
		}
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Save configuration
	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nConfiguration saved to %s\n", configPath)
	fmt.Fprintln(out, "\nYou're all set! Try running:")
	fmt.Fprintln(out, "  bibstr macro add jcdl '{Joint Conference on Digital Libraries}'")
	fmt.Fprintln(out, "  bibstr expand '{Proc. of } # jcdl # { 2006}'")

	return nil
}

func runForm(cfg *config.Config) error {
	var macroText string

	formatOptions := make([]huh.Option[string], 0, len(view.ValidFormats()))
	for _, f := range view.ValidFormats() {
		formatOptions = append(formatOptions, huh.NewOption(f, f))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Ignore case").
				Description("Compare and search values case-insensitively by default").
				Value(&cfg.CaseInsensitive),

			huh.NewConfirm().
				Title("Ignore diacritics").
				Description("Treat accented letters like their base letter (é matches e)").
				Value(&cfg.DiacriticInsensitive),

			huh.NewConfirm().
				Title("Strict expansion").
				Description("Fail when a macro is unknown or cyclic instead of showing its key").
				Value(&cfg.Strict),

			huh.NewSelect[string]().
				Title("Output format").
				Options(formatOptions...).
				Value(&cfg.OutputFormat),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Macros (optional)").
				Description("One per line: key = {value} or @string{key = {value}}").
				Placeholder("jcdl = {Joint Conference on Digital Libraries}").
				Value(&macroText).
				Validate(func(s string) error {
					_, err := parseMacros(s)
					return err
				}),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	macros, err := parseMacros(macroText)
	if err != nil {
		return err
	}
	if macros.Len() > 0 {
		cfg.Macros = macros
	}
	return nil
}

// parseMacros reads macro definitions, one per line, written either as
// "key = value" or "@string{key = value}". Blank lines and lines starting
// with % are ignored.
func parseMacros(text string) (*bibstr.MacroTable, error) {
	defs := make(map[string]string)

	scanner := bufio.NewScanner(strings.NewReader(text))
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}

		line = stripStringCommand(line)
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("line %d: expected key = value", lineNo)
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		if _, dup := defs[key]; dup {
			return nil, fmt.Errorf("line %d: %w: %q", lineNo, bibstr.ErrDuplicateMacro, key)
		}
		defs[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	table, err := bibstr.NewMacroTable(bibstr.WithDefinitions(defs))
	if err != nil {
		return nil, err
	}
	for _, key := range table.Keys() {
		if _, err := bibstr.ExpandMacro(table, key, nil); errors.Is(err, bibstr.ErrCyclicMacro) {
			return nil, err
		}
	}
	return table, nil
}

// stripStringCommand unwraps @string{...} or @string(...).
func stripStringCommand(line string) string {
	if len(line) < len("@string") || !strings.EqualFold(line[:len("@string")], "@string") {
		return line
	}
	body := strings.TrimSpace(line[len("@string"):])
	if len(body) < 2 {
		return body
	}
	switch {
	case body[0] == '{' && body[len(body)-1] == '}',
		body[0] == '(' && body[len(body)-1] == ')':
		return body[1 : len(body)-1]
	}
	return body
}
