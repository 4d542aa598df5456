package configcmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bibstr/internal/config"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	opts := &configOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the current bibstr configuration with the source of each setting.`,
		Example: `  # Show current config
  bibstr config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.bind(cmd)
			return runShow(opts)
		},
	}

	return cmd
}

func runShow(opts *configOptions) error {
	if opts.noColor {
		color.NoColor = true
	}

	configPath := opts.path()
	w := opts.writer()

	// Load file config (may not exist)
	fileCfg, fileErr := config.Load(configPath)
	if fileErr != nil {
		fileCfg = &config.Config{}
	}

	// Load full config with env overrides
	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return err
	}

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	printField := func(label, value, fileValue, envVar string) {
		_, _ = bold.Fprintf(w, "%-22s", label+":")
		if value == "" {
			_, _ = dim.Fprintln(w, "-")
			return
		}

		fmt.Fprint(w, value)

		source := "config"
		switch {
		case os.Getenv(envVar) != "":
			source = envVar
		case fileErr != nil || fileValue != value:
			source = "default"
		}

		_, _ = dim.Fprintf(w, "  (source: %s)\n", source)
	}

	printBool := func(label string, value, fileValue bool, envVar string) {
		printField(label, strconv.FormatBool(value), strconv.FormatBool(fileValue), envVar)
	}

	printBool("Case insensitive", cfg.CaseInsensitive, fileCfg.CaseInsensitive, "BIBSTR_CASE_INSENSITIVE")
	printBool("Diacritic insensitive", cfg.DiacriticInsensitive, fileCfg.DiacriticInsensitive, "BIBSTR_DIACRITIC_INSENSITIVE")
	printBool("Strict", cfg.Strict, fileCfg.Strict, "BIBSTR_STRICT")
	printField("Output", cfg.OutputFormat, fileCfg.OutputFormat, "BIBSTR_OUTPUT")
	_, _ = bold.Fprintf(w, "%-22s", "Macros:")
	fmt.Fprintln(w, cfg.MacroTable().Len())

	fmt.Fprintln(w)
	_, _ = dim.Fprintf(w, "Config file: %s\n", configPath)
	if fileErr != nil {
		_, _ = dim.Fprintln(w, "(file not found)")
	}

	return nil
}
