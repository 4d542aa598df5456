package literal

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/bibstr/internal/config"
	"github.com/open-cli-collective/bibstr/pkg/bibstr"
)

// testConfig returns a configuration with a few conference macros.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	macros, err := bibstr.NewMacroTable(bibstr.WithDefinitions(map[string]string{
		"jcdl": "{Joint Conference on Digital Libraries}",
		"ecdl": "{European Conference on Digital Libraries}",
		"loop": "{x } # loop",
	}))
	require.NoError(t, err)
	return &config.Config{Macros: macros}
}

func common(buf *bytes.Buffer, output string) commonOptions {
	return commonOptions{output: output, noColor: true, out: buf}
}

func TestCommonOptions_LoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, testConfig(t).Save(configPath))
	t.Setenv("BIBSTR_OUTPUT", "")

	var buf bytes.Buffer
	opts := &expandOptions{
		commonOptions: common(&buf, "plain"),
		literal:       "jcdl # { 2006}",
	}
	opts.configPath = configPath

	require.NoError(t, runExpand(opts, nil))
	assert.Equal(t, "Joint Conference on Digital Libraries 2006\n", buf.String())
}

func TestCommonOptions_OutputFromConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.OutputFormat = "json"

	var buf bytes.Buffer
	opts := &formatOptions{commonOptions: common(&buf, ""), literal: "jcdl"}

	require.NoError(t, runFormat(opts, cfg))

	var result map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "jcdl", result["bibtex"])
}

func TestCommonOptions_InvalidOutput(t *testing.T) {
	var buf bytes.Buffer
	opts := &nodesOptions{commonOptions: common(&buf, "xml"), literal: "{a}"}

	err := runNodes(opts, testConfig(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestMatchOptions(t *testing.T) {
	cfg := &config.Config{DiacriticInsensitive: true}

	assert.Equal(t, bibstr.DiacriticInsensitive, matchOptions{}.options(cfg))
	assert.Equal(t, bibstr.CaseInsensitive|bibstr.DiacriticInsensitive,
		matchOptions{ignoreCase: true}.options(cfg))
}

func TestRunExpand(t *testing.T) {
	tests := []struct {
		name    string
		literal string
		want    string
	}{
		{"compound", "{Proc. of } # jcdl # { 2006}", "Proc. of Joint Conference on Digital Libraries 2006\n"},
		{"simple", `"Plain title"`, "Plain title\n"},
		{"number", "2006", "2006\n"},
		{"macro key case", "JCDL", "Joint Conference on Digital Libraries\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			opts := &expandOptions{commonOptions: common(&buf, "plain"), literal: tt.literal}

			require.NoError(t, runExpand(opts, testConfig(t)))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRunExpand_UnknownMacro(t *testing.T) {
	var buf bytes.Buffer
	opts := &expandOptions{commonOptions: common(&buf, "table"), literal: "{Proc. of } # missing"}

	require.NoError(t, runExpand(opts, testConfig(t)))

	output := buf.String()
	assert.Contains(t, output, "Proc. of missing\n")
	assert.Contains(t, output, "unknown macro")
}

func TestRunExpand_Strict(t *testing.T) {
	t.Run("flag", func(t *testing.T) {
		var buf bytes.Buffer
		opts := &expandOptions{commonOptions: common(&buf, ""), literal: "{Proc. of } # missing", strict: true}

		err := runExpand(opts, testConfig(t))
		require.Error(t, err)
		assert.ErrorIs(t, err, bibstr.ErrUnknownMacro)
		assert.Empty(t, buf.String())
	})

	t.Run("config", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Strict = true

		var buf bytes.Buffer
		opts := &expandOptions{commonOptions: common(&buf, ""), literal: "loop"}

		err := runExpand(opts, cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, bibstr.ErrCyclicMacro)
	})
}

func TestRunExpand_JSON(t *testing.T) {
	var buf bytes.Buffer
	opts := &expandOptions{commonOptions: common(&buf, "json"), literal: `"Proc. of " # missing`}

	require.NoError(t, runExpand(opts, testConfig(t)))

	var result expandResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "{Proc. of } # missing", result.Literal)
	assert.Equal(t, "Proc. of missing", result.Expanded)
	assert.True(t, result.Complex)
	assert.Contains(t, result.Unresolved, "missing")
}

func TestRunExpand_MalformedLiteral(t *testing.T) {
	var buf bytes.Buffer
	opts := &expandOptions{commonOptions: common(&buf, ""), literal: "{unbalanced # key"}

	err := runExpand(opts, testConfig(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, bibstr.ErrMalformedLiteral)
	assert.Contains(t, err.Error(), "invalid literal")
}

func TestRunFormat(t *testing.T) {
	tests := []struct {
		name     string
		literal  string
		expanded bool
		want     string
	}{
		{"normalizes spacing and quotes", `"Proc. of "#jcdl  #  2006`, false, "{Proc. of } # jcdl # 2006\n"},
		{"simple", `"Title"`, false, "{Title}\n"},
		{"expanded", "{Proc. of } # jcdl", true, "{Proc. of Joint Conference on Digital Libraries}\n"},
		{"expanded simple", "{Title}", true, "{Title}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			opts := &formatOptions{commonOptions: common(&buf, "plain"), literal: tt.literal, expanded: tt.expanded}

			require.NoError(t, runFormat(opts, testConfig(t)))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRunNodes(t *testing.T) {
	var buf bytes.Buffer
	opts := &nodesOptions{commonOptions: common(&buf, "plain"), literal: "{Proc. of } # jcdl # 2006"}

	require.NoError(t, runNodes(opts, testConfig(t)))
	assert.Equal(t, "0\ttext\tProc. of \n1\tmacro\tjcdl\n2\tnumber\t2006\n", buf.String())
}

func TestRunCompare(t *testing.T) {
	tests := []struct {
		name        string
		left, right string
		match       matchOptions
		complex     bool
		want        string
	}{
		{"expanded macro equals text", "jcdl", "{Joint Conference on Digital Libraries}", matchOptions{}, false, "equal\n"},
		{"complex sorts after simple", "jcdl", "{Joint Conference on Digital Libraries}", matchOptions{}, true, "greater\n"},
		{"same macro any case", "jcdl", "JCDL", matchOptions{}, true, "equal\n"},
		{"case sensitive", "{Gödel}", "{godel}", matchOptions{}, false, "less\n"},
		{"ignore case and accents", "{Gödel}", "{godel}", matchOptions{ignoreCase: true, ignoreDiacritics: true}, false, "equal\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			opts := &compareOptions{
				commonOptions: common(&buf, "table"),
				matchOptions:  tt.match,
				left:          tt.left,
				right:         tt.right,
				complex:       tt.complex,
			}

			require.NoError(t, runCompare(opts, testConfig(t)))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRunCompare_JSON(t *testing.T) {
	var buf bytes.Buffer
	opts := &compareOptions{commonOptions: common(&buf, "json"), left: "{a}", right: "{b}"}

	require.NoError(t, runCompare(opts, testConfig(t)))

	var result compareResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, compareResult{Compare: -1, Relation: "less"}, result)
}

func TestRunSearch(t *testing.T) {
	const value = "{Proc. of } # jcdl # { 2006}"

	tests := []struct {
		name     string
		target   string
		match    matchOptions
		expanded bool
		want     string
	}{
		{"macro", "jcdl", matchOptions{}, false, "true\n"},
		{"text around macro", "{of } # jcdl # { 20}", matchOptions{}, false, "true\n"},
		{"simple target in compound", "{Proc.}", matchOptions{}, false, "false\n"},
		{"expanded text", "{Digital Libraries 2006}", matchOptions{}, true, "true\n"},
		{"case", "{PROC. OF } # jcdl", matchOptions{}, false, "false\n"},
		{"ignore case", "{PROC. OF } # jcdl", matchOptions{ignoreCase: true}, false, "true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			opts := &searchOptions{
				commonOptions: common(&buf, "plain"),
				matchOptions:  tt.match,
				literal:       value,
				target:        tt.target,
				expanded:      tt.expanded,
			}

			require.NoError(t, runSearch(opts, testConfig(t)))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRunSearch_JSON(t *testing.T) {
	var buf bytes.Buffer
	opts := &searchOptions{commonOptions: common(&buf, "json"), literal: "{Proc. of JCDL}", target: "{JCDL}"}

	require.NoError(t, runSearch(opts, testConfig(t)))

	var result map[string]bool
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.True(t, result["match"])
}

func TestRunReplace(t *testing.T) {
	tests := []struct {
		name        string
		literal     string
		target      string
		replacement string
		want        string
	}{
		{"swap macro", "{Proc. of } # jcdl # { 2006}", "jcdl", "ecdl", "{Proc. of } # ecdl # { 2006}\n"},
		{"simple text", "{Proc. of JCDL}", "{Proc.}", "{Proceedings}", "{Proceedings of JCDL}\n"},
		{"mixed complexity is a no-op", "{Proc. of } # jcdl # { 2006}", "{of }", "{at }", "{Proc. of } # jcdl # { 2006}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			opts := &replaceOptions{
				commonOptions: common(&buf, "plain"),
				literal:       tt.literal,
				target:        tt.target,
				replacement:   tt.replacement,
			}

			require.NoError(t, runReplace(opts, testConfig(t)))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRunReplace_Table(t *testing.T) {
	var buf bytes.Buffer
	opts := &replaceOptions{
		commonOptions: common(&buf, "table"),
		literal:       "jcdl # { } # jcdl",
		target:        "jcdl",
		replacement:   "ecdl",
	}

	require.NoError(t, runReplace(opts, testConfig(t)))
	assert.Equal(t, "ecdl # { } # ecdl\nreplaced: 2\n", buf.String())
}

func TestRunReplace_JSON(t *testing.T) {
	var buf bytes.Buffer
	opts := &replaceOptions{
		commonOptions: common(&buf, "json"),
		literal:       "{Proc. of } # jcdl",
		target:        "jcdl",
		replacement:   "ecdl",
	}

	require.NoError(t, runReplace(opts, testConfig(t)))

	var result replaceResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, replaceResult{
		Result:   "{Proc. of } # ecdl",
		Expanded: "Proc. of European Conference on Digital Libraries",
		Count:    1,
	}, result)
}

func TestNewCommands(t *testing.T) {
	for _, cmd := range Commands() {
		assert.NotEmpty(t, cmd.Short, cmd.Use)
		assert.NotEmpty(t, cmd.Example, cmd.Use)
		assert.NotNil(t, cmd.Args, cmd.Use)
	}
	assert.Len(t, Commands(), 6)
}
