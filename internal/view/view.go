// Package view provides output formatting for bibstr commands.
package view

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/open-cli-collective/bibstr/pkg/bibstr"
)

// Format represents an output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatPlain Format = "plain"
)

// ValidFormats returns the accepted output format names.
func ValidFormats() []string {
	return []string{string(FormatTable), string(FormatJSON), string(FormatPlain)}
}

// ValidateFormat checks an output format name. The empty string selects the default.
func ValidateFormat(format string) error {
	if format == "" {
		return nil
	}
	for _, f := range ValidFormats() {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid output format %q: must be one of %s", format, strings.Join(ValidFormats(), ", "))
}

// Renderer renders data in a specific format.
type Renderer struct {
	format  Format
	writer  io.Writer
	noColor bool
}

// NewRenderer creates a new renderer with the specified format.
func NewRenderer(format Format, noColor bool) *Renderer {
	if format == "" {
		format = FormatTable
	}
	if noColor {
		color.NoColor = true
	}
	return &Renderer{
		format:  format,
		writer:  os.Stdout,
		noColor: noColor,
	}
}

// SetWriter sets the output writer.
func (r *Renderer) SetWriter(w io.Writer) {
	r.writer = w
}

// Format returns the renderer's output format.
func (r *Renderer) Format() Format {
	return r.format
}

// RenderTable renders data as a table.
func (r *Renderer) RenderTable(headers []string, rows [][]string) {
	switch r.format {
	case FormatJSON:
		r.renderTableAsJSON(headers, rows)
		return
	case FormatPlain:
		r.renderTableAsPlain(rows)
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, val := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], utf8.RuneCountInString(val))
			}
		}
	}

	bold := color.New(color.Bold)
	r.writeRow(headers, widths, func(i int, s string) string { return bold.Sprint(s) })
	for _, row := range rows {
		r.writeRow(row, widths, nil)
	}
}

// writeRow pads every cell but the last to its column width.
func (r *Renderer) writeRow(cells []string, widths []int, style func(int, string) string) {
	for i, val := range cells {
		if i > 0 {
			fmt.Fprint(r.writer, "  ")
		}
		pad := 0
		if i < len(cells)-1 && i < len(widths) {
			pad = widths[i] - utf8.RuneCountInString(val)
		}
		if style != nil {
			val = style(i, val)
		}
		fmt.Fprint(r.writer, val, strings.Repeat(" ", max(pad, 0)))
	}
	fmt.Fprintln(r.writer)
}

func (r *Renderer) renderTableAsJSON(headers []string, rows [][]string) {
	var result []map[string]string
	for _, row := range rows {
		item := make(map[string]string)
		for i, header := range headers {
			if i < len(row) {
				item[strings.ToLower(header)] = row[i]
			}
		}
		result = append(result, item)
	}

	data, _ := json.MarshalIndent(result, "", "  ")
	fmt.Fprintln(r.writer, string(data))
}

func (r *Renderer) renderTableAsPlain(rows [][]string) {
	for _, row := range rows {
		fmt.Fprintln(r.writer, strings.Join(row, "\t"))
	}
}

// NodeRow is the JSON form of one node of a compound string.
type NodeRow struct {
	Index int    `json:"index"`
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// RenderNodes lists the nodes of a compound string. In table format the
// value column is colored by node kind.
func (r *Renderer) RenderNodes(nodes []bibstr.Node) error {
	if r.format == FormatJSON {
		out := make([]NodeRow, len(nodes))
		for i, n := range nodes {
			out[i] = NodeRow{Index: i, Kind: n.Kind().String(), Value: n.Value()}
		}
		return r.RenderJSON(out)
	}

	rows := make([][]string, len(nodes))
	for i, n := range nodes {
		rows[i] = []string{strconv.Itoa(i), n.Kind().String(), n.Value()}
	}
	if r.format == FormatPlain {
		r.renderTableAsPlain(rows)
		return nil
	}

	headers := []string{"INDEX", "KIND", "VALUE"}
	widths := []int{len(headers[0]), len(headers[1]), len(headers[2])}
	for _, row := range rows {
		widths[0] = max(widths[0], len(row[0]))
		widths[1] = max(widths[1], len(row[1]))
	}
	bold := color.New(color.Bold)
	r.writeRow(headers, widths, func(i int, s string) string { return bold.Sprint(s) })
	for i, row := range rows {
		kind := nodes[i].Kind()
		r.writeRow(row, widths, func(col int, s string) string {
			if col != 2 {
				return s
			}
			return KindColor(kind).Sprint(s)
		})
	}
	return nil
}

// KindColor returns the color used to show nodes of kind.
func KindColor(kind bibstr.NodeKind) *color.Color {
	switch kind {
	case bibstr.KindMacro:
		return color.New(color.FgCyan)
	case bibstr.KindNumber:
		return color.New(color.FgYellow)
	default:
		return color.New(color.Reset)
	}
}

// RenderJSON renders an object as JSON.
func (r *Renderer) RenderJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(r.writer, string(data))
	return nil
}

// RenderText renders plain text.
func (r *Renderer) RenderText(text string) {
	fmt.Fprintln(r.writer, text)
}

// RenderKeyValue renders a key-value pair.
func (r *Renderer) RenderKeyValue(key, value string) {
	switch r.format {
	case FormatJSON:
		data, _ := json.Marshal(map[string]string{key: value})
		fmt.Fprintln(r.writer, string(data))
	case FormatPlain:
		fmt.Fprintf(r.writer, "%s\t%s\n", key, value)
	default:
		bold := color.New(color.Bold)
		bold.Fprintf(r.writer, "%s: ", key)
		fmt.Fprintln(r.writer, value)
	}
}

// Success prints a success message.
func (r *Renderer) Success(msg string) {
	green := color.New(color.FgGreen)
	green.Fprintln(r.writer, "✓ "+msg)
}

// Warning prints a warning message.
func (r *Renderer) Warning(msg string) {
	yellow := color.New(color.FgYellow)
	yellow.Fprintln(r.writer, "! "+msg)
}

// Error prints an error message.
func (r *Renderer) Error(msg string) {
	red := color.New(color.FgRed)
	red.Fprintln(r.writer, "✗ "+msg)
}

// Truncate shortens s to at most maxLen runes, ending in "..." when cut.
func Truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	if maxLen <= 3 {
		return string(runes[:max(maxLen, 0)])
	}
	return string(runes[:maxLen-3]) + "..."
}
