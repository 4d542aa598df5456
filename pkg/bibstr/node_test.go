package bibstr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeConstructors(t *testing.T) {
	tests := []struct {
		name     string
		node     Node
		wantKind NodeKind
		wantVal  string
	}{
		{"text", TextNode("Proc. of "), KindText, "Proc. of "},
		{"number", NumberNode("2006"), KindNumber, "2006"},
		{"macro", MacroNode("conf"), KindMacro, "conf"},
		{"zero value", Node{}, KindText, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKind, tt.node.Kind())
			assert.Equal(t, tt.wantVal, tt.node.Value())
		})
	}
}

func TestNode_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b Node
		want bool
	}{
		{"same text", TextNode("abc"), TextNode("abc"), true},
		{"text is case sensitive", TextNode("abc"), TextNode("ABC"), false},
		{"same number", NumberNode("12"), NumberNode("12"), true},
		{"macro ignores case", MacroNode("Conf"), MacroNode("conf"), true},
		{"different macro", MacroNode("conf"), MacroNode("jour"), false},
		{"kinds differ", TextNode("12"), NumberNode("12"), false},
		{"macro vs text", MacroNode("jan"), TextNode("jan"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a))
		})
	}
}

func TestNode_Compare(t *testing.T) {
	tests := []struct {
		name string
		a, b Node
		opts Options
		want int
	}{
		{"text before number", TextNode("z"), NumberNode("1"), 0, -1},
		{"number before macro", NumberNode("9"), MacroNode("a"), 0, -1},
		{"macro after text", MacroNode("a"), TextNode("z"), 0, 1},
		{"text by value", TextNode("a"), TextNode("b"), 0, -1},
		{"text case sensitive", TextNode("B"), TextNode("a"), 0, -1},
		{"text case insensitive", TextNode("B"), TextNode("a"), CaseInsensitive, 1},
		{"text equal ignoring case", TextNode("ABC"), TextNode("abc"), CaseInsensitive, 0},
		{"diacritics ignored", TextNode("Gödel"), TextNode("Godel"), DiacriticInsensitive, 0},
		{"macro always ignores case", MacroNode("Conf"), MacroNode("conf"), 0, 0},
		{"numbers as strings", NumberNode("10"), NumberNode("9"), 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b, tt.opts))
			assert.Equal(t, -tt.want, tt.b.Compare(tt.a, tt.opts))
		})
	}
}

func TestNode_String(t *testing.T) {
	assert.Equal(t, "{Proc. of }", TextNode("Proc. of ").String())
	assert.Equal(t, "2006", NumberNode("2006").String())
	assert.Equal(t, "conf", MacroNode("conf").String())
}

func TestNodeKind_String(t *testing.T) {
	assert.Equal(t, "text", KindText.String())
	assert.Equal(t, "number", KindNumber.String())
	assert.Equal(t, "macro", KindMacro.String())
	assert.Equal(t, "unknown", NodeKind(42).String())
}
