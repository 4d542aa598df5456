package bibstr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_SingleOperand(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantType  TokenType
		wantValue string
	}{
		{"braced text", "{Hello world}", TokenText, "Hello world"},
		{"quoted text", `"Hello world"`, TokenText, "Hello world"},
		{"empty braces", "{}", TokenText, ""},
		{"nested braces", "{The {LaTeX} Companion}", TokenText, "The {LaTeX} Companion"},
		{"hash inside braces", "{C# in depth}", TokenText, "C# in depth"},
		{"quote inside braces", `"say {"}hi{"}"`, TokenText, `say {"}hi{"}`},
		{"number", "2006", TokenNumber, "2006"},
		{"macro", "jan", TokenMacro, "jan"},
		{"macro with punctuation", "j.acm-2", TokenMacro, "j.acm-2"},
		{"surrounding space", "  {x}\n", TokenText, "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			require.NoError(t, err)
			require.Len(t, tokens, 1)
			assert.Equal(t, tt.wantType, tokens[0].Type)
			assert.Equal(t, tt.wantValue, tokens[0].Value)
		})
	}
}

func TestTokenize_Concatenation(t *testing.T) {
	tokens, err := Tokenize(`"Proc. of " # conf # { } #2006`)
	require.NoError(t, err)
	require.Len(t, tokens, 4)

	assert.Equal(t, Token{Type: TokenText, Value: "Proc. of ", Position: 0}, tokens[0])
	assert.Equal(t, Token{Type: TokenMacro, Value: "conf", Position: 14}, tokens[1])
	assert.Equal(t, Token{Type: TokenText, Value: " ", Position: 21}, tokens[2])
	assert.Equal(t, Token{Type: TokenNumber, Value: "2006", Position: 26}, tokens[3])
}

func TestTokenize_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"only space", "   "},
		{"missing closing brace", "{unbalanced # key"},
		{"stray closing brace", "} # key"},
		{"unterminated quote", `"open # key`},
		{"unbalanced brace in quote", `"a{b"`},
		{"closing brace in quote", `"a}b"`},
		{"empty token between operators", "{a} # # b"},
		{"leading operator", "# b"},
		{"trailing operator", "{a} #"},
		{"missing operator", "{a} {b}"},
		{"garbage after brace", "{a}b"},
		{"brace in bare word", "ab{c}"},
		{"identifier starting with digit", "2006a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			require.Error(t, err)
			assert.Nil(t, tokens)
			assert.True(t, errors.Is(err, ErrMalformedLiteral), "got %v", err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.GreaterOrEqual(t, perr.Pos, 0)
		})
	}
}

func TestTokenize_ErrorPosition(t *testing.T) {
	_, err := Tokenize("{a} # {b")
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 6, perr.Pos)
	assert.Contains(t, err.Error(), "unbalanced")
	assert.Contains(t, err.Error(), "offset 6")
}

func TestToken_Node(t *testing.T) {
	assert.Equal(t, TextNode("x"), Token{Type: TokenText, Value: "x"}.Node())
	assert.Equal(t, NumberNode("1"), Token{Type: TokenNumber, Value: "1"}.Node())
	assert.Equal(t, MacroNode("m"), Token{Type: TokenMacro, Value: "m"}.Node())
}
