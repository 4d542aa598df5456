// tokens.go defines the token stream produced by Tokenize and accepted by FromTokens.
package bibstr

// TokenType classifies a token of a BibTeX field value.
type TokenType int

const (
	TokenText   TokenType = iota // {braced} or "quoted" text
	TokenNumber                  // bare digits
	TokenMacro                   // bare identifier
)

// Token is a single operand of a '#' concatenation.
type Token struct {
	Type     TokenType
	Value    string // text without delimiters, digits, or macro key
	Position int    // byte offset in the original input
}

// Node converts the token to the corresponding Node.
func (t Token) Node() Node {
	switch t.Type {
	case TokenNumber:
		return NumberNode(t.Value)
	case TokenMacro:
		return MacroNode(t.Value)
	default:
		return TextNode(t.Value)
	}
}
