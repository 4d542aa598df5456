// bibtex.go converts strings to and from BibTeX syntax.
package bibstr

import "strings"

// concatOperator joins operands of a BibTeX field value.
const concatOperator = " # "

// Parse reads a BibTeX field value and returns the String it describes.
// A single text operand yields a simple string. Malformed input fails with
// an error wrapping ErrMalformedLiteral; nothing is returned partially.
func Parse(literal string, r MacroResolver) (String, error) {
	tokens, err := Tokenize(literal)
	if err != nil {
		return String{}, err
	}
	return FromTokens(tokens, r)
}

// MustParse is like Parse but panics on malformed input.
func MustParse(literal string, r MacroResolver) String {
	s, err := Parse(literal, r)
	if err != nil {
		panic(err)
	}
	return s
}

// BibTeXString renders s in BibTeX syntax: text in braces, numbers and
// macro keys bare, joined by " # ". A simple string is a single braced literal.
func (s String) BibTeXString() string {
	nodes := s.nodeList()
	if len(nodes) == 1 {
		return nodes[0].String()
	}
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.String()
	}
	return strings.Join(parts, concatOperator)
}

// ExpandedBibTeXString renders the expanded value of a complex string as
// a single braced literal. For a simple string it equals BibTeXString.
func (s String) ExpandedBibTeXString() string {
	if !s.IsComplex() {
		return s.BibTeXString()
	}
	return "{" + s.String() + "}"
}
