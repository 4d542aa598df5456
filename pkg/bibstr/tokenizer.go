// tokenizer.go splits a BibTeX field value into '#'-separated tokens.
package bibstr

// Tokenize scans a BibTeX field value such as
//
//	{Proc. of } # conf # "2006"
//
// and returns one token per operand. Braced and double-quoted operands
// become text tokens, runs of digits number tokens, and any other bare
// word a macro token. Braces must balance inside text; a '#' inside
// braces or quotes is literal text.
func Tokenize(input string) ([]Token, error) {
	var tokens []Token
	pos := skipSpace(input, 0)

	for {
		if pos >= len(input) {
			return nil, malformed(pos, "expected value")
		}

		token, next, err := scanToken(input, pos)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)

		pos = skipSpace(input, next)
		if pos >= len(input) {
			return tokens, nil
		}
		if input[pos] != '#' {
			return nil, malformed(pos, "expected '#', got %q", input[pos])
		}
		pos = skipSpace(input, pos+1)
	}
}

// scanToken reads one operand starting at pos.
func scanToken(input string, pos int) (Token, int, error) {
	switch c := input[pos]; {
	case c == '{':
		end, err := scanBraced(input, pos)
		if err != nil {
			return Token{}, pos, err
		}
		return Token{Type: TokenText, Value: input[pos+1 : end], Position: pos}, end + 1, nil
	case c == '"':
		end, err := scanQuoted(input, pos)
		if err != nil {
			return Token{}, pos, err
		}
		return Token{Type: TokenText, Value: input[pos+1 : end], Position: pos}, end + 1, nil
	case c == '#':
		return Token{}, pos, malformed(pos, "empty value before '#'")
	case c == '}':
		return Token{}, pos, malformed(pos, "unbalanced '}'")
	}

	start := pos
	digits := true
	for pos < len(input) && !isSpace(input[pos]) && input[pos] != '#' {
		c := input[pos]
		if c == '{' || c == '}' || c == '"' {
			return Token{}, start, malformed(pos, "unexpected %q in bare word", c)
		}
		if !isDigit(c) {
			digits = false
		}
		pos++
	}
	word := input[start:pos]
	if digits {
		return Token{Type: TokenNumber, Value: word, Position: start}, pos, nil
	}
	if !ValidMacroKey(word) {
		return Token{}, start, malformed(start, "invalid macro name %q", word)
	}
	return Token{Type: TokenMacro, Value: word, Position: start}, pos, nil
}

// scanBraced returns the offset of the brace closing the one at pos.
func scanBraced(input string, pos int) (int, error) {
	depth := 0
	for i := pos; i < len(input); i++ {
		switch input[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, malformed(pos, "unbalanced '{'")
}

// scanQuoted returns the offset of the quote closing the one at pos.
// Quotes nested in braces do not terminate the value.
func scanQuoted(input string, pos int) (int, error) {
	depth := 0
	for i := pos + 1; i < len(input); i++ {
		switch input[i] {
		case '{':
			depth++
		case '}':
			if depth == 0 {
				return 0, malformed(i, "unbalanced '}'")
			}
			depth--
		case '"':
			if depth == 0 {
				return i, nil
			}
		}
	}
	if depth > 0 {
		return 0, malformed(pos, "unbalanced '{'")
	}
	return 0, malformed(pos, "unterminated '\"'")
}

func skipSpace(input string, pos int) int {
	for pos < len(input) && isSpace(input[pos]) {
		pos++
	}
	return pos
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isIdentChar accepts the characters BibTeX allows in a macro name,
// excluding the delimiters and separators Tokenize relies on.
func isIdentChar(c byte) bool {
	switch c {
	case '#', '{', '}', '"', '%', '\'', '(', ')', ',', '=', ' ', '\t', '\n', '\r':
		return false
	}
	return c > ' ' && c < 0x7f
}
