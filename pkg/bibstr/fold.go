// fold.go implements the case and diacritic folding used by comparisons and searches.
package bibstr

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Options modify how text is compared and searched.
type Options uint

const (
	// CaseInsensitive ignores letter case.
	CaseInsensitive Options = 1 << iota
	// DiacriticInsensitive ignores combining marks, so "é" matches "e".
	DiacriticInsensitive
)

// Has reports whether all bits of flag are set.
func (o Options) Has(flag Options) bool {
	return o&flag == flag
}

// foldKey normalizes a macro key for lookup and comparison.
// Casers are stateful, so a new one is made per call.
func foldKey(key string) string {
	return cases.Fold().String(key)
}

// foldText applies opts to s for whole-string comparison.
func foldText(s string, opts Options) string {
	if opts.Has(DiacriticInsensitive) {
		t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
		if out, _, err := transform.String(t, s); err == nil {
			s = out
		}
	}
	if opts.Has(CaseInsensitive) {
		s = cases.Fold().String(s)
	}
	return s
}

func compareText(a, b string, opts Options) int {
	if opts == 0 {
		return strings.Compare(a, b)
	}
	return strings.Compare(foldText(a, opts), foldText(b, opts))
}

func equalText(a, b string, opts Options) bool {
	if opts == 0 {
		return a == b
	}
	return compareText(a, b, opts) == 0
}

// baseRune strips combining marks from a precomposed rune.
func baseRune(r rune) rune {
	d := norm.NFD.String(string(r))
	b, _ := utf8.DecodeRuneInString(d)
	return b
}

// skipMarks advances i past combining marks in s.
func skipMarks(s string, i int) int {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.Is(unicode.Mn, r) {
			break
		}
		i += size
	}
	return i
}

// matcher finds a target in text under the same folding as foldText.
// The target is folded once; the text is folded one rune at a time so
// offsets always refer to the original text.
type matcher struct {
	target string
	opts   Options
}

func newMatcher(target string, opts Options) matcher {
	return matcher{target: foldText(target, opts), opts: opts}
}

// piece returns the folded form of the rune at s[i:] and the offset just
// past it, including any combining marks it absorbs.
func (m matcher) piece(s string, i int) (string, int) {
	r, size := utf8.DecodeRuneInString(s[i:])
	i += size
	if m.opts.Has(DiacriticInsensitive) {
		if unicode.Is(unicode.Mn, r) {
			return "", i
		}
		r = baseRune(r)
		i = skipMarks(s, i)
	}
	if m.opts.Has(CaseInsensitive) {
		return cases.Fold().String(string(r)), i
	}
	return string(r), i
}

// at reports whether the target matches s starting at byte offset i and
// returns the offset just past the match. A folded rune such as ß ("ss")
// is never split between a match and its surroundings.
func (m matcher) at(s string, i int) (int, bool) {
	if m.opts.Has(DiacriticInsensitive) && i < len(s) {
		if r, _ := utf8.DecodeRuneInString(s[i:]); unicode.Is(unicode.Mn, r) {
			return i, false
		}
	}
	rest := m.target
	for rest != "" {
		if i >= len(s) {
			return i, false
		}
		p, next := m.piece(s, i)
		if !strings.HasPrefix(rest, p) {
			return i, false
		}
		rest = rest[len(p):]
		i = next
	}
	return i, true
}

// indexText returns the first offset at which target matches s, or -1.
func indexText(s, target string, opts Options) int {
	if opts == 0 {
		return strings.Index(s, target)
	}
	m := newMatcher(target, opts)
	if m.target == "" {
		return 0
	}
	for i := 0; i < len(s); {
		if _, ok := m.at(s, i); ok {
			return i
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return -1
}

func containsText(s, target string, opts Options) bool {
	return indexText(s, target, opts) >= 0
}

func hasPrefixText(s, prefix string, opts Options) bool {
	if opts == 0 {
		return strings.HasPrefix(s, prefix)
	}
	_, ok := newMatcher(prefix, opts).at(s, 0)
	return ok
}

func hasSuffixText(s, suffix string, opts Options) bool {
	if opts == 0 {
		return strings.HasSuffix(s, suffix)
	}
	m := newMatcher(suffix, opts)
	if m.target == "" {
		return true
	}
	for i := 0; i < len(s); {
		if end, ok := m.at(s, i); ok && end == len(s) {
			return true
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return false
}

// replaceText replaces every non-overlapping match of target in s and
// returns the result with the number of replacements.
func replaceText(s, target, replacement string, opts Options) (string, int) {
	if target == "" {
		return s, 0
	}
	if opts == 0 {
		n := strings.Count(s, target)
		if n == 0 {
			return s, 0
		}
		return strings.ReplaceAll(s, target, replacement), n
	}

	m := newMatcher(target, opts)
	if m.target == "" {
		return s, 0
	}

	var sb strings.Builder
	count := 0
	for i := 0; i < len(s); {
		if end, ok := m.at(s, i); ok {
			sb.WriteString(replacement)
			count++
			i = end
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		sb.WriteString(s[i : i+size])
		i += size
	}
	if count == 0 {
		return s, 0
	}
	return sb.String(), count
}
