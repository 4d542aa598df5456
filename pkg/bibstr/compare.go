// compare.go implements equality and ordering of strings as complex strings.
package bibstr

// EqualAsComplex reports whether a and b are the same as complex strings:
// both simple with the same value, or both complex with pairwise equal
// nodes. Macros are never expanded, so two strings referencing the same
// key stay equal whatever the key is defined as.
func EqualAsComplex(a, b String) bool {
	ac, bc := a.IsComplex(), b.IsComplex()
	if ac != bc {
		return false
	}
	if !ac {
		return a.plain() == b.plain()
	}
	if len(a.nodes) != len(b.nodes) {
		return false
	}
	for i := range a.nodes {
		if !a.nodes[i].Equal(b.nodes[i]) {
			return false
		}
	}
	return true
}

// CompareAsComplex orders a and b as complex strings. A simple string
// always sorts before a complex one, whatever their values. Two complex
// strings compare node by node, and a strict prefix sorts first. Two
// simple strings compare by value using opts.
func CompareAsComplex(a, b String, opts Options) int {
	ac, bc := a.IsComplex(), b.IsComplex()
	switch {
	case !ac && !bc:
		return compareText(a.plain(), b.plain(), opts)
	case !ac:
		return -1
	case !bc:
		return 1
	}

	n := min(len(a.nodes), len(b.nodes))
	for i := 0; i < n; i++ {
		if c := a.nodes[i].Compare(b.nodes[i], opts); c != 0 {
			return c
		}
	}
	switch {
	case len(a.nodes) < len(b.nodes):
		return -1
	case len(a.nodes) > len(b.nodes):
		return 1
	}
	return 0
}

// EqualAsComplex is the method form of EqualAsComplex.
func (s String) EqualAsComplex(other String) bool {
	return EqualAsComplex(s, other)
}

// CompareAsComplex is the method form of CompareAsComplex.
func (s String) CompareAsComplex(other String, opts Options) int {
	return CompareAsComplex(s, other, opts)
}
