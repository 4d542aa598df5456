// search.go implements node-aware substring search and replacement.
package bibstr

// HasSubstring reports whether target occurs in s.
//
// Two simple strings use an ordinary substring test. When exactly one of
// the two is complex the result is always false. For two complex strings
// the nodes of target must line up with consecutive nodes of s: text may
// match partially only at the outer ends of target (the first target node
// as a suffix, the last as a prefix), while numbers, macros and interior
// text must match whole. A complex target with one node is a macro, so
// a target's text never matches in the middle of a text node.
func (s String) HasSubstring(target String, opts Options) bool {
	sc, tc := s.IsComplex(), target.IsComplex()
	if sc != tc {
		return false
	}
	if !sc {
		return containsText(s.plain(), target.plain(), opts)
	}

	for i := 0; i+len(target.nodes) <= len(s.nodes); i++ {
		if nodesContain(s.nodes[i:i+len(target.nodes)], target.nodes, opts) {
			return true
		}
	}
	return false
}

// nodesContain matches window against target node for node.
func nodesContain(window, target []Node, opts Options) bool {
	last := len(target) - 1
	for j, tn := range target {
		wn := window[j]
		if wn.kind != tn.kind {
			return false
		}
		if tn.kind != KindText {
			if wn.Compare(tn, opts) != 0 {
				return false
			}
			continue
		}
		var ok bool
		switch {
		case j == 0:
			ok = hasSuffixText(wn.value, tn.value, opts)
		case j == last:
			ok = hasPrefixText(wn.value, tn.value, opts)
		default:
			ok = equalText(wn.value, tn.value, opts)
		}
		if !ok {
			return false
		}
	}
	return true
}

// Replace returns s with occurrences of target replaced by replacement,
// and the number of replacements made.
//
// Two simple strings use ordinary substring replacement. When exactly one
// of s and target is complex nothing is replaced. For two complex strings
// only runs of whole nodes equal to the nodes of target are replaced, left
// to right and without overlap; a macro node is never split. When nothing
// matches s is returned unchanged. A changed value is no longer inherited.
func (s String) Replace(target, replacement String, opts Options) (String, int) {
	sc, tc := s.IsComplex(), target.IsComplex()
	if sc != tc {
		return s, 0
	}
	if !sc {
		out, n := replaceText(s.plain(), target.plain(), replacement.String(), opts)
		if n == 0 {
			return s, 0
		}
		return newString([]Node{TextNode(out)}, s.resolver, false), n
	}

	insert := replacement.nodeList()
	if !replacement.IsComplex() && replacement.plain() == "" {
		insert = nil
	}

	var out []Node
	count := 0
	for i := 0; i < len(s.nodes); {
		if i+len(target.nodes) <= len(s.nodes) && nodesEqual(s.nodes[i:i+len(target.nodes)], target.nodes, opts) {
			out = append(out, insert...)
			count++
			i += len(target.nodes)
			continue
		}
		out = append(out, s.nodes[i])
		i++
	}
	if count == 0 {
		return s, 0
	}
	if len(out) == 0 {
		out = []Node{TextNode("")}
	}
	return newString(out, s.resolver, false), count
}

func nodesEqual(a, b []Node, opts Options) bool {
	for i := range a {
		if a[i].Compare(b[i], opts) != 0 {
			return false
		}
	}
	return true
}
