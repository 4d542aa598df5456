// node.go defines the immutable building blocks of a compound string.
package bibstr

import "strings"

// NodeKind identifies what a Node holds.
//
// Nodes of different kinds order by their NodeKind value:
// KindText < KindNumber < KindMacro.
type NodeKind int

const (
	KindText   NodeKind = iota // quoted text, stored without its delimiters
	KindNumber                 // bare digits
	KindMacro                  // macro reference, matched case-insensitively
)

// String returns the lowercase name of the kind.
func (k NodeKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindMacro:
		return "macro"
	default:
		return "unknown"
	}
}

// Node is one piece of a compound string. The zero value is an empty text node.
type Node struct {
	kind  NodeKind
	value string
}

// TextNode returns a text node. s is the unquoted content and must not
// contain unbalanced braces; this is not checked.
func TextNode(s string) Node {
	return Node{kind: KindText, value: s}
}

// NumberNode returns a number node. s must contain only digits; this is not checked.
func NumberNode(s string) Node {
	return Node{kind: KindNumber, value: s}
}

// MacroNode returns a reference to the macro named key.
func MacroNode(key string) Node {
	return Node{kind: KindMacro, value: key}
}

// Kind returns the node kind.
func (n Node) Kind() NodeKind { return n.kind }

// Value returns the raw payload: text content, digits or macro key.
func (n Node) Value() string { return n.value }

// Equal reports whether n and other have the same kind and value.
// Macro keys are compared case-insensitively.
func (n Node) Equal(other Node) bool {
	if n.kind != other.kind {
		return false
	}
	if n.kind == KindMacro {
		return foldKey(n.value) == foldKey(other.value)
	}
	return n.value == other.value
}

// Compare orders n against other. Kinds are compared first; values of the
// same kind are compared with opts. Macro keys always ignore case so that
// Compare agrees with Equal.
func (n Node) Compare(other Node, opts Options) int {
	if n.kind != other.kind {
		if n.kind < other.kind {
			return -1
		}
		return 1
	}
	if n.kind == KindMacro {
		return strings.Compare(foldKey(n.value), foldKey(other.value))
	}
	return compareText(n.value, other.value, opts)
}

// String renders the node in BibTeX syntax.
func (n Node) String() string {
	if n.kind == KindText {
		return "{" + n.value + "}"
	}
	return n.value
}
