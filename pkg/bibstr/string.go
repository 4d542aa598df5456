// string.go defines String, the compound string value.
package bibstr

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// String is a BibTeX field value made of one or more nodes.
//
// A String is simple when it is a single text node; it then behaves
// exactly like a plain Go string. Otherwise it is complex and its plain
// value is the expansion of its nodes through its MacroResolver.
//
// String is immutable: operations that change content return a new value.
// The zero value is the empty simple string.
type String struct {
	nodes     []Node
	resolver  MacroResolver
	inherited bool
	cache     *expansion
}

// expansion caches the expanded value of a complex String. It is shared by
// copies of the same value, which all have the same nodes and resolver.
type expansion struct {
	mu    sync.Mutex
	valid bool
	gen   uint64
	value string
	err   error
}

var emptyNodes = []Node{TextNode("")}

// Plain returns a simple string holding text.
func Plain(text string) String {
	return String{nodes: []Node{TextNode(text)}}
}

// Inherited returns a simple string holding text that is marked as
// inherited from a template or default rather than set explicitly.
func Inherited(text string) String {
	return String{nodes: []Node{TextNode(text)}, inherited: true}
}

// FromNodes builds a String from nodes, resolving macros through r.
// The slice is copied.
func FromNodes(nodes []Node, r MacroResolver) (String, error) {
	if len(nodes) == 0 {
		return String{}, ErrEmptyNodes
	}
	owned := make([]Node, len(nodes))
	copy(owned, nodes)
	return newString(owned, r, false), nil
}

// MustFromNodes is like FromNodes but panics on an empty node list.
func MustFromNodes(r MacroResolver, nodes ...Node) String {
	s, err := FromNodes(nodes, r)
	if err != nil {
		panic(err)
	}
	return s
}

// FromTokens builds a String from an already classified token stream, as
// produced by an external BibTeX tokenizer or by Tokenize.
func FromTokens(tokens []Token, r MacroResolver) (String, error) {
	if len(tokens) == 0 {
		return String{}, ErrEmptyNodes
	}
	nodes := make([]Node, len(tokens))
	for i, tok := range tokens {
		nodes[i] = tok.Node()
	}
	return newString(nodes, r, false), nil
}

// newString takes ownership of nodes.
func newString(nodes []Node, r MacroResolver, inherited bool) String {
	s := String{nodes: nodes, resolver: r, inherited: inherited}
	if s.IsComplex() {
		s.cache = &expansion{}
	}
	return s
}

func (s String) nodeList() []Node {
	if len(s.nodes) == 0 {
		return emptyNodes
	}
	return s.nodes
}

// Nodes returns a copy of the nodes in concatenation order.
func (s String) Nodes() []Node {
	nodes := s.nodeList()
	out := make([]Node, len(nodes))
	copy(out, nodes)
	return out
}

// Resolver returns the resolver used for macro expansion, possibly nil.
func (s String) Resolver() MacroResolver {
	return s.resolver
}

// IsComplex reports whether s has more than one node or is a single macro reference.
func (s String) IsComplex() bool {
	return len(s.nodes) > 1 || (len(s.nodes) == 1 && s.nodes[0].kind == KindMacro)
}

// IsInherited reports whether s was inherited rather than set explicitly.
func (s String) IsInherited() bool {
	return s.inherited
}

// WithResolver returns s resolving its macros through r.
func (s String) WithResolver(r MacroResolver) String {
	return newString(s.nodes, r, s.inherited)
}

// Uninherited returns s with the inherited mark cleared.
func (s String) Uninherited() String {
	if !s.inherited {
		return s
	}
	return newString(s.nodes, s.resolver, false)
}

// Inherit returns s marked as inherited.
func (s String) Inherit() String {
	if s.inherited {
		return s
	}
	return newString(s.nodeList(), s.resolver, true)
}

// plain returns the value of a simple string.
func (s String) plain() string {
	return s.nodeList()[0].value
}

// Expand returns the fully expanded value of s. It fails with an error
// wrapping ErrUnknownMacro or ErrCyclicMacro if a macro cannot be resolved.
func (s String) Expand() (string, error) {
	if !s.IsComplex() {
		return s.plain(), nil
	}
	v, err := s.expanded()
	if err != nil {
		return "", err
	}
	return v, nil
}

// String returns the expanded value of s. Macros that cannot be resolved
// are rendered as their literal key.
func (s String) String() string {
	if !s.IsComplex() {
		return s.plain()
	}
	return s.expandedValue()
}

func (s String) expandedValue() string {
	v, _ := s.expanded()
	return v
}

// expanded returns the display value and the first resolution error.
func (s String) expanded() (string, error) {
	c := s.cache
	if c == nil {
		return s.expand()
	}

	versioned, canCache := s.resolver.(Versioned)
	c.mu.Lock()
	defer c.mu.Unlock()
	if canCache && c.valid && c.gen == versioned.Generation() {
		return c.value, c.err
	}
	value, err := s.expand()
	if canCache {
		c.valid, c.gen, c.value, c.err = true, versioned.Generation(), value, err
	}
	return value, err
}

func (s String) expand() (string, error) {
	var sb strings.Builder
	var firstErr error
	for _, n := range s.nodeList() {
		if n.kind != KindMacro {
			sb.WriteString(n.value)
			continue
		}
		v, err := ExpandMacro(s.resolver, n.value, nil)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			logger().Debug("macro left unexpanded", "key", n.value, "error", err)
			sb.WriteString(n.value)
			continue
		}
		sb.WriteString(v)
	}
	return sb.String(), firstErr
}

// Equal reports whether the expanded values of s and other are identical.
func (s String) Equal(other String) bool {
	return s.String() == other.String()
}

// Compare compares the expanded values of s and other using opts.
func (s String) Compare(other String, opts Options) int {
	return compareText(s.String(), other.String(), opts)
}

// HasPrefix reports whether the expanded value begins with prefix.
func (s String) HasPrefix(prefix string) bool {
	return strings.HasPrefix(s.String(), prefix)
}

// HasSuffix reports whether the expanded value ends with suffix.
func (s String) HasSuffix(suffix string) bool {
	return strings.HasSuffix(s.String(), suffix)
}

// Contains reports whether the expanded value contains substr under opts.
func (s String) Contains(substr string, opts Options) bool {
	return containsText(s.String(), substr, opts)
}

// ToLower returns the expanded value in lower case.
func (s String) ToLower() string {
	return strings.ToLower(s.String())
}

// ToUpper returns the expanded value in upper case.
func (s String) ToUpper() string {
	return strings.ToUpper(s.String())
}

// Len returns the byte length of the expanded value.
func (s String) Len() int {
	return len(s.String())
}

// Hash hashes the expanded value, so strings that are Equal hash alike.
func (s String) Hash() uint64 {
	return xxhash.Sum64String(s.String())
}

// MarshalText encodes s in BibTeX syntax so that macro references survive.
func (s String) MarshalText() ([]byte, error) {
	return []byte(s.BibTeXString()), nil
}

// MarshalJSON encodes s as a JSON string in BibTeX syntax.
func (s String) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.BibTeXString())
}

// MarshalYAML encodes s as a YAML scalar in BibTeX syntax.
func (s String) MarshalYAML() (interface{}, error) {
	return s.BibTeXString(), nil
}

// IsResolutionError reports whether err came from resolving a macro.
func IsResolutionError(err error) bool {
	return errors.Is(err, ErrUnknownMacro) || errors.Is(err, ErrCyclicMacro)
}
