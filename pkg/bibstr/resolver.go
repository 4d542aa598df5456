// resolver.go defines the macro resolution contract used by compound strings.
package bibstr

import (
	"log/slog"
	"strings"
	"sync/atomic"
)

// MacroResolver looks up macro definitions. Lookup returns the definition
// as stored, without expanding macros it refers to.
type MacroResolver interface {
	Lookup(key string) (String, bool)
}

// MacroStore is a MacroResolver whose definitions can be edited.
// Keys are case-insensitive.
type MacroStore interface {
	MacroResolver
	Definitions() map[string]String
	SetDefinitions(defs map[string]String)
	Define(key string, def String)
	Remove(key string)
	Rename(oldKey, newKey string) error
}

// Versioned is implemented by resolvers that can tell when their
// definitions changed. Generation must change on every mutation.
// Strings use it to keep their expanded value cached between mutations;
// other resolvers are consulted on every expansion.
type Versioned interface {
	Generation() uint64
}

var pkgLogger atomic.Pointer[slog.Logger]

// SetLogger sets the logger used for expansion diagnostics.
// A nil logger restores slog.Default.
func SetLogger(l *slog.Logger) {
	pkgLogger.Store(l)
}

func logger() *slog.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	return slog.Default()
}

// ExpandMacro returns the flat text of the macro named key, resolving nested
// references through r. visited holds the folded keys currently being
// expanded; pass nil to start a fresh expansion. Re-entering a key in
// visited fails with ErrCyclicMacro.
func ExpandMacro(r MacroResolver, key string, visited map[string]bool) (string, error) {
	if visited == nil {
		visited = make(map[string]bool)
	}
	var sb strings.Builder
	if err := expandMacroInto(&sb, r, key, visited); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func expandMacroInto(sb *strings.Builder, r MacroResolver, key string, visited map[string]bool) error {
	folded := foldKey(key)
	if visited[folded] {
		return &MacroError{Err: ErrCyclicMacro, Key: key}
	}
	if r == nil {
		return &MacroError{Err: ErrUnknownMacro, Key: key}
	}
	def, ok := r.Lookup(key)
	if !ok {
		return &MacroError{Err: ErrUnknownMacro, Key: key}
	}

	visited[folded] = true
	defer delete(visited, folded)

	for _, n := range def.nodeList() {
		if n.kind != KindMacro {
			sb.WriteString(n.value)
			continue
		}
		if err := expandMacroInto(sb, r, n.value, visited); err != nil {
			return err
		}
	}
	return nil
}
