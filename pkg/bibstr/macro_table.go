// macro_table.go provides MacroTable, the in-memory MacroStore.
package bibstr

import (
	"fmt"
	"log/slog"
	"sort"

	"gopkg.in/yaml.v3"
)

type macroEntry struct {
	key string // spelling used when the macro was defined
	def String
}

// MacroTable maps case-insensitive macro keys to their definitions.
// The zero value is an empty table ready to use. MacroTable is not safe
// for concurrent mutation.
type MacroTable struct {
	entries map[string]macroEntry
	gen     uint64
	logger  *slog.Logger
}

// TableOption configures a MacroTable.
type TableOption func(*tableOptions)

type tableOptions struct {
	logger      *slog.Logger
	definitions map[string]string
}

// WithLogger sets the logger for table mutations.
func WithLogger(logger *slog.Logger) TableOption {
	return func(o *tableOptions) {
		o.logger = logger
	}
}

// WithDefinitions seeds the table with BibTeX-syntax definitions,
// e.g. {"conf": `{Conference on } # topic`}.
func WithDefinitions(defs map[string]string) TableOption {
	return func(o *tableOptions) {
		if o.definitions == nil {
			o.definitions = make(map[string]string, len(defs))
		}
		for k, v := range defs {
			o.definitions[k] = v
		}
	}
}

// NewMacroTable creates a table. It fails if a seeded definition is not
// valid BibTeX syntax.
func NewMacroTable(opts ...TableOption) (*MacroTable, error) {
	o := &tableOptions{}
	for _, opt := range opts {
		opt(o)
	}

	t := &MacroTable{logger: o.logger}
	for _, key := range sortedKeys(o.definitions) {
		if err := t.DefineBibTeX(key, o.definitions[key]); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *MacroTable) log() *slog.Logger {
	if t.logger != nil {
		return t.logger
	}
	return logger()
}

func (t *MacroTable) touch() {
	t.gen++
}

// Generation changes every time the table is mutated.
func (t *MacroTable) Generation() uint64 {
	return t.gen
}

// Len returns the number of macros.
func (t *MacroTable) Len() int {
	return len(t.entries)
}

// Lookup returns the definition of key.
func (t *MacroTable) Lookup(key string) (String, bool) {
	e, ok := t.entries[foldKey(key)]
	return e.def, ok
}

// Keys returns the macro keys, as spelled when defined, in sorted order.
func (t *MacroTable) Keys() []string {
	keys := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		keys = append(keys, e.key)
	}
	sort.Strings(keys)
	return keys
}

// Definitions returns a copy of all definitions keyed by their defined spelling.
func (t *MacroTable) Definitions() map[string]String {
	defs := make(map[string]String, len(t.entries))
	for _, e := range t.entries {
		defs[e.key] = e.def
	}
	return defs
}

// SetDefinitions replaces every definition with defs. Keys are applied in
// sorted order, so when two keys differ only in case the one sorting last wins.
func (t *MacroTable) SetDefinitions(defs map[string]String) {
	t.entries = make(map[string]macroEntry, len(defs))
	for _, k := range sortedKeys(defs) {
		t.entries[foldKey(k)] = macroEntry{key: k, def: defs[k]}
	}
	t.touch()
	t.log().Debug("macro definitions replaced", "count", len(t.entries))
}

// Define adds or updates the definition of key.
func (t *MacroTable) Define(key string, def String) {
	if t.entries == nil {
		t.entries = make(map[string]macroEntry)
	}
	t.entries[foldKey(key)] = macroEntry{key: key, def: def}
	t.touch()
	t.log().Debug("macro defined", "key", key, "definition", def.BibTeXString())
}

// DefineBibTeX parses literal with the table as its resolver and defines key with it.
func (t *MacroTable) DefineBibTeX(key, literal string) error {
	if !ValidMacroKey(key) {
		return fmt.Errorf("invalid macro key %q: %w", key, ErrMalformedLiteral)
	}
	def, err := Parse(literal, t)
	if err != nil {
		return fmt.Errorf("macro %q: %w", key, err)
	}
	t.Define(key, def)
	return nil
}

// Remove deletes key. Removing an undefined key is a no-op.
func (t *MacroTable) Remove(key string) {
	folded := foldKey(key)
	if _, ok := t.entries[folded]; !ok {
		return
	}
	delete(t.entries, folded)
	t.touch()
	t.log().Debug("macro removed", "key", key)
}

// Rename moves the definition of oldKey to newKey. Strings that reference
// oldKey are not rewritten. Renaming to a spelling of the same key only
// changes the stored spelling.
func (t *MacroTable) Rename(oldKey, newKey string) error {
	oldFolded, newFolded := foldKey(oldKey), foldKey(newKey)
	e, ok := t.entries[oldFolded]
	if !ok {
		return &MacroError{Err: ErrUnknownMacro, Key: oldKey}
	}
	if oldFolded != newFolded {
		if _, exists := t.entries[newFolded]; exists {
			return &MacroError{Err: ErrDuplicateMacro, Key: newKey}
		}
		delete(t.entries, oldFolded)
	}
	t.entries[newFolded] = macroEntry{key: newKey, def: e.def}
	t.touch()
	t.log().Debug("macro renamed", "from", oldKey, "to", newKey)
	return nil
}

// MarshalYAML encodes the table as a mapping of key to BibTeX syntax.
func (t *MacroTable) MarshalYAML() (interface{}, error) {
	out := make(map[string]string, len(t.entries))
	for _, e := range t.entries {
		out[e.key] = e.def.BibTeXString()
	}
	return out, nil
}

// UnmarshalYAML decodes a mapping of key to BibTeX syntax. Definitions may
// reference each other regardless of order. If any definition is invalid
// the table is left as it was.
func (t *MacroTable) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	entries := make(map[string]macroEntry, len(raw))
	for _, key := range sortedKeys(raw) {
		if !ValidMacroKey(key) {
			return fmt.Errorf("invalid macro key %q: %w", key, ErrMalformedLiteral)
		}
		def, err := Parse(raw[key], t)
		if err != nil {
			return fmt.Errorf("macro %q: %w", key, err)
		}
		entries[foldKey(key)] = macroEntry{key: key, def: def}
	}
	t.entries = entries
	t.touch()
	t.log().Debug("macro definitions decoded", "count", len(entries))
	return nil
}

// ValidMacroKey reports whether key can be written as a bare BibTeX identifier.
func ValidMacroKey(key string) bool {
	if key == "" || isDigit(key[0]) {
		return false
	}
	for i := 0; i < len(key); i++ {
		if !isIdentChar(key[i]) {
			return false
		}
	}
	return true
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
