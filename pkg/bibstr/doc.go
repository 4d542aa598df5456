// Package bibstr models BibTeX field values that are concatenations of
// quoted text, raw numbers and macro references, such as
//
//	"Proc. of " # conf # " 2006"
//
// A String behaves like an ordinary string through its expanded value
// (String, Equal, Compare, HasPrefix, ...) while keeping the node structure
// needed to write valid BibTeX back out and to re-resolve macros after their
// definitions change.
//
// Macro definitions are looked up through a MacroResolver. MacroTable is the
// in-memory implementation; it is not synchronized, so callers sharing one
// across goroutines must serialize its mutations.
package bibstr
