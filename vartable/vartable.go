// Package vartable holds the name<->identifier mapping and the truth
// value of every variable touched by a solve: source variables interned
// from parsed input, and fresh variables introduced by the Tseitin
// encoder.
package vartable

import (
	"fmt"
	"strings"
)

// ID identifies a variable. Identifiers are dense and contiguous
// starting at 1; the zero value means "no variable".
type ID int

// TruthValue is the binding of a variable under the current partial
// assignment. The zero value is Undefined, so a freshly grown table
// slot needs no explicit initialization.
type TruthValue int

const (
	Undefined TruthValue = iota
	True
	False
)

func (v TruthValue) String() string {
	switch v {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "undefined"
	}
}

// Table is the mutable name<->ID<->value mapping shared by the parser,
// the Tseitin encoder and the DPLL engine over the course of one solve.
// It is not safe for concurrent use; the solver is single-threaded.
type Table struct {
	names    []string // names[id-1] is the name of variable id; a freshPrefix tag for fresh vars
	byName   map[string]ID
	values   []TruthValue
	freshSeq int
}

// New returns an empty variable table.
func New() *Table {
	return &Table{byName: make(map[string]ID)}
}

// Intern returns the identifier for name, allocating a fresh one and
// recording it (Undefined) if name was not seen before. name must be
// non-empty and alphanumeric; this is the one place that rule is
// enforced, so every caller (the postfix parser and the direct-CNF
// reader) gets it for free.
func (t *Table) Intern(name string) (ID, error) {
	if err := validateName(name); err != nil {
		return 0, err
	}
	if id, ok := t.byName[name]; ok {
		return id, nil
	}
	id := t.allocate(string([]byte(name))) // defensive copy
	t.byName[name] = id
	return id, nil
}

// Fresh allocates a variable with no externally parseable name, for use
// by the Tseitin encoder. Its internal tag can never collide with a
// name Intern would accept, since it is not alphanumeric-only.
func (t *Table) Fresh() ID {
	t.freshSeq++
	return t.allocate(fmt.Sprintf("%s%d", freshPrefix, t.freshSeq))
}

func (t *Table) allocate(name string) ID {
	t.names = append(t.names, name)
	t.values = append(t.values, Undefined)
	return ID(len(t.names))
}

// Value returns the current truth value of id.
func (t *Table) Value(id ID) TruthValue {
	return t.values[id-1]
}

// SetValue rebinds id to v.
func (t *Table) SetValue(id ID, v TruthValue) {
	t.values[id-1] = v
}

// Name returns the source name id was interned under, or its internal
// tag if it was allocated by Fresh.
func (t *Table) Name(id ID) string {
	return t.names[id-1]
}

// Len returns the number of identifiers allocated so far.
func (t *Table) Len() int {
	return len(t.names)
}

// IsFresh reports whether id was allocated by Fresh rather than
// Intern, i.e. it has no name a formula or CNF input could reference.
func (t *Table) IsFresh(id ID) bool {
	return strings.HasPrefix(t.names[id-1], freshPrefix)
}

const freshPrefix = "$tseitin."

// NextUndefined returns the smallest identifier whose value is still
// Undefined, or 0 if every allocated variable is bound. DPLL's decision
// order depends on this being deterministic.
func (t *Table) NextUndefined() ID {
	for i, v := range t.values {
		if v == Undefined {
			return ID(i + 1)
		}
	}
	return 0
}

func validateName(name string) error {
	if name == "" {
		return errEmptyName
	}
	for _, r := range name {
		if !isAlnum(r) {
			return &invalidNameError{name: name}
		}
	}
	return nil
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

var errEmptyName = &invalidNameError{name: ""}

// invalidNameError reports a lexically malformed variable name.
type invalidNameError struct {
	name string
}

func (e *invalidNameError) Error() string {
	if e.name == "" {
		return "empty variable name"
	}
	return fmt.Sprintf("variable name %q is not alphanumeric", e.name)
}
