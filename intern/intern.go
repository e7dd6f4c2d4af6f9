/*
Package intern maps text fragments to small integer symbols.

An Interner is owned by a single compilation unit (or, for discourse
compilation, by the caller for the lifetime of the discourse). Symbols of
different interners are not comparable.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package intern

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'logos.intern'.
func tracer() tracing.Trace {
	return tracing.Select("logos.intern")
}

// Symbol is a handle for an interned string.
// The zero value is the symbol for the empty string.
type Symbol uint32

// Empty is the symbol for "".
const Empty Symbol = 0

// IsEmpty is true for the empty-string symbol.
func (s Symbol) IsEmpty() bool {
	return s == Empty
}

// Interner deduplicates strings. Not safe for concurrent use.
type Interner struct {
	index   map[string]Symbol
	strings []string
}

// New creates an interner with the empty string pre-interned as symbol 0.
func New() *Interner {
	in := &Interner{
		index:   make(map[string]Symbol, 64),
		strings: make([]string, 1, 64),
	}
	in.index[""] = Empty
	return in
}

// Intern returns the symbol for s, creating one if s is new.
func (in *Interner) Intern(s string) Symbol {
	if sym, ok := in.index[s]; ok {
		return sym
	}
	sym := Symbol(len(in.strings))
	in.strings = append(in.strings, s)
	in.index[s] = sym
	return sym
}

// Lookup returns the symbol for s without creating one.
func (in *Interner) Lookup(s string) (Symbol, bool) {
	sym, ok := in.index[s]
	return sym, ok
}

// Resolve returns the text of a symbol. Resolving a symbol which has not
// been produced by this interner is a programming error.
func (in *Interner) Resolve(sym Symbol) string {
	if int(sym) >= len(in.strings) {
		tracer().Errorf("symbol %d out of range for interner of size %d", sym, len(in.strings))
		panic(fmt.Sprintf("intern: unknown symbol %d", sym))
	}
	return in.strings[sym]
}

// Len returns the number of interned strings, including "".
func (in *Interner) Len() int {
	return len(in.strings)
}
