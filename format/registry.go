package format

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/logos/intern"
)

// SymbolRegistry assigns short display labels to words. The first word
// starting with a given letter is labelled with the capitalized letter, the
// following ones get a numeric suffix: Dog → D, Dangerous → D2, Duck → D3.
// Words are compared case-insensitively, so a word always receives the
// label it has been given at its first occurrence.
//
// A SymbolRegistry is not safe for concurrent use.
type SymbolRegistry struct {
	labels  map[string]string // lower-case word → label
	letters map[rune]int      // initial → number of words labelled with it
}

// NewSymbolRegistry creates an empty registry.
func NewSymbolRegistry() *SymbolRegistry {
	return &SymbolRegistry{
		labels:  make(map[string]string),
		letters: make(map[rune]int),
	}
}

// Label returns the abbreviation for word, assigning a new one if word is
// seen for the first time.
func (reg *SymbolRegistry) Label(word string) string {
	if word == "" {
		return ""
	}
	key := strings.ToLower(word)
	if l, ok := reg.labels[key]; ok {
		return l
	}
	initial, _ := utf8.DecodeRuneInString(word)
	initial = unicode.ToUpper(initial)
	reg.letters[initial]++
	label := string(initial)
	if n := reg.letters[initial]; n > 1 {
		label += strconv.Itoa(n)
	}
	reg.labels[key] = label
	tracer().Debugf("symbol %q labelled %s", word, label)
	return label
}

// Full returns word with its first letter capitalized. Full names need no
// registration, as they cannot collide.
func (reg *SymbolRegistry) Full(word string) string {
	return capitalize(word)
}

// Symbol returns the label of an interned symbol.
func (reg *SymbolRegistry) Symbol(sym intern.Symbol, in *intern.Interner) string {
	return reg.Label(in.Resolve(sym))
}

// Size returns the number of words labelled so far.
func (reg *SymbolRegistry) Size() int {
	return len(reg.labels)
}

func capitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}
