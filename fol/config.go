package fol

import (
	"sync"

	"github.com/npillmayer/logos/format"
	"github.com/npillmayer/logos/lexicon"
	"github.com/npillmayer/schuko/gconf"
)

// Configuration keys.
const (
	KeyFormat      = "logos.format"
	KeyLexicon     = "logos.lexicon"
	KeyForestTrace = "logos.forest.trace"
)

// Options control compilation. The zero value selects the configured
// defaults.
type Options struct {
	Format  format.Formatter // output notation
	Lexicon *lexicon.Lexicon // vocabulary
}

func (o Options) formatter() format.Formatter {
	if o.Format == nil {
		return DefaultFormat()
	}
	return o.Format
}

func (o Options) lexicon() *lexicon.Lexicon {
	if o.Lexicon == nil {
		return DefaultLexicon()
	}
	return o.Lexicon
}

// kripke is true for output notations which need Kripke lowering.
func (o Options) kripke() bool {
	return o.formatter().Capabilities().WorldArguments
}

// DefaultFormat returns the formatter configured with key logos.format, or
// Unicode.
func DefaultFormat() format.Formatter {
	name := gconf.GetString(KeyFormat)
	if name == "" {
		return format.Unicode
	}
	f, ok := format.ByName(name)
	if !ok {
		tracer().Errorf("unknown output format %q configured, using unicode", name)
		return format.Unicode
	}
	return f
}

var lexicons = struct {
	sync.Mutex
	byPath map[string]*lexicon.Lexicon
}{byPath: make(map[string]*lexicon.Lexicon)}

// DefaultLexicon returns the lexicon loaded from the file configured with
// key logos.lexicon, or the built-in lexicon. Loaded lexicons are cached by
// path. A lexicon file which cannot be loaded is reported and replaced by
// the built-in lexicon.
func DefaultLexicon() *lexicon.Lexicon {
	path := gconf.GetString(KeyLexicon)
	if path == "" {
		return lexicon.Default()
	}
	lexicons.Lock()
	defer lexicons.Unlock()
	if lex, ok := lexicons.byPath[path]; ok {
		return lex
	}
	lex, err := lexicon.LoadFile(path)
	if err != nil {
		tracer().Errorf("cannot load lexicon %s: %v", path, err)
		lex = lexicon.Default()
	}
	lexicons.byPath[path] = lex
	return lex
}

// traceForest logs a forest decision, with level Info if configured.
func traceForest(format string, args ...interface{}) {
	if gconf.GetBool(KeyForestTrace) {
		tracer().Infof(format, args...)
		return
	}
	tracer().Debugf(format, args...)
}
