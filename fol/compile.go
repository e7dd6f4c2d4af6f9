package fol

import (
	"strings"

	"github.com/npillmayer/logos/ast"
	"github.com/npillmayer/logos/discovery"
	"github.com/npillmayer/logos/drs"
	"github.com/npillmayer/logos/format"
	"github.com/npillmayer/logos/intern"
	"github.com/npillmayer/logos/lexer"
	"github.com/npillmayer/logos/lexicon"
	"github.com/npillmayer/logos/mwe"
	"github.com/npillmayer/logos/parser"
	"github.com/npillmayer/logos/pragmatics"
	"github.com/npillmayer/logos/semantics"
)

// --- Front end -------------------------------------------------------------

// frontend holds the result of the passes before parsing: the token stream
// with multi-word expressions collapsed, and the type declarations found by
// discovery.
type frontend struct {
	in     *intern.Interner
	lex    *lexicon.Lexicon
	tokens []lexer.Token
	reg    *discovery.TypeRegistry
}

func analyze(text string, in *intern.Interner, lex *lexicon.Lexicon) *frontend {
	tokens := lexer.New(lex, in).Tokenize(text)
	tokens = mwe.Apply(tokens, mwe.BuildTrie(lex), in)
	reg := discovery.Scan(tokens, in)
	tracer().Debugf("front end: %d tokens, %d types", len(tokens), reg.Size())
	return &frontend{in: in, lex: lex, tokens: tokens, reg: reg}
}

func (fe *frontend) parser(arena *ast.Arena, cfg parser.Config) *parser.Parser {
	return parser.New(arena, fe.in, fe.lex, fe.reg, cfg)
}

// parseWith parses the token stream with the DRS of ws, handing the DRS
// back in any case. It returns the logical forms of the sentences.
func (fe *frontend) parseWith(ws *drs.WorldState, arena *ast.Arena, cfg parser.Config) ([]ast.ExprID, error) {
	d, err := ws.TakeDRS()
	if err != nil {
		return nil, err
	}
	p := fe.parser(arena, cfg)
	_, d, err = p.Parse(fe.tokens, d)
	if rerr := ws.Restore(d); rerr != nil && err == nil {
		err = rerr
	}
	return p.Sentences(), err
}

// parseFresh parses the token stream with a fresh discourse.
func (fe *frontend) parseFresh(arena *ast.Arena, cfg parser.Config) ([]ast.ExprID, error) {
	p := fe.parser(arena, cfg)
	if _, _, err := p.Parse(fe.tokens, nil); err != nil {
		return nil, err
	}
	return p.Sentences(), nil
}

// lower applies the post-parse passes: axioms, Kripke lowering if the
// output notation needs it, and pragmatics.
func lower(root ast.ExprID, arena *ast.Arena, fe *frontend, opts Options) ast.ExprID {
	root = semantics.ApplyAxioms(root, arena, fe.in, fe.lex)
	if opts.kripke() {
		root = semantics.ApplyKripkeLowering(root, arena, fe.in)
	}
	return pragmatics.Apply(root, arena, fe.in)
}

// lowerAll lowers each sentence on its own; sentences are replaced in place.
func lowerAll(sentences []ast.ExprID, arena *ast.Arena, fe *frontend, opts Options) []ast.ExprID {
	for i, s := range sentences {
		sentences[i] = lower(s, arena, fe, opts)
	}
	return sentences
}

// withConstraints appends time constraints as conjuncts.
func withConstraints(formula string, constraints []drs.TimeConstraint) string {
	if len(constraints) == 0 {
		return formula
	}
	parts := make([]string, 0, len(constraints)+1)
	parts = append(parts, formula)
	for _, tc := range constraints {
		parts = append(parts, tc.String())
	}
	return strings.Join(parts, " ∧ ")
}

// --- Single readings -------------------------------------------------------

// Compile translates text to a Unicode first-order formula. Several sentences
// are rendered as a numbered list of formulas.
func Compile(text string) (string, error) {
	return CompileWithOptions(text, Options{Format: format.Unicode})
}

// CompileSimple translates text to plain ASCII first-order logic with
// flattened events.
func CompileSimple(text string) (string, error) {
	return CompileWithOptions(text, Options{Format: format.SimpleFOL})
}

// CompileKripke translates text with modal operators lowered to explicit
// quantification over possible worlds.
func CompileKripke(text string) (string, error) {
	return CompileWithOptions(text, Options{Format: format.Kripke})
}

// CompileWithOptions translates text in the notation selected by opts.
func CompileWithOptions(text string, opts Options) (string, error) {
	return compileDiscourse(text, drs.NewWorldState(), intern.New(), opts)
}

// CompileWithDiscourse translates text in the context of a discourse:
// referents introduced by earlier calls with the same world state and
// interner are available for pronouns and definite descriptions. The time
// constraints committed by text are appended.
func CompileWithDiscourse(text string, ws *drs.WorldState, in *intern.Interner) (string, error) {
	return compileDiscourse(text, ws, in, Options{})
}

// CompileWithDiscourseOptions is CompileWithDiscourse in the notation
// selected by opts.
func CompileWithDiscourseOptions(text string, ws *drs.WorldState, in *intern.Interner, opts Options) (string, error) {
	return compileDiscourse(text, ws, in, opts)
}

func compileDiscourse(text string, ws *drs.WorldState, in *intern.Interner, opts Options) (string, error) {
	fe := analyze(text, in, opts.lexicon())
	arena := ast.NewArena()
	sentences, err := fe.parseWith(ws, arena, parser.NewConfig())
	if err != nil {
		return "", err
	}
	committed := len(ws.TimeConstraints())
	if err = ws.EndSentence(); err != nil {
		return "", err
	}
	sentences = lowerAll(sentences, arena, fe, opts)
	out := format.NewTranspiler(opts.formatter(), nil, arena, in).TranspileDiscourse(sentences...)
	return withConstraints(out, ws.TimeConstraints()[committed:]), nil
}

// CompileDiscourse translates a sequence of sentences as one discourse.
// Sentence i describes event e_i; the formulas are conjoined and the events
// are ordered by Precedes(e_i, e_{i+1}), followed by the time constraints of
// tensed sentences.
func CompileDiscourse(sentences []string) (string, error) {
	return CompileDiscourseWithOptions(sentences, Options{})
}

// CompileDiscourseWithOptions is CompileDiscourse in the notation selected by
// opts.
func CompileDiscourseWithOptions(sentences []string, opts Options) (string, error) {
	in := intern.New()
	ws := drs.NewWorldState()
	reg := format.NewSymbolRegistry()
	lex := opts.lexicon()
	results := make([]string, 0, len(sentences))
	for _, s := range sentences {
		ev := ws.NextEventVar()
		fe := analyze(s, in, lex)
		arena := ast.NewArena()
		forms, err := fe.parseWith(ws, arena, parser.NewConfig(parser.EventVar(ev)))
		if err != nil {
			return "", err
		}
		if err = ws.EndSentence(); err != nil {
			return "", err
		}
		tr := format.NewTranspiler(opts.formatter(), reg, arena, in)
		for _, f := range lowerAll(forms, arena, fe, opts) {
			results = append(results, tr.Transpile(f))
		}
	}
	history := ws.EventHistory()
	for i := 0; i+1 < len(history); i++ {
		results = append(results, "Precedes("+history[i]+", "+history[i+1]+")")
	}
	return withConstraints(strings.Join(results, " ∧ "), ws.TimeConstraints()), nil
}

// CompileAmbiguous returns the default reading of text and, if text contains
// a preposition which may attach to a noun and this changes the result, the
// reading with noun attachment.
func CompileAmbiguous(text string) ([]string, error) {
	return CompileAmbiguousWithOptions(text, Options{})
}

// CompileAmbiguousWithOptions is CompileAmbiguous in the notation selected by
// opts.
func CompileAmbiguousWithOptions(text string, opts Options) ([]string, error) {
	fe := analyze(text, intern.New(), opts.lexicon())
	first, err := fe.reading(parser.NewConfig(), opts)
	if err != nil {
		return nil, err
	}
	if !fe.attachmentAmbiguity() {
		return []string{first}, nil
	}
	second, err := fe.reading(parser.NewConfig(parser.AttachPPToNoun(true)), opts)
	if err != nil {
		return nil, err
	}
	if second == first {
		return []string{first}, nil
	}
	return []string{first, second}, nil
}

// reading parses and renders the front end's tokens with parser
// configuration cfg, with a fresh discourse and symbol registry.
func (fe *frontend) reading(cfg parser.Config, opts Options) (string, error) {
	arena := ast.NewArena()
	sentences, err := fe.parseFresh(arena, cfg)
	if err != nil {
		return "", err
	}
	sentences = lowerAll(sentences, arena, fe, opts)
	return format.NewTranspiler(opts.formatter(), nil, arena, fe.in).TranspileDiscourse(sentences...), nil
}

// --- Tooling ---------------------------------------------------------------

// AST is a parsed text, for tools which inspect the logical form.
type AST struct {
	Arena    *ast.Arena
	Root     ast.ExprID
	Interner *intern.Interner
}

// Dump returns the tree of the logical form.
func (a AST) Dump() *ast.DumpNode {
	return a.Arena.Dump(a.Interner, a.Root)
}

// CompileAST parses text and applies axioms and pragmatics, without
// rendering. With a Kripke-capable format in opts, the tree is lowered.
func CompileAST(text string, opts Options) (AST, error) {
	in := intern.New()
	fe := analyze(text, in, opts.lexicon())
	arena := ast.NewArena()
	root, _, err := fe.parser(arena, parser.NewConfig()).Parse(fe.tokens, nil)
	if err != nil {
		return AST{}, err
	}
	return AST{Arena: arena, Root: lower(root, arena, fe, opts), Interner: in}, nil
}
