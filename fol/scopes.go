package fol

import (
	"github.com/cnf/structhash"
	"github.com/npillmayer/logos/ast"
	"github.com/npillmayer/logos/format"
	"github.com/npillmayer/logos/intern"
	"github.com/npillmayer/logos/lambda"
	"github.com/npillmayer/logos/parser"
)

// CompileAllScopes returns every scope reading of text in Unicode notation:
// all orderings of its quantifiers and negations which respect scope
// islands, each combined with the de re and de dicto readings of opaque
// verbs. Surface order comes first.
func CompileAllScopes(text string) ([]string, error) {
	return CompileAllScopesWithOptions(text, Options{})
}

// CompileAllScopesWithOptions is CompileAllScopes in the notation selected
// by opts. Every reading passes the same lowering as a single reading and
// is rendered with a fresh symbol registry. Readings with the same logical
// form are reported once.
func CompileAllScopesWithOptions(text string, opts Options) ([]string, error) {
	in := intern.New()
	fe := analyze(text, in, opts.lexicon())
	arena := ast.NewArena()
	root, _, err := fe.parser(arena, parser.NewConfig()).Parse(fe.tokens, nil)
	if err != nil {
		return nil, err
	}
	var results []string
	seen := make(map[string]bool)
	scopings := lambda.EnumerateScopings(root, arena)
	tracer().Debugf("%d scope readings", scopings.Len())
	for {
		scoped, ok := scopings.Next()
		if !ok {
			break
		}
		for _, r := range lambda.IntensionalReadings(scoped, arena, in, fe.lex) {
			r = lower(r, arena, fe, opts)
			fp, err := fingerprint(arena, in, r)
			if err != nil {
				return nil, err
			}
			if seen[fp] {
				continue
			}
			seen[fp] = true
			results = append(results, format.Transpile(r, arena, in, opts.formatter()))
		}
	}
	tracer().Debugf("%d distinct scope readings", len(results))
	return results, nil
}

// fingerprint hashes the tree of a logical form.
func fingerprint(arena *ast.Arena, in *intern.Interner, id ast.ExprID) (string, error) {
	return structhash.Hash(arena.Dump(in, id), 1)
}
