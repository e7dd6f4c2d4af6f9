package semantics

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/logos/ast"
	"github.com/npillmayer/logos/intern"
	"github.com/npillmayer/logos/lexicon"
)

// AxiomRules is the rule table of axiom expansion. Order matters: the first
// rule rewriting a node wins.
var AxiomRules = []RewriteRule{
	{Name: "canonical", Pattern: AnyPredicate(), Rewrite: canonicalPredicate},
	{Name: "privative", Pattern: UnaryPredicate(), Rewrite: privativeCompound},
	{Name: "noun-entailment", Pattern: UnaryPredicate(), Rewrite: nounEntailments},
	{Name: "canonical-event", Pattern: AnyEvent(), Rewrite: canonicalEvent},
	{Name: "verb-entailment", Pattern: AnyEvent(), Rewrite: verbEntailment},
}

// ApplyAxioms expands lexical axioms for every predicate and event of the
// tree rooted at id:
//
//	Lack(x, y)    ⇒ ¬Have(x, y)
//	Fake-Gun(x)   ⇒ ¬Gun(x) ∧ Resembles(x, ^Gun)
//	Dog(x)        ⇒ Dog(x) ∧ Mammal(x) ∧ Animal(x) ∧ Organism(x)
//	Murder(e,a,t) ⇒ Murder(e,a,t) ∧ Kill(e,a,t) ∧ Intentional(a)
//
// This is a single pass; expanded predicates are not expanded again.
func ApplyAxioms(id ast.ExprID, arena *ast.Arena, in *intern.Interner, lex *lexicon.Lexicon) ast.ExprID {
	if lex == nil {
		lex = lexicon.Default()
	}
	env := &Environment{Arena: arena, In: in, Lex: lex}
	return Rewrite(id, AxiomRules, env)
}

// --- Predicates ------------------------------------------------------------

func canonicalPredicate(redex ast.ExprID, env *Environment) ast.ExprID {
	p := env.Arena.Expr(redex).(ast.Predicate)
	c, ok := env.Lex.Canonical(env.Name(p.Name))
	if !ok {
		return redex
	}
	p.Name = env.Sym(capitalize(c.Lemma))
	r := env.Arena.NewExpr(p)
	if c.Negative {
		r = env.Arena.Not(r)
	}
	return r
}

// privativeCompound handles nouns fused with a privative adjective by the
// parser: a fake gun is not a gun, but resembles one.
func privativeCompound(redex ast.ExprID, env *Environment) ast.ExprID {
	p := env.Arena.Expr(redex).(ast.Predicate)
	adj, noun, found := strings.Cut(env.Name(p.Name), "-")
	if !found || noun == "" || !env.Lex.IsPrivative(adj) {
		return redex
	}
	a := env.Arena
	head := env.Sym(noun)
	not := a.Not(a.NewExpr(ast.Predicate{Name: head, Args: p.Args, World: p.World}))
	resembles := a.NewExpr(ast.Predicate{
		Name:  env.Sym("Resembles"),
		Args:  []ast.TermID{p.Args[0], a.NewTerm(ast.Intension{Predicate: head})},
		World: p.World,
	})
	return a.And(not, resembles)
}

// nounEntailments conjoins the meaning postulates and the hypernyms of a
// noun. Hypernyms are followed transitively; the visited set guards against
// cycles in the lexicon.
func nounEntailments(redex ast.ExprID, env *Environment) ast.ExprID {
	p := env.Arena.Expr(redex).(ast.Predicate)
	lemma := strings.ToLower(env.Name(p.Name))
	var extra []string
	extra = append(extra, env.Lex.NounEntailments(lemma)...)
	visited := map[string]bool{lemma: true}
	queue := append([]string(nil), env.Lex.Hypernyms(lemma)...)
	for len(queue) > 0 {
		h := queue[0]
		queue = queue[1:]
		if visited[h] {
			continue
		}
		visited[h] = true
		extra = append(extra, h)
		queue = append(queue, env.Lex.Hypernyms(h)...)
	}
	if len(extra) == 0 {
		return redex
	}
	r := redex
	seen := map[string]bool{lemma: true}
	for _, e := range extra {
		if seen[e] {
			continue
		}
		seen[e] = true
		pred := ast.Predicate{Name: env.Sym(capitalize(e)), Args: p.Args, World: p.World}
		r = env.Arena.And(r, env.Arena.NewExpr(pred))
	}
	return r
}

// --- Events ----------------------------------------------------------------

func canonicalEvent(redex ast.ExprID, env *Environment) ast.ExprID {
	ev := env.Arena.Expr(redex).(ast.NeoEvent)
	c, ok := env.Lex.Canonical(env.Name(ev.Verb))
	if !ok {
		return redex
	}
	ev.Verb = env.Sym(capitalize(c.Lemma))
	r := env.Arena.NewExpr(ev)
	if c.Negative {
		r = env.Arena.Not(r)
	}
	return r
}

// verbEntailment adds the entailed verb, sharing event variable and roles,
// and the manner predicates of the agent.
func verbEntailment(redex ast.ExprID, env *Environment) ast.ExprID {
	ev := env.Arena.Expr(redex).(ast.NeoEvent)
	ent, ok := env.Lex.VerbEntailment(env.Name(ev.Verb))
	if !ok {
		return redex
	}
	entailed := ev
	entailed.Verb = env.Sym(capitalize(ent.Verb))
	r := env.Arena.And(redex, env.Arena.NewExpr(entailed))
	if agent, ok := ev.RoleTerm(ast.Agent); ok {
		for _, m := range ent.Manner {
			pred := ast.Predicate{Name: env.Sym(capitalize(m)), Args: []ast.TermID{agent}, World: ev.World}
			r = env.Arena.And(r, env.Arena.NewExpr(pred))
		}
	}
	return r
}

func capitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}
