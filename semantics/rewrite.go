package semantics

import (
	"github.com/npillmayer/logos/ast"
	"github.com/npillmayer/logos/intern"
	"github.com/npillmayer/logos/lexicon"
)

// Environment holds everything a rewriter may need besides the redex.
type Environment struct {
	Arena *ast.Arena
	In    *intern.Interner
	Lex   *lexicon.Lexicon
}

// Name returns the text of a symbol.
func (env *Environment) Name(s intern.Symbol) string {
	return env.In.Resolve(s)
}

// Sym interns a string.
func (env *Environment) Sym(s string) intern.Symbol {
	return env.In.Intern(s)
}

// Rewriter is a function
//
//	expr × env ↦ expr
//
// i.e., a term rewriting function. Returning the redex unchanged signals that
// the rewriter declined to rewrite.
type Rewriter func(redex ast.ExprID, env *Environment) ast.ExprID

// Pattern decides whether a rule applies to a node.
type Pattern func(e ast.Expr, env *Environment) bool

// RewriteRule is a type representing a rule for term rewriting.
// It contains a pattern and a rewriting-function. The pattern will be applied
// to nodes of a tree, and if it matches the rewriter will be called on the redex.
type RewriteRule struct {
	Name    string
	Pattern Pattern
	Rewrite Rewriter
}

// ---------------------------------------------------------------------------

// Anything is a pattern matching any node.
func Anything() Pattern {
	return func(ast.Expr, *Environment) bool { return true }
}

// AnyPredicate is a pattern matching predicate nodes.
func AnyPredicate() Pattern {
	return func(e ast.Expr, _ *Environment) bool {
		_, ok := e.(ast.Predicate)
		return ok
	}
}

// UnaryPredicate is a pattern matching one-place predicates, i.e. the
// application of common nouns and intersective adjectives.
func UnaryPredicate() Pattern {
	return func(e ast.Expr, _ *Environment) bool {
		p, ok := e.(ast.Predicate)
		return ok && len(p.Args) == 1
	}
}

// AnyEvent is a pattern matching event descriptions.
func AnyEvent() Pattern {
	return func(e ast.Expr, _ *Environment) bool {
		_, ok := e.(ast.NeoEvent)
		return ok
	}
}

// ---------------------------------------------------------------------------

// Rewrite applies rules to the tree rooted at id, bottom-up. For every node,
// the first rule whose pattern matches and whose rewriter changes the node
// wins; the rewritten node is not visited again.
func Rewrite(id ast.ExprID, rules []RewriteRule, env *Environment) ast.ExprID {
	if !id.Valid() {
		return id
	}
	if env == nil || env.Arena == nil {
		panic("semantics: rewrite without environment")
	}
	var walk func(ast.ExprID) ast.ExprID
	walk = func(n ast.ExprID) ast.ExprID {
		n = env.Arena.MapChildren(n, walk)
		node := env.Arena.Expr(n)
		for _, rule := range rules {
			if !rule.Pattern(node, env) {
				continue
			}
			if r := rule.Rewrite(n, env); r != n {
				tracer().Debugf("rule %s applied to %s", rule.Name, node.NodeKind())
				return r
			}
		}
		return n
	}
	return walk(id)
}
