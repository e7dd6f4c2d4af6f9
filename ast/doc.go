/*
Package ast holds the logical-form trees produced by the parser.

All nodes of one compilation live in an Arena. Nodes refer to their
children by integer handles (ExprID, TermID) into the arena's node tables.
Nodes are immutable once allocated: a transformation never edits a node in
place but allocates replacement nodes and returns the handle of the new root.
Unchanged sub-trees are shared between the old and the new tree. The arena
is discarded as a whole at the end of a compilation.

	a := ast.NewArena()
	dog := a.NewExpr(ast.Predicate{Name: in.Intern("Dog"), Args: []ast.TermID{a.Var(x)}})
	all := a.NewExpr(ast.Quantifier{Kind: ast.Universal, Var: x, Body: …})

Expressions are values of type Expr, a closed set of node types. Clients
switch on the dynamic type:

	switch n := a.Expr(id).(type) {
	case ast.Predicate:
		…
	case ast.Quantifier:
		…
	}

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package ast

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'logos.ast'.
func tracer() tracing.Trace {
	return tracing.Select("logos.ast")
}
