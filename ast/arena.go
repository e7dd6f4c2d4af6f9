package ast

import (
	"fmt"

	"github.com/npillmayer/logos/intern"
)

// Table is an append-only store of values of type T. Values are addressed by
// the index returned from Alloc.
type Table[T any] struct {
	items []T
}

// Alloc appends v and returns its index.
func (t *Table[T]) Alloc(v T) int32 {
	t.items = append(t.items, v)
	return int32(len(t.items) - 1)
}

// At returns the value at index i. Indices not produced by Alloc are a
// programming error.
func (t *Table[T]) At(i int32) T {
	if i < 0 || int(i) >= len(t.items) {
		panic(fmt.Sprintf("ast: index %d out of range [0…%d)", i, len(t.items)))
	}
	return t.items[i]
}

// Len returns the number of allocated values.
func (t *Table[T]) Len() int {
	return len(t.items)
}

// ExprID is a handle for an expression node within an arena.
type ExprID int32

// TermID is a handle for a term within an arena.
type TermID int32

// NoExpr and NoTerm denote absent children.
const (
	NoExpr ExprID = -1
	NoTerm TermID = -1
)

// Valid is false for NoExpr.
func (id ExprID) Valid() bool {
	return id >= 0
}

// Valid is false for NoTerm.
func (id TermID) Valid() bool {
	return id >= 0
}

// Arena owns the node tables of one compilation.
type Arena struct {
	exprs Table[Expr]
	terms Table[Term]
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// NewExpr allocates an expression node.
func (a *Arena) NewExpr(e Expr) ExprID {
	if e == nil {
		panic("ast: nil expression")
	}
	return ExprID(a.exprs.Alloc(e))
}

// NewTerm allocates a term.
func (a *Arena) NewTerm(t Term) TermID {
	if t == nil {
		panic("ast: nil term")
	}
	return TermID(a.terms.Alloc(t))
}

// Expr returns the node for id.
func (a *Arena) Expr(id ExprID) Expr {
	return a.exprs.At(int32(id))
}

// Term returns the term for id.
func (a *Arena) Term(id TermID) Term {
	return a.terms.At(int32(id))
}

// Size returns the number of expression nodes and terms allocated so far.
func (a *Arena) Size() (exprs, terms int) {
	return a.exprs.Len(), a.terms.Len()
}

// --- Convenience constructors ----------------------------------------------

// Const allocates a constant term.
func (a *Arena) Const(name intern.Symbol) TermID {
	return a.NewTerm(Constant{Name: name})
}

// Var allocates a variable term.
func (a *Arena) Var(name intern.Symbol) TermID {
	return a.NewTerm(Variable{Name: name})
}

// Pred allocates a predicate without a world argument.
func (a *Arena) Pred(name intern.Symbol, args ...TermID) ExprID {
	return a.NewExpr(Predicate{Name: name, Args: args})
}

// Binary allocates (l op r).
func (a *Arena) Binary(l ExprID, op BinaryOperator, r ExprID) ExprID {
	return a.NewExpr(BinaryOp{Left: l, Op: op, Right: r})
}

// And allocates (l ∧ r). If one side is NoExpr, the other is returned.
func (a *Arena) And(l, r ExprID) ExprID {
	if !l.Valid() {
		return r
	}
	if !r.Valid() {
		return l
	}
	return a.Binary(l, And, r)
}

// Conjoin folds a list of expressions into a left-nested conjunction.
func (a *Arena) Conjoin(exprs ...ExprID) ExprID {
	result := NoExpr
	for _, e := range exprs {
		result = a.And(result, e)
	}
	return result
}

// Not allocates ¬operand.
func (a *Arena) Not(operand ExprID) ExprID {
	return a.NewExpr(UnaryOp{Op: Not, Operand: operand})
}

// Quant allocates a quantifier node.
func (a *Arena) Quant(kind QuantifierKind, v intern.Symbol, body ExprID, island int) ExprID {
	return a.NewExpr(Quantifier{Kind: kind, Var: v, Body: body, Island: island})
}
