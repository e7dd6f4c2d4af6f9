package lambda

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/logos/ast"
)

// scopal is an element of the quantifier prefix of a formula: either a
// quantifier, together with its restriction and connective, or a negation.
type scopal struct {
	negation bool
	quant    ast.Quantifier
	restr    ast.ExprID // NoExpr for unrestricted quantifiers
	op       ast.BinaryOperator
	island   int
}

// ScopeIterator enumerates the scope readings of a formula. Readings are
// created on demand by calling Next.
//
// Readings are numbered in mixed radix: every island contributes a digit
// with base k!, k being the number of scope-taking elements in the island.
// Islands are ordered by island id, the lowest island being the least
// significant digit. Within an island, the digit selects a permutation by
// its Lehmer code. Reading 0 is always the surface order.
type ScopeIterator struct {
	arena   *ast.Arena
	islands [][]scopal
	core    ast.ExprID
	index   uint64
	total   uint64
	single  ast.ExprID // the only reading, if there is nothing to permute
}

// EnumerateScopings returns an iterator over the scope readings of expr.
// Formulas with less than two scope-taking elements have exactly one
// reading, expr itself.
func EnumerateScopings(expr ast.ExprID, arena *ast.Arena) *ScopeIterator {
	var prefix []scopal
	core := extractPrefix(arena, expr, &prefix)
	if len(prefix) < 2 {
		return &ScopeIterator{arena: arena, core: core, total: 1, single: expr}
	}
	byIsland := treemap.NewWithIntComparator()
	for _, s := range prefix {
		var elems []scopal
		if v, found := byIsland.Get(s.island); found {
			elems = v.([]scopal)
		}
		byIsland.Put(s.island, append(elems, s))
	}
	it := &ScopeIterator{arena: arena, core: core, total: 1, single: ast.NoExpr}
	for _, v := range byIsland.Values() {
		island := v.([]scopal)
		it.islands = append(it.islands, island)
		it.total *= factorial(len(island))
	}
	tracer().Debugf("%d scope-taking elements in %d islands, %d readings", len(prefix),
		len(it.islands), it.total)
	return it
}

// Len returns the number of readings not yet delivered by Next.
func (it *ScopeIterator) Len() int {
	return int(it.total - it.index)
}

// Next returns the next reading. The second return value is false if all
// readings have been delivered.
func (it *ScopeIterator) Next() (ast.ExprID, bool) {
	if it.index >= it.total {
		return ast.NoExpr, false
	}
	n := it.index
	it.index++
	if it.single.Valid() {
		return it.single, true
	}
	return it.rebuild(it.ordering(n)), true
}

// Collect returns all remaining readings.
func (it *ScopeIterator) Collect() []ast.ExprID {
	readings := make([]ast.ExprID, 0, it.Len())
	for r, ok := it.Next(); ok; r, ok = it.Next() {
		readings = append(readings, r)
	}
	return readings
}

// ordering returns the scope-taking elements for reading n, outermost first.
func (it *ScopeIterator) ordering(n uint64) []scopal {
	var order []scopal
	for _, island := range it.islands {
		base := factorial(len(island))
		order = append(order, permutation(island, n%base)...)
		n /= base
	}
	return order
}

// rebuild wraps the core formula into the elements of order, innermost last.
func (it *ScopeIterator) rebuild(order []scopal) ast.ExprID {
	a := it.arena
	result := it.core
	for i := len(order) - 1; i >= 0; i-- {
		s := order[i]
		if s.negation {
			result = a.Not(result)
			continue
		}
		q := s.quant
		if s.restr.Valid() {
			q.Body = a.Binary(s.restr, s.op, result)
		} else {
			q.Body = result
		}
		result = a.NewExpr(q)
	}
	return result
}

// extractPrefix collects the quantifiers and negations heading expr and
// returns the remaining core. A quantifier is split into restriction and
// scope if its body is an implication or conjunction; a negation directly
// in its scope belongs to the quantifier's island.
func extractPrefix(a *ast.Arena, id ast.ExprID, prefix *[]scopal) ast.ExprID {
	switch n := a.Expr(id).(type) {
	case ast.Quantifier:
		if b, ok := a.Expr(n.Body).(ast.BinaryOp); ok && (b.Op == ast.If || b.Op == ast.And) {
			*prefix = append(*prefix, scopal{quant: n, restr: b.Left, op: b.Op, island: n.Island})
			if u, ok := a.Expr(b.Right).(ast.UnaryOp); ok && u.Op == ast.Not {
				*prefix = append(*prefix, scopal{negation: true, island: n.Island})
				return extractPrefix(a, u.Operand, prefix)
			}
			return extractPrefix(a, b.Right, prefix)
		}
		*prefix = append(*prefix, scopal{quant: n, restr: ast.NoExpr, island: n.Island})
		return extractPrefix(a, n.Body, prefix)
	case ast.UnaryOp:
		if n.Op == ast.Not {
			*prefix = append(*prefix, scopal{negation: true})
			return extractPrefix(a, n.Operand, prefix)
		}
	}
	return id
}

// permutation returns the n-th permutation of items in lexicographic order
// of positions (Lehmer code).
func permutation(items []scopal, n uint64) []scopal {
	available := make([]int, len(items))
	for i := range available {
		available[i] = i
	}
	result := make([]scopal, 0, len(items))
	for i := range items {
		radix := factorial(len(items) - i - 1)
		j := int(n / radix)
		n %= radix
		result = append(result, items[available[j]])
		available = append(available[:j], available[j+1:]...)
	}
	return result
}

func factorial(n int) uint64 {
	f := uint64(1)
	for i := 2; i <= n; i++ {
		f *= uint64(i)
	}
	return f
}
