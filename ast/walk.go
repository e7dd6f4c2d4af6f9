package ast

// --- Structural traversal --------------------------------------------------

// Children returns the sub-expressions of the node id, in source order.
// Terms are not included; a Proposition term's expression is not a child.
func (a *Arena) Children(id ExprID) []ExprID {
	switch n := a.Expr(id).(type) {
	case Quantifier:
		return []ExprID{n.Body}
	case Modal:
		return []ExprID{n.Operand}
	case Temporal:
		return []ExprID{n.Body}
	case Aspectual:
		return []ExprID{n.Body}
	case Voice:
		return []ExprID{n.Body}
	case BinaryOp:
		return []ExprID{n.Left, n.Right}
	case UnaryOp:
		return []ExprID{n.Operand}
	case Question:
		return []ExprID{n.Body}
	case YesNoQuestion:
		return []ExprID{n.Body}
	case Lambda:
		return []ExprID{n.Body}
	case App:
		return []ExprID{n.Fn, n.Arg}
	case Intensional:
		return []ExprID{n.Content}
	case Imperative:
		return []ExprID{n.Action}
	case SpeechAct:
		return []ExprID{n.Content}
	case Counterfactual:
		return []ExprID{n.Antecedent, n.Consequent}
	case Causal:
		return []ExprID{n.Cause, n.Effect}
	case Scopal:
		return []ExprID{n.Body}
	case Control:
		return []ExprID{n.Infinitive}
	case Presupposition:
		return []ExprID{n.Assertion, n.Presupposition}
	case Focus:
		return []ExprID{n.Scope}
	case TemporalAnchor:
		return []ExprID{n.Body}
	case Distributive:
		return []ExprID{n.Predicate}
	case GroupQuantifier:
		return []ExprID{n.Restriction, n.Body}
	}
	return nil
}

// MapChildren applies f to every sub-expression of id and returns a node
// with the results as children. If f returns every child unchanged, id
// itself is returned and nothing is allocated.
func (a *Arena) MapChildren(id ExprID, f func(ExprID) ExprID) ExprID {
	changed := false
	m := func(c ExprID) ExprID {
		if !c.Valid() {
			return c
		}
		r := f(c)
		if r != c {
			changed = true
		}
		return r
	}
	var e Expr
	switch n := a.Expr(id).(type) {
	case Quantifier:
		n.Body = m(n.Body)
		e = n
	case Modal:
		n.Operand = m(n.Operand)
		e = n
	case Temporal:
		n.Body = m(n.Body)
		e = n
	case Aspectual:
		n.Body = m(n.Body)
		e = n
	case Voice:
		n.Body = m(n.Body)
		e = n
	case BinaryOp:
		n.Left, n.Right = m(n.Left), m(n.Right)
		e = n
	case UnaryOp:
		n.Operand = m(n.Operand)
		e = n
	case Question:
		n.Body = m(n.Body)
		e = n
	case YesNoQuestion:
		n.Body = m(n.Body)
		e = n
	case Lambda:
		n.Body = m(n.Body)
		e = n
	case App:
		n.Fn, n.Arg = m(n.Fn), m(n.Arg)
		e = n
	case Intensional:
		n.Content = m(n.Content)
		e = n
	case Imperative:
		n.Action = m(n.Action)
		e = n
	case SpeechAct:
		n.Content = m(n.Content)
		e = n
	case Counterfactual:
		n.Antecedent, n.Consequent = m(n.Antecedent), m(n.Consequent)
		e = n
	case Causal:
		n.Cause, n.Effect = m(n.Cause), m(n.Effect)
		e = n
	case Scopal:
		n.Body = m(n.Body)
		e = n
	case Control:
		n.Infinitive = m(n.Infinitive)
		e = n
	case Presupposition:
		n.Assertion, n.Presupposition = m(n.Assertion), m(n.Presupposition)
		e = n
	case Focus:
		n.Scope = m(n.Scope)
		e = n
	case TemporalAnchor:
		n.Body = m(n.Body)
		e = n
	case Distributive:
		n.Predicate = m(n.Predicate)
		e = n
	case GroupQuantifier:
		n.Restriction, n.Body = m(n.Restriction), m(n.Body)
		e = n
	default: // leaves
		return id
	}
	if !changed {
		return id
	}
	return a.NewExpr(e)
}

// Inspect calls f for every node reachable from id in pre-order. If f
// returns false, the children of the node are skipped.
func (a *Arena) Inspect(id ExprID, f func(ExprID, Expr) bool) {
	if !id.Valid() {
		return
	}
	if !f(id, a.Expr(id)) {
		return
	}
	for _, c := range a.Children(id) {
		a.Inspect(c, f)
	}
}
