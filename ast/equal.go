package ast

import "golang.org/x/exp/slices"

// Equal reports whether the trees rooted at x and y are structurally
// identical. Both trees have to live in arena a.
func (a *Arena) Equal(x, y ExprID) bool {
	if x == y {
		return true
	}
	if !x.Valid() || !y.Valid() {
		return false
	}
	ex, ey := a.Expr(x), a.Expr(y)
	if ex.NodeKind() != ey.NodeKind() {
		return false
	}
	switch n := ex.(type) {
	case Predicate:
		m := ey.(Predicate)
		return n.Name == m.Name && n.World == m.World && a.equalTerms(n.Args, m.Args)
	case Identity:
		m := ey.(Identity)
		return a.EqualTerm(n.Left, m.Left) && a.EqualTerm(n.Right, m.Right)
	case Metaphor:
		m := ey.(Metaphor)
		return a.EqualTerm(n.Tenor, m.Tenor) && a.EqualTerm(n.Vehicle, m.Vehicle)
	case Quantifier:
		m := ey.(Quantifier)
		return n.Kind == m.Kind && n.Count == m.Count && n.Var == m.Var &&
			n.Island == m.Island && a.Equal(n.Body, m.Body)
	case Modal:
		m := ey.(Modal)
		return n.Vector == m.Vector && a.Equal(n.Operand, m.Operand)
	case Temporal:
		m := ey.(Temporal)
		return n.Op == m.Op && a.Equal(n.Body, m.Body)
	case Aspectual:
		m := ey.(Aspectual)
		return n.Op == m.Op && a.Equal(n.Body, m.Body)
	case Voice:
		m := ey.(Voice)
		return n.Op == m.Op && a.Equal(n.Body, m.Body)
	case BinaryOp:
		m := ey.(BinaryOp)
		return n.Op == m.Op && a.Equal(n.Left, m.Left) && a.Equal(n.Right, m.Right)
	case UnaryOp:
		m := ey.(UnaryOp)
		return n.Op == m.Op && a.Equal(n.Operand, m.Operand)
	case Question:
		m := ey.(Question)
		return n.WhVar == m.WhVar && a.Equal(n.Body, m.Body)
	case YesNoQuestion:
		return a.Equal(n.Body, ey.(YesNoQuestion).Body)
	case Atom:
		return n.Name == ey.(Atom).Name
	case Lambda:
		m := ey.(Lambda)
		return n.Var == m.Var && a.Equal(n.Body, m.Body)
	case App:
		m := ey.(App)
		return a.Equal(n.Fn, m.Fn) && a.Equal(n.Arg, m.Arg)
	case Intensional:
		m := ey.(Intensional)
		return n.Operator == m.Operator && a.Equal(n.Content, m.Content)
	case NeoEvent:
		m := ey.(NeoEvent)
		if n.EventVar != m.EventVar || n.Verb != m.Verb || n.World != m.World ||
			n.SuppressExistential != m.SuppressExistential || len(n.Roles) != len(m.Roles) {
			return false
		}
		for i := range n.Roles {
			if n.Roles[i].Role != m.Roles[i].Role || !a.EqualTerm(n.Roles[i].Term, m.Roles[i].Term) {
				return false
			}
		}
		return slices.Equal(n.Modifiers, m.Modifiers)
	case Imperative:
		return a.Equal(n.Action, ey.(Imperative).Action)
	case SpeechAct:
		m := ey.(SpeechAct)
		return n.Performer == m.Performer && n.Act == m.Act && a.Equal(n.Content, m.Content)
	case Counterfactual:
		m := ey.(Counterfactual)
		return a.Equal(n.Antecedent, m.Antecedent) && a.Equal(n.Consequent, m.Consequent)
	case Causal:
		m := ey.(Causal)
		return a.Equal(n.Cause, m.Cause) && a.Equal(n.Effect, m.Effect)
	case Comparative:
		m := ey.(Comparative)
		return n.Adjective == m.Adjective && a.EqualTerm(n.Subject, m.Subject) &&
			a.EqualTerm(n.Object, m.Object) && a.EqualTerm(n.Difference, m.Difference)
	case Superlative:
		m := ey.(Superlative)
		return n.Adjective == m.Adjective && n.Domain == m.Domain && a.EqualTerm(n.Subject, m.Subject)
	case Scopal:
		m := ey.(Scopal)
		return n.Operator == m.Operator && a.Equal(n.Body, m.Body)
	case Control:
		m := ey.(Control)
		return n.Verb == m.Verb && a.EqualTerm(n.Subject, m.Subject) &&
			a.EqualTerm(n.Object, m.Object) && a.Equal(n.Infinitive, m.Infinitive)
	case Presupposition:
		m := ey.(Presupposition)
		return a.Equal(n.Assertion, m.Assertion) && a.Equal(n.Presupposition, m.Presupposition)
	case Focus:
		m := ey.(Focus)
		return n.Kind == m.Kind && a.EqualTerm(n.Focused, m.Focused) && a.Equal(n.Scope, m.Scope)
	case TemporalAnchor:
		m := ey.(TemporalAnchor)
		return n.Anchor == m.Anchor && a.Equal(n.Body, m.Body)
	case Distributive:
		return a.Equal(n.Predicate, ey.(Distributive).Predicate)
	case GroupQuantifier:
		m := ey.(GroupQuantifier)
		return n.GroupVar == m.GroupVar && n.Count == m.Count && n.MemberVar == m.MemberVar &&
			a.Equal(n.Restriction, m.Restriction) && a.Equal(n.Body, m.Body)
	}
	panic("ast: unhandled node kind in Equal: " + ex.NodeKind().String())
}

// EqualTerm reports whether two terms are structurally identical.
func (a *Arena) EqualTerm(x, y TermID) bool {
	if x == y {
		return true
	}
	if !x.Valid() || !y.Valid() {
		return false
	}
	switch t := a.Term(x).(type) {
	case Constant:
		u, ok := a.Term(y).(Constant)
		return ok && t == u
	case Variable:
		u, ok := a.Term(y).(Variable)
		return ok && t == u
	case Function:
		u, ok := a.Term(y).(Function)
		return ok && t.Name == u.Name && a.equalTerms(t.Args, u.Args)
	case Group:
		u, ok := a.Term(y).(Group)
		return ok && a.equalTerms(t.Members, u.Members)
	case Possessed:
		u, ok := a.Term(y).(Possessed)
		return ok && t.Possessed == u.Possessed && a.EqualTerm(t.Possessor, u.Possessor)
	case Sigma:
		u, ok := a.Term(y).(Sigma)
		return ok && t == u
	case Intension:
		u, ok := a.Term(y).(Intension)
		return ok && t == u
	case Proposition:
		u, ok := a.Term(y).(Proposition)
		return ok && a.Equal(t.Expr, u.Expr)
	case Value:
		u, ok := a.Term(y).(Value)
		return ok && t == u
	}
	return false
}

func (a *Arena) equalTerms(xs, ys []TermID) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i := range xs {
		if !a.EqualTerm(xs[i], ys[i]) {
			return false
		}
	}
	return true
}
