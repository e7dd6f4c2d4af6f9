package proof

import (
	"sort"
	"strings"
)

// Substitution maps unification variables to terms. Substitutions are
// never modified in place; bind returns an extended copy.
type Substitution map[string]Term

func (s Substitution) bind(v string, t Term) Substitution {
	r := make(Substitution, len(s)+1)
	for k, u := range s {
		r[k] = u
	}
	r[v] = t
	return r
}

// Term resolves t under s, following chains of variable bindings.
func (s Substitution) Term(t Term) Term {
	switch t.Kind {
	case VariableTerm:
		if u, ok := s[t.Name]; ok {
			return s.Term(u)
		}
	case FunctionTerm, GroupTerm:
		args := make([]Term, len(t.Args))
		for i, a := range t.Args {
			args[i] = s.Term(a)
		}
		t.Args = args
	}
	return t
}

// Apply resolves all free variables of x under s.
func (s Substitution) Apply(x *Expr) *Expr {
	if len(s) == 0 {
		return x
	}
	return x.mapTerms(func(t Term, bound map[string]bool) Term {
		if t.Kind == VariableTerm && bound[t.Name] {
			return t
		}
		return s.Term(t)
	}, nil)
}

func (s Substitution) String() string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + " ↦ " + s.Term(Var(k)).String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// UnifyTerms finds the most general extension of s which makes t and u
// equal.
func UnifyTerms(t, u Term, s Substitution) (Substitution, bool) {
	t, u = s.Term(t), s.Term(u)
	switch {
	case t.Equal(u):
		return s, true
	case t.Kind == VariableTerm:
		if termContains(u, t) {
			return s, false
		}
		return s.bind(t.Name, u), true
	case u.Kind == VariableTerm:
		return UnifyTerms(u, t, s)
	case t.Kind != u.Kind || t.Name != u.Name || len(t.Args) != len(u.Args):
		return s, false
	}
	for i := range t.Args {
		var ok bool
		if s, ok = UnifyTerms(t.Args[i], u.Args[i], s); !ok {
			return s, false
		}
	}
	return s, true
}

// Unify finds the most general extension of s which makes formulas x and y
// equal. Quantified subformulas unify if their bodies do, after renaming
// the bound variable of y to the one of x.
func Unify(x, y *Expr, s Substitution) (Substitution, bool) {
	if x == nil || y == nil {
		return s, x == y
	}
	if x.Op != y.Op || x.Name != y.Name || len(x.Args) != len(y.Args) {
		return s, false
	}
	var ok bool
	switch x.Op {
	case PredicateOp, IdentityOp:
		for i := range x.Args {
			if s, ok = UnifyTerms(x.Args[i], y.Args[i], s); !ok {
				return s, false
			}
		}
		return s, true
	case ForAllOp, ExistsOp:
		body := y.Left
		if x.Var != y.Var {
			body = body.rename(y.Var, Var(x.Var))
		}
		return Unify(x.Left, body, s)
	}
	if s, ok = Unify(x.Left, y.Left, s); !ok {
		return s, false
	}
	return Unify(x.Right, y.Right, s)
}
