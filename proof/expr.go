package proof

import "strings"

// TermKind discriminates proof terms.
type TermKind int8

const (
	ConstantTerm TermKind = iota
	VariableTerm
	FunctionTerm
	GroupTerm
)

// Term is a term of the proof language. Variables are unification
// variables: they may be bound by the prover.
type Term struct {
	Kind TermKind
	Name string // empty for groups
	Args []Term // function arguments or group members
}

// Const creates a constant term.
func Const(name string) Term { return Term{Kind: ConstantTerm, Name: name} }

// Var creates a variable term.
func Var(name string) Term { return Term{Kind: VariableTerm, Name: name} }

// Fn creates a function application term.
func Fn(name string, args ...Term) Term { return Term{Kind: FunctionTerm, Name: name, Args: args} }

func (t Term) String() string {
	switch t.Kind {
	case FunctionTerm:
		return t.Name + "(" + joinTerms(t.Args, ", ") + ")"
	case GroupTerm:
		return joinTerms(t.Args, " ⊕ ")
	}
	return t.Name
}

// Equal is structural equality of terms.
func (t Term) Equal(u Term) bool {
	if t.Kind != u.Kind || t.Name != u.Name || len(t.Args) != len(u.Args) {
		return false
	}
	for i := range t.Args {
		if !t.Args[i].Equal(u.Args[i]) {
			return false
		}
	}
	return true
}

func joinTerms(ts []Term, sep string) string {
	s := make([]string, len(ts))
	for i, t := range ts {
		s[i] = t.String()
	}
	return strings.Join(s, sep)
}

// --- Formulas --------------------------------------------------------------

// Op is the operator of a proof formula.
type Op int8

const (
	PredicateOp Op = iota
	IdentityOp
	AtomOp
	AndOp
	OrOp
	ImpliesOp
	IffOp
	NotOp
	ForAllOp
	ExistsOp
	UnsupportedOp // constructs without a classical reading
)

// Expr is a formula of the proof language. Formulas are treated as
// immutable values; operations return new formulas and share unchanged
// subformulas.
type Expr struct {
	Op    Op
	Name  string // predicate, atom, or description of an unsupported construct
	Args  []Term // predicate arguments; left and right side of identities
	Var   string // bound variable of quantifiers
	Left  *Expr  // operand of Not and body of quantifiers
	Right *Expr
}

// Pred creates a predicate formula.
func Pred(name string, args ...Term) *Expr { return &Expr{Op: PredicateOp, Name: name, Args: args} }

// Ident creates an identity a = b.
func Ident(a, b Term) *Expr { return &Expr{Op: IdentityOp, Args: []Term{a, b}} }

// Atom creates a propositional constant.
func Atom(name string) *Expr { return &Expr{Op: AtomOp, Name: name} }

func And(l, r *Expr) *Expr     { return &Expr{Op: AndOp, Left: l, Right: r} }
func Or(l, r *Expr) *Expr      { return &Expr{Op: OrOp, Left: l, Right: r} }
func Implies(l, r *Expr) *Expr { return &Expr{Op: ImpliesOp, Left: l, Right: r} }
func Iff(l, r *Expr) *Expr     { return &Expr{Op: IffOp, Left: l, Right: r} }
func Not(x *Expr) *Expr        { return &Expr{Op: NotOp, Left: x} }

// ForAll creates ∀v body.
func ForAll(v string, body *Expr) *Expr { return &Expr{Op: ForAllOp, Var: v, Left: body} }

// Exists creates ∃v body.
func Exists(v string, body *Expr) *Expr { return &Expr{Op: ExistsOp, Var: v, Left: body} }

// Unsupported marks a construct the prover cannot reason about.
func Unsupported(what string) *Expr { return &Expr{Op: UnsupportedOp, Name: what} }

func (x *Expr) String() string {
	if x == nil {
		return "<nil>"
	}
	switch x.Op {
	case PredicateOp:
		if len(x.Args) == 0 {
			return x.Name
		}
		return x.Name + "(" + joinTerms(x.Args, ", ") + ")"
	case IdentityOp:
		return x.Args[0].String() + " = " + x.Args[1].String()
	case AtomOp:
		return x.Name
	case AndOp:
		return "(" + x.Left.String() + " ∧ " + x.Right.String() + ")"
	case OrOp:
		return "(" + x.Left.String() + " ∨ " + x.Right.String() + ")"
	case ImpliesOp:
		return "(" + x.Left.String() + " → " + x.Right.String() + ")"
	case IffOp:
		return "(" + x.Left.String() + " ↔ " + x.Right.String() + ")"
	case NotOp:
		return "¬" + x.Left.String()
	case ForAllOp:
		return "∀" + x.Var + "(" + x.Left.String() + ")"
	case ExistsOp:
		return "∃" + x.Var + "(" + x.Left.String() + ")"
	}
	return "‹" + x.Name + "›"
}

// Equal is structural equality of formulas. Bound variables are compared by
// name.
func (x *Expr) Equal(y *Expr) bool {
	if x == nil || y == nil {
		return x == y
	}
	if x.Op != y.Op || x.Name != y.Name || x.Var != y.Var || len(x.Args) != len(y.Args) {
		return false
	}
	for i := range x.Args {
		if !x.Args[i].Equal(y.Args[i]) {
			return false
		}
	}
	return x.Left.Equal(y.Left) && x.Right.Equal(y.Right)
}

// Supported is false if x contains a construct without a classical reading.
func (x *Expr) Supported() bool {
	if x == nil {
		return true
	}
	if x.Op == UnsupportedOp {
		return false
	}
	return x.Left.Supported() && x.Right.Supported()
}

// mapTerms rebuilds x with f applied to every term. f receives the
// variables bound at the position of the term.
func (x *Expr) mapTerms(f func(Term, map[string]bool) Term, bound map[string]bool) *Expr {
	if x == nil {
		return nil
	}
	y := *x
	switch x.Op {
	case PredicateOp, IdentityOp:
		y.Args = make([]Term, len(x.Args))
		for i, t := range x.Args {
			y.Args[i] = f(t, bound)
		}
	case ForAllOp, ExistsOp:
		inner := make(map[string]bool, len(bound)+1)
		for v := range bound {
			inner[v] = true
		}
		inner[x.Var] = true
		y.Left = x.Left.mapTerms(f, inner)
	default:
		y.Left = x.Left.mapTerms(f, bound)
		y.Right = x.Right.mapTerms(f, bound)
	}
	return &y
}

// rename replaces free occurrences of variable v by term t.
func (x *Expr) rename(v string, t Term) *Expr {
	var f func(Term, map[string]bool) Term
	f = func(u Term, bound map[string]bool) Term {
		switch u.Kind {
		case VariableTerm:
			if u.Name == v && !bound[v] {
				return t
			}
		case FunctionTerm, GroupTerm:
			args := make([]Term, len(u.Args))
			for i, a := range u.Args {
				args[i] = f(a, bound)
			}
			u.Args = args
		}
		return u
	}
	return x.mapTerms(f, nil)
}

// replaceTerm replaces every occurrence of term from by term to.
func (x *Expr) replaceTerm(from, to Term) *Expr {
	var f func(Term, map[string]bool) Term
	f = func(u Term, _ map[string]bool) Term {
		if u.Equal(from) {
			return to
		}
		if u.Kind == FunctionTerm || u.Kind == GroupTerm {
			args := make([]Term, len(u.Args))
			for i, a := range u.Args {
				args[i] = f(a, nil)
			}
			u.Args = args
		}
		return u
	}
	return x.mapTerms(f, nil)
}

// containsTerm is true if t occurs in one of the atomic formulas of x.
func (x *Expr) containsTerm(t Term) bool {
	if x == nil {
		return false
	}
	for _, a := range x.Args {
		if termContains(a, t) {
			return true
		}
	}
	return x.Left.containsTerm(t) || x.Right.containsTerm(t)
}

func termContains(u, t Term) bool {
	if u.Equal(t) {
		return true
	}
	for _, a := range u.Args {
		if termContains(a, t) {
			return true
		}
	}
	return false
}
