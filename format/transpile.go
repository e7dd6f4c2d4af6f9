package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/logos/ast"
	"github.com/npillmayer/logos/intern"
)

// Transpiler renders expressions of an arena with a Formatter. Labels for
// names are taken from Registry, which is shared by all calls of the
// transpiler.
type Transpiler struct {
	Formatter Formatter
	Registry  *SymbolRegistry
	arena     *ast.Arena
	in        *intern.Interner
	caps      Capabilities
}

// NewTranspiler creates a transpiler for expressions of arena. If reg is
// nil, a fresh registry is used. If f is nil, Unicode is used.
func NewTranspiler(f Formatter, reg *SymbolRegistry, arena *ast.Arena, in *intern.Interner) *Transpiler {
	if f == nil {
		f = Unicode
	}
	if reg == nil {
		reg = NewSymbolRegistry()
	}
	return &Transpiler{Formatter: f, Registry: reg, arena: arena, in: in, caps: f.Capabilities()}
}

// Transpile renders the expression id with formatter f and a fresh symbol
// registry.
func Transpile(id ast.ExprID, arena *ast.Arena, in *intern.Interner, f Formatter) string {
	return NewTranspiler(f, nil, arena, in).Transpile(id)
}

// Transpile renders the expression rooted at id.
func (t *Transpiler) Transpile(id ast.ExprID) string {
	var b strings.Builder
	t.expr(&b, id)
	return b.String()
}

// TranspileDiscourse renders the formulas of several sentences as a numbered
// list, one formula per line:
//
//	1) ∃e(Run(e) ∧ Agent(e, J))
//	2) ∃e(Sing(e) ∧ Agent(e, J))
//
// A single sentence is rendered as with Transpile, even if it is a
// conjunction.
func (t *Transpiler) TranspileDiscourse(sentences ...ast.ExprID) string {
	if len(sentences) == 1 {
		return t.Transpile(sentences[0])
	}
	var b strings.Builder
	for i, s := range sentences {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(") ")
		t.expr(&b, s)
	}
	return b.String()
}

// --- Expressions -----------------------------------------------------------

func (t *Transpiler) sub(id ast.ExprID) string {
	var b strings.Builder
	t.expr(&b, id)
	return b.String()
}

func (t *Transpiler) expr(b *strings.Builder, id ast.ExprID) {
	if !id.Valid() {
		panic("format: invalid expression handle")
	}
	f := t.Formatter
	switch n := t.arena.Expr(id).(type) {
	case ast.Predicate:
		args := t.terms(n.Args)
		if t.caps.WorldArguments && !n.World.IsEmpty() {
			args = append(args, t.in.Resolve(n.World))
		}
		b.WriteString(f.Predicate(t.name(n.Name), args))
	case ast.Identity:
		b.WriteString(f.Identity(t.term(n.Left), t.term(n.Right)))
	case ast.Metaphor:
		b.WriteString(f.Predicate("Metaphor", []string{t.term(n.Tenor), t.term(n.Vehicle)}))
	case ast.Quantifier:
		v := t.in.Resolve(n.Var)
		if t.caps.SimpleEvents && isEventVariable(v) {
			t.expr(b, n.Body)
			return
		}
		b.WriteString(f.Quantifier(n.Kind, n.Count, v, t.sub(n.Body)))
	case ast.Modal:
		b.WriteString(f.Modal(n.Vector, t.sub(n.Operand)))
	case ast.Temporal:
		b.WriteString(f.Temporal(n.Op, t.sub(n.Body)))
	case ast.Aspectual:
		b.WriteString(f.Aspectual(n.Op, t.sub(n.Body)))
	case ast.Voice:
		b.WriteString(f.Voice(n.Op, t.sub(n.Body)))
	case ast.BinaryOp:
		t.binary(b, id, n)
	case ast.UnaryOp:
		b.WriteString(f.Not(t.sub(n.Operand)))
	case ast.Question:
		b.WriteString(f.Lambda(t.in.Resolve(n.WhVar), t.sub(n.Body)))
	case ast.YesNoQuestion:
		b.WriteByte('?')
		t.expr(b, n.Body)
	case ast.Atom:
		if t.caps.PreserveCase {
			b.WriteString(f.Sanitize(t.in.Resolve(n.Name)))
		} else {
			b.WriteString(t.name(n.Name))
		}
	case ast.Lambda:
		b.WriteString(f.Lambda(t.in.Resolve(n.Var), t.sub(n.Body)))
	case ast.App:
		b.WriteByte('(')
		t.expr(b, n.Fn)
		b.WriteString(")(")
		t.expr(b, n.Arg)
		b.WriteByte(')')
	case ast.Intensional:
		b.WriteString(t.name(n.Operator))
		b.WriteByte('[')
		t.expr(b, n.Content)
		b.WriteByte(']')
	case ast.NeoEvent:
		t.event(b, n)
	case ast.Imperative:
		b.WriteByte('!')
		t.expr(b, n.Action)
	case ast.SpeechAct:
		args := []string{t.in.Resolve(n.Act), t.name(n.Performer), t.sub(n.Content)}
		b.WriteString(f.Predicate("SpeechAct", args))
	case ast.Counterfactual:
		b.WriteString(f.Counterfactual(t.sub(n.Antecedent), t.sub(n.Consequent)))
	case ast.Causal:
		b.WriteString(f.Predicate("Cause", []string{t.sub(n.Cause), t.sub(n.Effect)}))
	case ast.Comparative:
		diff := ""
		if n.Difference.Valid() {
			diff = t.term(n.Difference)
		}
		b.WriteString(f.Comparative(t.in.Resolve(n.Adjective), t.term(n.Subject), t.term(n.Object), diff))
	case ast.Superlative:
		b.WriteString(f.Superlative(capitalize(t.in.Resolve(n.Adjective)),
			capitalize(t.in.Resolve(n.Domain)), t.term(n.Subject)))
	case ast.Scopal:
		b.WriteString(f.Predicate(capitalize(t.in.Resolve(n.Operator)), []string{t.sub(n.Body)}))
	case ast.Control:
		args := []string{t.term(n.Subject)}
		if n.Object.Valid() {
			args = append(args, t.term(n.Object))
		}
		args = append(args, t.sub(n.Infinitive))
		b.WriteString(f.Predicate(f.Sanitize(capitalize(t.in.Resolve(n.Verb))), args))
	case ast.Presupposition:
		t.expr(b, n.Assertion)
		b.WriteString(" [Presup: ")
		t.expr(b, n.Presupposition)
		b.WriteByte(']')
	case ast.Focus:
		b.WriteString(f.Predicate(n.Kind.String(), []string{t.term(n.Focused), t.sub(n.Scope)}))
	case ast.TemporalAnchor:
		b.WriteString(f.Predicate(capitalize(t.in.Resolve(n.Anchor)), []string{t.sub(n.Body)}))
	case ast.Distributive:
		b.WriteByte('*')
		t.expr(b, n.Predicate)
	case ast.GroupQuantifier:
		t.group(b, n)
	default:
		panic(fmt.Sprintf("format: unhandled node kind %s", n.NodeKind()))
	}
}

// binary renders a connective. Conditionals binding events of their
// antecedent (SuppressExistential) quantify these universally.
func (t *Transpiler) binary(b *strings.Builder, id ast.ExprID, n ast.BinaryOp) {
	f := t.Formatter
	s := f.Binary(n.Op, t.sub(n.Left), t.sub(n.Right))
	if n.Op == ast.If && !t.caps.SimpleEvents {
		events := t.suppressedEvents(id)
		for i := len(events) - 1; i >= 0; i-- {
			s = f.Quantifier(ast.Universal, 0, t.in.Resolve(events[i]), s)
		}
	}
	b.WriteString(s)
}

// suppressedEvents collects the distinct event variables of events without
// an existential of their own, stopping at quantifiers.
func (t *Transpiler) suppressedEvents(id ast.ExprID) []intern.Symbol {
	var events []intern.Symbol
	seen := map[intern.Symbol]bool{}
	t.arena.Inspect(id, func(_ ast.ExprID, e ast.Expr) bool {
		switch n := e.(type) {
		case ast.NeoEvent:
			if n.SuppressExistential && !seen[n.EventVar] {
				seen[n.EventVar] = true
				events = append(events, n.EventVar)
			}
		case ast.Quantifier, ast.GroupQuantifier:
			return false
		}
		return true
	})
	return events
}

var coreRoles = map[ast.ThematicRole]bool{
	ast.Agent: true, ast.Patient: true, ast.Theme: true, ast.Goal: true, ast.Location: true,
}

// event renders a neo-Davidsonian event:
//
//	∃e(Verb(e) ∧ Agent(e, J) ∧ Mod(e))
//
// With SimpleEvents, the event is flattened to Verb(J, …), keeping core
// roles only.
func (t *Transpiler) event(b *strings.Builder, n ast.NeoEvent) {
	f := t.Formatter
	verb := f.Sanitize(capitalize(t.in.Resolve(n.Verb)))
	if t.caps.SimpleEvents {
		var args []string
		for _, r := range n.Roles {
			if coreRoles[r.Role] {
				args = append(args, t.term(r.Term))
			}
		}
		b.WriteString(f.Predicate(verb, args))
		return
	}
	e := t.in.Resolve(n.EventVar)
	at := func(args ...string) []string {
		if t.caps.WorldArguments && !n.World.IsEmpty() {
			return append(args, t.in.Resolve(n.World))
		}
		return args
	}
	parts := []string{f.Predicate(verb, at(e))}
	for _, r := range n.Roles {
		parts = append(parts, f.Predicate(r.Role.String(), at(e, t.term(r.Term))))
	}
	for _, m := range n.Modifiers {
		parts = append(parts, f.Predicate(f.Sanitize(capitalize(t.in.Resolve(m))), at(e)))
	}
	body := strings.Join(parts, " "+f.Connective(ast.And)+" ")
	if n.SuppressExistential {
		b.WriteString(body)
		return
	}
	b.WriteString(f.Quantifier(ast.Existential, 0, e, body))
}

// group renders a collective reading:
//
//	∃g(Group(g) ∧ Count(g, n) ∧ ∀x(Member(x, g) → R(x)) ∧ Body)
func (t *Transpiler) group(b *strings.Builder, n ast.GroupQuantifier) {
	f := t.Formatter
	g, x := t.in.Resolve(n.GroupVar), t.in.Resolve(n.MemberVar)
	members := f.Quantifier(ast.Universal, 0, x,
		f.Binary(ast.If, f.Predicate("Member", []string{x, g}), t.sub(n.Restriction)))
	and := " " + f.Connective(ast.And) + " "
	body := strings.Join([]string{
		f.Predicate("Group", []string{g}),
		f.Predicate("Count", []string{g, strconv.Itoa(n.Count)}),
		members,
		t.sub(n.Body),
	}, and)
	b.WriteString(f.Quantifier(ast.Existential, 0, g, body))
}

// --- Names and terms -------------------------------------------------------

// name renders a predicate or function name.
func (t *Transpiler) name(sym intern.Symbol) string {
	word := t.in.Resolve(sym)
	if t.caps.FullNames {
		return t.Formatter.Sanitize(t.Registry.Full(word))
	}
	return t.Formatter.Sanitize(t.Registry.Label(word))
}

func (t *Transpiler) terms(ids []ast.TermID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = t.term(id)
	}
	return out
}

func (t *Transpiler) term(id ast.TermID) string {
	if !id.Valid() {
		panic("format: invalid term handle")
	}
	f := t.Formatter
	switch n := t.arena.Term(id).(type) {
	case ast.Constant:
		if t.caps.PreserveCase {
			return f.Sanitize(t.in.Resolve(n.Name))
		}
		return t.name(n.Name)
	case ast.Variable:
		return t.in.Resolve(n.Name)
	case ast.Function:
		return f.Predicate(t.name(n.Name), t.terms(n.Args))
	case ast.Group:
		return strings.Join(t.terms(n.Members), " ⊕ ")
	case ast.Possessed:
		return f.Predicate("Poss", []string{t.term(n.Possessor), t.name(n.Possessed)})
	case ast.Sigma:
		return "σ" + t.name(n.Predicate)
	case ast.Intension:
		return f.Sanitize("^" + capitalize(t.in.Resolve(n.Predicate)))
	case ast.Proposition:
		return "[" + t.sub(n.Expr) + "]"
	case ast.Value:
		if n.Unit.IsEmpty() {
			return n.Raw
		}
		return n.Raw + " " + t.in.Resolve(n.Unit)
	}
	panic(fmt.Sprintf("format: unhandled term %T", t.arena.Term(id)))
}

// isEventVariable matches e, e1, e2, …
func isEventVariable(v string) bool {
	if !strings.HasPrefix(v, "e") {
		return false
	}
	for _, c := range v[1:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
