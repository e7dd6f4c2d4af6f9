package ast

import (
	"fmt"
	"strings"

	"github.com/npillmayer/logos/intern"
)

// --- Debug output ----------------------------------------------------------

// DumpNode is a labelled tree mirroring an expression, used for debugging
// output and tree rendering in the command line tool.
type DumpNode struct {
	Label    string
	Children []*DumpNode
}

// Dump creates a DumpNode tree for the expression rooted at id.
func (a *Arena) Dump(in *intern.Interner, id ExprID) *DumpNode {
	if !id.Valid() {
		return &DumpNode{Label: "∅"}
	}
	d := dumper{a: a, in: in}
	return d.expr(id)
}

// Sexpr renders the expression rooted at id as an s-expression.
func (a *Arena) Sexpr(in *intern.Interner, id ExprID) string {
	var b strings.Builder
	a.Dump(in, id).write(&b)
	return b.String()
}

func (n *DumpNode) write(b *strings.Builder) {
	if len(n.Children) == 0 {
		b.WriteString(n.Label)
		return
	}
	b.WriteByte('(')
	b.WriteString(n.Label)
	for _, ch := range n.Children {
		b.WriteByte(' ')
		ch.write(b)
	}
	b.WriteByte(')')
}

// Walk calls f for every node in pre-order, together with its depth.
func (n *DumpNode) Walk(f func(node *DumpNode, level int)) {
	n.walk(f, 0)
}

func (n *DumpNode) walk(f func(*DumpNode, int), level int) {
	f(n, level)
	for _, ch := range n.Children {
		ch.walk(f, level+1)
	}
}

type dumper struct {
	a  *Arena
	in *intern.Interner
}

func (d dumper) sym(s intern.Symbol) string {
	return d.in.Resolve(s)
}

func (d dumper) node(label string, children ...*DumpNode) *DumpNode {
	return &DumpNode{Label: label, Children: children}
}

func (d dumper) leaf(format string, args ...interface{}) *DumpNode {
	return &DumpNode{Label: fmt.Sprintf(format, args...)}
}

func (d dumper) expr(id ExprID) *DumpNode {
	if !id.Valid() {
		return d.leaf("∅")
	}
	switch n := d.a.Expr(id).(type) {
	case Predicate:
		p := d.node(d.sym(n.Name), d.terms(n.Args)...)
		if !n.World.IsEmpty() {
			p.Children = append(p.Children, d.leaf("@%s", d.sym(n.World)))
		}
		return d.node("Predicate", p)
	case Identity:
		return d.node("Identity", d.term(n.Left), d.term(n.Right))
	case Metaphor:
		return d.node("Metaphor", d.term(n.Tenor), d.term(n.Vehicle))
	case Quantifier:
		label := n.Kind.String()
		if n.Kind.Counted() {
			label = fmt.Sprintf("%s:%d", label, n.Count)
		}
		return d.node("Quantifier", d.leaf(label), d.leaf(d.sym(n.Var)),
			d.leaf("island:%d", n.Island), d.expr(n.Body))
	case Modal:
		return d.node("Modal", d.leaf(n.Vector.String()), d.expr(n.Operand))
	case Temporal:
		return d.node("Temporal", d.leaf(n.Op.String()), d.expr(n.Body))
	case Aspectual:
		return d.node("Aspectual", d.leaf(n.Op.String()), d.expr(n.Body))
	case Voice:
		return d.node("Voice", d.leaf(n.Op.String()), d.expr(n.Body))
	case BinaryOp:
		return d.node(n.Op.String(), d.expr(n.Left), d.expr(n.Right))
	case UnaryOp:
		return d.node(n.Op.String(), d.expr(n.Operand))
	case Question:
		return d.node("Question", d.leaf(d.sym(n.WhVar)), d.expr(n.Body))
	case YesNoQuestion:
		return d.node("YesNoQuestion", d.expr(n.Body))
	case Atom:
		return d.node("Atom", d.leaf(d.sym(n.Name)))
	case Lambda:
		return d.node("Lambda", d.leaf(d.sym(n.Var)), d.expr(n.Body))
	case App:
		return d.node("App", d.expr(n.Fn), d.expr(n.Arg))
	case Intensional:
		return d.node("Intensional", d.leaf(d.sym(n.Operator)), d.expr(n.Content))
	case NeoEvent:
		ev := d.node("NeoEvent", d.leaf(d.sym(n.EventVar)), d.leaf(d.sym(n.Verb)))
		for _, r := range n.Roles {
			ev.Children = append(ev.Children, d.node(r.Role.String(), d.term(r.Term)))
		}
		for _, m := range n.Modifiers {
			ev.Children = append(ev.Children, d.leaf("+%s", d.sym(m)))
		}
		if !n.World.IsEmpty() {
			ev.Children = append(ev.Children, d.leaf("@%s", d.sym(n.World)))
		}
		if n.SuppressExistential {
			ev.Children = append(ev.Children, d.leaf("suppressed"))
		}
		return ev
	case Imperative:
		return d.node("Imperative", d.expr(n.Action))
	case SpeechAct:
		return d.node("SpeechAct", d.leaf(d.sym(n.Act)), d.leaf(d.sym(n.Performer)), d.expr(n.Content))
	case Counterfactual:
		return d.node("Counterfactual", d.expr(n.Antecedent), d.expr(n.Consequent))
	case Causal:
		return d.node("Causal", d.expr(n.Cause), d.expr(n.Effect))
	case Comparative:
		c := d.node("Comparative", d.leaf(d.sym(n.Adjective)), d.term(n.Subject), d.term(n.Object))
		if n.Difference.Valid() {
			c.Children = append(c.Children, d.term(n.Difference))
		}
		return c
	case Superlative:
		return d.node("Superlative", d.leaf(d.sym(n.Adjective)), d.term(n.Subject), d.leaf(d.sym(n.Domain)))
	case Scopal:
		return d.node("Scopal", d.leaf(d.sym(n.Operator)), d.expr(n.Body))
	case Control:
		c := d.node("Control", d.leaf(d.sym(n.Verb)), d.term(n.Subject))
		if n.Object.Valid() {
			c.Children = append(c.Children, d.term(n.Object))
		}
		c.Children = append(c.Children, d.expr(n.Infinitive))
		return c
	case Presupposition:
		return d.node("Presupposition", d.expr(n.Assertion), d.expr(n.Presupposition))
	case Focus:
		return d.node("Focus", d.leaf(n.Kind.String()), d.term(n.Focused), d.expr(n.Scope))
	case TemporalAnchor:
		return d.node("TemporalAnchor", d.leaf(d.sym(n.Anchor)), d.expr(n.Body))
	case Distributive:
		return d.node("Distributive", d.expr(n.Predicate))
	case GroupQuantifier:
		return d.node("GroupQuantifier", d.leaf(d.sym(n.GroupVar)), d.leaf("%d", n.Count),
			d.leaf(d.sym(n.MemberVar)), d.expr(n.Restriction), d.expr(n.Body))
	}
	panic("ast: unhandled node kind in Dump")
}

func (d dumper) terms(ts []TermID) []*DumpNode {
	r := make([]*DumpNode, len(ts))
	for i, t := range ts {
		r[i] = d.term(t)
	}
	return r
}

func (d dumper) term(id TermID) *DumpNode {
	if !id.Valid() {
		return d.leaf("∅")
	}
	switch t := d.a.Term(id).(type) {
	case Constant:
		return d.leaf(d.sym(t.Name))
	case Variable:
		return d.leaf("?%s", d.sym(t.Name))
	case Function:
		return d.node(d.sym(t.Name), d.terms(t.Args)...)
	case Group:
		return d.node("⊕", d.terms(t.Members)...)
	case Possessed:
		return d.node("Poss", d.term(t.Possessor), d.leaf(d.sym(t.Possessed)))
	case Sigma:
		return d.leaf("σ%s", d.sym(t.Predicate))
	case Intension:
		return d.leaf("^%s", d.sym(t.Predicate))
	case Proposition:
		return d.node("Prop", d.expr(t.Expr))
	case Value:
		v := d.leaf(t.Raw)
		if !t.Unit.IsEmpty() {
			v.Label += " " + d.sym(t.Unit)
		}
		return v
	}
	return d.leaf("?")
}
