package proof

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
)

// DefaultMaxDepth bounds the nesting of inference steps of a proof search.
const DefaultMaxDepth = 10

// ErrNotProved is returned if the search space is exhausted without a proof.
var ErrNotProved = errors.New("goal could not be derived")

// ErrUnsupported is returned for goals containing constructs without a
// classical reading.
var ErrUnsupported = errors.New("goal contains unsupported constructs")

// Rule names an inference rule.
type Rule int8

const (
	PremiseMatch Rule = iota
	ModusPonens
	UniversalInst
	ConjunctionIntro
	DisjunctiveSyllogism
	ModusTollens
	IdentityRewrite
	ExistentialIntro
	Reflexivity
	Axiom
)

var ruleNames = [...]string{"PremiseMatch", "ModusPonens", "UniversalInst", "ConjunctionIntro",
	"DisjunctiveSyllogism", "ModusTollens", "IdentityRewrite", "ExistentialIntro", "Reflexivity", "Axiom"}

func (r Rule) String() string {
	if int(r) < len(ruleNames) {
		return ruleNames[r]
	}
	return "Rule(" + strconv.Itoa(int(r)) + ")"
}

// --- Derivations -----------------------------------------------------------

// Derivation is a proof tree: a conclusion, the rule which justifies it,
// and the derivations of the rule's premises.
type Derivation struct {
	Conclusion *Expr
	Rule       Rule
	Premises   *arraylist.List // of *Derivation
}

func newDerivation(conclusion *Expr, rule Rule, premises ...*Derivation) *Derivation {
	d := &Derivation{Conclusion: conclusion, Rule: rule, Premises: arraylist.New()}
	for _, p := range premises {
		d.Premises.Add(p)
	}
	return d
}

// Premise returns the derivation of premise i.
func (d *Derivation) Premise(i int) *Derivation {
	p, ok := d.Premises.Get(i)
	if !ok {
		return nil
	}
	return p.(*Derivation)
}

// Depth is the height of the proof tree.
func (d *Derivation) Depth() int {
	depth := 0
	it := d.Premises.Iterator()
	for it.Next() {
		if h := it.Value().(*Derivation).Depth(); h > depth {
			depth = h
		}
	}
	return depth + 1
}

// Rules lists the rules of the derivation in pre-order.
func (d *Derivation) Rules() []Rule {
	rules := []Rule{d.Rule}
	d.Premises.Each(func(_ int, p interface{}) {
		rules = append(rules, p.(*Derivation).Rules()...)
	})
	return rules
}

// String renders the proof tree, one step per line:
//
//	└─ [ModusPonens] mortal(Socrates)
//	  └─ [Axiom] (man(Socrates) → mortal(Socrates))
//	  └─ [PremiseMatch] man(Socrates)
func (d *Derivation) String() string {
	var b strings.Builder
	d.write(&b, 0)
	return strings.TrimSuffix(b.String(), "\n")
}

func (d *Derivation) write(b *strings.Builder, indent int) {
	b.WriteString(strings.Repeat("  ", indent))
	fmt.Fprintf(b, "└─ [%s] %s\n", d.Rule, d.Conclusion)
	d.Premises.Each(func(_ int, p interface{}) {
		p.(*Derivation).write(b, indent+1)
	})
}

// resolve applies the final substitution of a proof to all conclusions.
func (d *Derivation) resolve(s Substitution) *Derivation {
	r := newDerivation(s.Apply(d.Conclusion), d.Rule)
	d.Premises.Each(func(_ int, p interface{}) {
		r.Premises.Add(p.(*Derivation).resolve(s))
	})
	return r
}

// --- Engine ----------------------------------------------------------------

// Engine is a backward-chaining prover over a knowledge base of axioms.
// An Engine is not safe for concurrent use.
type Engine struct {
	MaxDepth int
	axioms   []*Expr
	fresh    int
}

// NewEngine creates an engine with an empty knowledge base.
func NewEngine() *Engine {
	return &Engine{MaxDepth: DefaultMaxDepth}
}

// AddAxiom adds a formula to the knowledge base. Unsupported formulas are
// accepted but never used.
func (e *Engine) AddAxiom(x *Expr) {
	if !x.Supported() {
		tracer().Infof("axiom %s contains unsupported constructs, ignored in proofs", x)
	}
	e.axioms = append(e.axioms, x)
}

// Axioms returns the number of axioms.
func (e *Engine) Axioms() int {
	return len(e.axioms)
}

// Prove searches a derivation of goal from the axioms.
func (e *Engine) Prove(goal *Expr) (*Derivation, error) {
	if !goal.Supported() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, goal)
	}
	tracer().Debugf("prove %s from %d axioms", goal, len(e.axioms))
	if rs := e.search(goal, Substitution{}, 0); len(rs) > 0 {
		return rs[0].d.resolve(rs[0].s), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotProved, goal)
}

// result is a derivation together with the bindings it requires.
type result struct {
	d *Derivation
	s Substitution
}

// search returns derivations of goal, most direct ones first. Alternatives
// matter when a conjunction's right side fails under the bindings of the
// first derivation of its left side.
func (e *Engine) search(goal *Expr, s Substitution, depth int) []result {
	if depth > e.MaxDepth {
		return nil
	}
	goal = s.Apply(goal)
	var results []result
	add := func(d *Derivation, s Substitution) {
		results = append(results, result{d, s})
	}
	switch goal.Op {
	case AndOp:
		for _, l := range e.search(goal.Left, s, depth+1) {
			if rs := e.search(goal.Right, l.s, depth+1); len(rs) > 0 {
				add(newDerivation(goal, ConjunctionIntro, l.d, rs[0].d), rs[0].s)
				return results
			}
		}
		return nil
	case ExistsOp:
		v := e.freshName(goal.Var)
		for _, r := range e.search(goal.Left.rename(goal.Var, Var(v)), s, depth+1) {
			add(newDerivation(goal, ExistentialIntro, r.d), r.s)
		}
		return results
	case IdentityOp:
		if s2, ok := UnifyTerms(goal.Args[0], goal.Args[1], s); ok {
			add(newDerivation(goal, Reflexivity), s2)
		}
	}
	for _, ax := range e.axioms {
		if !ax.Supported() {
			continue
		}
		if s2, ok := Unify(goal, ax, s); ok {
			add(newDerivation(goal, PremiseMatch), s2)
		}
	}
	if len(results) > 0 {
		return results
	}
	for _, ax := range e.axioms {
		if !ax.Supported() {
			continue
		}
		e.chain(goal, ax, s, depth, add)
	}
	if len(results) == 0 && goal.Op != IdentityOp {
		e.rewrite(goal, s, depth, add)
	}
	return results
}

// chain tries the rules which use an axiom as major premise: modus ponens,
// universal instantiation, modus tollens and disjunctive syllogism.
func (e *Engine) chain(goal, ax *Expr, s Substitution, depth int, add func(*Derivation, Substitution)) {
	body := e.instantiate(ax)
	quantified := ax.Op == ForAllOp
	if quantified && body.Op != ImpliesOp && body.Op != IffOp && body.Op != OrOp {
		if s2, ok := Unify(goal, body, s); ok {
			add(newDerivation(goal, UniversalInst, newDerivation(ax, Axiom)), s2)
		}
		return
	}
	var implications [][2]*Expr
	switch body.Op {
	case ImpliesOp:
		implications = append(implications, [2]*Expr{body.Left, body.Right})
	case IffOp:
		implications = append(implications, [2]*Expr{body.Left, body.Right}, [2]*Expr{body.Right, body.Left})
	case OrOp:
		e.syllogism(goal, ax, body, s, depth, add)
		return
	}
	for _, imp := range implications {
		antecedent, consequent := imp[0], imp[1]
		if s2, ok := Unify(goal, consequent, s); ok {
			if rs := e.search(antecedent, s2, depth+1); len(rs) > 0 {
				major := newDerivation(Implies(antecedent, consequent), Axiom)
				add(newDerivation(goal, ModusPonens, major, rs[0].d), rs[0].s)
			}
		}
		if goal.Op != NotOp {
			continue
		}
		if s2, ok := Unify(goal.Left, antecedent, s); ok {
			if rs := e.search(Not(consequent), s2, depth+1); len(rs) > 0 {
				major := newDerivation(Implies(antecedent, consequent), Axiom)
				add(newDerivation(goal, ModusTollens, major, rs[0].d), rs[0].s)
			}
		}
	}
}

// syllogism derives one disjunct from the negation of the other.
func (e *Engine) syllogism(goal, ax, or *Expr, s Substitution, depth int, add func(*Derivation, Substitution)) {
	sides := [2][2]*Expr{{or.Left, or.Right}, {or.Right, or.Left}}
	for _, side := range sides {
		s2, ok := Unify(goal, side[1], s)
		if !ok {
			continue
		}
		if rs := e.search(Not(side[0]), s2, depth+1); len(rs) > 0 {
			add(newDerivation(goal, DisjunctiveSyllogism, newDerivation(ax, Axiom), rs[0].d), rs[0].s)
		}
	}
}

// rewrite applies Leibniz's law: if a = b is known, a goal mentioning b
// follows from the same goal mentioning a, and vice versa.
func (e *Engine) rewrite(goal *Expr, s Substitution, depth int, add func(*Derivation, Substitution)) {
	for _, ax := range e.axioms {
		if ax.Op != IdentityOp {
			continue
		}
		a, b := ax.Args[0], ax.Args[1]
		for _, pair := range [2][2]Term{{a, b}, {b, a}} {
			from, to := pair[1], pair[0]
			if !goal.containsTerm(from) {
				continue
			}
			if rs := e.search(goal.replaceTerm(from, to), s, depth+1); len(rs) > 0 {
				add(newDerivation(goal, IdentityRewrite, newDerivation(ax, Axiom), rs[0].d), rs[0].s)
			}
		}
	}
}

// instantiate strips the universal prefix of an axiom, replacing the bound
// variables by fresh unification variables.
func (e *Engine) instantiate(ax *Expr) *Expr {
	body := ax
	for body.Op == ForAllOp {
		body = body.Left.rename(body.Var, Var(e.freshName(body.Var)))
	}
	return body
}

func (e *Engine) freshName(v string) string {
	e.fresh++
	return v + "_" + strconv.Itoa(e.fresh)
}
