/*
Package drs implements discourse representation structures and the world
state which carries discourse information across sentence boundaries.

A DRS is a tree of boxes. Every box has a universe of discourse referents,
introduced by indefinites, proper names and quantified noun phrases.
Pronouns and definite descriptions are resolved against the referents of
accessible boxes. Negation and disjunction boxes are closed to the outside,
the consequent of a conditional sees its antecedent, and the nuclear scope
of a universal sees its restrictor.

The DRS is a value which changes hands: the world state hands it to the
parser with TakeDRS, the parser threads it through a parse and returns it,
and the caller gives it back with Restore. There is never more than one
holder at a time.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package drs

import (
	"fmt"

	"github.com/npillmayer/logos/intern"
	"github.com/npillmayer/logos/lexicon"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'logos.drs'.
func tracer() tracing.Trace {
	return tracing.Select("logos.drs")
}

// BoxType is the kind of a DRS box.
type BoxType int8

// Kinds of boxes.
const (
	Main BoxType = iota
	ConditionalAntecedent
	ConditionalConsequent
	NegationScope
	UniversalRestrictor
	UniversalScope
	Disjunct
	ModalScope
)

var boxNames = [...]string{"Main", "Antecedent", "Consequent", "Negation", "Restrictor",
	"Scope", "Disjunct", "Modal"}

func (bt BoxType) String() string {
	if int(bt) < len(boxNames) {
		return boxNames[bt]
	}
	return fmt.Sprintf("BoxType(%d)", int(bt))
}

// Source records where a referent has been introduced.
type Source int8

// Referent sources.
const (
	MainClause Source = iota
	ProperName
	FromAntecedent
	FromRestrictor
	FromNegation
	FromDisjunct
	FromModal
)

// UniversalForce is true for referents which get universal force in DRT,
// i.e. indefinites in conditional antecedents and universal restrictors.
func (s Source) UniversalForce() bool {
	return s == FromAntecedent || s == FromRestrictor
}

func (bt BoxType) source() Source {
	switch bt {
	case ConditionalAntecedent:
		return FromAntecedent
	case UniversalRestrictor:
		return FromRestrictor
	case NegationScope:
		return FromNegation
	case Disjunct:
		return FromDisjunct
	case ModalScope:
		return FromModal
	}
	return MainClause
}

// Referent is a discourse referent.
type Referent struct {
	Variable      intern.Symbol // variable or constant the referent is bound to
	NounClass     intern.Symbol // noun lemma or proper name
	Gender        lexicon.Gender
	Number        lexicon.Number
	Source        Source
	UsedByPronoun bool
	seq           int // order of introduction
}

// Universal is true if the referent has to be bound by a universal
// quantifier: it was introduced in a universal context, or has been picked up
// by a pronoun (donkey anaphora).
func (r *Referent) Universal() bool {
	return r.Source.UniversalForce() || r.UsedByPronoun
}

type box struct {
	typ      BoxType
	parent   int // -1 for the main box
	universe []Referent
}

// Drs is a discourse representation structure. The zero value is not usable;
// create one with New.
type Drs struct {
	boxes   []box
	current int
	vars    int
	refs    int
	// timeline
	refTimes int
	refTime  string
	pending  []TimeConstraint
}

// New creates a DRS consisting of an empty main box.
func New() *Drs {
	d := &Drs{}
	d.Clear()
	return d
}

// Clear resets the DRS to an empty main box.
func (d *Drs) Clear() {
	d.boxes = []box{{typ: Main, parent: -1}}
	d.current = 0
	d.vars = 0
	d.refs = 0
	d.refTimes = 0
	d.refTime = ""
	d.pending = nil
}

// EnterBox opens a sub-box of the current box and makes it current. It
// returns the new box's index.
func (d *Drs) EnterBox(bt BoxType) int {
	d.boxes = append(d.boxes, box{typ: bt, parent: d.current})
	d.current = len(d.boxes) - 1
	tracer().Debugf("DRS enter box %d (%s)", d.current, bt)
	return d.current
}

// ExitBox makes the parent of the current box current.
func (d *Drs) ExitBox() {
	if p := d.boxes[d.current].parent; p >= 0 {
		d.current = p
	}
}

// ResetToMain makes the main box current. Called at sentence boundaries.
func (d *Drs) ResetToMain() {
	d.current = 0
}

// Current returns the index of the current box.
func (d *Drs) Current() int {
	return d.current
}

// CurrentType returns the type of the current box.
func (d *Drs) CurrentType() BoxType {
	return d.boxes[d.current].typ
}

// InAntecedent is true if the current box is a conditional antecedent.
func (d *Drs) InAntecedent() bool {
	return d.CurrentType() == ConditionalAntecedent
}

// InRestrictor is true if the current box is a universal restrictor.
func (d *Drs) InRestrictor() bool {
	return d.CurrentType() == UniversalRestrictor
}

// Boxes returns the number of boxes.
func (d *Drs) Boxes() int {
	return len(d.boxes)
}

var varNames = [...]string{"x", "y", "z", "w", "v", "u"}

// FreshVar returns a variable name not yet used within this DRS: x, y, z,
// w, v, u, x1, y1, ….
func (d *Drs) FreshVar() string {
	n := d.vars
	d.vars++
	name := varNames[n%len(varNames)]
	if round := n / len(varNames); round > 0 {
		name = fmt.Sprintf("%s%d", name, round)
	}
	return name
}

// Introduce adds a referent for an indefinite or quantified noun phrase to
// the current box.
func (d *Drs) Introduce(variable, nounClass intern.Symbol, g lexicon.Gender, n lexicon.Number) {
	b := &d.boxes[d.current]
	d.refs++
	b.universe = append(b.universe, Referent{
		Variable:  variable,
		NounClass: nounClass,
		Gender:    g,
		Number:    n,
		Source:    b.typ.source(),
		seq:       d.refs,
	})
}

// IntroduceProperName adds a referent for a proper name. Proper names are
// accessible from everywhere, so they live in the main box.
func (d *Drs) IntroduceProperName(constant, name intern.Symbol, g lexicon.Gender) {
	for i, r := range d.boxes[0].universe {
		if r.Source == ProperName && r.Variable == constant {
			d.refs++
			d.boxes[0].universe[i].seq = d.refs // mentioned again, now most recent
			return
		}
	}
	d.refs++
	d.boxes[0].universe = append(d.boxes[0].universe, Referent{
		Variable:  constant,
		NounClass: name,
		Gender:    g,
		Source:    ProperName,
		seq:       d.refs,
	})
}

// IsAccessible checks whether referents of box target are accessible from
// box from.
func (d *Drs) IsAccessible(target, from int) bool {
	if target == from {
		return true
	}
	for b := d.boxes[from].parent; b >= 0; b = d.boxes[b].parent {
		if b == target {
			return true
		}
	}
	t := d.boxes[target]
	switch t.typ {
	case ConditionalAntecedent: // seen from its consequent
		return d.hasAncestorOfType(from, ConditionalConsequent, t.parent)
	case UniversalRestrictor: // seen from its nuclear scope
		return d.hasAncestorOfType(from, UniversalScope, t.parent)
	}
	return false
}

// hasAncestorOfType checks if box b, or one of its ancestors below stop, is
// of type bt and a child of stop.
func (d *Drs) hasAncestorOfType(b int, bt BoxType, stop int) bool {
	for ; b >= 0 && b != stop; b = d.boxes[b].parent {
		if d.boxes[b].typ == bt && d.boxes[b].parent == stop {
			return true
		}
	}
	return false
}

// ResolvePronoun finds the most recently introduced accessible referent
// agreeing in gender and number, and marks it as picked up by a pronoun.
func (d *Drs) ResolvePronoun(g lexicon.Gender, n lexicon.Number) (intern.Symbol, bool) {
	bi, ri, latest := -1, -1, 0
	for b := range d.boxes {
		if !d.IsAccessible(b, d.current) {
			continue
		}
		for r, ref := range d.boxes[b].universe {
			if g.Compatible(ref.Gender) && ref.Number == n && ref.seq > latest {
				bi, ri, latest = b, r, ref.seq
			}
		}
	}
	if bi < 0 {
		return intern.Empty, false
	}
	ref := &d.boxes[bi].universe[ri]
	ref.UsedByPronoun = true
	tracer().Debugf("pronoun resolved to referent in box %d", bi)
	return ref.Variable, true
}

// ResolveDefinite finds the most recent accessible referent introduced with
// the given noun class.
func (d *Drs) ResolveDefinite(nounClass intern.Symbol) (intern.Symbol, bool) {
	var found *Referent
	for b := range d.boxes {
		if !d.IsAccessible(b, d.current) {
			continue
		}
		for r := range d.boxes[b].universe {
			ref := &d.boxes[b].universe[r]
			if ref.NounClass == nounClass && ref.Source != ProperName && (found == nil || ref.seq > found.seq) {
				found = ref
			}
		}
	}
	if found == nil {
		return intern.Empty, false
	}
	return found.Variable, true
}

// Lookup finds the referent bound to a variable.
func (d *Drs) Lookup(variable intern.Symbol) (*Referent, bool) {
	for b := range d.boxes {
		for r := range d.boxes[b].universe {
			if d.boxes[b].universe[r].Variable == variable {
				return &d.boxes[b].universe[r], true
			}
		}
	}
	return nil, false
}

// Referents returns all referents in box order.
func (d *Drs) Referents() []Referent {
	var refs []Referent
	for _, b := range d.boxes {
		refs = append(refs, b.universe...)
	}
	return refs
}

// UniversalReferents returns the variables of all referents which need
// universal force.
func (d *Drs) UniversalReferents() []intern.Symbol {
	var vars []intern.Symbol
	for _, r := range d.Referents() {
		if r.Universal() {
			vars = append(vars, r.Variable)
		}
	}
	return vars
}

// ExistentialReferents returns the variables of all non-name referents
// which keep existential force.
func (d *Drs) ExistentialReferents() []intern.Symbol {
	var vars []intern.Symbol
	for _, r := range d.Referents() {
		if !r.Universal() && r.Source != ProperName {
			vars = append(vars, r.Variable)
		}
	}
	return vars
}

// --- Timeline --------------------------------------------------------------

// TimeRelation relates two time points.
type TimeRelation int8

// Time relations.
const (
	Precedes TimeRelation = iota
	Equals
)

func (tr TimeRelation) String() string {
	if tr == Equals {
		return "Equals"
	}
	return "Precedes"
}

// TimeConstraint is a constraint between two time variables, e.g.
// Precedes(e1, r1).
type TimeConstraint struct {
	Left     string
	Relation TimeRelation
	Right    string
}

func (tc TimeConstraint) String() string {
	return fmt.Sprintf("%s(%s, %s)", tc.Relation, tc.Left, tc.Right)
}

// NextReferenceTime creates a fresh reference time r1, r2, … and makes it
// current.
func (d *Drs) NextReferenceTime() string {
	d.refTimes++
	d.refTime = fmt.Sprintf("r%d", d.refTimes)
	return d.refTime
}

// ReferenceTime returns the current reference time, which is the speech time
// "S" if none has been introduced.
func (d *Drs) ReferenceTime() string {
	if d.refTime == "" {
		return "S"
	}
	return d.refTime
}

// AddTimeConstraint records a constraint which will be committed to the world
// state at the end of the sentence. A constraint already pending is not
// recorded twice.
func (d *Drs) AddTimeConstraint(left string, rel TimeRelation, right string) {
	tc := TimeConstraint{Left: left, Relation: rel, Right: right}
	for _, c := range d.pending {
		if c == tc {
			return
		}
	}
	d.pending = append(d.pending, tc)
}

// PendingConstraints returns the uncommitted time constraints.
func (d *Drs) PendingConstraints() []TimeConstraint {
	return d.pending
}

func (d *Drs) takePending() []TimeConstraint {
	p := d.pending
	d.pending = nil
	return p
}
