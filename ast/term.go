package ast

import "github.com/npillmayer/logos/intern"

// Term is an argument of a predicate or a participant of an event.
type Term interface {
	isTerm()
}

// Constant is an individual constant (proper names).
type Constant struct {
	Name intern.Symbol
}

// Variable is a bound (or, inside lambda bodies, free) variable.
type Variable struct {
	Name intern.Symbol
}

// Function is a function application term.
type Function struct {
	Name intern.Symbol
	Args []TermID
}

// Group is a plural individual (John ⊕ Mary).
type Group struct {
	Members []TermID
}

// Possessed is the thing of kind Possessed owned by Possessor.
type Possessed struct {
	Possessor TermID
	Possessed intern.Symbol
}

// Sigma is the maximal plural individual satisfying Predicate (σP).
type Sigma struct {
	Predicate intern.Symbol
}

// Intension is the concept denoted by Predicate (^P), used for de dicto
// readings of opaque verbs.
type Intension struct {
	Predicate intern.Symbol
}

// Proposition reifies an expression as a term ("believes that …").
type Proposition struct {
	Expr ExprID
}

// Value is a measured quantity. Raw holds the number exactly as written.
type Value struct {
	Kind      NumberKind
	Raw       string
	Unit      intern.Symbol
	Dimension intern.Symbol
}

func (Constant) isTerm()    {}
func (Variable) isTerm()    {}
func (Function) isTerm()    {}
func (Group) isTerm()       {}
func (Possessed) isTerm()   {}
func (Sigma) isTerm()       {}
func (Intension) isTerm()   {}
func (Proposition) isTerm() {}
func (Value) isTerm()       {}
