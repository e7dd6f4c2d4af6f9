/*
Package proof implements a small backward-chaining prover for the
first-order fragment of compiled sentences.

Formulas are first converted from the arena representation into a
self-contained proof representation (see Convert). Events are flattened to
predicates over their participants, and modal, temporal and aspectual
operators are stripped, as the prover works on plain classical logic.

The Engine holds a knowledge base of axioms and tries to derive a goal from
it, using these rules:

	PremiseMatch          the goal is an axiom (up to unification)
	ModusPonens           from ∀x̄(A → B) and A infer B
	UniversalInst         from ∀x̄ P infer P[x̄ := t̄]
	ConjunctionIntro      from A and B infer A ∧ B
	DisjunctiveSyllogism  from A ∨ B and ¬A infer B
	ModusTollens          from ∀x̄(A → B) and ¬B infer ¬A
	IdentityRewrite       from a = b and P(a) infer P(b) (Leibniz)
	ExistentialIntro      from P(c) infer ∃x P(x)

Search is depth-bounded, so every proof attempt terminates.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package proof

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'logos.proof'.
func tracer() tracing.Trace {
	return tracing.Select("logos.proof")
}
