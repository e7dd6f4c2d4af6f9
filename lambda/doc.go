/*
Package lambda works on the scope structure of logical forms.

Its main service is scope enumeration. A sentence like

	Every woman loves a man.

is parsed with surface scope, ∀x(Woman(x) → ∃y(Man(y) ∧ Love(x, y))). The
inverse reading, ∃y(Man(y) ∧ ∀x(Woman(x) → Love(x, y))), is produced by
permuting the chain of quantifiers (and negations) heading the formula.
Quantifiers never leave the scope island they have been parsed in: relative
clauses and conditional antecedents open new islands, and permutations are
performed per island only. ScopeIterator enumerates the readings lazily and
knows the exact number of readings left.

Opaque verbs ("seek", "want") give rise to a second kind of ambiguity, de re
vs. de dicto, which is enumerated by EnumerateIntensionalReadings.

Besides, the package offers the classic tools of Montague-style composition:
type lifting, β-reduction and capture-aware substitution.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package lambda

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'logos.lambda'.
func tracer() tracing.Trace {
	return tracing.Select("logos.lambda")
}
