/*
Package format renders logical forms as text.

Rendering is split into two parts. A Transpiler walks an expression tree and
knows how every node type is composed from its parts. A Formatter is a
strategy object deciding about the concrete notation: quantifier symbols,
connectives, how modal operators and tense look, and whether names are
abbreviated. Strategies are provided for

	Unicode    ∀x(D(x) → ∃e(Bark(e) ∧ Agent(e, x)))
	LaTeX      \forall x(D(x) \supset \exists e(Bark(e) \cdot Agent(e, x)))
	SimpleFOL  forall x((Dog(x) -> Bark(x)))
	Kripke     Forall x((D(x, w0) Implies …))
	GoBool     boolean expressions of the Go programming language

Predicate and constant names are abbreviated by a SymbolRegistry, which
hands out deterministic, collision-free labels. A registry should be used
for one output unit only (a sentence, a reading, a discourse), as labels
depend on the order of first use.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package format

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'logos.format'.
func tracer() tracing.Trace {
	return tracing.Select("logos.format")
}
