/*
Package logos is a compiler from English sentences to first-order logic.

Logos translates a logic-bearing fragment of English into formulas of
first-order logic, using neo-Davidsonian event semantics, discourse
representation structures for anaphora, and possible-world semantics for
modals. Package structure is as follows:

■ intern, ast: Package intern maps text fragments to small integer symbols.
Package ast holds the arena-allocated logical-form trees. Nodes are addressed
by integer handles and never mutated after allocation.

■ lexicon, lexer, mwe, discovery: Packages for the front end. The lexer
classifies words using a YAML lexicon, mwe collapses multi-word expressions,
and discovery registers LOGOS type and policy declarations before parsing.

■ parser, drs: Package parser implements a recursive descent parser for
English sentences. Package drs tracks discourse referents, event ordering and
time constraints across sentences.

■ semantics, pragmatics, lambda: Post-parse transformations: axiom expansion,
Kripke lowering, indirect speech acts, and enumeration of scope readings.

■ format, proof: Output strategies (Unicode, LaTeX, simplified FOL, Kripke,
Go boolean expressions) and a small backward-chaining prover.

■ fol: Entry points tying the pipeline together.

The base package contains data types which are used throughout all the other packages.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package logos
