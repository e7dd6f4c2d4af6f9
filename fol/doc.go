/*
Package fol provides the entry points of the compiler: functions which take
English text and return first-order formulas.

All entry points run the same pipeline:

	lex → MWE → discovery → parse → axioms → [Kripke] → pragmatics → format

Compile and its variants produce a single reading. CompileForest produces
every reading the parser can be configured to find (lexical, attachment,
plurality, negation and modal ambiguities), CompileAllScopes every
quantifier scoping. CompileDiscourse and CompileWithDiscourse carry
discourse referents and temporal order across sentences, and
CompileTheorem runs the prover on a theorem block.

# Configuration

Package fol reads these keys from the global configuration (gconf):

	logos.format        default output format for callers not passing one
	logos.lexicon       path of a YAML lexicon replacing the built-in one
	logos.forest.trace  log failed forest modes with level Info instead of Debug

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package fol

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'logos.fol'.
func tracer() tracing.Trace {
	return tracing.Select("logos.fol")
}
