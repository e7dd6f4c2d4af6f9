/*
Package parser implements a recursive descent parser for a logic-bearing
fragment of English.

The parser consumes a token stream (after multi-word expressions have been
collapsed) and builds a logical form in an ast.Arena. Discourse state is
threaded through explicitly: Parse takes ownership of a DRS and hands it
back together with the result, so that the caller can put it back into a
world state at the sentence boundary.

Ambiguity is not resolved by the parser itself. Instead, an immutable
Config selects one strategy per ambiguity source (lexical category, PP
attachment, collective readings, scope of negation, modal flavour). Callers
that need every reading re-parse with different configurations.

Every quantifier node carries the id of the scope island it has been parsed
in. Relative clauses and embedded questions open new islands; quantifiers of
different islands never change their relative scope during scope
enumeration.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package parser

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'logos.parser'.
func tracer() tracing.Trace {
	return tracing.Select("logos.parser")
}
