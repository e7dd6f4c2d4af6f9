/*
Command logos translates English sentences into first-order logic.

	logos compile "Every dog barks."
	logos --format latex compile "John must run."
	logos forest "The men lifted the piano."
	logos scopes "Every woman loves a man."
	logos discourse "John ran." "Mary sang."
	logos theorem socrates.logos
	logos dump "Every dog barks."
	logos repl

Without arguments, text is read from standard input. In the REPL, every
line continues the discourse of the lines before it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the syntax tracer, which is set up in main().
func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}
