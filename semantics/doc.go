/*
Package semantics implements the post-parse transformations of logical forms:
expansion of lexical axioms and the lowering of modal operators to explicit
quantification over possible worlds.

Both passes are total functions over well-formed trees. They never fail and
never mutate their input; results are allocated in the input's arena and
share unchanged sub-trees with the input.

Axiom expansion is expressed as a table of rewrite rules (see RewriteRule).
Each rule consists of a pattern, matched against expression nodes, and a
rewriter, called for every node matching the pattern. Rules are applied in a
single bottom-up pass, i.e. results of a rewrite are not rewritten again.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package semantics

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'logos.semantics'.
func tracer() tracing.Trace {
	return tracing.Select("logos.semantics")
}
