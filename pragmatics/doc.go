/*
Package pragmatics re-interprets utterances whose literal meaning differs
from their conventional use.

Currently it recognizes indirect requests: a yes/no question about the
addressee's ability or permission ("Can you pass the salt?") is used as a
command, and is turned into an imperative.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package pragmatics

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'logos.pragmatics'.
func tracer() tracing.Trace {
	return tracing.Select("logos.pragmatics")
}
