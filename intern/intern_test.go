package intern

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestInternEqualText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.intern")
	defer teardown()
	//
	in := New()
	a := in.Intern("dog")
	b := in.Intern("cat")
	c := in.Intern("dog")
	if a != c {
		t.Errorf("equal text should yield equal symbols, have %d and %d", a, c)
	}
	if a == b {
		t.Errorf("distinct text should yield distinct symbols")
	}
	if in.Resolve(b) != "cat" {
		t.Errorf("expected 'cat', have %q", in.Resolve(b))
	}
	if in.Len() != 3 {
		t.Errorf("expected 3 entries (incl. empty), have %d", in.Len())
	}
}

func TestInternEmpty(t *testing.T) {
	in := New()
	if sym := in.Intern(""); !sym.IsEmpty() {
		t.Errorf("empty string should map to Empty, have %d", sym)
	}
	if _, ok := in.Lookup("nothing"); ok {
		t.Errorf("lookup should not create symbols")
	}
}
