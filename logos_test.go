package logos

import "testing"

func TestSpanExtend(t *testing.T) {
	s := Span{4, 9}
	if x := s.Extend(Span{2, 6}); x != (Span{2, 9}) {
		t.Errorf("expected (2…9), have %s", x)
	}
	if x := s.Extend(Span{}); x != s {
		t.Errorf("extending with null span should not change span, have %s", x)
	}
	if x := (Span{}).Extend(s); x != s {
		t.Errorf("null span extended should be other span, have %s", x)
	}
	if s.Len() != 5 {
		t.Errorf("expected length 5, have %d", s.Len())
	}
}

func TestSpanText(t *testing.T) {
	input := "John runs."
	if txt := (Span{5, 9}).Text(input); txt != "runs" {
		t.Errorf("expected 'runs', have %q", txt)
	}
	if txt := (Span{5, 99}).Text(input); txt != "runs." {
		t.Errorf("expected clipped text, have %q", txt)
	}
}
