package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/logos/fol"
	"github.com/npillmayer/logos/format"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestReplDiscourse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.fol")
	defer teardown()
	//
	intp := NewIntp(fol.Options{Format: format.Unicode})
	var out bytes.Buffer
	for _, line := range []string{"A man runs.", "He sings."} {
		if _, err := intp.Eval(line, &out); err != nil {
			t.Fatalf("%q: %v", line, err)
		}
	}
	if lines := strings.Split(strings.TrimSpace(out.String()), "\n"); len(lines) != 2 {
		t.Errorf("expected a formula per line, got %q", out.String())
	}
	if _, err := intp.Eval(":reset", &out); err != nil {
		t.Fatal(err)
	}
	if _, err := intp.Eval("He sings.", &out); err != nil {
		t.Logf("pronoun without referent after reset: %v", err)
	}
}

func TestReplCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.fol")
	defer teardown()
	//
	intp := NewIntp(fol.Options{Format: format.Unicode})
	var out bytes.Buffer
	if _, err := intp.Eval(":format simplefol", &out); err != nil {
		t.Fatal(err)
	}
	if intp.opts.Format.Name() != format.SimpleFOL.Name() {
		t.Errorf("expected format to switch, have %s", intp.opts.Format.Name())
	}
	if _, err := intp.Eval(":format klingon", &out); err == nil {
		t.Errorf("expected unknown format to be rejected")
	}
	out.Reset()
	if _, err := intp.Eval(":scopes Every woman loves a man.", &out); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), " 1: ") {
		t.Errorf("expected numbered readings, got %q", out.String())
	}
	if quit, _ := intp.Eval(":quit", &out); !quit {
		t.Errorf("expected :quit to end the REPL")
	}
	if _, err := intp.Eval(":frobnicate", &out); err == nil {
		t.Errorf("expected unknown command to be rejected")
	}
}
