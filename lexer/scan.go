package lexer

import (
	"strings"
	"sync"

	"github.com/npillmayer/logos"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// The segmentation step is done by a lexmachine DFA. It splits the input
// into words, numbers, strings and punctuation; classification into
// lexical categories happens afterwards, in Lexer.

// segment is a raw token produced by the DFA.
type segment struct {
	id   int
	text string
	span logos.Span
}

// segment categories
const (
	segEOF = iota
	segWord
	segNumber
	segString
	segHash
	segPunct
)

var punctuation = []string{".", ",", "?", "!", ":", ";", "(", ")"}

// lmAdapter wraps a compiled lexmachine lexer.
type lmAdapter struct {
	Lexer *lexmachine.Lexer
}

var (
	adapterOnce sync.Once
	adapter     *lmAdapter
	adapterErr  error
)

// segmenter returns the process-wide segmenting DFA. Compiling the DFA is
// costly, the compiled lexer is immutable and shared.
func segmenter() (*lmAdapter, error) {
	adapterOnce.Do(func() {
		adapter, adapterErr = newLMAdapter(func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`##+`), makeSegment(segHash))
			lexer.Add([]byte(`\"[^"]*\"`), makeSegment(segString))
			lexer.Add([]byte(`[0-9]+(\.[0-9]+)?`), makeSegment(segNumber))
			lexer.Add([]byte(`([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_|-|')*`), makeSegment(segWord))
			lexer.Add([]byte(`//[^\n]*\n?`), skip)
			lexer.Add([]byte(`( |\t|\n|\r)+`), skip)
		}, punctuation)
	})
	return adapter, adapterErr
}

// newLMAdapter creates a new lexmachine adapter. It receives an init function
// to add patterns and a list of literals ('.', ';', …).
//
// newLMAdapter will return an error if compiling the DFA failed.
func newLMAdapter(init func(*lexmachine.Lexer), literals []string) (*lmAdapter, error) {
	a := &lmAdapter{}
	a.Lexer = lexmachine.NewLexer()
	init(a.Lexer)
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		a.Lexer.Add([]byte(r), makeSegment(segPunct))
	}
	if err := a.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return a, nil
}

// scanner creates a scanner for a given input.
func (lm *lmAdapter) scanner(input string) (*lmScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &lmScanner{}, err
	}
	return &lmScanner{s, logError}, nil
}

// lmScanner reads segments from a lexmachine scanner.
type lmScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Debugf("scanner skips input: " + e.Error())
}

// next returns the next segment. Unconsumable input is reported and skipped,
// the lexer never fails.
func (lms *lmScanner) next() segment {
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.scanner.TC = ui.FailTC
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return segment{id: segEOF}
	}
	token := tok.(*lexmachine.Token)
	return segment{
		id:   token.Type,
		text: string(token.Lexeme),
		span: logos.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	}
}

// segments splits input into raw segments.
func segments(input string) ([]segment, error) {
	lm, err := segmenter()
	if err != nil {
		return nil, err
	}
	sc, err := lm.scanner(input)
	if err != nil {
		return nil, err
	}
	var segs []segment
	for seg := sc.next(); seg.id != segEOF; seg = sc.next() {
		segs = append(segs, seg)
	}
	return segs, nil
}

// ---------------------------------------------------------------------------

// skip is an action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeSegment is an action which wraps a scanned match into a lexmachine token.
func makeSegment(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
