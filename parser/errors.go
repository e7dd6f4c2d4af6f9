package parser

import (
	"fmt"

	"github.com/npillmayer/logos"
	"github.com/npillmayer/logos/lexer"
)

// ErrorKind classifies parse errors.
type ErrorKind int8

// Kinds of parse errors. Custom errors carry their description in the
// error's message.
const (
	UnexpectedToken ErrorKind = iota
	ExpectedVerb
	ExpectedThan
	ExpectedNumber
	ExpectedFocusParticle
	ExpectedScopalAdverb
	ExpectedSuperlativeAdjective
	ExpectedComparativeAdjective
	ExpectedNoun
	UnresolvedPronoun
	Custom
)

var errorKindNames = [...]string{"UnexpectedToken", "ExpectedVerb", "ExpectedThan",
	"ExpectedNumber", "ExpectedFocusParticle", "ExpectedScopalAdverb",
	"ExpectedSuperlativeAdjective", "ExpectedComparativeAdjective", "ExpectedNoun",
	"UnresolvedPronoun", "Custom"}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError is the error type returned by the parser. Span locates the
// offending token in the input.
type ParseError struct {
	Kind     ErrorKind
	Span     logos.Span
	Expected string // set for UnexpectedToken
	Found    string
	Message  string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnexpectedToken:
		return fmt.Sprintf("unexpected token at %s: expected %s, found %s", e.Span, e.Expected, e.Found)
	case Custom:
		return e.Message
	}
	if e.Found != "" {
		return fmt.Sprintf("%s at %s, found %s", e.Kind, e.Span, e.Found)
	}
	return fmt.Sprintf("%s at %s", e.Kind, e.Span)
}

// NewCustomError creates a Custom parse error.
func NewCustomError(span logos.Span, format string, args ...interface{}) *ParseError {
	return &ParseError{Kind: Custom, Span: span, Message: fmt.Sprintf(format, args...)}
}

func (p *Parser) errorAt(kind ErrorKind, t lexer.Token) *ParseError {
	return &ParseError{Kind: kind, Span: t.Span, Found: p.show(t)}
}

func (p *Parser) unexpected(expected string) *ParseError {
	t := p.peek()
	err := &ParseError{Kind: UnexpectedToken, Span: t.Span, Expected: expected, Found: p.show(t)}
	tracer().Debugf("parse error: %v", err)
	return err
}

func (p *Parser) show(t lexer.Token) string {
	if t.Kind == lexer.EOF {
		return "end of input"
	}
	return fmt.Sprintf("%s %q", t.Primary().Kind, p.in.Resolve(t.Lexeme))
}
