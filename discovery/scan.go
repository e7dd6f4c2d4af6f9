package discovery

import (
	"strings"

	"github.com/npillmayer/logos/intern"
	"github.com/npillmayer/logos/lexer"
)

// Scan runs the discovery pass over a token stream and returns the type
// registry. Policies found on the way are available from the registry's
// Policies().
func Scan(tokens []lexer.Token, in *intern.Interner) *TypeRegistry {
	reg := NewTypeRegistry(in)
	sc := &scanner{tokens: tokens, in: in, reg: reg}
	sc.run()
	tracer().Debugf("discovery found %d types", reg.Size())
	return reg
}

type scanner struct {
	tokens []lexer.Token
	pos    int
	in     *intern.Interner
	reg    *TypeRegistry
}

type blockType int8

const (
	noBlock blockType = iota
	definitionBlock
	policyBlock
	otherBlock
)

func (sc *scanner) run() {
	for !sc.done() {
		if sc.peek().Kind != lexer.Hash {
			sc.advance()
			continue
		}
		sc.advance() // ##
		switch sc.blockHeader() {
		case definitionBlock:
			sc.advance()
			sc.skip(lexer.Colon)
			sc.definitionBlock()
		case policyBlock:
			sc.advance()
			sc.skip(lexer.Colon)
			sc.policyBlock()
		case noBlock:
			if sc.checkArticle() { // inline header: "## A Point has:"
				sc.typeDefinition()
			}
		}
	}
}

func (sc *scanner) blockHeader() blockType {
	if sc.done() {
		return noBlock
	}
	switch strings.ToLower(sc.text()) {
	case "definition", "definitions", "type", "types":
		return definitionBlock
	case "policy", "policies":
		return policyBlock
	}
	if sc.checkArticle() {
		return noBlock
	}
	return otherBlock
}

// definitionBlock scans type definitions up to the next block header.
func (sc *scanner) definitionBlock() {
	for !sc.done() && sc.peek().Kind != lexer.Hash {
		if sc.checkArticle() {
			sc.typeDefinition()
			continue
		}
		sc.skipToPeriod()
	}
}

// typeDefinition scans "A Name [of T [and U]] (has: … | is …)".
func (sc *scanner) typeDefinition() {
	header := sc.peek().Span
	sc.advance() // article
	name, ok := sc.name()
	if !ok {
		sc.skipToPeriod()
		return
	}
	def := &TypeDef{Name: name, Span: header.Extend(sc.prev().Span)}
	if sc.checkWord("of") {
		sc.advance()
		def.Generics = sc.typeParams()
	}
	if sc.peek().Kind == lexer.Be && sc.peekAt(1).Kind != lexer.EOF &&
		strings.EqualFold(sc.textAt(1), "portable") {
		sc.advance() // is
		sc.advance() // Portable
		sc.skip(lexer.And)
	}
	switch {
	case sc.peek().Kind == lexer.Have:
		sc.advance()
		sc.skip(lexer.Colon)
		def.Kind = Struct
		def.Fields = sc.structFields(def.Generics)
		sc.reg.Define(def)
	case sc.peek().Kind == lexer.Be:
		sc.advance()
		sc.typeBody(def)
	default:
		sc.skipToPeriod()
	}
}

func (sc *scanner) typeBody(def *TypeDef) {
	switch {
	case sc.peek().Kind == lexer.Either:
		sc.advance()
		sc.skip(lexer.Colon)
		def.Kind = Enum
		def.Variants = sc.variants(def.Generics)
		sc.reg.Define(def)
		return
	case sc.checkWord("one") && sc.peekAt(1).Kind == lexer.Preposition && strings.EqualFold(sc.textAt(1), "of"):
		sc.advance()
		sc.advance()
		sc.skip(lexer.Colon)
		def.Kind = Enum
		def.Variants = sc.variants(def.Generics)
		sc.reg.Define(def)
		return
	case sc.checkArticle():
		sc.advance()
		word := strings.ToLower(sc.text())
		switch word {
		case "generic":
			def.Kind = Generic
			def.ParamCount = len(def.Generics)
			if def.ParamCount == 0 {
				def.ParamCount = 1
			}
		case "record", "struct", "structure":
			def.Kind = Struct
		case "sum", "enum", "choice":
			def.Kind = Enum
		default:
			if !sc.capitalized() {
				sc.skipToPeriod()
				return
			}
			def.Kind = Alias
			def.Target = sc.peek().Lexeme
		}
		sc.reg.Define(def)
	}
	sc.skipToPeriod()
}

// structFields scans "a [public] name, which is Type." and "a name: Type."
func (sc *scanner) structFields(params []intern.Symbol) []Field {
	var fields []Field
	for sc.checkArticle() && !sc.capitalizedAt(1) {
		sc.advance()
		field := Field{}
		if sc.checkWord("public") {
			field.Public = true
			sc.advance()
		}
		field.Name = sc.fieldName()
		switch sc.peek().Kind {
		case lexer.Colon:
			sc.advance()
			field.Public = true
			field.Type = sc.fieldType(params)
		case lexer.Comma:
			sc.advance()
			sc.skip(lexer.Which)
			sc.skip(lexer.Be)
			field.Type = sc.fieldType(params)
		default:
			field.Type = sc.unknownType()
		}
		fields = append(fields, field)
		sc.skipToPeriod()
	}
	return fields
}

// variants scans "A Circle with a radius, which is Int.", "A Circle (radius:
// Int)." and unit variants "A Point." or "Point.".
func (sc *scanner) variants(params []intern.Symbol) []Variant {
	var variants []Variant
	for !sc.done() {
		offset := 0
		if sc.checkArticle() {
			offset = 1
		}
		if !sc.capitalizedAt(offset) {
			break
		}
		next := sc.peekAt(offset + 1)
		isVariant := next.Kind == lexer.Period || next.Kind == lexer.LParen ||
			strings.EqualFold(sc.textAt(offset+1), "with")
		if !isVariant {
			break
		}
		if offset == 1 {
			sc.advance()
		}
		v := Variant{Name: sc.peek().Lexeme}
		sc.advance()
		switch {
		case sc.peek().Kind == lexer.LParen:
			sc.advance()
			v.Fields = sc.conciseFields(params)
		case sc.checkWord("with"):
			sc.advance()
			v.Fields = sc.naturalFields(params)
		}
		variants = append(variants, v)
		sc.skipToPeriod()
	}
	return variants
}

// naturalFields scans "a radius, which is Int [and a height, which is Int]"
// and the concise "radius Int and height Int".
func (sc *scanner) naturalFields(params []intern.Symbol) []Field {
	var fields []Field
	for !sc.done() && sc.peek().Kind != lexer.Period {
		sc.skip(lexer.Article)
		field := Field{Name: sc.fieldName()}
		if sc.peek().Kind == lexer.Comma {
			sc.advance()
			sc.skip(lexer.Which)
			sc.skip(lexer.Be)
		}
		field.Type = sc.fieldType(params)
		fields = append(fields, field)
		sc.skip(lexer.Comma)
		if sc.peek().Kind != lexer.And {
			break
		}
		sc.advance()
	}
	return fields
}

// conciseFields scans "radius: Int, height: Int)" after the parenthesis.
func (sc *scanner) conciseFields(params []intern.Symbol) []Field {
	var fields []Field
	for !sc.done() && sc.peek().Kind != lexer.RParen {
		field := Field{Name: sc.fieldName(), Public: true}
		if sc.skip(lexer.Colon) {
			field.Type = sc.fieldType(params)
		} else {
			field.Type = sc.unknownType()
		}
		fields = append(fields, field)
		if !sc.skip(lexer.Comma) {
			break
		}
	}
	sc.skip(lexer.RParen)
	return fields
}

// typeParams scans "T and U".
func (sc *scanner) typeParams() []intern.Symbol {
	var params []intern.Symbol
	for !sc.done() && sc.capitalized() {
		params = append(params, sc.peek().Lexeme)
		sc.advance()
		if sc.peek().Kind != lexer.And {
			break
		}
		sc.advance()
	}
	return params
}

// fieldType scans a type reference, e.g. "Int" or "List of Int".
func (sc *scanner) fieldType(params []intern.Symbol) FieldType {
	if sc.done() || !sc.capitalized() {
		return sc.unknownType()
	}
	name := sc.peek().Lexeme
	sc.advance()
	for _, p := range params {
		if p == name {
			return FieldType{Kind: TypeParamField, Name: name}
		}
	}
	if sc.checkWord("of") {
		sc.advance()
		ft := FieldType{Kind: GenericField, Name: name}
		ft.Params = append(ft.Params, sc.fieldType(params))
		for sc.peek().Kind == lexer.And && sc.capitalizedAt(1) {
			sc.advance()
			ft.Params = append(ft.Params, sc.fieldType(params))
		}
		return ft
	}
	for _, p := range primitives {
		if sc.in.Resolve(name) == p {
			return FieldType{Kind: PrimitiveField, Name: name}
		}
	}
	return FieldType{Kind: NamedField, Name: name}
}

func (sc *scanner) unknownType() FieldType {
	return FieldType{Kind: PrimitiveField, Name: sc.in.Intern("Unknown")}
}

// --- Policies --------------------------------------------------------------

// policyBlock scans "A User is admin if …." and
// "A User can publish the Document if …." up to the next block header.
func (sc *scanner) policyBlock() {
	for !sc.done() && sc.peek().Kind != lexer.Hash {
		if !sc.checkArticle() {
			sc.skipToPeriod()
			continue
		}
		sc.advance()
		subject, ok := sc.name()
		if !ok {
			sc.skipToPeriod()
			continue
		}
		switch sc.peek().Kind {
		case lexer.Be:
			sc.advance()
			pred := sc.peek().Lemma
			sc.advance()
			if sc.peek().Kind == lexer.If {
				sc.advance()
				sc.reg.policies.AddPredicate(PredicateDef{
					Subject:   subject,
					Predicate: pred,
					Condition: sc.condition(),
				})
			}
		case lexer.Can:
			sc.advance()
			action := sc.peek().Lemma
			sc.advance()
			sc.skip(lexer.Article)
			object, _ := sc.name()
			if sc.peek().Kind == lexer.If {
				sc.advance()
				sc.reg.policies.AddCapability(CapabilityDef{
					Subject:   subject,
					Action:    action,
					Object:    object,
					Condition: sc.condition(),
				})
			}
		}
		sc.skipToPeriod()
	}
}

// condition collects the tokens up to the period, split at "or" (weakest)
// and "and".
func (sc *scanner) condition() *Condition {
	var words []lexer.Token
	for !sc.done() && sc.peek().Kind != lexer.Period {
		words = append(words, sc.peek())
		sc.advance()
	}
	return sc.splitCondition(words)
}

func (sc *scanner) splitCondition(words []lexer.Token) *Condition {
	for _, op := range []struct {
		kind lexer.Kind
		cond CondOp
	}{{lexer.Or, CondOr}, {lexer.And, CondAnd}} {
		for i, w := range words {
			if w.Kind == op.kind {
				return &Condition{
					Op:    op.cond,
					Left:  sc.splitCondition(words[:i]),
					Right: sc.splitCondition(words[i+1:]),
				}
			}
		}
	}
	var b strings.Builder
	for i, w := range words {
		if i > 0 && w.Kind != lexer.Possessive {
			b.WriteByte(' ')
		}
		b.WriteString(sc.in.Resolve(w.Lexeme))
	}
	return &Condition{Op: CondLeaf, Text: b.String()}
}

// --- Token helpers ---------------------------------------------------------

func (sc *scanner) done() bool {
	return sc.pos >= len(sc.tokens) || sc.tokens[sc.pos].Kind == lexer.EOF
}

func (sc *scanner) peek() lexer.Token {
	return sc.peekAt(0)
}

func (sc *scanner) peekAt(n int) lexer.Token {
	if sc.pos+n >= len(sc.tokens) {
		return lexer.Token{Kind: lexer.EOF}
	}
	return sc.tokens[sc.pos+n]
}

func (sc *scanner) prev() lexer.Token {
	if sc.pos == 0 {
		return sc.peek()
	}
	return sc.tokens[sc.pos-1]
}

func (sc *scanner) advance() {
	if sc.pos < len(sc.tokens) {
		sc.pos++
	}
}

func (sc *scanner) skip(k lexer.Kind) bool {
	if sc.peek().Kind == k {
		sc.advance()
		return true
	}
	return false
}

func (sc *scanner) skipToPeriod() {
	for !sc.done() && sc.peek().Kind != lexer.Period && sc.peek().Kind != lexer.Hash {
		sc.advance()
	}
	sc.skip(lexer.Period)
}

func (sc *scanner) text() string {
	return sc.textAt(0)
}

func (sc *scanner) textAt(n int) string {
	return sc.in.Resolve(sc.peekAt(n).Lexeme)
}

func (sc *scanner) checkWord(w string) bool {
	return !sc.done() && strings.EqualFold(sc.text(), w)
}

func (sc *scanner) checkArticle() bool {
	return sc.peek().Kind == lexer.Article && !sc.peek().Feat.Definite
}

func (sc *scanner) capitalized() bool {
	return sc.capitalizedAt(0)
}

func (sc *scanner) capitalizedAt(n int) bool {
	t := sc.peekAt(n)
	if t.Kind == lexer.EOF || t.Kind.IsPunctuation() {
		return false
	}
	s := sc.in.Resolve(t.Lexeme)
	return s != "" && s[0] >= 'A' && s[0] <= 'Z'
}

// name consumes a capitalized type name.
func (sc *scanner) name() (intern.Symbol, bool) {
	if !sc.capitalized() {
		return intern.Empty, false
	}
	sym := sc.peek().Lexeme
	sc.advance()
	return sym, true
}

// fieldName consumes a field name, which may have been classified as any
// content word.
func (sc *scanner) fieldName() intern.Symbol {
	if sc.done() || sc.peek().Kind.IsPunctuation() {
		return sc.in.Intern("unnamed")
	}
	sym := sc.in.Intern(strings.ToLower(sc.text()))
	sc.advance()
	return sym
}
