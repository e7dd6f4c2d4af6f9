package format

import (
	"fmt"
	"strings"

	"github.com/npillmayer/logos/ast"
	"github.com/npillmayer/logos/lexicon"
)

// Capabilities are the switches of a Formatter which influence the
// Transpiler's tree walk, rather than the notation of single operators.
type Capabilities struct {
	FullNames      bool // unabbreviated predicate and constant names
	SimpleEvents   bool // events as Verb(agent, theme, …), without event variables
	WorldArguments bool // world variables as last argument of predicates
	PreserveCase   bool // constants and atoms verbatim
}

// Formatter is an output notation. Its methods compose the rendering of a
// node from the renderings of its parts.
type Formatter interface {
	Name() string
	Capabilities() Capabilities
	Quantifier(kind ast.QuantifierKind, count int, v, body string) string
	Binary(op ast.BinaryOperator, left, right string) string
	Connective(op ast.BinaryOperator) string
	Not(operand string) string
	Modal(v ast.ModalVector, body string) string
	Temporal(op ast.TemporalOperator, body string) string
	Aspectual(op ast.AspectOperator, body string) string
	Voice(op ast.VoiceOperator, body string) string
	Lambda(v, body string) string
	Counterfactual(antecedent, consequent string) string
	Predicate(name string, args []string) string
	Identity(left, right string) string
	Comparative(adjective, subject, object, difference string) string
	Superlative(comparison, domain, subject string) string
	Sanitize(s string) string
}

// --- Notation tables -------------------------------------------------------

// notation implements Formatter from a table of symbols.
type notation struct {
	name                      string
	forall, exists            string
	cardinal, atLeast, atMost string // formats taking the count
	most, few, many, generic  string
	and, or, implies, iff     string
	not                       string
	box, diamond              string
	permitted, obligatory     string
	past, future              string
	aspects                   [4]string // indexed by ast.AspectOperator
	passive                   string
	lambda                    string // format taking variable and body
	counterfactual            string // format taking antecedent and consequent
	identity                  string
	distinct                  string // format taking two terms
	stripOperators            bool   // modal, aspect and voice operators vanish
	sanitizer                 *strings.Replacer
	caps                      Capabilities
}

func (n notation) Name() string { return n.name }

func (n notation) Capabilities() Capabilities { return n.caps }

func (n notation) Quantifier(kind ast.QuantifierKind, count int, v, body string) string {
	var sym string
	switch kind {
	case ast.Universal:
		sym = n.forall
	case ast.Existential:
		sym = n.exists
	case ast.Most:
		sym = n.most
	case ast.Few:
		sym = n.few
	case ast.Many:
		sym = n.many
	case ast.Generic:
		sym = n.generic
	case ast.Cardinal:
		sym = fmt.Sprintf(n.cardinal, count)
	case ast.AtLeast:
		sym = fmt.Sprintf(n.atLeast, count)
	case ast.AtMost:
		sym = fmt.Sprintf(n.atMost, count)
	default:
		panic(fmt.Sprintf("format: unknown quantifier kind %s", kind))
	}
	return sym + v + "(" + body + ")"
}

func (n notation) Connective(op ast.BinaryOperator) string {
	switch op {
	case ast.And:
		return n.and
	case ast.Or:
		return n.or
	case ast.If:
		return n.implies
	case ast.Iff:
		return n.iff
	}
	panic(fmt.Sprintf("format: unknown connective %s", op))
}

func (n notation) Binary(op ast.BinaryOperator, left, right string) string {
	return "(" + left + " " + n.Connective(op) + " " + right + ")"
}

func (n notation) Not(operand string) string {
	return n.not + operand
}

// Modal renders a modal operator with its force, e.g. □_{1.0} or P_{0.5}
// for a deontic permission.
func (n notation) Modal(v ast.ModalVector, body string) string {
	if n.stripOperators {
		return body
	}
	var sym string
	switch {
	case v.Domain == ast.Deontic && v.IsNecessity():
		sym = n.obligatory
	case v.Domain == ast.Deontic:
		sym = n.permitted
	case v.Force > 0 && !v.IsNecessity():
		sym = n.diamond
	default:
		sym = n.box
	}
	return fmt.Sprintf("%s_{%.1f} %s", sym, v.Force, body)
}

func (n notation) Temporal(op ast.TemporalOperator, body string) string {
	if op == ast.Future {
		return n.future + "(" + body + ")"
	}
	return n.past + "(" + body + ")"
}

func (n notation) Aspectual(op ast.AspectOperator, body string) string {
	if n.stripOperators {
		return body
	}
	return n.aspects[op] + "(" + body + ")"
}

func (n notation) Voice(op ast.VoiceOperator, body string) string {
	if n.stripOperators {
		return body
	}
	return n.passive + "(" + body + ")"
}

func (n notation) Lambda(v, body string) string {
	return fmt.Sprintf(n.lambda, v, body)
}

func (n notation) Counterfactual(antecedent, consequent string) string {
	return fmt.Sprintf(n.counterfactual, antecedent, consequent)
}

func (n notation) Predicate(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + "(" + strings.Join(args, ", ") + ")"
}

func (n notation) Identity(left, right string) string {
	return left + n.identity + right
}

func (n notation) Comparative(adjective, subject, object, difference string) string {
	args := []string{subject, object}
	if difference != "" {
		args = append(args, difference)
	}
	return n.Predicate(capitalize(adjective), args)
}

// Superlative expands "S is the tallest D" to
//
//	∀x((D(x) ∧ x ≠ S) → Taller(S, x))
func (n notation) Superlative(comparison, domain, subject string) string {
	restr := n.Binary(ast.And, n.Predicate(domain, []string{"x"}), fmt.Sprintf(n.distinct, "x", subject))
	scope := n.Predicate(comparison, []string{subject, "x"})
	return n.Quantifier(ast.Universal, 0, "x", n.Binary(ast.If, restr, scope))
}

func (n notation) Sanitize(s string) string {
	if n.sanitizer == nil {
		return s
	}
	return n.sanitizer.Replace(s)
}

// --- Strategies ------------------------------------------------------------

// Unicode renders with mathematical symbols and abbreviated names.
var Unicode Formatter = notation{
	name:   "unicode",
	forall: "∀", exists: "∃",
	cardinal: "∃=%d.", atLeast: "∃≥%d", atMost: "∃≤%d",
	most: "MOST ", few: "FEW ", many: "MANY ", generic: "Gen ",
	and: "∧", or: "∨", implies: "→", iff: "↔", not: "¬",
	box: "□", diamond: "◇", permitted: "P", obligatory: "O",
	past: "P", future: "F",
	aspects:        [4]string{"Prog", "Perf", "HAB", "ITER"},
	passive:        "Pass",
	lambda:         "λ%s.%s",
	counterfactual: "(%s □→ %s)",
	identity:       " = ",
	distinct:       "%s ≠ %s",
}

// LaTeX renders LaTeX math mode source, in the notation of classic logic
// textbooks.
var LaTeX Formatter = notation{
	name:   "latex",
	forall: "\\forall ", exists: "\\exists ",
	cardinal: "\\exists_{=%d} ", atLeast: "\\exists_{\\geq %d} ", atMost: "\\exists_{\\leq %d} ",
	most: "\\mathsf{MOST}\\ ", few: "\\mathsf{FEW}\\ ", many: "\\mathsf{MANY}\\ ", generic: "\\mathsf{Gen}\\ ",
	and: "\\cdot", or: "\\vee", implies: "\\supset", iff: "\\equiv", not: "\\sim ",
	box: "\\Box", diamond: "\\Diamond", permitted: "P", obligatory: "O",
	past: "\\mathsf{P}", future: "\\mathsf{F}",
	aspects:        [4]string{"\\mathsf{Prog}", "\\mathsf{Perf}", "\\mathsf{HAB}", "\\mathsf{ITER}"},
	passive:        "\\mathsf{Pass}",
	lambda:         "\\lambda %s.%s",
	counterfactual: "(%s \\boxright %s)",
	identity:       " = ",
	distinct:       "%s \\neq %s",
	sanitizer: strings.NewReplacer("_", "\\_", "^", "\\^{}", "&", "\\&", "%", "\\%",
		"#", "\\#", "$", "\\$"),
}

// SimpleFOL renders plain ASCII first-order logic with full predicate names.
// Events are flattened to predicates over their participants; modal, aspect
// and voice operators are dropped.
var SimpleFOL Formatter = notation{
	name:   "simplefol",
	forall: "forall ", exists: "exists ",
	cardinal: "exists=%d ", atLeast: "exists>=%d ", atMost: "exists<=%d ",
	most: "most ", few: "few ", many: "many ", generic: "gen ",
	and: "&", or: "|", implies: "->", iff: "<->", not: "~",
	past: "Past", future: "Future",
	lambda:         "lambda %s.%s",
	counterfactual: "(%s => %s)",
	identity:       " = ",
	distinct:       "%s != %s",
	stripOperators: true,
	caps:           Capabilities{FullNames: true, SimpleEvents: true},
}

// Kripke renders the output of Kripke lowering: predicates carry their world
// as last argument, and connectives are spelled as words.
var Kripke Formatter = notation{
	name:   "kripke",
	forall: "Forall ", exists: "Exists ",
	cardinal: "Exactly%d ", atLeast: "AtLeast%d ", atMost: "AtMost%d ",
	most: "Most ", few: "Few ", many: "Many ", generic: "Gen ",
	and: "And", or: "Or", implies: "Implies", iff: "Iff", not: "Not ",
	box: "Box", diamond: "Diamond", permitted: "Permitted", obligatory: "Obligatory",
	past: "Past", future: "Future",
	aspects:        [4]string{"Prog", "Perf", "Hab", "Iter"},
	passive:        "Pass",
	lambda:         "Lambda %s.%s",
	counterfactual: "Counterfactual(%s, %s)",
	identity:       " = ",
	distinct:       "Not %s = %s",
	caps:           Capabilities{WorldArguments: true},
}

// Formatters lists the available strategies by name.
var Formatters = map[string]Formatter{
	"unicode":   Unicode,
	"latex":     LaTeX,
	"simplefol": SimpleFOL,
	"kripke":    Kripke,
	"gobool":    GoBool,
}

// ByName returns the strategy with the given (case-insensitive) name.
func ByName(name string) (Formatter, bool) {
	f, ok := Formatters[strings.ToLower(name)]
	return f, ok
}

// --- Go booleans -----------------------------------------------------------

// goBool renders formulas as Go boolean expressions, to be embedded into
// generated code. Quantifiers cannot be checked at runtime and are emitted as
// comments; comparatives and comparison predicates become operators.
type goBool struct {
	notation
	lex *lexicon.Lexicon
}

// GoBool renders Go boolean expressions.
var GoBool Formatter = goBool{
	notation: notation{
		name: "gobool",
		and:  "&&", or: "||", implies: "||", iff: "==", not: "!",
		identity:       " == ",
		distinct:       "%s != %s",
		stripOperators: true,
		caps:           Capabilities{FullNames: true, SimpleEvents: true, PreserveCase: true},
	},
}

func (g goBool) lexicon() *lexicon.Lexicon {
	if g.lex == nil {
		return lexicon.Default()
	}
	return g.lex
}

func (g goBool) Quantifier(kind ast.QuantifierKind, count int, v, body string) string {
	if kind.Counted() {
		return fmt.Sprintf("/* %s(%d) %s */ %s", kind, count, v, body)
	}
	return fmt.Sprintf("/* %s %s */ %s", kind, v, body)
}

func (g goBool) Binary(op ast.BinaryOperator, left, right string) string {
	if op == ast.If {
		return "(!" + left + " || " + right + ")"
	}
	return g.notation.Binary(op, left, right)
}

func (g goBool) Temporal(_ ast.TemporalOperator, body string) string {
	return body
}

func (g goBool) Lambda(v, body string) string {
	return fmt.Sprintf("func(%s interface{}) bool { return %s }", v, body)
}

func (g goBool) Counterfactual(antecedent, consequent string) string {
	return g.Binary(ast.If, antecedent, consequent)
}

// Predicate maps comparison predicates to operators and "contains" to a
// method call.
func (g goBool) Predicate(name string, args []string) string {
	if len(args) == 2 {
		if op, ok := g.lexicon().ComparisonOperator(name); ok {
			return "(" + args[0] + " " + op + " " + args[1] + ")"
		}
		switch strings.ToLower(name) {
		case "contains":
			return args[0] + ".Contains(" + args[1] + ")"
		case "equal", "equals":
			return "(" + args[0] + " == " + args[1] + ")"
		}
	}
	return g.notation.Predicate(name, args)
}

func (g goBool) Comparative(adjective, subject, object, difference string) string {
	op, ok := g.lexicon().ComparisonOperator(adjective)
	if !ok {
		return g.notation.Comparative(adjective, subject, object, difference)
	}
	if difference != "" {
		if op == "<" {
			return "(" + object + " - " + subject + " == " + difference + ")"
		}
		return "(" + subject + " - " + object + " == " + difference + ")"
	}
	return "(" + subject + " " + op + " " + object + ")"
}

func (g goBool) Superlative(comparison, domain, subject string) string {
	return fmt.Sprintf("/* %s */ %s", comparison, g.notation.Predicate("Max"+domain, []string{subject}))
}
