package ast

import "github.com/npillmayer/logos/intern"

// Expr is a logical-form node. The set of node types is closed; every pass
// over expressions has to handle all of them.
type Expr interface {
	NodeKind() NodeKind
}

// NodeKind names the node type of an expression, mainly for tracing and dumps.
type NodeKind int8

const (
	PredicateNode NodeKind = iota
	IdentityNode
	MetaphorNode
	QuantifierNode
	ModalNode
	TemporalNode
	AspectualNode
	VoiceNode
	BinaryOpNode
	UnaryOpNode
	QuestionNode
	YesNoQuestionNode
	AtomNode
	LambdaNode
	AppNode
	IntensionalNode
	NeoEventNode
	ImperativeNode
	SpeechActNode
	CounterfactualNode
	CausalNode
	ComparativeNode
	SuperlativeNode
	ScopalNode
	ControlNode
	PresuppositionNode
	FocusNode
	TemporalAnchorNode
	DistributiveNode
	GroupQuantifierNode
)

var nodeKindNames = [...]string{"Predicate", "Identity", "Metaphor", "Quantifier", "Modal",
	"Temporal", "Aspectual", "Voice", "BinaryOp", "UnaryOp", "Question", "YesNoQuestion",
	"Atom", "Lambda", "App", "Intensional", "NeoEvent", "Imperative", "SpeechAct",
	"Counterfactual", "Causal", "Comparative", "Superlative", "Scopal", "Control",
	"Presupposition", "Focus", "TemporalAnchor", "Distributive", "GroupQuantifier"}

func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "?"
}

// Predicate is Name(Args…), optionally evaluated at a possible world.
type Predicate struct {
	Name  intern.Symbol
	Args  []TermID
	World intern.Symbol // Empty if not world-relative
}

// Identity is Left = Right.
type Identity struct {
	Left, Right TermID
}

// Metaphor relates a tenor to a vehicle ("Juliet is the sun").
type Metaphor struct {
	Tenor, Vehicle TermID
}

// Quantifier binds Var in Body. Island is the scope island the quantifier
// has been parsed in; Count is used by Cardinal, AtLeast and AtMost.
type Quantifier struct {
	Kind   QuantifierKind
	Count  int
	Var    intern.Symbol
	Body   ExprID
	Island int
}

// Modal is a modal operator with a force vector.
type Modal struct {
	Vector  ModalVector
	Operand ExprID
}

// Temporal is a tense operator.
type Temporal struct {
	Op   TemporalOperator
	Body ExprID
}

// Aspectual is an aspect operator.
type Aspectual struct {
	Op   AspectOperator
	Body ExprID
}

// Voice is a voice operator.
type Voice struct {
	Op   VoiceOperator
	Body ExprID
}

// BinaryOp is (Left Op Right).
type BinaryOp struct {
	Left  ExprID
	Op    BinaryOperator
	Right ExprID
}

// UnaryOp is Op Operand.
type UnaryOp struct {
	Op      UnaryOperator
	Operand ExprID
}

// Question is a wh-question, abstracting over WhVar.
type Question struct {
	WhVar intern.Symbol
	Body  ExprID
}

// YesNoQuestion asks whether Body holds.
type YesNoQuestion struct {
	Body ExprID
}

// Atom is a propositional constant.
type Atom struct {
	Name intern.Symbol
}

// Lambda is λVar.Body.
type Lambda struct {
	Var  intern.Symbol
	Body ExprID
}

// App applies Fn to Arg.
type App struct {
	Fn, Arg ExprID
}

// Intensional wraps content in an opaque context named by Operator.
type Intensional struct {
	Operator intern.Symbol
	Content  ExprID
}

// Role is a (thematic role, participant) pair of an event.
type Role struct {
	Role ThematicRole
	Term TermID
}

// NeoEvent is a neo-Davidsonian event description
//
//	∃e(Verb(e) ∧ Role₁(e, t₁) ∧ … ∧ Mod(e))
//
// With SuppressExistential set, the event variable is bound by an enclosing
// construction (conditional antecedents).
type NeoEvent struct {
	EventVar            intern.Symbol
	Verb                intern.Symbol
	Roles               []Role
	Modifiers           []intern.Symbol
	SuppressExistential bool
	World               intern.Symbol
}

// RoleTerm returns the first participant in role r.
func (ev NeoEvent) RoleTerm(r ThematicRole) (TermID, bool) {
	for _, role := range ev.Roles {
		if role.Role == r {
			return role.Term, true
		}
	}
	return NoTerm, false
}

// Imperative is a command.
type Imperative struct {
	Action ExprID
}

// SpeechAct is a performative utterance ("I promise that …").
type SpeechAct struct {
	Performer intern.Symbol
	Act       intern.Symbol
	Content   ExprID
}

// Counterfactual is (Antecedent □→ Consequent).
type Counterfactual struct {
	Antecedent, Consequent ExprID
}

// Causal is Cause(Cause, Effect).
type Causal struct {
	Cause, Effect ExprID
}

// Comparative is a degree comparison, optionally with a measured difference
// (Difference is NoTerm if absent).
type Comparative struct {
	Adjective       intern.Symbol
	Subject, Object TermID
	Difference      TermID
}

// Superlative states that Subject exceeds every other member of Domain.
type Superlative struct {
	Adjective intern.Symbol
	Subject   TermID
	Domain    intern.Symbol
}

// Scopal is a scope-taking adverb ("almost").
type Scopal struct {
	Operator intern.Symbol
	Body     ExprID
}

// Control is a control construction ("John wants to leave"). Object is
// NoTerm for subject control.
type Control struct {
	Verb       intern.Symbol
	Subject    TermID
	Object     TermID
	Infinitive ExprID
}

// Presupposition pairs an assertion with its presupposition.
type Presupposition struct {
	Assertion, Presupposition ExprID
}

// Focus marks a focused term with a particle.
type Focus struct {
	Kind    FocusKind
	Focused TermID
	Scope   ExprID
}

// TemporalAnchor locates Body at a named time.
type TemporalAnchor struct {
	Anchor intern.Symbol
	Body   ExprID
}

// Distributive marks a predicate as distributing over a plurality.
type Distributive struct {
	Predicate ExprID
}

// GroupQuantifier is a collective reading of a counted plural:
//
//	∃g(Group(g) ∧ Count(g, n) ∧ ∀x(Member(x, g) → R(x)) ∧ Body)
type GroupQuantifier struct {
	GroupVar    intern.Symbol
	Count       int
	MemberVar   intern.Symbol
	Restriction ExprID
	Body        ExprID
}

func (Predicate) NodeKind() NodeKind { return PredicateNode }
func (Identity) NodeKind() NodeKind { return IdentityNode }
func (Metaphor) NodeKind() NodeKind { return MetaphorNode }
func (Quantifier) NodeKind() NodeKind { return QuantifierNode }
func (Modal) NodeKind() NodeKind { return ModalNode }
func (Temporal) NodeKind() NodeKind { return TemporalNode }
func (Aspectual) NodeKind() NodeKind { return AspectualNode }
func (Voice) NodeKind() NodeKind { return VoiceNode }
func (BinaryOp) NodeKind() NodeKind { return BinaryOpNode }
func (UnaryOp) NodeKind() NodeKind { return UnaryOpNode }
func (Question) NodeKind() NodeKind { return QuestionNode }
func (YesNoQuestion) NodeKind() NodeKind { return YesNoQuestionNode }
func (Atom) NodeKind() NodeKind { return AtomNode }
func (Lambda) NodeKind() NodeKind { return LambdaNode }
func (App) NodeKind() NodeKind { return AppNode }
func (Intensional) NodeKind() NodeKind { return IntensionalNode }
func (NeoEvent) NodeKind() NodeKind { return NeoEventNode }
func (Imperative) NodeKind() NodeKind { return ImperativeNode }
func (SpeechAct) NodeKind() NodeKind { return SpeechActNode }
func (Counterfactual) NodeKind() NodeKind { return CounterfactualNode }
func (Causal) NodeKind() NodeKind { return CausalNode }
func (Comparative) NodeKind() NodeKind { return ComparativeNode }
func (Superlative) NodeKind() NodeKind { return SuperlativeNode }
func (Scopal) NodeKind() NodeKind { return ScopalNode }
func (Control) NodeKind() NodeKind { return ControlNode }
func (Presupposition) NodeKind() NodeKind { return PresuppositionNode }
func (Focus) NodeKind() NodeKind { return FocusNode }
func (TemporalAnchor) NodeKind() NodeKind { return TemporalAnchorNode }
func (Distributive) NodeKind() NodeKind { return DistributiveNode }
func (GroupQuantifier) NodeKind() NodeKind { return GroupQuantifierNode }
