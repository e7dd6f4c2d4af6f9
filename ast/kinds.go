package ast

import "fmt"

// QuantifierKind classifies quantifiers. Cardinal, AtLeast and AtMost carry
// a count in the quantifier node.
type QuantifierKind int8

const (
	Universal QuantifierKind = iota
	Existential
	Most
	Few
	Many
	Generic
	Cardinal
	AtLeast
	AtMost
)

var quantifierNames = [...]string{"Universal", "Existential", "Most", "Few", "Many",
	"Generic", "Cardinal", "AtLeast", "AtMost"}

func (k QuantifierKind) String() string {
	if int(k) < len(quantifierNames) {
		return quantifierNames[k]
	}
	return fmt.Sprintf("QuantifierKind(%d)", int(k))
}

// Counted is true for quantifiers carrying a count.
func (k QuantifierKind) Counted() bool {
	return k == Cardinal || k == AtLeast || k == AtMost
}

// BinaryOperator is a logical connective.
type BinaryOperator int8

const (
	And BinaryOperator = iota
	Or
	If  // material implication
	Iff // biconditional
)

func (op BinaryOperator) String() string {
	switch op {
	case And:
		return "And"
	case Or:
		return "Or"
	case If:
		return "If"
	case Iff:
		return "Iff"
	}
	return fmt.Sprintf("BinaryOperator(%d)", int(op))
}

// UnaryOperator is the only unary connective, negation.
type UnaryOperator int8

const (
	Not UnaryOperator = iota
)

func (op UnaryOperator) String() string {
	return "Not"
}

// --- Modality --------------------------------------------------------------

// ModalDomain selects the accessibility relation of a modal.
type ModalDomain int8

const (
	Alethic ModalDomain = iota
	Deontic
)

func (d ModalDomain) String() string {
	if d == Deontic {
		return "Deontic"
	}
	return "Alethic"
}

// ModalFlavor distinguishes root (ability, obligation) from epistemic
// (knowledge-based) modality.
type ModalFlavor int8

const (
	Root ModalFlavor = iota
	Epistemic
)

func (f ModalFlavor) String() string {
	if f == Epistemic {
		return "Epistemic"
	}
	return "Root"
}

// ModalVector places a modal in a two-dimensional space: domain and force
// (0.0 = impossible, 0.5 = possible, 1.0 = necessary).
type ModalVector struct {
	Domain ModalDomain
	Force  float32
	Flavor ModalFlavor
}

// IsNecessity is true for forces above 0.5.
func (v ModalVector) IsNecessity() bool {
	return v.Force > 0.5
}

func (v ModalVector) String() string {
	return fmt.Sprintf("%s/%.1f/%s", v.Domain, v.Force, v.Flavor)
}

// --- Tense, aspect, voice --------------------------------------------------

// TemporalOperator is a tense operator.
type TemporalOperator int8

const (
	Past TemporalOperator = iota
	Future
)

func (op TemporalOperator) String() string {
	if op == Future {
		return "Future"
	}
	return "Past"
}

// AspectOperator is a grammatical aspect.
type AspectOperator int8

const (
	Progressive AspectOperator = iota
	Perfect
	Habitual
	Iterative
)

func (op AspectOperator) String() string {
	switch op {
	case Progressive:
		return "Progressive"
	case Perfect:
		return "Perfect"
	case Habitual:
		return "Habitual"
	case Iterative:
		return "Iterative"
	}
	return fmt.Sprintf("AspectOperator(%d)", int(op))
}

// VoiceOperator marks grammatical voice.
type VoiceOperator int8

const (
	Passive VoiceOperator = iota
)

func (op VoiceOperator) String() string {
	return "Passive"
}

// --- Thematic roles ----------------------------------------------------------

// ThematicRole is the relation of a participant to an event.
type ThematicRole int8

const (
	Agent ThematicRole = iota
	Patient
	Theme
	Recipient
	Goal
	Source
	Instrument
	Location
	Time
	Manner
	Experiencer
	Stimulus
)

var roleNames = [...]string{"Agent", "Patient", "Theme", "Recipient", "Goal", "Source",
	"Instrument", "Location", "Time", "Manner", "Experiencer", "Stimulus"}

func (r ThematicRole) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return fmt.Sprintf("ThematicRole(%d)", int(r))
}

// RoleFromString maps a role name (as used in the lexicon) to a role.
func RoleFromString(s string) (ThematicRole, bool) {
	for i, n := range roleNames {
		if n == s {
			return ThematicRole(i), true
		}
	}
	return Agent, false
}

// FocusKind is the particle of a focus construction.
type FocusKind int8

const (
	Only FocusKind = iota
	Even
	Just
)

func (k FocusKind) String() string {
	switch k {
	case Even:
		return "Even"
	case Just:
		return "Just"
	}
	return "Only"
}

// NumberKind classifies the numeric part of a Value term.
type NumberKind int8

const (
	Integer NumberKind = iota
	Real
	Symbolic
)

func (k NumberKind) String() string {
	switch k {
	case Real:
		return "Real"
	case Symbolic:
		return "Symbolic"
	}
	return "Integer"
}
