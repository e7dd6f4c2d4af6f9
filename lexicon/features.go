package lexicon

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Gender is the grammatical gender used for anaphora resolution.
type Gender int8

const (
	Unknown Gender = iota
	Male
	Female
	Neuter
)

func (g Gender) String() string {
	switch g {
	case Male:
		return "Male"
	case Female:
		return "Female"
	case Neuter:
		return "Neuter"
	}
	return "Unknown"
}

// Compatible is true if a pronoun of gender g may refer to an antecedent of
// gender other. Unknown is compatible with everything.
func (g Gender) Compatible(other Gender) bool {
	return g == Unknown || other == Unknown || g == other
}

// ParseGender maps "male", "female", "neuter" to a gender.
func ParseGender(s string) Gender {
	switch strings.ToLower(s) {
	case "male", "m":
		return Male
	case "female", "f":
		return Female
	case "neuter", "n":
		return Neuter
	}
	return Unknown
}

// UnmarshalYAML reads a gender from its name.
func (g *Gender) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	*g = ParseGender(s)
	return nil
}

// Number is grammatical number.
type Number int8

const (
	Singular Number = iota
	Plural
)

func (n Number) String() string {
	if n == Plural {
		return "Plural"
	}
	return "Singular"
}

// Case is grammatical case of pronouns.
type Case int8

const (
	Subject Case = iota
	Object
	Possessive
)

func (c Case) String() string {
	switch c {
	case Object:
		return "Object"
	case Possessive:
		return "Possessive"
	}
	return "Subject"
}

// VerbClass is the Vendler class of a verb.
type VerbClass string

const (
	State          VerbClass = "state"
	Activity       VerbClass = "activity"
	Achievement    VerbClass = "achievement"
	Accomplishment VerbClass = "accomplishment"
	Semelfactive   VerbClass = "semelfactive"
)

// Form is the inflectional form of a verb.
type Form int8

const (
	Base Form = iota
	Third
	PastForm
	Participle
	Gerund
)

func (f Form) String() string {
	switch f {
	case Third:
		return "Third"
	case PastForm:
		return "Past"
	case Participle:
		return "Participle"
	case Gerund:
		return "Gerund"
	}
	return "Base"
}

// Degree is the degree of an adjective form.
type Degree int8

const (
	Positive Degree = iota
	ComparativeDegree
	SuperlativeDegree
)
