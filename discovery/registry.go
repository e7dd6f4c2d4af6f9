/*
Package discovery scans a token stream for LOGOS type and policy
declarations before parsing starts.

Type names may be used before they are declared, so the parser needs a
complete registry of declarations up front. The scan is shallow: it
recognizes declaration headers and field/variant lists, but builds no
syntax tree. If a type is declared more than once, the last declaration
wins and the overwrite is traced as a warning.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package discovery

import (
	"fmt"
	"strings"

	"github.com/npillmayer/logos"
	"github.com/npillmayer/logos/intern"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// tracer traces with key 'logos.discovery'.
func tracer() tracing.Trace {
	return tracing.Select("logos.discovery")
}

// TypeKind classifies type definitions.
type TypeKind int8

// Kinds of type definitions.
const (
	Primitive TypeKind = iota
	Struct
	Enum
	Generic
	Alias
)

func (k TypeKind) String() string {
	switch k {
	case Primitive:
		return "primitive"
	case Struct:
		return "struct"
	case Enum:
		return "enum"
	case Generic:
		return "generic"
	}
	return "alias"
}

// FieldKind classifies field type references.
type FieldKind int8

// Kinds of field types.
const (
	PrimitiveField FieldKind = iota
	NamedField
	GenericField
	TypeParamField
)

// FieldType is a reference to a type from within a field declaration, e.g.
// "Int", "Point" or "List of Int".
type FieldType struct {
	Kind   FieldKind
	Name   intern.Symbol
	Params []FieldType
}

// Field is a field of a struct or of an enum variant.
type Field struct {
	Name   intern.Symbol
	Type   FieldType
	Public bool
}

// Variant is an alternative of an enum type. Unit variants have no fields.
type Variant struct {
	Name   intern.Symbol
	Fields []Field
}

// TypeDef is a type declaration. Which of the fields are set depends on
// Kind.
type TypeDef struct {
	Name       intern.Symbol
	Kind       TypeKind
	Fields     []Field
	Variants   []Variant
	Generics   []intern.Symbol // type parameters of user-defined generics
	ParamCount int             // for built-in generics
	Target     intern.Symbol   // for aliases
	Span       logos.Span      // span of the declaration header
	builtin    bool
}

// String is a debug Stringer.
func (def *TypeDef) String() string {
	return fmt.Sprintf("<type %d:%s>", def.Name, def.Kind)
}

// --- Type registry ---------------------------------------------------------

var primitives = []string{"Nat", "Int", "Real", "Text", "Bool", "Boolean", "Unit"}

var builtinGenerics = map[string]int{
	"List": 1, "Seq": 1, "Set": 1, "Option": 1, "Map": 2, "Result": 2,
}

// TypeRegistry maps type names to their declarations. It is filled once by
// the discovery pass and read-only afterwards.
type TypeRegistry struct {
	table    map[intern.Symbol]*TypeDef
	in       *intern.Interner
	policies *PolicyRegistry
}

// NewTypeRegistry creates a registry holding the primitive types and the
// built-in generics.
func NewTypeRegistry(in *intern.Interner) *TypeRegistry {
	reg := &TypeRegistry{
		table:    make(map[intern.Symbol]*TypeDef),
		in:       in,
		policies: NewPolicyRegistry(),
	}
	for _, p := range primitives {
		reg.insert(&TypeDef{Name: in.Intern(p), Kind: Primitive, builtin: true})
	}
	for g, n := range builtinGenerics {
		reg.insert(&TypeDef{Name: in.Intern(g), Kind: Generic, ParamCount: n, builtin: true})
	}
	return reg
}

// Define stores a type definition. An existing definition with the same name
// is overwritten; Define returns the previous definition (or nil).
func (reg *TypeRegistry) Define(def *TypeDef) *TypeDef {
	old := reg.insert(def)
	if old != nil {
		tracer().Infof("type %q redefined as %s at %s, replacing %s definition",
			reg.in.Resolve(def.Name), def.Kind, def.Span, old.Kind)
	}
	return old
}

func (reg *TypeRegistry) insert(def *TypeDef) *TypeDef {
	old := reg.table[def.Name]
	reg.table[def.Name] = def
	return old
}

// Lookup finds a type definition.
func (reg *TypeRegistry) Lookup(name intern.Symbol) (*TypeDef, bool) {
	if reg == nil {
		return nil, false
	}
	def, ok := reg.table[name]
	return def, ok
}

// IsType checks if name is a known type.
func (reg *TypeRegistry) IsType(name intern.Symbol) bool {
	_, ok := reg.Lookup(name)
	return ok
}

// IsTypeName checks if a word is a known type name.
func (reg *TypeRegistry) IsTypeName(word string) bool {
	if reg == nil {
		return false
	}
	sym, ok := reg.in.Lookup(word)
	return ok && reg.IsType(sym)
}

// IsUserType checks if name has been declared by the user, i.e., is neither
// a primitive nor a built-in generic.
func (reg *TypeRegistry) IsUserType(name intern.Symbol) bool {
	def, ok := reg.Lookup(name)
	if !ok {
		return false
	}
	return !def.builtin
}

// IsGeneric checks if a type takes type parameters.
func (reg *TypeRegistry) IsGeneric(name intern.Symbol) bool {
	def, ok := reg.Lookup(name)
	if !ok {
		return false
	}
	return def.Kind == Generic || len(def.Generics) > 0
}

// FindVariant searches the enum types for a variant. It returns the enum
// type and the variant.
func (reg *TypeRegistry) FindVariant(name intern.Symbol) (*TypeDef, *Variant, bool) {
	for _, typename := range reg.Names() {
		def := reg.table[typename]
		if def.Kind != Enum {
			continue
		}
		for i := range def.Variants {
			if def.Variants[i].Name == name {
				return def, &def.Variants[i], true
			}
		}
	}
	return nil, nil, false
}

// Names returns all registered type names, in interning order.
func (reg *TypeRegistry) Names() []intern.Symbol {
	names := maps.Keys(reg.table)
	slices.Sort(names)
	return names
}

// Size counts the registered types.
func (reg *TypeRegistry) Size() int {
	return len(reg.table)
}

// Policies returns the policy registry filled by the same discovery pass.
func (reg *TypeRegistry) Policies() *PolicyRegistry {
	return reg.policies
}

// Describe renders a type definition for listings.
func (reg *TypeRegistry) Describe(def *TypeDef) string {
	var b strings.Builder
	b.WriteString(reg.in.Resolve(def.Name))
	b.WriteString(": ")
	b.WriteString(def.Kind.String())
	switch def.Kind {
	case Struct:
		fields := make([]string, len(def.Fields))
		for i, f := range def.Fields {
			fields[i] = reg.in.Resolve(f.Name) + " " + reg.DescribeField(f.Type)
		}
		b.WriteString(" {" + strings.Join(fields, ", ") + "}")
	case Enum:
		variants := make([]string, len(def.Variants))
		for i, v := range def.Variants {
			variants[i] = reg.in.Resolve(v.Name)
		}
		b.WriteString(" (" + strings.Join(variants, " | ") + ")")
	case Alias:
		b.WriteString(" = " + reg.in.Resolve(def.Target))
	}
	return b.String()
}

// DescribeField renders a field type, e.g. "List of Int".
func (reg *TypeRegistry) DescribeField(ft FieldType) string {
	s := reg.in.Resolve(ft.Name)
	if len(ft.Params) > 0 {
		params := make([]string, len(ft.Params))
		for i, p := range ft.Params {
			params[i] = reg.DescribeField(p)
		}
		s += " of " + strings.Join(params, " and ")
	}
	return s
}

// --- Policy registry -------------------------------------------------------

// CondOp is the connective of a policy condition.
type CondOp int8

// Policy condition connectives. Leaf conditions hold their text.
const (
	CondLeaf CondOp = iota
	CondAnd
	CondOr
)

// Condition is the (shallowly parsed) condition of a policy rule.
type Condition struct {
	Op          CondOp
	Text        string
	Left, Right *Condition
}

func (c *Condition) String() string {
	switch c.Op {
	case CondAnd:
		return "(" + c.Left.String() + " AND " + c.Right.String() + ")"
	case CondOr:
		return "(" + c.Left.String() + " OR " + c.Right.String() + ")"
	}
	return c.Text
}

// PredicateDef is a security predicate: "A User is admin if …".
type PredicateDef struct {
	Subject   intern.Symbol
	Predicate intern.Symbol
	Condition *Condition
}

// CapabilityDef is a capability: "A User can publish the Document if …".
type CapabilityDef struct {
	Subject   intern.Symbol
	Action    intern.Symbol
	Object    intern.Symbol
	Condition *Condition
}

// PolicyRegistry holds the rules of `## Policy` blocks, indexed by subject
// type.
type PolicyRegistry struct {
	predicates   map[intern.Symbol][]PredicateDef
	capabilities map[intern.Symbol][]CapabilityDef
}

// NewPolicyRegistry creates an empty policy registry.
func NewPolicyRegistry() *PolicyRegistry {
	return &PolicyRegistry{
		predicates:   make(map[intern.Symbol][]PredicateDef),
		capabilities: make(map[intern.Symbol][]CapabilityDef),
	}
}

// AddPredicate registers a predicate definition.
func (pr *PolicyRegistry) AddPredicate(def PredicateDef) {
	pr.predicates[def.Subject] = append(pr.predicates[def.Subject], def)
}

// AddCapability registers a capability definition.
func (pr *PolicyRegistry) AddCapability(def CapabilityDef) {
	pr.capabilities[def.Subject] = append(pr.capabilities[def.Subject], def)
}

// Predicates returns the predicates defined for a subject type.
func (pr *PolicyRegistry) Predicates(subject intern.Symbol) []PredicateDef {
	return pr.predicates[subject]
}

// Capabilities returns the capabilities defined for a subject type.
func (pr *PolicyRegistry) Capabilities(subject intern.Symbol) []CapabilityDef {
	return pr.capabilities[subject]
}

// IsEmpty is true if no policies have been registered.
func (pr *PolicyRegistry) IsEmpty() bool {
	return len(pr.predicates) == 0 && len(pr.capabilities) == 0
}
