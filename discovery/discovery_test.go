package discovery

import (
	"testing"

	"github.com/npillmayer/logos/intern"
	"github.com/npillmayer/logos/lexer"
	"github.com/npillmayer/logos/lexicon"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func scan(t *testing.T, text string) (*TypeRegistry, *intern.Interner) {
	in := intern.New()
	tokens := lexer.New(lexicon.Default(), in).Tokenize(text)
	return Scan(tokens, in), in
}

func lookup(t *testing.T, reg *TypeRegistry, in *intern.Interner, name string) *TypeDef {
	sym, ok := in.Lookup(name)
	if !ok {
		t.Fatalf("type name %q never interned", name)
	}
	def, ok := reg.Lookup(sym)
	if !ok {
		t.Fatalf("type %q not registered", name)
	}
	return def
}

func TestPrimitivesRegistered(t *testing.T) {
	in := intern.New()
	reg := NewTypeRegistry(in)
	if !reg.IsTypeName("Int") || !reg.IsTypeName("List") {
		t.Errorf("expected primitives and built-in generics to be registered")
	}
	if reg.IsUserType(in.Intern("Int")) {
		t.Errorf("Int must not count as a user type")
	}
	if !reg.IsGeneric(in.Intern("Map")) {
		t.Errorf("Map should be generic")
	}
}

func TestDiscoverGenericAndStruct(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.discovery")
	defer teardown()
	//
	reg, in := scan(t, "## Definition\nA Stack is a generic collection.\nA User is a structure.")
	if def := lookup(t, reg, in, "Stack"); def.Kind != Generic || def.ParamCount != 1 {
		t.Errorf("expected Stack to be generic/1, have %s/%d", def.Kind, def.ParamCount)
	}
	if def := lookup(t, reg, in, "User"); def.Kind != Struct {
		t.Errorf("expected User to be a struct, have %s", def.Kind)
	}
	if !reg.IsUserType(in.Intern("Stack")) {
		t.Errorf("Stack should be a user type")
	}
}

func TestDiscoverStructFields(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.discovery")
	defer teardown()
	//
	reg, in := scan(t, "## A Point has:\na x: Int.\na public label, which is Text.\na tags: List of Text.")
	def := lookup(t, reg, in, "Point")
	if def.Kind != Struct || len(def.Fields) != 3 {
		t.Fatalf("expected struct with 3 fields, have %s", reg.Describe(def))
	}
	if in.Resolve(def.Fields[0].Name) != "x" || !def.Fields[0].Public {
		t.Errorf("expected public field x, have %+v", def.Fields[0])
	}
	if f := def.Fields[1]; in.Resolve(f.Name) != "label" || in.Resolve(f.Type.Name) != "Text" || !f.Public {
		t.Errorf("expected public field label: Text, have %+v", f)
	}
	if f := def.Fields[2]; f.Type.Kind != GenericField || reg.DescribeField(f.Type) != "List of Text" {
		t.Errorf("expected generic field type List of Text, have %s", reg.DescribeField(f.Type))
	}
	t.Logf("%s", reg.Describe(def))
}

func TestDiscoverEnumVariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.discovery")
	defer teardown()
	//
	reg, in := scan(t, "## Definition\nA Shape is either:\na Circle with a radius, which is Int.\na Square (side: Int).\na Dot.")
	def := lookup(t, reg, in, "Shape")
	if def.Kind != Enum || len(def.Variants) != 3 {
		t.Fatalf("expected enum with 3 variants, have %s", reg.Describe(def))
	}
	if len(def.Variants[0].Fields) != 1 || len(def.Variants[1].Fields) != 1 || len(def.Variants[2].Fields) != 0 {
		t.Errorf("unexpected variant fields: %+v", def.Variants)
	}
	enum, v, ok := reg.FindVariant(in.Intern("Square"))
	if !ok || enum != def || in.Resolve(v.Name) != "Square" {
		t.Errorf("expected to find variant Square of Shape")
	}
}

func TestLastDefinitionWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.discovery")
	defer teardown()
	//
	reg, in := scan(t, "## Definition\nA Box is a generic container.\nA Box is a record.")
	if def := lookup(t, reg, in, "Box"); def.Kind != Struct {
		t.Errorf("expected last definition (struct) to win, have %s", def.Kind)
	}
	old := reg.Define(&TypeDef{Name: in.Intern("Box"), Kind: Enum})
	if old == nil || old.Kind != Struct {
		t.Errorf("expected Define to return the replaced definition")
	}
}

func TestDiscoverPolicies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.discovery")
	defer teardown()
	//
	reg, in := scan(t, "## Policy\nA User is admin if the user's role equals \"admin\".\n"+
		"A User can publish the Document if the user is admin or the user is editor.")
	user := in.Intern("User")
	preds := reg.Policies().Predicates(user)
	if len(preds) != 1 || in.Resolve(preds[0].Predicate) != "admin" {
		t.Fatalf("expected predicate admin for User, have %+v", preds)
	}
	if preds[0].Condition.Op != CondLeaf {
		t.Errorf("expected leaf condition, have %s", preds[0].Condition)
	}
	caps := reg.Policies().Capabilities(user)
	if len(caps) != 1 || in.Resolve(caps[0].Action) != "publish" || in.Resolve(caps[0].Object) != "Document" {
		t.Fatalf("expected capability publish Document, have %+v", caps)
	}
	if caps[0].Condition.Op != CondOr {
		t.Errorf("expected disjunctive condition, have %s", caps[0].Condition)
	}
	t.Logf("condition = %s", caps[0].Condition)
}
