package schema

import (
	"github.com/gqlcore/gqlcore/ast"
	"github.com/gqlcore/gqlcore/diagnostic"
)

// Builder accumulates type-system definitions across one or more
// ast.Documents (spec §4.4: "consumes a sequence of AST documents in
// source order") and produces a Schema on Build. Per
// original_source/apollo-compiler's repr.rs, the caller is expected to
// call AddDocument once per schema file in file order; Builder itself
// doesn't care about file identity, only about definition order for its
// "first definition wins, later ones are redefinitions" rule.
type Builder struct {
	schemaDef *ast.SchemaDefinition
	schemaExt []*ast.SchemaExtension

	objects      map[ast.Name]*ast.ObjectTypeDefinition
	objectExt    map[ast.Name][]*ast.ObjectTypeExtension
	interfaces   map[ast.Name]*ast.InterfaceTypeDefinition
	interfaceExt map[ast.Name][]*ast.InterfaceTypeExtension
	unions       map[ast.Name]*ast.UnionTypeDefinition
	unionExt     map[ast.Name][]*ast.UnionTypeExtension
	enums        map[ast.Name]*ast.EnumTypeDefinition
	enumExt      map[ast.Name][]*ast.EnumTypeExtension
	inputObjects map[ast.Name]*ast.InputObjectTypeDefinition
	inputExt     map[ast.Name][]*ast.InputObjectTypeExtension
	scalars      map[ast.Name]*ast.ScalarTypeDefinition
	scalarExt    map[ast.Name][]*ast.ScalarTypeExtension
	directives   map[ast.Name]*ast.DirectiveDefinition

	typeOrder []ast.Name
	diags     []diagnostic.Diagnostic
}

// NewBuilder returns an empty Builder ready to accept documents.
func NewBuilder() *Builder {
	return &Builder{
		objects:      make(map[ast.Name]*ast.ObjectTypeDefinition),
		objectExt:    make(map[ast.Name][]*ast.ObjectTypeExtension),
		interfaces:   make(map[ast.Name]*ast.InterfaceTypeDefinition),
		interfaceExt: make(map[ast.Name][]*ast.InterfaceTypeExtension),
		unions:       make(map[ast.Name]*ast.UnionTypeDefinition),
		unionExt:     make(map[ast.Name][]*ast.UnionTypeExtension),
		enums:        make(map[ast.Name]*ast.EnumTypeDefinition),
		enumExt:      make(map[ast.Name][]*ast.EnumTypeExtension),
		inputObjects: make(map[ast.Name]*ast.InputObjectTypeDefinition),
		inputExt:     make(map[ast.Name][]*ast.InputObjectTypeExtension),
		scalars:      make(map[ast.Name]*ast.ScalarTypeDefinition),
		scalarExt:    make(map[ast.Name][]*ast.ScalarTypeExtension),
		directives:   make(map[ast.Name]*ast.DirectiveDefinition),
	}
}

// AddDocument folds one parsed file's definitions into the builder's
// collect-pass state (spec §4.4 step 1). Redefinitions of a type,
// directive, or schema block are recorded as diagnostics; the first
// definition seen wins and later ones are otherwise ignored.
func (b *Builder) AddDocument(doc *ast.Document) {
	for _, def := range doc.Definitions {
		b.addDefinition(def)
	}
}

func (b *Builder) addDefinition(def ast.Definition) {
	switch d := def.(type) {
	case *ast.SchemaDefinition:
		if b.schemaDef != nil {
			b.redefined("schema", "", d.Span())
			return
		}
		b.schemaDef = d
	case *ast.SchemaExtension:
		b.schemaExt = append(b.schemaExt, d)
	case *ast.ObjectTypeDefinition:
		if b.collides(d.Name, d.Span()) {
			return
		}
		b.objects[d.Name] = d
		b.typeOrder = append(b.typeOrder, d.Name)
	case *ast.ObjectTypeExtension:
		b.objectExt[d.Name] = append(b.objectExt[d.Name], d)
	case *ast.InterfaceTypeDefinition:
		if b.collides(d.Name, d.Span()) {
			return
		}
		b.interfaces[d.Name] = d
		b.typeOrder = append(b.typeOrder, d.Name)
	case *ast.InterfaceTypeExtension:
		b.interfaceExt[d.Name] = append(b.interfaceExt[d.Name], d)
	case *ast.UnionTypeDefinition:
		if b.collides(d.Name, d.Span()) {
			return
		}
		b.unions[d.Name] = d
		b.typeOrder = append(b.typeOrder, d.Name)
	case *ast.UnionTypeExtension:
		b.unionExt[d.Name] = append(b.unionExt[d.Name], d)
	case *ast.EnumTypeDefinition:
		if b.collides(d.Name, d.Span()) {
			return
		}
		b.enums[d.Name] = d
		b.typeOrder = append(b.typeOrder, d.Name)
	case *ast.EnumTypeExtension:
		b.enumExt[d.Name] = append(b.enumExt[d.Name], d)
	case *ast.InputObjectTypeDefinition:
		if b.collides(d.Name, d.Span()) {
			return
		}
		b.inputObjects[d.Name] = d
		b.typeOrder = append(b.typeOrder, d.Name)
	case *ast.InputObjectTypeExtension:
		b.inputExt[d.Name] = append(b.inputExt[d.Name], d)
	case *ast.ScalarTypeDefinition:
		if b.collides(d.Name, d.Span()) {
			return
		}
		b.scalars[d.Name] = d
		b.typeOrder = append(b.typeOrder, d.Name)
	case *ast.ScalarTypeExtension:
		b.scalarExt[d.Name] = append(b.scalarExt[d.Name], d)
	case *ast.DirectiveDefinition:
		if _, ok := b.directives[d.Name]; ok {
			b.redefined("directive", d.Name.String(), d.Span())
			return
		}
		b.directives[d.Name] = d
	// OperationDefinition and FragmentDefinition belong to executable
	// documents, not schema documents; a Builder simply ignores them, on
	// the same "skip what doesn't apply" principle lowering follows.
	default:
	}
}

// collides reports whether name is already claimed by a type definition
// of any kind, the same kind included, and records a redefinition
// diagnostic when it is. Call sites do no other redefinition check.
func (b *Builder) collides(name ast.Name, span ast.Span) bool {
	if _, ok := b.objects[name]; ok {
		b.redefined("type", name.String(), span)
		return true
	}
	if _, ok := b.interfaces[name]; ok {
		b.redefined("type", name.String(), span)
		return true
	}
	if _, ok := b.unions[name]; ok {
		b.redefined("type", name.String(), span)
		return true
	}
	if _, ok := b.enums[name]; ok {
		b.redefined("type", name.String(), span)
		return true
	}
	if _, ok := b.inputObjects[name]; ok {
		b.redefined("type", name.String(), span)
		return true
	}
	if _, ok := b.scalars[name]; ok {
		b.redefined("type", name.String(), span)
		return true
	}
	return false
}

func (b *Builder) redefined(what, name string, span ast.Span) {
	msg := "redefinition of " + what
	if name != "" {
		msg += " " + name
	}
	b.diags = append(b.diags, diagnostic.New(diagnostic.KindTypeError, span.ToDiagnostic(), msg))
}
