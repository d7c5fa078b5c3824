// Package schema implements the schema half of C4: building a validated
// Schema value from a sequence of type-system ast.Documents in source
// order (spec §4.4). Type names mirror the teacher's own upstream
// schema model (Object, Interface, Union, Enum, InputObject, Scalar,
// FieldList, DirectiveDecl) adapted to resolve against this module's
// CST/AST pipeline instead of a one-pass text/scanner parser.
package schema

import "github.com/gqlcore/gqlcore/ast"

// NamedType is any type definition that can sit in Schema.Types: Object,
// Interface, Union, Enum, Scalar, or InputObject.
type NamedType interface {
	TypeName() ast.Name
	Description() string
	isNamedType()
	isTypeRef()
}

// TypeRef is any position a field/argument/input-field type can occupy:
// a NamedType leaf, or a List/NonNull wrapper around another TypeRef.
type TypeRef interface {
	isTypeRef()
}

type List struct{ OfType TypeRef }

type NonNull struct{ OfType TypeRef }

func (*List) isTypeRef()    {}
func (*NonNull) isTypeRef() {}

// Every NamedType is itself a valid (leaf) TypeRef once resolved.
func (*Object) isTypeRef()      {}
func (*Interface) isTypeRef()   {}
func (*Union) isTypeRef()       {}
func (*Enum) isTypeRef()        {}
func (*Scalar) isTypeRef()      {}
func (*InputObject) isTypeRef() {}

type Object struct {
	Name        ast.Name
	Desc        string
	Interfaces  []*Interface
	Fields      FieldList
	Directives  []ast.Directive
}

type Interface struct {
	Name          ast.Name
	Desc          string
	Interfaces    []*Interface
	Fields        FieldList
	PossibleTypes []*Object
	Directives    []ast.Directive
}

type Union struct {
	Name          ast.Name
	Desc          string
	PossibleTypes []*Object
	Directives    []ast.Directive
}

type Enum struct {
	Name       ast.Name
	Desc       string
	Values     []*EnumValue
	Directives []ast.Directive
}

type EnumValue struct {
	Name       ast.Name
	Desc       string
	Directives []ast.Directive
}

type Scalar struct {
	Name       ast.Name
	Desc       string
	Directives []ast.Directive
}

type InputObject struct {
	Name       ast.Name
	Desc       string
	Values     InputValueList
	Directives []ast.Directive
}

func (t *Object) TypeName() ast.Name      { return t.Name }
func (t *Interface) TypeName() ast.Name   { return t.Name }
func (t *Union) TypeName() ast.Name       { return t.Name }
func (t *Enum) TypeName() ast.Name        { return t.Name }
func (t *Scalar) TypeName() ast.Name      { return t.Name }
func (t *InputObject) TypeName() ast.Name { return t.Name }

func (t *Object) Description() string      { return t.Desc }
func (t *Interface) Description() string   { return t.Desc }
func (t *Union) Description() string       { return t.Desc }
func (t *Enum) Description() string        { return t.Desc }
func (t *Scalar) Description() string      { return t.Desc }
func (t *InputObject) Description() string { return t.Desc }

func (*Object) isNamedType()      {}
func (*Interface) isNamedType()   {}
func (*Union) isNamedType()       {}
func (*Enum) isNamedType()        {}
func (*Scalar) isNamedType()      {}
func (*InputObject) isNamedType() {}

// FieldList is an ordered set of Fields, the shape shared by Object and
// Interface (graph-gophers/graphql-go's own FieldList type, carried over
// verbatim since nothing about it is language-specific).
type FieldList []*Field

type Field struct {
	Name       ast.Name
	Desc       string
	Args       InputValueList
	Type       TypeRef
	Directives []ast.Directive
}

func (l FieldList) Get(name ast.Name) *Field {
	for _, f := range l {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// InputValueList is an ordered set of InputValues: arguments of a field
// or directive, or fields of an InputObject.
type InputValueList []*InputValue

type InputValue struct {
	Name       ast.Name
	Desc       string
	Type       TypeRef
	Default    ast.Value
	Directives []ast.Directive
}

func (l InputValueList) Get(name ast.Name) *InputValue {
	for _, v := range l {
		if v.Name == name {
			return v
		}
	}
	return nil
}

// DirectiveDecl is a directive's declaration (DirectiveDefinition),
// distinct from a directive *use* (ast.Directive) attached to some other
// definition.
type DirectiveDecl struct {
	Name ast.Name
	Desc string
	Args InputValueList
	Locs []ast.Name
}

// Schema is the built, (possibly partially) validated result of a
// Builder run: every type keyed by name, every directive declaration
// keyed by name, and the three root operation types. Per spec §4.4 the
// Schema is always returned even when invariants are violated -
// downstream consumers decide whether a partial Schema is usable.
type Schema struct {
	Types       map[ast.Name]NamedType
	Directives  map[ast.Name]*DirectiveDecl
	Query       *Object
	Mutation    *Object
	Subscription *Object
}
