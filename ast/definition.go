package ast

// Definition is one of the top-level forms a Document can contain: a
// type-system definition, its extension, or (in an executable document)
// an operation or fragment definition.
type Definition interface {
	Span() Span
	isDefinition()
}

type SchemaDefinition struct {
	Description string
	Directives  []Directive
	RootTypes   []RootOperationTypeDefinition
	span        Span
}

type SchemaExtension struct {
	Directives []Directive
	RootTypes  []RootOperationTypeDefinition
	span       Span
}

type ScalarTypeDefinition struct {
	Description string
	Name        Name
	NameSpan    Span
	Directives  []Directive
	span        Span
}

type ScalarTypeExtension struct {
	Name       Name
	NameSpan   Span
	Directives []Directive
	span       Span
}

type ObjectTypeDefinition struct {
	Description string
	Name        Name
	NameSpan    Span
	Implements  []Name
	Directives  []Directive
	Fields      []FieldDefinition
	span        Span
}

type ObjectTypeExtension struct {
	Name       Name
	NameSpan   Span
	Implements []Name
	Directives []Directive
	Fields     []FieldDefinition
	span       Span
}

type InterfaceTypeDefinition struct {
	Description string
	Name        Name
	NameSpan    Span
	Implements  []Name
	Directives  []Directive
	Fields      []FieldDefinition
	span        Span
}

type InterfaceTypeExtension struct {
	Name       Name
	NameSpan   Span
	Implements []Name
	Directives []Directive
	Fields     []FieldDefinition
	span       Span
}

type UnionTypeDefinition struct {
	Description string
	Name        Name
	NameSpan    Span
	Directives  []Directive
	Members     []Name
	span        Span
}

type UnionTypeExtension struct {
	Name       Name
	NameSpan   Span
	Directives []Directive
	Members    []Name
	span       Span
}

type EnumTypeDefinition struct {
	Description string
	Name        Name
	NameSpan    Span
	Directives  []Directive
	Values      []EnumValueDefinition
	span        Span
}

type EnumTypeExtension struct {
	Name       Name
	NameSpan   Span
	Directives []Directive
	Values     []EnumValueDefinition
	span       Span
}

type InputObjectTypeDefinition struct {
	Description string
	Name        Name
	NameSpan    Span
	Directives  []Directive
	Fields      []InputValueDefinition
	span        Span
}

type InputObjectTypeExtension struct {
	Name       Name
	NameSpan   Span
	Directives []Directive
	Fields     []InputValueDefinition
	span       Span
}

type DirectiveDefinition struct {
	Description string
	Name        Name
	NameSpan    Span
	Arguments   []InputValueDefinition
	Locations   []Name
	span        Span
}

type OperationDefinition struct {
	Operation   OperationType
	Name        Name
	NameSpan    Span
	Variables   []VariableDefinition
	Directives  []Directive
	Selections  []Selection
	span        Span
}

type FragmentDefinition struct {
	Name          Name
	NameSpan      Span
	TypeCondition Name
	Directives    []Directive
	Selections    []Selection
	span          Span
}

func (d *SchemaDefinition) Span() Span          { return d.span }
func (d *SchemaExtension) Span() Span           { return d.span }
func (d *ScalarTypeDefinition) Span() Span       { return d.span }
func (d *ScalarTypeExtension) Span() Span        { return d.span }
func (d *ObjectTypeDefinition) Span() Span       { return d.span }
func (d *ObjectTypeExtension) Span() Span        { return d.span }
func (d *InterfaceTypeDefinition) Span() Span    { return d.span }
func (d *InterfaceTypeExtension) Span() Span     { return d.span }
func (d *UnionTypeDefinition) Span() Span        { return d.span }
func (d *UnionTypeExtension) Span() Span         { return d.span }
func (d *EnumTypeDefinition) Span() Span         { return d.span }
func (d *EnumTypeExtension) Span() Span          { return d.span }
func (d *InputObjectTypeDefinition) Span() Span  { return d.span }
func (d *InputObjectTypeExtension) Span() Span   { return d.span }
func (d *DirectiveDefinition) Span() Span        { return d.span }
func (d *OperationDefinition) Span() Span        { return d.span }
func (d *FragmentDefinition) Span() Span         { return d.span }

func (*SchemaDefinition) isDefinition()         {}
func (*SchemaExtension) isDefinition()          {}
func (*ScalarTypeDefinition) isDefinition()      {}
func (*ScalarTypeExtension) isDefinition()       {}
func (*ObjectTypeDefinition) isDefinition()      {}
func (*ObjectTypeExtension) isDefinition()       {}
func (*InterfaceTypeDefinition) isDefinition()   {}
func (*InterfaceTypeExtension) isDefinition()    {}
func (*UnionTypeDefinition) isDefinition()       {}
func (*UnionTypeExtension) isDefinition()        {}
func (*EnumTypeDefinition) isDefinition()        {}
func (*EnumTypeExtension) isDefinition()         {}
func (*InputObjectTypeDefinition) isDefinition() {}
func (*InputObjectTypeExtension) isDefinition()  {}
func (*DirectiveDefinition) isDefinition()       {}
func (*OperationDefinition) isDefinition()       {}
func (*FragmentDefinition) isDefinition()        {}
