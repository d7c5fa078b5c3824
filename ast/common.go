package ast

// Argument is a Name: Value pair inside an Arguments list.
type Argument struct {
	Name     Name
	NameSpan Span
	Value    Value
	Span     Span
}

// Directive is @Name(Arguments?).
type Directive struct {
	Name      Name
	NameSpan  Span
	Arguments []Argument
	Span      Span
}

// InputValueDefinition covers both a field argument and an input object
// field: Description? Name : Type DefaultValue? Directives?
type InputValueDefinition struct {
	Description  string
	Name         Name
	NameSpan     Span
	Type         Type
	DefaultValue Value
	Directives   []Directive
	Span         Span
}

// FieldDefinition is Description? Name ArgumentsDefinition? : Type Directives?
type FieldDefinition struct {
	Description string
	Name        Name
	NameSpan    Span
	Arguments   []InputValueDefinition
	Type        Type
	Directives  []Directive
	Span        Span
}

// EnumValueDefinition is Description? EnumValue Directives?
type EnumValueDefinition struct {
	Description string
	Value       Name
	ValueSpan   Span
	Directives  []Directive
	Span        Span
}

// VariableDefinition is $Name : Type DefaultValue? Directives[Const]?
type VariableDefinition struct {
	Name         Name
	NameSpan     Span
	Type         Type
	DefaultValue Value
	Directives   []Directive
	Span         Span
}

// RootOperationTypeDefinition is OperationType : NamedType.
type RootOperationTypeDefinition struct {
	Operation OperationType
	Type      Name
	TypeSpan  Span
	Span      Span
}

// OperationType is query, mutation, or subscription.
type OperationType int

const (
	Query OperationType = iota
	Mutation
	Subscription
)

func (o OperationType) String() string {
	switch o {
	case Query:
		return "query"
	case Mutation:
		return "mutation"
	case Subscription:
		return "subscription"
	default:
		return "unknown"
	}
}
