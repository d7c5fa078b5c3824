package ast

// Type is one of NamedType, ListType, or NonNullType.
type Type interface {
	Span() Span
	isType()
}

type NamedType struct {
	Name Name
	span Span
}

type ListType struct {
	Element Type
	span    Span
}

type NonNullType struct {
	Inner Type
	span  Span
}

func (t *NamedType) Span() Span   { return t.span }
func (t *ListType) Span() Span    { return t.span }
func (t *NonNullType) Span() Span { return t.span }

func (*NamedType) isType()   {}
func (*ListType) isType()    {}
func (*NonNullType) isType() {}

// InnermostName returns the Name at the bottom of a (possibly
// list/non-null-wrapped) type reference, the identifier a schema builder
// resolves against its type map.
func InnermostName(t Type) (Name, bool) {
	for {
		switch v := t.(type) {
		case *NamedType:
			return v.Name, true
		case *ListType:
			t = v.Element
		case *NonNullType:
			t = v.Inner
		default:
			return "", false
		}
	}
}

// String renders a Type back to GraphQL's textual notation. No parsing
// path uses it.
func (t *NamedType) String() string { return string(t.Name) }
func (t *ListType) String() string {
	if t.Element == nil {
		return "[]"
	}
	return "[" + typeString(t.Element) + "]"
}
func (t *NonNullType) String() string {
	if t.Inner == nil {
		return "!"
	}
	return typeString(t.Inner) + "!"
}

func typeString(t Type) string {
	switch v := t.(type) {
	case *NamedType:
		return v.String()
	case *ListType:
		return v.String()
	case *NonNullType:
		return v.String()
	default:
		return "?"
	}
}
