package ast

// Value is one of Variable, IntValue, FloatValue, StringValue,
// BooleanValue, NullValue, EnumValue, ListValue, or ObjectValue.
type Value interface {
	Span() Span
	isValue()
}

type Variable struct {
	Name Name
	span Span
}

type IntValue struct {
	Raw  string
	span Span
}

type FloatValue struct {
	Raw  string
	span Span
}

type StringValue struct {
	Raw   string // source text, quotes/escapes and block-string delimiters intact
	Block bool
	span  Span
}

type BooleanValue struct {
	Value bool
	span  Span
}

type NullValue struct {
	span Span
}

type EnumValue struct {
	Name Name
	span Span
}

type ListValue struct {
	Values []Value
	span   Span
}

type ObjectValue struct {
	Fields []ObjectField
	span   Span
}

// ObjectField is a Name: Value pair inside an ObjectValue. It has no
// Span method of its own since it isn't a Value; callers needing its
// location use NameSpan/Value.Span().
type ObjectField struct {
	Name      Name
	NameSpan  Span
	Value     Value
}

func (v *Variable) Span() Span    { return v.span }
func (v *IntValue) Span() Span    { return v.span }
func (v *FloatValue) Span() Span  { return v.span }
func (v *StringValue) Span() Span { return v.span }
func (v *BooleanValue) Span() Span { return v.span }
func (v *NullValue) Span() Span   { return v.span }
func (v *EnumValue) Span() Span   { return v.span }
func (v *ListValue) Span() Span   { return v.span }
func (v *ObjectValue) Span() Span { return v.span }

func (*Variable) isValue()    {}
func (*IntValue) isValue()    {}
func (*FloatValue) isValue()  {}
func (*StringValue) isValue() {}
func (*BooleanValue) isValue() {}
func (*NullValue) isValue()   {}
func (*EnumValue) isValue()   {}
func (*ListValue) isValue()   {}
func (*ObjectValue) isValue() {}
