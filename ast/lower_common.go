package ast

import (
	"github.com/gqlcore/gqlcore/cst"
	"github.com/gqlcore/gqlcore/diagnostic"
)

// lowerName reads the IDENT token out of a NAME_NODE, interning its
// text. A missing or malformed Name (the parser already emitted a
// syntax error for it) lowers to the empty Name rather than failing -
// lowering is total, per spec §4.3.
func lowerName(file diagnostic.FileID, e cst.Element) (Name, Span) {
	node, ok := e.(*cst.Node)
	if !ok || node == nil {
		return "", Span{File: file}
	}
	tok := node.FirstToken(cst.Name)
	if tok == nil {
		return "", spanOf(file, node)
	}
	return Intern(tok.Text()), spanOf(file, node)
}

// lowerDescription reads the raw StringValue token (quotes/escapes and
// block-string delimiters intact) out of a DESCRIPTION node.
func lowerDescription(file diagnostic.FileID, e cst.Element) string {
	node, ok := e.(*cst.Node)
	if !ok || node == nil {
		return ""
	}
	if tok := node.FirstToken(cst.StringValue); tok != nil {
		return tok.Text()
	}
	return ""
}

func lowerDirectives(file diagnostic.FileID, e cst.Element) []Directive {
	node, ok := e.(*cst.Node)
	if !ok || node == nil {
		return nil
	}
	var out []Directive
	for _, c := range node.ChildrenOfKind(cst.DIRECTIVE) {
		out = append(out, lowerDirective(file, c))
	}
	return out
}

func lowerDirective(file diagnostic.FileID, e cst.Element) Directive {
	node, _ := e.(*cst.Node)
	d := Directive{Span: spanOf(file, node)}
	if node == nil {
		return d
	}
	d.Name, d.NameSpan = lowerName(file, node.FirstChild(cst.NAME_NODE))
	if args := node.FirstNode(cst.ARGUMENTS); args != nil {
		d.Arguments = lowerArguments(file, args)
	}
	return d
}

func lowerArguments(file diagnostic.FileID, e cst.Element) []Argument {
	node, ok := e.(*cst.Node)
	if !ok || node == nil {
		return nil
	}
	var out []Argument
	for _, c := range node.ChildrenOfKind(cst.ARGUMENT) {
		out = append(out, lowerArgument(file, c))
	}
	return out
}

func lowerArgument(file diagnostic.FileID, e cst.Element) Argument {
	node, _ := e.(*cst.Node)
	a := Argument{Span: spanOf(file, node)}
	if node == nil {
		return a
	}
	a.Name, a.NameSpan = lowerName(file, node.FirstChild(cst.NAME_NODE))
	a.Value = lowerValue(file, firstValueChild(node))
	return a
}

// firstValueChild finds the single child of a node that represents a
// Value production (one of the *_VALUE/VARIABLE kinds) - the productions
// that hold a Value (Argument, ObjectField, DefaultValue) each have
// exactly one such child after their Name/Colon/Equals token children.
func firstValueChild(node *cst.Node) cst.Element {
	for _, c := range node.Children() {
		switch c.Kind() {
		case cst.VARIABLE, cst.INT_VALUE_NODE, cst.FLOAT_VALUE_NODE,
			cst.STRING_VALUE_NODE, cst.BOOLEAN_VALUE, cst.NULL_VALUE,
			cst.ENUM_VALUE, cst.LIST_VALUE, cst.OBJECT_VALUE:
			return c
		}
	}
	return nil
}

func lowerValue(file diagnostic.FileID, e cst.Element) Value {
	node, ok := e.(*cst.Node)
	if !ok || node == nil {
		return nil
	}
	span := spanOf(file, node)
	switch node.Kind() {
	case cst.VARIABLE:
		name, _ := lowerName(file, node.FirstChild(cst.NAME_NODE))
		return &Variable{Name: name, span: span}
	case cst.INT_VALUE_NODE:
		return &IntValue{Raw: tokenText(node, cst.IntValue), span: span}
	case cst.FLOAT_VALUE_NODE:
		return &FloatValue{Raw: tokenText(node, cst.FloatValue), span: span}
	case cst.STRING_VALUE_NODE:
		raw := tokenText(node, cst.StringValue)
		return &StringValue{Raw: raw, Block: isBlockString(raw), span: span}
	case cst.BOOLEAN_VALUE:
		return &BooleanValue{Value: node.FirstToken(cst.TrueKW) != nil, span: span}
	case cst.NULL_VALUE:
		return &NullValue{span: span}
	case cst.ENUM_VALUE:
		return &EnumValue{Name: Intern(tokenText(node, cst.Name)), span: span}
	case cst.LIST_VALUE:
		lv := &ListValue{span: span}
		for _, c := range node.Children() {
			if v := lowerValue(file, c); v != nil {
				lv.Values = append(lv.Values, v)
			}
		}
		return lv
	case cst.OBJECT_VALUE:
		ov := &ObjectValue{span: span}
		for _, c := range node.ChildrenOfKind(cst.OBJECT_FIELD) {
			ov.Fields = append(ov.Fields, lowerObjectField(file, c))
		}
		return ov
	default:
		return nil
	}
}

func lowerObjectField(file diagnostic.FileID, e cst.Element) ObjectField {
	node, _ := e.(*cst.Node)
	if node == nil {
		return ObjectField{}
	}
	name, nameSpan := lowerName(file, node.FirstChild(cst.NAME_NODE))
	return ObjectField{Name: name, NameSpan: nameSpan, Value: lowerValue(file, firstValueChild(node))}
}

func isBlockString(raw string) bool {
	return len(raw) >= 6 && raw[:3] == `"""`
}

func tokenText(node *cst.Node, kind cst.Kind) string {
	if t := node.FirstToken(kind); t != nil {
		return t.Text()
	}
	return ""
}

func lowerType(file diagnostic.FileID, e cst.Element) Type {
	node, ok := e.(*cst.Node)
	if !ok || node == nil {
		return nil
	}
	span := spanOf(file, node)
	switch node.Kind() {
	case cst.NAMED_TYPE:
		name, _ := lowerName(file, node.FirstChild(cst.NAME_NODE))
		return &NamedType{Name: name, span: span}
	case cst.LIST_TYPE:
		var inner Type
		for _, c := range node.Children() {
			switch c.Kind() {
			case cst.NAMED_TYPE, cst.LIST_TYPE, cst.NON_NULL_TYPE:
				inner = lowerType(file, c)
			}
		}
		return &ListType{Element: inner, span: span}
	case cst.NON_NULL_TYPE:
		var inner Type
		for _, c := range node.Children() {
			switch c.Kind() {
			case cst.NAMED_TYPE, cst.LIST_TYPE:
				inner = lowerType(file, c)
			}
		}
		return &NonNullType{Inner: inner, span: span}
	default:
		return nil
	}
}

func lowerInputValueDefinition(file diagnostic.FileID, e cst.Element) InputValueDefinition {
	node, _ := e.(*cst.Node)
	ivd := InputValueDefinition{Span: spanOf(file, node)}
	if node == nil {
		return ivd
	}
	if desc := node.FirstNode(cst.DESCRIPTION); desc != nil {
		ivd.Description = lowerDescription(file, desc)
	}
	ivd.Name, ivd.NameSpan = lowerName(file, node.FirstChild(cst.NAME_NODE))
	ivd.Type = firstTypeOf(file, node)
	if def := node.FirstNode(cst.DEFAULT_VALUE); def != nil {
		ivd.DefaultValue = lowerValue(file, firstValueChild(def))
	}
	if dirs := node.FirstNode(cst.DIRECTIVES); dirs != nil {
		ivd.Directives = lowerDirectives(file, dirs)
	}
	return ivd
}

func firstTypeOf(file diagnostic.FileID, node *cst.Node) Type {
	for _, c := range node.Children() {
		switch c.Kind() {
		case cst.NAMED_TYPE, cst.LIST_TYPE, cst.NON_NULL_TYPE:
			return lowerType(file, c)
		}
	}
	return nil
}

func lowerArgumentsDefinition(file diagnostic.FileID, e cst.Element) []InputValueDefinition {
	node, ok := e.(*cst.Node)
	if !ok || node == nil {
		return nil
	}
	var out []InputValueDefinition
	for _, c := range node.ChildrenOfKind(cst.INPUT_VALUE_DEFINITION) {
		out = append(out, lowerInputValueDefinition(file, c))
	}
	return out
}

func lowerFieldDefinition(file diagnostic.FileID, e cst.Element) FieldDefinition {
	node, _ := e.(*cst.Node)
	fd := FieldDefinition{Span: spanOf(file, node)}
	if node == nil {
		return fd
	}
	if desc := node.FirstNode(cst.DESCRIPTION); desc != nil {
		fd.Description = lowerDescription(file, desc)
	}
	fd.Name, fd.NameSpan = lowerName(file, node.FirstChild(cst.NAME_NODE))
	if args := node.FirstNode(cst.ARGUMENTS_DEFINITION); args != nil {
		fd.Arguments = lowerArgumentsDefinition(file, args)
	}
	fd.Type = firstTypeOf(file, node)
	if dirs := node.FirstNode(cst.DIRECTIVES); dirs != nil {
		fd.Directives = lowerDirectives(file, dirs)
	}
	return fd
}

func lowerFieldsDefinition(file diagnostic.FileID, e cst.Element) []FieldDefinition {
	node, ok := e.(*cst.Node)
	if !ok || node == nil {
		return nil
	}
	var out []FieldDefinition
	for _, c := range node.ChildrenOfKind(cst.FIELD_DEFINITION) {
		out = append(out, lowerFieldDefinition(file, c))
	}
	return out
}

func lowerImplementsInterfaces(file diagnostic.FileID, e cst.Element) []Name {
	node, ok := e.(*cst.Node)
	if !ok || node == nil {
		return nil
	}
	var out []Name
	for _, c := range node.ChildrenOfKind(cst.NAMED_TYPE) {
		name, _ := lowerName(file, elementFirstChild(c, cst.NAME_NODE))
		out = append(out, name)
	}
	return out
}

func elementFirstChild(e cst.Element, kind cst.Kind) cst.Element {
	if node, ok := e.(*cst.Node); ok && node != nil {
		return node.FirstChild(kind)
	}
	return nil
}

func lowerEnumValuesDefinition(file diagnostic.FileID, e cst.Element) []EnumValueDefinition {
	node, ok := e.(*cst.Node)
	if !ok || node == nil {
		return nil
	}
	var out []EnumValueDefinition
	for _, c := range node.ChildrenOfKind(cst.ENUM_VALUE_DEFINITION) {
		out = append(out, lowerEnumValueDefinition(file, c))
	}
	return out
}

func lowerEnumValueDefinition(file diagnostic.FileID, e cst.Element) EnumValueDefinition {
	node, _ := e.(*cst.Node)
	evd := EnumValueDefinition{Span: spanOf(file, node)}
	if node == nil {
		return evd
	}
	if desc := node.FirstNode(cst.DESCRIPTION); desc != nil {
		evd.Description = lowerDescription(file, desc)
	}
	evd.Value, evd.ValueSpan = lowerName(file, node.FirstChild(cst.NAME_NODE))
	if dirs := node.FirstNode(cst.DIRECTIVES); dirs != nil {
		evd.Directives = lowerDirectives(file, dirs)
	}
	return evd
}

func lowerInputFieldsDefinition(file diagnostic.FileID, e cst.Element) []InputValueDefinition {
	node, ok := e.(*cst.Node)
	if !ok || node == nil {
		return nil
	}
	var out []InputValueDefinition
	for _, c := range node.ChildrenOfKind(cst.INPUT_VALUE_DEFINITION) {
		out = append(out, lowerInputValueDefinition(file, c))
	}
	return out
}

func lowerUnionMemberTypes(file diagnostic.FileID, e cst.Element) []Name {
	node, ok := e.(*cst.Node)
	if !ok || node == nil {
		return nil
	}
	var out []Name
	for _, c := range node.ChildrenOfKind(cst.NAMED_TYPE) {
		name, _ := lowerName(file, elementFirstChild(c, cst.NAME_NODE))
		out = append(out, name)
	}
	return out
}

func lowerDirectiveLocations(file diagnostic.FileID, e cst.Element) []Name {
	node, ok := e.(*cst.Node)
	if !ok || node == nil {
		return nil
	}
	var out []Name
	for _, c := range node.ChildrenOfKind(cst.NAME_NODE) {
		name, _ := lowerName(file, c)
		out = append(out, name)
	}
	return out
}
