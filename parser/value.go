package parser

import "github.com/gqlcore/gqlcore/cst"

// value parses:
//
//	Value[Const] := [~Const] Variable | IntValue | FloatValue | StringValue
//	              | BooleanValue | NullValue | EnumValue | ListValue[?Const]
//	              | ObjectValue[?Const]
//
// The Const/non-Const distinction (whether a Variable may appear) is a
// semantic rule left to the external validator, per spec §4.4 ("deep
// selection-set validation is delegated to the external validator"); the
// parser accepts Variable in both positions and builds the same tree
// either way.
func (p *Parser) value() {
	switch p.peek() {
	case cst.Dollar:
		p.variable()
	case cst.IntValue:
		p.wrapToken(cst.IntValue, cst.INT_VALUE_NODE)
	case cst.FloatValue:
		p.wrapToken(cst.FloatValue, cst.FLOAT_VALUE_NODE)
	case cst.StringValue:
		p.wrapToken(cst.StringValue, cst.STRING_VALUE_NODE)
	case cst.LBracket:
		p.listValue()
	case cst.LBrace:
		p.objectValue()
	case cst.Name:
		switch p.peekText() {
		case "true", "false":
			p.wrapKeywordToken(cst.BOOLEAN_VALUE)
		case "null":
			p.wrapKeywordToken(cst.NULL_VALUE)
		default:
			p.wrapToken(cst.Name, cst.ENUM_VALUE)
		}
	default:
		p.err("expected a Value")
	}
}

func (p *Parser) wrapToken(tokenKind, nodeKind cst.Kind) {
	p.builder.StartNode()
	p.bump(tokenKind)
	p.builder.FinishNode(nodeKind, p.tok.Start)
}

// wrapKeywordToken bumps the current Name token relabeled to its
// keyword kind (true_KW/false_KW/null_KW) and wraps it in nodeKind.
func (p *Parser) wrapKeywordToken(nodeKind cst.Kind) {
	kw := cst.TrueKW
	switch p.peekText() {
	case "false":
		kw = cst.FalseKW
	case "null":
		kw = cst.NullKW
	}
	p.builder.StartNode()
	p.bump(kw)
	p.builder.FinishNode(nodeKind, p.tok.Start)
}

// variable parses:
//
//	Variable := $ Name
func (p *Parser) variable() {
	p.builder.StartNode()
	p.bump(cst.Dollar)
	p.name()
	p.builder.FinishNode(cst.VARIABLE, p.tok.Start)
}

// listValue parses:
//
//	ListValue[Const] := [ ] | [ Value[?Const]+ ]
func (p *Parser) listValue() {
	if !p.enter() {
		return
	}
	defer p.leave()

	p.builder.StartNode()
	p.bump(cst.LBracket)
	for p.peek() != cst.RBracket && p.peek() != cst.EOF {
		p.value()
	}
	p.expect(cst.RBracket, "']'")
	p.builder.FinishNode(cst.LIST_VALUE, p.tok.Start)
}

// objectValue parses:
//
//	ObjectValue[Const] := { } | { ObjectField[?Const]+ }
func (p *Parser) objectValue() {
	if !p.enter() {
		return
	}
	defer p.leave()

	p.builder.StartNode()
	p.bump(cst.LBrace)
	for p.peek() != cst.RBrace && p.peek() != cst.EOF {
		p.objectField()
	}
	p.expect(cst.RBrace, "'}'")
	p.builder.FinishNode(cst.OBJECT_VALUE, p.tok.Start)
}

// objectField parses:
//
//	ObjectField[Const] := Name : Value[?Const]
func (p *Parser) objectField() {
	p.builder.StartNode()
	p.name()
	p.expect(cst.Colon, "':'")
	p.value()
	p.builder.FinishNode(cst.OBJECT_FIELD, p.tok.Start)
}
