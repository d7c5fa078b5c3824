package parser

import "github.com/gqlcore/gqlcore/cst"

// inputObjectTypeDefinition parses:
//
//	InputObjectTypeDefinition := Description? input Name Directives[Const]? InputFieldsDefinition?
func (p *Parser) inputObjectTypeDefinition() {
	p.builder.StartNode()
	if p.atDescription() {
		p.description()
	}
	if p.atKeyword("input") {
		p.bump(cst.InputKW)
	}
	if p.atName() {
		p.name()
	} else {
		p.err("expected a Name")
	}
	if p.atDirectives() {
		p.directives()
	}
	if p.peek() == cst.LBrace {
		p.inputFieldsDefinition()
	}
	p.builder.FinishNode(cst.INPUT_OBJECT_TYPE_DEFINITION, p.tok.Start)
}

// inputObjectTypeExtension parses:
//
//	extend input Name Directives[Const]? InputFieldsDefinition
//	extend input Name Directives[Const]
//
// (at least one of Directives or InputFieldsDefinition)
func (p *Parser) inputObjectTypeExtension() {
	p.builder.StartNode()
	p.bump(cst.ExtendKW)
	p.bump(cst.InputKW)
	if p.atName() {
		p.name()
	} else {
		p.err("expected a Name")
	}

	meetsRequirements := false
	if p.atDirectives() {
		meetsRequirements = true
		p.directives()
	}
	if p.peek() == cst.LBrace {
		meetsRequirements = true
		p.inputFieldsDefinition()
	}
	if !meetsRequirements {
		p.err("expected Directives or Input Fields Definition")
	}
	p.builder.FinishNode(cst.INPUT_OBJECT_TYPE_EXTENSION, p.tok.Start)
}

// inputFieldsDefinition parses:
//
//	InputFieldsDefinition := { InputValueDefinition+ }
func (p *Parser) inputFieldsDefinition() {
	p.builder.StartNode()
	p.bump(cst.LBrace)
	for p.peek() != cst.RBrace && p.peek() != cst.EOF {
		p.inputValueDefinition()
	}
	p.expect(cst.RBrace, "'}'")
	p.builder.FinishNode(cst.INPUT_FIELDS_DEFINITION, p.tok.Start)
}
