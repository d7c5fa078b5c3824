package parser

import "github.com/gqlcore/gqlcore/cst"

// argumentsDefinition parses:
//
//	ArgumentsDefinition := ( InputValueDefinition+ )
func (p *Parser) argumentsDefinition() {
	p.builder.StartNode()
	p.bump(cst.LParen)
	for p.peek() != cst.RParen && p.peek() != cst.EOF {
		p.inputValueDefinition()
	}
	p.expect(cst.RParen, "')'")
	p.builder.FinishNode(cst.ARGUMENTS_DEFINITION, p.tok.Start)
}

// inputValueDefinition parses:
//
//	InputValueDefinition := Description? Name : Type DefaultValue? Directives[Const]?
func (p *Parser) inputValueDefinition() {
	p.builder.StartNode()
	if p.atDescription() {
		p.description()
	}
	p.name()
	p.expect(cst.Colon, "':'")
	p.typeRef()
	if p.peek() == cst.Equals {
		p.defaultValue()
	}
	if p.atDirectives() {
		p.directives()
	}
	p.builder.FinishNode(cst.INPUT_VALUE_DEFINITION, p.tok.Start)
}

// defaultValue parses:
//
//	DefaultValue := = Value[Const]
func (p *Parser) defaultValue() {
	p.builder.StartNode()
	p.bump(cst.Equals)
	p.value()
	p.builder.FinishNode(cst.DEFAULT_VALUE, p.tok.Start)
}

// variableDefinitions parses:
//
//	VariableDefinitions := ( VariableDefinition+ )
func (p *Parser) variableDefinitions() {
	p.builder.StartNode()
	p.bump(cst.LParen)
	for p.peek() != cst.RParen && p.peek() != cst.EOF {
		p.variableDefinition()
	}
	p.expect(cst.RParen, "')'")
	p.builder.FinishNode(cst.VARIABLE_DEFINITIONS, p.tok.Start)
}

// variableDefinition parses:
//
//	VariableDefinition := Variable : Type DefaultValue? Directives[Const]?
func (p *Parser) variableDefinition() {
	p.builder.StartNode()
	p.variable()
	p.expect(cst.Colon, "':'")
	p.typeRef()
	if p.peek() == cst.Equals {
		p.defaultValue()
	}
	if p.atDirectives() {
		p.directives()
	}
	p.builder.FinishNode(cst.VARIABLE_DEFINITION, p.tok.Start)
}
