package parser

import "github.com/gqlcore/gqlcore/cst"

// enumTypeDefinition parses:
//
//	EnumTypeDefinition := Description? enum Name Directives[Const]? EnumValuesDefinition?
func (p *Parser) enumTypeDefinition() {
	p.builder.StartNode()
	if p.atDescription() {
		p.description()
	}
	if p.atKeyword("enum") {
		p.bump(cst.EnumKW)
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
		p.enumValuesDefinition()
	}
	p.builder.FinishNode(cst.ENUM_TYPE_DEFINITION, p.tok.Start)
}

// enumTypeExtension parses:
//
//	extend enum Name Directives[Const]? EnumValuesDefinition
//	extend enum Name Directives[Const]
//
// (at least one of Directives or EnumValuesDefinition)
func (p *Parser) enumTypeExtension() {
	p.builder.StartNode()
	p.bump(cst.ExtendKW)
	p.bump(cst.EnumKW)
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
		p.enumValuesDefinition()
	}
	if !meetsRequirements {
		p.err("expected Directives or Enum Values Definition")
	}
	p.builder.FinishNode(cst.ENUM_TYPE_EXTENSION, p.tok.Start)
}

// enumValuesDefinition parses:
//
//	EnumValuesDefinition := { EnumValueDefinition+ }
func (p *Parser) enumValuesDefinition() {
	p.builder.StartNode()
	p.bump(cst.LBrace)
	for p.peek() != cst.RBrace && p.peek() != cst.EOF {
		p.enumValueDefinition()
	}
	p.expect(cst.RBrace, "'}'")
	p.builder.FinishNode(cst.ENUM_VALUES_DEFINITION, p.tok.Start)
}

// enumValueDefinition parses:
//
//	EnumValueDefinition := Description? EnumValue Directives[Const]?
//	EnumValue            := Name (but not true, false, or null)
func (p *Parser) enumValueDefinition() {
	p.builder.StartNode()
	if p.atDescription() {
		p.description()
	}
	if p.atName() {
		p.name()
	} else {
		p.err("expected an Enum Value")
	}
	if p.atDirectives() {
		p.directives()
	}
	p.builder.FinishNode(cst.ENUM_VALUE_DEFINITION, p.tok.Start)
}
