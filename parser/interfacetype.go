package parser

import "github.com/gqlcore/gqlcore/cst"

// interfaceTypeDefinition parses:
//
//	InterfaceTypeDefinition := Description? interface Name ImplementsInterfaces?
//	                           Directives[Const]? FieldsDefinition?
func (p *Parser) interfaceTypeDefinition() {
	p.builder.StartNode()
	if p.atDescription() {
		p.description()
	}
	if p.atKeyword("interface") {
		p.bump(cst.InterfaceKW)
	}
	if p.atName() {
		p.name()
	} else {
		p.err("expected a Name")
	}
	if p.atKeyword("implements") {
		p.implementsInterfaces()
	}
	if p.atDirectives() {
		p.directives()
	}
	if p.peek() == cst.LBrace {
		p.fieldsDefinition()
	}
	p.builder.FinishNode(cst.INTERFACE_TYPE_DEFINITION, p.tok.Start)
}

// interfaceTypeExtension parses:
//
//	extend interface Name ImplementsInterfaces? Directives[Const]? FieldsDefinition
//	extend interface Name ImplementsInterfaces? Directives[Const]
//	extend interface Name ImplementsInterfaces
//
// (at least one of ImplementsInterfaces, Directives, FieldsDefinition)
func (p *Parser) interfaceTypeExtension() {
	p.builder.StartNode()
	p.bump(cst.ExtendKW)
	p.bump(cst.InterfaceKW)
	if p.atName() {
		p.name()
	} else {
		p.err("expected a Name")
	}

	meetsRequirements := false
	if p.atKeyword("implements") {
		meetsRequirements = true
		p.implementsInterfaces()
	}
	if p.atDirectives() {
		meetsRequirements = true
		p.directives()
	}
	if p.peek() == cst.LBrace {
		meetsRequirements = true
		p.fieldsDefinition()
	}
	if !meetsRequirements {
		p.err("expected Implements Interfaces, Directives, or a Fields Definition")
	}
	p.builder.FinishNode(cst.INTERFACE_TYPE_EXTENSION, p.tok.Start)
}
