package parser

import "github.com/gqlcore/gqlcore/cst"

// objectTypeDefinition parses:
//
//	ObjectTypeDefinition := Description? type Name ImplementsInterfaces?
//	                        Directives[Const]? FieldsDefinition?
func (p *Parser) objectTypeDefinition() {
	p.builder.StartNode()
	if p.atDescription() {
		p.description()
	}
	if p.atKeyword("type") {
		p.bump(cst.TypeKW)
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
	p.builder.FinishNode(cst.OBJECT_TYPE_DEFINITION, p.tok.Start)
}

// objectTypeExtension parses one of the three extension shapes:
//
//	extend type Name ImplementsInterfaces? Directives[Const]? FieldsDefinition
//	extend type Name ImplementsInterfaces? Directives[Const]
//	extend type Name ImplementsInterfaces
//
// (at least one of ImplementsInterfaces, Directives, FieldsDefinition
// must be present)
func (p *Parser) objectTypeExtension() {
	p.builder.StartNode()
	p.bump(cst.ExtendKW)
	p.bump(cst.TypeKW)
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
	p.builder.FinishNode(cst.OBJECT_TYPE_EXTENSION, p.tok.Start)
}

// implementsInterfaces parses:
//
//	ImplementsInterfaces := implements &? NamedType
//	                      | ImplementsInterfaces & NamedType
func (p *Parser) implementsInterfaces() {
	p.builder.StartNode()
	p.bump(cst.ImplementsKW)
	if p.peek() == cst.Amp {
		p.bump(cst.Amp)
	}
	p.namedType()
	for p.peek() == cst.Amp {
		p.bump(cst.Amp)
		p.namedType()
	}
	p.builder.FinishNode(cst.IMPLEMENTS_INTERFACES, p.tok.Start)
}

// fieldsDefinition parses:
//
//	FieldsDefinition := { FieldDefinition+ }
func (p *Parser) fieldsDefinition() {
	p.builder.StartNode()
	p.bump(cst.LBrace)
	for p.peek() != cst.RBrace && p.peek() != cst.EOF {
		before := p.tok.Start
		p.fieldDefinition()
		if p.tok.Start == before {
			// Nothing was consumed; force progress so the loop can't spin.
			p.bumpAny()
		}
	}
	p.expect(cst.RBrace, "'}'")
	p.builder.FinishNode(cst.FIELDS_DEFINITION, p.tok.Start)
}

// fieldDefinition parses:
//
//	FieldDefinition := Description? Name ArgumentsDefinition? : Type Directives[Const]?
func (p *Parser) fieldDefinition() {
	p.builder.StartNode()
	if p.atDescription() {
		p.description()
	}
	if p.atName() {
		p.name()
	} else {
		p.err("expected a Name")
	}
	if p.peek() == cst.LParen {
		p.argumentsDefinition()
	}
	p.expect(cst.Colon, "':'")
	p.typeRef()
	if p.atDirectives() {
		p.directives()
	}
	p.builder.FinishNode(cst.FIELD_DEFINITION, p.tok.Start)
}
