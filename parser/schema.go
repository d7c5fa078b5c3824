package parser

import "github.com/gqlcore/gqlcore/cst"

// schemaDefinition parses:
//
//	SchemaDefinition := Description? schema Directives[Const]? { RootOperationTypeDefinition+ }
func (p *Parser) schemaDefinition() {
	p.builder.StartNode()
	if p.atDescription() {
		p.description()
	}
	if p.atKeyword("schema") {
		p.bump(cst.SchemaKW)
	}
	if p.atDirectives() {
		p.directives()
	}
	if p.peek() == cst.LBrace {
		p.rootOperationTypesBlock()
	} else {
		p.err("expected Root Operation Type Definitions")
	}
	p.builder.FinishNode(cst.SCHEMA_DEFINITION, p.tok.Start)
}

// schemaExtension parses:
//
//	extend schema Directives[Const]? { RootOperationTypeDefinition+ }
//	extend schema Directives[Const]
//
// (at least one of Directives or a root operation type block)
func (p *Parser) schemaExtension() {
	p.builder.StartNode()
	p.bump(cst.ExtendKW)
	p.bump(cst.SchemaKW)

	meetsRequirements := false
	if p.atDirectives() {
		meetsRequirements = true
		p.directives()
	}
	if p.peek() == cst.LBrace {
		meetsRequirements = true
		p.rootOperationTypesBlock()
	}
	if !meetsRequirements {
		p.err("expected Directives or Root Operation Type Definitions")
	}
	p.builder.FinishNode(cst.SCHEMA_EXTENSION, p.tok.Start)
}

func (p *Parser) rootOperationTypesBlock() {
	p.bump(cst.LBrace)
	for p.peek() != cst.RBrace && p.peek() != cst.EOF {
		p.rootOperationTypeDefinition()
	}
	p.expect(cst.RBrace, "'}'")
}

// rootOperationTypeDefinition parses:
//
//	RootOperationTypeDefinition := OperationType : NamedType
func (p *Parser) rootOperationTypeDefinition() {
	p.builder.StartNode()
	p.operationType()
	p.expect(cst.Colon, "':'")
	p.namedType()
	p.builder.FinishNode(cst.ROOT_OPERATION_TYPE_DEFINITION, p.tok.Start)
}

// operationType parses:
//
//	OperationType := query | mutation | subscription
func (p *Parser) operationType() {
	switch p.peekText() {
	case "query":
		p.bump(cst.QueryKW)
	case "mutation":
		p.bump(cst.MutationKW)
	case "subscription":
		p.bump(cst.SubscriptionKW)
	default:
		p.err("expected \"query\", \"mutation\", or \"subscription\"")
	}
}

// directiveDefinition parses:
//
//	DirectiveDefinition := Description? directive @ Name ArgumentsDefinition? on DirectiveLocations
func (p *Parser) directiveDefinition() {
	p.builder.StartNode()
	if p.atDescription() {
		p.description()
	}
	if p.atKeyword("directive") {
		p.bump(cst.DirectiveKW)
	}
	p.expect(cst.At, "'@'")
	if p.atName() {
		p.name()
	} else {
		p.err("expected a Name")
	}
	if p.peek() == cst.LParen {
		p.argumentsDefinition()
	}
	if p.atKeyword("on") {
		p.bump(cst.OnKW)
	} else {
		p.err(`expected "on"`)
	}
	p.directiveLocations()
	p.builder.FinishNode(cst.DIRECTIVE_DEFINITION, p.tok.Start)
}

// directiveLocations parses:
//
//	DirectiveLocations := |? DirectiveLocation ( | DirectiveLocation )*
func (p *Parser) directiveLocations() {
	p.builder.StartNode()
	if p.peek() == cst.Pipe {
		p.bump(cst.Pipe)
	}
	if p.atName() {
		p.name()
	} else {
		p.err("expected a Directive Location")
	}
	for p.peek() == cst.Pipe {
		p.bump(cst.Pipe)
		if p.atName() {
			p.name()
		} else {
			p.err("expected a Directive Location")
		}
	}
	p.builder.FinishNode(cst.DIRECTIVE_LOCATIONS, p.tok.Start)
}
