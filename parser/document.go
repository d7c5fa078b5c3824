package parser

import "github.com/gqlcore/gqlcore/cst"

// parseDocument parses:
//
//	Document := Definition+
//
// A single grammar covers both schema and executable files (GraphQL
// itself doesn't distinguish them lexically); it's the database layer
// (spec §4.5's file_kind input) that decides which definitions a given
// file is expected to contribute.
func (p *Parser) parseDocument() cst.Element {
	p.builder.StartNode()
	p.fill() // prime lookahead; leading trivia nests inside DOCUMENT

	for p.peek() != cst.EOF {
		before := p.tok.Start
		p.definition()
		if p.tok.Start == before {
			// A definition consumed nothing at all (can only happen on
			// truly unrecognized input after err() already fired) -
			// force progress so the loop can't spin forever.
			p.bumpAny()
		}
	}

	return p.builder.FinishNode(cst.DOCUMENT, p.tok.Start)
}

// definition dispatches on the lookahead to one of the type-system
// definitions/extensions, a schema/directive definition, or an
// executable definition (operation or fragment).
func (p *Parser) definition() {
	if p.atDescription() {
		// Every definition that accepts a Description is itself a
		// type-system definition; peek past it isn't necessary because
		// the June 2018 grammar only allows Description immediately
		// before a type-system definition, never an executable one.
		p.typeSystemDefinitionWithDescription()
		return
	}

	if p.peek() == cst.LBrace {
		p.operationDefinition()
		return
	}

	if p.peek() != cst.Name {
		p.err("expected a Definition")
		return
	}

	switch p.peekText() {
	case "schema":
		p.schemaDefinition()
	case "scalar":
		p.scalarTypeDefinition()
	case "type":
		p.objectTypeDefinition()
	case "interface":
		p.interfaceTypeDefinition()
	case "union":
		p.unionTypeDefinition()
	case "enum":
		p.enumTypeDefinition()
	case "input":
		p.inputObjectTypeDefinition()
	case "directive":
		p.directiveDefinition()
	case "extend":
		p.extension()
	case "query", "mutation", "subscription":
		p.operationDefinition()
	case "fragment":
		p.fragmentDefinition()
	default:
		p.err("expected a Definition")
	}
}

// typeSystemDefinitionWithDescription dispatches on the keyword that
// follows the Description already sitting in the lookahead — one token
// past the current one — without consuming either.
func (p *Parser) typeSystemDefinitionWithDescription() {
	switch p.peekTextAt(1) {
	case "schema":
		p.schemaDefinition()
	case "scalar":
		p.scalarTypeDefinition()
	case "type":
		p.objectTypeDefinition()
	case "interface":
		p.interfaceTypeDefinition()
	case "union":
		p.unionTypeDefinition()
	case "enum":
		p.enumTypeDefinition()
	case "input":
		p.inputObjectTypeDefinition()
	case "directive":
		p.directiveDefinition()
	default:
		// Nothing recognizable follows the description: delegate to the
		// scalar production (an arbitrary but harmless choice), which
		// consumes the description itself and reports the missing
		// keyword/name.
		p.scalarTypeDefinition()
	}
}

// extension dispatches an "extend" definition by the keyword following
// "extend", one token past the current lookahead.
func (p *Parser) extension() {
	switch p.peekTextAt(1) {
	case "schema":
		p.schemaExtension()
	case "scalar":
		p.scalarTypeExtension()
	case "type":
		p.objectTypeExtension()
	case "interface":
		p.interfaceTypeExtension()
	case "union":
		p.unionTypeExtension()
	case "enum":
		p.enumTypeExtension()
	case "input":
		p.inputObjectTypeExtension()
	default:
		p.err(`expected "schema", "scalar", "type", "interface", "union", "enum", or "input"`)
		p.bump(cst.ExtendKW)
	}
}
