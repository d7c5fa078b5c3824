package parser

import "github.com/gqlcore/gqlcore/cst"

// scalarTypeDefinition parses:
//
//	ScalarTypeDefinition := Description? scalar Name Directives[Const]?
func (p *Parser) scalarTypeDefinition() {
	p.builder.StartNode()
	if p.atDescription() {
		p.description()
	}
	if p.atKeyword("scalar") {
		p.bump(cst.ScalarKW)
	}
	if p.atName() {
		p.name()
	} else {
		p.err("expected a Name")
	}
	if p.atDirectives() {
		p.directives()
	}
	p.builder.FinishNode(cst.SCALAR_TYPE_DEFINITION, p.tok.Start)
}

// scalarTypeExtension parses:
//
//	ScalarTypeExtension := extend scalar Name Directives[Const]
//
// Directives is mandatory here (a scalar extension with nothing to add
// is meaningless), so a missing one is always reported.
func (p *Parser) scalarTypeExtension() {
	p.builder.StartNode()
	p.bump(cst.ExtendKW)
	p.bump(cst.ScalarKW)
	if p.atName() {
		p.name()
	} else {
		p.err("expected a Name")
	}
	if p.atDirectives() {
		p.directives()
	} else {
		p.err("expected Directives")
	}
	p.builder.FinishNode(cst.SCALAR_TYPE_EXTENSION, p.tok.Start)
}
