package parser

import "github.com/gqlcore/gqlcore/cst"

// directives parses one or more Directive; callers check atDirectives()
// first, so this is only ever invoked when at least one is present.
//
//	Directives[Const] := Directive[?Const]+
func (p *Parser) directives() {
	p.builder.StartNode()
	for p.peek() == cst.At {
		p.directive()
	}
	p.builder.FinishNode(cst.DIRECTIVES, p.tok.Start)
}

func (p *Parser) atDirectives() bool { return p.peek() == cst.At }

// directive parses:
//
//	Directive[Const] := @ Name Arguments[?Const]?
func (p *Parser) directive() {
	p.builder.StartNode()
	p.bump(cst.At)
	p.name()
	if p.peek() == cst.LParen {
		p.arguments()
	}
	p.builder.FinishNode(cst.DIRECTIVE, p.tok.Start)
}

// arguments parses:
//
//	Arguments[Const] := ( Argument[?Const]+ )
func (p *Parser) arguments() {
	p.builder.StartNode()
	p.bump(cst.LParen)
	for p.peek() != cst.RParen && p.peek() != cst.EOF {
		p.argument()
	}
	p.expect(cst.RParen, "')'")
	p.builder.FinishNode(cst.ARGUMENTS, p.tok.Start)
}

// argument parses:
//
//	Argument[Const] := Name : Value[?Const]
func (p *Parser) argument() {
	p.builder.StartNode()
	p.name()
	p.expect(cst.Colon, "':'")
	p.value()
	p.builder.FinishNode(cst.ARGUMENT, p.tok.Start)
}
