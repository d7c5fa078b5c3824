package parser

import "github.com/gqlcore/gqlcore/cst"

// description parses:
//
//	Description := StringValue
//
// Callers check atDescription() first; description() itself just wraps
// the StringValue token in a DESCRIPTION node.
func (p *Parser) description() {
	p.builder.StartNode()
	p.bump(cst.StringValue)
	p.builder.FinishNode(cst.DESCRIPTION, p.tok.Start)
}

func (p *Parser) atDescription() bool { return p.peek() == cst.StringValue }
