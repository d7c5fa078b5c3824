package parser

import "github.com/gqlcore/gqlcore/cst"

// name parses:
//
//	Name := /[_A-Za-z][_0-9A-Za-z]*/
//
// Name wraps its IDENT token (plus any trailing trivia, swallowed by
// bump) in its own NAME_NODE so every caller gets trivia bundled in one
// reusable child, matching the nesting seen in spec §8's seed
// scenarios (e.g. "NAME@6..19" wrapping "IDENT@6..18" + trailing
// whitespace).
func (p *Parser) name() {
	p.builder.StartNode()
	if p.peek() == cst.Name {
		p.bump(cst.Name)
	} else {
		p.err("expected a Name")
	}
	p.builder.FinishNode(cst.NAME_NODE, p.tok.Start)
}

// atName reports whether the lookahead could start a Name production,
// used by callers deciding whether a production is present at all
// before committing to it (e.g. an optional field alias).
func (p *Parser) atName() bool { return p.peek() == cst.Name }
