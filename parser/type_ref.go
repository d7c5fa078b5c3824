package parser

import "github.com/gqlcore/gqlcore/cst"

// typeRef parses:
//
//	Type        := NamedType | ListType | NonNullType
//	NamedType   := Name
//	ListType    := [ Type ]
//	NonNullType := NamedType ! | ListType !
//
// List types can nest arbitrarily (`[[[Int]]]`), so typeRef is one of
// the recursion-limited productions (spec §4.2).
func (p *Parser) typeRef() {
	if !p.enter() {
		return
	}
	defer p.leave()

	switch p.peek() {
	case cst.LBracket:
		p.builder.StartNode()
		p.bump(cst.LBracket)
		p.typeRef()
		p.expect(cst.RBracket, "']'")
		p.builder.FinishNode(cst.LIST_TYPE, p.tok.Start)
	case cst.Name:
		p.builder.StartNode()
		p.name()
		p.builder.FinishNode(cst.NAMED_TYPE, p.tok.Start)
	default:
		p.err("expected a Type")
		return
	}

	if p.peek() == cst.Bang {
		// Wrap whatever was just finished in a NON_NULL_TYPE. Since the
		// builder only supports wrapping the currently-open frame, a
		// NonNull is built by re-opening a node, which means the inner
		// type must have been closed into the parent frame first; we
		// simulate "wrap the last child" by re-reading it back out.
		p.wrapLastAsNonNull()
	}
}

// wrapLastAsNonNull removes the node or token just appended to the
// currently-open frame, wraps it plus the trailing "!" in a
// NON_NULL_TYPE node, and re-appends that instead. This mirrors how a
// green-tree parser "re-parents" a finished child once a trailing
// modifier token (here, '!') is discovered - NonNull is the only GraphQL
// construct that wraps a previously-completed sibling rather than being
// known before its inner type starts.
func (p *Parser) wrapLastAsNonNull() {
	inner := p.builder.PopLast()
	p.builder.StartNode()
	p.builder.Reattach(inner)
	p.bump(cst.Bang)
	p.builder.FinishNode(cst.NON_NULL_TYPE, p.tok.Start)
}
