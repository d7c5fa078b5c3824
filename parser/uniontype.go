package parser

import "github.com/gqlcore/gqlcore/cst"

// unionTypeDefinition parses:
//
//	UnionTypeDefinition := Description? union Name Directives[Const]? UnionMemberTypes?
//
// This is the worked example from spec §4.2: every missing piece is
// reported but never aborts the parse. Notably, the node is opened even
// if the leading "union" keyword turns out to be absent (the caller in
// parseDocument only gets here because it already peeked "union", so in
// practice this never fires, but the shape is kept defensive to match
// the documented behavior verbatim - see spec §9's open question about
// it).
func (p *Parser) unionTypeDefinition() {
	p.builder.StartNode()

	if p.atDescription() {
		p.description()
	}

	if p.atKeyword("union") {
		p.bump(cst.UnionKW)
	}

	if p.atName() {
		p.name()
	} else {
		p.err("expected a Name")
	}

	if p.atDirectives() {
		p.directives()
	}

	if p.peek() == cst.Equals {
		p.unionMemberTypes()
	}

	p.builder.FinishNode(cst.UNION_TYPE_DEFINITION, p.tok.Start)
}

// unionTypeExtension parses:
//
//	UnionTypeExtension := extend union Name Directives[Const]? UnionMemberTypes
//	                    | extend union Name Directives[Const]
//
// (at least one of Directives or UnionMemberTypes must be present)
func (p *Parser) unionTypeExtension() {
	p.builder.StartNode()
	p.bump(cst.ExtendKW)
	p.bump(cst.UnionKW)

	meetsRequirements := false

	if p.atName() {
		p.name()
	} else {
		p.err("expected a Name")
	}

	if p.atDirectives() {
		meetsRequirements = true
		p.directives()
	}

	if p.peek() == cst.Equals {
		meetsRequirements = true
		p.unionMemberTypes()
	}

	if !meetsRequirements {
		p.err("expected Directives or Union Member Types")
	}

	p.builder.FinishNode(cst.UNION_TYPE_EXTENSION, p.tok.Start)
}

// unionMemberTypes parses:
//
//	UnionMemberTypes := = |? NamedType ( | NamedType )*
func (p *Parser) unionMemberTypes() {
	p.builder.StartNode()
	p.bump(cst.Equals)
	p.unionMemberType(false)
	p.builder.FinishNode(cst.UNION_MEMBER_TYPES, p.tok.Start)
}

// unionMemberType mirrors the original's recursive structure exactly,
// including its documented quirk (spec §9 open question): after a Name
// is consumed, parsing continues as long as *any* token remains rather
// than strictly requiring a leading '|' - so a stray Name right after a
// member name is swept into the member list as one more member; any
// other non-pipe token ends the list without being consumed.
// Only the pipe-separated shape is exercised by the seed scenarios, and
// that shape is what this preserves.
func (p *Parser) unionMemberType(isUnion bool) {
	switch p.peek() {
	case cst.Pipe:
		p.bump(cst.Pipe)
		p.unionMemberType(isUnion)
	case cst.Name:
		p.namedType()
		if p.peek() != cst.EOF {
			p.unionMemberType(true)
		}
	default:
		if !isUnion {
			p.err("expected Union Member Types")
		}
	}
}

// namedType wraps a bare Name in a NAMED_TYPE node; used where the
// grammar specifically wants NamedType rather than the full Type
// production (union members and "implements" lists never accept list or
// non-null types).
func (p *Parser) namedType() {
	p.builder.StartNode()
	p.name()
	p.builder.FinishNode(cst.NAMED_TYPE, p.tok.Start)
}
