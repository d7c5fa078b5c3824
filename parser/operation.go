package parser

import "github.com/gqlcore/gqlcore/cst"

// operationDefinition parses:
//
//	OperationDefinition := OperationType Name? VariableDefinitions? Directives[Const]? SelectionSet
//	                      | SelectionSet
func (p *Parser) operationDefinition() {
	p.builder.StartNode()
	if p.peek() == cst.LBrace {
		// Shorthand query form: just a SelectionSet.
		p.selectionSet()
		p.builder.FinishNode(cst.OPERATION_DEFINITION, p.tok.Start)
		return
	}

	p.operationType()
	if p.atName() {
		p.name()
	}
	if p.peek() == cst.LParen {
		p.variableDefinitions()
	}
	if p.atDirectives() {
		p.directives()
	}
	if p.peek() == cst.LBrace {
		p.selectionSet()
	} else {
		p.err("expected a Selection Set")
	}
	p.builder.FinishNode(cst.OPERATION_DEFINITION, p.tok.Start)
}

// fragmentDefinition parses:
//
//	FragmentDefinition := fragment FragmentName TypeCondition Directives[Const]? SelectionSet
//	FragmentName       := Name (not "on")
func (p *Parser) fragmentDefinition() {
	p.builder.StartNode()
	if p.atKeyword("fragment") {
		p.bump(cst.FragmentKW)
	}
	if p.atName() {
		p.name()
	} else {
		p.err("expected a Fragment Name")
	}
	if p.atKeyword("on") {
		p.typeCondition()
	} else {
		p.err("expected a Type Condition")
	}
	if p.atDirectives() {
		p.directives()
	}
	if p.peek() == cst.LBrace {
		p.selectionSet()
	} else {
		p.err("expected a Selection Set")
	}
	p.builder.FinishNode(cst.FRAGMENT_DEFINITION, p.tok.Start)
}

// typeCondition parses:
//
//	TypeCondition := on NamedType
func (p *Parser) typeCondition() {
	p.builder.StartNode()
	p.bump(cst.OnKW)
	if p.atName() {
		p.namedType()
	} else {
		p.err("expected a Name")
	}
	p.builder.FinishNode(cst.TYPE_CONDITION, p.tok.Start)
}

// selectionSet parses:
//
//	SelectionSet := { Selection+ }
//
// Fields can nest SelectionSets arbitrarily deep, so this is one of the
// recursion-limited productions (spec §4.2).
func (p *Parser) selectionSet() {
	if !p.enter() {
		return
	}
	defer p.leave()

	p.builder.StartNode()
	p.bump(cst.LBrace)
	for p.peek() != cst.RBrace && p.peek() != cst.EOF {
		before := p.tok.Start
		p.selection()
		if p.tok.Start == before {
			// Nothing was consumed (e.g. a nested '{' refused by enter);
			// force progress so the loop can't spin.
			p.bumpAny()
		}
	}
	p.expect(cst.RBrace, "'}'")
	p.builder.FinishNode(cst.SELECTION_SET, p.tok.Start)
}

// selection parses:
//
//	Selection := Field | FragmentSpread | InlineFragment
func (p *Parser) selection() {
	if p.peek() == cst.Spread {
		p.fragmentSpreadOrInlineFragment()
		return
	}
	p.field()
}

// fragmentSpreadOrInlineFragment disambiguates:
//
//	FragmentSpread  := ... FragmentName Directives[Const]?
//	InlineFragment  := ... TypeCondition? Directives[Const]? SelectionSet
func (p *Parser) fragmentSpreadOrInlineFragment() {
	p.builder.StartNode()
	p.bump(cst.Spread)

	if p.atName() && p.peekText() != "on" {
		p.name()
		if p.atDirectives() {
			p.directives()
		}
		p.builder.FinishNode(cst.FRAGMENT_SPREAD, p.tok.Start)
		return
	}

	if p.atKeyword("on") {
		p.typeCondition()
	}
	if p.atDirectives() {
		p.directives()
	}
	if p.peek() == cst.LBrace {
		p.selectionSet()
	} else {
		p.err("expected a Selection Set")
	}
	p.builder.FinishNode(cst.INLINE_FRAGMENT, p.tok.Start)
}

// field parses:
//
//	Field := Alias? Name Arguments? Directives[Const]? SelectionSet?
//	Alias := Name :
func (p *Parser) field() {
	p.builder.StartNode()

	if p.atName() {
		p.aliasOrName()
	} else {
		p.err("expected a Name")
	}

	if p.peek() == cst.LParen {
		p.arguments()
	}
	if p.atDirectives() {
		p.directives()
	}
	if p.peek() == cst.LBrace {
		p.selectionSet()
	}

	p.builder.FinishNode(cst.FIELD, p.tok.Start)
}

// aliasOrName consumes a Name, and if it's immediately followed by ':',
// reinterprets what was just parsed as an Alias and parses the actual
// field Name that follows.
func (p *Parser) aliasOrName() {
	p.builder.StartNode()
	p.name()
	if p.peek() == cst.Colon {
		p.bump(cst.Colon)
		if p.atName() {
			p.name()
		} else {
			p.err("expected a Name")
		}
		p.builder.FinishNode(cst.ALIAS, p.tok.Start)
		return
	}
	// No alias: discard the wrapper node we speculatively opened and
	// reattach its single NAME_NODE child directly, so the tree matches
	// a plain Field with no ALIAS layer.
	inner := p.builder.PopLast()
	p.builder.DiscardFrame()
	p.builder.Reattach(inner)
}
