package ast

import (
	"github.com/gqlcore/gqlcore/cst"
	"github.com/gqlcore/gqlcore/diagnostic"
)

func lowerOperationDefinition(file diagnostic.FileID, node *cst.Node) *OperationDefinition {
	// operationType() bumps its keyword directly into the still-open
	// OPERATION_DEFINITION frame rather than wrapping it in its own node,
	// so the keyword shows up as a direct token child here.
	d := &OperationDefinition{Operation: lowerOperationType(node), span: spanOf(file, node)}
	if name := node.FirstChild(cst.NAME_NODE); name != nil {
		d.Name, d.NameSpan = lowerName(file, name)
	}
	if vars := node.FirstNode(cst.VARIABLE_DEFINITIONS); vars != nil {
		d.Variables = lowerVariableDefinitions(file, vars)
	}
	if dirs := node.FirstNode(cst.DIRECTIVES); dirs != nil {
		d.Directives = lowerDirectives(file, dirs)
	}
	if sel := node.FirstNode(cst.SELECTION_SET); sel != nil {
		d.Selections = lowerSelectionSet(file, sel)
	}
	return d
}

func lowerVariableDefinitions(file diagnostic.FileID, e cst.Element) []VariableDefinition {
	node, ok := e.(*cst.Node)
	if !ok || node == nil {
		return nil
	}
	var out []VariableDefinition
	for _, c := range node.ChildrenOfKind(cst.VARIABLE_DEFINITION) {
		out = append(out, lowerVariableDefinition(file, c))
	}
	return out
}

func lowerVariableDefinition(file diagnostic.FileID, e cst.Element) VariableDefinition {
	node, _ := e.(*cst.Node)
	vd := VariableDefinition{Span: spanOf(file, node)}
	if node == nil {
		return vd
	}
	if v := node.FirstNode(cst.VARIABLE); v != nil {
		vd.Name, vd.NameSpan = lowerName(file, v.FirstChild(cst.NAME_NODE))
	}
	vd.Type = firstTypeOf(file, node)
	if def := node.FirstNode(cst.DEFAULT_VALUE); def != nil {
		vd.DefaultValue = lowerValue(file, firstValueChild(def))
	}
	if dirs := node.FirstNode(cst.DIRECTIVES); dirs != nil {
		vd.Directives = lowerDirectives(file, dirs)
	}
	return vd
}

func lowerFragmentDefinition(file diagnostic.FileID, node *cst.Node) *FragmentDefinition {
	d := &FragmentDefinition{span: spanOf(file, node)}
	if name := node.FirstChild(cst.NAME_NODE); name != nil {
		d.Name, d.NameSpan = lowerName(file, name)
	}
	if tc := node.FirstNode(cst.TYPE_CONDITION); tc != nil {
		if nt := tc.FirstNode(cst.NAMED_TYPE); nt != nil {
			d.TypeCondition, _ = lowerName(file, nt.FirstChild(cst.NAME_NODE))
		}
	}
	if dirs := node.FirstNode(cst.DIRECTIVES); dirs != nil {
		d.Directives = lowerDirectives(file, dirs)
	}
	if sel := node.FirstNode(cst.SELECTION_SET); sel != nil {
		d.Selections = lowerSelectionSet(file, sel)
	}
	return d
}

func lowerSelectionSet(file diagnostic.FileID, e cst.Element) []Selection {
	node, ok := e.(*cst.Node)
	if !ok || node == nil {
		return nil
	}
	var out []Selection
	for _, c := range node.Children() {
		switch c.Kind() {
		case cst.FIELD:
			out = append(out, lowerField(file, c))
		case cst.FRAGMENT_SPREAD:
			out = append(out, lowerFragmentSpread(file, c))
		case cst.INLINE_FRAGMENT:
			out = append(out, lowerInlineFragment(file, c))
		}
	}
	return out
}

func lowerField(file diagnostic.FileID, e cst.Element) *Field {
	node, _ := e.(*cst.Node)
	f := &Field{span: spanOf(file, node)}
	if node == nil {
		return f
	}
	if alias := node.FirstNode(cst.ALIAS); alias != nil {
		names := alias.ChildrenOfKind(cst.NAME_NODE)
		if len(names) >= 1 {
			f.Alias, _ = lowerName(file, names[0])
		}
		if len(names) >= 2 {
			f.Name, f.NameSpan = lowerName(file, names[1])
		}
	} else if name := node.FirstChild(cst.NAME_NODE); name != nil {
		f.Name, f.NameSpan = lowerName(file, name)
	}
	if args := node.FirstNode(cst.ARGUMENTS); args != nil {
		f.Arguments = lowerArguments(file, args)
	}
	if dirs := node.FirstNode(cst.DIRECTIVES); dirs != nil {
		f.Directives = lowerDirectives(file, dirs)
	}
	if sel := node.FirstNode(cst.SELECTION_SET); sel != nil {
		f.Selections = lowerSelectionSet(file, sel)
	}
	return f
}

func lowerFragmentSpread(file diagnostic.FileID, e cst.Element) *FragmentSpread {
	node, _ := e.(*cst.Node)
	fs := &FragmentSpread{span: spanOf(file, node)}
	if node == nil {
		return fs
	}
	if name := node.FirstChild(cst.NAME_NODE); name != nil {
		fs.Name, fs.NameSpan = lowerName(file, name)
	}
	if dirs := node.FirstNode(cst.DIRECTIVES); dirs != nil {
		fs.Directives = lowerDirectives(file, dirs)
	}
	return fs
}

func lowerInlineFragment(file diagnostic.FileID, e cst.Element) *InlineFragment {
	node, _ := e.(*cst.Node)
	inf := &InlineFragment{span: spanOf(file, node)}
	if node == nil {
		return inf
	}
	if tc := node.FirstNode(cst.TYPE_CONDITION); tc != nil {
		if nt := tc.FirstNode(cst.NAMED_TYPE); nt != nil {
			inf.TypeCondition, _ = lowerName(file, nt.FirstChild(cst.NAME_NODE))
		}
	}
	if dirs := node.FirstNode(cst.DIRECTIVES); dirs != nil {
		inf.Directives = lowerDirectives(file, dirs)
	}
	if sel := node.FirstNode(cst.SELECTION_SET); sel != nil {
		inf.Selections = lowerSelectionSet(file, sel)
	}
	return inf
}
