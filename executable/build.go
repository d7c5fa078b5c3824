package executable

import (
	"github.com/gqlcore/gqlcore/ast"
	"github.com/gqlcore/gqlcore/schema"
)

// FromAST validates doc's operations and fragments against s and builds
// a Document, or returns the first structural violation found (spec
// §4.4): unnamed operations at most once, named operations and
// fragments unique, every fragment spread target exists, variable uses
// consistent with declared variables. Anything deeper - field
// existence, argument type compatibility, leaf selection requirements -
// is left to an external validator, per spec's "delegated to the
// external validator" note.
func FromAST(s *schema.Schema, doc *ast.Document) (*Document, *TypeError) {
	out := &Document{
		OperationsByName: make(map[ast.Name]*ast.OperationDefinition),
		Fragments:        make(map[ast.Name]*ast.FragmentDefinition),
	}

	for _, def := range doc.Definitions {
		d, ok := def.(*ast.FragmentDefinition)
		if !ok {
			continue
		}
		if _, exists := out.Fragments[d.Name]; exists {
			return nil, typeErr("duplicate fragment "+d.Name.String(), d.Span())
		}
		out.Fragments[d.Name] = d
	}

	for _, def := range doc.Definitions {
		d, ok := def.(*ast.OperationDefinition)
		if !ok {
			continue
		}
		out.Operations = append(out.Operations, d)
		if d.Name == "" {
			if out.AnonymousOp != nil {
				return nil, typeErr("multiple anonymous operations", d.Span())
			}
			out.AnonymousOp = d
			continue
		}
		if _, exists := out.OperationsByName[d.Name]; exists {
			return nil, typeErr("duplicate operation "+d.Name.String(), d.Span())
		}
		out.OperationsByName[d.Name] = d
	}
	if out.AnonymousOp != nil && len(out.OperationsByName) > 0 {
		return nil, typeErr("anonymous operation mixed with named operations", out.AnonymousOp.Span())
	}

	if s != nil {
		for name, frag := range out.Fragments {
			if _, ok := s.Types[frag.TypeCondition]; !ok {
				return nil, typeErr("fragment "+name.String()+" targets unknown type "+frag.TypeCondition.String(), frag.Span())
			}
		}
	}

	for _, frag := range out.Fragments {
		if err := checkFragmentSpreads(frag.Selections, out); err != nil {
			return nil, err
		}
	}
	for _, op := range out.Operations {
		if err := checkFragmentSpreads(op.Selections, out); err != nil {
			return nil, err
		}
		declared := make(map[ast.Name]bool, len(op.Variables))
		for _, v := range op.Variables {
			declared[v.Name] = true
		}
		if err := walkSelectionsForVars(op.Selections, declared, out, make(map[ast.Name]bool)); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// checkFragmentSpreads reports the first spread whose target fragment
// doesn't exist in doc (spec §3: "every fragment spread target exists").
func checkFragmentSpreads(sels []ast.Selection, doc *Document) *TypeError {
	for _, sel := range sels {
		switch s := sel.(type) {
		case *ast.FragmentSpread:
			if _, ok := doc.Fragments[s.Name]; !ok {
				return typeErr("undefined fragment "+s.Name.String(), s.Span())
			}
		case *ast.InlineFragment:
			if err := checkFragmentSpreads(s.Selections, doc); err != nil {
				return err
			}
		case *ast.Field:
			if err := checkFragmentSpreads(s.Selections, doc); err != nil {
				return err
			}
		}
	}
	return nil
}

// walkSelectionsForVars reports the first variable reference (in a
// field/directive argument, anywhere in op's selection set, including
// through spread fragments) that isn't among op's declared variables -
// spec §3: "variable uses are consistent with declared variables".
// visited guards against revisiting a fragment reachable through more
// than one spread in the same operation.
func walkSelectionsForVars(sels []ast.Selection, declared map[ast.Name]bool, doc *Document, visited map[ast.Name]bool) *TypeError {
	for _, sel := range sels {
		switch s := sel.(type) {
		case *ast.Field:
			if err := checkArgumentVars(s.Arguments, declared); err != nil {
				return err
			}
			if err := checkDirectiveVars(s.Directives, declared); err != nil {
				return err
			}
			if err := walkSelectionsForVars(s.Selections, declared, doc, visited); err != nil {
				return err
			}
		case *ast.InlineFragment:
			if err := checkDirectiveVars(s.Directives, declared); err != nil {
				return err
			}
			if err := walkSelectionsForVars(s.Selections, declared, doc, visited); err != nil {
				return err
			}
		case *ast.FragmentSpread:
			if err := checkDirectiveVars(s.Directives, declared); err != nil {
				return err
			}
			if visited[s.Name] {
				continue
			}
			visited[s.Name] = true
			frag, ok := doc.Fragments[s.Name]
			if !ok {
				continue // already reported by checkFragmentSpreads
			}
			if err := walkSelectionsForVars(frag.Selections, declared, doc, visited); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkArgumentVars(args []ast.Argument, declared map[ast.Name]bool) *TypeError {
	for _, a := range args {
		if err := checkValueVars(a.Value, declared, a.Span); err != nil {
			return err
		}
	}
	return nil
}

func checkDirectiveVars(dirs []ast.Directive, declared map[ast.Name]bool) *TypeError {
	for _, d := range dirs {
		if err := checkArgumentVars(d.Arguments, declared); err != nil {
			return err
		}
	}
	return nil
}

func checkValueVars(v ast.Value, declared map[ast.Name]bool, span ast.Span) *TypeError {
	switch val := v.(type) {
	case *ast.Variable:
		if !declared[val.Name] {
			return typeErr("undeclared variable $"+val.Name.String(), span)
		}
	case *ast.ListValue:
		for _, e := range val.Values {
			if err := checkValueVars(e, declared, span); err != nil {
				return err
			}
		}
	case *ast.ObjectValue:
		for _, f := range val.Fields {
			if err := checkValueVars(f.Value, declared, span); err != nil {
				return err
			}
		}
	}
	return nil
}
