// Package executable implements the executable-document half of C4:
// validating a parsed AST document's operations and fragments against a
// schema.Schema and producing an ExecutableDocument, spec §4.4. Unlike
// the schema builder, construction here is fallible - an executable
// document whose operations reference absent types or fragments isn't
// useful to any downstream consumer, so FromAST returns the first
// structural violation it finds instead of a diagnostic list.
package executable

import "github.com/gqlcore/gqlcore/ast"

// Document is a validated executable document: its operations (indexed
// by name, with at most one anonymous operation) and fragments (unique
// names), spec §3 "ExecutableDocument".
type Document struct {
	Operations       []*ast.OperationDefinition
	OperationsByName map[ast.Name]*ast.OperationDefinition
	AnonymousOp      *ast.OperationDefinition
	Fragments        map[ast.Name]*ast.FragmentDefinition
}

// Operation looks up an operation by name, or returns the document's
// sole anonymous operation when name is empty.
func (d *Document) Operation(name ast.Name) *ast.OperationDefinition {
	if name == "" {
		return d.AnonymousOp
	}
	return d.OperationsByName[name]
}
