package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gqlcore/gqlcore/ast"
	"github.com/gqlcore/gqlcore/diagnostic"
	"github.com/gqlcore/gqlcore/parser"
)

var lowerTestFile = diagnostic.FileID{4}

func lower(src string) *ast.Document {
	res := parser.Parse(lowerTestFile, []byte(src))
	return ast.FromCST(lowerTestFile, res.Root)
}

func TestFromCSTLowersObjectTypeDefinition(t *testing.T) {
	doc := lower("type Query { hello: String! friends: [Person!] }")
	require.Len(t, doc.Definitions, 1)

	obj, ok := doc.Definitions[0].(*ast.ObjectTypeDefinition)
	require.True(t, ok)
	require.Equal(t, ast.Name("Query"), obj.Name)
	require.Len(t, obj.Fields, 2)
	require.Equal(t, ast.Name("hello"), obj.Fields[0].Name)

	nonNull, ok := obj.Fields[0].Type.(*ast.NonNullType)
	require.True(t, ok)
	named, ok := nonNull.Inner.(*ast.NamedType)
	require.True(t, ok)
	require.Equal(t, ast.Name("String"), named.Name)
}

func TestFromCSTLowersOperationWithVariablesAndFragmentSpread(t *testing.T) {
	doc := lower(`
		query Hero($ep: String) {
			hero(episode: $ep) {
				name
				...Friends
			}
		}
		fragment Friends on Character {
			friends { name }
		}
	`)
	require.Len(t, doc.Definitions, 2)

	op, ok := doc.Definitions[0].(*ast.OperationDefinition)
	require.True(t, ok)
	require.Equal(t, ast.Query, op.Operation)
	require.Equal(t, ast.Name("Hero"), op.Name)
	require.Len(t, op.Variables, 1)
	require.Equal(t, ast.Name("ep"), op.Variables[0].Name)

	field, ok := op.Selections[0].(*ast.Field)
	require.True(t, ok)
	require.Equal(t, ast.Name("hero"), field.Name)
	require.Len(t, field.Arguments, 1)
	v, ok := field.Arguments[0].Value.(*ast.Variable)
	require.True(t, ok)
	require.Equal(t, ast.Name("ep"), v.Name)

	var sawSpread bool
	for _, sel := range field.Selections {
		if spread, ok := sel.(*ast.FragmentSpread); ok {
			require.Equal(t, ast.Name("Friends"), spread.Name)
			sawSpread = true
		}
	}
	require.True(t, sawSpread)

	frag, ok := doc.Definitions[1].(*ast.FragmentDefinition)
	require.True(t, ok)
	require.Equal(t, ast.Name("Character"), frag.TypeCondition)
}

func TestFromCSTIsTotalOverMalformedInput(t *testing.T) {
	doc := lower("type Query { hello: ")
	require.NotPanics(t, func() { _ = doc.Definitions })
	require.NotNil(t, doc)
}

func TestNameInterningReusesUnderlyingValue(t *testing.T) {
	a := ast.Intern("Widget")
	b := ast.Intern("Widget")
	require.Equal(t, a, b)
	require.Equal(t, "Widget", a.String())
}
