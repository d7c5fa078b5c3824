package schema_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gqlcore/gqlcore/ast"
	"github.com/gqlcore/gqlcore/diagnostic"
	"github.com/gqlcore/gqlcore/parser"
	"github.com/gqlcore/gqlcore/schema"
)

var testFile = diagnostic.FileID{1}

func parseDoc(t *testing.T, src string) *ast.Document {
	t.Helper()
	res := parser.Parse(testFile, []byte(src))
	require.Empty(t, res.Diagnostics, "unexpected syntax errors in %q", src)
	return ast.FromCST(testFile, res.Root)
}

func TestBuildSimpleSchema(t *testing.T) {
	doc := parseDoc(t, `
		type Query {
			hello: String!
			friend: Person
		}

		type Person {
			name: String!
			friends: [Person!]!
		}
	`)

	b := schema.NewBuilder()
	b.AddDocument(doc)
	s, diags := b.Build()
	require.Empty(t, diags)
	require.NotNil(t, s.Query)

	hello := s.Query.Fields.Get(ast.Intern("hello"))
	require.NotNil(t, hello)
	nonNull, ok := hello.Type.(*schema.NonNull)
	require.True(t, ok)
	scalar, ok := nonNull.OfType.(*schema.Scalar)
	require.True(t, ok)
	require.Equal(t, ast.Intern("String"), scalar.Name)
}

func TestBuildMergesExtension(t *testing.T) {
	doc := parseDoc(t, `
		type Query { hello: String }
		extend type Query { world: String }
	`)

	b := schema.NewBuilder()
	b.AddDocument(doc)
	s, diags := b.Build()
	require.Empty(t, diags)
	require.NotNil(t, s.Query.Fields.Get(ast.Intern("world")))
}

func TestBuildReportsOrphanExtension(t *testing.T) {
	doc := parseDoc(t, `extend type Ghost { field: String }`)

	b := schema.NewBuilder()
	b.AddDocument(doc)
	_, diags := b.Build()
	require.Len(t, diags, 1)
	require.Equal(t, diagnostic.KindTypeError, diags[0].Kind)
}

func TestBuildReportsRedefinition(t *testing.T) {
	doc := parseDoc(t, `
		type Query { hello: String }
		type Query { world: String }
	`)

	b := schema.NewBuilder()
	b.AddDocument(doc)
	_, diags := b.Build()
	require.Len(t, diags, 1)
}

func TestImplementersMapAndIsSubtype(t *testing.T) {
	doc := parseDoc(t, `
		type Query { node: Node }
		interface Node { id: ID! }
		type User implements Node { id: ID! name: String }
		type Post implements Node { id: ID! title: String }
		union Content = User | Post
	`)

	b := schema.NewBuilder()
	b.AddDocument(doc)
	s, diags := b.Build()
	require.Empty(t, diags)

	impls := schema.ImplementersMap(s)
	require.ElementsMatch(t, []ast.Name{ast.Intern("User"), ast.Intern("Post")}, impls[ast.Intern("Node")])

	require.True(t, schema.IsSubtype(s, ast.Intern("User"), ast.Intern("Node")))
	require.True(t, schema.IsSubtype(s, ast.Intern("Post"), ast.Intern("Content")))
	require.False(t, schema.IsSubtype(s, ast.Intern("Query"), ast.Intern("Content")))
}

func TestBuildUnresolvedFieldType(t *testing.T) {
	doc := parseDoc(t, `type Query { hello: Missing }`)

	b := schema.NewBuilder()
	b.AddDocument(doc)
	_, diags := b.Build()
	require.Len(t, diags, 1)
	require.Contains(t, diags[0].Message, "unresolved type")
}
