package executable_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gqlcore/gqlcore/ast"
	"github.com/gqlcore/gqlcore/diagnostic"
	"github.com/gqlcore/gqlcore/executable"
	"github.com/gqlcore/gqlcore/parser"
	"github.com/gqlcore/gqlcore/schema"
)

var execTestFile = diagnostic.FileID{2}

func execParseDoc(t *testing.T, src string) *ast.Document {
	t.Helper()
	res := parser.Parse(execTestFile, []byte(src))
	require.Empty(t, res.Diagnostics, "unexpected syntax errors in %q", src)
	return ast.FromCST(execTestFile, res.Root)
}

func buildTestSchema(t *testing.T) *schema.Schema {
	t.Helper()
	doc := execParseDoc(t, `
		type Query {
			hero(episode: String): Character
		}
		type Character {
			name: String
			friends: [Character]
		}
	`)
	b := schema.NewBuilder()
	b.AddDocument(doc)
	s, diags := b.Build()
	require.Empty(t, diags)
	return s
}

func TestFromASTAcceptsValidDocument(t *testing.T) {
	s := buildTestSchema(t)
	doc := execParseDoc(t, `
		query Hero($ep: String) {
			hero(episode: $ep) {
				name
				...FriendFields
			}
		}
		fragment FriendFields on Character {
			friends { name }
		}
	`)
	execDoc, typeErr := executable.FromAST(s, doc)
	require.Nil(t, typeErr)
	require.NotNil(t, execDoc.Operation(ast.Intern("Hero")))
	require.Contains(t, execDoc.Fragments, ast.Intern("FriendFields"))
}

func TestFromASTRejectsDuplicateOperationNames(t *testing.T) {
	s := buildTestSchema(t)
	doc := execParseDoc(t, `
		query Hero { hero { name } }
		query Hero { hero { name } }
	`)
	_, typeErr := executable.FromAST(s, doc)
	require.NotNil(t, typeErr)
	require.Contains(t, typeErr.Error(), "duplicate operation")
}

func TestFromASTRejectsMultipleAnonymousOperations(t *testing.T) {
	s := buildTestSchema(t)
	doc := execParseDoc(t, `
		{ hero { name } }
		{ hero { name } }
	`)
	_, typeErr := executable.FromAST(s, doc)
	require.NotNil(t, typeErr)
	require.Contains(t, typeErr.Error(), "anonymous")
}

func TestFromASTRejectsUndefinedFragmentSpread(t *testing.T) {
	s := buildTestSchema(t)
	doc := execParseDoc(t, `
		query Hero { hero { ...Missing } }
	`)
	_, typeErr := executable.FromAST(s, doc)
	require.NotNil(t, typeErr)
	require.Contains(t, typeErr.Error(), "undefined fragment")
}

func TestFromASTRejectsUndeclaredVariable(t *testing.T) {
	s := buildTestSchema(t)
	doc := execParseDoc(t, `
		query Hero { hero(episode: $ep) { name } }
	`)
	_, typeErr := executable.FromAST(s, doc)
	require.NotNil(t, typeErr)
	require.Contains(t, typeErr.Error(), "undeclared variable")
}

func TestFromASTChecksVariablesThroughFragmentSpreads(t *testing.T) {
	s := buildTestSchema(t)
	doc := execParseDoc(t, `
		query Hero($ep: String) {
			hero { ...UsesVar }
		}
		fragment UsesVar on Character {
			name @include(if: $missing)
		}
	`)
	_, typeErr := executable.FromAST(s, doc)
	require.NotNil(t, typeErr)
	require.Contains(t, typeErr.Error(), "undeclared variable")
}
