package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gqlcore/gqlcore/cst"
	"github.com/gqlcore/gqlcore/parser"
)

// firstDefinition returns the Document's sole top-level child node.
func firstDefinition(t *testing.T, root cst.Element) *cst.Node {
	t.Helper()
	doc, ok := root.(*cst.Node)
	require.True(t, ok)
	for _, c := range doc.Children() {
		if n, ok := c.(*cst.Node); ok {
			return n
		}
	}
	t.Fatal("document has no node children")
	return nil
}

// These mirror the six UnionTypeDefinition seed scenarios in spec §8
// verbatim, checked structurally (kind, span, error count/messages)
// rather than against a hand-transcribed full-tree rendering, so a
// harmless change in cst.Render's formatting can't spuriously break them.

func TestUnionSeed1_FullDefinitionNoErrors(t *testing.T) {
	src := "union SearchResult = Photo | Person"
	res := parser.Parse(parserTestFile, []byte(src))
	require.Empty(t, res.Diagnostics)

	def := firstDefinition(t, res.Root)
	require.Equal(t, cst.UNION_TYPE_DEFINITION, def.Kind())
	require.EqualValues(t, 0, def.Start())
	require.EqualValues(t, len(src), def.End())

	members := def.FirstNode(cst.UNION_MEMBER_TYPES)
	require.NotNil(t, members)
	require.Len(t, members.ChildrenOfKind(cst.NAMED_TYPE), 2)
	require.Len(t, members.ChildrenOfKind(cst.Pipe), 1)
}

func TestUnionSeed2_MissingNameOneError(t *testing.T) {
	src := "union = Photo | Person"
	res := parser.Parse(parserTestFile, []byte(src))
	require.Len(t, res.Diagnostics, 1)
	require.Equal(t, "expected a Name", res.Diagnostics[0].Message)
	require.EqualValues(t, 0, res.Diagnostics[0].Primary.Start)
	require.EqualValues(t, 1, res.Diagnostics[0].Primary.Length)

	def := firstDefinition(t, res.Root)
	require.Equal(t, cst.UNION_TYPE_DEFINITION, def.Kind())
	require.NotNil(t, def.FirstNode(cst.UNION_MEMBER_TYPES))
}

func TestUnionSeed3_BareEqualsTwoErrors(t *testing.T) {
	src := "union = "
	res := parser.Parse(parserTestFile, []byte(src))
	require.Len(t, res.Diagnostics, 2)
	require.Equal(t, "expected a Name", res.Diagnostics[0].Message)
	require.Equal(t, "expected Union Member Types", res.Diagnostics[1].Message)

	def := firstDefinition(t, res.Root)
	require.Equal(t, cst.UNION_TYPE_DEFINITION, def.Kind())
	require.EqualValues(t, 0, def.Start())
	require.EqualValues(t, len(src), def.End())

	members := def.FirstNode(cst.UNION_MEMBER_TYPES)
	require.NotNil(t, members)
	require.EqualValues(t, 6, members.Start())
	require.EqualValues(t, 8, members.End())
	require.Empty(t, members.ChildrenOfKind(cst.NAMED_TYPE))
}

func TestUnionSeed4_ExtensionWithDirectiveNoErrors(t *testing.T) {
	src := "extend union SearchResult @deprecated = Photo | Person"
	res := parser.Parse(parserTestFile, []byte(src))
	require.Empty(t, res.Diagnostics)

	def := firstDefinition(t, res.Root)
	require.Equal(t, cst.UNION_TYPE_EXTENSION, def.Kind())
	require.EqualValues(t, 0, def.Start())
	require.EqualValues(t, len(src), def.End())
	require.NotNil(t, def.FirstNode(cst.DIRECTIVES))
	require.NotNil(t, def.FirstNode(cst.UNION_MEMBER_TYPES))
}

func TestUnionSeed5_ExtensionMissingNameOneError(t *testing.T) {
	src := "extend union = Photo | Person"
	res := parser.Parse(parserTestFile, []byte(src))
	require.Len(t, res.Diagnostics, 1)
	require.Equal(t, "expected a Name", res.Diagnostics[0].Message)

	def := firstDefinition(t, res.Root)
	require.Equal(t, cst.UNION_TYPE_EXTENSION, def.Kind())
	require.NotNil(t, def.FirstNode(cst.UNION_MEMBER_TYPES))
}

func TestUnionSeed6_ExtensionNameOnlyOneError(t *testing.T) {
	src := "extend union SearchResult"
	res := parser.Parse(parserTestFile, []byte(src))
	require.Len(t, res.Diagnostics, 1)
	require.Equal(t, "expected Directives or Union Member Types", res.Diagnostics[0].Message)

	def := firstDefinition(t, res.Root)
	require.Equal(t, cst.UNION_TYPE_EXTENSION, def.Kind())
	require.Nil(t, def.FirstNode(cst.DIRECTIVES))
	require.Nil(t, def.FirstNode(cst.UNION_MEMBER_TYPES))
}
