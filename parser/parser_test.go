package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gqlcore/gqlcore/cst"
	"github.com/gqlcore/gqlcore/diagnostic"
	"github.com/gqlcore/gqlcore/parser"
)

var parserTestFile = diagnostic.FileID{3}

func render(src string) parser.Result {
	return parser.Parse(parserTestFile, []byte(src))
}

// flattenText concatenates every token's text in document order, which
// must reproduce the original source exactly (spec §4.2: the CST is
// lossless even over malformed input).
func flattenText(e cst.Element) string {
	var sb strings.Builder
	var walk func(cst.Element)
	walk = func(e cst.Element) {
		switch v := e.(type) {
		case *cst.Token:
			sb.WriteString(v.Text())
		case *cst.Node:
			for _, c := range v.Children() {
				walk(c)
			}
		}
	}
	walk(e)
	return sb.String()
}

func TestParseSimpleObjectTypeIsLossless(t *testing.T) {
	src := "type Query {\n  hello: String!\n}\n"
	res := render(src)
	require.Empty(t, res.Diagnostics)
	require.Equal(t, src, flattenText(res.Root))
}

func TestParseUnionTypeDefinition(t *testing.T) {
	src := "union SearchResult = Human | Droid | Starship"
	res := render(src)
	require.Empty(t, res.Diagnostics)
	require.Equal(t, src, flattenText(res.Root))

	node, ok := res.Root.(*cst.Node)
	require.True(t, ok)
	require.Equal(t, cst.DOCUMENT, node.Kind())
}

func TestParseRecoversFromMissingClosingBrace(t *testing.T) {
	src := "type Query { hello: String\ntype Other { world: String }"
	res := render(src)
	require.NotEmpty(t, res.Diagnostics, "missing brace should be reported")
	require.Equal(t, src, flattenText(res.Root), "parser must still produce a lossless tree on malformed input")
}

func TestParseRecoversFromIllegalCharacter(t *testing.T) {
	src := "type Query { hello~: String }"
	res := render(src)
	require.NotEmpty(t, res.Diagnostics)
	require.Equal(t, src, flattenText(res.Root))
}

func TestParseExecutableQueryWithFragment(t *testing.T) {
	src := "query Hero($ep: String) {\n  hero(episode: $ep) {\n    name\n    ...Friends\n  }\n}\n" +
		"fragment Friends on Character {\n  friends { name }\n}\n"
	res := render(src)
	require.Empty(t, res.Diagnostics)
	require.Equal(t, src, flattenText(res.Root))
}

func TestRecursionLimitStopsRunawayNesting(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("query {\n")
	depth := 1000
	for i := 0; i < depth; i++ {
		sb.WriteString("a { ")
	}
	sb.WriteString("b")
	for i := 0; i < depth; i++ {
		sb.WriteString(" }")
	}
	sb.WriteString("\n}")

	res := parser.Parse(parserTestFile, []byte(sb.String()), parser.WithRecursionLimit(50))
	require.Greater(t, res.RecursionReached, 0)
	var hasLimitDiag bool
	for _, d := range res.Diagnostics {
		if d.Kind == diagnostic.KindLimitExceeded {
			hasLimitDiag = true
		}
	}
	require.True(t, hasLimitDiag, "expected a LimitExceeded diagnostic once recursion limit is exceeded")
}

func TestTokenLimitStopsParsing(t *testing.T) {
	src := "type Query { a: String b: String c: String d: String }"
	res := parser.Parse(parserTestFile, []byte(src), parser.WithTokenLimit(3))
	require.NotEmpty(t, res.Diagnostics)
	require.LessOrEqual(t, res.TokensReached, 3)
}
