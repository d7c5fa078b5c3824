package lexer_test

import (
	"testing"

	"github.com/gqlcore/gqlcore/cst"
	"github.com/gqlcore/gqlcore/lexer"
)

func collect(src string, opts ...lexer.Option) []lexer.Token {
	l := lexer.New([]byte(src), opts...)
	var toks []lexer.Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Kind == cst.EOF {
			return toks
		}
	}
}

func TestLexerPunctuators(t *testing.T) {
	src := "{ } ( ) [ ] : = | @ ! $ & ..."
	want := []cst.Kind{
		cst.LBrace, cst.Whitespace, cst.RBrace, cst.Whitespace,
		cst.LParen, cst.Whitespace, cst.RParen, cst.Whitespace,
		cst.LBracket, cst.Whitespace, cst.RBracket, cst.Whitespace,
		cst.Colon, cst.Whitespace, cst.Equals, cst.Whitespace,
		cst.Pipe, cst.Whitespace, cst.At, cst.Whitespace,
		cst.Bang, cst.Whitespace, cst.Dollar, cst.Whitespace,
		cst.Amp, cst.Whitespace, cst.Spread, cst.EOF,
	}
	toks := collect(src)
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Fatalf("token[%d]: got kind %v, want %v (text %q)", i, toks[i].Kind, k, toks[i].Text)
		}
	}
}

func TestLexerNamesAndKeywordLikeNames(t *testing.T) {
	for _, src := range []string{"hello", "_private", "query", "union", "Int42"} {
		toks := collect(src)
		if len(toks) != 2 {
			t.Fatalf("lexing %q: got %d tokens, want 2 (name + EOF): %v", src, len(toks), toks)
		}
		if toks[0].Kind != cst.Name {
			t.Fatalf("lexing %q: got kind %v, want Name", src, toks[0].Kind)
		}
		if toks[0].Text != src {
			t.Fatalf("lexing %q: got text %q", src, toks[0].Text)
		}
	}
}

func TestLexerNumbers(t *testing.T) {
	cases := []struct {
		src  string
		kind cst.Kind
	}{
		{"0", cst.IntValue},
		{"42", cst.IntValue},
		{"-17", cst.IntValue},
		{"3.14", cst.FloatValue},
		{"1e10", cst.FloatValue},
		{"1.5e-10", cst.FloatValue},
	}
	for _, c := range cases {
		toks := collect(c.src)
		if toks[0].Kind != c.kind {
			t.Fatalf("lexing %q: got kind %v, want %v", c.src, toks[0].Kind, c.kind)
		}
		if toks[0].Text != c.src {
			t.Fatalf("lexing %q: got text %q", c.src, toks[0].Text)
		}
	}
}

func TestLexerStrings(t *testing.T) {
	toks := collect(`"hello \"world\""`)
	if toks[0].Kind != cst.StringValue {
		t.Fatalf("got kind %v, want StringValue", toks[0].Kind)
	}

	toks = collect(`"""
	block string
	"""`)
	if toks[0].Kind != cst.StringValue {
		t.Fatalf("got kind %v, want StringValue for block string", toks[0].Kind)
	}
}

func TestLexerUnterminatedStringIsError(t *testing.T) {
	toks := collect(`"unterminated`)
	if toks[0].Kind != cst.Error {
		t.Fatalf("got kind %v, want Error", toks[0].Kind)
	}
}

func TestLexerIllegalByteResumesAfterError(t *testing.T) {
	toks := collect("a ~ b")
	var kinds []cst.Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	foundError := false
	foundSecondName := false
	for i, k := range kinds {
		if k == cst.Error {
			foundError = true
		}
		if foundError && k == cst.Name && toks[i].Text == "b" {
			foundSecondName = true
		}
	}
	if !foundError || !foundSecondName {
		t.Fatalf("expected an Error token followed by a resumed Name token, got %v", toks)
	}
}

func TestLexerCommentsAndIgnoredTokensAreTrivia(t *testing.T) {
	toks := collect("a, # a comment\n b")
	var sawComment bool
	for _, tok := range toks {
		if tok.Kind == cst.Comment {
			sawComment = true
		}
	}
	if !sawComment {
		t.Fatalf("expected a Comment token, got %v", toks)
	}
}

func TestLossless(t *testing.T) {
	src := "type Query {\n  hello: String! # comment\n}\n"
	toks := collect(src)
	if !lexer.Lossless([]byte(src), toks) {
		t.Fatalf("lexer output is not lossless for %q", src)
	}
}

func TestTokenLimitEmitsErrorAndTracksHighWaterMark(t *testing.T) {
	l := lexer.New([]byte("a b c d"), lexer.WithTokenLimit(2))
	var kinds []cst.Kind
	for {
		tok := l.Next()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == cst.EOF {
			break
		}
	}
	if kinds[len(kinds)-2] != cst.Error {
		t.Fatalf("expected the token before EOF to be Error once the limit trips, got %v", kinds)
	}
	if l.TokensReached() != 2 {
		t.Fatalf("got TokensReached() = %d, want 2", l.TokensReached())
	}
}
