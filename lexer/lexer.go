// Package lexer turns GraphQL source bytes into a token stream. It
// implements C1 of the compiler: a lazy, restartable lexer that never
// fails — illegal input becomes an Error token and lexing resumes at the
// next safe boundary — and that treats whitespace and comments as
// first-class tokens so the CST built on top of it stays lossless.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/gqlcore/gqlcore/cst"
)

// Token is one lexical unit: a kind plus the exact source bytes it
// covers. Lexer tokens use cst.Kind directly (rather than a parallel
// "TokenKind" enum) since every token the lexer emits already names one
// of the leaf kinds in that enum; only the parser ever needs to relabel
// a token (e.g. a Name token whose text is "union" becomes cst.UnionKW
// when bumped into the tree), and it does that by constructing a new
// cst.Token with the relabeled kind, not by widening this type.
type Token struct {
	Kind  cst.Kind
	Start uint32
	Text  string
}

// End returns the exclusive end offset of the token.
func (t Token) End() uint32 { return t.Start + uint32(len(t.Text)) }

// Option configures a Lexer.
type Option func(*Lexer)

// WithTokenLimit caps the number of non-trivia tokens a Lexer will
// return before it finalizes the stream with an Error token (spec
// §4.1). A limit of 0 means unbounded.
func WithTokenLimit(n int) Option {
	return func(l *Lexer) { l.tokenLimit = n }
}

// Lexer produces a token stream from a byte slice. It holds no state
// beyond a cursor and a trivia-free token counter, so re-creating a
// Lexer at any byte offset (e.g. `New(src[off:])`) and lexing forward
// resumes as if the whole input had been lexed from there — the
// "restartable" requirement in spec §4.1.
type Lexer struct {
	src        []byte
	pos        uint32
	tokenLimit int
	tokenCount int
	tokensHigh int
	done       bool
}

// New returns a Lexer over src.
func New(src []byte, opts ...Option) *Lexer {
	l := &Lexer{src: src}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// TokensReached reports the high-water mark of non-trivia tokens
// emitted, regardless of whether the limit was tripped (spec §4.1).
func (l *Lexer) TokensReached() int { return l.tokensHigh }

// Next returns the next token, or a Token with Kind cst.EOF once the
// input is exhausted. Next never returns an error; malformed input
// surfaces as a Token with Kind cst.Error.
func (l *Lexer) Next() Token {
	if l.done {
		return Token{Kind: cst.EOF, Start: l.pos, Text: ""}
	}
	if l.pos >= uint32(len(l.src)) {
		l.done = true
		return Token{Kind: cst.EOF, Start: l.pos, Text: ""}
	}

	if tok, ok := l.lexTrivia(); ok {
		return tok
	}

	if l.tokenLimit > 0 && l.tokenCount >= l.tokenLimit {
		start := l.pos
		l.pos = uint32(len(l.src))
		l.done = true
		return Token{Kind: cst.Error, Start: start, Text: string(l.src[start:])}
	}

	tok := l.lexSignificant()
	l.tokenCount++
	if l.tokenCount > l.tokensHigh {
		l.tokensHigh = l.tokenCount
	}
	return tok
}

func (l *Lexer) lexTrivia() (Token, bool) {
	start := l.pos
	const bom = "\xEF\xBB\xBF" // UTF-8 byte order mark
	switch {
	case isIgnored(l.src[l.pos]) || l.rest(l.pos, 3) == bom:
		// GraphQL treats commas and BOM as "ignored tokens" alongside
		// whitespace; they carry no semantic meaning but must still
		// round-trip for losslessness, so they're folded into the
		// WHITESPACE token kind rather than dropped.
		for l.pos < uint32(len(l.src)) {
			if isIgnored(l.src[l.pos]) {
				l.pos++
			} else if l.rest(l.pos, 3) == bom {
				l.pos += 3
			} else {
				break
			}
		}
		return Token{Kind: cst.Whitespace, Start: start, Text: string(l.src[start:l.pos])}, true
	case l.src[l.pos] == '#':
		for l.pos < uint32(len(l.src)) && l.src[l.pos] != '\n' && l.src[l.pos] != '\r' {
			l.pos++
		}
		return Token{Kind: cst.Comment, Start: start, Text: string(l.src[start:l.pos])}, true
	}
	return Token{}, false
}

func isIgnored(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', ',':
		return true
	}
	return false
}

func (l *Lexer) lexSignificant() Token {
	start := l.pos
	b := l.src[l.pos]

	switch b {
	case '{':
		l.pos++
		return Token{cst.LBrace, start, "{"}
	case '}':
		l.pos++
		return Token{cst.RBrace, start, "}"}
	case '(':
		l.pos++
		return Token{cst.LParen, start, "("}
	case ')':
		l.pos++
		return Token{cst.RParen, start, ")"}
	case '[':
		l.pos++
		return Token{cst.LBracket, start, "["}
	case ']':
		l.pos++
		return Token{cst.RBracket, start, "]"}
	case ':':
		l.pos++
		return Token{cst.Colon, start, ":"}
	case '=':
		l.pos++
		return Token{cst.Equals, start, "="}
	case '|':
		l.pos++
		return Token{cst.Pipe, start, "|"}
	case '@':
		l.pos++
		return Token{cst.At, start, "@"}
	case '!':
		l.pos++
		return Token{cst.Bang, start, "!"}
	case '$':
		l.pos++
		return Token{cst.Dollar, start, "$"}
	case '&':
		l.pos++
		return Token{cst.Amp, start, "&"}
	case '.':
		if l.rest(start, 3) == "..." {
			l.pos += 3
			return Token{cst.Spread, start, "..."}
		}
		l.pos++
		return Token{cst.Error, start, "."}
	case '"':
		return l.lexString(start)
	}

	if isNameStart(b) {
		return l.lexName(start)
	}
	if b == '-' || isDigit(b) {
		return l.lexNumber(start)
	}

	// Unrecognized byte: consume one rune as an Error token and resume
	// lexing at the next byte, per spec §4.1 ("illegal character yields
	// an Error token ... lexing continues at the next safe boundary").
	_, size := utf8.DecodeRune(l.src[l.pos:])
	if size == 0 {
		size = 1
	}
	l.pos += uint32(size)
	return Token{cst.Error, start, string(l.src[start:l.pos])}
}

func (l *Lexer) rest(from uint32, n int) string {
	end := from + uint32(n)
	if end > uint32(len(l.src)) {
		return ""
	}
	return string(l.src[from:end])
}

func isNameStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isNameContinue(b byte) bool {
	return isNameStart(b) || isDigit(b)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func (l *Lexer) lexName(start uint32) Token {
	l.pos++ // isNameStart already matched one byte
	for l.pos < uint32(len(l.src)) && isNameContinue(l.src[l.pos]) {
		l.pos++
	}
	return Token{cst.Name, start, string(l.src[start:l.pos])}
}

// lexNumber lexes IntValue and FloatValue per the June 2018 grammar:
//
//	IntValue   := -? IntegerPart
//	IntegerPart := 0 | NonZeroDigit Digit*
//	FloatValue := IntValue (FractionalPart ExponentPart? | ExponentPart)
func (l *Lexer) lexNumber(start uint32) Token {
	if l.src[l.pos] == '-' {
		l.pos++
	}
	if l.pos >= uint32(len(l.src)) || !isDigit(l.src[l.pos]) {
		return Token{cst.Error, start, string(l.src[start:l.pos])}
	}
	if l.src[l.pos] == '0' {
		l.pos++
	} else {
		for l.pos < uint32(len(l.src)) && isDigit(l.src[l.pos]) {
			l.pos++
		}
	}

	isFloat := false
	if l.pos < uint32(len(l.src)) && l.src[l.pos] == '.' {
		isFloat = true
		l.pos++
		digits := l.pos
		for l.pos < uint32(len(l.src)) && isDigit(l.src[l.pos]) {
			l.pos++
		}
		if l.pos == digits {
			return Token{cst.Error, start, string(l.src[start:l.pos])}
		}
	}
	if l.pos < uint32(len(l.src)) && (l.src[l.pos] == 'e' || l.src[l.pos] == 'E') {
		isFloat = true
		l.pos++
		if l.pos < uint32(len(l.src)) && (l.src[l.pos] == '+' || l.src[l.pos] == '-') {
			l.pos++
		}
		digits := l.pos
		for l.pos < uint32(len(l.src)) && isDigit(l.src[l.pos]) {
			l.pos++
		}
		if l.pos == digits {
			return Token{cst.Error, start, string(l.src[start:l.pos])}
		}
	}

	kind := cst.IntValue
	if isFloat {
		kind = cst.FloatValue
	}
	return Token{kind, start, string(l.src[start:l.pos])}
}

// lexString lexes both single-quoted StringValue and the triple-quoted
// block string form, emitting either as one StringValue token carrying
// its raw (unescaped) contents, per spec §4.1.
func (l *Lexer) lexString(start uint32) Token {
	if l.rest(start, 3) == `"""` {
		return l.lexBlockString(start)
	}

	l.pos++ // opening quote
	for {
		if l.pos >= uint32(len(l.src)) {
			return Token{cst.Error, start, string(l.src[start:l.pos])}
		}
		b := l.src[l.pos]
		if b == '\n' || b == '\r' {
			return Token{cst.Error, start, string(l.src[start:l.pos])}
		}
		if b == '\\' {
			l.pos++
			if l.pos >= uint32(len(l.src)) {
				return Token{cst.Error, start, string(l.src[start:l.pos])}
			}
			l.pos++
			continue
		}
		if b == '"' {
			l.pos++
			return Token{cst.StringValue, start, string(l.src[start:l.pos])}
		}
		l.pos++
	}
}

func (l *Lexer) lexBlockString(start uint32) Token {
	l.pos += 3
	for {
		if l.pos >= uint32(len(l.src)) {
			return Token{cst.Error, start, string(l.src[start:l.pos])}
		}
		if l.rest(l.pos, 3) == `"""` {
			l.pos += 3
			return Token{cst.StringValue, start, string(l.src[start:l.pos])}
		}
		if l.src[l.pos] == '\\' && l.rest(l.pos, 4) == `\"""` {
			l.pos += 4
			continue
		}
		l.pos++
	}
}

// Lossless asserts the property in spec §8: concatenating every token
// of toks reproduces src exactly. It's exposed for property tests, not
// used by the lexer itself.
func Lossless(src []byte, toks []Token) bool {
	var sb strings.Builder
	for _, t := range toks {
		sb.WriteString(t.Text)
	}
	return sb.String() == string(src)
}
