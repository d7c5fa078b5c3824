// Package parser implements C2 of the compiler: a hand-written,
// recursive-descent, error-recovering parser that lowers a lexer.Token
// stream into a cst.Node tree plus a list of diagnostics. Every
// production that opens a node is written to guarantee a matching
// finish, even when the input doesn't match what was expected — see
// the UnionTypeDefinition worked example in uniontype.go, which every
// other definition production follows.
package parser

import (
	"github.com/gqlcore/gqlcore/cst"
	"github.com/gqlcore/gqlcore/diagnostic"
	"github.com/gqlcore/gqlcore/lexer"
)

// defaultRecursionLimit bounds nesting of recursive productions
// (selection sets, list/non-null types, list/object values) when the
// caller doesn't supply one, per spec §4.2 ("recursion limit defaults to
// implementation-defined constant when unset").
const defaultRecursionLimit = 500

// Option configures a Parser.
type Option func(*Parser)

// WithRecursionLimit overrides defaultRecursionLimit.
func WithRecursionLimit(n int) Option {
	return func(p *Parser) { p.maxDepth = n }
}

// WithTokenLimit caps the number of non-trivia tokens the underlying
// lexer will emit before the parse is forced to stop, per spec §4.1.
func WithTokenLimit(n int) Option {
	return func(p *Parser) { p.tokenLimit = n }
}

// lookahead is one buffered significant token together with the trivia
// tokens that precede it. Trivia is spliced into the tree right after
// the token before it is bumped (see bump), into the frame that token
// went to; peekAt can still look arbitrarily far ahead, because
// buffering an entry never touches the tree.
type lookahead struct {
	trivia []lexer.Token
	tok    lexer.Token
}

// Parser holds the mutable state of one parse: the lookahead queue, the
// tree builder, recursion bookkeeping, and the accumulated diagnostics.
type Parser struct {
	file diagnostic.FileID
	lex  *lexer.Lexer
	tok  lexer.Token // cached copy of queue[0].tok, kept in sync by fill/bump
	queue []lookahead

	builder *cst.Builder

	maxDepth   int
	depth      int
	depthHigh  int
	tokenLimit int

	diags []diagnostic.Diagnostic
}

// Result is everything a parse produces: the CST root, the diagnostic
// list, and the recursion/token high-water marks (spec §4.1, §4.2).
type Result struct {
	Root             cst.Element
	Diagnostics      []diagnostic.Diagnostic
	RecursionReached int
	TokensReached    int
}

// Parse lexes and parses src for file, producing a Result. Parsing is
// total: it always returns a CST and never an error value (spec §7).
func Parse(file diagnostic.FileID, src []byte, opts ...Option) Result {
	p := &Parser{
		file:     file,
		maxDepth: defaultRecursionLimit,
		builder:  cst.NewBuilder(),
	}
	for _, opt := range opts {
		opt(p)
	}
	var lexOpts []lexer.Option
	if p.tokenLimit > 0 {
		lexOpts = append(lexOpts, lexer.WithTokenLimit(p.tokenLimit))
	}
	p.lex = lexer.New(src, lexOpts...)

	root := p.parseDocument()

	return Result{
		Root:             root,
		Diagnostics:      p.diags,
		RecursionReached: p.depthHigh,
		TokensReached:    p.lex.TokensReached(),
	}
}

// fetchOne lexes one more lookahead entry (its leading trivia plus the
// significant token that follows) and appends it to the queue.
func (p *Parser) fetchOne() {
	var trivia []lexer.Token
	for {
		t := p.lex.Next()
		if t.Kind.IsTrivia() {
			trivia = append(trivia, t)
			continue
		}
		p.queue = append(p.queue, lookahead{trivia: trivia, tok: t})
		return
	}
}

// ensure guarantees the queue holds at least n+1 entries, so queue[n]
// can be inspected without consuming anything.
func (p *Parser) ensure(n int) {
	for len(p.queue) <= n {
		p.fetchOne()
	}
}

// fill primes the lookahead queue so p.tok reflects the first
// significant token, splicing any trivia ahead of it into the currently
// open node. Called once, before parsing the first definition; every
// later refill happens inside bump.
func (p *Parser) fill() {
	p.ensure(0)
	for _, tr := range p.queue[0].trivia {
		p.builder.Token(tr.Kind, tr.Start, tr.Text)
	}
	p.queue[0].trivia = nil
	p.tok = p.queue[0].tok
}

// peek returns the kind of the current lookahead token.
func (p *Parser) peek() cst.Kind { return p.tok.Kind }

// peekText returns the text of the current lookahead token.
func (p *Parser) peekText() string { return p.tok.Text }

// peekAt returns the n-th token ahead of the current lookahead without
// consuming anything (n == 0 is equivalent to the current token). Used
// by productions that must decide which keyword follows a Description
// or an "extend" before committing to a production.
func (p *Parser) peekAt(n int) lexer.Token {
	p.ensure(n)
	return p.queue[n].tok
}

// peekTextAt returns the text of the n-th token ahead of the current
// lookahead.
func (p *Parser) peekTextAt(n int) string {
	return p.peekAt(n).Text
}

// atKeyword reports whether the lookahead is a Name token whose text
// matches kw. GraphQL keywords (union, extend, query, ...) are not
// reserved words lexically — they're ordinary Name tokens the parser
// recognizes contextually, exactly as the teacher's own internal/schema
// package does with ConsumeKeyword/ConsumeIdent string comparisons.
func (p *Parser) atKeyword(kw string) bool {
	return p.tok.Kind == cst.Name && p.tok.Text == kw
}

// bump unconditionally consumes the lookahead token, relabels it to
// kind, and appends it as a token child of the currently open node. The
// trivia that follows it (buffered with the next lookahead entry) is
// spliced in right after it, into the same node — this is what makes
// trailing trivia nest inside the node it trails, per the rendering seen
// in spec §8's seed scenarios.
func (p *Parser) bump(kind cst.Kind) {
	p.ensure(0)
	entry := p.queue[0]
	p.queue = p.queue[1:]
	for _, tr := range entry.trivia {
		p.builder.Token(tr.Kind, tr.Start, tr.Text)
	}
	p.builder.Token(kind, entry.tok.Start, entry.tok.Text)

	p.ensure(0)
	for _, tr := range p.queue[0].trivia {
		p.builder.Token(tr.Kind, tr.Start, tr.Text)
	}
	p.queue[0].trivia = nil
	p.tok = p.queue[0].tok
}

// bumpAny bumps the lookahead token using its own lexical kind.
func (p *Parser) bumpAny() {
	p.bump(p.tok.Kind)
}

// expect consumes the lookahead if it matches kind, returning true. If
// it doesn't match, it emits "expected <what>" anchored at the current
// token without consuming it, and returns false, letting the calling
// production keep going (spec §4.2's error model).
func (p *Parser) expect(kind cst.Kind, what string) bool {
	if p.tok.Kind == kind {
		p.bump(kind)
		return true
	}
	p.err("expected " + what)
	return false
}

// err records a SyntaxError diagnostic anchored at the current
// lookahead token.
func (p *Parser) err(message string) {
	length := p.tok.End() - p.tok.Start
	span := diagnostic.Span{File: p.file, Start: p.tok.Start, Length: length}
	p.diags = append(p.diags, diagnostic.New(diagnostic.KindSyntaxError, span, message))
}

// enter tracks recursion depth for productions that can nest arbitrarily
// deep (selection sets, list/non-null types, list/object values). It
// returns false - leaving depth unchanged - once maxDepth would be
// exceeded, recording a LimitExceeded diagnostic at the current token
// each time it refuses; the caller must then return to its enclosing
// production without descending (spec §4.2).
func (p *Parser) enter() bool {
	p.depth++
	if p.depth > p.depthHigh {
		p.depthHigh = p.depth
	}
	if p.depth > p.maxDepth {
		p.depth--
		span := diagnostic.Span{File: p.file, Start: p.tok.Start, Length: p.tok.End() - p.tok.Start}
		p.diags = append(p.diags, diagnostic.New(diagnostic.KindLimitExceeded, span,
			"recursion limit exceeded"))
		return false
	}
	return true
}

func (p *Parser) leave() { p.depth-- }
