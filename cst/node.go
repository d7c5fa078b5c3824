package cst

import (
	"strings"

	"github.com/gqlcore/gqlcore/diagnostic"
)

// Element is either a *Node (subtree) or a *Token (leaf). Both are
// immutable once built and safe to share across goroutines: Go's garbage
// collector plays the role the rowan/apollo-parser "green tree" plays
// with manual reference counting, so a *Node can be embedded in many
// parent trees (or handed to many callers) for the cost of a pointer
// copy, with no explicit refcount to manage.
type Element interface {
	Kind() Kind
	Start() uint32
	End() uint32
	isElement()
}

// Token is a leaf: a single lexical unit together with the exact source
// bytes it covers. Concatenating the Text of every Token in a tree, in
// order, reproduces the original source byte-for-byte (losslessness,
// spec §3/§8).
type Token struct {
	kind  Kind
	start uint32
	text  string
}

func NewToken(kind Kind, start uint32, text string) *Token {
	return &Token{kind: kind, start: start, text: text}
}

func (t *Token) Kind() Kind    { return t.kind }
func (t *Token) Start() uint32 { return t.start }
func (t *Token) End() uint32   { return t.start + uint32(len(t.text)) }
func (t *Token) Text() string  { return t.text }
func (*Token) isElement()      {}

// Node is a subtree: a syntactic construct (e.g. UNION_TYPE_DEFINITION)
// together with its ordered children, which may themselves be Nodes or
// Tokens. A Node's span is the union of its children's spans, computed
// once at construction time.
type Node struct {
	kind     Kind
	children []Element
	start    uint32
	end      uint32
}

// NewNode builds a Node from already-finished children. Children must be
// supplied in source order; the node's span is derived from them, so an
// empty-children Node needs its span supplied explicitly by the caller
// via NewEmptyNode.
func NewNode(kind Kind, children []Element) *Node {
	n := &Node{kind: kind, children: children}
	if len(children) > 0 {
		n.start = children[0].Start()
		n.end = children[len(children)-1].End()
	}
	return n
}

// NewEmptyNode builds a childless Node whose span is a zero-length point
// at offset, used when a production opens and closes a node without
// consuming anything (e.g. the NAME node of a definition whose name is
// missing).
func NewEmptyNode(kind Kind, offset uint32) *Node {
	return &Node{kind: kind, start: offset, end: offset}
}

func (n *Node) Kind() Kind          { return n.kind }
func (n *Node) Start() uint32       { return n.start }
func (n *Node) End() uint32         { return n.end }
func (n *Node) Children() []Element { return n.children }
func (*Node) isElement()            {}

// Span returns the diagnostic.Span of an Element within file.
func Span(file diagnostic.FileID, e Element) diagnostic.Span {
	return diagnostic.Span{File: file, Start: e.Start(), Length: e.End() - e.Start()}
}

// ChildrenOfKind returns every direct child of n with the given kind.
func (n *Node) ChildrenOfKind(kind Kind) []Element {
	var out []Element
	for _, c := range n.children {
		if c.Kind() == kind {
			out = append(out, c)
		}
	}
	return out
}

// FirstChild returns the first direct child of n with the given kind, or
// nil if none exists.
func (n *Node) FirstChild(kind Kind) Element {
	for _, c := range n.children {
		if c.Kind() == kind {
			return c
		}
	}
	return nil
}

// FirstToken returns the first direct child token with the given kind,
// or nil if none exists (either missing entirely or present as a Node,
// which would be a bug in the producing production).
func (n *Node) FirstToken(kind Kind) *Token {
	if e := n.FirstChild(kind); e != nil {
		if t, ok := e.(*Token); ok {
			return t
		}
	}
	return nil
}

// FirstNode returns the first direct child node with the given kind, or
// nil if none exists.
func (n *Node) FirstNode(kind Kind) *Node {
	if e := n.FirstChild(kind); e != nil {
		if c, ok := e.(*Node); ok {
			return c
		}
	}
	return nil
}

// Text concatenates the textual content of every token under n, in
// order. Available to any caller that needs the raw slice of source a
// node spans without going back to the original string, or that wants
// to check losslessness.
func Text(e Element) string {
	switch v := e.(type) {
	case *Token:
		return v.Text()
	case *Node:
		var sb strings.Builder
		for _, c := range v.children {
			sb.WriteString(Text(c))
		}
		return sb.String()
	default:
		return ""
	}
}
