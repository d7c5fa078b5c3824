package cst

// Builder assembles a green tree from a stream of start/finish events and
// bumped tokens. The parser opens a node, bumps zero or more tokens or
// child nodes into it, then finishes it; Builder guarantees every start
// has a matching finish by construction (there is no way to call
// Finish without a corresponding open frame, and Builder panics if one
// is attempted, which would be a parser bug rather than a user error).
type Builder struct {
	stack [][]Element
}

// NewBuilder returns a Builder ready to build a single tree rooted at
// whatever kind the first StartNode call supplies.
func NewBuilder() *Builder {
	return &Builder{stack: [][]Element{{}}}
}

// StartNode opens a new node frame. Every StartNode must be paired with
// a FinishNode once all of the node's children have been bumped.
func (b *Builder) StartNode() {
	b.stack = append(b.stack, nil)
}

// Token appends a leaf token to the node currently being built.
func (b *Builder) Token(kind Kind, start uint32, text string) {
	top := len(b.stack) - 1
	b.stack[top] = append(b.stack[top], NewToken(kind, start, text))
}

// FinishNode closes the current node frame, wraps its accumulated
// children in a Node of the given kind, and appends that Node to the
// parent frame. If the frame has no children, emptyAt supplies the
// zero-length span offset for the resulting node.
func (b *Builder) FinishNode(kind Kind, emptyAt uint32) *Node {
	if len(b.stack) < 2 {
		panic("cst: FinishNode without a matching StartNode")
	}
	top := len(b.stack) - 1
	children := b.stack[top]
	b.stack = b.stack[:top]

	var node *Node
	if len(children) == 0 {
		node = NewEmptyNode(kind, emptyAt)
	} else {
		node = NewNode(kind, children)
	}

	parent := len(b.stack) - 1
	b.stack[parent] = append(b.stack[parent], node)
	return node
}

// PopLast removes and returns the most recently appended child of the
// currently open frame. Used by productions (like NonNullType) that
// only learn they need to wrap an already-finished sibling once a
// trailing token is discovered.
func (b *Builder) PopLast() Element {
	top := len(b.stack) - 1
	n := len(b.stack[top])
	last := b.stack[top][n-1]
	b.stack[top] = b.stack[top][:n-1]
	return last
}

// DiscardFrame closes the current node frame without wrapping its
// (expected to be empty, since callers pop every child out first)
// contents into a node. Used when a production speculatively opens a
// node, then discovers it doesn't need the wrapper after all (see
// aliasOrName, which opens a frame for a possible Alias and throws it
// away when no ':' follows).
func (b *Builder) DiscardFrame() {
	top := len(b.stack) - 1
	b.stack = b.stack[:top]
}

// Reattach appends an Element (typically one just removed with PopLast)
// as a child of the currently open frame.
func (b *Builder) Reattach(e Element) {
	top := len(b.stack) - 1
	b.stack[top] = append(b.stack[top], e)
}

// Finish closes the implicit root frame and returns the single element
// it contains. Called once, after the outermost StartNode/FinishNode
// pair for the document has completed.
func (b *Builder) Finish() Element {
	if len(b.stack) != 1 {
		panic("cst: Finish called with unbalanced StartNode/FinishNode calls")
	}
	if len(b.stack[0]) != 1 {
		panic("cst: Finish expects exactly one root element")
	}
	return b.stack[0][0]
}
