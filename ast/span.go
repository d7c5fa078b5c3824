package ast

import (
	"github.com/gqlcore/gqlcore/cst"
	"github.com/gqlcore/gqlcore/diagnostic"
)

// Span locates an AST node in its originating file, carried forward from
// the CST element it was lowered from (spec §4.3: "Spans are preserved
// by carrying (FileId, byte_start, byte_length) into each AST node").
type Span struct {
	File   diagnostic.FileID
	Start  uint32
	Length uint32
}

func (s Span) End() uint32 { return s.Start + s.Length }

// ToDiagnostic converts a Span to a diagnostic.Span, for builders that
// need to anchor a Diagnostic at an AST node.
func (s Span) ToDiagnostic() diagnostic.Span {
	return diagnostic.Span{File: s.File, Start: s.Start, Length: s.Length}
}

func spanOf(file diagnostic.FileID, e cst.Element) Span {
	if e == nil {
		return Span{File: file}
	}
	return Span{File: file, Start: e.Start(), Length: e.End() - e.Start()}
}
