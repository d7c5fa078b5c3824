package executable

import (
	"github.com/gqlcore/gqlcore/ast"
	"github.com/gqlcore/gqlcore/diagnostic"
)

// TypeError is the one fallible outcome in the whole pipeline (spec §7:
// "only executable_document is fallible") - the first structural
// violation FromAST encounters, with a span into the offending file.
type TypeError struct {
	Message string
	Span    diagnostic.Span
}

func (e *TypeError) Error() string { return e.Message }

func typeErr(msg string, span ast.Span) *TypeError {
	return &TypeError{Message: msg, Span: span.ToDiagnostic()}
}
