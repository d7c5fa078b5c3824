package db

import (
	"context"

	"github.com/gqlcore/gqlcore/ast"
	"github.com/gqlcore/gqlcore/cst"
	"github.com/gqlcore/gqlcore/diagnostic"
	"github.com/gqlcore/gqlcore/executable"
	"github.com/gqlcore/gqlcore/internal/incremental"
	"github.com/gqlcore/gqlcore/parser"
	"github.com/gqlcore/gqlcore/schema"
)

// parseResult is the shared recompute behind cst, ast, syntax_errors,
// recursion_reached, and tokens_reached (spec §4.5: those derived
// queries "share a cache entry" since they all fall out of one
// parser.Parse call). Each accessor below is a thin projection, so
// they're always consistent with one another and never independently
// stale. Every caller of this query - whether the top-level accessors
// or a dependent query like Schema - goes through the same
// fileKey("ast_parse_result", file) / computeParse pair, so there is
// exactly one cache entry per file, never two racing under the same
// key with different value types.
type parseResult struct {
	Root             cst.Element
	Document         *ast.Document
	SyntaxErrors     []diagnostic.Diagnostic
	RecursionReached int
	TokensReached    int
}

func (d *Database) computeParse(qc *incremental.QueryContext, file diagnostic.FileID) (parseResult, error) {
	src := readSourceCode(qc, file)
	recursionLimit := readRecursionLimit(qc)
	tokenLimit := readTokenLimit(qc)

	var opts []parser.Option
	if recursionLimit > 0 {
		opts = append(opts, parser.WithRecursionLimit(recursionLimit))
	}
	if tokenLimit > 0 {
		opts = append(opts, parser.WithTokenLimit(tokenLimit))
	}

	res := parser.Parse(file, []byte(src), opts...)
	return parseResult{
		Root:             res.Root,
		Document:         ast.FromCST(file, res.Root),
		SyntaxErrors:     res.Diagnostics,
		RecursionReached: res.RecursionReached,
		TokensReached:    res.TokensReached,
	}, nil
}

func (d *Database) parse(ctx context.Context, file diagnostic.FileID) (parseResult, error) {
	return incremental.Evaluate(ctx, d.engine, fileKey("ast_parse_result", file), func(qc *incremental.QueryContext) (parseResult, error) {
		return d.computeParse(qc, file)
	})
}

func (d *Database) parseDep(qc *incremental.QueryContext, file diagnostic.FileID) (parseResult, error) {
	return incremental.EvaluateDep(qc, fileKey("ast_parse_result", file), func(qc2 *incremental.QueryContext) (parseResult, error) {
		return d.computeParse(qc2, file)
	})
}

// CST returns file's parsed syntax tree.
func (d *Database) CST(ctx context.Context, file diagnostic.FileID) (cst.Element, error) {
	r, err := d.parse(ctx, file)
	return r.Root, err
}

// AST returns file's lowered document.
func (d *Database) AST(ctx context.Context, file diagnostic.FileID) (*ast.Document, error) {
	r, err := d.parse(ctx, file)
	return r.Document, err
}

// SyntaxErrors returns the parse-time diagnostics attached to file.
func (d *Database) SyntaxErrors(ctx context.Context, file diagnostic.FileID) ([]diagnostic.Diagnostic, error) {
	r, err := d.parse(ctx, file)
	return r.SyntaxErrors, err
}

// RecursionReached returns the recursion high-water mark recorded while
// parsing file.
func (d *Database) RecursionReached(ctx context.Context, file diagnostic.FileID) (int, error) {
	r, err := d.parse(ctx, file)
	return r.RecursionReached, err
}

// TokensReached returns the non-trivia token count recorded while
// parsing file.
func (d *Database) TokensReached(ctx context.Context, file diagnostic.FileID) (int, error) {
	r, err := d.parse(ctx, file)
	return r.TokensReached, err
}

type schemaResult struct {
	Schema *schema.Schema
	Diags  []diagnostic.Diagnostic
}

var schemaKey = incremental.Key{Query: "schema"}

// computeSchema folds every type_definition_files file's AST into one
// Builder, in file order (spec §4.4 step 1, supplemented from
// original_source/apollo-compiler's repr.rs: "schema() iterating
// type_definition_files() in order"). A file whose own parse failed to
// even produce an AST (never happens today - AST lowering is total,
// see ast.FromCST - but kept for when a future input-reading error
// makes computeParse itself fail) is simply skipped.
func (d *Database) computeSchema(qc *incremental.QueryContext) (schemaResult, error) {
	files := readTypeDefinitionFiles(qc)
	b := schema.NewBuilder()
	for _, f := range files {
		pr, err := d.parseDep(qc, f)
		if err != nil {
			continue
		}
		b.AddDocument(pr.Document)
	}
	s, diags := b.Build()
	return schemaResult{Schema: s, Diags: diags}, nil
}

// Schema builds the schema from every file in type_definition_files.
func (d *Database) Schema(ctx context.Context) (*schema.Schema, []diagnostic.Diagnostic, error) {
	r, err := incremental.Evaluate(ctx, d.engine, schemaKey, d.computeSchema)
	return r.Schema, r.Diags, err
}

func (d *Database) schemaDep(qc *incremental.QueryContext) (schemaResult, error) {
	return incremental.EvaluateDep(qc, schemaKey, d.computeSchema)
}

// ExecutableDocument builds file's executable document against the
// current schema, or returns the first structural TypeError found
// (spec §4.4, §7: "only executable_document is fallible").
func (d *Database) ExecutableDocument(ctx context.Context, file diagnostic.FileID) (*executable.Document, *executable.TypeError) {
	type result struct {
		Doc *executable.Document
		Err *executable.TypeError
	}
	r, _ := incremental.Evaluate(ctx, d.engine, fileKey("executable_document", file), func(qc *incremental.QueryContext) (result, error) {
		if readFileKind(qc, file) == KindSchema {
			return result{Err: &executable.TypeError{Message: "file is a schema document, not an executable one"}}, nil
		}
		sr, _ := d.schemaDep(qc)
		pr, perr := d.parseDep(qc, file)
		if perr != nil {
			return result{Err: &executable.TypeError{Message: perr.Error()}}, nil
		}
		execDoc, typeErr := executable.FromAST(sr.Schema, pr.Document)
		return result{Doc: execDoc, Err: typeErr}, nil
	})
	return r.Doc, r.Err
}

// ImplementersMap returns the current schema's interface-to-implementers
// index, cached and invalidated like any other derived query (spec §3:
// "derived from Schema; never stored there directly").
func (d *Database) ImplementersMap(ctx context.Context) (map[ast.Name][]ast.Name, error) {
	return incremental.Evaluate(ctx, d.engine, incremental.Key{Query: "implementers_map"}, func(qc *incremental.QueryContext) (map[ast.Name][]ast.Name, error) {
		sr, _ := d.schemaDep(qc)
		return schema.ImplementersMap(sr.Schema), nil
	})
}

// IsSubtype reports whether sub is a subtype of abstract in the current
// schema.
func (d *Database) IsSubtype(ctx context.Context, sub, abstract ast.Name) (bool, error) {
	key := incremental.Key{Query: "is_subtype", Args: sub.String() + "|" + abstract.String()}
	return incremental.Evaluate(ctx, d.engine, key, func(qc *incremental.QueryContext) (bool, error) {
		sr, _ := d.schemaDep(qc)
		return schema.IsSubtype(sr.Schema, sub, abstract), nil
	})
}
