// Package db implements C5: the incremental compilation database that
// wires source text, file kind, and the recursion/token limits as
// inputs to internal/incremental.Engine, and exposes cst/ast/schema/
// executable_document/implementers_map/is_subtype as derived queries
// (spec §4.5).
package db

import (
	"github.com/google/uuid"

	"github.com/gqlcore/gqlcore/diagnostic"
	"github.com/gqlcore/gqlcore/gqltrace"
	"github.com/gqlcore/gqlcore/internal/incremental"
)

// FileKind partitions a file into the schema builder's input set or the
// executable builder's input set (spec §3 "Source").
type FileKind int

const (
	KindSchema FileKind = iota
	KindExecutable
)

// NewFileID mints a fresh FileID (spec's FileId, backed by a uuid.UUID
// so callers don't need to invent their own identity scheme).
func NewFileID() diagnostic.FileID {
	return diagnostic.FileID(uuid.New())
}

const (
	inputSourceCode         = "source_code"
	inputFileKind           = "file_kind"
	inputTypeDefinitionFiles = "type_definition_files"
	inputRecursionLimit     = "recursion_limit"
	inputTokenLimit         = "token_limit"
)

// Database is the facade the CLI and any other consumer uses: set
// inputs, then read derived queries. All derived reads are safe for
// concurrent use; the underlying Engine serializes per-key recompute.
type Database struct {
	engine *Engine
}

// Engine is an alias so callers of this package never need to import
// internal/incremental directly.
type Engine = incremental.Engine

// New creates an empty Database. tracer may be nil to disable query
// tracing; pass gqltrace.Noop() explicitly for the same effect with a
// non-nil value.
func New(tracer gqltrace.Tracer) *Database {
	return &Database{engine: incremental.New(0, tracer)}
}

func fileKey(name string, file diagnostic.FileID) incremental.Key {
	return incremental.Key{Query: name, Args: string(file[:])}
}

// SetSourceCode sets file's source text.
func (d *Database) SetSourceCode(file diagnostic.FileID, text string) {
	incremental.SetInput(d.engine, inputSourceCode+"/"+string(file[:]), text)
}

// SetFileKind sets whether file is a schema or executable document.
func (d *Database) SetFileKind(file diagnostic.FileID, kind FileKind) {
	incremental.SetInput(d.engine, inputFileKind+"/"+string(file[:]), kind)
}

// SetTypeDefinitionFiles sets the ordered list of files the schema
// builder consumes (spec §3 "type_definition_files() → ordered set of
// FileId").
func (d *Database) SetTypeDefinitionFiles(files []diagnostic.FileID) {
	incremental.SetInput(d.engine, inputTypeDefinitionFiles, files)
}

// SetRecursionLimit overrides the parser's default recursion limit.
func (d *Database) SetRecursionLimit(n int) {
	incremental.SetInput(d.engine, inputRecursionLimit, n)
}

// SetTokenLimit overrides the parser's default token limit.
func (d *Database) SetTokenLimit(n int) {
	incremental.SetInput(d.engine, inputTokenLimit, n)
}

func readSourceCode(qc *incremental.QueryContext, file diagnostic.FileID) string {
	return incremental.ReadInput[string](qc, inputSourceCode+"/"+string(file[:]))
}

func readFileKind(qc *incremental.QueryContext, file diagnostic.FileID) FileKind {
	return incremental.ReadInput[FileKind](qc, inputFileKind+"/"+string(file[:]))
}

func readTypeDefinitionFiles(qc *incremental.QueryContext) []diagnostic.FileID {
	return incremental.ReadInput[[]diagnostic.FileID](qc, inputTypeDefinitionFiles)
}

func readRecursionLimit(qc *incremental.QueryContext) int {
	return incremental.ReadInput[int](qc, inputRecursionLimit)
}

func readTokenLimit(qc *incremental.QueryContext) int {
	return incremental.ReadInput[int](qc, inputTokenLimit)
}
