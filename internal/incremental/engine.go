// Package incremental implements the generic memoizing query engine
// behind C5 (spec §4.5): inputs are explicit setters, derived queries
// are functions of a QueryContext that record what they read, and a
// later input change only triggers recompute of the queries that
// actually (transitively) depended on it. Grounded on the two-pass
// collect-then-verify structure of original_source/apollo-compiler's
// database/repr.rs, generalized into a reusable engine instead of a
// hand-written dependency graph per query.
package incremental

import (
	"context"
	"reflect"
	"sync"

	"github.com/google/go-cmp/cmp"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.opentelemetry.io/otel/trace"
)

// exportAll lets cmp.Equal compare the cached query results and input
// values below, most of which carry unexported span/position fields the
// compiler packages keep private, without every query author having to
// hand-write an Exporter for their own result type.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// Key identifies one cached query invocation: its query name plus a
// stable encoding of its arguments (spec §4.5: "(queryName, argsKey)
// compound key").
type Key struct {
	Query string
	Args  string
}

// entry is one cached query result together with enough bookkeeping to
// decide, on a later read, whether it can still be trusted without
// recomputing: the revision it was last computed at, the revision it
// was last confirmed still correct at ("verified"), and what it read to
// produce its value.
type entry struct {
	value    any
	err      error
	revision uint64
	verified uint64

	deps      []Key
	inputDeps []string

	// recompute is this query's own compute closure, boxed to erase its
	// result type, so a dependent can revalidate it without knowing V.
	recompute func(*QueryContext) (any, error)
}

type inputSlot struct {
	value     any
	changedAt uint64
}

// Engine is the store behind db.Database: a revision counter, the
// current input values, and an LRU of query results.
type Engine struct {
	mu       sync.RWMutex
	revision uint64
	inputs   map[string]inputSlot

	cache *lru.Cache[Key, *entry]

	// locks serializes concurrent evaluation of the same Key: a second
	// caller for a key already being computed blocks on the same
	// mutex-guarded slot instead of duplicating the work (spec §5).
	locks sync.Map // Key -> *sync.Mutex

	tracer Tracer
}

// Tracer opens a span around one query recompute. gqltrace.Tracer
// satisfies this structurally, so the engine depends on otel/trace's
// Span type without importing the gqltrace package itself.
type Tracer interface {
	StartQuery(ctx context.Context, queryName string) (context.Context, trace.Span)
}

// New creates an Engine with the given cache capacity and a Tracer used
// to span every actual recompute (spec §4.5: cache hits open no span).
// Pass nil for tracer to disable tracing.
func New(capacity int, tracer Tracer) *Engine {
	if capacity <= 0 {
		capacity = 100_000
	}
	c, _ := lru.New[Key, *entry](capacity)
	return &Engine{
		inputs: make(map[string]inputSlot),
		cache:  c,
		tracer: tracer,
	}
}

// QueryContext is handed to a query's compute function; it records the
// inputs and other queries read during evaluation.
type QueryContext struct {
	engine    *Engine
	ctx       context.Context
	deps      []Key
	inputDeps []string
}

// Context returns the context.Context active for this evaluation, for
// passing to anything that wants cancellation/tracing context.
func (qc *QueryContext) Context() context.Context { return qc.ctx }

func (qc *QueryContext) recordQuery(k Key)      { qc.deps = append(qc.deps, k) }
func (qc *QueryContext) recordInput(name string) { qc.inputDeps = append(qc.inputDeps, name) }

// SetInput stores an input value under name. A set that reproduces the
// value already stored (per cmp.Equal) is a no-op and does not bump the
// revision counter, so re-setting an unchanged value never causes
// spurious invalidation downstream.
func SetInput[V any](e *Engine, name string, value V) {
	e.mu.Lock()
	defer e.mu.Unlock()
	old, ok := e.inputs[name]
	if ok && cmp.Equal(old.value, value, exportAll) {
		return
	}
	e.revision++
	e.inputs[name] = inputSlot{value: value, changedAt: e.revision}
}

// ReadInput fetches an input and records the read against qc, so the
// calling query is invalidated when name next changes. Reading an input
// that was never set returns V's zero value.
func ReadInput[V any](qc *QueryContext, name string) V {
	qc.engine.mu.RLock()
	slot, ok := qc.engine.inputs[name]
	qc.engine.mu.RUnlock()
	qc.recordInput(name)
	if !ok {
		var zero V
		return zero
	}
	return slot.value.(V)
}

// Evaluate runs (or returns the cached result of) the top-level query
// named by key, computing it with compute if needed.
func Evaluate[V any](ctx context.Context, e *Engine, key Key, compute func(*QueryContext) (V, error)) (V, error) {
	return evaluate[V](ctx, nil, e, key, compute)
}

// EvaluateDep is Evaluate called from inside another query's compute
// function: it additionally records key as a dependency of parent, so
// parent is revisited when key's value changes.
func EvaluateDep[V any](parent *QueryContext, key Key, compute func(*QueryContext) (V, error)) (V, error) {
	parent.recordQuery(key)
	return evaluate[V](parent.ctx, parent, parent.engine, key, compute)
}

func evaluate[V any](ctx context.Context, _ *QueryContext, e *Engine, key Key, compute func(*QueryContext) (V, error)) (V, error) {
	wrapped := func(qc *QueryContext) (any, error) { return compute(qc) }
	raw, err := e.getOrRevalidate(ctx, key, wrapped)
	var zero V
	if raw == nil {
		return zero, err
	}
	return raw.(V), err
}

func (e *Engine) lock(key Key) func() {
	v, _ := e.locks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// getOrRevalidate is the heart of the engine: return a cached value
// untouched if it's already verified current, recompute-with-cutoff if
// stale deps turn out to still produce an equal value, or fully
// recompute and replace otherwise.
func (e *Engine) getOrRevalidate(ctx context.Context, key Key, wrapped func(*QueryContext) (any, error)) (any, error) {
	release := e.lock(key)
	defer release()

	e.mu.RLock()
	ent, ok := e.cache.Get(key)
	curRev := e.revision
	e.mu.RUnlock()

	if ok && ent.verified == curRev {
		return ent.value, ent.err
	}
	if ok && !e.depsChanged(ctx, ent) {
		ent.verified = curRev
		return ent.value, ent.err
	}

	ctx, span := e.startSpan(ctx, key.Query)
	defer span.End()
	qc := &QueryContext{engine: e, ctx: ctx}
	val, err := wrapped(qc)

	e.mu.RLock()
	newRev := e.revision
	e.mu.RUnlock()

	if ok && cmp.Equal(ent.value, val, exportAll) && errEqual(ent.err, err) {
		// Early cutoff (spec §4.5): the recomputed value is structurally
		// equal to what's cached, so dependents don't need to know
		// anything changed even though this query itself re-ran.
		ent.verified = newRev
		ent.deps = qc.deps
		ent.inputDeps = qc.inputDeps
		ent.recompute = wrapped
		return ent.value, ent.err
	}

	e.mu.Lock()
	e.cache.Add(key, &entry{
		value: val, err: err, revision: newRev, verified: newRev,
		deps: qc.deps, inputDeps: qc.inputDeps, recompute: wrapped,
	})
	e.mu.Unlock()
	return val, err
}

// depsChanged reports whether any input or query ent depended on has
// changed since ent was last verified. A query dependency is
// considered changed if it isn't in cache any more (evicted) or if
// revalidating it (recursively) yields a value that isn't cmp.Equal to
// what it held before.
func (e *Engine) depsChanged(ctx context.Context, ent *entry) bool {
	for _, name := range ent.inputDeps {
		e.mu.RLock()
		slot, ok := e.inputs[name]
		e.mu.RUnlock()
		if !ok || slot.changedAt > ent.verified {
			return true
		}
	}
	for _, dep := range ent.deps {
		e.mu.RLock()
		depEnt, ok := e.cache.Peek(dep)
		e.mu.RUnlock()
		if !ok {
			return true
		}
		oldVal := depEnt.value
		if _, err := e.getOrRevalidate(ctx, dep, depEnt.recompute); err != nil && depEnt.err == nil {
			return true
		}
		e.mu.RLock()
		newEnt, _ := e.cache.Peek(dep)
		e.mu.RUnlock()
		if newEnt == nil || !cmp.Equal(oldVal, newEnt.value, exportAll) {
			return true
		}
	}
	return false
}

func (e *Engine) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if e.tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return e.tracer.StartQuery(ctx, name)
}

func errEqual(a, b error) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Error() == b.Error()
}
