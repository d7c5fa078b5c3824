package gqltrace_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gqlcore/gqlcore/gqltrace"
)

func TestNoopTracerReturnsNonNilSpan(t *testing.T) {
	tr := gqltrace.Noop()
	ctx, span := tr.StartQuery(context.Background(), "schema")
	require.NotNil(t, ctx)
	require.NotNil(t, span)
	require.False(t, span.SpanContext().IsValid())
}
