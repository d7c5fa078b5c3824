package incremental_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gqlcore/gqlcore/internal/incremental"
)

func TestEvaluateCachesUntilInputChanges(t *testing.T) {
	e := incremental.New(0, nil)
	incremental.SetInput(e, "src", "hello")

	calls := 0
	compute := func(qc *incremental.QueryContext) (int, error) {
		calls++
		return len(incremental.ReadInput[string](qc, "src")), nil
	}

	key := incremental.Key{Query: "len"}
	v, err := incremental.Evaluate(context.Background(), e, key, compute)
	require.NoError(t, err)
	require.Equal(t, 5, v)
	require.Equal(t, 1, calls)

	v, err = incremental.Evaluate(context.Background(), e, key, compute)
	require.NoError(t, err)
	require.Equal(t, 5, v)
	require.Equal(t, 1, calls, "cache hit should not recompute")

	incremental.SetInput(e, "src", "hello world")
	v, err = incremental.Evaluate(context.Background(), e, key, compute)
	require.NoError(t, err)
	require.Equal(t, 11, v)
	require.Equal(t, 2, calls, "input change should trigger recompute")
}

func TestSetInputSameValueIsNoop(t *testing.T) {
	e := incremental.New(0, nil)
	incremental.SetInput(e, "src", "hello")

	calls := 0
	compute := func(qc *incremental.QueryContext) (string, error) {
		calls++
		return incremental.ReadInput[string](qc, "src"), nil
	}
	key := incremental.Key{Query: "echo"}
	_, _ = incremental.Evaluate(context.Background(), e, key, compute)
	require.Equal(t, 1, calls)

	incremental.SetInput(e, "src", "hello")
	_, _ = incremental.Evaluate(context.Background(), e, key, compute)
	require.Equal(t, 1, calls, "re-setting an equal value must not bump the revision")
}

func TestEarlyCutoffStopsDependentRecompute(t *testing.T) {
	e := incremental.New(0, nil)
	incremental.SetInput(e, "src", "hello")

	lenKey := incremental.Key{Query: "len"}
	lenCompute := func(qc *incremental.QueryContext) (int, error) {
		return len(incremental.ReadInput[string](qc, "src")), nil
	}

	parentCalls := 0
	parentKey := incremental.Key{Query: "parent"}
	parentCompute := func(qc *incremental.QueryContext) (string, error) {
		parentCalls++
		n, err := incremental.EvaluateDep(qc, lenKey, lenCompute)
		if err != nil {
			return "", err
		}
		if n > 3 {
			return "long", nil
		}
		return "short", nil
	}

	v, err := incremental.Evaluate(context.Background(), e, parentKey, parentCompute)
	require.NoError(t, err)
	require.Equal(t, "long", v)
	require.Equal(t, 1, parentCalls)

	// Changing src to a different string of the same (>3) length bucket
	// changes the "len" dependency's underlying input but not its output
	// value, so the parent should not need to recompute.
	incremental.SetInput(e, "src", "howdy")
	v, err = incremental.Evaluate(context.Background(), e, parentKey, parentCompute)
	require.NoError(t, err)
	require.Equal(t, "long", v)
	require.Equal(t, 1, parentCalls, "early cutoff should keep the parent from recomputing")

	incremental.SetInput(e, "src", "hi")
	v, err = incremental.Evaluate(context.Background(), e, parentKey, parentCompute)
	require.NoError(t, err)
	require.Equal(t, "short", v)
	require.Equal(t, 2, parentCalls, "a real change in the dependency's value must propagate")
}

func TestEvaluatePropagatesComputeError(t *testing.T) {
	e := incremental.New(0, nil)
	boom := errors.New("boom")
	key := incremental.Key{Query: "fails"}
	_, err := incremental.Evaluate(context.Background(), e, key, func(*incremental.QueryContext) (int, error) {
		return 0, boom
	})
	require.ErrorIs(t, err, boom)
}
