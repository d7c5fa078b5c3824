package gqllog_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gqlcore/gqlcore/gqllog"
)

func TestNopDiscardsEverything(t *testing.T) {
	var l gqllog.Logger = gqllog.Nop()
	require.NotPanics(t, func() {
		l.Debug("debug", "k", "v")
		l.Info("info")
		l.Warn("warn")
		l.Error("error")
	})
}

func TestDefaultReturnsUsableLogger(t *testing.T) {
	l := gqllog.Default()
	require.NotNil(t, l)
	require.NotPanics(t, func() { l.Info("started", "component", "gqlcore") })
}
