package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLoggerLevels(t *testing.T) {
	t.Parallel()

	debug, err := NewLogger("DEBUG")
	require.NoError(t, err)
	require.True(t, debug.Core().Enabled(zapcore.DebugLevel))

	fallback, err := NewLogger("not-a-level")
	require.NoError(t, err)
	require.False(t, fallback.Core().Enabled(zapcore.DebugLevel))
	require.True(t, fallback.Core().Enabled(zapcore.InfoLevel))

	empty, err := NewLogger("")
	require.NoError(t, err)
	require.True(t, empty.Core().Enabled(zapcore.InfoLevel))
}

func TestLoggerContextRoundTrip(t *testing.T) {
	t.Parallel()

	require.Same(t, NoopLogger(), FromContext(context.Background()))

	logger := zap.NewExample()
	ctx := WithLogger(context.Background(), logger)
	require.Same(t, logger, FromContext(ctx))

	require.Same(t, NoopLogger(), FromContext(WithLogger(context.Background(), nil)))
}
