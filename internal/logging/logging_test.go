package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		" error ": slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		require.Equal(t, want, parseLevel(in), "input %q", in)
	}
}

func TestInitReadsEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	Init()
	require.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))

	SetLevel(slog.LevelError)
	require.False(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}
