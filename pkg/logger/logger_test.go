package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("sink receives entries", func(t *testing.T) {
		t.Parallel()
		sink := filepath.Join(t.TempDir(), "lending.log")
		log, err := NewLogger(Log{LogLevel: zapcore.InfoLevel, Sink: sink}, "lending")
		require.NoError(t, err)
		log.Info("book lent")
		_ = log.Sync()

		raw, err := os.ReadFile(sink)
		require.NoError(t, err)
		require.Contains(t, string(raw), `"msg":"book lent"`)
		require.Contains(t, string(raw), `"logger":"lending"`)
	})

	t.Run("unopenable sink is reported", func(t *testing.T) {
		t.Parallel()
		sink := filepath.Join(t.TempDir(), "missing", "lending.log")
		log, err := NewLogger(Log{Sink: sink}, "lending")
		require.Error(t, err)
		require.Nil(t, log)
	})

	t.Run("stdout only", func(t *testing.T) {
		t.Parallel()
		log, err := NewLogger(Log{}, "stats")
		require.NoError(t, err)
		require.NotNil(t, log)
	})
}
