package logger

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
}

func TestNewWithOutput_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "worker.log")

	zl := NewWithOutput("info", "json", path)
	log := NewZapAdapter(zl).WithFields(map[string]interface{}{"taskType": "legal.generate-document"})
	log.Info("document rendered", map[string]interface{}{"documentType": "will"})
	log.Debug("hidden at info level", nil)
	_ = zl.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"taskType":"legal.generate-document"`)
	assert.Contains(t, string(data), `"documentType":"will"`)
	assert.NotContains(t, string(data), "hidden at info level")
}

func TestNewWithOutput_BadPathFallsBack(t *testing.T) {
	zl := NewWithOutput("info", "json", filepath.Join(t.TempDir(), "missing", "dir", "x.log"))
	require.NotNil(t, zl)
}

func TestMapToZapFields(t *testing.T) {
	assert.Nil(t, mapToZapFields(nil))

	fields := mapToZapFields(map[string]interface{}{"error": errors.New("boom")})
	require.Len(t, fields, 1)
	assert.Equal(t, zapcore.ErrorType, fields[0].Type)
}

func TestLoggers(t *testing.T) {
	for _, l := range []Logger{NewNoOpLogger(), NewTestLogger(t), NewStructured("debug", "console")} {
		l.WithError(errors.New("x")).With(map[string]interface{}{"k": 1}).Warn("warned", nil)
	}
}
