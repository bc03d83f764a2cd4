package logger

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func TestEnvLogger_Debug(t *testing.T) {
	tests := []struct {
		name      string
		envValue  string
		expectLog bool
	}{
		{name: "logs when CW_DEBUG is set", envValue: "1", expectLog: true},
		{name: "logs when CW_DEBUG is any value", envValue: "true", expectLog: true},
		{name: "silent when CW_DEBUG is empty", envValue: "", expectLog: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLog(t)
			t.Setenv(DebugEnv, tt.envValue)

			l := NewEnvLogger("[test]")
			l.Debug("fetched %d hosts", 3)

			if tt.expectLog {
				assert.Contains(t, buf.String(), "[test] DEBUG: fetched 3 hosts")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestEnvLogger_Levels(t *testing.T) {
	buf := captureLog(t)

	l := NewEnvLogger("[grid]")
	l.Info("info %d", 42)
	l.Warn("sign failed")
	l.Error("boom")

	out := buf.String()
	assert.Contains(t, out, "[grid] info 42")
	assert.Contains(t, out, "[grid] WARN: sign failed")
	assert.Contains(t, out, "[grid] ERROR: boom")
}

func TestNoopLogger(t *testing.T) {
	buf := captureLog(t)

	l := Noop()
	l.Debug("debug")
	l.Info("info")
	l.Warn("warn")
	l.Error("error")

	assert.Empty(t, buf.String())
}

func TestOrNoop(t *testing.T) {
	assert.NotNil(t, OrNoop(nil))

	buf := NewBufferLogger()
	assert.Equal(t, buf, OrNoop(buf))
}

func TestBufferLogger(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("debug %s", "msg")
	l.Info("info %s", "msg")
	l.Warn("warn %s", "msg")
	l.Error("error %s", "msg")

	require.Len(t, l.Messages, 4)
	assert.Equal(t, LogMessage{Level: "debug", Message: "debug msg"}, l.Messages[0])
	assert.Equal(t, LogMessage{Level: "warn", Message: "warn msg"}, l.Messages[2])

	assert.True(t, l.HasLevel("error"))
	l.Clear()
	assert.Empty(t, l.Messages)
	assert.False(t, l.HasLevel("error"))
}

func TestDefault(t *testing.T) {
	original := defaultLogger
	defer func() { defaultLogger = original }()

	assert.NotNil(t, Default())

	buf := NewBufferLogger()
	SetDefault(buf)
	assert.Equal(t, buf, Default())
}
