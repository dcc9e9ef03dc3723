package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvLogger_Debug(t *testing.T) {
	tests := []struct {
		name      string
		envValue  string
		expectLog bool
	}{
		{name: "logs when BIKESHARE_DEBUG is set", envValue: "1", expectLog: true},
		{name: "logs when BIKESHARE_DEBUG is any value", envValue: "true", expectLog: true},
		{name: "does not log when BIKESHARE_DEBUG is empty", envValue: "", expectLog: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			t.Setenv(DebugEnv, tt.envValue)

			l := NewWriterLogger(&buf, "[test]")
			l.Debug("loaded %d rows", 7)

			if tt.expectLog {
				assert.Contains(t, buf.String(), "[test] loaded 7 rows")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestEnvLogger_Levels(t *testing.T) {
	tests := []struct {
		name   string
		log    func(Logger)
		expect string
	}{
		{name: "info", log: func(l Logger) { l.Info("info %d", 42) }, expect: "[load] info 42"},
		{name: "warn", log: func(l Logger) { l.Warn("slow read") }, expect: "[load] WARN: slow read"},
		{name: "error", log: func(l Logger) { l.Error("bad row %s", "x") }, expect: "[load] ERROR: bad row x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(NewWriterLogger(&buf, "[load]"))
			assert.Contains(t, buf.String(), tt.expect)
		})
	}
}

func TestEnvLogger_NoPrefix(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf, "")

	l.Warn("careful")
	assert.Contains(t, buf.String(), "WARN: careful")
}

func TestNoop(t *testing.T) {
	l := Noop()
	assert.NotPanics(t, func() {
		l.Debug("x")
		l.Info("x")
		l.Warn("x")
		l.Error("x")
	})
}

func TestBufferLogger(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("session %s started", "abc")
	l.Warn("no gender column")

	assert.Len(t, l.Messages, 2)
	assert.True(t, l.HasLevel("debug"))
	assert.True(t, l.HasLevel("warn"))
	assert.False(t, l.HasLevel("error"))
	assert.True(t, l.Contains("session abc"))
	assert.False(t, l.Contains("missing"))

	l.Clear()
	assert.Empty(t, l.Messages)
}
