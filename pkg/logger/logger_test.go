package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestAnsiToHTML(t *testing.T) {
	got := ansiToHTML("\033[32minfo\033[0m msg")
	assert.Equal(t, `<pre><span style="color: green;">info</span> msg</pre>`, got)

	got = ansiToHTML("\033[36mdebug\033[31merror")
	assert.Equal(t, `<pre><span style="color: cyan;">debug</span><span style="color: red;">error</span></pre>`, got)

	assert.Equal(t, "<pre>plain</pre>", ansiToHTML("plain"))
}

func TestBufferedLogs(t *testing.T) {
	z := NewBuffered(zapcore.DebugLevel)
	z.Debug("[aos-insert] edge", zap.Int("halfedge", 3))

	require.Len(t, z.Logs, 1)
	assert.Contains(t, z.Logs[0], "[aos-insert] edge")
	assert.Contains(t, z.Logs[0], "halfedge")
	assert.Contains(t, z.Logs[0], `<span style="color: cyan;">`)

	z.ClearLogs()
	assert.Empty(t, z.Logs)
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	z := New(&buf, zapcore.InfoLevel)
	z.Debug("hidden")
	z.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.False(t, z.Enabled(zapcore.DebugLevel))
	assert.Nil(t, z.Logs)
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, lvl)

	lvl, err = ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	z := NewNop()
	z.Info("nothing")
	assert.False(t, z.Enabled(zapcore.ErrorLevel))
}
