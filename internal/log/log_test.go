package log

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withDefaults(t *testing.T, w *bytes.Buffer, level log.Level) {
	t.Helper()
	prev := defaults
	defaults = options{writer: w, level: level}
	t.Cleanup(func() { defaults = prev })
}

func TestNewWritesPrefix(t *testing.T) {
	var buf bytes.Buffer
	withDefaults(t, &buf, log.DebugLevel)

	New("courseview").Info("ingested", "sections", 2)
	assert.Contains(t, buf.String(), "courseview")
	assert.Contains(t, buf.String(), "ingested")
	assert.Contains(t, buf.String(), "sections=2")
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	withDefaults(t, &buf, log.WarnLevel)

	New("x").Info("hidden")
	assert.Empty(t, buf.String())
}

func TestSetup(t *testing.T) {
	prev := defaults
	t.Cleanup(func() { defaults = prev })

	var buf bytes.Buffer
	closeLog, err := Setup("warn", "", &buf)
	require.NoError(t, err)
	closeLog()

	New("courseview").Info("hidden")
	New("courseview").Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestSetupFile(t *testing.T) {
	prev := defaults
	t.Cleanup(func() { defaults = prev })

	path := filepath.Join(t.TempDir(), "courseview.log")
	var fallback bytes.Buffer
	closeLog, err := Setup("debug", path, &fallback)
	require.NoError(t, err)

	New("courseview").Debug("to file")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
	assert.Empty(t, fallback.String())
}

func TestSetupErrors(t *testing.T) {
	prev := defaults
	t.Cleanup(func() { defaults = prev })

	_, err := Setup("loud", "", nil)
	assert.ErrorContains(t, err, `invalid log level "loud"`)

	_, err = Setup("info", filepath.Join(t.TempDir(), "missing", "x.log"), nil)
	assert.ErrorContains(t, err, "open log file")
	assert.Equal(t, prev, defaults)
}

func TestContextRoundTrip(t *testing.T) {
	l := Discard()
	ctx := IntoContext(context.Background(), l)
	assert.Same(t, l, FromContext(ctx))
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}

func TestSubLogger(t *testing.T) {
	var buf bytes.Buffer
	withDefaults(t, &buf, log.DebugLevel)
	base := New("courseview")

	var other bytes.Buffer
	defaults = options{writer: &other, level: log.ErrorLevel}

	SubLogger(base, "ingest").Debug("hello")
	assert.Contains(t, buf.String(), "courseview/ingest")
	assert.Empty(t, other.String())
}

func TestSubLoggerForeignHandler(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	SubLogger(base, "ui").Info("hello")
	assert.Contains(t, buf.String(), "component=ui")
}
