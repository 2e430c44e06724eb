package logger_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lintsync/internal/adapters/logger"
	"go.trai.ch/lintsync/internal/core/domain"
	"go.trai.ch/zerr"
)

func newLogger(t *testing.T, buf *bytes.Buffer, cfg domain.LogConfig) *logger.Logger {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	l := logger.New()
	l.SetOutput(buf)
	require.NoError(t, l.Configure(cfg))
	t.Cleanup(func() { _ = l.Close() })
	return l
}

func TestLogger_PrettyInfo(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(t, &buf, domain.LogConfig{Format: logger.FormatPretty})

	l.Info("module updated", "module", "proj")
	l.Debug("hidden")

	assert.Equal(t, "module updated module=proj\n", buf.String())
}

func TestLogger_AutoFormatIsJSONOffTerminal(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(t, &buf, domain.LogConfig{Format: logger.FormatAuto})

	l.Warn("stale", "module", "proj")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "WARN", rec["level"])
	assert.Equal(t, "stale", rec["msg"])
	assert.Equal(t, "proj", rec["module"])
}

func TestLogger_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(t, &buf, domain.LogConfig{Format: logger.FormatPretty, Level: "debug"})

	l.Debug("staged", "dir", "x")
	assert.Equal(t, "· staged dir=x\n", buf.String())
}

func TestLogger_InvalidLevel(t *testing.T) {
	l := logger.New()
	err := l.Configure(domain.LogConfig{Level: "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrInvalidConfig.Error())
}

func TestLogger_ErrorChainPretty(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(t, &buf, domain.LogConfig{Format: logger.FormatPretty})

	err := zerr.With(zerr.Wrap(domain.ErrStaleGlobalCache, "module update failed"), "module_key", "proj")
	l.Error(err)

	want := "✗ Error: module update failed\n" +
		"       module_key: proj\n\n" +
		"  Caused by:\n" +
		"    → " + domain.ErrStaleGlobalCache.Error() + "\n"
	assert.Equal(t, want, buf.String())
}

func TestLogger_ErrorJSON(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(t, &buf, domain.LogConfig{Format: logger.FormatJSON})

	l.Error(zerr.With(zerr.New("install failed"), "module_key", "proj"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "ERROR", rec["level"])
	assert.Equal(t, "install failed", rec["msg"])
	assert.Equal(t, "proj", rec["module_key"])
}

func TestLogger_ErrorNil(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(t, &buf, domain.LogConfig{Format: logger.FormatPretty})

	l.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_DebugFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "debug.log")
	l := newLogger(t, &buf, domain.LogConfig{Format: logger.FormatPretty, File: path})

	l.Debug("fetching", "module", "proj")
	l.Info("done")
	require.NoError(t, l.Close())

	assert.Equal(t, "done\n", buf.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"msg":"fetching"`)
	assert.Contains(t, lines[0], `"module":"proj"`)
	assert.Contains(t, lines[1], `"msg":"done"`)
}
