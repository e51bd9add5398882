package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kimai-plugins/internal/adapters/logger"
	"go.trai.ch/kimai-plugins/internal/core/domain"
	"go.trai.ch/zerr"
)

// captureStderr returns what fn writes to os.Stderr.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)

	saved := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = saved }()

	done := make(chan string, 1)
	go func() {
		buf, _ := io.ReadAll(r)
		done <- string(buf)
	}()

	fn()

	require.NoError(t, w.Close())
	out := <-done
	require.NoError(t, r.Close())
	return out
}

func TestNew_WritesToStderr(t *testing.T) {
	out := captureStderr(t, func() {
		logger.New().Info("Checking Kimai plugin kimai/DemoBundle (Version: 1.0.0)")
	})
	assert.Equal(t, "Checking Kimai plugin kimai/DemoBundle (Version: 1.0.0)\n", out)
}

func TestLogger_Console(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	lg.Info("Writing Kimai lock file: kimai-plugins.lock")
	lg.Warn("Failed writing Kimai lock file: disk full")

	assert.Equal(t,
		"Writing Kimai lock file: kimai-plugins.lock\nFailed writing Kimai lock file: disk full\n",
		buf.String(), "a non-terminal writer gets no color codes")
}

func TestLogger_ErrorChain(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	err := zerr.With(zerr.Wrap(domain.ErrLockNotWritable, "/srv/kimai/kimai-plugins.lock"), "path", "/srv/kimai/kimai-plugins.lock")
	lg.Error(err)

	want := strings.Join([]string{
		"Error: /srv/kimai/kimai-plugins.lock (path=/srv/kimai/kimai-plugins.lock)",
		"",
		"  Caused by:",
		"    → " + domain.ErrLockNotWritable.Error(),
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestLogger_ErrorNil(t *testing.T) {
	var buf bytes.Buffer
	logger.NewWithWriter(&buf).Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)
	lg.SetJSON(true)

	lg.Warn("Kimai plugin kimai/gonebundle is pinned to =2.0.0.0 but was not resolved")
	lg.Error(zerr.With(zerr.New("boom"), "package", "kimai/demo"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var warn map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &warn))
	assert.Equal(t, "WARN", warn["level"])
	assert.Equal(t, "Kimai plugin kimai/gonebundle is pinned to =2.0.0.0 but was not resolved", warn["msg"])

	var failed map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &failed))
	assert.Equal(t, "ERROR", failed["level"])
	assert.Equal(t, "operation failed", failed["msg"])
	assert.Contains(t, lines[1], "boom")
}

func TestLogger_SetOutput(t *testing.T) {
	var first, second bytes.Buffer
	lg := logger.NewWithWriter(&first)
	lg.SetJSON(true)

	lg.Info("before")
	lg.SetOutput(&second)
	lg.Error(errors.New("after"))

	assert.Contains(t, first.String(), "before")
	assert.NotContains(t, first.String(), "after")
	assert.Contains(t, second.String(), `"error":"after"`, "JSON mode survives SetOutput")
}

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
		wantMetadata []map[string]any
	}{
		{
			name:         "standard error",
			err:          errors.New("disk full"),
			wantMessages: []string{"disk full"},
			wantMetadata: []map[string]any{nil},
		},
		{
			name:         "zerr chain ending in a standard error",
			err:          zerr.Wrap(zerr.Wrap(errors.New("permission denied"), "failed to read"), "sync"),
			wantMessages: []string{"sync", "failed to read", "permission denied"},
			wantMetadata: []map[string]any{{}, {}, nil},
		},
		{
			name:         "metadata stays with its level",
			err:          zerr.Wrap(zerr.With(zerr.New("invalid version string"), "version", "x"), "pins"),
			wantMessages: []string{"pins", "invalid version string"},
			wantMetadata: []map[string]any{{}, {"version": "x"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)
			require.Len(t, entries, len(tt.wantMessages))
			for i, entry := range entries {
				assert.Equal(t, tt.wantMessages[i], entry.Message())
				assert.Equal(t, tt.wantMetadata[i], entry.Metadata())
			}
		})
	}
}

func TestFormatErrorEntries_Single(t *testing.T) {
	entries := logger.CollectErrorEntries(zerr.With(zerr.New("package name is empty"), "type", "kimai-plugin"))
	assert.Equal(t, "Error: package name is empty (type=kimai-plugin)", logger.FormatErrorEntries(entries))
}
