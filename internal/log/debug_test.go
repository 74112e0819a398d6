package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetDebugLogger(t *testing.T) func() {
	t.Helper()

	globalDebugLogger.mu.Lock()
	prevFile := globalDebugLogger.file
	prevBuffer := append([]byte(nil), globalDebugLogger.buffer...)
	prevDiscard := globalDebugLogger.discard
	globalDebugLogger.file = nil
	globalDebugLogger.buffer = nil
	globalDebugLogger.discard = false
	globalDebugLogger.mu.Unlock()

	return func() {
		globalDebugLogger.mu.Lock()
		if globalDebugLogger.file != nil {
			_ = globalDebugLogger.file.Close()
		}
		globalDebugLogger.file = prevFile
		globalDebugLogger.buffer = prevBuffer
		globalDebugLogger.discard = prevDiscard
		globalDebugLogger.mu.Unlock()
	}
}

func TestBufferedMessagesFlushToFile(t *testing.T) {
	t.Cleanup(resetDebugLogger(t))

	Printf("created %s", "docs")
	Debugw("saved", "path", "docs/a.txt")

	logPath := filepath.Join(t.TempDir(), "debug.log")
	require.NoError(t, SetFile(logPath))
	Println("after file")
	require.NoError(t, Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "created docs")
	assert.Contains(t, out, "saved")
	assert.Contains(t, out, `"path": "docs/a.txt"`)
	assert.Contains(t, out, "after file")
	assert.Contains(t, out, "DEBUG")
}

func TestSetFileEmptyDiscards(t *testing.T) {
	t.Cleanup(resetDebugLogger(t))

	Printf("buffered")
	require.NoError(t, SetFile(""))

	Printf("dropped")

	globalDebugLogger.mu.Lock()
	defer globalDebugLogger.mu.Unlock()
	assert.True(t, globalDebugLogger.discard)
	assert.Empty(t, globalDebugLogger.buffer)
}

func TestSetFileFailureDiscardsLogs(t *testing.T) {
	t.Cleanup(resetDebugLogger(t))

	// A regular file used as a directory makes the open fail even for root.
	notDir := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(notDir, []byte("x"), 0o600))

	logPath := filepath.Join(notDir, "debug.log")
	require.Error(t, SetFile(logPath))

	Printf("should be discarded")

	globalDebugLogger.mu.Lock()
	defer globalDebugLogger.mu.Unlock()
	assert.True(t, globalDebugLogger.discard)
	assert.Empty(t, globalDebugLogger.buffer)
}

func TestNamedLoggerWritesComponent(t *testing.T) {
	t.Cleanup(resetDebugLogger(t))

	Named("workspace").Debugw("folder created", "path", "docs")

	globalDebugLogger.mu.Lock()
	defer globalDebugLogger.mu.Unlock()
	assert.Contains(t, string(globalDebugLogger.buffer), "workspace")
	assert.Contains(t, string(globalDebugLogger.buffer), "folder created")
}
