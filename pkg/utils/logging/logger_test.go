package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerIn_WritesConsoleAndFile(t *testing.T) {
	dir := t.TempDir()
	var console bytes.Buffer

	logger, err := InitLoggerIn(dir, "test", &console)
	require.NoError(t, err)

	logger.Debug("debug only in file")
	logger.Info("recommendation ready")
	require.NoError(t, logger.Sync())

	assert.Contains(t, console.String(), "recommendation ready")
	assert.NotContains(t, console.String(), "debug only in file")

	files, err := filepath.Glob(filepath.Join(dir, "test_*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "debug only in file", entry["msg"])
	assert.Equal(t, "test", entry["env"])
	assert.Contains(t, entry, "timestamp")
}

func TestInitLoggerIn_DefaultEnvName(t *testing.T) {
	dir := t.TempDir()

	_, err := InitLoggerIn(dir, "", &bytes.Buffer{})
	require.NoError(t, err)

	files, err := filepath.Glob(filepath.Join(dir, "default_*.log"))
	require.NoError(t, err)
	assert.Len(t, files, 1)
}
