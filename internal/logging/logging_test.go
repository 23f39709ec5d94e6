package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The logger is package state, so these tests do not run in parallel.

func TestLogger_DiscardsByDefault(t *testing.T) {
	require.NoError(t, Init(Options{}))
	t.Cleanup(func() { _ = Close() })

	assert.NotNil(t, Logger())
	Debug("ignored")
	Info("ignored")
	Warn("ignored")
	Error("ignored")
}

func TestInit_Verbose(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Options{Verbose: true, Stderr: &buf}))
	t.Cleanup(func() { _ = Close() })

	Debug("parsed test output", "records", 3)

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), `msg="parsed test output"`)
	assert.Contains(t, buf.String(), "records=3")
}

func TestInit_FileWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "triage.jsonl")
	require.NoError(t, Init(Options{File: path, Verbose: true}))

	With("dir", "results").InfoContext(context.Background(), "watching")
	InfoContext(context.Background(), "analysis complete", "file", "output-test-1.txt")
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "watching", first["msg"])
	assert.Equal(t, "results", first["dir"])

	var second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "output-test-1.txt", second["file"])
}

func TestInit_FileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triage.jsonl")

	for i := 0; i < 2; i++ {
		require.NoError(t, Init(Options{File: path}))
		Info("run")
		require.NoError(t, Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), `"msg":"run"`))
}

func TestInit_FileError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	err := Init(Options{File: filepath.Join(blocker, "triage.jsonl")})

	assert.Error(t, err)
}
