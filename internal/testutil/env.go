package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteTestFile writes content to a file under basePath, creating parent
// directories as needed, and returns the full path.
func WriteTestFile(t *testing.T, basePath, relativePath string, content []byte) string {
	t.Helper()
	fullPath := filepath.Join(basePath, relativePath)
	require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0755))
	require.NoError(t, os.WriteFile(fullPath, content, 0644))
	return fullPath
}

// WriteConfig writes a seqrun.yaml with the given body into a fresh temp
// directory and returns its path.
func WriteConfig(t *testing.T, body string) string {
	t.Helper()
	return WriteTestFile(t, t.TempDir(), "seqrun.yaml", []byte(body))
}
