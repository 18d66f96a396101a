//go:build unit

package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManagerAdapter(t *testing.T) {
	adapter := NewManagerAdapter()
	assert.NotNil(t, adapter)
}

func TestManagerAdapter_WriteAndReadFile(t *testing.T) {
	adapter := NewManagerAdapter()

	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "test.txt")
	testContent := []byte("test content")

	t.Run("WriteFile", func(t *testing.T) {
		err := adapter.WriteFile(testFile, testContent, 0644)
		assert.NoError(t, err)

		info, err := os.Stat(testFile)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
	})

	t.Run("ReadFile", func(t *testing.T) {
		data, err := adapter.ReadFile(testFile)
		require.NoError(t, err)
		assert.Equal(t, testContent, data)
	})

	t.Run("ReadMissingFile", func(t *testing.T) {
		_, err := adapter.ReadFile(filepath.Join(tempDir, "missing.txt"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read file")
	})
}

func TestManagerAdapter_WriteFileAtomic(t *testing.T) {
	adapter := NewManagerAdapter()

	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "resolv.conf")

	t.Run("CreatesFile", func(t *testing.T) {
		err := adapter.WriteFileAtomic(testFile, []byte("nameserver 8.8.8.8\n"), 0644)
		require.NoError(t, err)

		data, err := os.ReadFile(testFile)
		require.NoError(t, err)
		assert.Equal(t, "nameserver 8.8.8.8\n", string(data))
	})

	t.Run("ReplacesFile", func(t *testing.T) {
		err := adapter.WriteFileAtomic(testFile, []byte("nameserver 1.1.1.1\n"), 0644)
		require.NoError(t, err)

		data, err := os.ReadFile(testFile)
		require.NoError(t, err)
		assert.Equal(t, "nameserver 1.1.1.1\n", string(data))
	})

	t.Run("NoTempFileLeftBehind", func(t *testing.T) {
		entries, err := os.ReadDir(tempDir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}

func TestManagerAdapter_FileExists(t *testing.T) {
	adapter := NewManagerAdapter()

	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "exists.txt")

	assert.False(t, adapter.FileExists(testFile))

	require.NoError(t, os.WriteFile(testFile, []byte("x"), 0644))
	assert.True(t, adapter.FileExists(testFile))
}
