package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "transactions.json"))
	data, err := f.Load()
	require.NoError(t, err, "a file that does not exist yet is not an error")
	assert.Nil(t, data)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "transactions.json"))

	require.NoError(t, f.Save([]byte(`[{"id":"1"}]`)))
	data, err := f.Load()
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(data))
}

func TestSave_CreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	f := NewFile(filepath.Join(dir, "nested", "data", "transactions.json"))

	require.NoError(t, f.Save([]byte("[]")))
	_, err := os.Stat(filepath.Join(dir, "nested", "data"))
	require.NoError(t, err)
}

func TestSave_Overwrites(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "transactions.json"))

	require.NoError(t, f.Save([]byte("first")))
	require.NoError(t, f.Save([]byte("second")))

	data, err := f.Load()
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}
