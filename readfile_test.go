package lyxweaver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ReadProjectFile(t *testing.T) {
	t.Run("should read utf-8 files as-is", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "utf8.lyx")
		require.NoError(t, os.WriteFile(path, []byte("café\n"), 0o644))
		got, err := ReadProjectFile(path)
		require.NoError(t, err)
		assert.Equal(t, "café\n", got)
	})

	t.Run("should re-decode latin-1 files", func(t *testing.T) {
		// "café" with an ISO 8859-1 encoded é, invalid as UTF-8.
		path := filepath.Join(t.TempDir(), "latin1.lyx")
		require.NoError(t, os.WriteFile(path, []byte{'c', 'a', 'f', 0xE9, '\n'}, 0o644))
		got, err := ReadProjectFile(path)
		require.NoError(t, err)
		assert.Equal(t, "café\n", got)
	})

	t.Run("should surface a ReadError for a missing file", func(t *testing.T) {
		_, err := ReadProjectFile(filepath.Join(t.TempDir(), "missing.lyx"))
		require.Error(t, err)
		var readErr *ReadError
		require.ErrorAs(t, err, &readErr)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("should keep raw bytes when the fallback is disabled", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "latin1.lyx")
		require.NoError(t, os.WriteFile(path, []byte{0xE9}, 0o644))
		got, err := readProjectFile(path, false)
		require.NoError(t, err)
		assert.Equal(t, string([]byte{0xE9}), got)
	})
}
