package version

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHash = "da15c174cd2ada1ad247906536c101e8f6799def"

// writeGit creates root/.git with the given files relative to .git.
func writeGit(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, ".git", filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}

	return root
}

func TestReadHeadDirect(t *testing.T) {
	root := writeGit(t, map[string]string{"HEAD": testHash + "\n"})

	got, err := ReadHead(root)
	require.NoError(t, err)
	assert.Equal(t, testHash, got)
}

func TestReadHeadSymbolic(t *testing.T) {
	root := writeGit(t, map[string]string{
		"HEAD":            "ref: refs/heads/main\n",
		"refs/heads/main": "  " + testHash + "\n",
	})

	got, err := ReadHead(root)
	require.NoError(t, err)
	assert.Equal(t, testHash, got)
}

func TestReadHeadSymbolicMissingRef(t *testing.T) {
	root := writeGit(t, map[string]string{"HEAD": "ref: refs/heads/packed\n"})

	got, err := ReadHead(root)
	require.NoError(t, err)
	assert.Equal(t, "ref: refs/heads/packed", got)
}

func TestReadHeadNoCheckout(t *testing.T) {
	_, err := ReadHead(t.TempDir())
	require.ErrorIs(t, err, ErrNoGitDir)
}

func TestReadHeadGitFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".git"), []byte("gitdir: elsewhere\n"), 0o600))

	_, err := ReadHead(root)
	require.ErrorIs(t, err, ErrNoGitDir)
}

func TestReadHeadMissingHeadFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o750))

	_, err := ReadHead(root)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoGitDir)
}
