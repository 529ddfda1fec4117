package vars

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortSHA(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"da15c174cd2ada1ad247906536c101e8f6799def", "da15c17"},
		{"abc", "abc"},
		{"unknown", "unknown"},
		{"ref: refs/heads/main", "ref: refs/heads/main"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ShortSHA(tt.in), tt.in)
	}
}

func TestInfoPrint(t *testing.T) {
	info := Info("0.19.7", "da15c174cd2ada1ad247906536c101e8f6799def")
	assert.Equal(t, Name, info.Name)
	assert.Equal(t, "da15c17", info.CommitShort)
	assert.Equal(t, License, info.License)

	var buf bytes.Buffer
	require.NoError(t, info.Print(&buf))
	assert.Contains(t, buf.String(), "version:  0.19.7\n")
	assert.Contains(t, buf.String(), "commit:   da15c174cd2ada1ad247906536c101e8f6799def\n")
}

func TestBaked(t *testing.T) {
	prevVersion, prevCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = prevVersion, prevCommit })

	Version, Commit = "", ""
	info := Baked()
	assert.Equal(t, Unknown, info.Version)
	assert.Equal(t, Unknown, info.Commit)
	assert.Equal(t, Unknown, info.CommitShort)

	Version, Commit = "0.19.7", "da15c174cd2ada1ad247906536c101e8f6799def"
	info = Baked()
	assert.Equal(t, "0.19.7", info.Version)
	assert.Equal(t, "da15c17", info.CommitShort)
}
