package version

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollapse(t *testing.T) {
	v, err := collapse([]string{"1", "2", "3", "10", "abc123"})
	require.NoError(t, err)
	assert.Equal(t, "1.2.10", v)

	v, err = collapse([]string{"1", "2", "5"})
	require.NoError(t, err)
	assert.Equal(t, "1.2.0", v)

	for _, tokens := range [][]string{nil, {"1"}, {"1", "2"}, {"1", "2", "3", "4"}, {"1", "2", "3", "4", "5", "6"}} {
		_, err := collapse(tokens)
		require.ErrorIs(t, err, ErrMalformedDescribe, tokens)
	}
}

func TestCollapseKeepsInput(t *testing.T) {
	tokens := []string{"1", "2", "5"}
	_, err := collapse(tokens)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "5"}, tokens)
}

func TestParseDescribe(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"0.1.0", "0.1.0"},
		{"0.1.3\n", "0.1.0"},
		{"v0.19.7", "0.19.0"},
		{"0.1.0-50-gdeadbee", "0.1.50"},
		{"v0.1.0-50-gdeadbee\n", "0.1.50"},
		{"release-0.1.0-50-gdeadbee", "0.1.50"},
		{"release-v1.2.3", "1.2.0"},
		{"1.2.3-10-abc123", "1.2.10"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseDescribe(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDescribeMalformed(t *testing.T) {
	for _, line := range []string{"", "nightly", "1.2", "1.2.3.4", "1.2.3-rc1"} {
		_, err := ParseDescribe(line)
		require.ErrorIs(t, err, ErrMalformedDescribe, line)
	}
}

// fakeGit writes an executable shell script standing in for git.
func fakeGit(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script git stub needs a POSIX shell")
	}

	path := filepath.Join(t.TempDir(), "git")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o700))

	return path
}

func TestDescribe(t *testing.T) {
	r := &Resolver{
		Root: t.TempDir(),
		Git:  fakeGit(t, `echo "v0.1.0-50-gdeadbee"; echo "second line"; echo "noise" >&2`),
	}

	got, err := r.Describe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0.1.50", got)
}

func TestDescribeNoOutput(t *testing.T) {
	r := &Resolver{Root: t.TempDir(), Git: fakeGit(t, "exit 0")}

	_, err := r.Describe(context.Background())
	require.ErrorIs(t, err, ErrNoOutput)
}

func TestDescribeFailure(t *testing.T) {
	r := &Resolver{Root: t.TempDir(), Git: fakeGit(t, "echo 'fatal: No names found' >&2; exit 128")}

	_, err := r.Describe(context.Background())
	require.Error(t, err)
}

func TestDescribeTimeout(t *testing.T) {
	r := &Resolver{
		Root:            t.TempDir(),
		Git:             fakeGit(t, "exec sleep 5"),
		DescribeTimeout: 50 * time.Millisecond,
	}

	start := time.Now()
	_, err := r.Describe(context.Background())
	require.Error(t, err)
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestDescribeTimeoutWithGrandchild(t *testing.T) {
	// sh stays the parent and sleep inherits stdout
	r := &Resolver{
		Root:            t.TempDir(),
		Git:             fakeGit(t, "sleep 5; echo 1.2.3"),
		DescribeTimeout: 50 * time.Millisecond,
	}

	start := time.Now()
	_, err := r.Describe(context.Background())
	require.Error(t, err)
	assert.Less(t, time.Since(start), pipeWaitDelay+2*time.Second)
}

func TestDescribeParentDeadline(t *testing.T) {
	r := &Resolver{Root: t.TempDir(), Git: fakeGit(t, "sleep 5; echo 1.2.3")}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := r.Describe(ctx)
	require.Error(t, err)
	assert.Less(t, time.Since(start), pipeWaitDelay+2*time.Second)
}
