package version

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const symbolicRefPrefix = "ref: "

// ReadHead returns the revision HEAD points at inside root/.git.
//
// A direct HEAD is returned trimmed. A symbolic HEAD is resolved through the
// loose ref file; when that file is missing (packed refs, unborn branch) the
// raw HEAD line such as "ref: refs/heads/main" is returned instead.
func ReadHead(root string) (string, error) {
	gitDir := filepath.Join(root, ".git")

	st, err := os.Stat(gitDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w in %s", ErrNoGitDir, root)
		}
		return "", err
	}
	if !st.IsDir() {
		return "", fmt.Errorf("%w in %s", ErrNoGitDir, root)
	}

	data, err := os.ReadFile(filepath.Join(gitDir, "HEAD"))
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD: %w", err)
	}

	head := strings.TrimSpace(string(data))

	ref, ok := strings.CutPrefix(head, symbolicRefPrefix)
	if !ok {
		return head, nil
	}

	refData, err := os.ReadFile(filepath.Join(gitDir, filepath.FromSlash(ref)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return head, nil
		}
		return "", fmt.Errorf("failed to read ref %s: %w", ref, err)
	}

	return strings.TrimSpace(string(refData)), nil
}
