package version

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"
)

// pipeWaitDelay bounds the wait for stdout to close once git was killed.
const pipeWaitDelay = time.Second

// Describe runs "git describe --tags" in the install root and converts the
// first line of its output with ParseDescribe.
func (r *Resolver) Describe(ctx context.Context) (string, error) {
	if r.DescribeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.DescribeTimeout)
		defer cancel()
	}

	git := r.Git
	if git == "" {
		git = "git"
	}

	cmd := exec.CommandContext(ctx, git, "describe", "--tags")
	cmd.Dir = r.Root
	cmd.Stderr = io.Discard
	// a killed wrapper (e.g. the Git for Windows shim) may leave a child
	// holding stdout; stop waiting for it shortly after cancellation
	cmd.WaitDelay = pipeWaitDelay

	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git describe: %w", err)
	}

	line, _, _ := strings.Cut(string(out), "\n")
	if strings.TrimSpace(line) == "" {
		return "", ErrNoOutput
	}

	return ParseDescribe(line)
}

// ParseDescribe turns a "git describe --tags" line into MAJOR.MINOR.PATCH.
//
// Optional "release-" and "v" prefixes are stripped. A plain tag keeps its
// major and minor and gets patch 0 ("0.1.3" -> "0.1.0"). A tag followed by
// a commit count and hash uses the count as patch ("0.1.0-50-gabc" -> "0.1.50").
func ParseDescribe(line string) (string, error) {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "release-")
	line = strings.TrimPrefix(line, "v")

	tokens := strings.Split(strings.ReplaceAll(line, "-", "."), ".")

	v, err := collapse(tokens)
	if err != nil {
		return "", fmt.Errorf("%w: %q", err, line)
	}

	return v, nil
}

// collapse applies the token policy of ParseDescribe.
func collapse(tokens []string) (string, error) {
	switch len(tokens) {
	case 5:
		// MAJOR MINOR PATCH COUNT HASH
		tokens = []string{tokens[0], tokens[1], tokens[3]}

	case 3:
		tokens = []string{tokens[0], tokens[1], "0"}

	default:
		return "", ErrMalformedDescribe
	}

	return strings.Join(tokens, "."), nil
}
