package version

import "errors"

var (
	// ErrMalformedDescribe indicates that "git describe" output is neither
	// TAG nor TAG-COUNT-HASH with a three component tag.
	ErrMalformedDescribe = errors.New("malformed describe output")

	// ErrNoOutput indicates that the git command produced no stdout.
	ErrNoOutput = errors.New("git produced no output")

	// ErrNoGitDir indicates that the install root is not a git checkout.
	ErrNoGitDir = errors.New("no .git directory")
)
