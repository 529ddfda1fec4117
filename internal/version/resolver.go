// Package version resolves the build hash and the release version of the
// running Overviewer, preferring live repository metadata over values baked
// in at build time.
//
// Every lookup is an ordered chain of providers. The first provider that
// yields a value wins; if none does, the result is Unknown. Results are
// never cached, so two calls may disagree if the checkout changes between
// them.
package version

import (
	"context"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/woozymasta/overviewer-util/internal/config"
	"github.com/woozymasta/overviewer-util/internal/vars"
)

// Unknown is returned when no provider could produce a value.
const Unknown = vars.Unknown

// Provider yields a value or reports ok=false to defer to the next one.
type Provider func(ctx context.Context) (value string, ok bool)

// FirstOf runs providers in order and returns the first value produced,
// or Unknown when every provider declines.
func FirstOf(ctx context.Context, providers ...Provider) string {
	for _, p := range providers {
		if v, ok := p(ctx); ok {
			return v
		}
	}

	return Unknown
}

// Resolver looks up the revision hash and release version.
type Resolver struct {
	// Root is the install root expected to hold the .git directory.
	Root string

	// Git is the git executable used for "git describe".
	Git string

	// BakedCommit and BakedVersion are the build-time fallbacks.
	// Empty means nothing was baked in.
	BakedCommit  string
	BakedVersion string

	// DescribeTimeout bounds "git describe". Zero waits forever.
	DescribeTimeout time.Duration

	// UseBuildInfo enables the Go toolchain VCS stamp as a last resort
	// for the revision hash.
	UseBuildInfo bool
}

// New creates a Resolver from configuration and the baked-in build vars.
func New(cfg config.ResolverConfig) *Resolver {
	root := cfg.Root
	if root == "" {
		root = DefaultRoot()
	}

	// Resolver treats zero as "wait forever"
	timeout, _ := cfg.DescribeTimeout.Bounded()

	return &Resolver{
		Root:            root,
		Git:             cfg.Git,
		BakedCommit:     vars.Commit,
		BakedVersion:    vars.Version,
		DescribeTimeout: timeout,
		UseBuildInfo:    true,
	}
}

// DefaultRoot returns the parent of the directory holding the running
// executable, i.e. the checkout root for a binary built into ./bin.
// Returns "" when the executable path is unavailable.
func DefaultRoot() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}

	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return filepath.Dir(filepath.Dir(exe))
}

// RevisionHash returns the checked-out commit hash, the baked-in hash,
// the toolchain VCS revision, or Unknown, in that order of preference.
//
// A checkout whose HEAD is empty or unreadable does not count: the lookup
// moves on to the baked-in hash instead of returning an empty string.
func (r *Resolver) RevisionHash(ctx context.Context) string {
	providers := []Provider{
		r.gitDirHash,
		constant(r.BakedCommit),
	}
	if r.UseBuildInfo {
		providers = append(providers, buildInfoRevision)
	}

	return FirstOf(ctx, providers...)
}

// ReleaseVersion returns the version derived from "git describe --tags",
// the baked-in version, or Unknown, in that order of preference.
func (r *Resolver) ReleaseVersion(ctx context.Context) string {
	return FirstOf(ctx,
		r.describeVersion,
		constant(r.BakedVersion),
	)
}

// Info resolves both values and wraps them with static build metadata.
func (r *Resolver) Info(ctx context.Context) vars.BuildInfo {
	return vars.Info(r.ReleaseVersion(ctx), r.RevisionHash(ctx))
}

func (r *Resolver) gitDirHash(_ context.Context) (string, bool) {
	hash, err := ReadHead(r.Root)
	if err != nil {
		log.Debug().Err(err).Str("root", r.Root).Msg("git checkout not usable for revision hash")
		return "", false
	}

	return hash, hash != ""
}

func (r *Resolver) describeVersion(ctx context.Context) (string, bool) {
	v, err := r.Describe(ctx)
	if err != nil {
		log.Warn().Err(err).Str("git", r.Git).Msg("failed to detect version from git tags")
		return "", false
	}

	return v, true
}

func constant(v string) Provider {
	return func(context.Context) (string, bool) {
		return v, v != ""
	}
}

func buildInfoRevision(context.Context) (string, bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			return s.Value, true
		}
	}

	return "", false
}
