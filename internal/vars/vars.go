// Package vars is an internal technical variable store used at build time,
// populated with values based on the state of the git repository.
//
// Commit and Version are the baked-in fallback consulted when no git
// checkout is available at runtime. Empty means "not baked".
package vars

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// License is the project license identifier.
const License = "GPL-3.0"

// Unknown stands in for a value that is neither baked in nor detectable.
const Unknown = "unknown"

var (
	// Name is the project name.
	Name = "Overviewer"

	// Version of application in MAJOR.MINOR.PATCH form, e.g. 0.19.7
	Version = ""

	// Commit is the full git commit SHA.
	Commit = ""

	// Revision build, count of commits
	Revision = 0

	// BuildTime is the UTC build start time.
	BuildTime = time.Unix(0, 0)

	// URL to repository (https)
	URL = "https://github.com/overviewer/Minecraft-Overviewer"

	_revision  string
	_buildTime string
)

// BuildInfo contains build metadata.
type BuildInfo struct {
	// betteralign:ignore

	// Name is the project name.
	Name string `json:"name" example:"Overviewer"`

	// Version in MAJOR.MINOR.PATCH form or "unknown".
	Version string `json:"version" example:"0.19.7"`

	// Commit is the full git commit SHA or "unknown".
	Commit string `json:"commit" example:"da15c174cd2ada1ad247906536c101e8f6799def"`

	// Current git commit short SHA
	CommitShort string `json:"commit_short,omitempty" example:"da15c17"`

	// Revision build, count of commits
	Revision int `json:"revision,omitempty" example:"1337"`

	// BuildTime is the UTC build start time.
	BuildTime time.Time `json:"build_time,omitempty" example:"1970-01-01T00:00:00Z"`

	// URL to repository (https)
	URL string `json:"url,omitempty" example:"https://github.com/overviewer/Minecraft-Overviewer"`

	// License
	License string `json:"license,omitempty" example:"GPL-3.0"`
}

func init() {
	if n, err := strconv.Atoi(_revision); err == nil {
		Revision = n
	}

	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

// Info returns build info for the given resolved version and commit,
// filled with the static metadata of this build.
func Info(version, commit string) BuildInfo {
	return BuildInfo{
		Name:        Name,
		Version:     version,
		Commit:      commit,
		CommitShort: ShortSHA(commit),
		Revision:    Revision,
		BuildTime:   BuildTime,
		URL:         URL,
		License:     License,
	}
}

// Baked returns build info from the baked-in values only, with Unknown
// for anything not set at build time.
func Baked() BuildInfo {
	return Info(orUnknown(Version), orUnknown(Commit))
}

func orUnknown(v string) string {
	if v == "" {
		return Unknown
	}

	return v
}

// Print writes build info in a human readable form to w.
func (b BuildInfo) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w, `name:     %s
url:      %s
file:     %s
version:  %s
commit:   %s
revision: %d
built:    %s
license:  %s
`, b.Name, b.URL, os.Args[0], b.Version, b.Commit, b.Revision, b.BuildTime, b.License)

	return err
}

// ShortSHA returns the first 7 characters of a hex commit SHA.
// Anything that does not look like a SHA (e.g. "unknown" or a raw ref line)
// is returned as is.
func ShortSHA(commit string) string {
	if len(commit) <= 7 {
		return commit
	}

	for _, c := range commit {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return commit
		}
	}

	return commit[:7]
}
