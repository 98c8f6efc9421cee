// Package semver parses semantic versions and applies bump arithmetic.
package semver

import (
	"errors"
	"fmt"
	"strings"

	mmsemver "github.com/Masterminds/semver/v3"

	"github.com/conn-castle/autobump/internal/messages"
)

// ErrInvalidVersion is a sentinel wrapped by every parse failure.
// Callers can use errors.Is(err, ErrInvalidVersion) to distinguish malformed
// version strings from other failure modes.
var ErrInvalidVersion = errors.New(messages.SemverInvalid)

// Level is the granularity of a version increment, ordered Patch < Minor < Major.
type Level int

const (
	Patch Level = iota
	Minor
	Major
)

// String returns the conventional lowercase level name.
func (l Level) String() string {
	switch l {
	case Major:
		return "major"
	case Minor:
		return "minor"
	default:
		return "patch"
	}
}

// Version is a parsed semantic-version triple.
type Version struct {
	Major uint64
	Minor uint64
	Patch uint64
}

// Parse validates raw as a semantic version and returns its numeric triple.
// Pre-release and build metadata are accepted on input and discarded; a bump
// always produces a bare X.Y.Z.
func Parse(raw string) (Version, error) {
	parsed, err := mmsemver.StrictNewVersion(strings.TrimSpace(raw))
	if err != nil {
		return Version{}, fmt.Errorf(messages.SemverParseErrFmt, raw, ErrInvalidVersion)
	}
	return Version{Major: parsed.Major(), Minor: parsed.Minor(), Patch: parsed.Patch()}, nil
}

// Next returns the version after applying level: the bumped component is
// incremented and every lower-order component is reset to zero.
func (v Version) Next(level Level) Version {
	switch level {
	case Major:
		return Version{Major: v.Major + 1}
	case Minor:
		return Version{Major: v.Major, Minor: v.Minor + 1}
	default:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
	}
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}
