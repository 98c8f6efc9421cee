// Package commits models commit history entries and classifies them into a
// single version-bump level using conventional-commit rules.
package commits

import (
	"regexp"

	"github.com/conn-castle/autobump/internal/semver"
)

// Commit is one history entry considered for the bump decision.
type Commit struct {
	// Message is the full, trimmed commit message and may span multiple lines.
	Message string
	// ShortID is the abbreviated commit hash (7 characters).
	ShortID string
	// Author is the commit author's name.
	Author string
	// Date is the commit timestamp in "YYYY-MM-DD HH:MM:SS" form.
	Date string
	// Decoration holds ref annotations such as "(HEAD -> main)", or "".
	Decoration string
}

// bumpRules is the ordered conventional-commit rule table. The first rule
// matching a message decides that commit's contribution; later rules are not
// consulted for it. The "!" and "feat:" forms anchor at the start of the
// message, so only its first line is relevant to them, while the BREAKING
// CHANGE marker may appear anywhere in the body.
var bumpRules = []struct {
	pattern *regexp.Regexp
	level   semver.Level
}{
	{regexp.MustCompile(`BREAKING CHANGE`), semver.Major},
	{regexp.MustCompile(`^(feat|fix)!:`), semver.Major},
	{regexp.MustCompile(`^feat:`), semver.Minor},
}

// InferBump reduces a commit set to a single bump level: the maximum level
// triggered by any single commit, and Patch when none match. Commit order
// does not affect the result.
func InferBump(list []Commit) semver.Level {
	highest := semver.Patch
	for _, c := range list {
		for _, rule := range bumpRules {
			if !rule.pattern.MatchString(c.Message) {
				continue
			}
			if rule.level > highest {
				highest = rule.level
			}
			break
		}
	}
	return highest
}
