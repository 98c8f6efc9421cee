package manifest

import (
	"fmt"
	"regexp"

	"github.com/conn-castle/autobump/internal/messages"
)

// SourceManifest handles source files such as setup.py where the version is
// recovered by regex substitution rather than a document parser.
type SourceManifest struct {
	manifestFile
}

// sourceVersionPatterns are tried in order; the first one matching the file
// decides both the read and the substitution site.
var sourceVersionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(version\s*=\s*["'])([^"']+)(["'])`),
	regexp.MustCompile(`(__version__\s*=\s*["'])([^"']+)(["'])`),
}

func (m *SourceManifest) ReadVersion() (string, error) {
	content, err := m.Content()
	if err != nil {
		return "", err
	}
	for _, pattern := range sourceVersionPatterns {
		if sub := pattern.FindStringSubmatch(content); sub != nil {
			return sub[2], nil
		}
	}
	return "", fmt.Errorf(messages.ManifestNoPatternFmt, m.path, ErrVersionFieldMissing)
}

// WithVersion replaces the matched version literal in place, preserving all
// surrounding text. A file without a recognized assignment fails rather than
// returning unmodified content.
func (m *SourceManifest) WithVersion(version string) (string, error) {
	content, err := m.Content()
	if err != nil {
		return "", err
	}
	for _, pattern := range sourceVersionPatterns {
		idx := pattern.FindStringSubmatchIndex(content)
		if idx == nil {
			continue
		}
		return content[:idx[3]] + version + content[idx[6]:], nil
	}
	return "", fmt.Errorf(messages.ManifestNoPatternFmt, m.path, ErrVersionFieldNotFound)
}
