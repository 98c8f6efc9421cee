package manifest

import (
	"encoding/json"
	"fmt"

	"github.com/conn-castle/autobump/internal/messages"
)

// NodeManifest handles package.json descriptors with a top-level version key.
type NodeManifest struct {
	manifestFile
}

func (m *NodeManifest) ReadVersion() (string, error) {
	data, err := m.read()
	if err != nil {
		return "", err
	}
	var doc struct {
		Version *string `json:"version"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf(messages.ManifestParseErrFmt, m.path, err)
	}
	if doc.Version == nil {
		return "", fmt.Errorf(messages.ManifestNoFieldFmt, m.path, "version", ErrVersionFieldMissing)
	}
	return *doc.Version, nil
}

// WithVersion substitutes the top-level "version" value in place, keeping
// the document's indentation and key order. Nested "version" keys, such as
// one inside a dependencies or config block, are never touched.
func (m *NodeManifest) WithVersion(version string) (string, error) {
	if _, err := m.ReadVersion(); err != nil {
		return "", err
	}
	content, err := m.Content()
	if err != nil {
		return "", err
	}
	start, end, ok := topLevelVersionSpan(content)
	if !ok {
		return "", fmt.Errorf(messages.ManifestNoPatternFmt, m.path, ErrVersionFieldNotFound)
	}
	return content[:start] + version + content[end:], nil
}

// topLevelVersionSpan returns the byte span between the quotes of the value
// of the document's top-level "version" key. Keys are only considered at
// brace depth 1, so a "version" nested in any sub-object is skipped. The
// document is known to be valid JSON by the time this runs.
func topLevelVersionSpan(content string) (start int, end int, ok bool) {
	depth := 0
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '{', '[':
			depth++
		case '}', ']':
			depth--
		case '"':
			j := jsonStringEnd(content, i)
			if j < 0 {
				return 0, 0, false
			}
			if depth == 1 && content[i+1:j] == "version" {
				k := skipJSONSpace(content, j+1)
				if k < len(content) && content[k] == ':' {
					k = skipJSONSpace(content, k+1)
					if k >= len(content) || content[k] != '"' {
						return 0, 0, false
					}
					vend := jsonStringEnd(content, k)
					if vend < 0 {
						return 0, 0, false
					}
					return k + 1, vend, true
				}
			}
			i = j
		}
	}
	return 0, 0, false
}

// jsonStringEnd returns the index of the closing quote of the string opening
// at i, or -1 when unterminated. Escaped quotes do not terminate it.
func jsonStringEnd(content string, i int) int {
	for j := i + 1; j < len(content); j++ {
		switch content[j] {
		case '\\':
			j++
		case '"':
			return j
		}
	}
	return -1
}

func skipJSONSpace(content string, i int) int {
	for i < len(content) {
		switch content[i] {
		case ' ', '\t', '\n', '\r':
			i++
		default:
			return i
		}
	}
	return i
}
