package manifest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/autobump/internal/messages"
)

// TOMLManifest handles TOML descriptors with the version nested under one
// table: pyproject.toml ([project]) and Cargo.toml ([package]).
type TOMLManifest struct {
	manifestFile
	table string
}

var (
	tomlTableHeader = regexp.MustCompile(`^\s*\[([^\]]+)\]`)
	tomlVersionLine = regexp.MustCompile(`^(\s*version\s*=\s*["'])([^"']+)(["'].*)$`)
)

func (m *TOMLManifest) ReadVersion() (string, error) {
	data, err := m.read()
	if err != nil {
		return "", err
	}
	return m.versionFrom(data)
}

func (m *TOMLManifest) versionFrom(data []byte) (string, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf(messages.ManifestParseErrFmt, m.path, err)
	}
	table, ok := doc[m.table].(map[string]any)
	if !ok {
		return "", fmt.Errorf(messages.ManifestNoFieldFmt, m.path, m.fieldName(), ErrVersionFieldMissing)
	}
	version, ok := table["version"].(string)
	if !ok {
		return "", fmt.Errorf(messages.ManifestNoFieldFmt, m.path, m.fieldName(), ErrVersionFieldMissing)
	}
	return version, nil
}

// WithVersion substitutes the version value on its own line inside the
// target table, leaving the rest of the document byte-for-byte intact.
// The document is parsed first so a syntactically broken manifest fails as a
// parse error rather than a blind text edit.
func (m *TOMLManifest) WithVersion(version string) (string, error) {
	data, err := m.read()
	if err != nil {
		return "", err
	}
	if _, err := m.versionFrom(data); err != nil {
		return "", err
	}

	lines := strings.SplitAfter(string(data), "\n")
	inTable := false
	for i, line := range lines {
		content := strings.TrimSuffix(line, "\n")
		if header := tomlTableHeader.FindStringSubmatch(content); header != nil {
			inTable = strings.TrimSpace(header[1]) == m.table
			continue
		}
		if !inTable {
			continue
		}
		sub := tomlVersionLine.FindStringSubmatch(content)
		if sub == nil {
			continue
		}
		newline := ""
		if strings.HasSuffix(line, "\n") {
			newline = "\n"
		}
		lines[i] = sub[1] + version + sub[3] + newline
		return strings.Join(lines, ""), nil
	}
	return "", fmt.Errorf(messages.ManifestNoPatternFmt, m.path, ErrVersionFieldNotFound)
}

func (m *TOMLManifest) fieldName() string {
	return m.table + ".version"
}
