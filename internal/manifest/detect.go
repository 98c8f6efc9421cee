package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/conn-castle/autobump/internal/messages"
)

// detectionOrder is the priority used when several project descriptors
// coexist in one directory.
var detectionOrder = []struct {
	file     string
	language string
}{
	{"package.json", LanguageNode},
	{"pyproject.toml", LanguagePython},
	{"setup.py", LanguagePython},
	{"Cargo.toml", LanguageRust},
}

// Detect finds the project descriptor in dir and returns its dialect gateway.
func Detect(dir string) (Manifest, error) {
	for _, candidate := range detectionOrder {
		path := filepath.Join(dir, candidate.file)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return ForLanguage(candidate.language, path)
		}
	}
	return nil, fmt.Errorf(messages.ManifestNoProjectFileFmt, dir)
}

// DefaultPath returns the conventional descriptor path for language in dir.
// For python, pyproject.toml is preferred over setup.py when both exist.
func DefaultPath(dir string, language string) (string, error) {
	var path string
	switch language {
	case LanguageNode:
		path = filepath.Join(dir, "package.json")
	case LanguagePython:
		pyproject := filepath.Join(dir, "pyproject.toml")
		if _, err := os.Stat(pyproject); err == nil {
			return pyproject, nil
		}
		path = filepath.Join(dir, "setup.py")
	case LanguageRust:
		path = filepath.Join(dir, "Cargo.toml")
	default:
		return "", fmt.Errorf(messages.ManifestUnsupportedLanguageFmt, language)
	}
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf(messages.ManifestNotFoundFmt, path, err)
	}
	return path, nil
}
