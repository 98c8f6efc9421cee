// Package manifest reads and rewrites the version field of project
// descriptor files across the supported dialects.
//
// Reads go through a real parser for the dialect; writes never reserialize
// the document. A rewrite substitutes the version value in place so that
// every other byte of the file survives, including comments, key order, and
// indentation. Reserializing codecs cannot honor that contract.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/conn-castle/autobump/internal/messages"
)

// Manifest is the version-field gateway for one project descriptor file.
// WithVersion must leave every byte other than the version value untouched.
type Manifest interface {
	// Path returns the manifest location on disk.
	Path() string
	// Content returns the current raw document.
	Content() (string, error)
	// ReadVersion extracts the current version string.
	ReadVersion() (string, error)
	// WithVersion returns the full document content with the version field
	// replaced by version.
	WithVersion(version string) (string, error)
	// Write persists content to the manifest path.
	Write(content string) error
}

var (
	// ErrVersionFieldMissing reports a manifest without a recognizable
	// version field on read.
	ErrVersionFieldMissing = errors.New(messages.ManifestVersionFieldMissing)
	// ErrVersionFieldNotFound reports a rewrite that found no recognized
	// version assignment to substitute.
	ErrVersionFieldNotFound = errors.New(messages.ManifestVersionFieldNotFound)
)

// Supported language identifiers.
const (
	LanguageNode   = "node"
	LanguagePython = "python"
	LanguageRust   = "rust"
)

// manifestFile carries the on-disk location shared by every dialect.
type manifestFile struct {
	path string
}

func (f manifestFile) Path() string {
	return f.path
}

func (f manifestFile) Content() (string, error) {
	data, err := f.read()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (f manifestFile) read() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf(messages.ManifestReadErrFmt, f.path, err)
	}
	return data, nil
}

// Write persists content, keeping the existing file's permissions when the
// file already exists.
func (f manifestFile) Write(content string) error {
	if err := os.WriteFile(f.path, []byte(content), 0o644); err != nil {
		return fmt.Errorf(messages.ManifestWriteErrFmt, f.path, err)
	}
	return nil
}

// ForLanguage returns the dialect gateway for language operating on path.
func ForLanguage(language string, path string) (Manifest, error) {
	switch language {
	case LanguageNode:
		return &NodeManifest{manifestFile{path}}, nil
	case LanguagePython:
		if filepath.Base(path) == "pyproject.toml" {
			return &TOMLManifest{manifestFile: manifestFile{path}, table: "project"}, nil
		}
		return &SourceManifest{manifestFile{path}}, nil
	case LanguageRust:
		return &TOMLManifest{manifestFile: manifestFile{path}, table: "package"}, nil
	default:
		return nil, fmt.Errorf(messages.ManifestUnsupportedLanguageFmt, language)
	}
}

// FromPath infers the dialect from the file name alone.
func FromPath(path string) (Manifest, error) {
	switch filepath.Base(path) {
	case "package.json":
		return ForLanguage(LanguageNode, path)
	case "pyproject.toml", "setup.py":
		return ForLanguage(LanguagePython, path)
	case "Cargo.toml":
		return ForLanguage(LanguageRust, path)
	default:
		return nil, fmt.Errorf(messages.ManifestUnknownFileFmt, path)
	}
}
