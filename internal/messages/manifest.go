package messages

// Manifest gateway messages.
const (
	ManifestReadErrFmt  = "read %s: %w"
	ManifestWriteErrFmt = "write %s: %w"
	ManifestParseErrFmt = "parse %s: %w"

	// ManifestVersionFieldMissing is the missing-version-field read condition.
	ManifestVersionFieldMissing = "version field missing"
	// ManifestVersionFieldNotFound is the no-recognized-assignment write condition.
	ManifestVersionFieldNotFound = "no recognized version assignment found"

	ManifestNoFieldFmt   = "%s: no %s field: %w"
	ManifestNoPatternFmt = "%s: %w"

	ManifestUnsupportedLanguageFmt = "unsupported language %q (supported: node, python, rust)"
	ManifestUnknownFileFmt         = "cannot infer a manifest dialect for %s; pass --language"
	ManifestNotFoundFmt            = "manifest %s not found: %w"
	ManifestNoProjectFileFmt       = "no supported project file found in %s (looked for package.json, pyproject.toml, setup.py, Cargo.toml)"
)
