package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "autobump"
	// RootShort is the short description for the root command.
	RootShort = "Bump semantic versions from conventional-commit history"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// BumpUse is the bump command name.
	BumpUse   = "bump"
	BumpShort = "Infer a version bump from commits since the last tag and apply it"

	BumpFlagProjectFile   = "Path to the project manifest (default: auto-detect)"
	BumpFlagLanguage      = "Manifest dialect override: node, python, or rust"
	BumpFlagDryRun        = "Show the version change without writing"
	BumpFlagVerbose       = "Show verbose output"
	BumpFlagAllowDirty    = "Allow uncommitted changes"
	BumpFlagYes           = "Apply without asking for confirmation"
	BumpFlagCommit        = "Commit the manifest change"
	BumpFlagCommitMessage = "Commit message override"
	BumpFlagTag           = "Create a git tag for the new version (prompts when omitted)"
	BumpFlagTagName       = "Tag name override"
	BumpFlagPush          = "Push the tag and current branch to the remote repository"

	BumpRequiresTerminal = "confirmation requires an interactive terminal; re-run with --yes to apply without prompts or --dry-run to preview"

	// PromptYesDefaultFmt formats yes/no prompts with yes as default.
	PromptYesDefaultFmt = "%s [Y/n]: "
	// PromptNoDefaultFmt formats yes/no prompts with no as default.
	PromptNoDefaultFmt = "%s [y/N]: "
	// PromptInvalidResponseFmt reports an unrecognized final answer.
	PromptInvalidResponseFmt = "invalid response: %q"
	// PromptRetryYesNo asks the user to answer again.
	PromptRetryYesNo = "Please answer y or n."

	BumpConfirmPromptFmt = "Apply these changes and bump the version to %s?"
	BumpConfirmTagPrompt = "Create a tag for this version?"

	BumpResultFmt       = "Bumped: %s -> %s\n"
	BumpDryRunResultFmt = "Dry run. Would bump: %s -> %s\n"
)
