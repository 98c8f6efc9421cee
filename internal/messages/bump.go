package messages

// Bump pipeline messages and error texts.
const (
	// BumpDirtyRepo is the terminal dirty-tree condition.
	BumpDirtyRepo = "there are uncommitted changes in your working directory"
	// BumpDirtyWarning is emitted when a dirty tree is allowed by policy.
	BumpDirtyWarning      = "Warning: there are uncommitted changes in your working directory."
	BumpNoCommits         = "no commits found in the repository"
	BumpNoCommitsSinceTag = "no new commits found since last tag"
	BumpAborted           = "version bump aborted by user"

	BumpTagExistsFmt = "tag %q already exists"
	BumpNoRemoteFmt  = "no remote named %q found"

	BumpCurrentVersionFmt = "Current version: %s\n"
	BumpFoundCommitsFmt   = "Found %d commits since last tag.\n"
	BumpChangesHeaderFmt  = "These changes will be applied to %s\n\n"

	// BumpDefaultCommitMessageFmt is the commit message used when none is supplied.
	BumpDefaultCommitMessageFmt = "chore: bump version %s -> %s"
	// BumpTagMessageFmt is the annotated tag message.
	BumpTagMessageFmt = "Release %s"

	BumpCommittedFmt     = "Committed with message: %s\n"
	BumpTaggedFmt        = "Created git tag: %s\n"
	BumpPushedTagFmt     = "Pushed tag %s to %s\n"
	BumpPushedBranchFmt  = "Pushed commit to %s\n"
	BumpDryRunPlanHeader = "Dry run: the following operations would be performed:"

	BumpPlanWriteFmt      = "- Write changes to %s"
	BumpPlanCommitFmt     = "- Commit with message: %s"
	BumpPlanTagFmt        = "- Create tag: %s"
	BumpPlanPushTagFmt    = "- Push tag %s to %s"
	BumpPlanPushBranchFmt = "- Push commit to %s"
)

// Semantic-version messages.
const (
	// SemverInvalid is the unparseable-version condition.
	SemverInvalid = "invalid version format"
	// SemverParseErrFmt wraps SemverInvalid with the offending input.
	SemverParseErrFmt = "invalid semantic version %q: %w"
)
