package messages

// Git gateway error texts.
const (
	GitOpenErrFmt         = "open repository at %s: %w"
	GitWorktreeErrFmt     = "resolve worktree: %w"
	GitStatusErrFmt       = "read worktree status: %w"
	GitResolveHeadErrFmt  = "resolve HEAD: %w"
	GitListTagsErrFmt     = "list tags: %w"
	GitListBranchesErrFmt = "list branches: %w"
	GitLogErrFmt          = "walk commit log: %w"
	GitResolveTagErrFmt   = "resolve tag %s: %w"
	GitRelPathErrFmt      = "resolve %s relative to worktree: %w"
	GitStageErrFmt        = "stage %s: %w"
	GitCommitErrFmt       = "create commit: %w"
	GitCreateTagErrFmt    = "create tag %s: %w"
	GitRemoteErrFmt       = "resolve remote %s: %w"
	GitPushTagErrFmt      = "push tag %s to %s: %w"
	GitPushBranchErrFmt   = "push branch %s to %s: %w"
	GitSetUpstreamErrFmt  = "set upstream for branch %s: %w"
	GitDetachedHeadPush   = "cannot push the current branch from a detached HEAD"
)
