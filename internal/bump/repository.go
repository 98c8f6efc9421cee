package bump

import "github.com/conn-castle/autobump/internal/commits"

// Repository is the version-control surface the bump pipeline consumes.
// internal/gitrepo provides the go-git implementation.
type Repository interface {
	// IsDirty reports uncommitted or untracked working-tree changes.
	IsDirty() (bool, error)
	// HeadIsValid reports whether the repository has any commits.
	HeadIsValid() bool
	// LatestTag returns the most recent tag reachable from HEAD, or ok=false.
	LatestTag() (name string, ok bool, err error)
	// CommitsSince lists commits after tag, most-recent-first; an empty tag
	// lists the full history.
	CommitsSince(tag string) ([]commits.Commit, error)
	// StageAndCommit stages paths and commits them with message.
	StageAndCommit(paths []string, message string) (string, error)
	// TagExists reports whether a tag named name exists.
	TagExists(name string) (bool, error)
	// CreateTag creates an annotated tag at HEAD.
	CreateTag(name string, message string) error
	// RemoteExists reports whether a remote named name is configured.
	RemoteExists(name string) (bool, error)
	// PushTag pushes one tag ref to remote.
	PushTag(remote string, tag string) error
	// PushCurrentBranch pushes the current branch to remote with upstream
	// tracking.
	PushCurrentBranch(remote string) error
}
