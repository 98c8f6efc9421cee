package bump

import (
	"errors"
	"fmt"

	"github.com/conn-castle/autobump/internal/messages"
)

// Operator-facing terminal conditions. Each one ends the run with a single
// message; none of them is a programming fault.
var (
	// ErrDirtyRepo reports uncommitted changes under the default policy.
	ErrDirtyRepo = errors.New(messages.BumpDirtyRepo)
	// ErrNoCommits reports a repository with no history at all.
	ErrNoCommits = errors.New(messages.BumpNoCommits)
	// ErrNoCommitsSinceTag reports an up-to-date repository: a tag exists
	// and nothing newer is reachable.
	ErrNoCommitsSinceTag = errors.New(messages.BumpNoCommitsSinceTag)
	// ErrAborted reports a declined confirmation prompt.
	ErrAborted = errors.New(messages.BumpAborted)
)

// TagExistsError reports an attempt to create a tag that already exists.
type TagExistsError struct {
	Name string
}

func (e *TagExistsError) Error() string {
	return fmt.Sprintf(messages.BumpTagExistsFmt, e.Name)
}

// NoRemoteError reports a push against a remote that is not configured.
type NoRemoteError struct {
	Remote string
}

func (e *NoRemoteError) Error() string {
	return fmt.Sprintf(messages.BumpNoRemoteFmt, e.Remote)
}
