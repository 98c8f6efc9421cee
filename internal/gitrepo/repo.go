// Package gitrepo implements the version-control gateway on go-git.
package gitrepo

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/conn-castle/autobump/internal/commits"
	"github.com/conn-castle/autobump/internal/messages"
)

// commitDateLayout is the fixed, sortable timestamp format used in commit
// listings.
const commitDateLayout = "2006-01-02 15:04:05"

// Repo wraps one local git repository.
type Repo struct {
	repo *git.Repository
}

// Open opens the repository containing path, searching parent directories
// for the .git dir the way the git CLI does.
func Open(path string) (*Repo, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf(messages.GitOpenErrFmt, path, err)
	}
	return &Repo{repo: repo}, nil
}

// IsDirty reports whether the working tree has uncommitted or untracked
// changes.
func (r *Repo) IsDirty() (bool, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return false, fmt.Errorf(messages.GitWorktreeErrFmt, err)
	}
	status, err := wt.Status()
	if err != nil {
		return false, fmt.Errorf(messages.GitStatusErrFmt, err)
	}
	return !status.IsClean(), nil
}

// HeadIsValid reports whether HEAD resolves, which is false for a repository
// with no commits.
func (r *Repo) HeadIsValid() bool {
	_, err := r.repo.Head()
	return err == nil
}

// LatestTag returns the most recent tag reachable from HEAD by walking the
// commit log until a tagged commit is met (the `git describe --tags
// --abbrev=0` answer). ok is false when no reachable tag exists.
func (r *Repo) LatestTag() (name string, ok bool, err error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", false, fmt.Errorf(messages.GitResolveHeadErrFmt, err)
	}
	targets, err := r.tagTargets()
	if err != nil {
		return "", false, err
	}
	if len(targets) == 0 {
		return "", false, nil
	}

	iter, err := r.repo.Log(&git.LogOptions{From: head.Hash(), Order: git.LogOrderCommitterTime})
	if err != nil {
		return "", false, fmt.Errorf(messages.GitLogErrFmt, err)
	}
	found := ""
	err = iter.ForEach(func(c *object.Commit) error {
		if names, hit := targets[c.Hash]; hit {
			sort.Strings(names)
			found = names[0]
			return storer.ErrStop
		}
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf(messages.GitLogErrFmt, err)
	}
	return found, found != "", nil
}

// CommitsSince lists commits reachable from HEAD and not reachable from tag,
// most-recent-first. An empty tag lists the full history.
func (r *Repo) CommitsSince(tag string) ([]commits.Commit, error) {
	head, err := r.repo.Head()
	if err != nil {
		return nil, fmt.Errorf(messages.GitResolveHeadErrFmt, err)
	}

	exclude := map[plumbing.Hash]bool{}
	if tag != "" {
		tagged, err := r.tagCommit(tag)
		if err != nil {
			return nil, err
		}
		boundary := object.NewCommitPreorderIter(tagged, nil, nil)
		if err := boundary.ForEach(func(c *object.Commit) error {
			exclude[c.Hash] = true
			return nil
		}); err != nil {
			return nil, fmt.Errorf(messages.GitLogErrFmt, err)
		}
	}

	decorations, err := r.decorations(head)
	if err != nil {
		return nil, err
	}

	iter, err := r.repo.Log(&git.LogOptions{From: head.Hash(), Order: git.LogOrderCommitterTime})
	if err != nil {
		return nil, fmt.Errorf(messages.GitLogErrFmt, err)
	}
	var out []commits.Commit
	err = iter.ForEach(func(c *object.Commit) error {
		if exclude[c.Hash] {
			return nil
		}
		out = append(out, commits.Commit{
			Message:    strings.TrimSpace(c.Message),
			ShortID:    c.Hash.String()[:7],
			Author:     c.Author.Name,
			Date:       c.Author.When.Format(commitDateLayout),
			Decoration: decorations[c.Hash],
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf(messages.GitLogErrFmt, err)
	}
	return out, nil
}

// StageAndCommit stages paths and records a commit with message, returning
// the new commit id.
func (r *Repo) StageAndCommit(paths []string, message string) (string, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return "", fmt.Errorf(messages.GitWorktreeErrFmt, err)
	}
	for _, path := range paths {
		rel, err := worktreeRel(wt, path)
		if err != nil {
			return "", err
		}
		if _, err := wt.Add(rel); err != nil {
			return "", fmt.Errorf(messages.GitStageErrFmt, rel, err)
		}
	}
	hash, err := wt.Commit(message, &git.CommitOptions{})
	if err != nil {
		return "", fmt.Errorf(messages.GitCommitErrFmt, err)
	}
	return hash.String(), nil
}

// TagExists reports whether a tag named name exists.
func (r *Repo) TagExists(name string) (bool, error) {
	_, err := r.repo.Tag(name)
	if errors.Is(err, git.ErrTagNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf(messages.GitResolveTagErrFmt, name, err)
	}
	return true, nil
}

// CreateTag creates an annotated tag at HEAD.
func (r *Repo) CreateTag(name string, message string) error {
	head, err := r.repo.Head()
	if err != nil {
		return fmt.Errorf(messages.GitResolveHeadErrFmt, err)
	}
	if _, err := r.repo.CreateTag(name, head.Hash(), &git.CreateTagOptions{Message: message}); err != nil {
		return fmt.Errorf(messages.GitCreateTagErrFmt, name, err)
	}
	return nil
}

// RemoteExists reports whether a remote named name is configured.
func (r *Repo) RemoteExists(name string) (bool, error) {
	_, err := r.repo.Remote(name)
	if errors.Is(err, git.ErrRemoteNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf(messages.GitRemoteErrFmt, name, err)
	}
	return true, nil
}

// PushTag pushes a single tag ref to remote.
func (r *Repo) PushTag(remote string, tag string) error {
	refspec := gitconfig.RefSpec(fmt.Sprintf("refs/tags/%s:refs/tags/%s", tag, tag))
	err := r.repo.Push(&git.PushOptions{RemoteName: remote, RefSpecs: []gitconfig.RefSpec{refspec}})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return fmt.Errorf(messages.GitPushTagErrFmt, tag, remote, err)
	}
	return nil
}

// PushCurrentBranch pushes the branch HEAD points at to remote and records
// it as the branch's upstream.
func (r *Repo) PushCurrentBranch(remote string) error {
	head, err := r.repo.Head()
	if err != nil {
		return fmt.Errorf(messages.GitResolveHeadErrFmt, err)
	}
	if !head.Name().IsBranch() {
		return errors.New(messages.GitDetachedHeadPush)
	}

	refspec := gitconfig.RefSpec(fmt.Sprintf("%s:%s", head.Name(), head.Name()))
	err = r.repo.Push(&git.PushOptions{RemoteName: remote, RefSpecs: []gitconfig.RefSpec{refspec}})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return fmt.Errorf(messages.GitPushBranchErrFmt, head.Name().Short(), remote, err)
	}
	return r.setUpstream(head.Name(), remote)
}

// setUpstream writes the branch tracking config, the go-git equivalent of
// `git push --set-upstream`.
func (r *Repo) setUpstream(branch plumbing.ReferenceName, remote string) error {
	cfg, err := r.repo.Config()
	if err != nil {
		return fmt.Errorf(messages.GitSetUpstreamErrFmt, branch.Short(), err)
	}
	if cfg.Branches == nil {
		cfg.Branches = map[string]*gitconfig.Branch{}
	}
	entry := cfg.Branches[branch.Short()]
	if entry == nil {
		entry = &gitconfig.Branch{Name: branch.Short()}
		cfg.Branches[branch.Short()] = entry
	}
	entry.Remote = remote
	entry.Merge = branch
	if err := r.repo.SetConfig(cfg); err != nil {
		return fmt.Errorf(messages.GitSetUpstreamErrFmt, branch.Short(), err)
	}
	return nil
}

// tagTargets maps commit hashes to the tag names pointing at them, peeling
// annotated tag objects to their targets.
func (r *Repo) tagTargets() (map[plumbing.Hash][]string, error) {
	iter, err := r.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf(messages.GitListTagsErrFmt, err)
	}
	targets := map[plumbing.Hash][]string{}
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		hash := ref.Hash()
		if tag, err := r.repo.TagObject(hash); err == nil {
			hash = tag.Target
		}
		targets[hash] = append(targets[hash], ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf(messages.GitListTagsErrFmt, err)
	}
	return targets, nil
}

// tagCommit resolves a tag name to the commit it points at.
func (r *Repo) tagCommit(name string) (*object.Commit, error) {
	ref, err := r.repo.Tag(name)
	if err != nil {
		return nil, fmt.Errorf(messages.GitResolveTagErrFmt, name, err)
	}
	hash := ref.Hash()
	if tag, err := r.repo.TagObject(hash); err == nil {
		hash = tag.Target
	}
	commit, err := r.repo.CommitObject(hash)
	if err != nil {
		return nil, fmt.Errorf(messages.GitResolveTagErrFmt, name, err)
	}
	return commit, nil
}

// decorations maps commit hashes to log-style ref annotations, e.g.
// "(HEAD -> main, develop)".
func (r *Repo) decorations(head *plumbing.Reference) (map[plumbing.Hash]string, error) {
	branchIter, err := r.repo.Branches()
	if err != nil {
		return nil, fmt.Errorf(messages.GitListBranchesErrFmt, err)
	}
	tips := map[plumbing.Hash][]string{}
	err = branchIter.ForEach(func(ref *plumbing.Reference) error {
		tips[ref.Hash()] = append(tips[ref.Hash()], ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf(messages.GitListBranchesErrFmt, err)
	}

	current := ""
	if head.Name().IsBranch() {
		current = head.Name().Short()
	}
	out := map[plumbing.Hash]string{}
	for hash, names := range tips {
		sort.Strings(names)
		parts := []string{}
		if hash == head.Hash() {
			if current != "" {
				parts = append(parts, "HEAD -> "+current)
			} else {
				parts = append(parts, "HEAD")
			}
		}
		for _, name := range names {
			if hash == head.Hash() && name == current {
				continue
			}
			parts = append(parts, name)
		}
		out[hash] = "(" + strings.Join(parts, ", ") + ")"
	}
	if _, ok := out[head.Hash()]; !ok {
		// Detached HEAD with no branch tip at this commit.
		out[head.Hash()] = "(HEAD)"
	}
	return out, nil
}

// worktreeRel converts path to the slash-separated form relative to the
// worktree root that go-git's staging API expects.
func worktreeRel(wt *git.Worktree, path string) (string, error) {
	if !filepath.IsAbs(path) {
		return filepath.ToSlash(path), nil
	}
	rel, err := filepath.Rel(wt.Filesystem.Root(), path)
	if err != nil {
		return "", fmt.Errorf(messages.GitRelPathErrFmt, path, err)
	}
	return filepath.ToSlash(rel), nil
}
