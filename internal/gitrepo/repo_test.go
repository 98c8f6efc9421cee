package gitrepo

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// fixture builds a real repository in a temp dir with deterministic commit
// times so committer-time ordering is stable.
type fixture struct {
	t    *testing.T
	dir  string
	raw  *git.Repository
	repo *Repo
	when time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	raw, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	cfg, err := raw.Config()
	require.NoError(t, err)
	cfg.User.Name = "Dev"
	cfg.User.Email = "dev@example.com"
	require.NoError(t, raw.SetConfig(cfg))

	return &fixture{
		t:    t,
		dir:  dir,
		raw:  raw,
		repo: &Repo{repo: raw},
		when: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (f *fixture) signature() *object.Signature {
	return &object.Signature{Name: "Dev", Email: "dev@example.com", When: f.when}
}

func (f *fixture) commitFile(name string, content string, message string) plumbing.Hash {
	f.t.Helper()
	require.NoError(f.t, os.WriteFile(filepath.Join(f.dir, name), []byte(content), 0o644))
	wt, err := f.raw.Worktree()
	require.NoError(f.t, err)
	_, err = wt.Add(name)
	require.NoError(f.t, err)
	f.when = f.when.Add(time.Minute)
	hash, err := wt.Commit(message, &git.CommitOptions{Author: f.signature(), Committer: f.signature()})
	require.NoError(f.t, err)
	return hash
}

func (f *fixture) annotatedTag(name string, hash plumbing.Hash) {
	f.t.Helper()
	_, err := f.raw.CreateTag(name, hash, &git.CreateTagOptions{
		Tagger:  f.signature(),
		Message: "Release " + name,
	})
	require.NoError(f.t, err)
}

func TestHeadIsValid(t *testing.T) {
	f := newFixture(t)
	require.False(t, f.repo.HeadIsValid(), "fresh repository must have an invalid HEAD")

	f.commitFile("a.txt", "a", "chore: first")
	require.True(t, f.repo.HeadIsValid())
}

func TestIsDirty(t *testing.T) {
	f := newFixture(t)
	f.commitFile("a.txt", "a", "chore: first")

	dirty, err := f.repo.IsDirty()
	require.NoError(t, err)
	require.False(t, dirty)

	require.NoError(t, os.WriteFile(filepath.Join(f.dir, "a.txt"), []byte("changed"), 0o644))
	dirty, err = f.repo.IsDirty()
	require.NoError(t, err)
	require.True(t, dirty, "modified tracked file must read dirty")

	f.commitFile("a.txt", "changed", "chore: settle")
	require.NoError(t, os.WriteFile(filepath.Join(f.dir, "b.txt"), []byte("new"), 0o644))
	dirty, err = f.repo.IsDirty()
	require.NoError(t, err)
	require.True(t, dirty, "untracked file must read dirty")
}

func TestLatestTag(t *testing.T) {
	f := newFixture(t)
	first := f.commitFile("a.txt", "a", "chore: first")

	_, ok, err := f.repo.LatestTag()
	require.NoError(t, err)
	require.False(t, ok)

	f.annotatedTag("v0.1.0", first)
	f.commitFile("b.txt", "b", "feat: widget")

	name, ok, err := f.repo.LatestTag()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "v0.1.0", name, "annotated tag must peel to its target commit")
}

func TestCommitsSinceAll(t *testing.T) {
	f := newFixture(t)
	f.commitFile("a.txt", "a", "chore: first")
	f.commitFile("b.txt", "b", "feat: widget\n")

	list, err := f.repo.CommitsSince("")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "feat: widget", list[0].Message, "most recent first, message trimmed")
	require.Equal(t, "chore: first", list[1].Message)
	require.Len(t, list[0].ShortID, 7)
	require.Equal(t, "Dev", list[0].Author)
	require.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`, list[0].Date)
	require.Equal(t, "(HEAD -> master)", list[0].Decoration)
	require.Empty(t, list[1].Decoration)
}

func TestCommitsSinceTag(t *testing.T) {
	f := newFixture(t)
	first := f.commitFile("a.txt", "a", "chore: first")
	f.annotatedTag("v0.1.0", first)
	f.commitFile("b.txt", "b", "fix: typo")
	f.commitFile("c.txt", "c", "feat: widget")

	list, err := f.repo.CommitsSince("v0.1.0")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "feat: widget", list[0].Message)
	require.Equal(t, "fix: typo", list[1].Message)
}

func TestCommitsSinceTagNoNewCommits(t *testing.T) {
	f := newFixture(t)
	head := f.commitFile("a.txt", "a", "chore: first")
	f.annotatedTag("v0.1.0", head)

	list, err := f.repo.CommitsSince("v0.1.0")
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestStageAndCommit(t *testing.T) {
	f := newFixture(t)
	f.commitFile("pyproject.toml", "[project]\nversion = \"0.2.0\"\n", "chore: init")
	require.NoError(t, os.WriteFile(filepath.Join(f.dir, "pyproject.toml"), []byte("[project]\nversion = \"0.3.0\"\n"), 0o644))

	id, err := f.repo.StageAndCommit([]string{filepath.Join(f.dir, "pyproject.toml")}, "chore: bump version 0.2.0 -> 0.3.0")
	require.NoError(t, err)
	require.Len(t, id, 40)

	dirty, err := f.repo.IsDirty()
	require.NoError(t, err)
	require.False(t, dirty)

	head, err := f.raw.Head()
	require.NoError(t, err)
	commit, err := f.raw.CommitObject(head.Hash())
	require.NoError(t, err)
	require.Equal(t, "chore: bump version 0.2.0 -> 0.3.0", commit.Message)
}

func TestTagExistsAndCreateTag(t *testing.T) {
	f := newFixture(t)
	f.commitFile("a.txt", "a", "chore: first")

	exists, err := f.repo.TagExists("v0.3.0")
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, f.repo.CreateTag("v0.3.0", "Release v0.3.0"))

	exists, err = f.repo.TagExists("v0.3.0")
	require.NoError(t, err)
	require.True(t, exists)

	ref, err := f.raw.Tag("v0.3.0")
	require.NoError(t, err)
	tag, err := f.raw.TagObject(ref.Hash())
	require.NoError(t, err, "CreateTag must produce an annotated tag")
	require.Contains(t, tag.Message, "Release v0.3.0")
}

func TestRemoteExists(t *testing.T) {
	f := newFixture(t)
	f.commitFile("a.txt", "a", "chore: first")

	exists, err := f.repo.RemoteExists("origin")
	require.NoError(t, err)
	require.False(t, exists)

	_, err = f.raw.CreateRemote(&gitconfig.RemoteConfig{Name: "origin", URLs: []string{f.t.TempDir()}})
	require.NoError(t, err)

	exists, err = f.repo.RemoteExists("origin")
	require.NoError(t, err)
	require.True(t, exists)
}

// bareRemote creates a bare repository and registers it as origin.
func (f *fixture) bareRemote() string {
	f.t.Helper()
	dir := f.t.TempDir()
	_, err := git.PlainInit(dir, true)
	require.NoError(f.t, err)
	_, err = f.raw.CreateRemote(&gitconfig.RemoteConfig{Name: "origin", URLs: []string{dir}})
	require.NoError(f.t, err)
	return dir
}

func TestPushTag(t *testing.T) {
	f := newFixture(t)
	hash := f.commitFile("a.txt", "a", "chore: first")
	f.annotatedTag("v1.0.0", hash)
	remoteDir := f.bareRemote()

	require.NoError(t, f.repo.PushTag("origin", "v1.0.0"))

	remote, err := git.PlainOpen(remoteDir)
	require.NoError(t, err)
	ref, err := remote.Reference(plumbing.NewTagReferenceName("v1.0.0"), true)
	require.NoError(t, err, "tag ref must exist on the remote")
	tag, err := remote.TagObject(ref.Hash())
	require.NoError(t, err)
	require.Equal(t, hash, tag.Target)

	// A second push of the same ref is up to date, not an error.
	require.NoError(t, f.repo.PushTag("origin", "v1.0.0"))
}

func TestPushCurrentBranchSetsUpstream(t *testing.T) {
	f := newFixture(t)
	hash := f.commitFile("a.txt", "a", "chore: first")
	remoteDir := f.bareRemote()

	require.NoError(t, f.repo.PushCurrentBranch("origin"))

	remote, err := git.PlainOpen(remoteDir)
	require.NoError(t, err)
	ref, err := remote.Reference(plumbing.NewBranchReferenceName("master"), true)
	require.NoError(t, err, "branch ref must exist on the remote")
	require.Equal(t, hash, ref.Hash())

	cfg, err := f.raw.Config()
	require.NoError(t, err)
	branch := cfg.Branches["master"]
	require.NotNil(t, branch, "push must record upstream tracking")
	require.Equal(t, "origin", branch.Remote)
	require.Equal(t, plumbing.NewBranchReferenceName("master"), branch.Merge)

	// Pushing again with nothing new succeeds and keeps the tracking entry.
	require.NoError(t, f.repo.PushCurrentBranch("origin"))
}

func TestPushTagNoRemote(t *testing.T) {
	f := newFixture(t)
	hash := f.commitFile("a.txt", "a", "chore: first")
	f.annotatedTag("v1.0.0", hash)

	require.Error(t, f.repo.PushTag("origin", "v1.0.0"))
}

func TestWorktreeRel(t *testing.T) {
	f := newFixture(t)
	f.commitFile("a.txt", "a", "chore: first")
	wt, err := f.raw.Worktree()
	require.NoError(t, err)

	rel, err := worktreeRel(wt, filepath.Join(f.dir, "sub", "file.txt"))
	require.NoError(t, err)
	require.Equal(t, "sub/file.txt", rel)

	rel, err = worktreeRel(wt, "plain.txt")
	require.NoError(t, err)
	require.Equal(t, "plain.txt", rel)
}
