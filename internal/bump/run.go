// Package bump decides and applies semantic-version bumps from
// conventional-commit history.
//
// Run is a fixed pipeline: load manifest, dirty check, history validity,
// commit collection, classification, version arithmetic, preview,
// confirmation, then the side-effecting write -> commit -> tag -> push
// sequence. Every step is a potential exit point, and completed local side
// effects are deliberately not rolled back when a later step fails; the
// operator re-runs after fixing the condition.
package bump

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/conn-castle/autobump/internal/commits"
	"github.com/conn-castle/autobump/internal/manifest"
	"github.com/conn-castle/autobump/internal/messages"
	"github.com/conn-castle/autobump/internal/semver"
)

// DefaultRemote is the remote pushed to when none is configured.
const DefaultRemote = "origin"

// Options configures one bump run.
type Options struct {
	Repo     Repository
	Manifest manifest.Manifest

	// AllowDirty downgrades the dirty-tree failure to a warning.
	AllowDirty bool
	// DryRun previews the change and narrates the side effects without
	// performing any of them.
	DryRun  bool
	Verbose bool
	// AssumeYes skips the confirmation prompt.
	AssumeYes bool

	// Commit gates the commit step; Tag and Push are only consulted when it
	// is set.
	Commit        bool
	CommitMessage string
	// Tag is tri-state: nil asks the prompter, which declines when unwired.
	Tag     *bool
	TagName string
	Push    bool
	// Remote defaults to DefaultRemote.
	Remote string

	Prompter Prompter
	// Out and Err receive progress output; nil discards it.
	Out io.Writer
	Err io.Writer
}

// Result is the version transition of a completed run.
type Result struct {
	CurrentVersion string
	NewVersion     string
	Level          semver.Level
	Commits        []commits.Commit
}

// Run executes the bump pipeline and returns the version transition.
func Run(opts Options) (Result, error) {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Err == nil {
		opts.Err = io.Discard
	}
	if opts.Remote == "" {
		opts.Remote = DefaultRemote
	}
	yellow := color.New(color.FgYellow)
	cyan := color.New(color.FgCyan)
	green := color.New(color.FgGreen)

	currentVersion, err := opts.Manifest.ReadVersion()
	if err != nil {
		return Result{}, err
	}
	if opts.Verbose {
		_, _ = yellow.Fprintf(opts.Out, messages.BumpCurrentVersionFmt, currentVersion)
	}

	dirty, err := opts.Repo.IsDirty()
	if err != nil {
		return Result{}, err
	}
	if dirty {
		if !opts.AllowDirty {
			return Result{}, ErrDirtyRepo
		}
		_, _ = yellow.Fprintln(opts.Err, messages.BumpDirtyWarning)
	}

	if !opts.Repo.HeadIsValid() {
		return Result{}, ErrNoCommits
	}

	tag, _, err := opts.Repo.LatestTag()
	if err != nil {
		return Result{}, err
	}
	list, err := opts.Repo.CommitsSince(tag)
	if err != nil {
		return Result{}, err
	}
	if len(list) == 0 {
		return Result{}, ErrNoCommitsSinceTag
	}
	_, _ = yellow.Fprintf(opts.Out, messages.BumpFoundCommitsFmt, len(list))
	printCommits(opts.Out, list)

	// The version string is parsed only now: repository-state conditions
	// (dirty tree, missing history) take precedence over a malformed version.
	current, err := semver.Parse(currentVersion)
	if err != nil {
		return Result{}, err
	}
	level := commits.InferBump(list)
	newVersion := current.Next(level).String()

	before, err := opts.Manifest.Content()
	if err != nil {
		return Result{}, err
	}
	after, err := opts.Manifest.WithVersion(newVersion)
	if err != nil {
		return Result{}, err
	}
	_, _ = cyan.Fprintf(opts.Out, messages.BumpChangesHeaderFmt, opts.Manifest.Path())
	printDiff(opts.Out, opts.Manifest.Path(), before, after)

	if !opts.AssumeYes && !opts.DryRun {
		confirmed, err := opts.Prompter.confirmBump(newVersion)
		if err != nil {
			return Result{}, err
		}
		if !confirmed {
			return Result{}, ErrAborted
		}
	}

	commitMessage := opts.CommitMessage
	if commitMessage == "" {
		commitMessage = fmt.Sprintf(messages.BumpDefaultCommitMessageFmt, currentVersion, newVersion)
	}
	tagName := opts.TagName
	if tagName == "" {
		tagName = "v" + newVersion
	}
	result := Result{
		CurrentVersion: currentVersion,
		NewVersion:     newVersion,
		Level:          level,
		Commits:        list,
	}

	if opts.DryRun {
		_, _ = yellow.Fprintln(opts.Out, messages.BumpDryRunPlanHeader)
		for _, step := range planSteps(opts, commitMessage, tagName) {
			_, _ = fmt.Fprintln(opts.Out, step)
		}
		return result, nil
	}

	if err := opts.Manifest.Write(after); err != nil {
		return Result{}, err
	}

	if !opts.Commit {
		return result, nil
	}
	if _, err := opts.Repo.StageAndCommit([]string{opts.Manifest.Path()}, commitMessage); err != nil {
		return Result{}, err
	}
	_, _ = green.Fprintf(opts.Out, messages.BumpCommittedFmt, commitMessage)

	wantTag, err := resolveTagPolicy(opts)
	if err != nil {
		return Result{}, err
	}
	if !wantTag {
		return result, nil
	}
	exists, err := opts.Repo.TagExists(tagName)
	if err != nil {
		return Result{}, err
	}
	if exists {
		return Result{}, &TagExistsError{Name: tagName}
	}
	if err := opts.Repo.CreateTag(tagName, fmt.Sprintf(messages.BumpTagMessageFmt, tagName)); err != nil {
		return Result{}, err
	}
	_, _ = green.Fprintf(opts.Out, messages.BumpTaggedFmt, tagName)

	if !opts.Push {
		return result, nil
	}
	remoteOK, err := opts.Repo.RemoteExists(opts.Remote)
	if err != nil {
		return Result{}, err
	}
	if !remoteOK {
		return Result{}, &NoRemoteError{Remote: opts.Remote}
	}
	if err := opts.Repo.PushTag(opts.Remote, tagName); err != nil {
		return Result{}, err
	}
	_, _ = green.Fprintf(opts.Out, messages.BumpPushedTagFmt, tagName, opts.Remote)
	if err := opts.Repo.PushCurrentBranch(opts.Remote); err != nil {
		return Result{}, err
	}
	_, _ = green.Fprintf(opts.Out, messages.BumpPushedBranchFmt, opts.Remote)

	return result, nil
}

// resolveTagPolicy resolves the tri-state tag flag: explicit values win, and
// an unset flag asks the prompter.
func resolveTagPolicy(opts Options) (bool, error) {
	if opts.Tag != nil {
		return *opts.Tag, nil
	}
	return opts.Prompter.confirmTag()
}

func printCommits(out io.Writer, list []commits.Commit) {
	yellow := color.New(color.FgYellow)
	for _, c := range list {
		line := "* " + yellow.Sprint(c.ShortID)
		if c.Decoration != "" {
			line += " " + c.Decoration
		}
		_, _ = fmt.Fprintln(out, line+" "+c.Message)
	}
}
