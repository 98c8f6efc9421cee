package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/autobump/internal/bump"
	"github.com/conn-castle/autobump/internal/gitrepo"
	"github.com/conn-castle/autobump/internal/manifest"
	"github.com/conn-castle/autobump/internal/messages"
	"github.com/conn-castle/autobump/internal/terminal"
)

// Seams for tests.
var (
	getwd          = os.Getwd
	isTerminalFunc = terminal.IsInteractive
	openRepoFunc   = func(path string) (bump.Repository, error) {
		return gitrepo.Open(path)
	}
)

func newBumpCmd() *cobra.Command {
	var (
		projectFile   string
		language      string
		dryRun        bool
		verbose       bool
		allowDirty    bool
		assumeYes     bool
		commit        bool
		commitMessage string
		tag           bool
		tagName       string
		push          bool
	)

	cmd := &cobra.Command{
		Use:   messages.BumpUse,
		Short: messages.BumpShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := getwd()
			if err != nil {
				return err
			}
			m, err := resolveManifest(cwd, projectFile, language)
			if err != nil {
				return err
			}
			repo, err := openRepoFunc(cwd)
			if err != nil {
				return err
			}

			interactive := isTerminalFunc()
			if !assumeYes && !dryRun && !interactive {
				return errors.New(messages.BumpRequiresTerminal)
			}

			// Unset means ask; the prompt only fires when the commit step
			// actually reaches the tag decision.
			var tagPolicy *bool
			if cmd.Flags().Changed("tag") {
				tagPolicy = &tag
			}

			var prompter bump.Prompter
			if interactive && !assumeYes {
				in := cmd.InOrStdin()
				out := cmd.OutOrStdout()
				prompter = bump.Prompter{
					ConfirmBumpFunc: func(newVersion string) (bool, error) {
						prompt := fmt.Sprintf(messages.BumpConfirmPromptFmt, newVersion)
						return promptYesNo(in, out, prompt, true)
					},
					ConfirmTagFunc: func() (bool, error) {
						return promptYesNo(in, out, messages.BumpConfirmTagPrompt, false)
					},
				}
			}

			result, err := bump.Run(bump.Options{
				Repo:          repo,
				Manifest:      m,
				AllowDirty:    allowDirty,
				DryRun:        dryRun,
				Verbose:       verbose,
				AssumeYes:     assumeYes,
				Commit:        commit,
				CommitMessage: commitMessage,
				Tag:           tagPolicy,
				TagName:       tagName,
				Push:          push,
				Prompter:      prompter,
				Out:           cmd.OutOrStdout(),
				Err:           cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}

			green := color.New(color.FgGreen)
			if dryRun {
				_, _ = green.Fprintf(cmd.OutOrStdout(), messages.BumpDryRunResultFmt, result.CurrentVersion, result.NewVersion)
			} else {
				_, _ = green.Fprintf(cmd.OutOrStdout(), messages.BumpResultFmt, result.CurrentVersion, result.NewVersion)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&projectFile, "project-file", "", messages.BumpFlagProjectFile)
	flags.StringVar(&language, "language", "", messages.BumpFlagLanguage)
	flags.BoolVarP(&dryRun, "dry-run", "d", false, messages.BumpFlagDryRun)
	flags.BoolVarP(&verbose, "verbose", "v", false, messages.BumpFlagVerbose)
	flags.BoolVar(&allowDirty, "allow-dirty", false, messages.BumpFlagAllowDirty)
	flags.BoolVarP(&assumeYes, "yes", "y", false, messages.BumpFlagYes)
	flags.BoolVarP(&commit, "commit", "c", false, messages.BumpFlagCommit)
	flags.StringVarP(&commitMessage, "commit-message", "m", "", messages.BumpFlagCommitMessage)
	flags.BoolVarP(&tag, "tag", "t", false, messages.BumpFlagTag)
	flags.StringVarP(&tagName, "tag-name", "n", "", messages.BumpFlagTagName)
	flags.BoolVarP(&push, "push", "p", false, messages.BumpFlagPush)
	return cmd
}

// resolveManifest picks the project descriptor from the flag combination:
// an explicit path wins, a bare language maps to its conventional file in
// dir, and with neither the directory is probed in detection order.
func resolveManifest(dir string, projectFile string, language string) (manifest.Manifest, error) {
	switch {
	case projectFile != "" && language != "":
		return manifest.ForLanguage(language, projectFile)
	case projectFile != "":
		return manifest.FromPath(projectFile)
	case language != "":
		path, err := manifest.DefaultPath(dir, language)
		if err != nil {
			return nil, err
		}
		return manifest.ForLanguage(language, path)
	default:
		return manifest.Detect(dir)
	}
}
