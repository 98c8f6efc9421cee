package bump

import (
	"fmt"

	"github.com/conn-castle/autobump/internal/messages"
)

// planSteps narrates the side effects a non-dry-run invocation with the same
// flags would perform, in execution order. It mirrors steps the pipeline
// actually runs: the narration and the real sequence must never drift apart.
func planSteps(opts Options, commitMessage string, tagName string) []string {
	steps := []string{fmt.Sprintf(messages.BumpPlanWriteFmt, opts.Manifest.Path())}
	if !opts.Commit {
		return steps
	}
	steps = append(steps, fmt.Sprintf(messages.BumpPlanCommitFmt, commitMessage))
	if opts.Tag == nil || !*opts.Tag {
		return steps
	}
	steps = append(steps, fmt.Sprintf(messages.BumpPlanTagFmt, tagName))
	if opts.Push {
		steps = append(steps,
			fmt.Sprintf(messages.BumpPlanPushTagFmt, tagName, opts.Remote),
			fmt.Sprintf(messages.BumpPlanPushBranchFmt, opts.Remote),
		)
	}
	return steps
}
