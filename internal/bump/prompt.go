package bump

// Prompter supplies the interactive confirmations the pipeline may need.
// A nil function declines, so non-interactive callers that leave the seam
// unset never block on operator input.
type Prompter struct {
	// ConfirmBumpFunc asks to apply the previewed change, quoting the
	// literal new version.
	ConfirmBumpFunc func(newVersion string) (bool, error)
	// ConfirmTagFunc asks whether to tag when the tag policy is unset.
	ConfirmTagFunc func() (bool, error)
}

func (p Prompter) confirmBump(newVersion string) (bool, error) {
	if p.ConfirmBumpFunc == nil {
		return false, nil
	}
	return p.ConfirmBumpFunc(newVersion)
}

func (p Prompter) confirmTag() (bool, error) {
	if p.ConfirmTagFunc == nil {
		return false, nil
	}
	return p.ConfirmTagFunc()
}
