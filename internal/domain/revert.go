package domain

import "fmt"

// RevertRequest describes a commit-revert operation.
//
// Exactly one of Keep and Just may be non-empty:
//   - Just: restore only the listed files from Commit, leaving every
//     other tracked file untouched, then record a new commit.
//   - Keep: reset the whole tree to Commit, but preserve the current
//     content of the listed files across the reset.
//
// Fields are ordered to minimize memory padding.
type RevertRequest struct {
	Commit  string   // target commitish (required)
	Message string   // commit message; generated when empty
	Keep    []string // files to preserve verbatim across a full reset
	Just    []string // files to selectively restore from Commit
}

// Validate checks the request for contradictory parameters.
// It performs no filesystem or repository access.
func (r RevertRequest) Validate() error {
	if r.Commit == "" {
		return fmt.Errorf("%w: empty commitish", ErrCommitNotFound)
	}
	if len(r.Keep) > 0 && len(r.Just) > 0 {
		return ErrKeepJustExclusive
	}
	return nil
}

// CommitMessage returns the message to record, generating a default
// when none was given.
func (r RevertRequest) CommitMessage() string {
	if r.Message != "" {
		return r.Message
	}
	if len(r.Just) > 0 {
		return fmt.Sprintf("Restore %d file(s) from %s", len(r.Just), r.Commit)
	}
	return fmt.Sprintf("Revert to %s", r.Commit)
}
