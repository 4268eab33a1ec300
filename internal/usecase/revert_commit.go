// Package usecase implements the application operations of repoctl.
package usecase

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/okigami/repoctl/internal/domain"
)

// RevertCommitInput contains the parameters for a commit revert.
type RevertCommitInput struct {
	Request domain.RevertRequest
}

// RevertCommitOutput contains the result of a commit revert.
// Fields are ordered to minimize memory padding.
type RevertCommitOutput struct {
	Commit    string   // resolved full hash of the target commit
	Preserved []string // files carried across a full reset (keep mode)
	Committed bool     // whether a new commit was recorded
}

// RevertCommit is the use case for reverting the working tree to a
// commit, either selectively (just mode) or fully with an optional
// preserve list (keep mode).
//
// All validation runs before the first destructive step: contradictory
// parameters, an unresolvable commitish, and a preserve path missing
// from the working tree each abort with the repository untouched.
type RevertCommit struct {
	git    domain.Git
	logger domain.Logger
}

// NewRevertCommit creates a new RevertCommit use case.
func NewRevertCommit(git domain.Git, logger domain.Logger) *RevertCommit {
	return &RevertCommit{
		git:    git,
		logger: logger,
	}
}

// Execute runs the revert. The branch (just vs. keep) is selected once
// at call time and never re-evaluated mid-operation.
func (uc *RevertCommit) Execute(_ context.Context, in RevertCommitInput) (*RevertCommitOutput, error) {
	req := in.Request
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := uc.git.ResolveCommit(req.Commit)
	if err != nil {
		return nil, err
	}

	if len(req.Just) > 0 {
		return uc.restoreFiles(hash, req)
	}
	return uc.resetWithPreserve(hash, req)
}

// restoreFiles implements just mode: restore exactly the listed files
// from the commit, then record the restoration. Running it twice with
// the same arguments converges: the second run finds a clean tree and
// skips the commit.
func (uc *RevertCommit) restoreFiles(hash string, req domain.RevertRequest) (*RevertCommitOutput, error) {
	if err := uc.git.CheckoutFiles(hash, req.Just); err != nil {
		return nil, fmt.Errorf("restore files from %s: %w", req.Commit, err)
	}

	committed, err := uc.commitIfDirty(req.CommitMessage())
	if err != nil {
		return nil, err
	}

	uc.logger.Info("revert", fmt.Sprintf("restored %d file(s) from %s", len(req.Just), hash))
	return &RevertCommitOutput{Commit: hash, Committed: committed}, nil
}

// resetWithPreserve implements keep mode: snapshot the preserve list,
// hard-reset to the commit, restore the snapshots, and record the
// result. Snapshotting happens strictly before the reset so an invalid
// file list can never leave the repository in a partial state.
func (uc *RevertCommit) resetWithPreserve(hash string, req domain.RevertRequest) (*RevertCommitOutput, error) {
	root := uc.git.RepoRoot()

	var holding string
	if len(req.Keep) > 0 {
		var err error
		holding, err = snapshotFiles(root, req.Keep)
		if holding != "" {
			defer func() { _ = os.RemoveAll(holding) }()
		}
		if err != nil {
			return nil, err
		}
	}

	if err := uc.git.ResetHard(hash); err != nil {
		return nil, fmt.Errorf("reset to %s: %w", req.Commit, err)
	}

	if holding != "" {
		if err := restoreFiles(holding, root, req.Keep); err != nil {
			return nil, err
		}
	}

	committed, err := uc.commitIfDirty(req.CommitMessage())
	if err != nil {
		return nil, err
	}

	uc.logger.Info("revert", fmt.Sprintf("reset to %s, preserved %d file(s)", hash, len(req.Keep)))
	return &RevertCommitOutput{
		Commit:    hash,
		Preserved: req.Keep,
		Committed: committed,
	}, nil
}

// commitIfDirty stages everything and commits only when the tree
// actually changed, so a no-op revert does not create empty commits.
func (uc *RevertCommit) commitIfDirty(message string) (bool, error) {
	dirty, err := uc.git.HasUncommittedChanges()
	if err != nil {
		return false, fmt.Errorf("check working tree: %w", err)
	}
	if !dirty {
		return false, nil
	}
	if err := uc.git.AddAll(); err != nil {
		return false, fmt.Errorf("stage changes: %w", err)
	}
	if err := uc.git.Commit(message); err != nil {
		return false, fmt.Errorf("record revert commit: %w", err)
	}
	return true, nil
}

// snapshotFiles copies each listed file into a temporary holding area,
// preserving relative paths. Any missing file aborts the operation.
func snapshotFiles(root string, paths []string) (string, error) {
	holding, err := os.MkdirTemp("", "repoctl-keep-")
	if err != nil {
		return "", fmt.Errorf("create holding area: %w", err)
	}

	for _, rel := range paths {
		src := filepath.Join(root, rel)
		if _, err := os.Stat(src); err != nil {
			return holding, fmt.Errorf("%w: %s", domain.ErrFileNotFound, rel)
		}
		dst := filepath.Join(holding, rel)
		if err := copyFile(src, dst); err != nil {
			return holding, fmt.Errorf("snapshot %s: %w", rel, err)
		}
	}
	return holding, nil
}

// restoreFiles copies preserved files back into the working tree,
// overwriting whatever the reset produced at those paths.
func restoreFiles(holding, root string, paths []string) error {
	for _, rel := range paths {
		if err := copyFile(filepath.Join(holding, rel), filepath.Join(root, rel)); err != nil {
			return fmt.Errorf("restore preserved file %s: %w", rel, err)
		}
	}
	return nil
}

// copyFile copies src to dst, creating parent directories.
func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return err
	}
	in, err := os.Open(src) //nolint:gosec // paths are repo-relative user input
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm()) //nolint:gosec // same
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	_, err = io.Copy(out, in)
	return err
}
