package usecase

import (
	"context"
	"errors"

	"github.com/okigami/repoctl/internal/domain"
)

// BranchInput contains the parameters for a branch operation.
// Fields are ordered to minimize memory padding.
type BranchInput struct {
	Name    string // branch name (required)
	Start   string // create: start point; empty uses HEAD
	NewName string // rename: target name
	Force   bool   // delete: use -D
}

// ManageBranch is the use case for branch create/delete/rename.
// The three operations share validation and the git port, so they
// live on one use case rather than three single-method structs.
type ManageBranch struct {
	git    domain.Git
	logger domain.Logger
}

// NewManageBranch creates a new ManageBranch use case.
func NewManageBranch(git domain.Git, logger domain.Logger) *ManageBranch {
	return &ManageBranch{
		git:    git,
		logger: logger,
	}
}

// Create creates a branch.
func (uc *ManageBranch) Create(_ context.Context, in BranchInput) error {
	if in.Name == "" {
		return errors.New("branch name cannot be empty")
	}
	if err := uc.git.CreateBranch(in.Name, in.Start); err != nil {
		return err
	}
	uc.logger.Info("branch", "created branch "+in.Name)
	return nil
}

// Delete deletes a branch.
func (uc *ManageBranch) Delete(_ context.Context, in BranchInput) error {
	if in.Name == "" {
		return errors.New("branch name cannot be empty")
	}
	if err := uc.git.DeleteBranch(in.Name, in.Force); err != nil {
		return err
	}
	uc.logger.Info("branch", "deleted branch "+in.Name)
	return nil
}

// Rename renames a branch.
func (uc *ManageBranch) Rename(_ context.Context, in BranchInput) error {
	if in.Name == "" || in.NewName == "" {
		return errors.New("branch names cannot be empty")
	}
	if err := uc.git.RenameBranch(in.Name, in.NewName); err != nil {
		return err
	}
	uc.logger.Info("branch", "renamed branch "+in.Name+" to "+in.NewName)
	return nil
}
