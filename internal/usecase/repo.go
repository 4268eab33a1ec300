package usecase

import (
	"context"
	"errors"

	"github.com/okigami/repoctl/internal/domain"
	"github.com/okigami/repoctl/internal/usecase/shared"
)

// CreateRepoInput contains the parameters for creating a repository.
type CreateRepoInput struct {
	Name        string
	Description string
	Private     bool
	Clone       bool
}

// CreateRepoOutput contains the hosting CLI's output, typically the
// new repository URL.
type CreateRepoOutput struct {
	Output string
}

// CreateRepo is the use case for creating a hosted repository.
type CreateRepo struct {
	hosting domain.Hosting
}

// NewCreateRepo creates a new CreateRepo use case.
func NewCreateRepo(hosting domain.Hosting) *CreateRepo {
	return &CreateRepo{hosting: hosting}
}

// Execute creates the repository.
func (uc *CreateRepo) Execute(_ context.Context, in CreateRepoInput) (*CreateRepoOutput, error) {
	if in.Name == "" {
		return nil, errors.New("repository name cannot be empty")
	}
	if _, err := shared.EnsureSession(uc.hosting); err != nil {
		return nil, err
	}
	out, err := uc.hosting.CreateRepo(domain.RepoCreateOptions{
		Name:        in.Name,
		Description: in.Description,
		Private:     in.Private,
		Clone:       in.Clone,
	})
	if err != nil {
		return nil, err
	}
	return &CreateRepoOutput{Output: out}, nil
}

// CloneRepoInput contains the parameters for cloning a repository.
type CloneRepoInput struct {
	NameWithOwner string // e.g. "octocat/tool"
	Dir           string // target directory; empty uses the repo name
}

// CloneRepo is the use case for cloning a hosted repository.
type CloneRepo struct {
	hosting domain.Hosting
}

// NewCloneRepo creates a new CloneRepo use case.
func NewCloneRepo(hosting domain.Hosting) *CloneRepo {
	return &CloneRepo{hosting: hosting}
}

// Execute clones the repository.
func (uc *CloneRepo) Execute(_ context.Context, in CloneRepoInput) error {
	if in.NameWithOwner == "" {
		return errors.New("repository name cannot be empty")
	}
	return uc.hosting.CloneRepo(in.NameWithOwner, in.Dir)
}
