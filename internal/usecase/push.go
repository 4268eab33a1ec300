package usecase

import (
	"context"
	"fmt"

	"github.com/okigami/repoctl/internal/domain"
)

// PushInput contains the parameters for pushing a branch.
// Fields are ordered to minimize memory padding.
type PushInput struct {
	Remote      string // empty uses the configured default
	Branch      string // empty uses the current branch
	Force       bool
	SetUpstream bool
}

// PushOutput contains the resolved remote and branch that were pushed.
type PushOutput struct {
	Remote string
	Branch string
}

// Push is the use case for pushing a branch to a remote.
type Push struct {
	git    domain.Git
	config domain.ConfigLoader
	logger domain.Logger
}

// NewPush creates a new Push use case.
func NewPush(git domain.Git, config domain.ConfigLoader, logger domain.Logger) *Push {
	return &Push{
		git:    git,
		config: config,
		logger: logger,
	}
}

// Execute pushes the branch.
func (uc *Push) Execute(_ context.Context, in PushInput) (*PushOutput, error) {
	remote := in.Remote
	if remote == "" {
		cfg, err := uc.config.Load()
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		remote = cfg.Remote
	}

	branch := in.Branch
	if branch == "" {
		var err error
		branch, err = uc.git.CurrentBranch()
		if err != nil {
			return nil, err
		}
	}

	if err := uc.git.Push(remote, branch, in.Force, in.SetUpstream); err != nil {
		return nil, err
	}

	uc.logger.Info("push", fmt.Sprintf("pushed %s to %s", branch, remote))
	return &PushOutput{Remote: remote, Branch: branch}, nil
}
