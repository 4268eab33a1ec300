package usecase

import (
	"context"
	"fmt"

	"github.com/okigami/repoctl/internal/domain"
	"github.com/okigami/repoctl/internal/usecase/shared"
)

// ListRunsInput contains the parameters for listing workflow runs.
type ListRunsInput struct {
	Workflow string // workflow-name substring filter; empty lists all
	Limit    int    // 0 uses the configured default
}

// ListRunsOutput contains the listed runs, newest first.
type ListRunsOutput struct {
	Runs []domain.WorkflowRun
}

// ListRuns is the use case for listing workflow runs.
type ListRuns struct {
	hosting domain.Hosting
	config  domain.ConfigLoader
}

// NewListRuns creates a new ListRuns use case.
func NewListRuns(hosting domain.Hosting, config domain.ConfigLoader) *ListRuns {
	return &ListRuns{
		hosting: hosting,
		config:  config,
	}
}

// Execute lists workflow runs.
func (uc *ListRuns) Execute(_ context.Context, in ListRunsInput) (*ListRunsOutput, error) {
	if _, err := shared.EnsureSession(uc.hosting); err != nil {
		return nil, err
	}

	limit := in.Limit
	if limit <= 0 {
		cfg, err := uc.config.Load()
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		limit = cfg.Runs.Limit
	}

	runs, err := uc.hosting.ListRuns(in.Workflow, limit)
	if err != nil {
		return nil, err
	}
	return &ListRunsOutput{Runs: runs}, nil
}
