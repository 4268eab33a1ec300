package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/okigami/repoctl/internal/domain"
	"github.com/okigami/repoctl/internal/usecase/shared"
)

// deleteRunsScanLimit bounds how many runs a bulk delete considers.
const deleteRunsScanLimit = 100

// DeleteRunsInput contains the parameters for deleting workflow runs.
// Either explicit IDs are given, or a bulk selection (All, optionally
// narrowed by a workflow-name substring).
// Fields are ordered to minimize memory padding.
type DeleteRunsInput struct {
	Workflow string  // substring filter for bulk deletion
	IDs      []int64 // explicit run IDs
	All      bool    // delete every matching run
}

// DeleteRunsOutput contains the result of deleting workflow runs.
type DeleteRunsOutput struct {
	Deleted []int64 // IDs of runs actually deleted
}

// DeleteRuns is the use case for deleting workflow runs.
type DeleteRuns struct {
	hosting domain.Hosting
	logger  domain.Logger
}

// NewDeleteRuns creates a new DeleteRuns use case.
func NewDeleteRuns(hosting domain.Hosting, logger domain.Logger) *DeleteRuns {
	return &DeleteRuns{
		hosting: hosting,
		logger:  logger,
	}
}

// Execute deletes the selected runs. Each deletion is its own external
// invocation; the first failure stops the loop and reports which runs
// were already deleted.
func (uc *DeleteRuns) Execute(_ context.Context, in DeleteRunsInput) (*DeleteRunsOutput, error) {
	if len(in.IDs) == 0 && !in.All {
		return nil, errors.New("specify run IDs, or --all (optionally with --workflow)")
	}
	if _, err := shared.EnsureSession(uc.hosting); err != nil {
		return nil, err
	}

	ids := in.IDs
	if len(ids) == 0 {
		runs, err := uc.hosting.ListRuns(in.Workflow, deleteRunsScanLimit)
		if err != nil {
			return nil, err
		}
		for _, run := range runs {
			ids = append(ids, run.ID)
		}
	}

	out := &DeleteRunsOutput{}
	for _, id := range ids {
		if err := uc.hosting.DeleteRun(id); err != nil {
			return out, fmt.Errorf("delete run %d (deleted %d of %d): %w",
				id, len(out.Deleted), len(ids), err)
		}
		out.Deleted = append(out.Deleted, id)
	}

	uc.logger.Info("runs", fmt.Sprintf("deleted %d workflow run(s)", len(out.Deleted)))
	return out, nil
}
