package usecase

import (
	"context"
	"fmt"

	"github.com/okigami/repoctl/internal/domain"
	"github.com/okigami/repoctl/internal/usecase/shared"
)

// DeleteReleaseInput contains the parameters for deleting a release.
type DeleteReleaseInput struct {
	Tag     string
	KeepTag bool // delete only the release, leave the tag in place
}

// DeleteRelease is the use case for deleting a release and its tag.
type DeleteRelease struct {
	hosting domain.Hosting
	logger  domain.Logger
}

// NewDeleteRelease creates a new DeleteRelease use case.
func NewDeleteRelease(hosting domain.Hosting, logger domain.Logger) *DeleteRelease {
	return &DeleteRelease{
		hosting: hosting,
		logger:  logger,
	}
}

// Execute deletes the release. When the release is already gone but
// the tag still exists, the hosting adapter falls back to deleting
// just the tag (unless KeepTag is set).
func (uc *DeleteRelease) Execute(_ context.Context, in DeleteReleaseInput) error {
	if in.Tag == "" {
		return domain.ErrEmptyTag
	}
	if _, err := shared.EnsureSession(uc.hosting); err != nil {
		return err
	}

	if err := uc.hosting.DeleteRelease(in.Tag, !in.KeepTag); err != nil {
		return err
	}

	uc.logger.Info("release", fmt.Sprintf("deleted release %s", in.Tag))
	return nil
}
