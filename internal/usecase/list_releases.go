package usecase

import (
	"context"

	"github.com/okigami/repoctl/internal/domain"
	"github.com/okigami/repoctl/internal/usecase/shared"
)

// defaultReleaseLimit bounds release listings when no limit is given.
const defaultReleaseLimit = 30

// ListReleasesInput contains the parameters for listing releases.
type ListReleasesInput struct {
	Limit int // 0 means the default
}

// ListReleasesOutput contains the listed releases, newest first.
type ListReleasesOutput struct {
	Releases []domain.Release
}

// ListReleases is the use case for listing releases.
type ListReleases struct {
	hosting domain.Hosting
}

// NewListReleases creates a new ListReleases use case.
func NewListReleases(hosting domain.Hosting) *ListReleases {
	return &ListReleases{hosting: hosting}
}

// Execute lists releases.
func (uc *ListReleases) Execute(_ context.Context, in ListReleasesInput) (*ListReleasesOutput, error) {
	if _, err := shared.EnsureSession(uc.hosting); err != nil {
		return nil, err
	}

	limit := in.Limit
	if limit <= 0 {
		limit = defaultReleaseLimit
	}
	releases, err := uc.hosting.ListReleases(limit)
	if err != nil {
		return nil, err
	}
	return &ListReleasesOutput{Releases: releases}, nil
}
