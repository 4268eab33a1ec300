package usecase

import (
	"context"
	"fmt"

	"github.com/okigami/repoctl/internal/domain"
	"github.com/okigami/repoctl/internal/usecase/shared"
)

// CreateReleaseInput contains the parameters for creating a release.
// Fields are ordered to minimize memory padding.
type CreateReleaseInput struct {
	Tag           string
	Title         string
	Notes         string
	Target        string
	Assets        []string
	Draft         bool
	Prerelease    bool
	GenerateNotes bool
}

// CreateReleaseOutput contains the result of creating a release.
type CreateReleaseOutput struct {
	URL string // hosting CLI output, typically the release URL
}

// CreateRelease is the use case for creating a release with optional
// binary assets.
type CreateRelease struct {
	hosting domain.Hosting
	config  domain.ConfigLoader
	logger  domain.Logger
}

// NewCreateRelease creates a new CreateRelease use case.
func NewCreateRelease(hosting domain.Hosting, config domain.ConfigLoader, logger domain.Logger) *CreateRelease {
	return &CreateRelease{
		hosting: hosting,
		config:  config,
		logger:  logger,
	}
}

// Execute creates the release. Config defaults ([release] draft,
// generate_notes) apply when the corresponding flags are unset.
func (uc *CreateRelease) Execute(_ context.Context, in CreateReleaseInput) (*CreateReleaseOutput, error) {
	if in.Tag == "" {
		return nil, domain.ErrEmptyTag
	}
	if _, err := shared.EnsureSession(uc.hosting); err != nil {
		return nil, err
	}

	cfg, err := uc.config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	opts := domain.ReleaseOptions{
		Tag:           in.Tag,
		Title:         in.Title,
		Notes:         in.Notes,
		Target:        in.Target,
		Assets:        in.Assets,
		Draft:         in.Draft || cfg.Release.Draft,
		Prerelease:    in.Prerelease,
		GenerateNotes: in.GenerateNotes || cfg.Release.GenerateNotes,
	}

	url, err := uc.hosting.CreateRelease(opts)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("release", fmt.Sprintf("created release %s (%d asset(s))", in.Tag, len(in.Assets)))
	return &CreateReleaseOutput{URL: url}, nil
}
