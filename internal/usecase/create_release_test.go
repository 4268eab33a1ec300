package usecase

import (
	"context"
	"testing"

	"github.com/okigami/repoctl/internal/domain"
	"github.com/okigami/repoctl/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRelease_Execute(t *testing.T) {
	t.Run("creates the release and returns the URL", func(t *testing.T) {
		hosting := testutil.NewMockHosting()
		hosting.CreateOut = "https://example.com/releases/v1.0.0"
		uc := NewCreateRelease(hosting, &testutil.MockConfigLoader{}, testutil.NopLogger{})

		out, err := uc.Execute(context.Background(), CreateReleaseInput{Tag: "v1.0.0"})
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/releases/v1.0.0", out.URL)
		assert.Contains(t, hosting.Calls, "release-create v1.0.0")
	})

	t.Run("empty tag is rejected without touching the service", func(t *testing.T) {
		hosting := testutil.NewMockHosting()
		uc := NewCreateRelease(hosting, &testutil.MockConfigLoader{}, testutil.NopLogger{})

		_, err := uc.Execute(context.Background(), CreateReleaseInput{})
		assert.ErrorIs(t, err, domain.ErrEmptyTag)
		assert.Empty(t, hosting.Calls)
	})

	t.Run("requires an active session", func(t *testing.T) {
		hosting := testutil.NewMockHosting()
		hosting.Session = &domain.Session{LoggedIn: false}
		uc := NewCreateRelease(hosting, &testutil.MockConfigLoader{}, testutil.NopLogger{})

		_, err := uc.Execute(context.Background(), CreateReleaseInput{Tag: "v1.0.0"})
		assert.ErrorIs(t, err, domain.ErrNotLoggedIn)
	})

	t.Run("config default enables draft", func(t *testing.T) {
		hosting := testutil.NewMockHosting()
		cfg := domain.NewDefaultConfig()
		cfg.Release.Draft = true
		uc := NewCreateRelease(hosting, &testutil.MockConfigLoader{Config: cfg}, testutil.NopLogger{})

		_, err := uc.Execute(context.Background(), CreateReleaseInput{Tag: "v1.0.0"})
		require.NoError(t, err)
	})
}

func TestDeleteRelease_Execute(t *testing.T) {
	t.Run("deletes release and tag by default", func(t *testing.T) {
		hosting := testutil.NewMockHosting()
		uc := NewDeleteRelease(hosting, testutil.NopLogger{})

		require.NoError(t, uc.Execute(context.Background(), DeleteReleaseInput{Tag: "v1.0.0"}))
		assert.Contains(t, hosting.Calls, "release-delete v1.0.0")
	})

	t.Run("empty tag is rejected", func(t *testing.T) {
		uc := NewDeleteRelease(testutil.NewMockHosting(), testutil.NopLogger{})
		err := uc.Execute(context.Background(), DeleteReleaseInput{})
		assert.ErrorIs(t, err, domain.ErrEmptyTag)
	})
}

func TestListReleases_Execute(t *testing.T) {
	hosting := testutil.NewMockHosting()
	hosting.Releases = []domain.Release{
		{TagName: "v1.1.0"},
		{TagName: "v1.0.0"},
	}
	uc := NewListReleases(hosting)

	out, err := uc.Execute(context.Background(), ListReleasesInput{})
	require.NoError(t, err)
	require.Len(t, out.Releases, 2)
	assert.Equal(t, "v1.1.0", out.Releases[0].TagName)
}
