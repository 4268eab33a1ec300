package shared

import (
	"testing"

	"github.com/okigami/repoctl/internal/domain"
	"github.com/okigami/repoctl/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSession(t *testing.T) {
	t.Run("returns the active session", func(t *testing.T) {
		hosting := testutil.NewMockHosting()

		session, err := EnsureSession(hosting)
		require.NoError(t, err)
		assert.Equal(t, "tester", session.User)
	})

	t.Run("no login is an error", func(t *testing.T) {
		hosting := testutil.NewMockHosting()
		hosting.Session = &domain.Session{LoggedIn: false}

		_, err := EnsureSession(hosting)
		assert.ErrorIs(t, err, domain.ErrNotLoggedIn)
	})

	t.Run("status failure propagates", func(t *testing.T) {
		hosting := testutil.NewMockHosting()
		hosting.AuthStatusErr = assert.AnError

		_, err := EnsureSession(hosting)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
