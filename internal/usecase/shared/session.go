// Package shared provides helpers used by multiple use cases.
package shared

import (
	"github.com/okigami/repoctl/internal/domain"
)

// EnsureSession checks the hosting CLI's credential state and returns
// the active session. Operations that talk to the hosting service call
// this first so a missing login fails with a clear error instead of a
// raw gh failure mid-operation.
func EnsureSession(hosting domain.Hosting) (*domain.Session, error) {
	session, err := hosting.AuthStatus()
	if err != nil {
		return nil, err
	}
	if session == nil || !session.LoggedIn {
		return nil, domain.ErrNotLoggedIn
	}
	return session, nil
}
