package usecase

import (
	"context"

	"github.com/okigami/repoctl/internal/domain"
)

// LoginInput contains the parameters for the login flow.
type LoginInput struct {
	Host string // hosting service hostname; empty uses the default
}

// Login is the use case for triggering the hosting CLI's interactive
// login flow. Credential material is handled entirely by that CLI.
type Login struct {
	hosting domain.Hosting
}

// NewLogin creates a new Login use case.
func NewLogin(hosting domain.Hosting) *Login {
	return &Login{hosting: hosting}
}

// Execute runs the interactive login.
func (uc *Login) Execute(_ context.Context, in LoginInput) error {
	return uc.hosting.AuthLogin(in.Host)
}

// AuthStatusOutput contains the current credential state.
type AuthStatusOutput struct {
	Session *domain.Session
}

// AuthStatus is the use case for reporting the credential state.
type AuthStatus struct {
	hosting domain.Hosting
}

// NewAuthStatus creates a new AuthStatus use case.
func NewAuthStatus(hosting domain.Hosting) *AuthStatus {
	return &AuthStatus{hosting: hosting}
}

// Execute reports the session. An inactive login is a valid result,
// not an error.
func (uc *AuthStatus) Execute(_ context.Context) (*AuthStatusOutput, error) {
	session, err := uc.hosting.AuthStatus()
	if err != nil {
		return nil, err
	}
	return &AuthStatusOutput{Session: session}, nil
}
