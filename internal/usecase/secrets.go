package usecase

import (
	"context"
	"fmt"

	"github.com/okigami/repoctl/internal/domain"
	"github.com/okigami/repoctl/internal/usecase/shared"
)

// SetSecretInput contains the parameters for setting an actions secret.
type SetSecretInput struct {
	Name  string
	Value string
}

// SetSecretOutput contains the hosting CLI's output with the secret
// plaintext already redacted.
type SetSecretOutput struct {
	Output string
}

// SetSecret is the use case for setting an actions secret.
// The plaintext value is never echoed or logged.
type SetSecret struct {
	hosting domain.Hosting
	logger  domain.Logger
}

// NewSetSecret creates a new SetSecret use case.
func NewSetSecret(hosting domain.Hosting, logger domain.Logger) *SetSecret {
	return &SetSecret{
		hosting: hosting,
		logger:  logger,
	}
}

// Execute sets the secret.
func (uc *SetSecret) Execute(_ context.Context, in SetSecretInput) (*SetSecretOutput, error) {
	if in.Name == "" {
		return nil, domain.ErrEmptySecretName
	}
	if in.Value == "" {
		return nil, fmt.Errorf("secret value cannot be empty")
	}
	if _, err := shared.EnsureSession(uc.hosting); err != nil {
		return nil, err
	}

	uc.logger.MaskSecret(in.Value)
	out, err := uc.hosting.SetSecret(in.Name, in.Value)
	if err != nil {
		return nil, err
	}

	// Only the name reaches the log; the adapter already redacted out.
	uc.logger.Info("secret", fmt.Sprintf("set secret %s", in.Name))
	return &SetSecretOutput{Output: out}, nil
}

// DeleteSecretInput contains the parameters for deleting a secret.
type DeleteSecretInput struct {
	Name string
}

// DeleteSecret is the use case for deleting an actions secret.
type DeleteSecret struct {
	hosting domain.Hosting
	logger  domain.Logger
}

// NewDeleteSecret creates a new DeleteSecret use case.
func NewDeleteSecret(hosting domain.Hosting, logger domain.Logger) *DeleteSecret {
	return &DeleteSecret{
		hosting: hosting,
		logger:  logger,
	}
}

// Execute deletes the secret.
func (uc *DeleteSecret) Execute(_ context.Context, in DeleteSecretInput) error {
	if in.Name == "" {
		return domain.ErrEmptySecretName
	}
	if _, err := shared.EnsureSession(uc.hosting); err != nil {
		return err
	}
	if err := uc.hosting.DeleteSecret(in.Name); err != nil {
		return err
	}
	uc.logger.Info("secret", fmt.Sprintf("deleted secret %s", in.Name))
	return nil
}
