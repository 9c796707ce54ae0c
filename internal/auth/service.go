package auth

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Service verifies the shared admin password against the credential
// store. Session state is handled separately by the SessionIssuer, so
// two concurrent logins or password changes never coordinate here; the
// store's last write wins.
type Service struct {
	credentials CredentialStore
}

func NewService(credentials CredentialStore) *Service {
	return &Service{
		credentials: credentials,
	}
}

// EnsureCredential creates the credential record with the default
// password if it does not exist yet. Used at startup so the very first
// login does not race the bootstrap.
func (s *Service) EnsureCredential(ctx context.Context) (*Credential, error) {
	return s.credentials.Ensure(ctx)
}

// Login checks the given password. On a fresh deployment the credential
// record is created first, so the first login only succeeds with the
// default password.
func (s *Service) Login(ctx context.Context, password string) error {
	credential, err := s.credentials.Ensure(ctx)
	if err != nil {
		return fmt.Errorf("ensure credential record: %w", err)
	}

	if password != credential.Password {
		log.Trace("failed admin login attempt")
		return ErrInvalidCredentials
	}

	return nil
}

// ChangePassword verifies the current password and overwrites it. No
// compare-and-set protects two concurrent calls racing on the same
// record; the stored password ends up being one of the competing values.
func (s *Service) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	credential, err := s.credentials.Ensure(ctx)
	if err != nil {
		return fmt.Errorf("ensure credential record: %w", err)
	}

	if currentPassword != credential.Password {
		log.Trace("failed admin password change attempt")
		return ErrInvalidCredentials
	}

	if err := s.credentials.Update(ctx, newPassword); err != nil {
		return fmt.Errorf("update credential record: %w", err)
	}

	return nil
}
