package auth

import (
	"context"
	"errors"
	"fmt"

	"loginsvc/internal/domain/auth"
)

// Service resolves third-party identities to stable local user records
type Service struct {
	userRepo auth.Repository
}

// NewService creates a new identity resolution service
func NewService(userRepo auth.Repository) *Service {
	return &Service{userRepo: userRepo}
}

// Resolve returns the user for a (oauthID, provider) pair, creating the
// record on first sight. Existing records are returned unchanged: there is
// no update-on-login. Store errors propagate to the caller, which must treat
// them as a failed authentication.
//
// Concurrent first logins with the same pair can race at this layer; the
// store adapters converge both callers on the record that won the race.
func (s *Service) Resolve(ctx context.Context, oauthID, name string, provider auth.Provider, email *string) (*auth.User, error) {
	user, err := s.userRepo.FindByIdentity(ctx, oauthID, provider)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, auth.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	user, err = s.userRepo.Create(ctx, oauthID, name, provider, email)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}
