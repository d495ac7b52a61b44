package memory

import (
	"context"
	"sync"
	"time"

	"loginsvc/internal/domain/auth"

	"github.com/google/uuid"
)

type identityKey struct {
	oauthID  string
	provider auth.Provider
}

// UserRepository is an in-memory implementation of the credential store,
// used by tests and when no Mongo URI is configured
type UserRepository struct {
	mu    sync.RWMutex
	users map[identityKey]*auth.User
}

// NewUserRepository creates a new in-memory user repository
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[identityKey]*auth.User),
	}
}

// FindByIdentity retrieves a user by their (oauthID, provider) pair
func (r *UserRepository) FindByIdentity(_ context.Context, oauthID string, provider auth.Provider) (*auth.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[identityKey{oauthID, provider}]
	if !exists {
		return nil, auth.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

// Create persists a new user record. The (oauthID, provider) pair is unique:
// concurrent first logins converge on the record that won the race, matching
// the Mongo adapter's conflict read-back.
func (r *UserRepository) Create(_ context.Context, oauthID, name string, provider auth.Provider, email *string) (*auth.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := identityKey{oauthID, provider}
	if existing, exists := r.users[key]; exists {
		copied := *existing
		return &copied, nil
	}

	user := &auth.User{
		ID:        uuid.NewString(),
		OAuthID:   oauthID,
		Name:      name,
		Provider:  provider,
		Email:     email,
		CreatedAt: time.Now(),
	}
	r.users[key] = user

	copied := *user
	return &copied, nil
}
