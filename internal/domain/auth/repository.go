package auth

import "context"

// Repository defines the interface for user persistence
type Repository interface {
	// FindByIdentity retrieves the user for a (oauthID, provider) pair.
	// Returns ErrUserNotFound when the pair has never been seen.
	FindByIdentity(ctx context.Context, oauthID string, provider Provider) (*User, error)

	// Create persists a new user record and returns it with its
	// store-assigned ID. The write is durable before Create returns.
	Create(ctx context.Context, oauthID, name string, provider Provider, email *string) (*User, error)
}
