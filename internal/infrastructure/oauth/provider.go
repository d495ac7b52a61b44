package oauth

import (
	"context"

	"loginsvc/internal/domain/auth"
)

// Provider is one external identity provider strategy. Implementations share
// the same handshake shape and differ only in endpoints, scopes and profile
// field paths.
type Provider interface {
	// Name returns the provider tag used in URL paths and user records.
	Name() auth.Provider

	// AuthCodeURL returns the provider authorization URL the browser is
	// redirected to when a login starts.
	AuthCodeURL() string

	// Exchange trades the authorization code from the provider callback
	// for a provider access token.
	Exchange(ctx context.Context, code string) (string, error)

	// FetchIdentity loads the provider profile and derives the identity
	// fields used for local resolution.
	FetchIdentity(ctx context.Context, accessToken string) (Identity, error)
}

// Identity is the provider-agnostic result of a successful handshake
type Identity struct {
	OAuthID string
	Name    string
	Email   *string
}

// Registry selects a provider strategy by its tag
type Registry map[auth.Provider]Provider

// NewRegistry builds a registry from the given providers
func NewRegistry(providers ...Provider) Registry {
	r := make(Registry, len(providers))
	for _, p := range providers {
		r[p.Name()] = p
	}
	return r
}

// Lookup returns the provider registered under a tag
func (r Registry) Lookup(tag auth.Provider) (Provider, bool) {
	p, ok := r[tag]
	return p, ok
}
