package auth

import "time"

// Provider identifies which external identity provider authenticated a user
type Provider string

const (
	ProviderGoogle Provider = "google"
	ProviderGitHub Provider = "github"
)

// ParseProvider maps a URL path segment to a known provider tag
func ParseProvider(s string) (Provider, bool) {
	switch Provider(s) {
	case ProviderGoogle:
		return ProviderGoogle, true
	case ProviderGitHub:
		return ProviderGitHub, true
	}
	return "", false
}

// User is a local identity record, created on first login with a given
// (oauthId, provider) pair. The same human logging in through two different
// providers yields two independent records. The name/email snapshot taken at
// creation is never refreshed on subsequent logins.
type User struct {
	ID        string    `json:"id"`       // Store-assigned opaque identifier
	OAuthID   string    `json:"oauthId"`  // Provider-assigned subject identifier
	Name      string    `json:"name"`     // Display name, best effort
	Provider  Provider  `json:"provider"` // Which provider authenticated this user
	Email     *string   `json:"email"`    // Nullable, absence never blocks login
	CreatedAt time.Time `json:"createdAt"`
}

// Project returns the transient, serializable view of the user that is
// embedded in token claims. The entity itself never leaves the store layer.
func (u *User) Project() Projection {
	return Projection{
		ID:       u.ID,
		OAuthID:  u.OAuthID,
		Name:     u.Name,
		Provider: u.Provider,
		Email:    u.Email,
	}
}

// Projection is the identity slice carried by access and refresh tokens
// and returned by the whoami endpoint.
type Projection struct {
	ID       string   `json:"id"`
	OAuthID  string   `json:"oauthId"`
	Name     string   `json:"name"`
	Provider Provider `json:"provider"`
	Email    *string  `json:"email"`
}
