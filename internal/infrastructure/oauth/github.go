package oauth

import (
	"context"
	"net/http"
	"strconv"

	"loginsvc/internal/config"
	"loginsvc/internal/domain/auth"
)

const (
	githubAuthURL     = "https://github.com/login/oauth/authorize"
	githubTokenURL    = "https://github.com/login/oauth/access_token"
	githubUserInfoURL = "https://api.github.com/user"
	githubEmailsURL   = "https://api.github.com/user/emails"
)

// GitHub authenticates users through GitHub's OAuth2 endpoints with the
// user:email scope
type GitHub struct {
	client
}

// NewGitHub creates the GitHub provider adapter. Endpoint URLs left empty in
// the configuration get GitHub's production defaults.
func NewGitHub(cfg config.ProviderConfig, httpClient *http.Client) *GitHub {
	if cfg.AuthURL == "" {
		cfg.AuthURL = githubAuthURL
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = githubTokenURL
	}
	if cfg.UserInfoURL == "" {
		cfg.UserInfoURL = githubUserInfoURL
	}
	if cfg.EmailsURL == "" {
		cfg.EmailsURL = githubEmailsURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &GitHub{client{cfg: cfg, httpClient: httpClient}}
}

// Name returns the provider tag
func (g *GitHub) Name() auth.Provider { return auth.ProviderGitHub }

// AuthCodeURL returns the GitHub authorization URL
func (g *GitHub) AuthCodeURL() string {
	return g.authCodeURL("user:email")
}

// Exchange trades an authorization code for a GitHub access token
func (g *GitHub) Exchange(ctx context.Context, code string) (string, error) {
	return g.exchange(ctx, code)
}

// FetchIdentity reads the /user profile. The name chain is the profile name,
// then the login handle. The email on /user is only the public one; when it
// is unset the primary address is looked up on /user/emails.
func (g *GitHub) FetchIdentity(ctx context.Context, accessToken string) (Identity, error) {
	var profile struct {
		ID    int64  `json:"id"`
		Login string `json:"login"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := g.getJSON(ctx, g.cfg.UserInfoURL, accessToken, &profile); err != nil {
		return Identity{}, err
	}

	var oauthID string
	if profile.ID != 0 {
		oauthID = strconv.FormatInt(profile.ID, 10)
	}

	email := profile.Email
	if email == "" {
		email = g.primaryEmail(ctx, accessToken)
	}

	return deriveIdentity(oauthID, []string{profile.Name, profile.Login}, []string{email})
}

// primaryEmail is best effort: a missing email never blocks authentication
func (g *GitHub) primaryEmail(ctx context.Context, accessToken string) string {
	var emails []struct {
		Email   string `json:"email"`
		Primary bool   `json:"primary"`
	}
	if err := g.getJSON(ctx, g.cfg.EmailsURL, accessToken, &emails); err != nil {
		return ""
	}
	for _, e := range emails {
		if e.Primary {
			return e.Email
		}
	}
	if len(emails) > 0 {
		return emails[0].Email
	}
	return ""
}
