package oauth

import (
	"context"
	"net/http"

	"loginsvc/internal/config"
	"loginsvc/internal/domain/auth"
)

const (
	googleAuthURL     = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"
)

// Google authenticates users through Google's OAuth2 endpoints with the
// minimal profile scope
type Google struct {
	client
}

// NewGoogle creates the Google provider adapter. Endpoint URLs left empty in
// the configuration get Google's production defaults.
func NewGoogle(cfg config.ProviderConfig, httpClient *http.Client) *Google {
	if cfg.AuthURL == "" {
		cfg.AuthURL = googleAuthURL
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = googleTokenURL
	}
	if cfg.UserInfoURL == "" {
		cfg.UserInfoURL = googleUserInfoURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Google{client{cfg: cfg, httpClient: httpClient}}
}

// Name returns the provider tag
func (g *Google) Name() auth.Provider { return auth.ProviderGoogle }

// AuthCodeURL returns the Google authorization URL
func (g *Google) AuthCodeURL() string {
	return g.authCodeURL("profile")
}

// Exchange trades an authorization code for a Google access token
func (g *Google) Exchange(ctx context.Context, code string) (string, error) {
	return g.exchange(ctx, code)
}

// FetchIdentity reads the OpenID Connect userinfo document. Google has no
// username concept, so the name chain is display name, then given name,
// before the subject fallback.
func (g *Google) FetchIdentity(ctx context.Context, accessToken string) (Identity, error) {
	var profile struct {
		Sub       string `json:"sub"`
		Name      string `json:"name"`
		GivenName string `json:"given_name"`
		Email     string `json:"email"`
	}
	if err := g.getJSON(ctx, g.cfg.UserInfoURL, accessToken, &profile); err != nil {
		return Identity{}, err
	}
	return deriveIdentity(profile.Sub, []string{profile.Name, profile.GivenName}, []string{profile.Email})
}
