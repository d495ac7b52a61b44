package oauth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"loginsvc/internal/config"
	"loginsvc/internal/domain/auth"
)

func TestGoogle_AuthCodeURL(t *testing.T) {
	google := NewGoogle(config.ProviderConfig{
		ClientID:    "client-123",
		CallbackURL: "http://localhost:8080/auth/google/callback",
	}, nil)

	authURL := google.AuthCodeURL()

	parsed, err := url.Parse(authURL)
	if err != nil {
		t.Fatalf("Unexpected error parsing URL: %v", err)
	}
	if !strings.HasPrefix(authURL, googleAuthURL) {
		t.Errorf("Expected URL to start with '%s', got '%s'", googleAuthURL, authURL)
	}

	query := parsed.Query()
	if query.Get("response_type") != "code" {
		t.Errorf("Expected response_type 'code', got '%s'", query.Get("response_type"))
	}
	if query.Get("client_id") != "client-123" {
		t.Errorf("Expected client_id 'client-123', got '%s'", query.Get("client_id"))
	}
	if query.Get("redirect_uri") != "http://localhost:8080/auth/google/callback" {
		t.Errorf("Expected redirect_uri to round-trip, got '%s'", query.Get("redirect_uri"))
	}
	if query.Get("scope") != "profile" {
		t.Errorf("Expected scope 'profile', got '%s'", query.Get("scope"))
	}
}

func TestGoogle_Exchange(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("Unexpected error parsing form: %v", err)
		}
		if r.PostForm.Get("grant_type") != "authorization_code" {
			t.Errorf("Expected grant_type 'authorization_code', got '%s'", r.PostForm.Get("grant_type"))
		}
		if r.PostForm.Get("code") != "the-code" {
			t.Errorf("Expected code 'the-code', got '%s'", r.PostForm.Get("code"))
		}
		if r.PostForm.Get("client_secret") != "shhh" {
			t.Errorf("Expected client_secret 'shhh', got '%s'", r.PostForm.Get("client_secret"))
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "provider-token"})
	}))
	defer server.Close()

	google := NewGoogle(config.ProviderConfig{
		ClientID:     "client-123",
		ClientSecret: "shhh",
		TokenURL:     server.URL,
	}, server.Client())

	token, err := google.Exchange(context.Background(), "the-code")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if token != "provider-token" {
		t.Errorf("Expected token 'provider-token', got '%s'", token)
	}
}

func TestGoogle_Exchange_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
			},
		},
		{
			name: "missing access token",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_grant"})
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("not json"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			google := NewGoogle(config.ProviderConfig{TokenURL: server.URL}, server.Client())

			_, err := google.Exchange(context.Background(), "the-code")
			if err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestGoogle_FetchIdentity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer provider-token" {
			t.Errorf("Expected bearer authorization, got '%s'", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"sub":   "108123",
			"name":  "Ann Example",
			"email": "ann@example.com",
		})
	}))
	defer server.Close()

	google := NewGoogle(config.ProviderConfig{UserInfoURL: server.URL}, server.Client())

	identity, err := google.FetchIdentity(context.Background(), "provider-token")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if identity.OAuthID != "108123" {
		t.Errorf("Expected OAuthID '108123', got '%s'", identity.OAuthID)
	}
	if identity.Name != "Ann Example" {
		t.Errorf("Expected name 'Ann Example', got '%s'", identity.Name)
	}
	if identity.Email == nil || *identity.Email != "ann@example.com" {
		t.Errorf("Expected email 'ann@example.com', got %v", identity.Email)
	}
}

func TestGoogle_FetchIdentity_GivenNameFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{
			"sub":        "108123",
			"given_name": "Ann",
		})
	}))
	defer server.Close()

	google := NewGoogle(config.ProviderConfig{UserInfoURL: server.URL}, server.Client())

	identity, err := google.FetchIdentity(context.Background(), "provider-token")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if identity.Name != "Ann" {
		t.Errorf("Expected given name fallback 'Ann', got '%s'", identity.Name)
	}
	if identity.Email != nil {
		t.Errorf("Expected no email, got '%s'", *identity.Email)
	}
}

func TestGoogle_FetchIdentity_MissingSubject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"name": "Ann"})
	}))
	defer server.Close()

	google := NewGoogle(config.ProviderConfig{UserInfoURL: server.URL}, server.Client())

	_, err := google.FetchIdentity(context.Background(), "provider-token")
	if err == nil {
		t.Error("Expected error for profile without subject")
	}
}

func TestGoogle_Name(t *testing.T) {
	google := NewGoogle(config.ProviderConfig{}, nil)
	if google.Name() != auth.ProviderGoogle {
		t.Errorf("Expected provider tag 'google', got '%s'", google.Name())
	}
}
