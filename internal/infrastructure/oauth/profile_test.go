package oauth

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestDeriveIdentity(t *testing.T) {
	tests := []struct {
		name            string
		oauthID         string
		nameCandidates  []string
		emailCandidates []string
		expectedName    string
		expectedEmail   string
		expectError     bool
	}{
		{
			name:           "first candidate wins",
			oauthID:        "123",
			nameCandidates: []string{"Ann Display", "ann"},
			expectedName:   "Ann Display",
		},
		{
			name:           "falls through empty candidates",
			oauthID:        "123",
			nameCandidates: []string{"", "ann"},
			expectedName:   "ann",
		},
		{
			name:           "blank candidate is skipped",
			oauthID:        "123",
			nameCandidates: []string{"   ", "ann"},
			expectedName:   "ann",
		},
		{
			name:           "subject is the final fallback",
			oauthID:        "123",
			nameCandidates: []string{"", ""},
			expectedName:   "123",
		},
		{
			name:         "no candidates at all",
			oauthID:      "123",
			expectedName: "123",
		},
		{
			name:            "email is carried when present",
			oauthID:         "123",
			nameCandidates:  []string{"ann"},
			emailCandidates: []string{"ann@example.com"},
			expectedName:    "ann",
			expectedEmail:   "ann@example.com",
		},
		{
			name:            "missing email does not block",
			oauthID:         "123",
			nameCandidates:  []string{"ann"},
			emailCandidates: []string{""},
			expectedName:    "ann",
		},
		{
			name:        "empty subject is rejected",
			oauthID:     "",
			expectError: true,
		},
		{
			name:        "blank subject is rejected",
			oauthID:     "   ",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := deriveIdentity(tt.oauthID, tt.nameCandidates, tt.emailCandidates)

			if tt.expectError {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if identity.OAuthID != tt.oauthID {
				t.Errorf("Expected OAuthID '%s', got '%s'", tt.oauthID, identity.OAuthID)
			}
			if identity.Name != tt.expectedName {
				t.Errorf("Expected name '%s', got '%s'", tt.expectedName, identity.Name)
			}
			if tt.expectedEmail == "" {
				if identity.Email != nil {
					t.Errorf("Expected no email, got '%s'", *identity.Email)
				}
			} else {
				if identity.Email == nil || *identity.Email != tt.expectedEmail {
					t.Errorf("Expected email '%s', got %v", tt.expectedEmail, identity.Email)
				}
			}
		})
	}
}

func TestDeriveIdentity_NameNeverEmpty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("derived name is never empty for a non-blank subject",
		prop.ForAll(
			func(oauthID string, candidates []string) bool {
				identity, err := deriveIdentity(oauthID, candidates, nil)
				if err != nil {
					return false
				}
				return identity.Name != ""
			},
			gen.Identifier(),
			gen.SliceOf(gen.OneGenOf(gen.Identifier(), gen.Const(""), gen.Const("  "))),
		))

	properties.Property("derived name equals the first non-blank candidate when one exists",
		prop.ForAll(
			func(oauthID string, candidates []string) bool {
				identity, err := deriveIdentity(oauthID, candidates, nil)
				if err != nil {
					return false
				}
				expected := firstNonEmpty(candidates...)
				if expected == "" {
					expected = oauthID
				}
				return identity.Name == expected
			},
			gen.Identifier(),
			gen.SliceOf(gen.OneGenOf(gen.Identifier(), gen.Const(""))),
		))

	properties.TestingRun(t)
}
