package oauth

import (
	"errors"
	"strings"
)

// deriveIdentity applies the fallback rules shared by all providers to the
// profile fields each one extracts. The name falls back through the given
// candidates and finally to the subject identifier, so it is never empty on
// a successful authentication. A missing email never blocks authentication.
func deriveIdentity(oauthID string, nameCandidates, emailCandidates []string) (Identity, error) {
	if strings.TrimSpace(oauthID) == "" {
		return Identity{}, errors.New("provider profile has no subject identifier")
	}

	name := firstNonEmpty(nameCandidates...)
	if name == "" {
		name = oauthID
	}

	identity := Identity{OAuthID: oauthID, Name: name}
	if email := firstNonEmpty(emailCandidates...); email != "" {
		identity.Email = &email
	}
	return identity, nil
}

// firstNonEmpty returns the first candidate with non-blank content
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
