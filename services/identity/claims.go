package identity

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNoSubject = errors.New("token has no subject")

// Claims is the part of the access token payload the gateway reads
type Claims struct {
	PreferredUsername string `json:"preferred_username"`
	Email             string `json:"email,omitempty"`
	RealmAccess       struct {
		Roles []string `json:"roles"`
	} `json:"realm_access"`
	jwt.RegisteredClaims
}

func (c *Claims) HasRole(role string) bool {
	for _, r := range c.RealmAccess.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// ParseClaims decodes the payload of an access token. The signature is not
// checked here: the upstream API verifies every token it receives.
func ParseClaims(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("decoding access token: %w", err)
	}
	if claims.Subject == "" {
		return nil, ErrNoSubject
	}
	return claims, nil
}
