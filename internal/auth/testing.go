package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// NewTestClaims creates SessionClaims for the given session ID and language.
// This is primarily for testing purposes.
func NewTestClaims(sessionID, language string) *SessionClaims {
	return &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: sessionID,
		},
		Language: language,
	}
}
