package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [Claims] for claim access (user id, subject, expiry).
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) that is returned to the client and mirrored
// into the session cookie.
//
// The user identifier travels in the "userId" claim; "sub" carries the same
// value.
type Token struct {
	*jwt.Token `json:"-"`

	Claims

	SignedString string `json:"-"`
}

// Claims is the JWT payload of a session token.
type Claims struct {
	jwt.RegisteredClaims

	UserID string `json:"userId"`
}

// GetUserID returns the "userId" claim, falling back to "sub" when the
// token does not carry one.
//
// Returns an error if both claims are missing or empty.
func (t *Token) GetUserID() (string, error) {
	if t.UserID != "" {
		return t.UserID, nil
	}

	userID, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting UserID from token: %w", err)
	}
	if userID == "" {
		return "", fmt.Errorf("error extracting UserID from token: empty subject")
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
