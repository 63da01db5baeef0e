package models

import "encoding/json"

// RegisterRequest is the registration payload. Birthday is kept raw so that
// a malformed value is reported as a bad birthday rather than a bad body.
type RegisterRequest struct {
	Username string          `json:"username"`
	Phone    string          `json:"phone"`
	Password string          `json:"password"`
	Email    string          `json:"email"`
	Birthday json.RawMessage `json:"birthday"`
	Nickname string          `json:"nickname"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ProfilePatch lists the profile fields a user may change. It has no
// password field, so a password sent to the profile endpoint is dropped
// by the decoder.
type ProfilePatch struct {
	Nickname    *string     `json:"nickname"`
	Phone       *string     `json:"phone"`
	Email       *string     `json:"email"`
	Avatar      *string     `json:"avatar"`
	Birthday    *Birthday   `json:"birthday"`
	ExtraFields ExtraFields `json:"extraFields"`
}

// IsEmpty reports whether the patch changes nothing.
func (p ProfilePatch) IsEmpty() bool {
	return p.Nickname == nil && p.Phone == nil && p.Email == nil &&
		p.Avatar == nil && p.Birthday == nil && p.ExtraFields == nil
}

// NicknameRequest is the body of the nickname update endpoint.
type NicknameRequest struct {
	Nickname string `json:"nickname"`
}

// AuthResult is returned by registration and login.
type AuthResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
