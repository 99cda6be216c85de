// Package models holds the transport records exchanged with the TeamUp
// backend. The client never mutates these outside of what it re-fetches;
// they are cached copies owned by the server.
package models

// UserSummary is the identity record the backend returns on login and
// identity re-checks. Optional fields stay pointers so absence survives
// round-trips through the session store.
type UserSummary struct {
	UserID      int64    `json:"user_id"`
	DisplayName string   `json:"display_name"`
	Email       string   `json:"email"`
	NetID       string   `json:"netid,omitempty"`
	AvatarURL   *string  `json:"avatar_url,omitempty"`
	PhoneNumber *string  `json:"phone_number,omitempty"`
	Score       *float64 `json:"score,omitempty"`
}

// Identifier returns the fallback identity key used when the numeric id is
// absent: email first, then netid.
func (u *UserSummary) Identifier() string {
	if u.Email != "" {
		return u.Email
	}
	return u.NetID
}

// Session couples the bearer token with the cached user record. Token and
// user are set and cleared together; one without the other is treated as
// no session at all.
type Session struct {
	Token string
	User  *UserSummary
}

// AuthResponse is the body of successful register/login calls.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *UserSummary `json:"user"`
}
