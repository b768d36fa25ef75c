package model

import "time"

// Session is the server side state bound to a client cookie.
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"custSession,omitempty"`
	TotalQty  int       `json:"totalQty"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Bound reports whether the session carries a customer identity.
func (s Session) Bound() bool {
	return s.Username != ""
}
