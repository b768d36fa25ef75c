package auth

import "time"

// Strategy signs session identifiers into cookie tokens and verifies them back.
type Strategy interface {
	IssueToken(sessionID string) (string, error)
	ParseToken(token string) (string, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
