package ports

import "time"

// Claims is the verified content of a session token.
type Claims struct {
	UserID    int64
	Role      string
	ExpiresAt time.Time
}

// TokenService issues and verifies signed, time-limited session tokens.
// Tokens are stateless: validity is determined solely by signature and
// expiry, never by a server-side lookup.
type TokenService interface {
	Issue(userID int64, role string) (string, error)
	Verify(token string) (*Claims, error)
}
