package primary

import "time"

// TokenInspector reads claims out of a stored credential token without
// verifying it. Signature verification is the server's job; the client
// only needs to know whether a token is worth presenting at all.
type TokenInspector interface {
	// Expiry returns the token's exp claim. A zero time with a nil
	// error means the token carries no expiry.
	Expiry(token string) (time.Time, error)
}
