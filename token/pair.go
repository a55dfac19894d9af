package token

import "time"

// Default token lifetimes, applied when a Pair is built without explicit
// configuration.
const (
	DefaultAccessTTL  = 15 * time.Minute
	DefaultRefreshTTL = 7 * 24 * time.Hour
)

// Pair bundles the two signers of a session: the short-lived access token
// signer keyed by the primary secret, and the longer-lived refresh token
// signer keyed by an independent secret.
type Pair struct {
	Access  *Signer
	Refresh *Signer
}

// NewPair builds the access/refresh signer pair. Non-positive lifetimes
// fall back to the defaults.
func NewPair(primarySecret string, primaryTTL time.Duration, refreshSecret string, refreshTTL time.Duration, options ...SignerOption) Pair {
	if primaryTTL <= 0 {
		primaryTTL = DefaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = DefaultRefreshTTL
	}
	return Pair{
		Access:  NewSigner(primarySecret, primaryTTL, options...),
		Refresh: NewSigner(refreshSecret, refreshTTL, options...),
	}
}
