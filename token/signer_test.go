package token_test

import (
	"sync"
	"testing"
	"time"

	"github.com/playercore/go-auth-guard/token"
	"github.com/stretchr/testify/require"
)

const (
	testSecret  = "signing-secret-1234"
	otherSecret = "another-secret-5678"
)

type movableClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *movableClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *movableClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func testPayload() token.Payload {
	return token.Payload{
		SubjectID:   "principal-1",
		Email:       "u@x.com",
		Role:        "member",
		WorkspaceID: "workspace-1",
		Internal:    false,
	}
}

func TestSignVerifyRoundTrip(t *testing.T) {
	signer := token.NewSigner(testSecret, time.Minute)

	raw, err := signer.Sign(testPayload())
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := signer.Verify(raw)
	require.NoError(t, err)

	// Payload survives the round trip untouched; only expiry metadata is added
	require.Equal(t, testPayload(), claims.Payload)
	require.NotEmpty(t, claims.TokenID)
	require.False(t, claims.ExpiresAt.IsZero())
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signer := token.NewSigner(testSecret, time.Minute)
	other := token.NewSigner(otherSecret, time.Minute)

	raw, err := signer.Sign(testPayload())
	require.NoError(t, err)

	_, err = other.Verify(raw)
	require.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	clock := &movableClock{now: time.Now()}
	signer := token.NewSigner(testSecret, time.Minute, token.WithNowFunc(clock.Now))

	raw, err := signer.Sign(testPayload())
	require.NoError(t, err)

	clock.Advance(2 * time.Minute)

	_, err = signer.Verify(raw)
	require.Error(t, err)
}

func TestVerifyRejectsMalformedToken(t *testing.T) {
	signer := token.NewSigner(testSecret, time.Minute)

	for _, raw := range []string{"", "garbage", "a.b.c"} {
		_, err := signer.Verify(raw)
		require.Error(t, err)
	}
}

func TestVerifyRejectsUnsignedToken(t *testing.T) {
	signer := token.NewSigner(testSecret, time.Minute)

	// alg=none token with a plausible body
	unsigned := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJzdWIiOiJwcmluY2lwYWwtMSJ9."
	_, err := signer.Verify(unsigned)
	require.Error(t, err)
}

func TestEachTokenGetsUniqueID(t *testing.T) {
	signer := token.NewSigner(testSecret, time.Minute)

	first, err := signer.Sign(testPayload())
	require.NoError(t, err)
	second, err := signer.Sign(testPayload())
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	firstClaims, err := signer.Verify(first)
	require.NoError(t, err)
	secondClaims, err := signer.Verify(second)
	require.NoError(t, err)
	require.NotEqual(t, firstClaims.TokenID, secondClaims.TokenID)
}

func TestPairDefaults(t *testing.T) {
	pair := token.NewPair(testSecret, 0, otherSecret, 0)
	require.Equal(t, token.DefaultAccessTTL, pair.Access.TTL())
	require.Equal(t, token.DefaultRefreshTTL, pair.Refresh.TTL())

	pair = token.NewPair(testSecret, time.Minute, otherSecret, time.Hour)
	require.Equal(t, time.Minute, pair.Access.TTL())
	require.Equal(t, time.Hour, pair.Refresh.TTL())
}

func TestBlacklistRecordsAndCleans(t *testing.T) {
	blacklist := token.NewInMemoryBlacklist()

	require.NoError(t, blacklist.Add("jti-1", time.Now().Add(-time.Minute)))
	require.NoError(t, blacklist.Add("jti-2", time.Now().Add(time.Hour)))
	require.True(t, blacklist.IsRevoked("jti-1"))
	require.True(t, blacklist.IsRevoked("jti-2"))
	require.False(t, blacklist.IsRevoked("jti-3"))

	blacklist.Cleanup()
	require.False(t, blacklist.IsRevoked("jti-1"))
	require.True(t, blacklist.IsRevoked("jti-2"))
}
