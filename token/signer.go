package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Signer signs and verifies session tokens using symmetric HMAC-SHA256.
// Each Signer is bound to one secret and one time-to-live; access and
// refresh tokens use two independent Signers so a token minted for one
// purpose never verifies for the other.
type Signer struct {
	secret  []byte
	ttl     time.Duration
	nowFunc func() time.Time
}

// SignerOption defines a function type to modify a Signer instance.
type SignerOption func(*Signer)

// WithNowFunc sets the now time function (primarily for testing)
func WithNowFunc(now func() time.Time) SignerOption {
	return func(s *Signer) {
		s.nowFunc = now
	}
}

// NewSigner creates a Signer for the given secret and token lifetime.
func NewSigner(secret string, ttl time.Duration, options ...SignerOption) *Signer {
	s := &Signer{
		secret:  []byte(secret),
		ttl:     ttl,
		nowFunc: time.Now,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// TTL returns the configured token lifetime.
func (s *Signer) TTL() time.Duration {
	return s.ttl
}

// Sign creates a signed token embedding the payload and an expiry computed
// from the Signer's TTL at signing time.
func (s *Signer) Sign(payload Payload) (string, error) {
	now := s.nowFunc().UTC()
	claims := sessionClaims{
		Email:       payload.Email,
		Role:        payload.Role,
		WorkspaceID: payload.WorkspaceID,
		Internal:    payload.Internal,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   payload.SubjectID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}

	signedToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token with HMAC")
	}
	return signedToken, nil
}

// Verify parses and validates a token against the Signer's secret. It fails
// on a signature mismatch, an elapsed expiry, or a malformed structure; no
// partial acceptance.
func (s *Signer) Verify(rawToken string) (*Claims, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(rawToken, claims, s.verificationKey,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.nowFunc),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify token")
	}
	if !parsed.Valid {
		return nil, errors.New("token is not valid")
	}

	return &Claims{
		Payload: Payload{
			SubjectID:   claims.Subject,
			Email:       claims.Email,
			Role:        claims.Role,
			WorkspaceID: claims.WorkspaceID,
			Internal:    claims.Internal,
		},
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (s *Signer) verificationKey(token *jwt.Token) (any, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return s.secret, nil
}
