package jwt

import (
	"context"
	"errors"
	"time"
)

// MinSecretBytes is the minimum HS256 signing key length. A shorter key is a
// configuration error, not something to fall back from at runtime.
const MinSecretBytes = 32

var (
	// ErrSigningKeyTooShort is returned at construction when the HMAC key is
	// under MinSecretBytes.
	ErrSigningKeyTooShort = errors.New("HS256 signing key must be at least 32 bytes (256 bits)")

	// ErrTokenEmpty is returned when the token string is blank.
	ErrTokenEmpty = errors.New("token is empty")

	// ErrTokenMalformed is returned when the token is structurally invalid or
	// uses an unsupported encoding or algorithm.
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrBadSignature is returned when the signature does not verify against
	// the signing key.
	ErrBadSignature = errors.New("token signature is invalid")

	// ErrTokenExpired is returned when the token is past its expiry.
	ErrTokenExpired = errors.New("token has expired")
)

// Codec issues and verifies bearer tokens.
type Codec interface {
	// Generate creates a signed token whose subject is the user email.
	Generate(email string) (string, error)
	// Verify parses and validates the token and returns its claims.
	Verify(tokenStr string) (Claims, error)
}

type clocker interface {
	Now() time.Time
}

// Config defines the inputs for building a token codec.
type Config struct {
	// Secret is the HMAC signing key, process-wide and immutable after init.
	Secret []byte
	// TTL is how long an issued token stays valid.
	TTL time.Duration
	// Clock provides the current time source.
	Clock clocker
}

// Claims is the verified content of a token.
type Claims struct {
	// Subject is the authenticated user email.
	Subject string
	// IssuedAt is when the token was issued.
	IssuedAt time.Time
	// ExpiresAt is when the token stops being valid.
	ExpiresAt time.Time
}

type jwtContextKey struct{}

// GetAuth returns the claims stored in the context, or nil for anonymous
// requests.
func GetAuth(ctx context.Context) *Claims {
	clm, ok := ctx.Value(jwtContextKey{}).(Claims)
	if !ok {
		return nil
	}

	return &clm
}

// SetAuth stores verified claims in the context for downstream handlers.
func SetAuth(ctx context.Context, clm Claims) context.Context {
	return context.WithValue(ctx, jwtContextKey{}, clm)
}
