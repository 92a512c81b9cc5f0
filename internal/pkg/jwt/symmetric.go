package jwt

import (
	"errors"
	"strings"
	"time"

	libJWT "github.com/golang-jwt/jwt/v5"
)

// Symmetric implements Codec using an HMAC-SHA256 shared secret.
//
// Verify is a pure function of (token, secret, clock); it is safe for
// concurrent use without locking.
type Symmetric struct {
	secret []byte
	ttl    time.Duration
	clock  clocker
}

// NewHS256 constructs a Symmetric codec. It fails when the key is shorter
// than MinSecretBytes; callers must treat that as a fatal configuration
// error.
func NewHS256(cfg Config) (*Symmetric, error) {
	if len(cfg.Secret) < MinSecretBytes {
		return nil, ErrSigningKeyTooShort
	}

	return &Symmetric{
		secret: cfg.Secret,
		ttl:    cfg.TTL,
		clock:  cfg.Clock,
	}, nil
}

// Generate creates a signed token for the subject email.
func (s *Symmetric) Generate(email string) (string, error) {
	now := s.clock.Now()

	return libJWT.
		NewWithClaims(libJWT.SigningMethodHS256, libJWT.RegisteredClaims{
			Subject:   email,
			IssuedAt:  libJWT.NewNumericDate(now),
			ExpiresAt: libJWT.NewNumericDate(now.Add(s.ttl)),
		}).
		SignedString(s.secret)
}

// Verify parses and validates a token string and returns its claims.
//
// Failures are reported as exactly one of ErrTokenEmpty, ErrTokenMalformed,
// ErrBadSignature or ErrTokenExpired.
func (s *Symmetric) Verify(tokenStr string) (Claims, error) {
	if strings.TrimSpace(tokenStr) == "" {
		return Claims{}, ErrTokenEmpty
	}

	var claims libJWT.RegisteredClaims

	// The algorithm check lives in the keyfunc, not WithValidMethods: the
	// option rejects foreign algorithms as a signature error, but a token
	// signed with another algorithm is malformed here, not badly signed.
	token, err := libJWT.ParseWithClaims(tokenStr, &claims,
		func(t *libJWT.Token) (any, error) {
			if t.Method != libJWT.SigningMethodHS256 {
				return nil, ErrTokenMalformed
			}
			return s.secret, nil
		},
		libJWT.WithTimeFunc(s.clock.Now),
		libJWT.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, libJWT.ErrTokenExpired):
			return Claims{}, ErrTokenExpired
		case errors.Is(err, libJWT.ErrTokenSignatureInvalid):
			return Claims{}, ErrBadSignature
		default:
			return Claims{}, ErrTokenMalformed
		}
	}

	if !token.Valid || claims.Subject == "" {
		return Claims{}, ErrTokenMalformed
	}

	out := Claims{Subject: claims.Subject}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}

	return out, nil
}
