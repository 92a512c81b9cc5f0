package jwt

import (
	"strings"
	"testing"
	"time"

	libJWT "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func newTestCodec(t *testing.T, clk clocker) *Symmetric {
	t.Helper()

	codec, err := NewHS256(Config{
		Secret: []byte("0123456789abcdef0123456789abcdef"),
		TTL:    24 * time.Hour,
		Clock:  clk,
	})
	require.NoError(t, err)

	return codec
}

func TestNewHS256_RejectsShortKey(t *testing.T) {
	_, err := NewHS256(Config{
		Secret: []byte("too-short"),
		TTL:    24 * time.Hour,
		Clock:  &fakeClock{now: time.Now()},
	})
	assert.ErrorIs(t, err, ErrSigningKeyTooShort)
}

func TestSymmetric_RoundTrip(t *testing.T) {
	clk := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	codec := newTestCodec(t, clk)

	token, err := codec.Generate("a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Len(t, strings.Split(token, "."), 3)

	claims, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Subject)
	assert.Equal(t, clk.now.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, clk.now.Add(24*time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestSymmetric_ExpiryBoundaries(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clk := &fakeClock{now: issuedAt}
	codec := newTestCodec(t, clk)

	token, err := codec.Generate("a@x.com")
	require.NoError(t, err)

	clk.now = issuedAt.Add(24*time.Hour - time.Second)
	_, err = codec.Verify(token)
	assert.NoError(t, err)

	clk.now = issuedAt.Add(24*time.Hour + time.Second)
	_, err = codec.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestSymmetric_BadSignature(t *testing.T) {
	clk := &fakeClock{now: time.Now()}
	codec := newTestCodec(t, clk)

	token, err := codec.Generate("a@x.com")
	require.NoError(t, err)

	// Flip one byte in the signature segment.
	dot := strings.LastIndex(token, ".")
	sig := []byte(token[dot+1:])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}

	_, err = codec.Verify(token[:dot+1] + string(sig))
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestSymmetric_WrongKey(t *testing.T) {
	clk := &fakeClock{now: time.Now()}
	codec := newTestCodec(t, clk)

	other, err := NewHS256(Config{
		Secret: []byte("ffffffffffffffffffffffffffffffff"),
		TTL:    24 * time.Hour,
		Clock:  clk,
	})
	require.NoError(t, err)

	token, err := other.Generate("a@x.com")
	require.NoError(t, err)

	_, err = codec.Verify(token)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestSymmetric_Empty(t *testing.T) {
	codec := newTestCodec(t, &fakeClock{now: time.Now()})

	for _, in := range []string{"", "   ", "\t"} {
		_, err := codec.Verify(in)
		assert.ErrorIs(t, err, ErrTokenEmpty)
	}
}

func TestSymmetric_Malformed(t *testing.T) {
	clk := &fakeClock{now: time.Now()}
	codec := newTestCodec(t, clk)

	valid, err := codec.Generate("a@x.com")
	require.NoError(t, err)

	reversed := make([]byte, len(valid))
	for i := range valid {
		reversed[i] = valid[len(valid)-1-i]
	}

	for name, in := range map[string]string{
		"garbage":    "not-a-token",
		"two parts":  "aaaa.bbbb",
		"reversed":   string(reversed),
		"non base64": "ä.ö.ü",
	} {
		_, err := codec.Verify(in)
		assert.ErrorIs(t, err, ErrTokenMalformed, name)
	}
}

func TestSymmetric_RejectsOtherAlgorithms(t *testing.T) {
	clk := &fakeClock{now: time.Now()}
	codec := newTestCodec(t, clk)

	signed, err := libJWT.NewWithClaims(libJWT.SigningMethodHS512, libJWT.RegisteredClaims{
		Subject:   "a@x.com",
		IssuedAt:  libJWT.NewNumericDate(clk.now),
		ExpiresAt: libJWT.NewNumericDate(clk.now.Add(time.Hour)),
	}).SignedString([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)

	_, err = codec.Verify(signed)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestSetGetAuth(t *testing.T) {
	ctx := t.Context()
	assert.Nil(t, GetAuth(ctx))

	ctx = SetAuth(ctx, Claims{Subject: "a@x.com"})
	clm := GetAuth(ctx)
	require.NotNil(t, clm)
	assert.Equal(t, "a@x.com", clm.Subject)
}
