package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,password"`
}

func TestV10Validator_Valid(t *testing.T) {
	v, err := NewV10Validator()
	require.NoError(t, err)

	assert.NoError(t, v.Validate(credentials{Email: "a@x.com", Password: "longenough"}))
}

func TestV10Validator_FieldErrors(t *testing.T) {
	v, err := NewV10Validator()
	require.NoError(t, err)

	err = v.Validate(credentials{Email: "not-an-email", Password: strings.Repeat("p", 80)})
	require.Error(t, err)

	var verr V10ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Values(), "email")
	assert.Contains(t, verr.Values(), "password")
	assert.Equal(t, "Password must be at most 72 characters", verr.Values()["password"])
}

func TestV10Validator_PasswordBounds(t *testing.T) {
	v, err := NewV10Validator()
	require.NoError(t, err)

	assert.NoError(t, v.Validate(credentials{Email: "a@x.com", Password: "pw123"}))
	assert.NoError(t, v.Validate(credentials{Email: "a@x.com", Password: strings.Repeat("p", 72)}))
	assert.Error(t, v.Validate(credentials{Email: "a@x.com", Password: strings.Repeat("p", 73)}))
}
