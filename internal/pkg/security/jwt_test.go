package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	token, err := m.GenerateToken("a@x.com", "Alice")
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "Alice", claims.Name)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret", time.Hour).GenerateToken("a@x.com", "")
	require.NoError(t, err)

	_, err = NewJWTManager("other", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateRejectsExpired(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := m.GenerateToken("a@x.com", "")
	require.NoError(t, err)

	_, err = NewJWTManager("secret", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateRejectsNoneAlg(t *testing.T) {
	claims := &UserClaims{Email: "a@x.com", RegisteredClaims: jwt.RegisteredClaims{Issuer: Issuer}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewJWTManager("secret", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestGenerateRequiresEmail(t *testing.T) {
	_, err := NewJWTManager("secret", time.Hour).GenerateToken("", "")
	assert.Error(t, err)
}

func TestExtractSignature(t *testing.T) {
	sig, err := ExtractSignature("a.b.c")
	require.NoError(t, err)
	assert.Equal(t, "c", sig)

	_, err = ExtractSignature("a.b")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
