package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTAuthenticator_RoundTrip(t *testing.T) {
	a := NewJWTAuthenticator("test-secret", "InvestorShield", 24*time.Hour)

	token, err := a.GenerateToken("user-1", "user@example.com")
	require.NoError(t, err)

	claims, err := a.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "InvestorShield", claims.Issuer)
}

func TestJWTAuthenticator_Expired(t *testing.T) {
	a := NewJWTAuthenticator("test-secret", "InvestorShield", time.Hour)
	issued := time.Now()
	a.now = func() time.Time { return issued }

	token, err := a.GenerateToken("user-1", "user@example.com")
	require.NoError(t, err)

	a.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = a.ValidateAccessToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTAuthenticator_WrongSecret(t *testing.T) {
	signer := NewJWTAuthenticator("secret-a", "InvestorShield", time.Hour)
	verifier := NewJWTAuthenticator("secret-b", "InvestorShield", time.Hour)

	token, err := signer.GenerateToken("user-1", "user@example.com")
	require.NoError(t, err)

	_, err = verifier.ValidateAccessToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTAuthenticator_RejectsOtherAlgorithms(t *testing.T) {
	a := NewJWTAuthenticator("test-secret", "InvestorShield", time.Hour)

	claims := Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "InvestorShield",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = a.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTAuthenticator_Garbage(t *testing.T) {
	a := NewJWTAuthenticator("test-secret", "InvestorShield", time.Hour)

	_, err := a.ValidateAccessToken("not-a-jwt")
	assert.Error(t, err)
}
