package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnavshah/vacancy-bidding-api/pkg/database"
)

func TestTokens_RoundTrip(t *testing.T) {
	tokens := NewTokens("secret", time.Hour)

	token, err := tokens.CreateToken("scheduler")
	require.NoError(t, err)

	claims, err := tokens.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "scheduler", claims.Username)
}

func TestTokens_RejectsForeignAndExpired(t *testing.T) {
	token, err := NewTokens("other", time.Hour).CreateToken("scheduler")
	require.NoError(t, err)
	_, err = NewTokens("secret", time.Hour).VerifyToken(token)
	require.Error(t, err)

	expired := &Tokens{secret: []byte("secret"), ttl: -time.Minute}
	token, err = expired.CreateToken("scheduler")
	require.NoError(t, err)
	_, err = expired.VerifyToken(token)
	require.Error(t, err)
}

func TestTokens_RejectsTokenWithoutExpiry(t *testing.T) {
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{Username: "intruder"}).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewTokens("secret", time.Hour).VerifyToken(forged)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokens_EmptySecretVerifiesNothing(t *testing.T) {
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Username: "intruder",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("guess"))
	require.NoError(t, err)

	_, err = NewTokens("", time.Hour).VerifyToken(forged)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestEnsureAdminExistsAndLogin(t *testing.T) {
	db, err := database.Open(database.Options{Path: "file:auth_test?mode=memory&cache=shared"})
	require.NoError(t, err)

	created, err := EnsureAdminExists(db, "admin", "s3cret")
	require.NoError(t, err)
	require.True(t, created)

	created, err = EnsureAdminExists(db, "other", "pw")
	require.NoError(t, err)
	require.False(t, created)

	user, err := Login(db, "admin", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)

	_, err = Login(db, "admin", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = Login(db, "nobody", "s3cret")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
