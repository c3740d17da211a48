package service

import (
	"context"
	"testing"
	"time"

	"portfolio-be/internal/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture(t *testing.T, accessKey string, ttl time.Duration) IAuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(accessKey), bcrypt.MinCost)
	require.NoError(t, err)
	return NewAuthService("test-secret", string(hash), ttl, nopLogger{})
}

func TestLogin_IssuesOwnerToken(t *testing.T) {
	svc := newAuthFixture(t, "correct-horse-battery-staple", time.Hour)

	res, err := svc.Login(context.Background(), &dto.OwnerLoginRequest{AccessKey: "correct-horse-battery-staple"})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, int64(3600), res.ExpiresIn)

	token, err := jwt.Parse(res.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "owner", claims["role"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp.Time, time.Minute)
}

func TestLogin_WrongKeyRejected(t *testing.T) {
	svc := newAuthFixture(t, "correct-horse-battery-staple", time.Hour)

	res, err := svc.Login(context.Background(), &dto.OwnerLoginRequest{AccessKey: "guessing"})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogin_EmptyKeyRejected(t *testing.T) {
	svc := newAuthFixture(t, "correct-horse-battery-staple", time.Hour)

	res, err := svc.Login(context.Background(), &dto.OwnerLoginRequest{AccessKey: ""})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrUnauthorized)
}
