package services

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tripfolio/guides-backend/internal/dto"
)

func TestRegisterAndLogin(t *testing.T) {
	db := openTestDB(t)
	svc := NewAuthService(db, testConfig())

	resp, err := svc.Register(&dto.RegisterRequest{
		Username: "marie",
		Email:    "marie@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "user", resp.User.Role)

	t.Run("access token carries identity claims", func(t *testing.T) {
		token, err := jwt.Parse(resp.AccessToken, func(token *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		require.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, "marie", claims["username"])
		assert.Equal(t, false, claims["is_staff"])
	})

	t.Run("login succeeds with right password", func(t *testing.T) {
		_, err := svc.Login(&dto.LoginRequest{Username: "marie", Password: "supersecret"})
		require.NoError(t, err)
	})

	t.Run("login fails with wrong password", func(t *testing.T) {
		_, err := svc.Login(&dto.LoginRequest{Username: "marie", Password: "wrong"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("login fails for unknown user", func(t *testing.T) {
		_, err := svc.Login(&dto.LoginRequest{Username: "nobody", Password: "supersecret"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestRegisterValidation(t *testing.T) {
	db := openTestDB(t)
	svc := NewAuthService(db, testConfig())

	t.Run("short password", func(t *testing.T) {
		_, err := svc.Register(&dto.RegisterRequest{Username: "u", Password: "short"})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "password")
	})

	t.Run("malformed email", func(t *testing.T) {
		_, err := svc.Register(&dto.RegisterRequest{Username: "u", Email: "nope", Password: "supersecret"})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "email")
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := svc.Register(&dto.RegisterRequest{Username: "dup", Password: "supersecret"})
		require.NoError(t, err)
		_, err = svc.Register(&dto.RegisterRequest{Username: "dup", Password: "supersecret"})
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Register(&dto.RegisterRequest{Username: "first", Email: "same@example.com", Password: "supersecret"})
		require.NoError(t, err)
		_, err = svc.Register(&dto.RegisterRequest{Username: "second", Email: "Same@Example.com", Password: "supersecret"})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestRefreshRotation(t *testing.T) {
	db := openTestDB(t)
	svc := NewAuthService(db, testConfig())

	resp, err := svc.Register(&dto.RegisterRequest{
		Username: "paul", Email: "paul@example.com", Password: "supersecret",
	})
	require.NoError(t, err)

	rotated, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, resp.RefreshToken, rotated.RefreshToken)

	t.Run("spent token is rejected", func(t *testing.T) {
		_, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("logout revokes the current token", func(t *testing.T) {
		require.NoError(t, svc.Logout(&dto.LogoutRequest{RefreshToken: rotated.RefreshToken}))
		_, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: rotated.RefreshToken})
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
