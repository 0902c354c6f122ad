package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"embox/internal/config"
	"embox/internal/core/domain"
)

func newAuthService(repo *fakeUserRepo) *AuthService {
	cfg := &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpiryHours: 8},
	}
	return NewAuthService(repo, cfg)
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	user, err := svc.Register(context.Background(), &RegisterInput{
		Username: "frontdesk",
		Password: "s3cretpass",
	})
	require.NoError(t, err)
	assert.Equal(t, "frontdesk", user.Username)
	assert.Equal(t, "admin", user.Role)

	result, err := svc.Login(context.Background(), &LoginInput{
		Username: "frontdesk",
		Password: "s3cretpass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)

	claims, err := svc.ValidateAccessToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "frontdesk", claims.Username)
	assert.Equal(t, "admin", claims.Role)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	_, err := svc.Register(context.Background(), &RegisterInput{Username: "frontdesk", Password: "s3cretpass"})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &RegisterInput{Username: "frontdesk", Password: "otherpass1"})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), &RegisterInput{Username: "frontdesk", Password: "short"})
	assert.ErrorIs(t, err, domain.ErrWeakPassword)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	_, err := svc.Register(context.Background(), &RegisterInput{Username: "frontdesk", Password: "s3cretpass"})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &LoginInput{Username: "frontdesk", Password: "wrongpass1"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &LoginInput{Username: "nobody", Password: "s3cretpass"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_PasswordResetFlow(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	_, err := svc.Register(context.Background(), &RegisterInput{Username: "frontdesk", Password: "s3cretpass"})
	require.NoError(t, err)

	token, err := svc.ForgotPassword(context.Background(), "frontdesk")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	err = svc.ResetPassword(context.Background(), token, "newpassword1")
	require.NoError(t, err)

	// Old password no longer works, new one does.
	_, err = svc.Login(context.Background(), &LoginInput{Username: "frontdesk", Password: "s3cretpass"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &LoginInput{Username: "frontdesk", Password: "newpassword1"})
	assert.NoError(t, err)

	// Token is single-shot: fields were cleared on use.
	err = svc.ResetPassword(context.Background(), token, "anotherpass1")
	assert.ErrorIs(t, err, domain.ErrResetTokenInvalid)
}

func TestAuthService_ResetPassword_ExpiredToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	_, err := svc.Register(context.Background(), &RegisterInput{Username: "frontdesk", Password: "s3cretpass"})
	require.NoError(t, err)

	token, err := svc.ForgotPassword(context.Background(), "frontdesk")
	require.NoError(t, err)

	// Age the stored expiry past the TTL.
	user, err := repo.GetByUsername(context.Background(), "frontdesk")
	require.NoError(t, err)
	expired := time.Now().Add(-time.Minute)
	user.ResetTokenExpires = &expired

	err = svc.ResetPassword(context.Background(), token, "newpassword1")
	assert.ErrorIs(t, err, domain.ErrResetTokenExpired)
}

func TestAuthService_ForgotPassword_UnknownUser(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	_, err := svc.ForgotPassword(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
