package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"go-journal-api/internal/core/auth"
	"go-journal-api/internal/domain"
	"go-journal-api/internal/repo"
)

func newTestJWTer() *auth.JWTer {
	return &auth.JWTer{Secret: []byte("test-secret"), Issuer: "journal-test", TTL: time.Hour}
}

func TestRegisterIssuesToken(t *testing.T) {
	svc := NewAuthService(repo.NewMemoryUserRepo(), newTestJWTer())

	tok, err := svc.Register("alice@example.com", "Password123")
	require.NoError(t, err)

	claims, err := newTestJWTer().Parse(tok)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", claims.Email)
	require.Equal(t, "user", claims.Role)
	require.NotEmpty(t, claims.UID)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc := NewAuthService(repo.NewMemoryUserRepo(), newTestJWTer())

	_, err := svc.Register("alice@example.com", "Password123")
	require.NoError(t, err)

	_, err = svc.Register("alice@example.com", "OtherPass456")
	require.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestRegisterStoresHashNotPlaintext(t *testing.T) {
	users := repo.NewMemoryUserRepo()
	svc := NewAuthService(users, newTestJWTer())

	_, err := svc.Register("alice@example.com", "Password123")
	require.NoError(t, err)

	u, err := users.FindByEmail("alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	require.NotEqual(t, "Password123", u.PasswordHash)
	require.NotContains(t, u.PasswordHash, "Password123")
}

func TestLogin(t *testing.T) {
	svc := NewAuthService(repo.NewMemoryUserRepo(), newTestJWTer())
	_, err := svc.Register("alice@example.com", "Password123")
	require.NoError(t, err)

	t.Run("correct password", func(t *testing.T) {
		tok, err := svc.Login("alice@example.com", "Password123")
		require.NoError(t, err)
		require.NotEmpty(t, tok)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login("alice@example.com", "WrongPass999")
		require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	// 未注册邮箱和密码错误必须是同一个错误，不能泄露哪一步失败
	t.Run("unknown email fails identically", func(t *testing.T) {
		_, err := svc.Login("nobody@example.com", "Password123")
		require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
