package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	j := &JWTer{Secret: []byte("test-secret"), Issuer: "journal-test", TTL: time.Hour}

	tok, err := j.Issue("u-1", "alice@example.com", "user")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := j.Parse(tok)
	require.NoError(t, err)
	require.Equal(t, "u-1", claims.UID)
	require.Equal(t, "u-1", claims.Subject)
	require.Equal(t, "alice@example.com", claims.Email)
	require.Equal(t, "user", claims.Role)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	j := &JWTer{Secret: []byte("secret-a"), Issuer: "journal-test", TTL: time.Hour}
	tok, err := j.Issue("u-1", "alice@example.com", "user")
	require.NoError(t, err)

	other := &JWTer{Secret: []byte("secret-b"), Issuer: "journal-test", TTL: time.Hour}
	_, err = other.Parse(tok)
	require.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	// 过期判定有 60s leeway，TTL 往回拨两分钟
	j := &JWTer{Secret: []byte("test-secret"), Issuer: "journal-test", TTL: -2 * time.Minute}
	tok, err := j.Issue("u-1", "alice@example.com", "user")
	require.NoError(t, err)

	_, err = j.Parse(tok)
	require.Error(t, err)
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	j := &JWTer{Secret: []byte("test-secret"), Issuer: "issuer-a", TTL: time.Hour}
	tok, err := j.Issue("u-1", "alice@example.com", "user")
	require.NoError(t, err)

	other := &JWTer{Secret: []byte("test-secret"), Issuer: "issuer-b", TTL: time.Hour}
	_, err = other.Parse(tok)
	require.Error(t, err)
}
