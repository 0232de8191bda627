package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateUsernameFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^abebe[0-9]{4}$`)
	for i := 0; i < 50; i++ {
		require.Regexp(t, pattern, GenerateUsername("Abebe Kebede"))
	}
}

func TestGenerateUsernameStripsNonAlphanumerics(t *testing.T) {
	pattern := regexp.MustCompile(`^obrien[0-9]{4}$`)
	require.Regexp(t, pattern, GenerateUsername("O'Brien Smith"))
}

func TestGenerateUsernameEmptyName(t *testing.T) {
	require.Regexp(t, regexp.MustCompile(`^[0-9]{4}$`), GenerateUsername(""))
}

func TestGeneratePasswordFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^abebe[@#$][0-9]{2}$`)
	for i := 0; i < 50; i++ {
		require.Regexp(t, pattern, GeneratePassword("Abebe Kebede"))
	}
}

func TestGeneratePasswordKeepsPunctuation(t *testing.T) {
	// Unlike usernames, the password keeps the raw first token.
	require.Regexp(t, regexp.MustCompile(`^o'brien[@#$][0-9]{2}$`), GeneratePassword("O'Brien Smith"))
}

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("abebe@42")
	require.NoError(t, err)
	require.NotEqual(t, "abebe@42", hash)

	require.True(t, CheckPassword(hash, "abebe@42"))
	require.False(t, CheckPassword(hash, "abebe@43"))
}

func TestHashPasswordSalted(t *testing.T) {
	a, err := HashPassword("abebe@42")
	require.NoError(t, err)
	b, err := HashPassword("abebe@42")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}
