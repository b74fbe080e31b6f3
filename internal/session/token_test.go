package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParse(t *testing.T) {
	m := NewTokenManager("secret")

	token, err := m.Sign("abc-123", 7, time.Now().Add(time.Hour))
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", claims.SessionID)
	assert.Equal(t, int64(7), claims.UserID)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a").Sign("abc-123", 7, time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b").Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m := NewTokenManager("secret")
	token, err := m.Sign("abc-123", 7, time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := NewTokenManager("secret").Parse("definitely.not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
