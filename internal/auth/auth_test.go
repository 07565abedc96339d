package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, ttl time.Duration) *TokenManager {
	t.Helper()
	m, err := NewTokenManager("test-secret", ttl)
	require.NoError(t, err)
	return m
}

func TestNewTokenManagerRejectsEmptySecret(t *testing.T) {
	_, err := NewTokenManager("", time.Hour)
	assert.Error(t, err)
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	m := newTestManager(t, time.Hour)
	issued := time.Now()

	token, err := m.Issue(7)
	require.NoError(t, err)

	session, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, 7, session.AccountID)
	assert.WithinDuration(t, issued, session.NotBefore, 5*time.Second)
	assert.WithinDuration(t, issued.Add(time.Hour), session.Expiry, 5*time.Second)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	m := newTestManager(t, time.Hour)

	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := m.Issue(7)
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsNotYetValidToken(t *testing.T) {
	m := newTestManager(t, time.Hour)

	m.now = func() time.Time { return time.Now().Add(time.Hour) }
	token, err := m.Issue(7)
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	m := newTestManager(t, time.Hour)
	token, err := m.Issue(7)
	require.NoError(t, err)

	other, err := NewTokenManager("other-secret", time.Hour)
	require.NoError(t, err)
	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := newTestManager(t, time.Hour)
	_, err := m.Verify("not-a-token")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.True(t, CheckPassword(hash, "hunter2"))
	assert.False(t, CheckPassword(hash, "hunter3"))
}
