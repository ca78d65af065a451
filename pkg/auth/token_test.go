package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokens_IssueParse(t *testing.T) {
	t.Parallel()
	tokens := NewTokens(Config{Secret: "secret", TTL: time.Hour})

	token, exp, err := tokens.Issue(Identity{UserID: 7, Username: "alice"})
	require.NoError(t, err)
	require.True(t, exp.After(time.Now()))

	id, err := tokens.Parse(token)
	require.NoError(t, err)
	require.Equal(t, Identity{UserID: 7, Username: "alice"}, id)
}

func TestTokens_Parse(t *testing.T) {
	t.Parallel()
	tokens := NewTokens(Config{Secret: "secret", TTL: time.Hour})
	other := NewTokens(Config{Secret: "other", TTL: time.Hour})

	foreign, _, err := other.Issue(Identity{UserID: 1, Username: "bob"})
	require.NoError(t, err)

	expired := NewTokens(Config{Secret: "secret", TTL: time.Hour})
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	stale, _, err := expired.Issue(Identity{UserID: 1, Username: "bob"})
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "foreign key", token: foreign},
		{name: "expired", token: stale},
		{name: "empty", token: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := tokens.Parse(tt.token)
			require.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestPassword(t *testing.T) {
	t.Parallel()
	hash, err := HashPassword("testpass123", 4)
	require.NoError(t, err)
	require.True(t, CheckPassword(hash, "testpass123"))
	require.False(t, CheckPassword(hash, "wrong"))
}
