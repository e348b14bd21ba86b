package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionService(t *testing.T) {
	service := NewSessionService("test-session-secret", time.Hour)

	t.Run("IssueAndParseRoundTrip", func(t *testing.T) {
		token, session, err := service.Issue()
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.NotEmpty(t, session.ID)
		assert.Equal(t, "Visitante", session.Name)
		assert.Equal(t, "São Paulo", session.City)
		assert.Equal(t, "SP", session.State)

		parsed, err := service.Parse(token)
		assert.NoError(t, err)
		assert.Equal(t, session, parsed)
	})

	t.Run("EachIssueIsAFreshIdentity", func(t *testing.T) {
		_, first, err := service.Issue()
		assert.NoError(t, err)
		_, second, err := service.Issue()
		assert.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
		assert.NotEqual(t, first.Email, second.Email)
	})

	t.Run("TamperedTokenIsRejected", func(t *testing.T) {
		token, _, err := service.Issue()
		assert.NoError(t, err)

		_, err = service.Parse(token + "x")
		assert.Error(t, err)
	})

	t.Run("WrongSecretIsRejected", func(t *testing.T) {
		token, _, err := service.Issue()
		assert.NoError(t, err)

		other := NewSessionService("another-secret", time.Hour)
		_, err = other.Parse(token)
		assert.Error(t, err)
	})

	t.Run("ExpiredTokenIsRejected", func(t *testing.T) {
		shortLived := NewSessionService("test-session-secret", -time.Minute)
		token, _, err := shortLived.Issue()
		assert.NoError(t, err)

		_, err = shortLived.Parse(token)
		assert.Error(t, err)
	})

	t.Run("GarbageTokenIsRejected", func(t *testing.T) {
		_, err := service.Parse("not-a-token")
		assert.Error(t, err)
	})
}
